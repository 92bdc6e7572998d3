package token

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

type IToken interface {
	// Name Returns the name of the token
	Name() string

	// Symbol Returns the symbol of the token
	Symbol() string

	// Decimals Number of decimal this token has
	Decimals() uint8

	// TotalSupply Returns the value of tokens in existence
	TotalSupply() *big.Int

	// BalanceOf Returns the balance of the account, missing accounts read as zero
	BalanceOf(account ethcommon.Address) *big.Int

	// Mint creates `value` tokens for `recipient`, only allowed for minters
	Mint(recipient ethcommon.Address, value *big.Int) error

	// Burn destroys `value` tokens held by `owner`, gated by the burn policy
	Burn(owner ethcommon.Address, value *big.Int) error

	// Allowance Returns the value which `spender` is still allowed to withdraw from `owner`
	// This is zero by default, This value changes when {approve} or {transferFrom} are called.
	Allowance(owner, spender ethcommon.Address) *big.Int

	// Approve Sets `value` as the allowance of `spender` over the caller's tokens
	Approve(spender ethcommon.Address, value *big.Int) error

	// IncreaseAllowance atomically increases the allowance granted to `spender` by the caller
	IncreaseAllowance(spender ethcommon.Address, value *big.Int) error

	// DecreaseAllowance atomically decreases the allowance granted to `spender` by the caller
	DecreaseAllowance(spender ethcommon.Address, value *big.Int) error

	// Transfer transfers `value` tokens from the caller's account to `recipient`
	Transfer(recipient ethcommon.Address, value *big.Int) error

	// TransferFrom moves `value` tokens from `sender` to `recipient` using the allowance mechanism,
	// 'value' is then deducted from the caller's allowance.
	TransferFrom(sender, recipient ethcommon.Address, value *big.Int) error
}
