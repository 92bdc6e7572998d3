package token

import (
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/axiomesh/axiom-token/pkg/repo"
)

type Config struct {
	Name          string
	Symbol        string
	Decimals      uint8
	TotalSupply   *big.Int
	InitialHolder string
	Minters       []string
	BurnPolicy    string
}

var (
	ErrValue                 = errors.New("input value below zero")
	ErrInsufficientBalance   = errors.New("value exceeds balance")
	ErrInsufficientAllowance = errors.New("not enough allowance")
	ErrOverflow              = errors.New("value overflows the numeric range")
	ErrUnauthorized          = errors.New("caller is not authorized")
	ErrEmptyAccount          = errors.New("account is empty")
	ErrAlreadyInitialized    = errors.New("token contract already initialized")
	ErrNotInitialized        = errors.New("token contract not initialized")
)

const (
	NameKey       = "tokenNameKey"
	SymbolKey     = "tokenSymbolKey"
	DecimalsKey   = "tokenDecimalsKey"
	MintersKey    = "tokenMintersKey"
	BurnPolicyKey = "tokenBurnPolicyKey"

	TotalSupplyKey = "tokenTotalSupplyKey"

	// BalancesKey is a map stores token balance, mapping(address => uint256)
	BalancesKey = "tokenBalances"
	// AllowancesKey is a map stores spending permission, mapping(owner => mapping(spender => uint256))
	AllowancesKey = "tokenAllowances"
)

const (
	transferEvent = "transfer"
	approvalEvent = "approval"
)

var event2Sig = map[string]string{
	transferEvent: "Transfer(address,address,uint256)",
	approvalEvent: "Approval(address,address,uint256)",
}

func checkValue(value *big.Int) error {
	if value == nil || value.Sign() < 0 {
		return ErrValue
	}
	return nil
}

func getBalancesKey(owner ethcommon.Address) string {
	return fmt.Sprintf("%s-%s", BalancesKey, owner.String())
}

func getAllowancesKey(owner, spender ethcommon.Address) string {
	return fmt.Sprintf("%s-%s-%s", AllowancesKey, owner.String(), spender.String())
}

func GenerateTokenConfig(genesis *repo.GenesisConfig) (Config, error) {
	totalSupply, ok := new(big.Int).SetString(genesis.Token.TotalSupply, 10)
	if !ok || totalSupply.Sign() < 0 {
		return Config{}, errors.Errorf("invalid total supply: %s", genesis.Token.TotalSupply)
	}

	minters := lo.Uniq(genesis.Token.Admins)

	return Config{
		Name:          genesis.Token.Name,
		Symbol:        genesis.Token.Symbol,
		Decimals:      genesis.Token.Decimals,
		TotalSupply:   totalSupply,
		InitialHolder: genesis.Token.InitialHolder,
		Minters:       minters,
		BurnPolicy:    genesis.Token.BurnPolicy,
	}, nil
}
