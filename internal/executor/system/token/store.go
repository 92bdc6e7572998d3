package token

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/axiomesh/axiom-token/internal/ledger"
)

// getUint256 reads an unsigned 256-bit value from contract state,
// a missing key reads as zero
func getUint256(account ledger.IAccount, key string) *uint256.Int {
	ok, v := account.GetState([]byte(key))
	if !ok {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).SetBytes(v)
}

func setUint256(account ledger.IAccount, key string, value *uint256.Int) {
	account.SetState([]byte(key), value.Bytes())
}

// toUint256 converts an abi-decoded amount, rejecting nil, negative
// and out-of-range values
func toUint256(value *big.Int) (*uint256.Int, error) {
	if err := checkValue(value); err != nil {
		return nil, err
	}
	v, overflow := uint256.FromBig(value)
	if overflow {
		return nil, ErrOverflow
	}
	return v, nil
}
