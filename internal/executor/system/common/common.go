package common

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	ethtype "github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/axiom-token/internal/ledger"
)

const (
	// ZeroAddress is a special address, no one has control
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// system contract address range 0x1000-0xffff, start from 1000, avoid conflicts with precompiled contracts
	// SystemContractStartAddr is the start address of system contract
	SystemContractStartAddr = "0x0000000000000000000000000000000000001000"

	// TokenContractAddr is the contract used to manage the native token ledger
	TokenContractAddr = "0x0000000000000000000000000000000000001001"

	// SystemContractEndAddr is the end address of system contract
	SystemContractEndAddr = "0x000000000000000000000000000000000000ffff"
)

type SystemContractConfig struct {
	Logger logrus.FieldLogger
}

type VMContext struct {
	StateLedger   ledger.StateLedger
	CurrentHeight uint64
	CurrentLogs   *[]Log
	CurrentUser   *ethcommon.Address
}

// SystemContract must be implemented by all system contract
type SystemContract interface {
	SetContext(*VMContext)

	Run(msg *core.Message) (*core.ExecutionResult, error)

	EstimateGas(callArgs *CallArgs) (uint64, error)
}

// CallArgs represents the arguments for a contract call
type CallArgs struct {
	From *ethcommon.Address `json:"from"`
	To   *ethcommon.Address `json:"to"`
	Data *[]byte            `json:"data"`
}

type Log struct {
	Address ethcommon.Address
	Topics  []ethcommon.Hash
	Data    []byte
	Removed bool
}

func IsInSlice[T ~uint8 | ~string](value T, slice []T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}

	return false
}

func CalculateDynamicGas(bytes []byte) uint64 {
	gas, _ := core.IntrinsicGas(bytes, ethtype.AccessList{}, false, true, true, true)
	return gas
}
