package system

import (
	"bytes"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/axiom-token/internal/executor/system/common"
	"github.com/axiomesh/axiom-token/internal/executor/system/token"
	"github.com/axiomesh/axiom-token/internal/ledger"
	"github.com/axiomesh/axiom-token/pkg/loggers"
)

var (
	ErrNotExistSystemContract = errors.New("not exist this system contract")
	ErrEmptyContractAddress   = errors.New("contract address is empty")
	ErrNotResetSystemContract = errors.New("system contract is not reset with a state ledger")
)

// NativeVM hosts the deployed system contracts. One invocation runs at a
// time; every invocation either commits all of its writes or none of them.
type NativeVM struct {
	logger logrus.FieldLogger

	// contract address mapping to contract instance
	contracts map[string]common.SystemContract

	stateLedger   ledger.StateLedger
	currentHeight uint64
	currentLogs   []common.Log
}

func New() *NativeVM {
	nvm := &NativeVM{
		logger:    loggers.Logger(loggers.SystemContract),
		contracts: make(map[string]common.SystemContract),
	}

	cfg := &common.SystemContractConfig{
		Logger: nvm.logger,
	}

	// deploy all system contract
	nvm.Deploy(common.TokenContractAddr, token.New(cfg))

	return nvm
}

func (nvm *NativeVM) Deploy(addr string, instance common.SystemContract) {
	if _, ok := nvm.contracts[addr]; ok {
		panic("deploy system contract repeated")
	}
	nvm.contracts[addr] = instance
}

// Reset binds the vm to the ledger state for the next invocation
func (nvm *NativeVM) Reset(currentHeight uint64, stateLedger ledger.StateLedger) {
	nvm.stateLedger = stateLedger
	nvm.currentHeight = currentHeight
	nvm.currentLogs = make([]common.Log, 0)
}

// IsSystemContract judge if is system contract
func (nvm *NativeVM) IsSystemContract(addr *ethcommon.Address) bool {
	if addr == nil {
		return false
	}
	start := ethcommon.HexToAddress(common.SystemContractStartAddr)
	end := ethcommon.HexToAddress(common.SystemContractEndAddr)
	return bytes.Compare(addr.Bytes(), start.Bytes()) >= 0 && bytes.Compare(addr.Bytes(), end.Bytes()) <= 0
}

// Run executes one invocation. A failed call, including a storage failure
// surfacing as a panic, rolls the ledger back to its pre-call state. Logs
// reach the ledger only when the call succeeds.
func (nvm *NativeVM) Run(msg *core.Message) (result *core.ExecutionResult, execErr error) {
	if msg.To == nil {
		return nil, ErrEmptyContractAddress
	}
	if nvm.stateLedger == nil {
		return nil, ErrNotResetSystemContract
	}
	contractInstance, ok := nvm.contracts[msg.To.Hex()]
	if !ok {
		return nil, ErrNotExistSystemContract
	}

	start := time.Now()
	snapshot := nvm.stateLedger.Snapshot()
	nvm.currentLogs = make([]common.Log, 0)

	defer func() {
		if err := recover(); err != nil {
			nvm.logger.Errorf("invocation aborted: %v", err)
			nvm.stateLedger.RevertToSnapshot(snapshot)
			result = nil
			execErr = errors.Errorf("%v", err)
			invocationCounter.WithLabelValues(msg.To.Hex(), "abort").Inc()
		}
		invocationDuration.Observe(float64(time.Since(start)) / float64(time.Second))
	}()

	contractInstance.SetContext(&common.VMContext{
		StateLedger:   nvm.stateLedger,
		CurrentHeight: nvm.currentHeight,
		CurrentLogs:   &nvm.currentLogs,
		CurrentUser:   &msg.From,
	})

	result, execErr = contractInstance.Run(msg)
	if execErr != nil || result.Err != nil {
		nvm.stateLedger.RevertToSnapshot(snapshot)
		invocationCounter.WithLabelValues(msg.To.Hex(), "revert").Inc()
		return result, execErr
	}

	nvm.saveLogs()
	nvm.stateLedger.Finalise()
	invocationCounter.WithLabelValues(msg.To.Hex(), "ok").Inc()

	return result, nil
}

func (nvm *NativeVM) EstimateGas(callArgs *common.CallArgs) (uint64, error) {
	if callArgs == nil || callArgs.To == nil {
		return 0, ErrEmptyContractAddress
	}
	contractInstance, ok := nvm.contracts[callArgs.To.Hex()]
	if !ok {
		return 0, ErrNotExistSystemContract
	}
	return contractInstance.EstimateGas(callArgs)
}

// saveLogs records the invocation logs into the ledger
func (nvm *NativeVM) saveLogs() {
	for _, currentLog := range nvm.currentLogs {
		nvm.stateLedger.AddLog(&ledger.EvmLog{
			Address:     currentLog.Address,
			Topics:      currentLog.Topics,
			Data:        currentLog.Data,
			BlockHeight: nvm.currentHeight,
			Removed:     currentLog.Removed,
		})
	}
}
