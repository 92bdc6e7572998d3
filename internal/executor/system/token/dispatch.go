package token

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/pkg/errors"

	"github.com/axiomesh/axiom-token/internal/executor/system/common"
)

const tokenManagerABIData = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"recipient","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"sender","type":"address"},{"name":"recipient","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"increaseAllowance","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"decreaseAllowance","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"recipient","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"Approval","inputs":[{"name":"owner","type":"address","indexed":true},{"name":"spender","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}],"anonymous":false}
]`

var tokenManagerABI *abi.ABI

func init() {
	tmAbi, err := abi.JSON(strings.NewReader(tokenManagerABIData))
	if err != nil {
		panic(err)
	}
	tokenManagerABI = &tmAbi
}

// ABI returns the token contract abi, callers use it to pack calldata
func ABI() *abi.ABI {
	return tokenManagerABI
}

type nameArgs struct{}

type symbolArgs struct{}

type decimalsArgs struct{}

type totalSupplyArgs struct{}

type balanceOfArgs struct {
	Account ethcommon.Address `abi:"account"`
}

type allowanceArgs struct {
	Owner   ethcommon.Address `abi:"owner"`
	Spender ethcommon.Address `abi:"spender"`
}

type transferArgs struct {
	Recipient ethcommon.Address `abi:"recipient"`
	Value     *big.Int          `abi:"value"`
}

type approveArgs struct {
	Spender ethcommon.Address `abi:"spender"`
	Value   *big.Int          `abi:"value"`
}

type transferFromArgs struct {
	Sender    ethcommon.Address `abi:"sender"`
	Recipient ethcommon.Address `abi:"recipient"`
	Value     *big.Int          `abi:"value"`
}

type increaseAllowanceArgs struct {
	Spender ethcommon.Address `abi:"spender"`
	Value   *big.Int          `abi:"value"`
}

type decreaseAllowanceArgs struct {
	Spender ethcommon.Address `abi:"spender"`
	Value   *big.Int          `abi:"value"`
}

type mintArgs struct {
	Recipient ethcommon.Address `abi:"recipient"`
	Value     *big.Int          `abi:"value"`
}

type burnArgs struct {
	Owner ethcommon.Address `abi:"owner"`
	Value *big.Int          `abi:"value"`
}

var methodSig2ArgsReceiverConstructor = map[string]func() any{
	"name()":        func() any { return &nameArgs{} },
	"symbol()":      func() any { return &symbolArgs{} },
	"decimals()":    func() any { return &decimalsArgs{} },
	"totalSupply()": func() any { return &totalSupplyArgs{} },
	"balanceOf(address)": func() any {
		return &balanceOfArgs{}
	},
	"allowance(address,address)": func() any {
		return &allowanceArgs{}
	},
	"transfer(address,uint256)": func() any {
		return &transferArgs{}
	},
	"approve(address,uint256)": func() any {
		return &approveArgs{}
	},
	"transferFrom(address,address,uint256)": func() any {
		return &transferFromArgs{}
	},
	"increaseAllowance(address,uint256)": func() any {
		return &increaseAllowanceArgs{}
	},
	"decreaseAllowance(address,uint256)": func() any {
		return &decreaseAllowanceArgs{}
	},
	"mint(address,uint256)": func() any {
		return &mintArgs{}
	},
	"burn(address,uint256)": func() any {
		return &burnArgs{}
	},
}

// Run dispatches one external call against the accounting engine. Engine
// failures surface as a reverted execution result, never as a Run error.
func (m *Manager) Run(msg *core.Message) (*core.ExecutionResult, error) {
	result := &core.ExecutionResult{}
	ret, err := func() ([]byte, error) {
		args, method, err := common.ParseContractCallArgs(tokenManagerABI, msg.Data, methodSig2ArgsReceiverConstructor)
		if err != nil {
			return nil, err
		}
		switch t := args.(type) {
		case *nameArgs:
			return method.Outputs.Pack(m.Name())
		case *symbolArgs:
			return method.Outputs.Pack(m.Symbol())
		case *decimalsArgs:
			return method.Outputs.Pack(m.Decimals())
		case *totalSupplyArgs:
			return method.Outputs.Pack(m.TotalSupply())
		case *balanceOfArgs:
			return method.Outputs.Pack(m.BalanceOf(t.Account))
		case *allowanceArgs:
			return method.Outputs.Pack(m.Allowance(t.Owner, t.Spender))
		case *transferArgs:
			if err = m.Transfer(t.Recipient, t.Value); err != nil {
				return nil, err
			}
			return method.Outputs.Pack(true)
		case *approveArgs:
			if err = m.Approve(t.Spender, t.Value); err != nil {
				return nil, err
			}
			return method.Outputs.Pack(true)
		case *transferFromArgs:
			if err = m.TransferFrom(t.Sender, t.Recipient, t.Value); err != nil {
				return nil, err
			}
			return method.Outputs.Pack(true)
		case *increaseAllowanceArgs:
			if err = m.IncreaseAllowance(t.Spender, t.Value); err != nil {
				return nil, err
			}
			return method.Outputs.Pack(true)
		case *decreaseAllowanceArgs:
			if err = m.DecreaseAllowance(t.Spender, t.Value); err != nil {
				return nil, err
			}
			return method.Outputs.Pack(true)
		case *mintArgs:
			if err = m.Mint(t.Recipient, t.Value); err != nil {
				return nil, err
			}
			return method.Outputs.Pack(true)
		case *burnArgs:
			if err = m.Burn(t.Owner, t.Value); err != nil {
				return nil, err
			}
			return method.Outputs.Pack(true)
		default:
			return nil, errors.Errorf("%v: not support method", vm.ErrExecutionReverted)
		}
	}()
	if err != nil {
		m.logger.Warnf("call from %s reverted: %s", m.msgFrom, err)
		result.Err = vm.ErrExecutionReverted
		result.ReturnData = []byte(err.Error())
	} else {
		result.ReturnData = ret
	}
	result.UsedGas = common.CalculateDynamicGas(msg.Data)
	return result, nil
}

func (m *Manager) EstimateGas(callArgs *common.CallArgs) (uint64, error) {
	if callArgs == nil {
		return 0, errors.New("callArgs is nil")
	}

	var data []byte
	if callArgs.Data != nil {
		data = *callArgs.Data
	}

	_, _, err := common.ParseContractCallArgs(tokenManagerABI, data, methodSig2ArgsReceiverConstructor)
	if err != nil {
		return 0, errors.Errorf("%v: %v", vm.ErrExecutionReverted, err)
	}

	return common.CalculateDynamicGas(data), nil
}
