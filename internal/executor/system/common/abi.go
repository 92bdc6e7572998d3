package common

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// ParseContractCallArgs decodes the calldata of a contract call into the typed
// args receiver registered for the target method. The receiver constructor map
// is keyed by the canonical method signature, e.g. "transfer(address,uint256)".
func ParseContractCallArgs(contractABI *abi.ABI, data []byte, methodSig2ArgsReceiverConstructor map[string]func() any) (any, *abi.Method, error) {
	if contractABI == nil {
		return nil, nil, errors.New("contract abi is empty")
	}
	if len(data) < 4 {
		return nil, nil, errors.Errorf("msg data length is improperly formatted: %q", data)
	}

	method, err := contractABI.MethodById(data[:4])
	if err != nil {
		return nil, nil, err
	}

	argsReceiverConstructor, ok := methodSig2ArgsReceiverConstructor[method.Sig]
	if !ok {
		return nil, nil, errors.Errorf("not support method: %s", method.Sig)
	}
	args := argsReceiverConstructor()

	unpacked, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, err
	}
	if err := method.Inputs.Copy(args, unpacked); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to decode args for method %s", method.Sig)
	}

	return args, method, nil
}
