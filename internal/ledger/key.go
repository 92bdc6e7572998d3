package ledger

import (
	"github.com/ethereum/go-ethereum/common"
)

const (
	accountKeyPrefix = "acc-"
	storageKeyPrefix = "sto-"
)

func compositeAccountKey(addr common.Address) []byte {
	return append([]byte(accountKeyPrefix), addr.Bytes()...)
}

func compositeStorageKey(addr common.Address, key []byte) []byte {
	ret := append([]byte(storageKeyPrefix), addr.Bytes()...)
	return append(ret, key...)
}
