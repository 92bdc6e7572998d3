package ledger

import (
	"github.com/ethereum/go-ethereum/common"
)

// EvmLog is an event record emitted by a contract during execution.
// Logs accumulate in the ledger journal and are discarded when the
// enclosing call reverts.
type EvmLog struct {
	Address     common.Address `json:"address"`
	Topics      []common.Hash  `json:"topics"`
	Data        []byte         `json:"data"`
	BlockHeight uint64         `json:"block_height"`
	LogIndex    uint64         `json:"log_index"`
	Removed     bool           `json:"removed"`
}

// StateLedger manipulates contract account state with journaled writes.
// All mutations between Snapshot and RevertToSnapshot can be undone;
// Commit persists finalised state to the backing store.
//
//go:generate mockgen -destination mock_ledger/mock_ledger.go -package mock_ledger -source ledger.go
type StateLedger interface {
	// GetOrCreateAccount returns the account, creating it if absent
	GetOrCreateAccount(common.Address) IAccount

	// GetAccount returns the account or nil if it does not exist
	GetAccount(common.Address) IAccount

	// SetState sets account state
	SetState(addr common.Address, key []byte, value []byte)

	// GetState returns whether the key exists and its value
	GetState(addr common.Address, key []byte) (bool, []byte)

	AddLog(log *EvmLog)

	GetLogs() []*EvmLog

	// Snapshot returns an identifier for the current revision of the state
	Snapshot() int

	// RevertToSnapshot reverts all state changes made since the given revision
	RevertToSnapshot(revid int)

	// Finalise moves dirty states into the pending area and resets the journal.
	// Finalised states can no longer be reverted.
	Finalise()

	// Commit persists all finalised state to the backing store
	Commit() error

	// Clear drops all in-memory state, logs and the journal
	Clear()

	// Close releases the backing store
	Close()
}

// IAccount is the per-address state interface used by contracts.
type IAccount interface {
	GetAddress() common.Address

	GetState(key []byte) (bool, []byte)

	SetState(key []byte, value []byte)

	// Finalise moves dirty states into pending states
	Finalise()
}
