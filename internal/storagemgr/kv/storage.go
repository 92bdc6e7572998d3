// Package kv defines the durable key-value storage consumed by the state
// ledger. Implementations must guarantee that a committed batch is atomic.
//
// Storage failure is not a recoverable condition for callers: accessors
// panic on backend errors, and the invocation boundary converts the panic
// into an aborted call.
package kv

//go:generate mockgen -destination mock_kv/mock_kv.go -package mock_kv -source storage.go
type Storage interface {
	Put(key, value []byte)

	Delete(key []byte)

	// Get returns nil if the key does not exist.
	Get(key []byte) []byte

	Has(key []byte) bool

	NewBatch() Batch

	Close() error
}

// Batch accumulates writes and applies them atomically on Commit.
type Batch interface {
	Put(key, value []byte)

	Delete(key []byte)

	Commit()

	// Size returns the number of pending operations in the batch.
	Size() int

	Reset()
}
