package kv

import (
	"sync"
)

var _ Storage = (*memory)(nil)

type memory struct {
	lock sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an in-memory Storage, mainly for tests and the solo
// development mode.
func NewMemory() Storage {
	return &memory{
		data: make(map[string][]byte),
	}
}

func (m *memory) Put(key, value []byte) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.data[string(key)] = cloneBytes(value)
}

func (m *memory) Delete(key []byte) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.data, string(key))
}

func (m *memory) Get(key []byte) []byte {
	m.lock.RLock()
	defer m.lock.RUnlock()
	value, ok := m.data[string(key)]
	if !ok {
		return nil
	}
	return cloneBytes(value)
}

func (m *memory) Has(key []byte) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.data[string(key)]
	return ok
}

func (m *memory) NewBatch() Batch {
	return &memoryBatch{backend: m}
}

func (m *memory) Close() error {
	return nil
}

type memoryOp struct {
	key    string
	value  []byte
	delete bool
}

type memoryBatch struct {
	backend *memory
	ops     []memoryOp
}

func (b *memoryBatch) Put(key, value []byte) {
	b.ops = append(b.ops, memoryOp{key: string(key), value: cloneBytes(value)})
}

func (b *memoryBatch) Delete(key []byte) {
	b.ops = append(b.ops, memoryOp{key: string(key), delete: true})
}

func (b *memoryBatch) Commit() {
	b.backend.lock.Lock()
	defer b.backend.lock.Unlock()
	for _, op := range b.ops {
		if op.delete {
			delete(b.backend.data, op.key)
		} else {
			b.backend.data[op.key] = op.value
		}
	}
	b.ops = nil
}

func (b *memoryBatch) Size() int {
	return len(b.ops)
}

func (b *memoryBatch) Reset() {
	b.ops = nil
}

func cloneBytes(value []byte) []byte {
	if value == nil {
		return nil
	}
	cloned := make([]byte, len(value))
	copy(cloned, value)
	return cloned
}
