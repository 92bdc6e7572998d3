package ledger

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/axiom-token/internal/storagemgr/kv"
	"github.com/axiomesh/axiom-token/pkg/loggers"
)

var _ IAccount = (*SimpleAccount)(nil)

type SimpleAccount struct {
	logger logrus.FieldLogger
	Addr   common.Address

	// The confirmed state from the backing store
	originState map[string][]byte

	// Finalised state of previous calls not yet committed
	pendingState map[string][]byte

	// The latest state of the current call
	dirtyState map[string][]byte

	backend kv.Storage
	changer *stateChanger

	created bool // Flag whether the account was created and not yet committed
}

func NewAccount(backend kv.Storage, addr common.Address, changer *stateChanger) *SimpleAccount {
	return &SimpleAccount{
		logger:       loggers.Logger(loggers.Storage),
		Addr:         addr,
		originState:  make(map[string][]byte),
		pendingState: make(map[string][]byte),
		dirtyState:   make(map[string][]byte),
		backend:      backend,
		changer:      changer,
	}
}

func (o *SimpleAccount) String() string {
	return fmt.Sprintf("{addr: %v, dirty keys: %v, pending keys: %v}", o.Addr, len(o.dirtyState), len(o.pendingState))
}

func (o *SimpleAccount) GetAddress() common.Address {
	return o.Addr
}

// GetState Get state from local cache, if not found, then get it from DB
func (o *SimpleAccount) GetState(key []byte) (bool, []byte) {
	if value, exist := o.dirtyState[string(key)]; exist {
		return value != nil, value
	}

	if value, exist := o.pendingState[string(key)]; exist {
		return value != nil, value
	}

	if value, exist := o.originState[string(key)]; exist {
		return value != nil, value
	}

	start := time.Now()
	val := o.backend.Get(compositeStorageKey(o.Addr, key))
	stateReadDuration.Observe(float64(time.Since(start)) / float64(time.Second))
	o.originState[string(key)] = val

	return val != nil, val
}

// SetState Set account state, journaled so the write can be reverted
func (o *SimpleAccount) SetState(key []byte, value []byte) {
	_, prev := o.GetState(key)
	o.changer.append(storageChange{
		account:  &o.Addr,
		key:      key,
		prevalue: prev,
	})
	o.setState(key, value)
}

func (o *SimpleAccount) setState(key []byte, value []byte) {
	o.dirtyState[string(key)] = value
}

// Finalise moves all dirty states into the pending states
func (o *SimpleAccount) Finalise() {
	for key, value := range o.dirtyState {
		o.pendingState[key] = value
	}
	o.dirtyState = make(map[string][]byte)
}

// commit writes all pending states into the batch and promotes them to origin
func (o *SimpleAccount) commit(batch kv.Batch) {
	if o.created {
		batch.Put(compositeAccountKey(o.Addr), []byte{1})
		o.created = false
	}
	for key, value := range o.pendingState {
		if value == nil {
			batch.Delete(compositeStorageKey(o.Addr, []byte(key)))
		} else {
			batch.Put(compositeStorageKey(o.Addr, []byte(key)), value)
		}
		committedKeysCounter.Inc()
		o.originState[key] = value
	}
	o.pendingState = make(map[string][]byte)
}
