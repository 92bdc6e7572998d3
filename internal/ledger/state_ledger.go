package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/axiom-token/internal/storagemgr/kv"
	"github.com/axiomesh/axiom-token/pkg/loggers"
)

var _ StateLedger = (*StateLedgerImpl)(nil)

type revision struct {
	id           int
	changerIndex int
}

type StateLedgerImpl struct {
	logger  logrus.FieldLogger
	backend kv.Storage

	accounts map[common.Address]*SimpleAccount
	changer  *stateChanger

	validRevisions []revision
	nextRevisionId int

	logs    []*EvmLog
	logSize uint64
}

func NewStateLedger(backend kv.Storage) *StateLedgerImpl {
	return &StateLedgerImpl{
		logger:   loggers.Logger(loggers.Storage),
		backend:  backend,
		accounts: make(map[common.Address]*SimpleAccount),
		changer:  newChanger(),
	}
}

func (l *StateLedgerImpl) GetOrCreateAccount(addr common.Address) IAccount {
	account := l.GetAccount(addr)
	if account == nil {
		created := NewAccount(l.backend, addr, l.changer)
		created.created = true
		l.changer.append(createObjectChange{account: &addr})
		l.accounts[addr] = created
		l.logger.Debugf("[GetOrCreateAccount] create account, addr: %v", addr)
		return created
	}

	return account
}

// GetAccount get account info using account Address, return nil if not exist
func (l *StateLedgerImpl) GetAccount(addr common.Address) IAccount {
	if account, ok := l.accounts[addr]; ok {
		return account
	}

	if l.backend.Get(compositeAccountKey(addr)) == nil {
		return nil
	}

	account := NewAccount(l.backend, addr, l.changer)
	l.accounts[addr] = account

	return account
}

func (l *StateLedgerImpl) SetState(addr common.Address, key []byte, value []byte) {
	l.GetOrCreateAccount(addr).SetState(key, value)
}

func (l *StateLedgerImpl) GetState(addr common.Address, key []byte) (bool, []byte) {
	account := l.GetAccount(addr)
	if account == nil {
		return false, nil
	}
	return account.GetState(key)
}

func (l *StateLedgerImpl) AddLog(log *EvmLog) {
	l.changer.append(addLogChange{})

	log.LogIndex = l.logSize
	l.logs = append(l.logs, log)
	l.logSize++
}

func (l *StateLedgerImpl) GetLogs() []*EvmLog {
	return l.logs
}

func (l *StateLedgerImpl) Snapshot() int {
	id := l.nextRevisionId
	l.nextRevisionId++
	l.validRevisions = append(l.validRevisions, revision{id: id, changerIndex: l.changer.length()})
	return id
}

func (l *StateLedgerImpl) RevertToSnapshot(revid int) {
	idx := sort.Search(len(l.validRevisions), func(i int) bool {
		return l.validRevisions[i].id >= revid
	})
	if idx == len(l.validRevisions) || l.validRevisions[idx].id != revid {
		panic(fmt.Errorf("revision id %v cannot be reverted", revid))
	}
	snap := l.validRevisions[idx].changerIndex

	l.changer.revert(l, snap)
	l.validRevisions = l.validRevisions[:idx]
}

// Finalise promotes dirty states to pending and seals them against revert
func (l *StateLedgerImpl) Finalise() {
	for _, account := range l.accounts {
		account.Finalise()
	}

	l.changer.reset()
	l.validRevisions = l.validRevisions[:0]
	l.nextRevisionId = 0
}

// Commit flushes all finalised state into the backing store atomically
func (l *StateLedgerImpl) Commit() error {
	current := time.Now()

	batch := l.backend.NewBatch()
	for _, account := range l.accounts {
		account.commit(batch)
	}
	batch.Commit()

	l.logs = nil
	l.logSize = 0

	commitDuration.Observe(float64(time.Since(current)) / float64(time.Second))

	return nil
}

func (l *StateLedgerImpl) Clear() {
	l.accounts = make(map[common.Address]*SimpleAccount)
	l.changer.reset()
	l.validRevisions = l.validRevisions[:0]
	l.nextRevisionId = 0
	l.logs = nil
	l.logSize = 0
}

func (l *StateLedgerImpl) Close() {
	l.backend.Close()
}
