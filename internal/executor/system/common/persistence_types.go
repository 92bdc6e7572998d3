package common

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/axiomesh/axiom-token/internal/ledger"
)

// VMSlot is a typed view of a single contract state key. Values are stored
// json-encoded behind an existence byte so a deleted slot is distinguishable
// from an absent one.
type VMSlot[V any] struct {
	contractAccount ledger.IAccount
	slotName        string
}

func NewVMSlot[V any](contractAccount ledger.IAccount, slotName string) *VMSlot[V] {
	return &VMSlot[V]{
		contractAccount: contractAccount,
		slotName:        slotName,
	}
}

func (s *VMSlot[V]) stateKey() []byte {
	return []byte(s.slotName)
}

func (s *VMSlot[V]) Get() (exist bool, v V, err error) {
	exist, data := s.contractAccount.GetState(s.stateKey())
	if !exist || len(data) == 0 || data[0] == 0 {
		return false, v, nil
	}
	if err := json.Unmarshal(data[1:], &v); err != nil {
		return false, v, err
	}
	return true, v, nil
}

func (s *VMSlot[V]) MustGet() (v V, err error) {
	exist, data := s.contractAccount.GetState(s.stateKey())
	if !exist || len(data) == 0 || data[0] == 0 {
		return v, errors.Errorf("system contract[%s] slot[%s] not exist", s.contractAccount.GetAddress(), s.slotName)
	}
	if err := json.Unmarshal(data[1:], &v); err != nil {
		return v, err
	}
	return v, nil
}

func (s *VMSlot[V]) Has() bool {
	exist, data := s.contractAccount.GetState(s.stateKey())
	return !(!exist || len(data) == 0 || data[0] == 0)
}

func (s *VMSlot[V]) Put(v V) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.contractAccount.SetState(s.stateKey(), append([]byte{1}, data...))
	return nil
}

func (s *VMSlot[V]) Delete() error {
	s.contractAccount.SetState(s.stateKey(), []byte{0})
	return nil
}
