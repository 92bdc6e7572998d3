package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStorageCRUD(t *testing.T, s Storage) {
	require.Nil(t, s.Get([]byte("k1")))
	require.False(t, s.Has([]byte("k1")))

	s.Put([]byte("k1"), []byte("v1"))
	require.Equal(t, []byte("v1"), s.Get([]byte("k1")))
	require.True(t, s.Has([]byte("k1")))

	s.Put([]byte("k1"), []byte("v2"))
	require.Equal(t, []byte("v2"), s.Get([]byte("k1")))

	s.Delete([]byte("k1"))
	require.Nil(t, s.Get([]byte("k1")))
	require.False(t, s.Has([]byte("k1")))
}

func testStorageBatch(t *testing.T, s Storage) {
	s.Put([]byte("old"), []byte("value"))

	batch := s.NewBatch()
	batch.Put([]byte("b1"), []byte("v1"))
	batch.Put([]byte("b2"), []byte("v2"))
	batch.Delete([]byte("old"))
	require.Equal(t, 3, batch.Size())

	// nothing visible before commit
	require.Nil(t, s.Get([]byte("b1")))
	require.Equal(t, []byte("value"), s.Get([]byte("old")))

	batch.Commit()
	require.Equal(t, []byte("v1"), s.Get([]byte("b1")))
	require.Equal(t, []byte("v2"), s.Get([]byte("b2")))
	require.Nil(t, s.Get([]byte("old")))
}

func TestMemory(t *testing.T) {
	t.Run("crud", func(t *testing.T) {
		testStorageCRUD(t, NewMemory())
	})

	t.Run("batch", func(t *testing.T) {
		testStorageBatch(t, NewMemory())
	})

	t.Run("batch reset discards pending ops", func(t *testing.T) {
		s := NewMemory()
		batch := s.NewBatch()
		batch.Put([]byte("k"), []byte("v"))
		batch.Reset()
		require.Equal(t, 0, batch.Size())
		batch.Commit()
		require.Nil(t, s.Get([]byte("k")))
	})
}

func TestLeveldb(t *testing.T) {
	t.Run("crud", func(t *testing.T) {
		s, err := NewLeveldb(filepath.Join(t.TempDir(), "ledger"))
		require.Nil(t, err)
		defer s.Close()
		testStorageCRUD(t, s)
	})

	t.Run("batch", func(t *testing.T) {
		s, err := NewLeveldb(filepath.Join(t.TempDir(), "ledger"))
		require.Nil(t, err)
		defer s.Close()
		testStorageBatch(t, s)
	})

	t.Run("data survives reopen", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "ledger")
		s, err := NewLeveldb(p)
		require.Nil(t, err)
		s.Put([]byte("k1"), []byte("v1"))
		require.Nil(t, s.Close())

		s, err = NewLeveldb(p)
		require.Nil(t, err)
		defer s.Close()
		require.Equal(t, []byte("v1"), s.Get([]byte("k1")))
	})
}
