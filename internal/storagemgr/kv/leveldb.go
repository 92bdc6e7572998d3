package kv

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
)

var _ Storage = (*ldb)(nil)

type ldb struct {
	db *leveldb.DB
}

// NewLeveldb opens (or creates) a leveldb database at path.
func NewLeveldb(path string) (Storage, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb at %s", path)
	}
	return &ldb{db: db}, nil
}

func (l *ldb) Put(key, value []byte) {
	if err := l.db.Put(key, value, nil); err != nil {
		panic(errors.Wrap(err, "leveldb put"))
	}
}

func (l *ldb) Delete(key []byte) {
	if err := l.db.Delete(key, nil); err != nil {
		panic(errors.Wrap(err, "leveldb delete"))
	}
}

func (l *ldb) Get(key []byte) []byte {
	value, err := l.db.Get(key, nil)
	if err != nil {
		if err == ldberrors.ErrNotFound {
			return nil
		}
		panic(errors.Wrap(err, "leveldb get"))
	}
	return value
}

func (l *ldb) Has(key []byte) bool {
	has, err := l.db.Has(key, nil)
	if err != nil {
		panic(errors.Wrap(err, "leveldb has"))
	}
	return has
}

func (l *ldb) NewBatch() Batch {
	return &ldbBatch{db: l.db, batch: new(leveldb.Batch)}
}

func (l *ldb) Close() error {
	return l.db.Close()
}

type ldbBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *ldbBatch) Put(key, value []byte) {
	b.batch.Put(key, value)
}

func (b *ldbBatch) Delete(key []byte) {
	b.batch.Delete(key)
}

func (b *ldbBatch) Commit() {
	if err := b.db.Write(b.batch, nil); err != nil {
		panic(errors.Wrap(err, "leveldb batch write"))
	}
	b.batch.Reset()
}

func (b *ldbBatch) Size() int {
	return b.batch.Len()
}

func (b *ldbBatch) Reset() {
	b.batch.Reset()
}
