package storagemgr

import (
	"github.com/coocood/freecache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/axiomesh/axiom-token/internal/storagemgr/kv"
)

var (
	kvCacheHitCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "axiom_token",
		Subsystem: "storage",
		Name:      "kv_cache_hit_total",
		Help:      "The total number of kv cache hits",
	})

	kvCacheMissCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "axiom_token",
		Subsystem: "storage",
		Name:      "kv_cache_miss_total",
		Help:      "The total number of kv cache misses",
	})
)

func init() {
	prometheus.MustRegister(kvCacheHitCounter)
	prometheus.MustRegister(kvCacheMissCounter)
}

type CachedStorage struct {
	kv.Storage
	cache *freecache.Cache
}

// NewCachedStorage wraps s with a read cache of megabytesLimit megabytes.
func NewCachedStorage(s kv.Storage, megabytesLimit int) kv.Storage {
	if megabytesLimit <= 0 {
		megabytesLimit = 128
	}
	return &CachedStorage{
		Storage: s,
		cache:   freecache.NewCache(megabytesLimit * 1024 * 1024),
	}
}

func (c *CachedStorage) Get(key []byte) []byte {
	value, err := c.cache.Get(key)
	if err == nil {
		kvCacheHitCounter.Inc()
		return value
	}
	kvCacheMissCounter.Inc()
	v := c.Storage.Get(key)
	if v != nil {
		_ = c.cache.Set(key, v, 0)
	}
	return v
}

func (c *CachedStorage) Has(key []byte) bool {
	if _, err := c.cache.Get(key); err == nil {
		kvCacheHitCounter.Inc()
		return true
	}
	kvCacheMissCounter.Inc()
	return c.Storage.Has(key)
}

func (c *CachedStorage) Put(key, value []byte) {
	c.Storage.Put(key, value)
	_ = c.cache.Set(key, value, 0)
}

func (c *CachedStorage) Delete(key []byte) {
	c.cache.Del(key)
	c.Storage.Delete(key)
}

func (c *CachedStorage) Close() error {
	c.cache.Clear()
	return c.Storage.Close()
}

func (c *CachedStorage) NewBatch() kv.Batch {
	return &batchWrapper{
		Batch:      c.Storage.NewBatch(),
		cache:      c.cache,
		finalState: make(map[string][]byte),
	}
}

type batchWrapper struct {
	kv.Batch
	cache      *freecache.Cache
	finalState map[string][]byte
}

func (w *batchWrapper) Put(key, value []byte) {
	w.finalState[string(key)] = value
	w.Batch.Put(key, value)
}

func (w *batchWrapper) Delete(key []byte) {
	w.finalState[string(key)] = nil
	w.Batch.Delete(key)
}

func (w *batchWrapper) Commit() {
	w.Batch.Commit()
	for k, v := range w.finalState {
		if v == nil {
			w.cache.Del([]byte(k))
		} else {
			_ = w.cache.Set([]byte(k), v, 0)
		}
	}
	w.finalState = make(map[string][]byte)
}

func (w *batchWrapper) Reset() {
	w.Batch.Reset()
	w.finalState = make(map[string][]byte)
}
