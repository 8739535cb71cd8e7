package dispatch

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

const absent = -1

// Cache memoizes method lookups per (type, name). Concurrent writers for a
// key always store the same index, so entries are overwritten, never locked.
type Cache struct {
	methods *ristretto.Cache[uint64, int]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// Stats counts cache lookups.
type Stats struct {
	Hits   uint64
	Misses uint64
}

func NewCache(maxEntries int64) (*Cache, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("cache size should be greater than 0, got %d", maxEntries)
	}
	methods, err := ristretto.NewCache(&ristretto.Config[uint64, int]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create method cache: %w", err)
	}
	return &Cache{methods: methods}, nil
}

var shared = sync.OnceValues(func() (*Cache, error) {
	return NewCache(1 << 14)
})

// Shared returns the process-wide cache, or nil if it could not be built.
func Shared() *Cache {
	cache, err := shared()
	if err != nil {
		return nil
	}
	return cache
}

// Load returns the memoized method index for (t, name). An index of -1
// means the method is known to be absent.
func (c *Cache) Load(t reflect.Type, name string) (int, bool) {
	index, ok := c.methods.Get(Key(t, name))
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return index, ok
}

func (c *Cache) Store(t reflect.Type, name string, index int) {
	c.methods.Set(Key(t, name), index, 1)
}

// Wait blocks until buffered writes are visible to Load.
func (c *Cache) Wait() {
	c.methods.Wait()
}

func (c *Cache) Clear() {
	c.methods.Clear()
	c.hits.Store(0)
	c.misses.Store(0)
}

func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Key hashes a (type, method name) pair. Types are told apart by identity,
// so distinct types sharing a name never share an entry.
func Key(t reflect.Type, name string) uint64 {
	var id [8]byte
	binary.LittleEndian.PutUint64(id[:], uint64(typeID(t)))

	d := xxhash.New()
	_, _ = d.Write(id[:])
	_, _ = d.WriteString(name)
	return d.Sum64()
}

func typeID(t reflect.Type) uintptr {
	if t == nil {
		return 0
	}
	return reflect.ValueOf(t).Pointer()
}
