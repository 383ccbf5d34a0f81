package s3fifo

import (
	"iter"

	"github.com/djdv/go-s3fifo/internal/fifo"
)

type (
	entry[Key comparable, Value any] struct {
		key       Key
		value     Value
		frequency uint8
	}
	queue[Key comparable, Value any] = fifo.Queue[*entry[Key, Value]]
	// Cache utilizes the S3-FIFO replacement algorithm.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Cache[Key comparable, Value any] struct {
		small, main *queue[Key, Value]
		ghost       *fifo.Queue[ghostRecord[Key]]
	}
)

const (
	// MinimumCapacity defines the lowest value supported by [New].
	// It is the smallest capacity that leaves room in every queue.
	MinimumCapacity = 10
	maxFrequency    = 3
)

// New creates a [Cache] with the given capacity.
// Capacity is partitioned as 10% Small, 90% Main,
// and 90% Ghost (keys only), rounding down.
// Capacity must be at least [MinimumCapacity].
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	var (
		smallCapacity = capacity / 10
		mainCapacity  = capacity * 9 / 10
	)
	return &Cache[Key, Value]{
		small: fifo.New[*entry[Key, Value]](smallCapacity),
		main:  fifo.New[*entry[Key, Value]](mainCapacity),
		ghost: fifo.New[ghostRecord[Key]](mainCapacity),
	}, nil
}

// touch records a hit.
func (e *entry[_, _]) touch() {
	if e.frequency < maxFrequency {
		e.frequency++
	}
}

// Get returns the Value for key if it is resident
// in the cache, and increments its frequency;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	if entry := c.lookup(key); entry != nil {
		entry.touch()
		return entry.value, true
	}
	var zero Value
	return zero, false
}

// GetMut is like [Cache.Get] but returns a pointer to the stored value,
// which may be modified in place.
// The pointer should not be used after the next call
// that may evict (Put, Pop, Drain, Load).
func (c *Cache[Key, Value]) GetMut(key Key) (*Value, bool) {
	if entry := c.lookup(key); entry != nil {
		entry.touch()
		return &entry.value, true
	}
	return nil, false
}

// Put inserts value for key and returns a pointer to the stored value.
// If making room evicted a value, it is returned along with true.
//
// Put does not replace: if key is already resident,
// the call counts as an access and returns the existing value,
// leaving value unused.
// Use [Cache.GetMut] to update a resident value in place.
//
// A key recently evicted from Small (still remembered by Ghost)
// is admitted directly into Main with its remembered frequency.
// Any other key starts in Small with frequency 0.
func (c *Cache[Key, Value]) Put(key Key, value Value) (stored *Value, evicted Value, ok bool) {
	if resident, found := c.GetMut(key); found {
		return resident, evicted, false
	}
	if frequency, seen := c.forget(key); seen {
		entry := &entry[Key, Value]{
			key:       key,
			value:     value,
			frequency: frequency,
		}
		evicted, ok = c.insertMain(entry)
		c.checkBounds()
		return &entry.value, evicted, ok
	}
	entry := &entry[Key, Value]{
		key:   key,
		value: value,
	}
	evicted, ok = c.insertSmall(entry)
	c.checkBounds()
	return &entry.value, evicted, ok
}

// Load returns the cached value for key (if resident). Otherwise, it calls fetch,
// inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, hit := c.Get(key); hit {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Put(key, value)
	return value, nil
}

// Pop forces an eviction and returns the evicted value.
// Small is processed first; promotions out of Small evict nothing themselves,
// so Small is cycled until a value is evicted or it is empty.
// If Small yielded nothing, one eviction is made from Main.
// Pop returns false only when the cache is empty.
func (c *Cache[Key, Value]) Pop() (Value, bool) {
	for c.small.Len() > 0 {
		if value, ok := c.evictSmall(); ok {
			return value, true
		}
	}
	return c.evictMain()
}

// Drain removes and returns every resident value,
// Small's values first, each queue from oldest to newest.
// Ghost history is discarded as well.
func (c *Cache[Key, Value]) Drain() []Value {
	values := make([]Value, 0, c.Len())
	for _, queue := range c.residents() {
		for entry := range queue.All() {
			values = append(values, entry.value)
		}
		queue.Clear()
	}
	c.ghost.Clear()
	return values
}

// Len returns the number of resident entries.
func (c *Cache[_, _]) Len() int {
	return c.small.Len() + c.main.Len()
}

// Keys returns an iterator over the keys of resident entries,
// Small's keys first, each queue from oldest to newest.
// The cache must not be modified during iteration.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, queue := range c.residents() {
			for entry := range queue.All() {
				if !yield(entry.key) {
					return
				}
			}
		}
	}
}

func (c *Cache[Key, Value]) residents() [2]*queue[Key, Value] {
	return [...]*queue[Key, Value]{c.small, c.main}
}

// lookup scans Small then Main for key.
func (c *Cache[Key, Value]) lookup(key Key) *entry[Key, Value] {
	match := func(entry *entry[Key, Value]) bool {
		return entry.key == key
	}
	for _, queue := range c.residents() {
		if i := queue.Index(match); i >= 0 {
			return queue.At(i)
		}
	}
	return nil
}

func (c *Cache[_, _]) checkBounds() {
	if !debugging {
		return
	}
	assert(c.small.Len() <= c.small.Cap(), "small queue exceeds its capacity")
	assert(c.main.Len() <= c.main.Cap(), "main queue exceeds its capacity")
	assert(c.ghost.Len() <= c.ghost.Cap(), "ghost queue exceeds its capacity")
}
