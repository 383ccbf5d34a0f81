// Package keyhash derives fixed-width cache keys from arbitrary values.
//
// A [Key] is a 64-bit hash tagged with the type it was derived from.
// Keys compare equal when their hashes are equal, so two distinct values
// that collide are treated as the same key. Callers that cannot accept
// that (small) risk should key the cache with the values themselves.
package keyhash

import (
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type (
	// Key is a hash of a Value, usable as a comparable cache key.
	// The zero Key is the hash 0.
	Key[Value any] struct {
		hash uint64
	}
	// Appender is implemented by values that can encode themselves
	// into a stable byte form for hashing.
	Appender interface {
		AppendKey(b []byte) []byte
	}
)

// seed is fixed for the lifetime of the process.
var seed = maphash.MakeSeed()

// Of derives a Key from any comparable value.
// Keys from Of are stable within a process, but not across processes;
// use [String], [Bytes], or [From] for keys that must be reproducible.
func Of[Value comparable](value Value) Key[Value] {
	return Key[Value]{hash: maphash.Comparable(seed, value)}
}

// String derives a reproducible Key from s.
func String(s string) Key[string] {
	return Key[string]{hash: xxhash.Sum64String(s)}
}

// Bytes derives a reproducible Key from b.
func Bytes(b []byte) Key[[]byte] {
	return Key[[]byte]{hash: xxhash.Sum64(b)}
}

// From derives a reproducible Key from the byte form of value.
func From[Value Appender](value Value) Key[Value] {
	return Key[Value]{hash: xxhash.Sum64(value.AppendKey(nil))}
}

// Sum64 returns the hash backing k.
func (k Key[_]) Sum64() uint64 { return k.hash }

func (k Key[_]) String() string { return fmt.Sprintf("%#x", k.hash) }
