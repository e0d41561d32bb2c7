// Package hashmap implements a fixed-capacity hash table mapping string keys
// to string values, resolving collisions by chaining: every bucket holds a
// singly-linked list of entries that hash to its index. Capacity is chosen
// once at construction and never grows; the table stays correct at any load
// factor, it just walks longer chains.
//
// The empty string marks an absent key or value. Set rejects it, so a ""
// returned by Get or Delete always means not found.
//
// A HashTable is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
package hashmap

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the bucket count used by New.
const DefaultCapacity = 256

// ErrNegativeCapacity is returned by NewWithCapacity for capacities below zero.
var ErrNegativeCapacity = errors.New("hashmap: capacity must be non-negative")

type node struct {
	key   string
	value string
	next  *node
}

// HashTable is a chained hash table over string keys and values.
type HashTable struct {
	buckets []*node
	count   int
}

// New returns an empty table with DefaultCapacity buckets.
func New() *HashTable {
	return &HashTable{buckets: make([]*node, DefaultCapacity)}
}

// NewWithCapacity returns an empty table with the given number of buckets.
// A capacity of zero is allowed and yields a table that stores nothing and
// rejects every Set.
func NewWithCapacity(capacity int) (*HashTable, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegativeCapacity, capacity)
	}
	return &HashTable{buckets: make([]*node, capacity)}, nil
}

// bucketIndex reduces a polynomial hash of key (base 31 over the key's bytes)
// to a slot in [0, len(buckets)). The accumulator is int32 so overflow wraps
// the same way everywhere, and the negative branch keeps the index in range
// even when the wrapped hash is the minimum int32. Must not be called on a
// zero-capacity table.
func (h *HashTable) bucketIndex(key string) int {
	var hash int32
	for i := 0; i < len(key); i++ {
		hash = 31*hash + int32(key[i])
	}
	idx := int(hash) % len(h.buckets)
	if idx < 0 {
		idx += len(h.buckets)
	}
	return idx
}

// Set stores value under key, overwriting in place if the key is already
// present. It reports whether the pair was stored; it returns false without
// mutating the table when key or value is empty, or when the table has zero
// capacity.
func (h *HashTable) Set(key, value string) bool {
	if key == "" || value == "" || len(h.buckets) == 0 {
		return false
	}

	idx := h.bucketIndex(key)
	if h.buckets[idx] == nil {
		h.buckets[idx] = &node{key: key, value: value}
		h.count++
		return true
	}

	n := h.buckets[idx]
	for {
		if n.key == key {
			n.value = value
			return true
		}
		if n.next == nil {
			break
		}
		n = n.next
	}
	// New key colliding with an occupied bucket: append at the tail so
	// insertion order within a chain is preserved.
	n.next = &node{key: key, value: value}
	h.count++
	return true
}

// Get returns the value stored under key. The second result is false when the
// key is not present.
func (h *HashTable) Get(key string) (string, bool) {
	if len(h.buckets) == 0 {
		return "", false
	}
	for n := h.buckets[h.bucketIndex(key)]; n != nil; n = n.next {
		if n.key == key {
			return n.value, true
		}
	}
	return "", false
}

// Delete removes key and returns the value it held. The second result is
// false when the key was not present, in which case the table is unchanged.
func (h *HashTable) Delete(key string) (string, bool) {
	if len(h.buckets) == 0 {
		return "", false
	}

	idx := h.bucketIndex(key)
	head := h.buckets[idx]
	if head == nil {
		return "", false
	}
	if head.key == key {
		h.buckets[idx] = head.next
		h.count--
		return head.value, true
	}
	for prev := head; prev.next != nil; prev = prev.next {
		if prev.next.key == key {
			removed := prev.next
			prev.next = removed.next
			h.count--
			return removed.value, true
		}
	}
	return "", false
}

// Exists reports whether key is present.
func (h *HashTable) Exists(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Len returns the number of key-value pairs stored.
func (h *HashTable) Len() int {
	return h.count
}

// Capacity returns the fixed bucket count.
func (h *HashTable) Capacity() int {
	return len(h.buckets)
}

// LoadFactor returns Len divided by Capacity, or 0 for a zero-capacity table.
func (h *HashTable) LoadFactor() float64 {
	if len(h.buckets) == 0 {
		return 0
	}
	return float64(h.count) / float64(len(h.buckets))
}
