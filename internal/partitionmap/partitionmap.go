// Package partitionmap provides maps whose entries are partitioned into
// disjoint sets, keyed by arbitrary keys instead of dense indices.
//
// Entries live in a partition.Vec. Removing a key does not renumber the
// vector: the slot is detached from its set, cleared, and pushed onto a free
// list that the next insertion reuses.
package partitionmap

import (
	"fmt"
	"iter"

	"github.com/papapumpkin/partitions/internal/partition"
)

type entry[K, V any] struct {
	key   K
	value V
}

// partitionMap holds the behavior shared by HashMap and OrderedMap.
type partitionMap[K, V any] struct {
	idx  index[K]
	vec  *partition.Vec[entry[K, V]]
	free []int // vacant slots, reused last-in first-out
}

func newPartitionMap[K, V any](idx index[K], capacity int) partitionMap[K, V] {
	return partitionMap[K, V]{
		idx: idx,
		vec: partition.WithCapacity[entry[K, V]](capacity),
	}
}

// Len returns the number of keys.
func (m *partitionMap[K, V]) Len() int { return m.idx.size() }

// IsEmpty reports whether the map holds no keys.
func (m *partitionMap[K, V]) IsEmpty() bool { return m.idx.size() == 0 }

// Contains reports whether key is present.
func (m *partitionMap[K, V]) Contains(key K) bool {
	_, ok := m.idx.lookup(key)
	return ok
}

// Get returns the value stored for key.
func (m *partitionMap[K, V]) Get(key K) (V, bool) {
	slot, ok := m.idx.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.vec.At(slot).value, true
}

// Ptr returns a pointer to the value stored for key, or nil if key is absent.
// The pointer is invalidated by the next insertion of a new key.
func (m *partitionMap[K, V]) Ptr(key K) *V {
	slot, ok := m.idx.lookup(key)
	if !ok {
		return nil
	}
	return &m.vec.Ptr(slot).value
}

// Insert stores value for key. If key was present its value is replaced and
// the old value returned with true; its set membership is kept. A new key
// starts in a set of its own.
func (m *partitionMap[K, V]) Insert(key K, value V) (V, bool) {
	if slot, ok := m.idx.lookup(key); ok {
		e := m.vec.Ptr(slot)
		old := e.value
		e.value = value
		return old, true
	}

	e := entry[K, V]{key: key, value: value}
	if n := len(m.free); n > 0 {
		slot := m.free[n-1]
		m.free = m.free[:n-1]
		m.vec.Store(slot, e)
		m.idx.store(key, slot)
	} else {
		m.idx.store(key, m.vec.Len())
		m.vec.Push(e)
	}
	var zero V
	return zero, false
}

// Remove deletes key and returns its value. The other members of its set
// stay together.
func (m *partitionMap[K, V]) Remove(key K) (V, bool) {
	slot, ok := m.idx.drop(key)
	if !ok {
		var zero V
		return zero, false
	}
	m.vec.MakeSingleton(slot)
	value := m.vec.At(slot).value
	m.vec.Store(slot, entry[K, V]{})
	m.free = append(m.free, slot)
	return value, true
}

// Clear removes every key.
func (m *partitionMap[K, V]) Clear() {
	m.idx.reset()
	m.vec.Clear()
	m.free = m.free[:0]
}

// Union merges the sets containing a and b.
func (m *partitionMap[K, V]) Union(a, b K) {
	m.vec.Union(m.slot(a), m.slot(b))
}

// SameSet reports whether a and b belong to the same set.
func (m *partitionMap[K, V]) SameSet(a, b K) bool {
	return m.vec.SameSet(m.slot(a), m.slot(b))
}

// OtherSets reports whether a and b belong to different sets.
func (m *partitionMap[K, V]) OtherSets(a, b K) bool {
	return m.vec.OtherSets(m.slot(a), m.slot(b))
}

// MakeSingleton moves key into a set of its own.
func (m *partitionMap[K, V]) MakeSingleton(key K) {
	m.vec.MakeSingleton(m.slot(key))
}

// IsSingleton reports whether key is alone in its set.
func (m *partitionMap[K, V]) IsSingleton(key K) bool {
	return m.vec.IsSingleton(m.slot(key))
}

// LenOfSet returns the number of keys in the set containing key.
func (m *partitionMap[K, V]) LenOfSet(key K) int {
	return m.vec.LenOfSet(m.slot(key))
}

// AmountOfSets returns the number of distinct sets.
func (m *partitionMap[K, V]) AmountOfSets() int {
	// Vacant slots are always singletons.
	return m.vec.AmountOfSets() - len(m.free)
}

// Set returns the entries of the set containing key.
func (m *partitionMap[K, V]) Set(key K) iter.Seq2[K, V] {
	s := m.vec.Set(m.slot(key))
	return func(yield func(K, V) bool) {
		for _, e := range s.All() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// All returns every entry.
func (m *partitionMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.idx.each(func(key K, slot int) bool {
			return yield(key, m.vec.At(slot).value)
		})
	}
}

// Keys returns every key.
func (m *partitionMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.idx.each(func(key K, _ int) bool {
			return yield(key)
		})
	}
}

// Sets returns the keys grouped by set. Groups come in slot order of their
// first member, and keys within a group in link order.
func (m *partitionMap[K, V]) Sets() [][]K {
	var out [][]K
	all := m.vec.AllSets()
	for s, ok := all.Next(); ok; s, ok = all.Next() {
		root := s.Root()
		if m.vacant(root) {
			continue
		}
		var group []K
		for _, e := range s.All() {
			group = append(group, e.key)
		}
		out = append(out, group)
	}
	return out
}

func (m *partitionMap[K, V]) vacant(slot int) bool {
	// Vacant slots are singletons, so only a singleton needs the check.
	if !m.vec.IsSingleton(slot) {
		return false
	}
	key := m.vec.At(slot).key
	live, ok := m.idx.lookup(key)
	return !ok || live != slot
}

func (m *partitionMap[K, V]) slot(key K) int {
	slot, ok := m.idx.lookup(key)
	if !ok {
		panic(fmt.Sprintf("partitionmap: key %v not present", key))
	}
	return slot
}
