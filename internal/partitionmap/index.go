package partitionmap

import (
	"cmp"

	"github.com/dolthub/swiss"
	"github.com/google/btree"
)

// index maps live keys to their slot in the backing vector.
type index[K any] interface {
	lookup(key K) (slot int, ok bool)
	store(key K, slot int)
	drop(key K) (slot int, ok bool)
	size() int
	reset()
	// each calls fn for every key until fn returns false.
	each(fn func(key K, slot int) bool)
}

// swissIndex is an unordered index backed by a SwissTable.
type swissIndex[K comparable] struct {
	m *swiss.Map[K, int]
}

func newSwissIndex[K comparable](capacity int) *swissIndex[K] {
	return &swissIndex[K]{m: swiss.NewMap[K, int](uint32(max(capacity, 1)))}
}

func (s *swissIndex[K]) lookup(key K) (int, bool) { return s.m.Get(key) }
func (s *swissIndex[K]) store(key K, slot int)    { s.m.Put(key, slot) }
func (s *swissIndex[K]) size() int                { return s.m.Count() }
func (s *swissIndex[K]) reset()                   { s.m.Clear() }

func (s *swissIndex[K]) drop(key K) (int, bool) {
	slot, ok := s.m.Get(key)
	if ok {
		s.m.Delete(key)
	}
	return slot, ok
}

func (s *swissIndex[K]) each(fn func(K, int) bool) {
	s.m.Iter(func(key K, slot int) bool {
		return !fn(key, slot)
	})
}

// keySlot is the item stored in the ordered index.
type keySlot[K cmp.Ordered] struct {
	key  K
	slot int
}

// btreeIndex is an ordered index; each visits keys in ascending order.
type btreeIndex[K cmp.Ordered] struct {
	t *btree.BTreeG[keySlot[K]]
}

const btreeDegree = 32

func newBTreeIndex[K cmp.Ordered]() *btreeIndex[K] {
	less := func(a, b keySlot[K]) bool { return cmp.Less(a.key, b.key) }
	return &btreeIndex[K]{t: btree.NewG(btreeDegree, less)}
}

func (b *btreeIndex[K]) lookup(key K) (int, bool) {
	item, ok := b.t.Get(keySlot[K]{key: key})
	return item.slot, ok
}

func (b *btreeIndex[K]) store(key K, slot int) {
	b.t.ReplaceOrInsert(keySlot[K]{key: key, slot: slot})
}

func (b *btreeIndex[K]) drop(key K) (int, bool) {
	item, ok := b.t.Delete(keySlot[K]{key: key})
	return item.slot, ok
}

func (b *btreeIndex[K]) size() int { return b.t.Len() }
func (b *btreeIndex[K]) reset()    { b.t.Clear(false) }

func (b *btreeIndex[K]) each(fn func(K, int) bool) {
	b.t.Ascend(func(item keySlot[K]) bool {
		return fn(item.key, item.slot)
	})
}
