package partitionmap

import "cmp"

// OrderedMap is a map from ordered keys to values whose entries are
// partitioned into disjoint sets. All and Keys visit keys in ascending order.
// The zero value is not usable; create one with NewOrderedMap.
//
// An OrderedMap is not safe for concurrent use.
type OrderedMap[K cmp.Ordered, V any] struct {
	partitionMap[K, V]
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		partitionMap: newPartitionMap[K, V](newBTreeIndex[K](), 0),
	}
}

// Min returns the smallest key and its value.
func (m *OrderedMap[K, V]) Min() (K, V, bool) {
	for key, value := range m.All() {
		return key, value, true
	}
	var (
		key   K
		value V
	)
	return key, value, false
}
