package partitionmap

// HashMap is a map from comparable keys to values whose entries are
// partitioned into disjoint sets. Iteration order of All and Keys is
// unspecified. The zero value is not usable; create one with NewHashMap.
//
// A HashMap is not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	partitionMap[K, V]
}

// NewHashMap returns an empty HashMap.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return NewHashMapWithCapacity[K, V](0)
}

// NewHashMapWithCapacity returns an empty HashMap sized for n keys.
func NewHashMapWithCapacity[K comparable, V any](n int) *HashMap[K, V] {
	return &HashMap[K, V]{
		partitionMap: newPartitionMap[K, V](newSwissIndex[K](n), n),
	}
}
