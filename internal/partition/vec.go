package partition

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Vec is a growable sequence of values partitioned into disjoint sets.
//
// Every index belongs to exactly one set. Sets are merged with Union, split
// one element at a time with MakeSingleton, and enumerated with Set or
// AllSets without any auxiliary structure. The zero value is an empty Vec
// ready to use.
//
// A Vec is not safe for concurrent use. Queries such as SameSet and set
// iteration compress paths in the underlying forest, so even concurrent
// readers need external mutual exclusion.
type Vec[T any] struct {
	data []T
	meta store
}

// New returns an empty Vec.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity returns an empty Vec with room for n values.
func WithCapacity[T any](n int) *Vec[T] {
	return &Vec[T]{
		data: make([]T, 0, n),
		meta: make(store, 0, n),
	}
}

// FromSlice returns a Vec holding values, each in its own set. The Vec takes
// ownership of the slice.
func FromSlice[T any](values []T) *Vec[T] {
	return &Vec[T]{
		data: values,
		meta: make(store, 0, len(values)).singletons(0, len(values)),
	}
}

// Repeat returns a Vec of n singleton copies of value.
func Repeat[T any](value T, n int) *Vec[T] {
	values := make([]T, n)
	for i := range values {
		values[i] = value
	}
	return FromSlice(values)
}

// Labeled pairs a value with the label of the set it should start in.
type Labeled[T any, L comparable] struct {
	Value T
	Label L
}

// Grouped builds a Vec from labeled values. Values sharing a label are placed
// in the same set; the order of values is preserved.
func Grouped[T any, L comparable](items ...Labeled[T, L]) *Vec[T] {
	v := WithCapacity[T](len(items))
	first := make(map[L]int, len(items))
	for _, item := range items {
		index := v.Len()
		v.Push(item.Value)
		if prev, ok := first[item.Label]; ok {
			v.Union(prev, index)
		} else {
			first[item.Label] = index
		}
	}
	return v
}

// Clone returns a copy of v with the same values and the same partition.
// Values are copied shallowly.
func (v *Vec[T]) Clone() *Vec[T] {
	return &Vec[T]{
		data: slices.Clone(v.data),
		meta: slices.Clone(v.meta),
	}
}

// Len returns the number of values.
func (v *Vec[T]) Len() int { return len(v.data) }

// IsEmpty reports whether v holds no values.
func (v *Vec[T]) IsEmpty() bool { return len(v.data) == 0 }

// Cap returns the number of values v can hold without reallocating.
func (v *Vec[T]) Cap() int { return min(cap(v.data), cap(v.meta)) }

// At returns the value at index i.
func (v *Vec[T]) At(i int) T {
	v.checkIndex(i)
	return v.data[i]
}

// Ptr returns a pointer to the value at index i. The pointer is invalidated
// by any operation that changes the length of v.
func (v *Vec[T]) Ptr(i int) *T {
	v.checkIndex(i)
	return &v.data[i]
}

// Store replaces the value at index i. Set membership is unchanged.
func (v *Vec[T]) Store(i int, value T) {
	v.checkIndex(i)
	v.data[i] = value
}

// Values returns the values in index order. The slice aliases v: writes
// through it are visible to v, and it is invalidated by any operation that
// changes the length of v.
func (v *Vec[T]) Values() []T { return v.data }

// Push appends value as a new singleton set.
func (v *Vec[T]) Push(value T) {
	v.meta = append(v.meta, newMetadata(len(v.data)))
	v.data = append(v.data, value)
}

// Pop removes the last value and returns it. The remaining members of its
// set stay together. It returns false if v is empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.data) == 0 {
		return zero, false
	}
	last := len(v.data) - 1
	v.MakeSingleton(last)

	value := v.data[last]
	v.data[last] = zero
	v.data = v.data[:last]
	v.meta = v.meta[:last]
	return value, true
}

// Insert places value at index at as a new singleton set, shifting every
// later value one position up. at may equal Len.
func (v *Vec[T]) Insert(at int, value T) {
	if at < 0 || at > len(v.data) {
		panic(fmt.Sprintf("partition: insertion index %d out of range [0:%d]", at, len(v.data)+1))
	}
	v.meta.shift(at, 1)
	v.data = slices.Insert(v.data, at, value)
	v.meta = slices.Insert(v.meta, at, newMetadata(at))
}

// Remove deletes the value at index at and returns it, shifting every later
// value one position down. The remaining members of its set stay together.
func (v *Vec[T]) Remove(at int) T {
	v.checkIndex(at)
	v.MakeSingleton(at)

	value := v.data[at]
	v.data = slices.Delete(v.data, at, at+1)
	v.meta = slices.Delete(v.meta, at, at+1)
	v.meta.shift(at+1, -1)
	return value
}

// Append moves all values of other to the end of v, keeping their sets.
// other is left empty. Appending a Vec to itself panics.
func (v *Vec[T]) Append(other *Vec[T]) {
	if other == v {
		panic("partition: cannot append a Vec to itself")
	}
	if len(other.data) == 0 {
		return
	}
	other.meta.shift(0, len(v.data))
	v.data = append(v.data, other.data...)
	v.meta = append(v.meta, other.meta...)

	clear(other.data)
	other.data = other.data[:0]
	other.meta = other.meta[:0]
}

// Extend appends values, each as a new singleton set.
func (v *Vec[T]) Extend(values ...T) {
	n := len(v.data)
	v.data = append(v.data, values...)
	v.meta = v.meta.singletons(n, len(v.data))
}

// Truncate shortens v to n values. Sets that lose members keep their
// surviving members together: the smallest surviving index becomes the new
// root and the survivors keep their previous iteration order. Truncating to a
// length >= Len is a no-op.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("partition: truncate to negative length %d", n))
	}
	if n >= len(v.data) {
		return
	}
	v.repairCut(n)

	clear(v.data[n:])
	v.data = v.data[:n]
	v.meta = v.meta[:n]
}

// repairCut rebuilds every set that has members on both sides of n so that no
// surviving metadata refers to an index >= n.
func (v *Vec[T]) repairCut(n int) {
	seen := bitset.New(uint(n))
	var survivors []int

	for i := 0; i < n; i++ {
		if seen.Test(uint(i)) {
			continue
		}
		// i is the smallest surviving member of its set.
		survivors = survivors[:0]
		cut := false
		for cur := i; ; {
			if cur < n {
				survivors = append(survivors, cur)
				seen.Set(uint(cur))
			} else {
				cut = true
			}
			cur = v.meta[cur].link
			if cur == i {
				break
			}
		}
		if !cut {
			continue
		}

		for k, s := range survivors {
			v.meta[s].parent = i
			v.meta[s].link = survivors[(k+1)%len(survivors)]
		}
		v.meta[i].rank = 0
		if len(survivors) > 1 {
			v.meta[i].rank = 1
		}
	}
}

// Resize changes the length of v to n. New slots hold fill, each in its own
// set; shrinking behaves like Truncate.
func (v *Vec[T]) Resize(n int, fill T) {
	if n <= len(v.data) {
		v.Truncate(n)
		return
	}
	old := len(v.data)
	v.data = slices.Grow(v.data, n-old)
	for range n - old {
		v.data = append(v.data, fill)
	}
	v.meta = v.meta.singletons(old, n)
}

// Clear removes all values, keeping the allocated capacity.
func (v *Vec[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
	v.meta = v.meta[:0]
}

// Reserve ensures room for at least additional more values.
func (v *Vec[T]) Reserve(additional int) {
	v.data = slices.Grow(v.data, additional)
	v.meta = slices.Grow(v.meta, additional)
}

// Clip releases unused capacity.
func (v *Vec[T]) Clip() {
	v.data = slices.Clip(v.data)
	v.meta = slices.Clip(v.meta)
}

func (v *Vec[T]) checkIndex(i int) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("partition: index %d out of range [0:%d]", i, len(v.data)))
	}
}
