package partition

import (
	"fmt"
	"strings"
)

// Equal reports whether a and b hold equal values at every index and
// partition their indices into the same sets. Which index happens to be the
// root of a set does not matter.
func Equal[T comparable](a, b *Vec[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[T, U any](a *Vec[T], b *Vec[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	n := a.Len()

	// Roots of a map to roots of b and back; both directions must agree for
	// the partitions to be isomorphic.
	forward := make([]int, n)
	backward := make([]int, n)
	for i := range n {
		forward[i], backward[i] = -1, -1
	}

	for i := range n {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
		ra, rb := a.findFinal(i), b.findFinal(i)
		switch {
		case forward[ra] == -1 && backward[rb] == -1:
			forward[ra], backward[rb] = rb, ra
		case forward[ra] != rb || backward[rb] != ra:
			return false
		}
	}
	return true
}

// String formats v as a list of "value => set" pairs where sets are numbered
// in order of first appearance, e.g. "[a => 0, b => 1, c => 0]".
func (v *Vec[T]) String() string {
	names := make(map[int]int)
	var b strings.Builder
	b.WriteByte('[')
	for i, value := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		root := v.findFinal(i)
		name, ok := names[root]
		if !ok {
			name = len(names)
			names[root] = name
		}
		fmt.Fprintf(&b, "%v => %d", value, name)
	}
	b.WriteByte(']')
	return b.String()
}
