package partition

import "github.com/bits-and-blooms/bitset"

// Union merges the sets containing i and j. It is a no-op if they already
// share a set.
//
// The two link rings are spliced by swapping the roots' links, and the roots
// are attached by rank. On equal ranks the root of i is placed under the root
// of j, whose rank grows by one.
func (v *Vec[T]) Union(i, j int) {
	v.checkIndex(i)
	v.checkIndex(j)

	ri, rj := v.find(i), v.find(j)
	if ri == rj {
		return
	}

	m := v.meta
	m[ri].link, m[rj].link = m[rj].link, m[ri].link

	switch {
	case m[ri].rank < m[rj].rank:
		m[ri].parent = rj
	case m[ri].rank > m[rj].rank:
		m[rj].parent = ri
	default:
		m[ri].parent = rj
		m[rj].rank++
	}
}

// SameSet reports whether i and j belong to the same set.
func (v *Vec[T]) SameSet(i, j int) bool {
	v.checkIndex(i)
	v.checkIndex(j)
	return v.find(i) == v.find(j)
}

// OtherSets reports whether i and j belong to different sets.
func (v *Vec[T]) OtherSets(i, j int) bool {
	return !v.SameSet(i, j)
}

// IsSingleton reports whether i is the only member of its set.
func (v *Vec[T]) IsSingleton(i int) bool {
	v.checkIndex(i)
	return v.meta[i].link == i
}

// LenOfSet returns the number of members in the set containing i. It runs in
// time linear in that number.
func (v *Vec[T]) LenOfSet(i int) int {
	v.checkIndex(i)
	count := 1
	for cur := v.meta[i].link; cur != i; cur = v.meta[cur].link {
		count++
	}
	return count
}

// AmountOfSets returns the number of distinct sets in v.
func (v *Vec[T]) AmountOfSets() int {
	seen := bitset.New(uint(len(v.data)))
	for i := range v.data {
		seen.Set(uint(v.find(i)))
	}
	return int(seen.Count())
}

// MakeSingleton removes i from its set and places it in a set of its own.
// The remaining members stay together under a new root, the member that
// followed i in the link ring. It runs in time linear in the size of the old
// set and is a no-op for a singleton.
func (v *Vec[T]) MakeSingleton(i int) {
	v.checkIndex(i)
	m := v.meta

	if next := m[i].link; next != i {
		// i may have been anywhere in the tree, so the remainder is
		// rebuilt as a star under next.
		cur := next
		for m[cur].link != i {
			m[cur].parent = next
			m[cur].rank = 1
			cur = m[cur].link
		}
		m[cur].parent = next
		m[cur].link = next
		m[cur].rank = 1

		if cur == next {
			m[next].rank = 0
		}
	}
	m[i] = newMetadata(i)
}

// find returns the root of i's set, pointing every node on the way directly
// at the root.
func (v *Vec[T]) find(i int) int {
	parent := v.meta[i].parent
	if parent == i {
		return i
	}
	root := v.find(parent)
	v.meta[i].parent = root
	return root
}

// findFinal returns the root of i's set without compressing the path. It is
// used where a following traversal rewrites the parents anyway, and by
// operations that must not mutate.
func (v *Vec[T]) findFinal(i int) int {
	for v.meta[i].parent != i {
		i = v.meta[i].parent
	}
	return i
}
