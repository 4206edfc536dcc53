package partition

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// cursor walks the link ring of one set starting at its root. Every visited
// member is re-parented directly to the root, so a complete walk leaves the
// set's tree with height one.
type cursor[T any] struct {
	vec     *Vec[T]
	root    int
	current int
	steps   int
	done    bool
}

func (c *cursor[T]) step() (int, bool) {
	if c.done {
		return 0, false
	}
	m := c.vec.meta
	cur := c.current
	m[cur].parent = c.root
	c.steps++

	next := m[cur].link
	if next == c.root {
		c.done = true
		if c.steps > 1 {
			m[c.root].rank = 1
		}
	} else {
		c.current = next
	}
	return cur, true
}

// Set is a cursor over the members of one set. It yields every member exactly
// once, starting at the set's root, in link order. The order is unrelated to
// index order.
//
// A Set must not be used after v is structurally modified.
type Set[T any] struct {
	cursor[T]
}

// Set returns a cursor over the members of the set containing i.
func (v *Vec[T]) Set(i int) *Set[T] {
	v.checkIndex(i)
	return &Set[T]{cursor: v.cursorAt(v.findFinal(i))}
}

func (v *Vec[T]) cursorAt(root int) cursor[T] {
	return cursor[T]{vec: v, root: root, current: root}
}

// Root returns the representative the cursor started from.
func (s *Set[T]) Root() int { return s.root }

// Next returns the next member and its value. ok is false once the set is
// exhausted.
func (s *Set[T]) Next() (index int, value T, ok bool) {
	index, ok = s.step()
	if ok {
		value = s.vec.data[index]
	}
	return index, value, ok
}

// All returns the remaining members as a range function.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for {
			i, value, ok := s.Next()
			if !ok || !yield(i, value) {
				return
			}
		}
	}
}

// Indices drains the cursor and returns the remaining member indices.
func (s *Set[T]) Indices() []int {
	var out []int
	for i, ok := s.step(); ok; i, ok = s.step() {
		out = append(out, i)
	}
	return out
}

// SetMut is like Set but yields pointers to the members' values. Each pointer
// is only meant to be used until the next call to Next; holding several at
// once is a contract violation even though nothing checks it at run time.
type SetMut[T any] struct {
	cursor[T]
}

// SetMut returns a mutable cursor over the members of the set containing i.
func (v *Vec[T]) SetMut(i int) *SetMut[T] {
	v.checkIndex(i)
	return &SetMut[T]{cursor: v.cursorAt(v.findFinal(i))}
}

// Root returns the representative the cursor started from.
func (s *SetMut[T]) Root() int { return s.root }

// Next returns the next member and a pointer to its value. ok is false once
// the set is exhausted.
func (s *SetMut[T]) Next() (index int, value *T, ok bool) {
	index, ok = s.step()
	if ok {
		value = &s.vec.data[index]
	}
	return index, value, ok
}

// All returns the remaining members as a range function.
func (s *SetMut[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for {
			i, value, ok := s.Next()
			if !ok || !yield(i, value) {
				return
			}
		}
	}
}

// rootScan visits indices from both ends and reports each root the first
// time one of its members is reached.
type rootScan[T any] struct {
	vec         *Vec[T]
	seen        *bitset.BitSet
	front, back int
}

func newRootScan[T any](v *Vec[T]) rootScan[T] {
	return rootScan[T]{
		vec:  v,
		seen: bitset.New(uint(len(v.data))),
		back: len(v.data),
	}
}

func (r *rootScan[T]) next() (int, bool) {
	for r.front < r.back {
		root := r.vec.findFinal(r.front)
		r.front++
		if !r.seen.Test(uint(root)) {
			r.seen.Set(uint(root))
			return root, true
		}
	}
	return 0, false
}

func (r *rootScan[T]) nextBack() (int, bool) {
	for r.front < r.back {
		r.back--
		root := r.vec.findFinal(r.back)
		if !r.seen.Test(uint(root)) {
			r.seen.Set(uint(root))
			return root, true
		}
	}
	return 0, false
}

// AllSets yields one Set per set in v. Scanning forward, sets come in order
// of their smallest index; scanning backward, in order of their largest. The
// two directions may be mixed and never yield the same set twice.
type AllSets[T any] struct {
	rootScan[T]
}

// AllSets returns a double-ended scan over every set in v.
func (v *Vec[T]) AllSets() *AllSets[T] {
	return &AllSets[T]{rootScan: newRootScan(v)}
}

// Next returns the next set from the front.
func (a *AllSets[T]) Next() (*Set[T], bool) {
	root, ok := a.next()
	if !ok {
		return nil, false
	}
	return &Set[T]{cursor: a.vec.cursorAt(root)}, true
}

// NextBack returns the next set from the back.
func (a *AllSets[T]) NextBack() (*Set[T], bool) {
	root, ok := a.nextBack()
	if !ok {
		return nil, false
	}
	return &Set[T]{cursor: a.vec.cursorAt(root)}, true
}

// All returns the remaining sets, front to back, as a range function.
func (a *AllSets[T]) All() iter.Seq[*Set[T]] {
	return func(yield func(*Set[T]) bool) {
		for s, ok := a.Next(); ok && yield(s); s, ok = a.Next() {
		}
	}
}

// Backward returns the remaining sets, back to front, as a range function.
func (a *AllSets[T]) Backward() iter.Seq[*Set[T]] {
	return func(yield func(*Set[T]) bool) {
		for s, ok := a.NextBack(); ok && yield(s); s, ok = a.NextBack() {
		}
	}
}

// AllSetsMut is the mutable counterpart of AllSets.
type AllSetsMut[T any] struct {
	rootScan[T]
}

// AllSetsMut returns a double-ended scan over every set in v yielding mutable
// cursors.
func (v *Vec[T]) AllSetsMut() *AllSetsMut[T] {
	return &AllSetsMut[T]{rootScan: newRootScan(v)}
}

// Next returns the next set from the front.
func (a *AllSetsMut[T]) Next() (*SetMut[T], bool) {
	root, ok := a.next()
	if !ok {
		return nil, false
	}
	return &SetMut[T]{cursor: a.vec.cursorAt(root)}, true
}

// NextBack returns the next set from the back.
func (a *AllSetsMut[T]) NextBack() (*SetMut[T], bool) {
	root, ok := a.nextBack()
	if !ok {
		return nil, false
	}
	return &SetMut[T]{cursor: a.vec.cursorAt(root)}, true
}

// All returns the remaining sets, front to back, as a range function.
func (a *AllSetsMut[T]) All() iter.Seq[*SetMut[T]] {
	return func(yield func(*SetMut[T]) bool) {
		for s, ok := a.Next(); ok && yield(s); s, ok = a.Next() {
		}
	}
}

// Backward returns the remaining sets, back to front, as a range function.
func (a *AllSetsMut[T]) Backward() iter.Seq[*SetMut[T]] {
	return func(yield func(*SetMut[T]) bool) {
		for s, ok := a.NextBack(); ok && yield(s); s, ok = a.NextBack() {
		}
	}
}
