package partition

// metadata is the bookkeeping kept next to every value. Each slot is a node
// in two structures at once: the union-find forest (parent, rank) and the
// circular list enumerating the members of its set (link).
type metadata struct {
	parent int // parent in the forest; a root is its own parent
	link   int // next member of the same set; a singleton links to itself
	rank   int // upper bound on tree height, only read for roots
}

// newMetadata returns the metadata of a fresh singleton living at index.
func newMetadata(index int) metadata {
	return metadata{parent: index, link: index}
}

// store is the metadata arena. It is indexed exactly like the backing values
// and holds plain indices only, so it can be mutated freely while values are
// borrowed.
type store []metadata

// singletons appends fresh singleton metadata for the index range [from, to).
func (s store) singletons(from, to int) store {
	for i := from; i < to; i++ {
		s = append(s, newMetadata(i))
	}
	return s
}

// shift adds delta to every parent and link reference that is >= from.
// Structural edits use it to renumber the forest when indices move.
func (s store) shift(from, delta int) {
	for i := range s {
		if s[i].parent >= from {
			s[i].parent += delta
		}
		if s[i].link >= from {
			s[i].link += delta
		}
	}
}
