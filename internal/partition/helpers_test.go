package partition

import (
	"slices"
	"testing"
)

// checkInvariants verifies that the forest and the link rings of v agree:
// parents form a forest, links form a permutation, and every ring covers
// exactly the members of one set.
func checkInvariants[T any](t *testing.T, v *Vec[T]) {
	t.Helper()

	n := len(v.data)
	if len(v.meta) != n {
		t.Fatalf("len(meta) = %d, len(data) = %d", len(v.meta), n)
	}

	linked := make([]bool, n)
	for i, m := range v.meta {
		if m.parent < 0 || m.parent >= n {
			t.Fatalf("meta[%d].parent = %d out of range [0:%d]", i, m.parent, n)
		}
		if m.link < 0 || m.link >= n {
			t.Fatalf("meta[%d].link = %d out of range [0:%d]", i, m.link, n)
		}
		if m.rank < 0 {
			t.Fatalf("meta[%d].rank = %d is negative", i, m.rank)
		}
		if linked[m.link] {
			t.Fatalf("index %d is the link target of more than one slot", m.link)
		}
		linked[m.link] = true
	}

	roots := make([]int, n)
	for i := range n {
		cur := i
		for steps := 0; v.meta[cur].parent != cur; steps++ {
			if steps > n {
				t.Fatalf("parent chain from %d does not reach a root", i)
			}
			cur = v.meta[cur].parent
		}
		roots[i] = cur
	}

	visited := make([]bool, n)
	rings := make(map[int]int)
	for i := range n {
		if visited[i] {
			continue
		}
		rings[roots[i]]++
		for cur := i; !visited[cur]; cur = v.meta[cur].link {
			visited[cur] = true
			if roots[cur] != roots[i] {
				t.Fatalf("ring through %d contains %d with root %d, want root %d", i, cur, roots[cur], roots[i])
			}
		}
	}
	for root, count := range rings {
		if count != 1 {
			t.Fatalf("set rooted at %d is split over %d rings", root, count)
		}
	}
}

// model is a naive partition used as a reference: two indices share a set
// iff they carry the same label.
type model struct {
	labels []int
	values []int
	next   int
}

func (m *model) label() int {
	m.next++
	return m.next
}

func (m *model) push(value int) {
	m.labels = append(m.labels, m.label())
	m.values = append(m.values, value)
}

func (m *model) union(i, j int) {
	from, to := m.labels[i], m.labels[j]
	for k, l := range m.labels {
		if l == from {
			m.labels[k] = to
		}
	}
}

func (m *model) singleton(i int) {
	m.labels[i] = m.label()
}

func (m *model) insert(at, value int) {
	m.labels = slices.Insert(m.labels, at, m.label())
	m.values = slices.Insert(m.values, at, value)
}

func (m *model) remove(at int) {
	m.labels = slices.Delete(m.labels, at, at+1)
	m.values = slices.Delete(m.values, at, at+1)
}

func (m *model) truncate(n int) {
	if n < len(m.labels) {
		m.labels = m.labels[:n]
		m.values = m.values[:n]
	}
}

func (m *model) members(i int) []int {
	var out []int
	for k, l := range m.labels {
		if l == m.labels[i] {
			out = append(out, k)
		}
	}
	return out
}

// compare checks v against the reference model.
func compare(t *testing.T, v *Vec[int], m *model) {
	t.Helper()

	checkInvariants(t, v)
	if !slices.Equal(v.Values(), m.values) {
		t.Fatalf("values = %v, want %v", v.Values(), m.values)
	}

	sizes := make(map[int]int)
	for _, l := range m.labels {
		sizes[l]++
	}
	if got := v.AmountOfSets(); got != len(sizes) {
		t.Fatalf("AmountOfSets() = %d, want %d", got, len(sizes))
	}

	for i := range m.labels {
		if got, want := v.LenOfSet(i), sizes[m.labels[i]]; got != want {
			t.Fatalf("LenOfSet(%d) = %d, want %d", i, got, want)
		}
		if got, want := v.IsSingleton(i), sizes[m.labels[i]] == 1; got != want {
			t.Fatalf("IsSingleton(%d) = %v, want %v", i, got, want)
		}
		for j := range m.labels {
			if got, want := v.SameSet(i, j), m.labels[i] == m.labels[j]; got != want {
				t.Fatalf("SameSet(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

// sorted returns a sorted copy of s.
func sorted(s []int) []int {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// mustPanic fails the test if fn returns normally.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
