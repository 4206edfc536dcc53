package script

// Script is parsed from a partition script TOML file: an initial list of
// labeled elements followed by the operations to apply to them.
type Script struct {
	Partition Info      `toml:"partition"`
	Elements  []Element `toml:"element"`
	Ops       []Op      `toml:"op"`

	SourceFile string `toml:"-"` // base name of the file the script was loaded from
}

// Info holds the script's name and description.
type Info struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Element is one initial value. Elements sharing a non-empty Set label start
// in the same set; an element without a label starts alone.
type Element struct {
	Value string `toml:"value"`
	Set   string `toml:"set"`
}

// OpKind names an operation.
type OpKind string

// Mutating operations.
const (
	OpUnion         OpKind = "union"
	OpMakeSingleton OpKind = "make_singleton"
	OpPush          OpKind = "push"
	OpPop           OpKind = "pop"
	OpInsert        OpKind = "insert"
	OpRemove        OpKind = "remove"
	OpTruncate      OpKind = "truncate"
	OpResize        OpKind = "resize"
	OpClear         OpKind = "clear"
	OpExtend        OpKind = "extend"
	OpAppend        OpKind = "append"
)

// Expectations. A failed expectation stops the run.
const (
	OpExpectSame      OpKind = "expect_same"
	OpExpectOther     OpKind = "expect_other"
	OpExpectSingleton OpKind = "expect_singleton"
	OpExpectLenOfSet  OpKind = "expect_len_of_set"
	OpExpectSets      OpKind = "expect_sets"
	OpExpectLen       OpKind = "expect_len"
)

// IsExpectation reports whether k checks state instead of changing it.
func (k OpKind) IsExpectation() bool {
	switch k {
	case OpExpectSame, OpExpectOther, OpExpectSingleton, OpExpectLenOfSet, OpExpectSets, OpExpectLen:
		return true
	}
	return false
}

// Op is a single step of a script. Which fields are required depends on
// Kind; index fields are pointers so that a missing field can be told apart
// from index 0.
type Op struct {
	Kind   OpKind   `toml:"kind"`
	A      *int     `toml:"a"`
	B      *int     `toml:"b"`
	At     *int     `toml:"at"`
	Len    *int     `toml:"len"`
	Want   *int     `toml:"want"`
	Value  *string  `toml:"value"`
	Values []string `toml:"values"`
	Labels []string `toml:"labels"` // optional set labels for append, parallel to Values
	Sets   [][]int  `toml:"sets"`   // expected partition for expect_sets
}
