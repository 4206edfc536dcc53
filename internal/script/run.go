package script

import (
	"fmt"
	"slices"

	"github.com/papapumpkin/partitions/internal/partition"
	"github.com/papapumpkin/partitions/internal/telemetry"
)

// Step records the outcome of one operation.
type Step struct {
	Number int    `json:"step"`
	Kind   OpKind `json:"kind"`
	Len    int    `json:"len"`  // length after the step
	Sets   int    `json:"sets"` // number of sets after the step
	Output string `json:"output,omitempty"`
	Err    error  `json:"-"`
}

// Result is the state left by a run.
type Result struct {
	Name  string
	Vec   *partition.Vec[string]
	Steps []Step
}

// Sets returns the partition as index groups: each group sorted ascending,
// groups ordered by their smallest member.
func (r *Result) Sets() [][]int {
	var out [][]int
	for s := range r.Vec.AllSets().All() {
		out = append(out, sortedIndices(s))
	}
	return out
}

// Groups returns the partition as value groups, in the same order as Sets.
func (r *Result) Groups() [][]string {
	sets := r.Sets()
	out := make([][]string, len(sets))
	for i, set := range sets {
		out[i] = make([]string, len(set))
		for j, idx := range set {
			out[i][j] = r.Vec.At(idx)
		}
	}
	return out
}

func sortedIndices(s *partition.Set[string]) []int {
	idx := s.Indices()
	slices.Sort(idx)
	return idx
}

// groupKey labels an initial element. Unlabeled elements get a key unique to
// their position so they start alone.
type groupKey struct {
	label string
	index int
}

type runner struct {
	script  *Script
	vec     *partition.Vec[string]
	emitter *telemetry.Emitter
	observe func(Step)
	steps   []Step
}

// Run validates s and applies its operations in order. A failed expectation
// stops the run; the returned Result then holds the state at the failing step
// and the error wraps ErrExpectationFailed.
func Run(s *Script, opts ...Option) (*Result, error) {
	if errs := Validate(s); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %d problem(s), first: %w", ErrInvalidScript, len(errs), &errs[0])
	}

	r := &runner{script: s, vec: initial(s.Elements)}
	for _, o := range opts {
		o(r)
	}

	if err := r.emit(telemetry.KindScriptStart, 0, map[string]any{
		"elements": r.vec.Len(),
		"sets":     r.vec.AmountOfSets(),
		"ops":      len(s.Ops),
	}); err != nil {
		return nil, err
	}

	runErr := r.apply()

	done := map[string]any{
		"len":   r.vec.Len(),
		"sets":  r.vec.AmountOfSets(),
		"steps": len(r.steps),
		"ok":    runErr == nil,
	}
	if err := r.emit(telemetry.KindScriptDone, 0, done); err != nil && runErr == nil {
		runErr = err
	}

	return &Result{Name: s.Partition.Name, Vec: r.vec, Steps: r.steps}, runErr
}

func initial(elements []Element) *partition.Vec[string] {
	items := make([]partition.Labeled[string, groupKey], len(elements))
	for i, e := range elements {
		key := groupKey{label: e.Set, index: -1}
		if e.Set == "" {
			key.index = i
		}
		items[i] = partition.Labeled[string, groupKey]{Value: e.Value, Label: key}
	}
	return partition.Grouped(items...)
}

func (r *runner) apply() error {
	for i, op := range r.script.Ops {
		step := Step{Number: i + 1, Kind: op.Kind}
		if op.Kind.IsExpectation() {
			step.Err = r.check(op)
		} else {
			step.Output = r.mutate(op)
		}
		step.Len = r.vec.Len()
		step.Sets = r.vec.AmountOfSets()
		r.steps = append(r.steps, step)
		if r.observe != nil {
			r.observe(step)
		}

		if err := r.record(step); err != nil {
			return err
		}
		if step.Err != nil {
			return fmt.Errorf("step %d (%s): %w", step.Number, step.Kind, step.Err)
		}
	}
	return nil
}

func (r *runner) record(step Step) error {
	if step.Kind.IsExpectation() {
		data := map[string]any{"kind": step.Kind, "passed": step.Err == nil}
		if step.Err != nil {
			data["error"] = step.Err.Error()
		}
		return r.emit(telemetry.KindExpectation, step.Number, data)
	}
	data := map[string]any{"kind": step.Kind, "len": step.Len, "sets": step.Sets}
	if step.Output != "" {
		data["output"] = step.Output
	}
	return r.emit(telemetry.KindStepApplied, step.Number, data)
}

// mutate applies a mutating op and returns the value it removed, if any.
// Validation guarantees every index is in range.
func (r *runner) mutate(op Op) string {
	v := r.vec
	switch op.Kind {
	case OpUnion:
		v.Union(*op.A, *op.B)
	case OpMakeSingleton:
		v.MakeSingleton(*op.A)
	case OpPush:
		v.Push(*op.Value)
	case OpPop:
		if value, ok := v.Pop(); ok {
			return value
		}
	case OpInsert:
		v.Insert(*op.At, *op.Value)
	case OpRemove:
		return v.Remove(*op.At)
	case OpTruncate:
		v.Truncate(*op.Len)
	case OpResize:
		v.Resize(*op.Len, *op.Value)
	case OpClear:
		v.Clear()
	case OpExtend:
		v.Extend(op.Values...)
	case OpAppend:
		v.Append(appended(op))
	}
	return ""
}

func appended(op Op) *partition.Vec[string] {
	items := make([]partition.Labeled[string, groupKey], len(op.Values))
	for i, value := range op.Values {
		key := groupKey{index: i}
		if op.Labels != nil && op.Labels[i] != "" {
			key = groupKey{label: op.Labels[i], index: -1}
		}
		items[i] = partition.Labeled[string, groupKey]{Value: value, Label: key}
	}
	return partition.Grouped(items...)
}

func (r *runner) check(op Op) error {
	v := r.vec
	switch op.Kind {
	case OpExpectSame:
		if !v.SameSet(*op.A, *op.B) {
			return fmt.Errorf("%w: %d and %d are in different sets", ErrExpectationFailed, *op.A, *op.B)
		}
	case OpExpectOther:
		if !v.OtherSets(*op.A, *op.B) {
			return fmt.Errorf("%w: %d and %d are in the same set", ErrExpectationFailed, *op.A, *op.B)
		}
	case OpExpectSingleton:
		if !v.IsSingleton(*op.A) {
			return fmt.Errorf("%w: %d is in a set of %d", ErrExpectationFailed, *op.A, v.LenOfSet(*op.A))
		}
	case OpExpectLenOfSet:
		if got := v.LenOfSet(*op.A); got != *op.Want {
			return fmt.Errorf("%w: set of %d has %d members, want %d", ErrExpectationFailed, *op.A, got, *op.Want)
		}
	case OpExpectLen:
		if got := v.Len(); got != *op.Want {
			return fmt.Errorf("%w: length is %d, want %d", ErrExpectationFailed, got, *op.Want)
		}
	case OpExpectSets:
		got := (&Result{Vec: v}).Sets()
		want := normalize(op.Sets)
		if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
			return fmt.Errorf("%w: sets are %v, want %v", ErrExpectationFailed, got, want)
		}
	}
	return nil
}

// normalize sorts each group and orders groups by their smallest member, so
// expected sets can be written in any order.
func normalize(sets [][]int) [][]int {
	out := make([][]int, 0, len(sets))
	for _, set := range sets {
		if len(set) == 0 {
			continue
		}
		s := slices.Clone(set)
		slices.Sort(s)
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })
	return out
}

func (r *runner) emit(kind string, step int, data any) error {
	err := r.emitter.Emit(telemetry.Event{
		Kind:   kind,
		Script: r.script.Partition.Name,
		Step:   step,
		Data:   data,
	})
	if err != nil {
		return fmt.Errorf("recording %s: %w", kind, err)
	}
	return nil
}
