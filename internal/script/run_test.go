package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/partitions/internal/telemetry"
)

func TestRun_Testdata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file      string
		wantSets  [][]int
		wantSteps int
	}{
		{file: "basic.toml", wantSets: [][]int{{0}, {1, 3}, {2}}, wantSteps: 7},
		{file: "structural.toml", wantSets: [][]int{{0}, {1, 3}, {2}, {4}, {5}, {6}}, wantSteps: 13},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()
			s, err := Load(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			res, err := Run(s)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if diff := cmp.Diff(tt.wantSets, res.Sets()); diff != "" {
				t.Errorf("Sets() mismatch (-want +got):\n%s", diff)
			}
			if len(res.Steps) != tt.wantSteps {
				t.Errorf("got %d steps, want %d", len(res.Steps), tt.wantSteps)
			}
		})
	}
}

func TestRun_InitialGroups(t *testing.T) {
	t.Parallel()
	s := &Script{
		Elements: []Element{
			{Value: "a", Set: "x"},
			{Value: "b"},
			{Value: "c", Set: "x"},
			{Value: "d"},
		},
	}
	res, err := Run(s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := [][]string{{"a", "c"}, {"b"}, {"d"}}
	if diff := cmp.Diff(want, res.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_PopAndRemoveReportValues(t *testing.T) {
	t.Parallel()
	s := &Script{
		Elements: elements("a", "b", "c"),
		Ops: []Op{
			{Kind: OpPop},
			{Kind: OpRemove, At: ptr(0)},
			{Kind: OpPop},
			{Kind: OpPop},
		},
	}
	res, err := Run(s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var got []string
	for _, step := range res.Steps {
		got = append(got, step.Output)
	}
	if diff := cmp.Diff([]string{"c", "a", "b", ""}, got); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ExpectationFailureStops(t *testing.T) {
	t.Parallel()
	s := &Script{
		Elements: elements("a", "b", "c"),
		Ops: []Op{
			{Kind: OpUnion, A: ptr(0), B: ptr(1)},
			{Kind: OpExpectSame, A: ptr(0), B: ptr(2)},
			{Kind: OpUnion, A: ptr(1), B: ptr(2)},
		},
	}
	var observed []int
	res, err := Run(s, WithObserver(func(step Step) {
		observed = append(observed, step.Number)
	}))
	if !errors.Is(err, ErrExpectationFailed) {
		t.Fatalf("expected ErrExpectationFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 2 (expect_same)") {
		t.Errorf("error should name the failing step: %v", err)
	}
	if res == nil {
		t.Fatal("a failed expectation should still return the state reached")
	}
	if diff := cmp.Diff([]int{1, 2}, observed); diff != "" {
		t.Errorf("observed steps mismatch (-want +got):\n%s", diff)
	}
	if res.Vec.SameSet(1, 2) {
		t.Error("steps after the failure must not run")
	}
}

func TestRun_ExpectationsFail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   Op
	}{
		{"other", Op{Kind: OpExpectOther, A: ptr(0), B: ptr(1)}},
		{"singleton", Op{Kind: OpExpectSingleton, A: ptr(1)}},
		{"len of set", Op{Kind: OpExpectLenOfSet, A: ptr(0), Want: ptr(3)}},
		{"len", Op{Kind: OpExpectLen, Want: ptr(2)}},
		{"sets", Op{Kind: OpExpectSets, Sets: [][]int{{0}, {1}, {2}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &Script{
				Elements: []Element{{Value: "a", Set: "x"}, {Value: "b", Set: "x"}, {Value: "c"}},
				Ops:      []Op{tt.op},
			}
			if _, err := Run(s); !errors.Is(err, ErrExpectationFailed) {
				t.Errorf("expected ErrExpectationFailed, got %v", err)
			}
		})
	}
}

func TestRun_ExpectSetsIgnoresOrder(t *testing.T) {
	t.Parallel()
	s := &Script{
		Elements: []Element{{Value: "a"}, {Value: "b", Set: "x"}, {Value: "c"}, {Value: "d", Set: "x"}},
		Ops:      []Op{{Kind: OpExpectSets, Sets: [][]int{{3, 1}, {2}, {0}}}},
	}
	if _, err := Run(s); err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestRun_InvalidScript(t *testing.T) {
	t.Parallel()
	s := &Script{
		SourceFile: "bad.toml",
		Elements:   elements("a"),
		Ops:        []Op{{Kind: OpUnion, A: ptr(0), B: ptr(5)}},
	}
	res, err := Run(s)
	if !errors.Is(err, ErrInvalidScript) || !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrInvalidScript wrapping ErrOutOfBounds, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "b" {
		t.Errorf("expected a ValidationError on field b, got %v", err)
	}
	if res != nil {
		t.Error("an invalid script must not produce a result")
	}
}

func TestRun_OversizedResizeIsRejected(t *testing.T) {
	t.Parallel()
	s := &Script{
		Elements: elements("a"),
		Ops:      []Op{{Kind: OpResize, Len: ptr(1 << 62), Value: ptr("x")}},
	}
	res, err := Run(s)
	if !errors.Is(err, ErrInvalidScript) || !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrInvalidScript wrapping ErrOutOfBounds, got %v", err)
	}
	if res != nil {
		t.Error("an oversized resize must not produce a result")
	}
}

func TestRun_EmitsTelemetry(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := &Script{
		Partition: Info{Name: "demo"},
		Elements:  elements("a", "b"),
		Ops: []Op{
			{Kind: OpUnion, A: ptr(0), B: ptr(1)},
			{Kind: OpExpectLenOfSet, A: ptr(1), Want: ptr(2)},
		},
	}
	if _, err := Run(s, WithEmitter(telemetry.NewWriterEmitter(&buf))); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var kinds []string
	var steps []int
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var evt telemetry.Event
		if err := dec.Decode(&evt); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if evt.Script != "demo" {
			t.Errorf("event %q has script %q, want demo", evt.Kind, evt.Script)
		}
		kinds = append(kinds, evt.Kind)
		steps = append(steps, evt.Step)
	}

	wantKinds := []string{
		telemetry.KindScriptStart,
		telemetry.KindStepApplied,
		telemetry.KindExpectation,
		telemetry.KindScriptDone,
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("event kinds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 0}, steps); diff != "" {
		t.Errorf("event steps mismatch (-want +got):\n%s", diff)
	}
}
