package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ReadsScript(t *testing.T) {
	t.Parallel()
	s, err := Load(filepath.Join("testdata", "basic.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Partition.Name != "basic" {
		t.Errorf("name = %q, want basic", s.Partition.Name)
	}
	if s.SourceFile != "basic.toml" {
		t.Errorf("SourceFile = %q, want basic.toml", s.SourceFile)
	}
	if len(s.Elements) != 4 || len(s.Ops) != 7 {
		t.Fatalf("got %d elements and %d ops, want 4 and 7", len(s.Elements), len(s.Ops))
	}
	first := s.Ops[0]
	if first.Kind != OpUnion || first.A == nil || *first.A != 1 || first.B == nil || *first.B != 2 {
		t.Errorf("first op = %+v, want union 1 2", first)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, ErrNoScript) {
		t.Errorf("expected ErrNoScript, got %v", err)
	}
}

func TestLoad_WrapsParseErrors(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[partition\nname = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parsing broken.toml") {
		t.Errorf("expected a wrapped parse error, got %v", err)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "empty document",
			input: "",
		},
		{
			name: "zero index is kept apart from a missing one",
			input: `
[[op]]
kind = "make_singleton"
a = 0
`,
		},
		{
			name: "unknown field is rejected",
			input: `
[[op]]
kind = "union"
left = 1
`,
			wantErr: true,
		},
		{
			name: "wrong type is rejected",
			input: `
[[op]]
kind = "union"
a = "one"
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_ZeroIndex(t *testing.T) {
	t.Parallel()
	s, err := Parse([]byte("[[op]]\nkind = \"make_singleton\"\na = 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Ops[0].A == nil || *s.Ops[0].A != 0 {
		t.Errorf("a = %v, want pointer to 0", s.Ops[0].A)
	}
	if s.Ops[0].B != nil {
		t.Errorf("b = %v, want nil", *s.Ops[0].B)
	}
}
