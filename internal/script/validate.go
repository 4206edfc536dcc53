package script

import (
	"fmt"
)

// Validate checks s for structural problems. It tracks the length the
// partition will have before each operation, so every index an operation
// names is checked against the state it will actually run on. A script that
// validates cleanly cannot drive the partition out of bounds.
func Validate(s *Script) []ValidationError {
	v := validator{src: s.SourceFile}
	v.grow("element", len(s.Elements))
	for i, op := range s.Ops {
		v.step = i + 1
		v.kind = op.Kind
		v.op(op)
	}
	return v.errs
}

// MaxLen is the largest partition a script may build.
const MaxLen = 1 << 24

type validator struct {
	src    string
	step   int
	kind   OpKind
	length int
	errs   []ValidationError
}

func (v *validator) add(cat ValidationCategory, field string, err error) {
	v.errs = append(v.errs, ValidationError{
		Category:   cat,
		SourceFile: v.src,
		Step:       v.step,
		Kind:       v.kind,
		Field:      field,
		Err:        err,
	})
}

func (v *validator) op(op Op) {
	switch op.Kind {
	case OpUnion, OpExpectSame, OpExpectOther:
		v.index("a", op.A)
		v.index("b", op.B)
	case OpMakeSingleton, OpExpectSingleton:
		v.index("a", op.A)
	case OpExpectLenOfSet:
		v.index("a", op.A)
		v.count("want", op.Want)
	case OpExpectLen:
		v.count("want", op.Want)
	case OpExpectSets:
		v.sets(op.Sets)
	case OpPush:
		v.value(op.Value)
		v.grow("value", 1)
	case OpPop:
		v.length = max(v.length-1, 0)
	case OpInsert:
		v.value(op.Value)
		if op.At == nil {
			v.missing("at")
		} else if *op.At < 0 || *op.At > v.length {
			v.add(ValCatOutOfBounds, "at", fmt.Errorf("%w: at %d with length %d", ErrOutOfBounds, *op.At, v.length))
		}
		v.grow("value", 1)
	case OpRemove:
		if v.index("at", op.At) {
			v.length--
		}
	case OpTruncate:
		if v.count("len", op.Len) {
			v.length = min(v.length, *op.Len)
		}
	case OpResize:
		v.value(op.Value)
		if v.count("len", op.Len) {
			if n := *op.Len - v.length; n > 0 {
				v.grow("len", n)
			} else {
				v.length = *op.Len
			}
		}
	case OpClear:
		v.length = 0
	case OpExtend:
		if op.Values == nil {
			v.missing("values")
		}
		v.grow("values", len(op.Values))
	case OpAppend:
		if op.Values == nil {
			v.missing("values")
		}
		if op.Labels != nil && len(op.Labels) != len(op.Values) {
			v.add(ValCatLabelMismatch, "labels", fmt.Errorf("%w: %d labels for %d values", ErrLabelMismatch, len(op.Labels), len(op.Values)))
		}
		v.grow("values", len(op.Values))
	case "":
		v.missing("kind")
	default:
		v.add(ValCatUnknownKind, "kind", fmt.Errorf("%w: %q", ErrUnknownKind, op.Kind))
	}
}

func (v *validator) missing(field string) {
	v.add(ValCatMissingField, field, fmt.Errorf("%w: %s", ErrMissingField, field))
}

func (v *validator) value(p *string) {
	if p == nil {
		v.missing("value")
	}
}

// grow adds n to the tracked length, refusing to pass MaxLen.
func (v *validator) grow(field string, n int) {
	if n > MaxLen-v.length {
		v.add(ValCatOutOfBounds, field, fmt.Errorf("%w: length %d plus %d exceeds %d", ErrOutOfBounds, v.length, n, MaxLen))
		return
	}
	v.length += n
}

// index reports whether p names an existing element.
func (v *validator) index(field string, p *int) bool {
	if p == nil {
		v.missing(field)
		return false
	}
	if *p < 0 || *p >= v.length {
		v.add(ValCatOutOfBounds, field, fmt.Errorf("%w: %s %d with length %d", ErrOutOfBounds, field, *p, v.length))
		return false
	}
	return true
}

// count reports whether p holds a non-negative number.
func (v *validator) count(field string, p *int) bool {
	if p == nil {
		v.missing(field)
		return false
	}
	if *p < 0 {
		v.add(ValCatOutOfBounds, field, fmt.Errorf("%w: %s %d is negative", ErrOutOfBounds, field, *p))
		return false
	}
	return true
}

func (v *validator) sets(sets [][]int) {
	if sets == nil {
		v.missing("sets")
		return
	}
	for _, set := range sets {
		for _, i := range set {
			if i < 0 || i >= v.length {
				v.add(ValCatOutOfBounds, "sets", fmt.Errorf("%w: sets member %d with length %d", ErrOutOfBounds, i, v.length))
			}
		}
	}
}
