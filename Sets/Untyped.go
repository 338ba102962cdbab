package Sets

import (
	"reflect"

	"github.com/pkg/errors"
)

// Untyped is a Set with its element type erased, so sets of different element types can be stored
// together. Combining two Untyped with different element types fails with ErrElementType.
type Untyped interface {
	//ContainsAny is false for values that aren't of the element type.
	ContainsAny(e any) bool
	Emptiness() Emptiness
	UnionAny(o Untyped) (Untyped, error)
	IntersectAny(o Untyped) (Untyped, error)
	SubtractAny(o Untyped) (Untyped, error)
	InverseAny() Untyped
}

type erased[E any] struct {
	s Set[E]
}

// Erase the element type of s. Panics with ErrNilSet if s is nil.
func Erase[E any](s Set[E]) Untyped {
	mustSet(s)
	return erased[E]{s}
}

// Unerase returns the Set behind u if its element type is E.
func Unerase[E any](u Untyped) (Set[E], bool) {
	if t, ok := u.(erased[E]); ok {
		return t.s, true
	}
	return nil, false
}

func (u erased[E]) ContainsAny(e any) bool {
	v, ok := e.(E)
	return ok && u.s.Contains(v)
}

func (u erased[E]) Emptiness() Emptiness {
	return u.s.Emptiness()
}

func (u erased[E]) operand(o Untyped) (Set[E], error) {
	if o == nil {
		return nil, errors.WithStack(ErrNilSet)
	}
	if t, ok := o.(erased[E]); ok {
		return t.s, nil
	}
	return nil, errors.Wrapf(ErrElementType, "%v with %T", reflect.TypeFor[E](), o)
}

func (u erased[E]) UnionAny(o Untyped) (Untyped, error) {
	t, err := u.operand(o)
	if err != nil {
		return nil, err
	}
	return erased[E]{u.s.Union(t)}, nil
}

func (u erased[E]) IntersectAny(o Untyped) (Untyped, error) {
	t, err := u.operand(o)
	if err != nil {
		return nil, err
	}
	return erased[E]{u.s.Intersect(t)}, nil
}

func (u erased[E]) SubtractAny(o Untyped) (Untyped, error) {
	t, err := u.operand(o)
	if err != nil {
		return nil, err
	}
	return erased[E]{u.s.Subtract(t)}, nil
}

func (u erased[E]) InverseAny() Untyped {
	return erased[E]{u.s.Inverse()}
}
