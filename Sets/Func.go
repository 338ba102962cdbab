package Sets

import (
	"reflect"

	"github.com/pkg/errors"
)

// Func is the set of values the predicate accepts. The predicate must be pure for the set to be immutable.
// A nil Func is a nil operand: combining it panics with ErrNilSet.
type Func[E any] func(E) bool

// Pred is Func(f), panicking with ErrNilSet if f is nil.
func Pred[E any](f func(E) bool) Func[E] {
	if f == nil {
		panic(errors.Wrap(ErrNilSet, "nil predicate"))
	}
	return f
}

func (f Func[E]) Contains(e E) bool {
	return f(e)
}

func (Func[E]) Emptiness() Emptiness {
	return MaybeEmpty
}

func (f Func[E]) Union(o Set[E]) Set[E] {
	return DefaultUnion[E](f, o)
}

func (f Func[E]) Intersect(o Set[E]) Set[E] {
	return DefaultIntersect[E](f, o)
}

func (f Func[E]) Subtract(o Set[E]) Set[E] {
	return DefaultSubtract[E](f, o)
}

func (f Func[E]) Inverse() Set[E] {
	return DefaultInverse[E](f)
}

// Members is a live view of the keys of m, such as a tree from the Trees package. Unlike the other sets
// here it changes when m does.
func Members[E any](m interface{ Has(E) bool }) Set[E] {
	if m == nil || isNilPointer(m) {
		panic(errors.Wrap(ErrNilSet, "members"))
	}
	return Func[E](m.Has)
}

func isNilPointer(m any) bool {
	switch v := reflect.ValueOf(m); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
