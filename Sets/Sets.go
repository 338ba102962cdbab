package Sets

import "github.com/pkg/errors"

var (
	// ErrNilSet is raised when a nil Set is used as an operand.
	ErrNilSet = errors.New("nil set")
	// ErrElementType is returned by the Untyped combinators when the operands have different element types.
	ErrElementType = errors.New("mismatched element type")
	// ErrNilComparator is raised by the Range constructors when no comparator is given.
	ErrNilComparator = errors.New("nil comparator")
)

// Set of E, possibly infinite, defined by its membership test. Implementations are immutable unless noted,
// so a set built from others may be queried from several goroutines as long as the sets it's made of are.
type Set[E any] interface {
	//Contains e in the set. This is the only primitive; every other method can be derived from it.
	Contains(e E) bool
	//Emptiness of the set. Only used for shortcuts, MaybeEmpty is always a correct answer.
	Emptiness() Emptiness
	//Union of the set and o.
	Union(o Set[E]) Set[E]
	//Intersect the set with o.
	Intersect(o Set[E]) Set[E]
	//Subtract o from the set.
	Subtract(o Set[E]) Set[E]
	//Inverse is the complement of the set.
	Inverse() Set[E]
}

// Native is implemented by sets that can union or intersect with any other set cheaply. Since both operators
// are commutative, DefaultUnion(a, b) calls b.Union(a) when b reports NativeUnion, instead of building a
// combinator.
//
// A set reporting native support for an operator must implement it without calling the default for that
// operator, directly or through another set; otherwise the two would call each other forever.
type Native interface {
	NativeUnion() bool
	NativeIntersect() bool
}

// Emptiness is a tri-state answer to whether a set is empty.
type Emptiness int8

const (
	MaybeEmpty Emptiness = iota // not known.
	IsEmpty
	NotEmpty
)

func (e Emptiness) String() string {
	switch e {
	case IsEmpty:
		return "empty"
	case NotEmpty:
		return "not empty"
	default:
		return "unknown"
	}
}

func mustSet[E any](s Set[E]) {
	if f, ok := s.(Func[E]); s == nil || (ok && f == nil) {
		panic(errors.WithStack(ErrNilSet))
	}
}
