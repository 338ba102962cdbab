package Sets

// Default implementations of the combinators. Concrete sets call them for operand kinds they have no
// special handling for. Each applies the algebraic shortcuts first, then native dispatch for the
// commutative operators, and otherwise returns a combinator that evaluates its operands on every Contains.

func nativeUnion[E any](s Set[E]) bool {
	n, ok := s.(Native)
	return ok && n.NativeUnion()
}

func nativeIntersect[E any](s Set[E]) bool {
	n, ok := s.(Native)
	return ok && n.NativeIntersect()
}

func isComplete[E any](s Set[E]) bool {
	_, ok := s.(complete[E])
	return ok
}

// DefaultUnion of a and b. Panics with ErrNilSet if either is nil.
func DefaultUnion[E any](a, b Set[E]) Set[E] {
	mustSet(a)
	mustSet(b)
	if a.Emptiness() == IsEmpty {
		return b
	} else if b.Emptiness() == IsEmpty {
		return a
	} else if nativeUnion(b) {
		return b.Union(a)
	}
	return union[E]{a, b}
}

// DefaultIntersect of a and b. Panics with ErrNilSet if either is nil.
func DefaultIntersect[E any](a, b Set[E]) Set[E] {
	mustSet(a)
	mustSet(b)
	if a.Emptiness() == IsEmpty || b.Emptiness() == IsEmpty {
		return Empty[E]()
	} else if nativeIntersect(b) {
		return b.Intersect(a)
	}
	return intersection[E]{a, b}
}

// DefaultSubtract b from a. Panics with ErrNilSet if either is nil.
func DefaultSubtract[E any](a, b Set[E]) Set[E] {
	mustSet(a)
	mustSet(b)
	if isComplete(b) || a.Emptiness() == IsEmpty {
		return Empty[E]()
	} else if b.Emptiness() == IsEmpty {
		return a
	} else if isComplete(a) {
		return b.Inverse()
	}
	return difference[E]{a, b}
}

// DefaultInverse of a. Panics with ErrNilSet if a is nil.
func DefaultInverse[E any](a Set[E]) Set[E] {
	mustSet(a)
	if isComplete(a) {
		return Empty[E]()
	} else if a.Emptiness() == IsEmpty {
		return Complete[E]()
	}
	return inverse[E]{a}
}
