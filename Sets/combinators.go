package Sets

// Lazy combinators. They hold their operands and evaluate them on every call; nothing is cached.

type union[E any] struct {
	a, b Set[E]
}

func (u union[E]) Contains(e E) bool {
	return u.a.Contains(e) || u.b.Contains(e)
}

func (u union[E]) Emptiness() Emptiness {
	if x, y := u.a.Emptiness(), u.b.Emptiness(); x == NotEmpty || y == NotEmpty {
		return NotEmpty
	} else if x == IsEmpty && y == IsEmpty {
		return IsEmpty
	}
	return MaybeEmpty
}

func (u union[E]) Union(o Set[E]) Set[E] {
	return DefaultUnion[E](u, o)
}

func (u union[E]) Intersect(o Set[E]) Set[E] {
	return DefaultIntersect[E](u, o)
}

func (u union[E]) Subtract(o Set[E]) Set[E] {
	return DefaultSubtract[E](u, o)
}

func (u union[E]) Inverse() Set[E] {
	return DefaultInverse[E](u)
}

type intersection[E any] struct {
	a, b Set[E]
}

func (u intersection[E]) Contains(e E) bool {
	return u.a.Contains(e) && u.b.Contains(e)
}

func (u intersection[E]) Emptiness() Emptiness {
	if u.a.Emptiness() == IsEmpty || u.b.Emptiness() == IsEmpty {
		return IsEmpty
	}
	return MaybeEmpty
}

func (u intersection[E]) Union(o Set[E]) Set[E] {
	return DefaultUnion[E](u, o)
}

func (u intersection[E]) Intersect(o Set[E]) Set[E] {
	return DefaultIntersect[E](u, o)
}

func (u intersection[E]) Subtract(o Set[E]) Set[E] {
	return DefaultSubtract[E](u, o)
}

func (u intersection[E]) Inverse() Set[E] {
	return DefaultInverse[E](u)
}

// difference is a minus b.
type difference[E any] struct {
	a, b Set[E]
}

func (u difference[E]) Contains(e E) bool {
	return u.a.Contains(e) && !u.b.Contains(e)
}

func (u difference[E]) Emptiness() Emptiness {
	if u.a.Emptiness() == IsEmpty {
		return IsEmpty
	}
	return MaybeEmpty
}

func (u difference[E]) Union(o Set[E]) Set[E] {
	return DefaultUnion[E](u, o)
}

func (u difference[E]) Intersect(o Set[E]) Set[E] {
	return DefaultIntersect[E](u, o)
}

func (u difference[E]) Subtract(o Set[E]) Set[E] {
	return DefaultSubtract[E](u, o)
}

func (u difference[E]) Inverse() Set[E] {
	return DefaultInverse[E](u)
}

type inverse[E any] struct {
	a Set[E]
}

func (u inverse[E]) Contains(e E) bool {
	return !u.a.Contains(e)
}

func (u inverse[E]) Emptiness() Emptiness {
	return MaybeEmpty
}

func (u inverse[E]) Union(o Set[E]) Set[E] {
	return DefaultUnion[E](u, o)
}

func (u inverse[E]) Intersect(o Set[E]) Set[E] {
	return DefaultIntersect[E](u, o)
}

func (u inverse[E]) Subtract(o Set[E]) Set[E] {
	return DefaultSubtract[E](u, o)
}

// Inverse of an inverse is its operand.
func (u inverse[E]) Inverse() Set[E] {
	return u.a
}
