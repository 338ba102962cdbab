package Sets

type empty[E any] struct{}

// Empty set of E. All empty sets of the same E are equal.
func Empty[E any]() Set[E] {
	return empty[E]{}
}

func (empty[E]) Contains(E) bool {
	return false
}

func (empty[E]) Emptiness() Emptiness {
	return IsEmpty
}

func (empty[E]) Union(o Set[E]) Set[E] {
	mustSet(o)
	return o
}

func (u empty[E]) Intersect(o Set[E]) Set[E] {
	mustSet(o)
	return u
}

func (u empty[E]) Subtract(o Set[E]) Set[E] {
	mustSet(o)
	return u
}

func (empty[E]) Inverse() Set[E] {
	return complete[E]{}
}

func (empty[E]) NativeUnion() bool {
	return true
}

func (empty[E]) NativeIntersect() bool {
	return true
}

func (empty[E]) String() string {
	return "{}"
}

type complete[E any] struct{}

// Complete set of every E. All complete sets of the same E are equal.
func Complete[E any]() Set[E] {
	return complete[E]{}
}

func (complete[E]) Contains(E) bool {
	return true
}

// Emptiness is NotEmpty since every type has at least its zero value.
func (complete[E]) Emptiness() Emptiness {
	return NotEmpty
}

func (u complete[E]) Union(o Set[E]) Set[E] {
	mustSet(o)
	return u
}

func (complete[E]) Intersect(o Set[E]) Set[E] {
	mustSet(o)
	return o
}

func (u complete[E]) Subtract(o Set[E]) Set[E] {
	return DefaultSubtract[E](u, o)
}

func (complete[E]) Inverse() Set[E] {
	return empty[E]{}
}

func (complete[E]) NativeUnion() bool {
	return true
}

func (complete[E]) NativeIntersect() bool {
	return true
}

func (complete[E]) String() string {
	return "*"
}
