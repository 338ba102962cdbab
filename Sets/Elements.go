package Sets

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Elements is a finite set of comparable values.
type Elements[E comparable] struct {
	m map[E]struct{}
}

// Of the given values. Duplicates are ignored.
func Of[E comparable](es ...E) Elements[E] {
	m := make(map[E]struct{}, len(es))
	for _, e := range es {
		m[e] = struct{}{}
	}
	return Elements[E]{m}
}

func (s Elements[E]) Contains(e E) bool {
	_, ok := s.m[e]
	return ok
}

// Len is the number of elements.
func (s Elements[E]) Len() int {
	return len(s.m)
}

// All elements in no particular order.
func (s Elements[E]) All() iter.Seq[E] {
	return maps.Keys(s.m)
}

func (s Elements[E]) Emptiness() Emptiness {
	if len(s.m) == 0 {
		return IsEmpty
	}
	return NotEmpty
}

func (s Elements[E]) Union(o Set[E]) Set[E] {
	if t, ok := o.(Elements[E]); ok {
		return Elements[E]{merge(s.m, t.m)}
	}
	return DefaultUnion[E](s, o)
}

func (s Elements[E]) Intersect(o Set[E]) Set[E] {
	if t, ok := o.(Elements[E]); ok {
		return Elements[E]{common(s.m, t.m)}
	}
	return DefaultIntersect[E](s, o)
}

func (s Elements[E]) Subtract(o Set[E]) Set[E] {
	if t, ok := o.(Elements[E]); ok {
		return Elements[E]{without(s.m, t.m)}
	}
	return DefaultSubtract[E](s, o)
}

func (s Elements[E]) Inverse() Set[E] {
	return Excluding[E](s)
}

func (s Elements[E]) String() string {
	return "{" + join(s.m) + "}"
}

// Excluding is the set of every value except finitely many.
type Excluding[E comparable] struct {
	m map[E]struct{}
}

// Except returns the set of all values but es.
func Except[E comparable](es ...E) Excluding[E] {
	return Excluding[E](Of(es...))
}

func (s Excluding[E]) Contains(e E) bool {
	_, ok := s.m[e]
	return !ok
}

// Excluded is the number of values not in the set.
func (s Excluding[E]) Excluded() int {
	return len(s.m)
}

// Emptiness is MaybeEmpty unless nothing is excluded, since E may have finitely many values.
func (s Excluding[E]) Emptiness() Emptiness {
	if len(s.m) == 0 {
		return NotEmpty
	}
	return MaybeEmpty
}

func (s Excluding[E]) Union(o Set[E]) Set[E] {
	if t, ok := o.(Excluding[E]); ok {
		return Excluding[E]{common(s.m, t.m)}
	}
	return DefaultUnion[E](s, o)
}

func (s Excluding[E]) Intersect(o Set[E]) Set[E] {
	if t, ok := o.(Excluding[E]); ok {
		return Excluding[E]{merge(s.m, t.m)}
	}
	return DefaultIntersect[E](s, o)
}

// Subtract of another Excluding is the values o excludes that s doesn't.
func (s Excluding[E]) Subtract(o Set[E]) Set[E] {
	if t, ok := o.(Excluding[E]); ok {
		return Elements[E]{without(t.m, s.m)}
	}
	return DefaultSubtract[E](s, o)
}

func (s Excluding[E]) Inverse() Set[E] {
	return Elements[E](s)
}

func (s Excluding[E]) String() string {
	return "*\\{" + join(s.m) + "}"
}

// Time: O(len(a)+len(b))
func merge[E comparable](a, b map[E]struct{}) map[E]struct{} {
	m := make(map[E]struct{}, len(a)+len(b))
	maps.Copy(m, a)
	maps.Copy(m, b)
	return m
}

// Time: O(min(len(a),len(b)))
func common[E comparable](a, b map[E]struct{}) map[E]struct{} {
	if len(a) > len(b) {
		a, b = b, a
	}
	m := make(map[E]struct{}, len(a))
	for e := range a {
		if _, ok := b[e]; ok {
			m[e] = struct{}{}
		}
	}
	return m
}

// Time: O(len(a))
func without[E comparable](a, b map[E]struct{}) map[E]struct{} {
	m := make(map[E]struct{}, len(a))
	for e := range a {
		if _, ok := b[e]; !ok {
			m[e] = struct{}{}
		}
	}
	return m
}

func join[E comparable](m map[E]struct{}) string {
	var sb strings.Builder
	for e := range m {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, e)
	}
	return sb.String()
}
