package Sets

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
)

// Bound is the kind of an end of a Range.
type Bound int8

const (
	Unbounded Bound = iota // the end extends to infinity; its value is ignored.
	Closed                 // the end value is included.
	Open                   // the end value is excluded.
)

func (b Bound) flip() Bound {
	switch b {
	case Closed:
		return Open
	case Open:
		return Closed
	}
	return Unbounded
}

// Range is an interval of E under a comparator. Operations between two ranges assume they share the same
// comparator; mixing comparators gives meaningless results.
type Range[E any] struct {
	lo, hi         E
	loKind, hiKind Bound
	cmp            func(E, E) int
}

// NewRange from lo to hi with the given kinds of bounds. Panics with ErrNilComparator if cmp is nil.
// A range whose lower end is above its upper end is empty.
func NewRange[E any](cmp func(E, E) int, lo E, loKind Bound, hi E, hiKind Bound) Range[E] {
	if cmp == nil {
		panic(errors.WithStack(ErrNilComparator))
	}
	return Range[E]{lo: lo, hi: hi, loKind: loKind, hiKind: hiKind, cmp: cmp}
}

// ClosedRange is [lo, hi].
func ClosedRange[E cmp.Ordered](lo, hi E) Range[E] {
	return NewRange(cmp.Compare[E], lo, Closed, hi, Closed)
}

// OpenRange is (lo, hi).
func OpenRange[E cmp.Ordered](lo, hi E) Range[E] {
	return NewRange(cmp.Compare[E], lo, Open, hi, Open)
}

// AtLeast is [lo, +inf).
func AtLeast[E cmp.Ordered](lo E) Range[E] {
	var hi E
	return NewRange(cmp.Compare[E], lo, Closed, hi, Unbounded)
}

// AtMost is (-inf, hi].
func AtMost[E cmp.Ordered](hi E) Range[E] {
	var lo E
	return NewRange(cmp.Compare[E], lo, Unbounded, hi, Closed)
}

// Lower end of the range.
func (r Range[E]) Lower() (E, Bound) {
	return r.lo, r.loKind
}

// Upper end of the range.
func (r Range[E]) Upper() (E, Bound) {
	return r.hi, r.hiKind
}

func (r Range[E]) aboveLo(e E) bool {
	switch r.loKind {
	case Closed:
		return r.cmp(e, r.lo) >= 0
	case Open:
		return r.cmp(e, r.lo) > 0
	}
	return true
}

func (r Range[E]) belowHi(e E) bool {
	switch r.hiKind {
	case Closed:
		return r.cmp(e, r.hi) <= 0
	case Open:
		return r.cmp(e, r.hi) < 0
	}
	return true
}

func (r Range[E]) Contains(e E) bool {
	return r.aboveLo(e) && r.belowHi(e)
}

// Emptiness is MaybeEmpty only when it depends on E being dense, like (1, 2) or (-inf, 0) for integers.
func (r Range[E]) Emptiness() Emptiness {
	if r.loKind == Unbounded && r.hiKind == Unbounded {
		return NotEmpty
	} else if r.loKind == Unbounded {
		return closedOrMaybe(r.hiKind)
	} else if r.hiKind == Unbounded {
		return closedOrMaybe(r.loKind)
	}
	switch c := r.cmp(r.lo, r.hi); {
	case c > 0:
		return IsEmpty
	case c == 0:
		if r.loKind == Closed && r.hiKind == Closed {
			return NotEmpty
		}
		return IsEmpty
	default:
		if r.loKind == Closed || r.hiKind == Closed {
			return NotEmpty
		}
		return MaybeEmpty
	}
}

func closedOrMaybe(b Bound) Emptiness {
	if b == Closed {
		return NotEmpty
	}
	return MaybeEmpty
}

// cmpLower orders lower ends; the smaller one admits more values.
func (r Range[E]) cmpLower(a E, ak Bound, b E, bk Bound) int {
	if ak == Unbounded || bk == Unbounded {
		return unbounded(ak, bk)
	}
	if c := r.cmp(a, b); c != 0 {
		return c
	}
	return cmp.Compare(ak, bk) // Closed < Open
}

// cmpUpper orders upper ends; the larger one admits more values.
func (r Range[E]) cmpUpper(a E, ak Bound, b E, bk Bound) int {
	if ak == Unbounded || bk == Unbounded {
		return -unbounded(ak, bk)
	}
	if c := r.cmp(a, b); c != 0 {
		return c
	}
	return cmp.Compare(bk, ak) // Open < Closed
}

// unbounded orders two lower ends of which at least one is Unbounded.
func unbounded(ak, bk Bound) int {
	if ak == bk {
		return 0
	} else if ak == Unbounded {
		return -1
	}
	return 1
}

// Intersect of two ranges is a Range, possibly empty.
func (r Range[E]) Intersect(o Set[E]) Set[E] {
	if t, ok := o.(Range[E]); ok {
		return r.intersect(t)
	}
	return DefaultIntersect[E](r, o)
}

func (r Range[E]) intersect(t Range[E]) Range[E] {
	res := r
	if r.cmpLower(r.lo, r.loKind, t.lo, t.loKind) < 0 {
		res.lo, res.loKind = t.lo, t.loKind
	}
	if r.cmpUpper(r.hi, r.hiKind, t.hi, t.hiKind) > 0 {
		res.hi, res.hiKind = t.hi, t.hiKind
	}
	return res
}

// Union of two ranges is a Range when they overlap or touch, like [1, 3) and [3, 5].
func (r Range[E]) Union(o Set[E]) Set[E] {
	if t, ok := o.(Range[E]); ok {
		if r.Emptiness() == IsEmpty {
			return t
		} else if t.Emptiness() == IsEmpty {
			return r
		} else if r.connected(t) {
			res := r
			if r.cmpLower(r.lo, r.loKind, t.lo, t.loKind) > 0 {
				res.lo, res.loKind = t.lo, t.loKind
			}
			if r.cmpUpper(r.hi, r.hiKind, t.hi, t.hiKind) < 0 {
				res.hi, res.hiKind = t.hi, t.hiKind
			}
			return res
		}
	}
	return DefaultUnion[E](r, o)
}

// connected reports whether there's no gap between two non-empty ranges.
func (r Range[E]) connected(t Range[E]) bool {
	a, b := r, t
	if r.cmpLower(a.lo, a.loKind, b.lo, b.loKind) > 0 {
		a, b = b, a
	}
	if a.hiKind == Unbounded || b.loKind == Unbounded {
		return true
	}
	switch c := r.cmp(a.hi, b.lo); {
	case c > 0:
		return true
	case c == 0:
		return a.hiKind == Closed || b.loKind == Closed
	}
	return false
}

// Difference of r minus o as the ranges left over, lowest first. There are at most 2 of them; none are
// known to be empty.
func (r Range[E]) Difference(o Range[E]) []Range[E] {
	if r.Emptiness() == IsEmpty {
		return nil
	} else if o.Emptiness() == IsEmpty || r.intersect(o).Emptiness() == IsEmpty {
		return []Range[E]{r}
	}
	res := make([]Range[E], 0, 2)
	if o.loKind != Unbounded {
		below := r
		below.hi, below.hiKind = o.lo, o.loKind.flip()
		if below = r.intersect(below); below.Emptiness() != IsEmpty {
			res = append(res, below)
		}
	}
	if o.hiKind != Unbounded {
		above := r
		above.lo, above.loKind = o.hi, o.hiKind.flip()
		if above = r.intersect(above); above.Emptiness() != IsEmpty {
			res = append(res, above)
		}
	}
	return res
}

// Remainder is the lowest range of Difference. Without one it's an empty range with the comparator of r.
func (r Range[E]) Remainder(o Range[E]) (Range[E], bool) {
	if d := r.Difference(o); len(d) > 0 {
		return d[0], true
	}
	return Range[E]{lo: r.lo, hi: r.lo, loKind: Open, hiKind: Open, cmp: r.cmp}, false
}

// Subtract of another range is a Range, or the union of the 2 ranges left over.
func (r Range[E]) Subtract(o Set[E]) Set[E] {
	if t, ok := o.(Range[E]); ok {
		switch d := r.Difference(t); len(d) {
		case 0:
			return Empty[E]()
		case 1:
			return d[0]
		default:
			return DefaultUnion[E](d[0], d[1])
		}
	}
	return DefaultSubtract[E](r, o)
}

// Inverse of a range is made of the rays outside of it.
func (r Range[E]) Inverse() Set[E] {
	var below, above Range[E]
	hasBelow, hasAbove := r.loKind != Unbounded, r.hiKind != Unbounded
	if hasBelow {
		below = Range[E]{hi: r.lo, hiKind: r.loKind.flip(), cmp: r.cmp}
	}
	if hasAbove {
		above = Range[E]{lo: r.hi, loKind: r.hiKind.flip(), cmp: r.cmp}
	}
	switch {
	case hasBelow && hasAbove:
		return union[E]{below, above}
	case hasBelow:
		return below
	case hasAbove:
		return above
	}
	return Empty[E]()
}

func (r Range[E]) String() string {
	lo, hi := "(-inf", "+inf)"
	switch r.loKind {
	case Closed:
		lo = fmt.Sprintf("[%v", r.lo)
	case Open:
		lo = fmt.Sprintf("(%v", r.lo)
	}
	switch r.hiKind {
	case Closed:
		hi = fmt.Sprintf("%v]", r.hi)
	case Open:
		hi = fmt.Sprintf("%v)", r.hi)
	}
	return lo + ", " + hi
}
