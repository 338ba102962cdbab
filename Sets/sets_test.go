package Sets

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

const domain = 64

func even(x int) bool {
	return x%2 == 0
}

// samples is one set of every kind over ints.
func samples() map[string]Set[int] {
	return map[string]Set[int]{
		"empty":     Empty[int](),
		"complete":  Complete[int](),
		"elements":  Of(1, 2, 3, 5, 8, 13, 21),
		"excluding": Except(2, 3, 4, 40),
		"closed":    ClosedRange(10, 30),
		"open":      OpenRange(20, 50),
		"ray":       AtLeast(45),
		"func":      Func[int](even),
		"union":     Of(60).Union(Func[int](even)),
		"inverse":   Func[int](even).Inverse(),
	}
}

func TestSet_Laws(t *testing.T) {
	all := samples()
	for an, a := range all {
		for bn, b := range all {
			u, i, d := a.Union(b), a.Intersect(b), a.Subtract(b)
			for x := -4; x < domain; x++ {
				ax, bx := a.Contains(x), b.Contains(x)
				if u.Contains(x) != (ax || bx) {
					t.Fatalf("%s union %s at %d", an, bn, x)
				}
				if i.Contains(x) != (ax && bx) {
					t.Fatalf("%s intersect %s at %d", an, bn, x)
				}
				if d.Contains(x) != (ax && !bx) {
					t.Fatalf("%s subtract %s at %d", an, bn, x)
				}
			}
			for _, s := range []Set[int]{u, i, d} {
				if e := s.Emptiness(); e != MaybeEmpty {
					has := false
					for x := -4; x < domain && !has; x++ {
						has = s.Contains(x)
					}
					if e == IsEmpty && has {
						t.Fatalf("%s with %s isn't empty", an, bn)
					}
				}
			}
		}
		for x := -4; x < domain; x++ {
			if a.Inverse().Contains(x) == a.Contains(x) {
				t.Fatalf("inverse of %s at %d", an, x)
			}
			if a.Inverse().Inverse().Contains(x) != a.Contains(x) {
				t.Fatalf("double inverse of %s at %d", an, x)
			}
		}
	}
}

func TestSet_Shortcuts(t *testing.T) {
	e, c := Empty[int](), Complete[int]()
	s := Func[int](even)
	assert.Equal(t, c, e.Union(c))
	assert.Equal(t, c, c.Union(e))
	assert.Equal(t, c, s.Union(c))
	assert.Equal(t, e, s.Intersect(e))
	assert.Equal(t, e, e.Intersect(s))
	assert.Equal(t, e, s.Subtract(c))
	assert.Equal(t, e, c.Inverse())
	assert.Equal(t, c, e.Inverse())
	assert.IsType(t, inverse[int]{}, c.Subtract(s))
	assert.IsType(t, union[int]{}, s.Union(Of(1)))
	assert.IsType(t, intersection[int]{}, s.Intersect(Of(1)))
	assert.IsType(t, difference[int]{}, s.Subtract(Of(1)))
	assert.IsType(t, Func[int](nil), s.Inverse().Inverse())
	assert.IsType(t, Func[int](nil), s.Union(e))
	assert.IsType(t, Func[int](nil), s.Intersect(c))
	assert.IsType(t, Func[int](nil), s.Subtract(e))
	assert.IsType(t, Func[int](nil), c.Intersect(s))
}

func TestSet_Nil(t *testing.T) {
	for name, s := range samples() {
		for op, f := range map[string]func(){
			"union":     func() { s.Union(nil) },
			"intersect": func() { s.Intersect(nil) },
			"subtract":  func() { s.Subtract(nil) },
		} {
			func() {
				defer func() {
					err, _ := recover().(error)
					assert.True(t, errors.Is(err, ErrNilSet), "%s %s nil: %v", name, op, err)
				}()
				f()
			}()
		}
	}
	assert.Panics(t, func() { Members[int](nil) })
	assert.Panics(t, func() { Erase[int](nil) })
	var f Func[int]
	for name, s := range samples() {
		func() {
			defer func() {
				err, _ := recover().(error)
				assert.True(t, errors.Is(err, ErrNilSet), "%s union nil func: %v", name, err)
			}()
			s.Union(f)
		}()
	}
	assert.Panics(t, func() { f.Inverse() })
	assert.Panics(t, func() { Erase[int](f) })
	assert.Panics(t, func() { Pred[int](nil) })
	assert.True(t, Pred(even).Contains(2))
	var m *hasPtr
	assert.Panics(t, func() { Members[int](m) })
	assert.NotPanics(t, func() { Members[int](hasMap(nil)) })
}

type hasPtr struct{}

func (*hasPtr) Has(int) bool {
	return true
}

func TestElements(t *testing.T) {
	a, b := Of(1, 2, 3, 4), Of(3, 4, 5)
	u := a.Union(b)
	require.IsType(t, Elements[int]{}, u)
	assert.Equal(t, 5, u.(Elements[int]).Len())
	i := a.Intersect(b)
	require.IsType(t, Elements[int]{}, i)
	assert.ElementsMatch(t, []int{3, 4}, collect(i.(Elements[int])))
	d := a.Subtract(b)
	require.IsType(t, Elements[int]{}, d)
	assert.ElementsMatch(t, []int{1, 2}, collect(d.(Elements[int])))
	assert.Equal(t, IsEmpty, Of[int]().Emptiness())
	assert.Equal(t, NotEmpty, a.Emptiness())
	assert.Equal(t, IsEmpty, a.Intersect(Of(9)).Emptiness())
	inv := a.Inverse()
	require.IsType(t, Excluding[int]{}, inv)
	assert.Equal(t, 4, inv.(Excluding[int]).Excluded())
	assert.Equal(t, a, inv.Inverse())
	assert.Equal(t, "{7}", Of(7).String())
}

func collect(s Elements[int]) []int {
	var res []int
	for e := range s.All() {
		res = append(res, e)
	}
	return res
}

func TestExcluding(t *testing.T) {
	a, b := Except(1, 2, 3), Except(3, 4)
	u := a.Union(b)
	require.IsType(t, Excluding[int]{}, u)
	assert.Equal(t, 1, u.(Excluding[int]).Excluded())
	assert.False(t, u.Contains(3))
	i := a.Intersect(b)
	require.IsType(t, Excluding[int]{}, i)
	assert.Equal(t, 4, i.(Excluding[int]).Excluded())
	d := a.Subtract(b)
	require.IsType(t, Elements[int]{}, d)
	assert.ElementsMatch(t, []int{4}, collect(d.(Elements[int])))
	assert.Equal(t, NotEmpty, Except[int]().Emptiness())
	assert.Equal(t, MaybeEmpty, a.Emptiness())
	assert.Equal(t, MaybeEmpty, Except(true, false).Emptiness())
	assert.False(t, Except(true, false).Contains(true))
	assert.IsType(t, Elements[int]{}, a.Inverse())
}

func TestMembers(t *testing.T) {
	m := hasMap{1: {}, 2: {}}
	s := Members[int](m)
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(3))
	m[3] = struct{}{}
	assert.True(t, s.Contains(3))
	assert.True(t, s.Union(Of(9)).Contains(9))
}

type hasMap map[int]struct{}

func (m hasMap) Has(k int) bool {
	_, ok := m[k]
	return ok
}

func TestUntyped(t *testing.T) {
	a, b := Erase[int](Of(1, 2)), Erase[int](ClosedRange(2, 5))
	assert.True(t, a.ContainsAny(1))
	assert.False(t, a.ContainsAny("1"))
	assert.False(t, a.ContainsAny(nil))
	u, err := a.UnionAny(b)
	require.NoError(t, err)
	assert.True(t, u.ContainsAny(4))
	i, err := a.IntersectAny(b)
	require.NoError(t, err)
	assert.True(t, i.ContainsAny(2))
	assert.False(t, i.ContainsAny(1))
	d, err := a.SubtractAny(b)
	require.NoError(t, err)
	assert.True(t, d.ContainsAny(1))
	assert.False(t, d.ContainsAny(2))
	assert.True(t, a.InverseAny().ContainsAny(3))
	assert.Equal(t, NotEmpty, a.Emptiness())
	s := Erase[string](Of("1"))
	_, err = a.UnionAny(s)
	assert.True(t, errors.Is(err, ErrElementType))
	_, err = s.IntersectAny(a)
	assert.True(t, errors.Is(err, ErrElementType))
	_, err = a.SubtractAny(nil)
	assert.True(t, errors.Is(err, ErrNilSet))
	back, ok := Unerase[int](u)
	require.True(t, ok)
	assert.True(t, back.Contains(5))
	_, ok = Unerase[string](u)
	assert.False(t, ok)
}

func TestEmptiness_String(t *testing.T) {
	assert.Equal(t, "empty", IsEmpty.String())
	assert.Equal(t, "not empty", NotEmpty.String())
	assert.Equal(t, "unknown", MaybeEmpty.String())
}

// random expressions evaluated against a bitmap model.
func TestSet_Random(t *testing.T) {
	type model [domain]bool
	leaf := func() (Set[int], model) {
		var m model
		switch rg.Intn(4) {
		case 0:
			es := make([]int, rg.Intn(8))
			for i := range es {
				es[i] = rg.Intn(domain)
				m[es[i]] = true
			}
			return Of(es...), m
		case 1:
			es := make([]int, rg.Intn(8))
			for i := range m {
				m[i] = true
			}
			for i := range es {
				es[i] = rg.Intn(domain)
				m[es[i]] = false
			}
			return Except(es...), m
		case 2:
			lo := rg.Intn(domain)
			hi := lo + rg.Intn(domain-lo)
			for i := lo; i <= hi; i++ {
				m[i] = true
			}
			return ClosedRange(lo, hi), m
		default:
			k := rg.Intn(5) + 2
			for i := range m {
				m[i] = i%k == 0
			}
			return Func[int](func(x int) bool { return x%k == 0 }), m
		}
	}
	for range 200 {
		s, m := leaf()
		for range 6 {
			o, om := leaf()
			switch rg.Intn(4) {
			case 0:
				s = s.Union(o)
				for i := range m {
					m[i] = m[i] || om[i]
				}
			case 1:
				s = s.Intersect(o)
				for i := range m {
					m[i] = m[i] && om[i]
				}
			case 2:
				s = s.Subtract(o)
				for i := range m {
					m[i] = m[i] && !om[i]
				}
			default:
				s = s.Inverse()
				for i := range m {
					m[i] = !m[i]
				}
			}
		}
		for x := range domain {
			require.Equal(t, m[x], s.Contains(x), "%d in %v", x, s)
		}
	}
}
