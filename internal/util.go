package internal

import "math"

// Used uniformly wherever a determinant, cross product or crossing parameter
// is compared against zero.
const Tolerance = 1e-9

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Z component of the 3D cross product
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit vector in the direction of p. The second result is false for a zero
// length vector.
func (p Point) Unit() (Point, bool) {
	n := p.Norm()
	if n < Tolerance {
		return Point{}, false
	}
	return p.Scale(1 / n), true
}

func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (l *ParentList) Len() int {
	return l.n
}

func (l *ParentList) At(i int) int {
	if i >= l.n {
		topologyf("parent index %d out of range for list of length %d", i, l.n)
	}
	return l.ids[i]
}

func (l *ParentList) Slice() []int {
	return append([]int(nil), l.ids[:l.n]...)
}

func (l *ParentList) Contains(element int) bool {
	for _, id := range l.ids[:l.n] {
		if id == element {
			return true
		}
	}
	return false
}

func (l *ParentList) Add(element int) {
	if l.n == len(l.ids) {
		topologyf("edge already has two parents %v, cannot add %d", l.ids, element)
	}
	l.ids[l.n] = element
	l.n++
}

// Remove the element if present. Reports whether anything was removed.
func (l *ParentList) Remove(element int) bool {
	for i := 0; i < l.n; i++ {
		if l.ids[i] == element {
			copy(l.ids[i:], l.ids[i+1:l.n])
			l.n--
			l.ids[l.n] = 0
			return true
		}
	}
	return false
}

func (l *ParentList) Replace(orig, replacement int) {
	for i := 0; i < l.n; i++ {
		if l.ids[i] == orig {
			l.ids[i] = replacement
			return
		}
	}
	topologyf("element %d is not a parent (parents %v)", orig, l.Slice())
}
