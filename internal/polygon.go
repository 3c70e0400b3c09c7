package internal

// Even-odd point-in-polygon. This is provided primarily for checking that a
// cleaned up mesh stays inside its boundary loop.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the polygon edges crossed by
// a horizontal ray running right from p.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.Cross(q)
	}
	return sum / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func TriangleArea(a, b, c Point) float64 {
	return doubleSignedArea(a, b, c) / 2
}

// Total area of the live triangles.
func (m *Mesh) Area() float64 {
	var sum float64
	for _, t := range m.LiveTriangles() {
		corners := m.TrianglePoints(t)
		sum += TriangleArea(corners[0], corners[1], corners[2])
	}
	return sum
}
