package internal

// This contains no actual tests. It is just a helper for testing mesh
// validity.

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a mesh is structurally sound. Every triangle's sides
// must chain head to tail through three distinct nodes, counterclockwise with
// nonzero area. Every element is listed as a parent by each edge it
// references, and every parent listed by an edge references that edge. An edge
// is a boundary edge iff fewer than two triangles own it. Removed edges have no
// parents, and features are never removed.
func AssertValidMesh(t *testing.T, m *Mesh) {
	t.Helper()
	ok := true
	check := func(condition bool, format string, args ...interface{}) {
		if !condition {
			ok = false
			t.Errorf(format, args...)
		}
	}

	for i, element := range m.Elements {
		for _, ref := range element.Refs() {
			check(m.Edges[ref.Edge].Parents.Contains(i), "edge %d does not list element %d as a parent", ref.Edge, i)
		}
		if element.Kind != Triangle {
			continue
		}
		var nodes [3]int
		for j, ref := range element.Sides {
			start, end := m.RefNodes(ref)
			nextStart, _ := m.RefNodes(element.Sides[CircularIndex(j+1, 3)])
			check(end == nextStart, "triangle %d: side %d ends at %d but side %d starts at %d", i, j, end, j+1, nextStart)
			nodes[j] = start
		}
		check(nodes[0] != nodes[1] && nodes[1] != nodes[2] && nodes[0] != nodes[2], "triangle %d repeats a node: %v", i, nodes)
		corners := m.TrianglePoints(i)
		check(doubleSignedArea(corners[0], corners[1], corners[2]) > Tolerance, "triangle %d is not counterclockwise: %v", i, corners)
	}

	for i, edge := range m.Edges {
		triangles := 0
		for _, parent := range edge.Parents.Slice() {
			element := m.Elements[parent]
			references := false
			for _, ref := range element.Refs() {
				references = references || ref.Edge == i
			}
			check(references, "edge %d lists parent %d, which does not reference it", i, parent)
			if element.Kind == Triangle {
				triangles++
			}
		}
		check(edge.Boundary == (triangles < 2), "edge %d has %d triangle parents but boundary=%v", i, triangles, edge.Boundary)
		if edge.Removed {
			check(edge.Parents.Len() == 0, "removed edge %d still has parents %v", i, edge.Parents.Slice())
			check(!edge.Feature, "feature edge %d was removed", i)
		}
	}

	if !ok {
		t.Logf("mesh snapshot:\n%s", spew.Sdump(m.Snapshot()))
		t.FailNow()
	}
}

// No node lies strictly inside the circumcircle of a triangle, except where a
// feature edge of the triangle could be hiding it.
func AssertDelaunay(t *testing.T, m *Mesh) {
	t.Helper()
	for _, tri := range m.LiveTriangles() {
		constrained := false
		for _, ref := range m.Elements[tri].Sides {
			constrained = constrained || m.Edges[ref.Edge].Feature
		}
		if constrained {
			continue
		}
		corners := m.TrianglePoints(tri)
		for node, p := range m.Nodes {
			if !m.NodeInMesh(node) {
				continue
			}
			assert.False(t, InCircumcircle(p, corners[0], corners[1], corners[2]),
				"node %d at %v is inside the circumcircle of triangle %d %v", node, p, tri, m.TriangleNodes(tri))
		}
	}
}

// The mesh should cover exactly the polygon: matching area, no triangle
// outside of it, and no sample point inside it left uncovered.
func AssertCoversPolygon(t *testing.T, m *Mesh, polygon Polygon) {
	t.Helper()
	require.InDelta(t, polygon.SignedArea(), m.Area(), 1e-6, "mesh area should equal the polygon's area")

	for _, tri := range m.LiveTriangles() {
		corners := m.TrianglePoints(tri)
		centroid := corners[0].Add(corners[1]).Add(corners[2]).Scale(1.0 / 3)
		assert.True(t, polygon.ContainsPointByEvenOdd(centroid), "triangle %d lies outside the polygon", tri)
	}

	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Offset the grid by an irrational fraction of a step, and skip samples
	// that still land on an edge, where containment is ambiguous
	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step * 0.3819
	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			if onPolygonEdge(polygon, p, step*1e-6) {
				continue
			}
			if polygon.ContainsPointByEvenOdd(p) {
				assert.True(t, meshCovers(m, p), "point %v inside the polygon is not covered by the mesh", p)
			} else {
				assert.False(t, meshCovers(m, p), "point %v outside the polygon is covered by the mesh", p)
			}
		}
	}
}

func onPolygonEdge(polygon Polygon, p Point, epsilon float64) bool {
	for i, a := range polygon.Points {
		b := polygon.Points[CircularIndex(i+1, len(polygon.Points))]
		if distanceToSegment(p, a, b) < epsilon {
			return true
		}
	}
	return false
}

func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return p.Sub(a).Norm()
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lengthSquared))
	return p.Sub(a.Add(ab.Scale(t))).Norm()
}

func meshCovers(m *Mesh, p Point) bool {
	for _, tri := range m.LiveTriangles() {
		corners := m.TrianglePoints(tri)
		if Orientation(corners[0], corners[1], p) >= 0 &&
			Orientation(corners[1], corners[2], p) >= 0 &&
			Orientation(corners[2], corners[0], p) >= 0 {
			return true
		}
	}
	return false
}
