package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKinds(m *Mesh) map[ElementKind]int {
	counts := make(map[ElementKind]int)
	for _, e := range m.Elements {
		counts[e.Kind]++
	}
	return counts
}

func TestStoreParentBookkeeping(t *testing.T) {
	m := NewMesh()
	m.AddNodes(Point{0, 0}, Point{1, 0}, Point{0, 1})
	e0 := m.AddEdge(0, 1, false)
	e1 := m.AddEdge(1, 2, false)
	e2 := m.AddEdge(2, 0, false)
	assert.True(t, m.Edges[e0].Boundary, "a new edge has no parents")

	tri := m.AddElement(NewTriangle(EdgeRef{e0, true}, EdgeRef{e1, true}, EdgeRef{e2, true}))
	stub := m.AddElement(NewStub(EdgeRef{e0, false}))
	assert.Equal(t, []int{tri, stub}, m.Edges[e0].Parents.Slice())
	assert.True(t, m.Edges[e0].Boundary, "stubs don't count towards the two triangles")
	assert.Equal(t, [3]int{0, 1, 2}, m.TriangleNodes(tri))

	start, end := m.StubNodes(stub)
	assert.Equal(t, 1, start)
	assert.Equal(t, 0, end)

	m.Detach(stub, e0)
	m.TombstoneElement(stub)
	assert.Equal(t, []int{tri}, m.Edges[e0].Parents.Slice())
	assert.Equal(t, Tombstone, m.Elements[stub].Kind)
	assert.Empty(t, m.Elements[stub].Refs())

	assert.Equal(t, e1, m.FindEdge(2, 1))
	assert.Equal(t, -1, m.FindEdge(0, 5))
	assert.True(t, m.NodeInMesh(2))

	assert.True(t, IsTopologyViolation(catch(func() { m.StubNodes(tri) })))
	assert.True(t, IsTopologyViolation(catch(func() { m.TriangleNodes(stub) })))
}

func TestSingleTriangle(t *testing.T) {
	m := TriangleMesh()

	counts := countKinds(m)
	assert.Equal(t, 1, counts[Triangle])
	assert.Equal(t, 3, counts[Stub])
	require.Len(t, m.Edges, 3)
	for i, e := range m.Edges {
		assert.True(t, e.Boundary, "edge %d", i)
		assert.Equal(t, 2, e.Parents.Len(), "edge %d should have its triangle and a stub", i)
	}

	tri := m.LiveTriangles()[0]
	nodes := m.TriangleNodes(tri)
	corners := m.TrianglePoints(tri)
	assert.Greater(t, doubleSignedArea(corners[0], corners[1], corners[2]), 0.0)
	assert.ElementsMatch(t, []int{0, 1, 2}, nodes[:])
	AssertValidMesh(t, m)
}

// (0.5, 0.5) would be the obvious interior pick, but it lies on the hypotenuse
// and is rejected, see TestInsertOnHullEdge.
func TestInsertInsideTriangle(t *testing.T) {
	m := TriangleMesh()
	original := m.LiveTriangles()[0]

	node := m.InsertNode(Point{0.25, 0.25})
	assert.Equal(t, 3, node)
	assert.Equal(t, Tombstone, m.Elements[original].Kind)
	assert.Equal(t, 3, m.TriangleCount())
	for _, tri := range m.LiveTriangles() {
		nodes := m.TriangleNodes(tri)
		assert.Contains(t, nodes[:], node, "every new triangle is fanned from the new node")
	}
	assert.InDelta(t, 0.5, m.Area(), Tolerance)
	AssertValidMesh(t, m)
}

// A node on the hull edge would need a flat triangle.
func TestInsertOnHullEdge(t *testing.T) {
	m := TriangleMesh()
	before := m.Snapshot()

	err := catch(func() { m.InsertNode(Point{0.5, 0.5}) })
	assert.True(t, IsDegenerate(err))
	assert.Equal(t, before, m.Snapshot(), "a failed insertion leaves the mesh alone")
}
