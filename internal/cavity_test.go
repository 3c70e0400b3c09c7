package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A flat triangle whose base and right side are features. Its circumcircle
// reaches far below the base.
func shadowMesh() (*Mesh, int) {
	m := NewMesh()
	m.AddNodes(Point{0, 0}, Point{4, 0}, Point{2, 0.5})
	m.InsertBoundaryEdge(0, 1)
	m.InsertBoundaryEdge(1, 2)
	return m, m.LiveTriangles()[0]
}

func TestFindCavity_FeatureShadow(t *testing.T) {
	m, tri := shadowMesh()
	viewpoint := Point{2, -2}
	corners := m.TrianglePoints(tri)
	require.True(t, InCircumcircle(viewpoint, corners[0], corners[1], corners[2]))

	unconstrained := m.FindCavity(viewpoint)
	assert.True(t, unconstrained.Contains(tri), "the triangle fails the circumcircle test")

	// The base hides the triangle's apex from the viewpoint
	constrained := m.FindConstrainedCavity(viewpoint, m.Nodes[1])
	assert.False(t, constrained.Contains(tri))
	visible := m.FindVisibleCavity(viewpoint)
	assert.False(t, visible.Contains(tri))

	// The stub under the base is still in view
	require.Len(t, constrained.Elements, 1)
	stub := constrained.Elements[0]
	assert.Equal(t, Stub, m.Elements[stub].Kind)
	assert.True(t, constrained.TouchesExterior)
	assert.True(t, unconstrained.Contains(stub))
}

func TestFindCavity_Penetration(t *testing.T) {
	m := TriangleMesh()
	tri := m.LiveTriangles()[0]
	p, previous := Point{3, 0.2}, Point{-1, 0.2}

	assert.False(t, m.FindCavity(p).Contains(tri), "p is outside the circumcircle")
	assert.True(t, m.FindConstrainedCavity(p, previous).Contains(tri), "the segment cuts through the triangle")
}

func TestFindCavityIsPure(t *testing.T) {
	m := QuadMesh()
	before := m.Snapshot()
	m.FindCavity(Point{0.5, 0.5})
	m.FindVisibleCavity(Point{3, 3})
	m.FindConstrainedCavity(Point{0.5, 0.6}, Point{0, 0})
	assert.Equal(t, before, m.Snapshot())
}

func TestCavityBoundary(t *testing.T) {
	t.Run("interior point", func(t *testing.T) {
		m := TriangleMesh()
		cavity := m.FindCavity(Point{0.25, 0.25})
		assert.False(t, cavity.TouchesExterior)
		assert.Empty(t, cavity.Interior())

		chain, open := OrderChain(cavity.Boundary(m))
		assert.False(t, open)
		require.Len(t, chain, 3)
		for i, e := range chain {
			assert.Equal(t, e.End, chain[CircularIndex(i+1, 3)].Start)
		}
	})

	t.Run("both triangles of the quad", func(t *testing.T) {
		m := QuadMesh()
		cavity := m.FindCavity(Point{0.5, 0.55})
		assert.Len(t, cavity.Elements, 2)
		assert.Equal(t, []int{m.FindEdge(0, 2)}, cavity.Interior())
		chain, open := OrderChain(cavity.Boundary(m))
		assert.False(t, open)
		assert.Len(t, chain, 4)
	})

	t.Run("point beyond the hull", func(t *testing.T) {
		m := TriangleMesh()
		cavity := m.FindCavity(Point{1, 1})
		assert.True(t, cavity.TouchesExterior)
		chain, open := OrderChain(cavity.Boundary(m))
		assert.True(t, open)
		assert.Len(t, chain, 1)
	})
}

func TestApplyCavityRejectsSwallowedFeature(t *testing.T) {
	m := QuadMesh()
	diagonal := m.FindEdge(0, 2)
	m.Edges[diagonal].Feature = true
	before := m.Snapshot()

	cavity := m.FindCavity(Point{0.5, 0.55})
	node := m.AddNode(Point{0.5, 0.55})
	err := catch(func() { m.ApplyCavity(cavity, node) })
	assert.True(t, IsTopologyViolation(err))
	assert.Equal(t, before.Elements, m.Snapshot().Elements)
}

func TestApplyEmptyCavity(t *testing.T) {
	m := NewMesh()
	err := catch(func() { m.ApplyCavity(m.FindCavity(Point{1, 1}), 0) })
	assert.True(t, IsDegenerate(err), "an empty cavity is rejected before its node is looked up")
}
