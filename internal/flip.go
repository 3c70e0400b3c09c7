package internal

// Swap the diagonal of the quadrilateral formed by the two triangles sharing
// an edge:
//
//	      y                   y
//	    /   \               / | \
//	   z-----x     ->      z  |  x
//	    \   /               \ | /
//	      w                   w
//
// The edge keeps its index but connects the two off-diagonal nodes, and both
// triangles keep their indices with rebuilt sides. Boundary and feature edges
// are left alone.
func (m *Mesh) Flip(edge int) {
	if !m.flippableTopology(edge) {
		return
	}
	e := &m.Edges[edge]
	t1, t2 := e.Parents.At(0), e.Parents.At(1)
	s1 := m.rotateSides(t1, edge)
	s2 := m.rotateSides(t2, edge)

	// s1 walks x->y->z->x with the shared edge z->x last, and s2 walks
	// z->w->x->z.
	_, y := m.RefNodes(s1[0])
	_, z := m.RefNodes(s1[1])
	_, w := m.RefNodes(s2[0])
	_, x := m.RefNodes(s2[1])
	if !IsLeft(m.Nodes[y], m.Nodes[z], m.Nodes[w]) || !IsLeft(m.Nodes[w], m.Nodes[x], m.Nodes[y]) {
		degeneratef("cannot flip edge %d: quadrilateral %d-%d-%d-%d is not strictly convex", edge, x, y, z, w)
	}

	e.Nodes = [2]int{y, w}
	m.Elements[t1] = NewTriangle(s1[1], s2[0], EdgeRef{edge, false})
	m.Elements[t2] = NewTriangle(s2[1], s1[0], EdgeRef{edge, true})
	m.Edges[s1[0].Edge].Parents.Replace(t1, t2)
	m.Edges[s2[0].Edge].Parents.Replace(t2, t1)
}

// Would flipping the edge make it locally Delaunay? True iff the node opposite
// the edge in one triangle lies inside the circumcircle of the other.
func (m *Mesh) IsFlippable(edge int) bool {
	if !m.flippableTopology(edge) {
		return false
	}
	e := m.Edges[edge]
	t1, t2 := e.Parents.At(0), e.Parents.At(1)
	s1 := m.rotateSides(t1, edge)
	_, opposite := m.RefNodes(s1[0])
	corners := m.TrianglePoints(t2)
	return InCircumcircle(m.Nodes[opposite], corners[0], corners[1], corners[2])
}

func (m *Mesh) flippableTopology(edge int) bool {
	e := m.Edges[edge]
	if e.Boundary || e.Feature || e.Removed {
		return false
	}
	if e.Parents.Len() != 2 {
		topologyf("interior edge %d has %d parents", edge, e.Parents.Len())
	}
	return true
}

// The sides of a triangle, rolled so that the given edge comes last.
func (m *Mesh) rotateSides(element, edge int) [3]EdgeRef {
	e := m.Elements[element]
	if e.Kind != Triangle {
		topologyf("element %d owning edge %d is not a triangle", element, edge)
	}
	for i, ref := range e.Sides {
		if ref.Edge == edge {
			return [3]EdgeRef{
				e.Sides[CircularIndex(i+1, 3)],
				e.Sides[CircularIndex(i+2, 3)],
				ref,
			}
		}
	}
	topologyf("element %d does not reference edge %d", element, edge)
	return [3]EdgeRef{}
}

// Flip every flippable edge until the mesh is locally Delaunay away from its
// features. Returns the number of flips.
func (m *Mesh) Legalize() int {
	flips := 0
	// Lawson flipping terminates. The cap only guards against tolerance noise.
	maxPasses := len(m.Edges)*len(m.Edges) + 1
	for pass := 0; pass < maxPasses; pass++ {
		flipped := false
		for i := range m.Edges {
			if m.IsFlippable(i) {
				m.Flip(i)
				flips++
				flipped = true
			}
		}
		if !flipped {
			return flips
		}
	}
	return flips
}

// Force the segment a-b into the mesh by flipping the edges that cross it.
// Crossing edges are queued. One whose quadrilateral isn't strictly convex goes
// to the back of the queue to wait for its neighbours, and so does a flipped
// edge whose new diagonal still crosses. Reports whether the edge now exists.
func (m *Mesh) recoverEdge(a, b int) bool {
	pa, pb := m.Nodes[a], m.Nodes[b]
	queue := m.edgesCrossing(pa, pb)
	budget := len(m.Edges)*len(m.Edges) + 1
	for ; len(queue) > 0 && budget > 0; budget-- {
		edge := queue[0]
		queue = queue[1:]
		if m.Edges[edge].Feature {
			topologyf("edge %d-%d crosses feature edge %d", a, b, edge)
		}
		if !m.convexQuad(edge) {
			queue = append(queue, edge)
			continue
		}
		m.Flip(edge)
		if m.crosses(edge, pa, pb) {
			queue = append(queue, edge)
		}
	}
	return m.FindEdge(a, b) >= 0
}

// Live edges whose interiors properly cross the segment pa-pb.
func (m *Mesh) edgesCrossing(pa, pb Point) []int {
	var result []int
	for i, e := range m.Edges {
		if e.Removed || e.Parents.Len() == 0 {
			continue
		}
		if m.crosses(i, pa, pb) {
			result = append(result, i)
		}
	}
	return result
}

func (m *Mesh) crosses(edge int, pa, pb Point) bool {
	nodes := m.Edges[edge].Nodes
	q1, q2 := m.Nodes[nodes[0]], m.Nodes[nodes[1]]
	return Orientation(pa, pb, q1)*Orientation(pa, pb, q2) < 0 &&
		Orientation(q1, q2, pa)*Orientation(q1, q2, pb) < 0
}

func (m *Mesh) convexQuad(edge int) bool {
	e := m.Edges[edge]
	if e.Boundary || e.Parents.Len() != 2 {
		return false
	}
	s1 := m.rotateSides(e.Parents.At(0), edge)
	s2 := m.rotateSides(e.Parents.At(1), edge)
	_, y := m.RefNodes(s1[0])
	_, z := m.RefNodes(s1[1])
	_, w := m.RefNodes(s2[0])
	_, x := m.RefNodes(s2[1])
	return IsLeft(m.Nodes[y], m.Nodes[z], m.Nodes[w]) && IsLeft(m.Nodes[w], m.Nodes[x], m.Nodes[y])
}
