package internal

// Incremental insertion. Nodes come in one at a time through InsertNode, or are
// added up front with AddNodes and then connected by InsertBoundaryEdge, which
// is how feature loops and chains get into the mesh.

// Append nodes without triangulating them. Returns the index of the first.
func (m *Mesh) AddNodes(points ...Point) int {
	first := len(m.Nodes)
	m.Nodes = append(m.Nodes, points...)
	return first
}

// Insert a node and retriangulate around it. Once the mesh carries features,
// cavities respect visibility so that no feature edge is ever swallowed.
func (m *Mesh) InsertNode(p Point) int {
	if !m.HasElements() {
		return m.insertSeedNode(p)
	}
	cavity := m.findCavity(cavityQuery{point: p, visibility: m.HasFeatures()})
	if cavity.Empty() {
		degeneratef("node at %v coincides with the mesh or sees nothing to replace", p)
	}
	chain, open := m.prepareCavity(cavity, -1, p)
	node := m.AddNode(p)
	m.replaceCavity(cavity, chain, open, node)
	return node
}

// Before the first triangle exists, nodes collect into a chain of edges.
func (m *Mesh) insertSeedNode(p Point) int {
	switch {
	case len(m.Nodes) == 0:
		return m.AddNode(p)
	case len(m.Edges) == 0:
		last := len(m.Nodes) - 1
		if m.Nodes[last].Equals(p) {
			degeneratef("node at %v duplicates node %d", p, last)
		}
		node := m.AddNode(p)
		m.AddEdge(last, node, false)
		return node
	}
	first := m.Edges[0].Nodes
	if Orientation(m.Nodes[first[0]], m.Nodes[first[1]], p) == 0 {
		degeneratef("node at %v is collinear with the seed edge %v", p, first)
	}
	node := m.AddNode(p)
	m.seedFromChain(node)
	return node
}

// Insert the constrained edge a-b, where b is usually a node that has been
// added but not yet triangulated. The edge ends up flagged as a feature.
//
// Re-inserting an existing edge is allowed, and just upgrades it to a feature.
// If a and b are both triangulated already, the edge is recovered by flipping
// the edges that cross it.
func (m *Mesh) InsertBoundaryEdge(a, b int) {
	if a == b {
		topologyf("boundary edge from node %d to itself", a)
	}
	if !m.HasElements() {
		m.insertSeedBoundaryEdge(a, b)
		return
	}
	if edge := m.FindEdge(a, b); edge >= 0 {
		m.Edges[edge].Feature = true
		return
	}

	if !m.NodeInMesh(a) {
		cavity := m.FindVisibleCavity(m.Nodes[a])
		m.ApplyCavity(cavity, a)
		if edge := m.FindEdge(a, b); edge >= 0 {
			m.Edges[edge].Feature = true
			return
		}
	}

	if m.NodeInMesh(b) {
		if !m.recoverEdge(a, b) {
			topologyf("could not recover edge %d-%d between triangulated nodes", a, b)
		}
		m.Edges[m.FindEdge(a, b)].Feature = true
		return
	}

	cavity := m.FindConstrainedCavity(m.Nodes[b], m.Nodes[a])
	if cavity.Empty() {
		// Nothing is visible from b. The edge floats, bounded by stubs on both
		// sides until later insertions reach it.
		edge := m.AddEdge(a, b, true)
		m.AddElement(NewStub(EdgeRef{edge, true}))
		m.AddElement(NewStub(EdgeRef{edge, false}))
		return
	}
	m.ApplyCavity(cavity, b)
	edge := m.FindEdge(a, b)
	if edge < 0 {
		topologyf("node %d was inserted but its cavity did not reach node %d", b, a)
	}
	m.Edges[edge].Feature = true
}

// Until three non-collinear nodes are connected, boundary edges just collect
// into a collinear chain of parentless features.
func (m *Mesh) insertSeedBoundaryEdge(a, b int) {
	if len(m.Edges) == 0 {
		m.AddEdge(a, b, true)
		return
	}
	first := m.Edges[0].Nodes
	if Orientation(m.Nodes[first[0]], m.Nodes[first[1]], m.Nodes[b]) == 0 {
		m.AddEdge(a, b, true)
		return
	}
	m.seedFromChain(b)
	edge := m.FindEdge(a, b)
	if edge < 0 {
		topologyf("seed edge %d-%d does not continue the chain", a, b)
	}
	m.Edges[edge].Feature = true
}

// Add points as a closed loop of feature edges, then erode everything outside
// of it. Loops that bound the domain run counterclockwise.
func (m *Mesh) AddBoundaryLoop(points []Point) {
	if len(points) < 3 {
		degeneratef("boundary loop needs at least 3 points, got %d", len(points))
	}
	first := m.AddNodes(points...)
	last := first + len(points) - 1
	for i := first; i < last; i++ {
		m.InsertBoundaryEdge(i, i+1)
	}
	m.InsertBoundaryEdge(last, first)
	m.RemoveNonFeatureBoundaryEdges()
}

// Add points as an open chain of feature edges, such as an internal crack.
func (m *Mesh) AddBoundaryChain(points []Point) {
	if len(points) < 2 {
		degeneratef("boundary chain needs at least 2 points, got %d", len(points))
	}
	first := m.AddNodes(points...)
	for i := first; i < first+len(points)-1; i++ {
		m.InsertBoundaryEdge(i, i+1)
	}
}
