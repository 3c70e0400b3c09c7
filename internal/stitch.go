package internal

// Rebuilding a cavity. The hole left by the removed elements is star shaped as
// seen from the new node, so we fan a triangle from the node to every edge of
// the hole's boundary:
//
//	  s0-----s1-----s2        s0-----s1-----s2
//	   \           /           \ \    |    / /
//	    \  hole   /     ->      \  \  |  /  /
//	     \       /               \   \|/   /
//	              p                   p
//
// The spoke from a chain edge's start node to p is shared with the previous
// triangle. An open chain leaves two spokes on the hull, each of which gets a
// stub. A closed loop wraps around, so its last triangle reuses the first spoke.

// Remove the cavity and fan its boundary from node. Nothing is mutated unless
// the rebuild produces valid counterclockwise triangles.
func (m *Mesh) ApplyCavity(cavity *Cavity, node int) {
	if cavity.Empty() {
		degeneratef("empty cavity for node %d", node)
	}
	chain, open := m.prepareCavity(cavity, node, m.Nodes[node])
	m.replaceCavity(cavity, chain, open, node)
}

// Validate a cavity for a node at p and order its boundary. node may be -1 when
// the node hasn't been added yet.
func (m *Mesh) prepareCavity(cavity *Cavity, node int, p Point) ([]BoundaryEdge, bool) {
	if cavity.Empty() {
		degeneratef("empty cavity for node at %v", p)
	}
	for _, edge := range cavity.Interior() {
		if m.Edges[edge].Feature {
			topologyf("inserting node at %v would remove feature edge %d", p, edge)
		}
	}
	chain, open := OrderChain(cavity.Boundary(m))
	m.checkFan(chain, node, p)
	return chain, open
}

func (m *Mesh) replaceCavity(cavity *Cavity, chain []BoundaryEdge, open bool, node int) {
	for _, element := range cavity.Elements {
		for _, ref := range m.Elements[element].Refs() {
			m.Detach(element, ref.Edge)
		}
	}
	m.Stitch(chain, node, open)
	for _, element := range cavity.Elements {
		m.TombstoneElement(element)
	}
	for _, edge := range cavity.Interior() {
		if m.Edges[edge].Parents.Len() == 0 {
			m.Edges[edge].Removed = true
		}
	}
}

// Every fan triangle must be counterclockwise, or the cavity wasn't star
// shaped from the node. A node sitting on one of the chain's edges would make
// a flat triangle, which is degenerate too.
func (m *Mesh) checkFan(chain []BoundaryEdge, node int, p Point) {
	for _, e := range chain {
		if node >= 0 && (e.Start == node || e.End == node) {
			topologyf("node %d is already on the boundary of its own cavity", node)
		}
		if !IsLeft(m.Nodes[e.Start], m.Nodes[e.End], p) {
			degeneratef("node at %v does not see cavity edge %d (%d->%d) from its left", p, e.Edge, e.Start, e.End)
		}
	}
}

// Fan triangles from node over an ordered chain whose edges are already in the
// mesh. The chain edges must have room for one more parent.
func (m *Mesh) Stitch(chain []BoundaryEdge, node int, open bool) {
	n := len(chain)
	if n == 0 {
		topologyf("cannot stitch an empty chain")
	}
	spokeCount := n
	if open {
		spokeCount = n + 1
	}
	spokes := make([]int, spokeCount)
	for i, e := range chain {
		spokes[i] = m.AddEdge(e.Start, node, false)
	}
	if open {
		spokes[n] = m.AddEdge(chain[n-1].End, node, false)
	}

	for i, e := range chain {
		next := spokes[CircularIndex(i+1, spokeCount)]
		m.AddElement(NewTriangle(
			EdgeRef{e.Edge, e.Forward},
			EdgeRef{next, true},
			EdgeRef{spokes[i], false},
		))
	}
	if open {
		m.AddElement(NewStub(EdgeRef{spokes[0], true}))
		m.AddElement(NewStub(EdgeRef{spokes[n], false}))
	}
}

// Triangulate a mesh that so far is only a chain of collinear, parentless
// edges, by fanning the chain from a node off its line. Each chain edge also
// gets a stub on its far side.
func (m *Mesh) seedFromChain(node int) {
	p := m.Nodes[node]
	var chain []BoundaryEdge
	for i, e := range m.Edges {
		if e.Removed {
			continue
		}
		if e.Parents.Len() != 0 {
			topologyf("edge %d already has parents in a mesh with no elements", i)
		}
		a, b := e.Nodes[0], e.Nodes[1]
		switch Orientation(m.Nodes[a], m.Nodes[b], p) {
		case 1:
			chain = append(chain, BoundaryEdge{Edge: i, Forward: true, Start: a, End: b})
		case -1:
			chain = append(chain, BoundaryEdge{Edge: i, Forward: false, Start: b, End: a})
		default:
			degeneratef("node %d at %v is collinear with edge %d", node, p, i)
		}
	}
	chain = OrderPolyline(chain)
	m.checkFan(chain, node, p)
	for _, e := range chain {
		m.AddElement(NewStub(EdgeRef{e.Edge, !e.Forward}))
	}
	m.Stitch(chain, node, true)
}
