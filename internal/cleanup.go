package internal

// Erode convex hull material down to the feature boundary. Incremental
// insertion always triangulates the convex hull of the nodes, but a boundary
// loop may be non-convex. Every pass removes the elements of each boundary edge
// that isn't a feature; the triangles behind them become the new boundary. The
// feature ring is never eroded, so the process stops at the intended outline.
//
// Terminates because a pass either erodes at least one triangle, or only
// removes stubs and leaves nothing new to erode.
func (m *Mesh) RemoveNonFeatureBoundaryEdges() {
	for {
		var doomed []int
		for i, e := range m.Edges {
			if e.Parents.Len() > 0 && e.Boundary && !e.Feature {
				doomed = append(doomed, i)
			}
		}
		if len(doomed) == 0 {
			return
		}
		for _, edge := range doomed {
			for m.Edges[edge].Parents.Len() > 0 {
				m.erode(m.Edges[edge].Parents.At(0), edge)
			}
			m.Edges[edge].Removed = true
		}
	}
}

// Tombstone an element reached through the given edge. When it's a triangle,
// its other sides face the outside from now on, so each gets a stub walked the
// way the triangle walked it.
func (m *Mesh) erode(element, through int) {
	e := m.Elements[element]
	for _, ref := range e.Refs() {
		m.Detach(element, ref.Edge)
	}
	m.TombstoneElement(element)
	if e.Kind != Triangle {
		return
	}
	for _, ref := range e.Refs() {
		if ref.Edge == through || m.Edges[ref.Edge].Removed {
			continue
		}
		m.AddElement(NewStub(ref))
	}
}
