package internal

import "sort"

// The set of elements a new node (or the free end of a new constrained edge)
// destroys, along with the bookkeeping needed to rebuild the hole.
//
// Finding a cavity does not touch the mesh. The stitcher detaches and
// tombstones the elements once it has checked that the rebuild is sound.
type Cavity struct {
	// Elements marked for removal, ascending.
	Elements []int
	// How many removed elements use each edge. An edge used once lies on the
	// cavity boundary, an edge used twice is swallowed by it.
	Uses map[int]int
	// The direction flag each edge had in the removed element that used it.
	Direction map[int]bool
	// Whether any boundary stub was removed, i.e. the cavity reaches outside
	// the mesh.
	TouchesExterior bool
}

// How the search treats features.
type cavityQuery struct {
	point Point
	// Far endpoint of the constrained edge being inserted, if any. Triangles
	// the edge cuts through are removed even if they are locally Delaunay.
	previous *Point
	// Skip candidates that are hidden from point behind a feature.
	visibility bool
}

// Unconstrained search: every triangle whose circumcircle contains p, and every
// stub whose edge p lies beyond.
func (m *Mesh) FindCavity(p Point) *Cavity {
	return m.findCavity(cavityQuery{point: p})
}

// Like FindCavity, but candidates hidden from p behind a feature edge survive.
func (m *Mesh) FindVisibleCavity(p Point) *Cavity {
	return m.findCavity(cavityQuery{point: p, visibility: true})
}

// Search for the cavity of a constrained edge from previous to p, where p is
// the endpoint being inserted. On top of the visibility filter, triangles that
// the new edge cuts through are removed.
func (m *Mesh) FindConstrainedCavity(p, previous Point) *Cavity {
	return m.findCavity(cavityQuery{point: p, previous: &previous, visibility: true})
}

func (m *Mesh) findCavity(q cavityQuery) *Cavity {
	cavity := &Cavity{
		Uses:      make(map[int]int),
		Direction: make(map[int]bool),
	}
	var features []Segment
	if q.visibility {
		features = m.featureSegments()
	}

	for i, element := range m.Elements {
		switch element.Kind {
		case Stub:
			a, b := m.StubNodes(i)
			if !IsLeft(m.Nodes[a], m.Nodes[b], q.point) {
				continue
			}
			if q.visibility && m.isObscured(i, q.point, features) {
				continue
			}
			cavity.TouchesExterior = true
			cavity.add(i, element)
		case Triangle:
			corners := m.TrianglePoints(i)
			if InCircumcircle(q.point, corners[0], corners[1], corners[2]) {
				if q.visibility && m.isObscured(i, q.point, features) {
					continue
				}
				cavity.add(i, element)
				continue
			}
			if q.previous != nil && penetrates(*q.previous, q.point, corners) {
				if q.visibility && m.isObscured(i, q.point, features) {
					continue
				}
				cavity.add(i, element)
			}
		}
	}
	sort.Ints(cavity.Elements)
	return cavity
}

func (c *Cavity) add(index int, element Element) {
	c.Elements = append(c.Elements, index)
	for _, ref := range element.Refs() {
		c.Uses[ref.Edge]++
		c.Direction[ref.Edge] = ref.Forward
	}
}

func (c *Cavity) Empty() bool {
	return len(c.Elements) == 0
}

// Does the segment from previous to p cut through one of the triangle's sides?
// We look along the segment from both of its ends, so a side only counts when
// it lies between them.
func penetrates(previous, p Point, corners [3]Point) bool {
	dir, ok := p.Sub(previous).Unit()
	if !ok {
		return false
	}
	back := dir.Scale(-1)
	for i := range corners {
		a, b := corners[i], corners[(i+1)%3]
		if RayCrossesSegment(previous, dir, a, b) && RayCrossesSegment(p, back, a, b) {
			return true
		}
	}
	return false
}

// Is any part of the element hidden from viewpoint by a feature edge?
func (m *Mesh) isObscured(element int, viewpoint Point, features []Segment) bool {
	e := m.Elements[element]
	switch e.Kind {
	case Stub:
		nodes := m.Edges[e.Sides[0].Edge].Nodes
		p1, p2 := m.Nodes[nodes[0]], m.Nodes[nodes[1]]
		for _, f := range features {
			if SegmentInFeatureShadow(p1, p2, f.Start, f.End, viewpoint) {
				return true
			}
		}
	case Triangle:
		corners := m.TrianglePoints(element)
		for _, f := range features {
			if TriangleInFeatureShadow(corners[0], corners[1], corners[2], f.Start, f.End, viewpoint) {
				return true
			}
		}
	}
	return false
}

// The exposed boundary of the cavity: every edge used by exactly one removed
// element, walked in that element's direction. Sorted by edge index so that
// chain ordering is deterministic.
func (c *Cavity) Boundary(m *Mesh) []BoundaryEdge {
	var result []BoundaryEdge
	for edge, uses := range c.Uses {
		if uses != 1 {
			continue
		}
		ref := EdgeRef{edge, c.Direction[edge]}
		start, end := m.RefNodes(ref)
		result = append(result, BoundaryEdge{Edge: edge, Forward: ref.Forward, Start: start, End: end})
	}
	sortBoundaryEdges(result)
	return result
}

// Edges that the cavity swallows whole.
func (c *Cavity) Interior() []int {
	var result []int
	for edge, uses := range c.Uses {
		if uses > 1 {
			result = append(result, edge)
		}
	}
	sort.Ints(result)
	return result
}

func (c *Cavity) Contains(element int) bool {
	i := sort.SearchInts(c.Elements, element)
	return i < len(c.Elements) && c.Elements[i] == element
}
