package internal

// The mesh is three append-only arenas. Cross references between them are
// plain indices; nothing is ever physically removed, so an index stays valid
// for the lifetime of the mesh. Elements are tombstoned in place, and edges that
// lose every parent are flagged Removed.
type Mesh struct {
	Nodes    []Point
	Edges    []Edge
	Elements []Element
}

func NewMesh() *Mesh {
	return &Mesh{}
}

func NewTriangle(a, b, c EdgeRef) Element {
	return Element{Kind: Triangle, Sides: [3]EdgeRef{a, b, c}}
}

func NewStub(ref EdgeRef) Element {
	return Element{Kind: Stub, Sides: [3]EdgeRef{ref}}
}

// The edge references that make up the element. Empty for a tombstone.
func (e Element) Refs() []EdgeRef {
	switch e.Kind {
	case Triangle:
		return e.Sides[:]
	case Stub:
		return e.Sides[:1]
	}
	return nil
}

func (ref EdgeRef) Reversed() EdgeRef {
	return EdgeRef{ref.Edge, !ref.Forward}
}

func (m *Mesh) AddNode(p Point) int {
	m.Nodes = append(m.Nodes, p)
	return len(m.Nodes) - 1
}

// Append an edge with no parents. A parentless edge is a boundary edge.
func (m *Mesh) AddEdge(a, b int, feature bool) int {
	m.Edges = append(m.Edges, Edge{
		Nodes:    [2]int{a, b},
		Boundary: true,
		Feature:  feature,
	})
	return len(m.Edges) - 1
}

// Append an element, registering it as a parent of each edge it references.
func (m *Mesh) AddElement(element Element) int {
	index := len(m.Elements)
	m.Elements = append(m.Elements, element)
	for _, ref := range element.Refs() {
		edge := &m.Edges[ref.Edge]
		edge.Parents.Add(index)
		edge.Removed = false
		m.updateBoundary(ref.Edge)
	}
	return index
}

// Remove element from the edge's parent list.
func (m *Mesh) Detach(element, edge int) {
	m.Edges[edge].Parents.Remove(element)
	m.updateBoundary(edge)
}

// Empty the element. The caller must already have detached it from its edges.
func (m *Mesh) TombstoneElement(element int) {
	m.Elements[element] = Element{}
}

func (m *Mesh) updateBoundary(edge int) {
	e := &m.Edges[edge]
	triangles := 0
	for _, parent := range e.Parents.ids[:e.Parents.n] {
		if m.Elements[parent].Kind == Triangle {
			triangles++
		}
	}
	e.Boundary = triangles < 2
}

// Start and end node of an edge reference, in the direction it is walked.
func (m *Mesh) RefNodes(ref EdgeRef) (int, int) {
	nodes := m.Edges[ref.Edge].Nodes
	if ref.Forward {
		return nodes[0], nodes[1]
	}
	return nodes[1], nodes[0]
}

// The directed node pair of a stub.
func (m *Mesh) StubNodes(element int) (int, int) {
	e := m.Elements[element]
	if e.Kind != Stub {
		topologyf("element %d is not a stub", element)
	}
	return m.RefNodes(e.Sides[0])
}

// The counterclockwise node triple of a triangle, walking its sides with their
// direction flags.
func (m *Mesh) TriangleNodes(element int) [3]int {
	e := m.Elements[element]
	if e.Kind != Triangle {
		topologyf("element %d is not a triangle", element)
	}
	var nodes [3]int
	for i, ref := range e.Sides {
		nodes[i], _ = m.RefNodes(ref)
	}
	return nodes
}

func (m *Mesh) TrianglePoints(element int) [3]Point {
	nodes := m.TriangleNodes(element)
	return [3]Point{m.Nodes[nodes[0]], m.Nodes[nodes[1]], m.Nodes[nodes[2]]}
}

// Find a live edge by its unordered endpoints. Returns -1 if there is none.
func (m *Mesh) FindEdge(a, b int) int {
	for i, e := range m.Edges {
		if e.Removed {
			continue
		}
		if (e.Nodes[0] == a && e.Nodes[1] == b) || (e.Nodes[0] == b && e.Nodes[1] == a) {
			return i
		}
	}
	return -1
}

// Is the node a corner of any live element?
func (m *Mesh) NodeInMesh(node int) bool {
	for _, e := range m.Edges {
		if e.Parents.Len() > 0 && (e.Nodes[0] == node || e.Nodes[1] == node) {
			return true
		}
	}
	return false
}

func (m *Mesh) HasElements() bool {
	for _, e := range m.Elements {
		if e.Kind != Tombstone {
			return true
		}
	}
	return false
}

func (m *Mesh) HasFeatures() bool {
	for _, e := range m.Edges {
		if e.Feature {
			return true
		}
	}
	return false
}

// Indices of live triangles, ascending.
func (m *Mesh) LiveTriangles() []int {
	var result []int
	for i, e := range m.Elements {
		if e.Kind == Triangle {
			result = append(result, i)
		}
	}
	return result
}

func (m *Mesh) TriangleCount() int {
	return len(m.LiveTriangles())
}

func (m *Mesh) featureSegments() []Segment {
	var result []Segment
	for _, e := range m.Edges {
		if e.Feature && !e.Removed {
			result = append(result, Segment{m.Nodes[e.Nodes[0]], m.Nodes[e.Nodes[1]]})
		}
	}
	return result
}
