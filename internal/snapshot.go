package internal

// A read-only copy of the mesh for renderers and other observers. Indices match
// the mesh arenas, tombstones included.
type Snapshot struct {
	Nodes    []Point
	Edges    []EdgeInfo
	Elements []ElementInfo
}

type EdgeInfo struct {
	Nodes       [2]int
	Boundary    bool
	Feature     bool
	Removed     bool
	ParentCount int
}

type ElementInfo struct {
	Kind  ElementKind
	Sides []EdgeRef
}

func (m *Mesh) Snapshot() Snapshot {
	s := Snapshot{
		Nodes:    append([]Point(nil), m.Nodes...),
		Edges:    make([]EdgeInfo, len(m.Edges)),
		Elements: make([]ElementInfo, len(m.Elements)),
	}
	for i, e := range m.Edges {
		s.Edges[i] = EdgeInfo{
			Nodes:       e.Nodes,
			Boundary:    e.Boundary,
			Feature:     e.Feature,
			Removed:     e.Removed,
			ParentCount: e.Parents.Len(),
		}
	}
	for i, e := range m.Elements {
		s.Elements[i] = ElementInfo{Kind: e.Kind, Sides: append([]EdgeRef(nil), e.Refs()...)}
	}
	return s
}

// Node triples of the live triangles, counterclockwise.
func (s Snapshot) Triangles() [][3]int {
	var result [][3]int
	for _, e := range s.Elements {
		if e.Kind != Triangle {
			continue
		}
		var tri [3]int
		for i, ref := range e.Sides {
			nodes := s.Edges[ref.Edge].Nodes
			if ref.Forward {
				tri[i] = nodes[0]
			} else {
				tri[i] = nodes[1]
			}
		}
		result = append(result, tri)
	}
	return result
}

// Edges that still separate something: at least one live parent.
func (s Snapshot) LiveEdges() []int {
	var result []int
	for i, e := range s.Edges {
		if e.ParentCount > 0 {
			result = append(result, i)
		}
	}
	return result
}

func (s Snapshot) Bounds() (min, max Point) {
	if len(s.Nodes) == 0 {
		return
	}
	min, max = s.Nodes[0], s.Nodes[0]
	for _, p := range s.Nodes[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return
}
