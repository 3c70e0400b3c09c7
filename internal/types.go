package internal

type Point struct {
	X float64
	Y float64
}

type Polygon struct {
	Points []Point
}

// An oriented reference to an edge, as seen from an element. When Forward is
// true the element walks the edge from Nodes[0] to Nodes[1].
type EdgeRef struct {
	Edge    int
	Forward bool
}

type ElementKind uint8

const (
	// Deleted. The index stays allocated so that anything still pointing at it
	// sees an empty element rather than somebody else's triangle.
	Tombstone ElementKind = iota
	// The far side of a boundary edge: the unbounded region, or a region that
	// hasn't been triangulated yet.
	Stub
	Triangle
)

// Elements are either a triangle of three edge references chaining head to
// tail counterclockwise, a stub holding a single reference whose left side is
// the outside, or a tombstone.
type Element struct {
	Kind  ElementKind
	Sides [3]EdgeRef
}

type Edge struct {
	Nodes   [2]int
	Parents ParentList
	// True iff fewer than two triangles own the edge. Stubs don't count.
	Boundary bool
	// Caller mandated constraint. Never removed by retriangulation.
	Feature bool
	// Set when the edge lost all of its parents to a cavity or to cleanup.
	Removed bool
}

// At most two elements may own an edge, so the parent list is stored inline.
type ParentList struct {
	ids [2]int
	n   int
}

// One edge of a cavity's exposed boundary, in the direction the removed
// element walked it.
type BoundaryEdge struct {
	Edge       int
	Forward    bool
	Start, End int
}

type Segment struct {
	Start Point
	End   Point
}
