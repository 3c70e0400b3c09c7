// An incremental constrained Delaunay triangulation package for Go.
//
// Nodes are inserted one at a time, and each insertion carves out the cavity of
// triangles the new node invalidates and fans it back up. Boundary edges can be
// inserted as constraints ("features"), which later insertions never remove.
// Closed boundary loops are then used to erode the convex hull down to the
// intended, possibly non-convex, domain.
//
// Every operation that fails does so with an error that satisfies either
// IsDegenerate or IsTopologyViolation.
package cdt

import "github.com/osuushi/cdt/internal"

type Point = internal.Point
type Snapshot = internal.Snapshot
type EdgeInfo = internal.EdgeInfo
type ElementInfo = internal.ElementInfo
type EdgeRef = internal.EdgeRef
type ElementKind = internal.ElementKind
type Cavity = internal.Cavity
type DrawOptions = internal.DrawOptions

type DegenerateGeometryError = internal.DegenerateGeometryError
type TopologyViolationError = internal.TopologyViolationError

const (
	Tombstone = internal.Tombstone
	Stub      = internal.Stub
	Triangle  = internal.Triangle
)

var DefaultDrawOptions = internal.DefaultDrawOptions

// A mesh under construction. Not safe for concurrent use.
type Mesh struct {
	inner *internal.Mesh
}

func New() *Mesh {
	return &Mesh{inner: internal.NewMesh()}
}

func IsDegenerate(err error) bool {
	return internal.IsDegenerate(err)
}

func IsTopologyViolation(err error) bool {
	return internal.IsTopologyViolation(err)
}

func recoverInto(err *error) {
	recoveredErr := internal.HandlePanicRecover(recover())
	if recoveredErr != nil {
		*err = recoveredErr
	}
}

// Insert a node and return its index. Fails with a DegenerateGeometryError if
// the node coincides with the mesh, or can't be fanned into it.
func (m *Mesh) InsertNode(p Point) (node int, err error) {
	defer recoverInto(&err)
	return m.inner.InsertNode(p), nil
}

// Append nodes without triangulating them, for later use with
// InsertBoundaryEdge. Returns the index of the first.
func (m *Mesh) AddNodes(points ...Point) int {
	return m.inner.AddNodes(points...)
}

// Insert the constrained edge between two node indices. Inserting an edge that
// already exists is fine, and flags it as a feature.
func (m *Mesh) InsertBoundaryEdge(a, b int) (err error) {
	defer recoverInto(&err)
	if a < 0 || b < 0 || a >= len(m.inner.Nodes) || b >= len(m.inner.Nodes) {
		return &TopologyViolationError{Message: "boundary edge references an unknown node"}
	}
	m.inner.InsertBoundaryEdge(a, b)
	return nil
}

// Add a closed loop of feature edges and erode the hull material outside of
// it. The loop should be counterclockwise. Loops inside the domain stay
// triangulated on both sides, so a second loop marks an internal feature
// rather than carving a hole.
func (m *Mesh) AddBoundaryLoop(points []Point) (err error) {
	defer recoverInto(&err)
	m.inner.AddBoundaryLoop(points)
	return nil
}

// Add an open chain of feature edges.
func (m *Mesh) AddBoundaryChain(points []Point) (err error) {
	defer recoverInto(&err)
	m.inner.AddBoundaryChain(points)
	return nil
}

func (m *Mesh) RemoveNonFeatureBoundaryEdges() (err error) {
	defer recoverInto(&err)
	m.inner.RemoveNonFeatureBoundaryEdges()
	return nil
}

func (m *Mesh) IsFlippable(edge int) (flippable bool, err error) {
	defer recoverInto(&err)
	if edge < 0 || edge >= len(m.inner.Edges) {
		return false, &TopologyViolationError{Message: "unknown edge"}
	}
	return m.inner.IsFlippable(edge), nil
}

// Flip the diagonal of the two triangles sharing the edge. Boundary and feature
// edges are left alone.
func (m *Mesh) Flip(edge int) (err error) {
	defer recoverInto(&err)
	if edge < 0 || edge >= len(m.inner.Edges) {
		return &TopologyViolationError{Message: "unknown edge"}
	}
	m.inner.Flip(edge)
	return nil
}

// Flip until every non-feature edge is locally Delaunay. Returns the number of
// flips.
func (m *Mesh) Legalize() (flips int, err error) {
	defer recoverInto(&err)
	return m.inner.Legalize(), nil
}

// The cavity inserting p would carve out, ignoring features. The mesh is not
// modified.
func (m *Mesh) FindCavity(p Point) (cavity *Cavity, err error) {
	defer recoverInto(&err)
	return m.inner.FindCavity(p), nil
}

// The cavity inserting p as the end of a constrained edge from previous would
// carve out. The mesh is not modified.
func (m *Mesh) FindConstrainedCavity(p, previous Point) (cavity *Cavity, err error) {
	defer recoverInto(&err)
	return m.inner.FindConstrainedCavity(p, previous), nil
}

// Live triangles as counterclockwise node triples.
func (m *Mesh) Triangles() [][3]int {
	return m.inner.Snapshot().Triangles()
}

func (m *Mesh) Nodes() []Point {
	return append([]Point(nil), m.inner.Nodes...)
}

func (m *Mesh) Snapshot() Snapshot {
	return m.inner.Snapshot()
}

func (m *Mesh) Area() float64 {
	return m.inner.Area()
}

func (m *Mesh) String() string {
	return m.inner.String()
}
