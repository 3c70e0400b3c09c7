// Direct access to the mesh engine, for callers who want to drive cavities and
// stitching themselves.
//
// Unlike the top level package, operations here panic on failure. Wrap calls in
// a function that defers HandlePanicRecover(recover()) to get an error back.
package advanced

import "github.com/osuushi/cdt/internal"

type Mesh = internal.Mesh
type Point = internal.Point
type Edge = internal.Edge
type Element = internal.Element
type EdgeRef = internal.EdgeRef
type Cavity = internal.Cavity
type BoundaryEdge = internal.BoundaryEdge
type Snapshot = internal.Snapshot

func NewMesh() *Mesh {
	return internal.NewMesh()
}

// Convert a recovered panic into an error if it carries one of the engine's
// error types. Any other panic is re-raised.
func HandlePanicRecover(r interface{}) error {
	return internal.HandlePanicRecover(r)
}

// Order an unordered cavity boundary, reporting whether it is an open chain.
func OrderChain(edges []BoundaryEdge) ([]BoundaryEdge, bool) {
	return internal.OrderChain(edges)
}

func Orientation(a, b, p Point) int {
	return internal.Orientation(a, b, p)
}

func InCircumcircle(p, a, b, c Point) bool {
	return internal.InCircumcircle(p, a, b, c)
}
