package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors up and down every mesh mutation would add a ton of
// complexity to the code. Instead, we panic with one of the typed errors below,
// and the public API recovers to convert to an error.
//
// Anything else that panics (an index out of range, say) is a programmer error
// and keeps panicking.

// A predicate landed within tolerance of zero where a strict decision is
// needed, for example three collinear points offered as a triangle.
type DegenerateGeometryError struct {
	Message string
}

func (e *DegenerateGeometryError) Error() string {
	return "degenerate geometry: " + e.Message
}

// An operation was asked to act on structurally inconsistent input.
type TopologyViolationError struct {
	Message string
}

func (e *TopologyViolationError) Error() string {
	return "topology violation: " + e.Message
}

func degeneratef(format string, args ...interface{}) {
	panic(errors.WithStack(&DegenerateGeometryError{fmt.Sprintf(format, args...)}))
}

func topologyf(format string, args ...interface{}) {
	panic(errors.WithStack(&TopologyViolationError{fmt.Sprintf(format, args...)}))
}

func IsDegenerate(err error) bool {
	var target *DegenerateGeometryError
	return errors.As(err, &target)
}

func IsTopologyViolation(err error) bool {
	var target *TopologyViolationError
	return errors.As(err, &target)
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(error); ok && (IsDegenerate(err) || IsTopologyViolation(err)) {
			return err
		}
		panic(r)
	}
	return nil
}
