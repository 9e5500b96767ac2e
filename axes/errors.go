package axes

import (
	"errors"
	"fmt"
)

// ErrNoPoints is returned when axes are requested for an empty point
// cloud. The centroid of zero points is undefined.
var ErrNoPoints = errors.New("axes: point cloud is empty")

// ConvergenceError reports an eigensolver failure. The decomposition
// is a deterministic function of the tensor, so retrying cannot help:
// a failure means the input coordinates were pathological (non-finite)
// or there is a defect in the solver.
type ConvergenceError struct {
	Sweeps int
	Reason string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("axes: eigensolver failed after %d sweeps: %s",
		e.Sweeps, e.Reason)
}
