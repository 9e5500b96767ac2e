// Package axes computes the principal axes of a point cloud.
//
// The axes are the eigenvectors of the scatter tensor of the points
// about their geometric center. The eigenvalue attached to each axis
// measures the spread of the cloud along it, so ranking the axes by
// eigenvalue orders them from the direction of greatest elongation to
// the direction of least.
package axes

import (
	"sort"

	"github.com/pierrepo/principal-axes/pdb"
)

// Axis pairs an eigenvalue with its unit eigenvector.
//
// The sign of Vec is whatever the solver produced; -Vec spans the same
// axis and no canonical direction is chosen.
type Axis struct {
	Val float64
	Vec [3]float64
}

// Result carries everything computed from one point cloud.
type Result struct {
	// Center is the unweighted mean of the points.
	Center pdb.Coords

	// Tensor is the scatter tensor about Center.
	Tensor Tensor

	// Raw holds the eigenpairs in the order the solver produced them.
	Raw [3]Axis

	// Ordered holds the same eigenpairs ranked by descending
	// eigenvalue, so Ordered[0] is the direction of greatest spread.
	Ordered [3]Axis
}

// Centroid calculates the average position of a set of points. The
// set must be non-empty.
func Centroid(points []pdb.Coords) pdb.Coords {
	var xs, ys, zs float64
	for _, p := range points {
		xs += p[0]
		ys += p[1]
		zs += p[2]
	}
	n := float64(len(points))
	return pdb.Coords{xs / n, ys / n, zs / n}
}

// Inertia builds the scatter tensor of the points about center:
// cell (i,j) accumulates (p[i]-center[i]) * (p[j]-center[j]) over all
// points. Every point carries unit mass; there is no physical mass
// weighting. The result is symmetric with a non-negative diagonal.
func Inertia(points []pdb.Coords, center pdb.Coords) Tensor {
	var t Tensor
	for _, p := range points {
		dx := p[0] - center[0]
		dy := p[1] - center[1]
		dz := p[2] - center[2]

		t[0] += dx * dx
		t[1] += dx * dy
		t[2] += dx * dz
		t[4] += dy * dy
		t[5] += dy * dz
		t[8] += dz * dz
	}
	t[3] = t[1]
	t[6] = t[2]
	t[7] = t[5]
	return t
}

// Decompose computes the three eigenpairs of a symmetric tensor, in
// solver order. The eigenvectors are mutually orthogonal unit vectors.
func Decompose(t Tensor) ([3]Axis, error) {
	vals, vecs, err := t.eigen()
	if err != nil {
		return [3]Axis{}, err
	}

	// Eigenvectors are the columns of the accumulated rotation matrix.
	var axes [3]Axis
	for i := 0; i < 3; i++ {
		axes[i] = Axis{
			Val: vals[i],
			Vec: [3]float64{vecs[0*3+i], vecs[1*3+i], vecs[2*3+i]},
		}
	}
	return axes, nil
}

// Order ranks three eigenpairs by descending eigenvalue. The sort is
// stable, so exactly equal eigenvalues keep their solver order.
func Order(raw [3]Axis) [3]Axis {
	ordered := raw
	sort.SliceStable(ordered[:], func(i, j int) bool {
		return ordered[i].Val > ordered[j].Val
	})
	return ordered
}

// Compute runs the whole pipeline: centroid, scatter tensor,
// eigen-decomposition and ranking. It is the only entry point the
// command needs.
func Compute(points []pdb.Coords) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	center := Centroid(points)
	tensor := Inertia(points, center)
	raw, err := Decompose(tensor)
	if err != nil {
		return nil, err
	}

	return &Result{
		Center:  center,
		Tensor:  tensor,
		Raw:     raw,
		Ordered: Order(raw),
	}, nil
}
