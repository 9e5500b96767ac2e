package axes

import (
	"math"
)

// Tensor represents a symmetric 3x3 matrix, in row-major order
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
type Tensor [9]float64

// At returns the cell at row r and column c.
func (a Tensor) At(r, c int) float64 {
	return a[r*3+c]
}

// Trace returns the sum of the diagonal cells. For a scatter tensor
// this equals the sum of its three eigenvalues.
func (a Tensor) Trace() float64 {
	return a[0] + a[4] + a[8]
}

func (a Tensor) mult(b Tensor) Tensor {
	return Tensor{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

func (a Tensor) transpose() Tensor {
	return Tensor{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}

func (a Tensor) finite() bool {
	for i := 0; i < 9; i++ {
		if math.IsNaN(a[i]) || math.IsInf(a[i], 0) {
			return false
		}
	}
	return true
}

// maxSweeps bounds the Jacobi iteration. A symmetric 3x3 matrix with
// finite entries converges in a handful of sweeps; hitting the limit
// means the input was pathological.
const maxSweeps = 50

// eigen computes the eigenvalues and eigenvectors of a symmetric
// matrix with cyclic Jacobi rotations. The returned eigenvectors are
// the columns of V, paired index-for-index with the eigenvalues, and
// remain orthonormal even when eigenvalues repeat (V accumulates
// plane rotations only).
//
// The pair order is whatever the rotations leave behind. Callers that
// need ranked axes must sort afterwards.
func (a Tensor) eigen() ([3]float64, Tensor, error) {
	if !a.finite() {
		return [3]float64{}, Tensor{}, &ConvergenceError{
			Sweeps: 0, Reason: "tensor has a non-finite cell"}
	}

	v := Tensor{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}

	// Frobenius norm fixes the scale for the convergence test.
	norm := 0.0
	for i := 0; i < 9; i++ {
		norm += a[i] * a[i]
	}
	norm = math.Sqrt(norm)
	eps := 1e-14 * math.Max(norm, 1)

	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	for sweep := 0; sweep <= maxSweeps; sweep++ {
		off := math.Hypot(math.Hypot(a[1], a[2]), a[5])
		if off <= eps {
			return [3]float64{a[0], a[4], a[8]}, v, nil
		}
		if sweep == maxSweeps {
			break
		}

		for _, pq := range pairs {
			p, q := pq[0], pq[1]
			apq := a[p*3+q]
			if math.Abs(apq) <= eps {
				a[p*3+q] = 0
				a[q*3+p] = 0
				continue
			}

			// Choose the rotation angle that annihilates a[p][q],
			// taking the smaller of the two roots for stability.
			theta := (a[q*3+q] - a[p*3+p]) / (2 * apq)
			t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
			if theta < 0 {
				t = -t
			}
			c := 1 / math.Sqrt(t*t+1)
			s := t * c

			// A <- J^T A J
			for k := 0; k < 3; k++ {
				akp, akq := a[k*3+p], a[k*3+q]
				a[k*3+p] = c*akp - s*akq
				a[k*3+q] = s*akp + c*akq
			}
			for k := 0; k < 3; k++ {
				apk, aqk := a[p*3+k], a[q*3+k]
				a[p*3+k] = c*apk - s*aqk
				a[q*3+k] = s*apk + c*aqk
			}
			a[p*3+q] = 0
			a[q*3+p] = 0

			// V <- V J
			for k := 0; k < 3; k++ {
				vkp, vkq := v[k*3+p], v[k*3+q]
				v[k*3+p] = c*vkp - s*vkq
				v[k*3+q] = s*vkp + c*vkq
			}
		}
	}

	return [3]float64{}, Tensor{}, &ConvergenceError{Sweeps: maxSweeps,
		Reason: "off-diagonal norm did not vanish"}
}
