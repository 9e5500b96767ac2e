package axes

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pierrepo/principal-axes/pdb"
)

func TestCentroidIsMean(t *testing.T) {
	for i := 0; i < 100; i++ {
		cloud := randomCloud(1 + rand.Intn(50))
		center := Centroid(cloud)

		var want pdb.Coords
		for _, p := range cloud {
			for k := 0; k < 3; k++ {
				want[k] += p[k]
			}
		}
		for k := 0; k < 3; k++ {
			want[k] /= float64(len(cloud))
			if math.Abs(center[k]-want[k]) > tol {
				t.Fatalf("centroid of %d points is %v, want %v",
					len(cloud), center, want)
			}
		}
	}
}

// TestIdenticalPoints checks that a cloud with no spread yields the
// zero tensor and three (approximately) zero eigenvalues. The
// eigenvectors are an arbitrary orthonormal basis, so they are not
// inspected.
func TestIdenticalPoints(t *testing.T) {
	cloud := make([]pdb.Coords, 10)
	for i := range cloud {
		cloud[i] = pdb.Coords{1.5, -2.5, 3.5}
	}

	res, err := Compute(cloud)
	if err != nil {
		t.Fatalf("Compute: %s", err)
	}
	for i := 0; i < 9; i++ {
		if res.Tensor[i] != 0 {
			t.Fatalf("tensor of identical points is %v, want zero",
				res.Tensor)
		}
	}
	for _, axis := range res.Ordered {
		if math.Abs(axis.Val) > tol {
			t.Fatalf("eigenvalue %f of the zero tensor is not zero",
				axis.Val)
		}
	}
}

func TestTwoPointCloud(t *testing.T) {
	cloud := []pdb.Coords{{0, 0, 0}, {2, 0, 0}}

	res, err := Compute(cloud)
	if err != nil {
		t.Fatalf("Compute: %s", err)
	}

	if want := (pdb.Coords{1, 0, 0}); res.Center != want {
		t.Fatalf("centroid is %v, want %v", res.Center, want)
	}
	if want := (Tensor{2, 0, 0, 0, 0, 0, 0, 0, 0}); res.Tensor != want {
		t.Fatalf("tensor is %v, want %v", res.Tensor, want)
	}
	if math.Abs(res.Ordered[0].Val-2) > tol ||
		math.Abs(res.Ordered[1].Val) > tol ||
		math.Abs(res.Ordered[2].Val) > tol {
		t.Fatalf("ordered eigenvalues are %f, %f, %f, want 2, 0, 0",
			res.Ordered[0].Val, res.Ordered[1].Val, res.Ordered[2].Val)
	}

	// The largest axis is the x axis, up to sign.
	vec := res.Ordered[0].Vec
	if math.Abs(math.Abs(vec[0])-1) > tol ||
		math.Abs(vec[1]) > tol || math.Abs(vec[2]) > tol {
		t.Fatalf("largest axis is %v, want (1, 0, 0) up to sign", vec)
	}
}

func TestEquilateralCloud(t *testing.T) {
	cloud := []pdb.Coords{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	res, err := Compute(cloud)
	if err != nil {
		t.Fatalf("Compute: %s", err)
	}

	third := 1.0 / 3.0
	for k := 0; k < 3; k++ {
		if math.Abs(res.Center[k]-third) > tol {
			t.Fatalf("centroid is %v, want (1/3, 1/3, 1/3)", res.Center)
		}
	}

	sum := 0.0
	for _, axis := range res.Ordered {
		if axis.Val < -tol {
			t.Fatalf("negative eigenvalue %f", axis.Val)
		}
		sum += axis.Val
	}
	if math.Abs(sum-res.Tensor.Trace()) > tol {
		t.Fatalf("eigenvalues sum to %f, trace is %f",
			sum, res.Tensor.Trace())
	}
}

func TestOrderedDescending(t *testing.T) {
	for i := 0; i < 100; i++ {
		cloud := randomCloud(2 + rand.Intn(50))
		res, err := Compute(cloud)
		if err != nil {
			t.Fatalf("Compute: %s", err)
		}
		if res.Ordered[0].Val < res.Ordered[1].Val ||
			res.Ordered[1].Val < res.Ordered[2].Val {
			t.Fatalf("eigenvalues %f, %f, %f are not descending",
				res.Ordered[0].Val, res.Ordered[1].Val, res.Ordered[2].Val)
		}
	}
}

// TestOrderStable checks that exactly equal eigenvalues keep the
// solver's pairing order.
func TestOrderStable(t *testing.T) {
	raw := [3]Axis{
		{Val: 1, Vec: [3]float64{1, 0, 0}},
		{Val: 1, Vec: [3]float64{0, 1, 0}},
		{Val: 2, Vec: [3]float64{0, 0, 1}},
	}
	ordered := Order(raw)
	if ordered[0].Vec != raw[2].Vec {
		t.Fatalf("largest axis is %v, want %v", ordered[0].Vec, raw[2].Vec)
	}
	if ordered[1].Vec != raw[0].Vec || ordered[2].Vec != raw[1].Vec {
		t.Fatalf("tied eigenvalues reordered: %v", ordered)
	}
}

// TestOrderPreservesPairing makes sure sorting moves eigenvalues and
// eigenvectors together.
func TestOrderPreservesPairing(t *testing.T) {
	for i := 0; i < 100; i++ {
		cloud := randomCloud(2 + rand.Intn(50))
		res, err := Compute(cloud)
		if err != nil {
			t.Fatalf("Compute: %s", err)
		}
		for _, ord := range res.Ordered {
			found := false
			for _, raw := range res.Raw {
				if ord.Val == raw.Val && ord.Vec == raw.Vec {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("ordered axis %v not among raw axes %v",
					ord, res.Raw)
			}
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	if _, err := Compute(nil); err != ErrNoPoints {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
}
