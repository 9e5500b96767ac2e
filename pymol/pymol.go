// Package pymol emits PyMOL command scripts that draw principal axes
// as colored CGO line objects anchored at the geometric center of a
// structure.
package pymol

import (
	"fmt"
	"io"
	"strings"

	"github.com/pierrepo/principal-axes/axes"
	"github.com/pierrepo/principal-axes/pdb"
)

// DefaultScale is the factor applied to the unit eigenvectors so the
// drawn axes extend well past the structure.
const DefaultScale = 20.0

// Each axis runs from the center to center + k*scale*vector, where k
// is 3 for the first axis, 2 for the second and 1 for the third, so
// the relative eigenvalue magnitudes are visible at a glance. Lines
// are undirected, which is why no eigenvector sign convention is
// needed. Colors are fixed: first axis red, second green, third blue.
const template = `from cgo import *
axis1 = [ BEGIN, LINES, COLOR, 1.0, 0.0, 0.0, VERTEX, %8.3f, %8.3f, %8.3f, VERTEX, %8.3f, %8.3f, %8.3f, END ]
axis2 = [ BEGIN, LINES, COLOR, 0.0, 1.0, 0.0, VERTEX, %8.3f, %8.3f, %8.3f, VERTEX, %8.3f, %8.3f, %8.3f, END ]
axis3 = [ BEGIN, LINES, COLOR, 0.0, 0.0, 1.0, VERTEX, %8.3f, %8.3f, %8.3f, VERTEX, %8.3f, %8.3f, %8.3f, END ]
cmd.load_cgo(axis1, 'axis1')
cmd.load_cgo(axis2, 'axis2')
cmd.load_cgo(axis3, 'axis3')
cmd.set('cgo_line_width', 4)
`

// Script renders the axes drawing script. ordered must be ranked by
// descending eigenvalue, as returned by axes.Compute.
func Script(center pdb.Coords, ordered [3]axes.Axis, scale float64) string {
	args := make([]interface{}, 0, 18)
	for i, axis := range ordered {
		end := endpoint(center, axis.Vec, float64(3-i)*scale)
		args = append(args,
			center[0], center[1], center[2],
			end[0], end[1], end[2])
	}
	return fmt.Sprintf(template, args...)
}

// Write renders the script to w.
func Write(w io.Writer, center pdb.Coords, ordered [3]axes.Axis,
	scale float64) error {

	_, err := io.WriteString(w, Script(center, ordered, scale))
	return err
}

// OutPath derives the script file name from the PDB file name:
// "1abc.pdb" becomes "1abc_axes.pml". A ".gz" suffix is dropped first,
// and a name without a ".pdb" suffix keeps its extension and gains
// "_axes.pml".
func OutPath(pdbPath string) string {
	name := strings.TrimSuffix(pdbPath, ".gz")
	if strings.HasSuffix(name, ".pdb") {
		return strings.TrimSuffix(name, ".pdb") + "_axes.pml"
	}
	return name + "_axes.pml"
}

func endpoint(center pdb.Coords, vec [3]float64, scale float64) pdb.Coords {
	return pdb.Coords{
		center[0] + scale*vec[0],
		center[1] + scale*vec[1],
		center[2] + scale*vec[2],
	}
}
