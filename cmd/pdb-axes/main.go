// pdb-axes computes the principal axes of the carbon-alpha trace of a
// PDB file and writes a PyMOL script that draws them as colored lines
// through the geometric center of the structure.
package main

import (
	"flag"
	"fmt"

	"github.com/pierrepo/principal-axes/axes"
	"github.com/pierrepo/principal-axes/cmd/util"
	"github.com/pierrepo/principal-axes/pymol"
)

var (
	flagChain = ""
	flagScale = pymol.DefaultScale
	flagOut   = ""
)

func init() {
	flag.StringVar(&flagChain, "chain", flagChain,
		"This may be set to one or more chain identifiers. Only CA atoms "+
			"belonging to a chain specified will be included.")
	flag.Float64Var(&flagScale, "scale", flagScale,
		"The scale factor applied to the axes drawn by the PyMOL script.")
	flag.StringVar(&flagOut, "o", flagOut,
		"The path of the PyMOL script to write. When empty, the name is "+
			"derived from the PDB file name.")
	util.FlagParse("pdb-file",
		"Computes the principal axes of the CA atoms in a PDB file and "+
			"writes a PyMOL script drawing them.")
}

func main() {
	util.AssertNArg(1)
	pdbPath := util.Arg(0)

	entry := util.PDBRead(pdbPath, flagChain)
	atoms := entry.CaAtoms()
	fmt.Printf("%d CA atoms found in %s\n", len(atoms), pdbPath)
	util.Verbosef("%s", entry)

	res, err := axes.Compute(atoms)
	util.Assert(err, "Could not compute principal axes of '%s'", pdbPath)

	fmt.Printf("Coordinates of the geometric center:\n%s\n", fmtVec(res.Center))
	fmt.Println("(Unordered) eigen values:")
	for _, axis := range res.Raw {
		fmt.Printf("%12.3f\n", axis.Val)
	}
	fmt.Println("(Unordered) eigen vectors:")
	for _, axis := range res.Raw {
		fmt.Printf("%s\n", fmtVec(axis.Vec))
	}

	ranks := [3]string{"First", "Second", "Third"}
	colors := [3]string{"red", "green", "blue"}
	for i, axis := range res.Ordered {
		fmt.Printf("\n%s principal axis (in %s)\n", ranks[i], colors[i])
		fmt.Printf("coordinates: %s\n", fmtVec(axis.Vec))
		fmt.Printf("eigen value: %.3f\n", axis.Val)
	}

	// The script file is created only now, after the whole computation
	// succeeded.
	outPath := flagOut
	if len(outPath) == 0 {
		outPath = pymol.OutPath(pdbPath)
	}
	out := util.CreateFile(outPath)
	util.Assert(pymol.Write(out, res.Center, res.Ordered, flagScale),
		"Could not write PyMOL script '%s'", outPath)
	util.Assert(out.Close(), "Could not write PyMOL script '%s'", outPath)

	fmt.Printf("\nYou can view the principal axes with PyMOL:\n")
	fmt.Printf("pymol %s %s\n", outPath, pdbPath)
}

func fmtVec(v [3]float64) string {
	return fmt.Sprintf("[ %8.3f %8.3f %8.3f ]", v[0], v[1], v[2])
}
