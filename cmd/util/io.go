package util

import (
	"os"

	"github.com/pierrepo/principal-axes/pdb"
)

// PDBRead parses a PDB file, restricted to the given chains when the
// filter is non-empty, and dies with a descriptive message on failure.
func PDBRead(path, chains string) *pdb.Entry {
	entry, err := pdb.New(path, chains)
	Assert(err, "Could not read PDB file '%s'", path)
	return entry
}

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}
