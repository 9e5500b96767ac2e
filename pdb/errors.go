package pdb

import "fmt"

// FormatError describes an ATOM record whose coordinate fields could
// not be parsed. The whole file is rejected: a corrupted coordinate
// would silently distort every quantity derived from the point cloud.
type FormatError struct {
	Path  string
	Line  int
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pdb: %s, line %d: bad %s: %s",
		e.Path, e.Line, e.Field, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// EmptyError indicates that no carbon-alpha atoms were found in a PDB
// file, possibly because a chain filter excluded all of them.
type EmptyError struct {
	Path   string
	Chains string
}

func (e *EmptyError) Error() string {
	if len(e.Chains) > 0 {
		return fmt.Sprintf("pdb: no CA atoms found in '%s' for chains '%s'",
			e.Path, e.Chains)
	}
	return fmt.Sprintf("pdb: no CA atoms found in '%s'", e.Path)
}
