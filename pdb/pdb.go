// Package pdb reads carbon-alpha atom coordinates from PDB files.
//
// Only the fields needed to describe the shape of a structure are
// parsed: the record name, the atom name, the chain identifier and the
// three coordinate fields of each ATOM record. Everything else in the
// file is ignored without validation.
package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Coords is a triple of atomic coordinates in Angstroms.
type Coords [3]float64

// Entry represents the carbon-alpha trace of a single PDB file.
//
// An entry is simply a file path and a map of protein chains. Only the
// first model of a multi-model (NMR) file contributes atoms.
type Entry struct {
	Path   string
	Chains map[byte]*Chain
}

// Chain holds the carbon-alpha coordinates of one protein chain, in
// the order they appear in the file.
type Chain struct {
	Ident   byte
	CaAtoms []Coords
}

// New creates a new PDB Entry from a file. If the file cannot be read,
// or there is an error parsing the PDB file, an error is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
//
// chains may name one or more chain identifiers (e.g. "A" or "AB");
// when non-empty, only ATOM records belonging to those chains are
// kept. An empty string keeps every chain.
func New(fileName string, chains string) (*Entry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f

	// If the file is gzipped, use the gzip decompressor.
	if path.Ext(fileName) == ".gz" {
		gr, err := gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		reader = gr
	}

	return Read(reader, fileName, chains)
}

// Read parses PDB formatted text from r. The name is used only in
// error messages and as the Path of the returned Entry.
//
// An ATOM record qualifies when the atom name in columns 13-16 is
// "CA" (and, when a chain filter is given, the chain identifier in
// column 22 is one of the named chains). HETATM records and every
// other record type are skipped. Parsing stops at the first ENDMDL
// record so that each conformation is counted once.
func Read(r io.Reader, name string, chains string) (*Entry, error) {
	entry := &Entry{
		Path:   name,
		Chains: make(map[byte]*Chain),
	}

	lineNum := 0
	scanning := true
	breader := bufio.NewReaderSize(r, 1000)
	for scanning {
		// We ignore 'isPrefix' here, since we never care about lines
		// longer than 1000 characters, which is the size of our buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		lineNum++

		if len(line) < 6 {
			continue
		}
		switch strings.TrimSpace(string(line[0:6])) {
		case "ATOM":
			if err := entry.parseAtom(line, lineNum, chains); err != nil {
				return nil, err
			}
		case "ENDMDL":
			// Subsequent models repeat the same molecule.
			scanning = false
		}
	}

	if entry.NumAtoms() == 0 {
		return nil, &EmptyError{Path: name, Chains: chains}
	}
	return entry, nil
}

// parseAtom extracts the coordinates of a single ATOM record. Records
// whose atom name is not "CA", or that belong to a filtered-out chain,
// are skipped silently. A qualifying record that is too short or whose
// coordinate fields do not parse produces a *FormatError.
func (e *Entry) parseAtom(line []byte, lineNum int, chains string) error {
	// The atom name is in columns 13-16, the chain identifier in
	// column 22 and the coordinates in columns 31-38, 39-46 and 47-54.
	if len(line) < 16 {
		return nil
	}
	if strings.TrimSpace(string(line[12:16])) != "CA" {
		return nil
	}
	if len(chains) > 0 {
		if len(line) < 22 || strings.IndexByte(chains, line[21]) == -1 {
			return nil
		}
	}
	if len(line) < 54 {
		return &FormatError{Path: e.Path, Line: lineNum, Field: "coordinates",
			Err: fmt.Errorf("record has %d columns, need at least 54", len(line))}
	}

	ident := line[21]

	var coords Coords
	fields := [3]string{"x coordinate", "y coordinate", "z coordinate"}
	for i := 0; i < 3; i++ {
		raw := strings.TrimSpace(string(line[30+8*i : 38+8*i]))
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &FormatError{Path: e.Path, Line: lineNum,
				Field: fields[i], Err: err}
		}
		coords[i] = num
	}

	chain := e.getOrMakeChain(ident)
	chain.CaAtoms = append(chain.CaAtoms, coords)
	return nil
}

// getOrMakeChain looks for a chain in the 'Chains' map corresponding
// to the chain identifier. If one exists, it is returned. If one
// doesn't exist, it is created, memory is allocated and it is returned.
func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if chain, ok := e.Chains[ident]; ok {
		return chain
	}
	e.Chains[ident] = &Chain{
		Ident:   ident,
		CaAtoms: make([]Coords, 0, 50),
	}
	return e.Chains[ident]
}

// CaAtoms returns every carbon-alpha coordinate in the entry, ordered
// by chain identifier and, within a chain, by position in the file.
func (e *Entry) CaAtoms() []Coords {
	idents := make([]int, 0, len(e.Chains))
	for ident := range e.Chains {
		idents = append(idents, int(ident))
	}
	sort.Ints(idents)

	atoms := make([]Coords, 0, e.NumAtoms())
	for _, ident := range idents {
		atoms = append(atoms, e.Chains[byte(ident)].CaAtoms...)
	}
	return atoms
}

// NumAtoms returns the number of carbon-alpha atoms accepted from the
// file.
func (e *Entry) NumAtoms() int {
	n := 0
	for _, chain := range e.Chains {
		n += len(chain.CaAtoms)
	}
	return n
}

// String returns a sorted list of all chains and their carbon-alpha
// atom counts.
func (e *Entry) String() string {
	lines := make([]string, 0)
	for _, chain := range e.Chains {
		lines = append(lines, chain.String())
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// String describes the chain and the number of carbon-alpha atoms it
// carries.
func (c *Chain) String() string {
	return fmt.Sprintf("> Chain %c :: %d CA atoms", c.Ident, len(c.CaAtoms))
}
