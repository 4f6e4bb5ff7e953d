package phonio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mailhexu/anaddb-irreps/irreps"
	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// Structure describes the crystal: lattice rows in Å, fractional
// positions, atomic masses in amu, and optional element symbols.
type Structure struct {
	Lattice   symmetry.Mat3   `yaml:"lattice"`
	Symbols   []string        `yaml:"symbols,omitempty"`
	Masses    []float64       `yaml:"masses"`
	Positions []symmetry.Vec3 `yaml:"positions"`
}

// Symmetry carries the group labels and the operation list.
type Symmetry struct {
	SpaceGroup string          `yaml:"spacegroup,omitempty"`
	PointGroup string          `yaml:"pointgroup"`
	Operations []OperationSpec `yaml:"operations"`
}

// OperationSpec is one symmetry operation, given either as an
// xyz-triplet string or as an explicit fractional rotation with an
// optional translation.
type OperationSpec struct {
	XYZ         string         `yaml:"xyz,omitempty"`
	Rotation    *symmetry.Mat3 `yaml:"rotation,omitempty"`
	Translation *symmetry.Vec3 `yaml:"translation,omitempty"`
}

// Qpoint is one wavevector with its mode list, sorted ascending by
// frequency.
type Qpoint struct {
	Q     symmetry.Vec3 `yaml:"qpoint"`
	Modes []ModeData    `yaml:"modes"`
}

// ModeData is one branch: frequency in THz (negative marks an unstable
// mode) and the Cartesian displacement as [re, im] pairs of length 3N.
type ModeData struct {
	Frequency    float64      `yaml:"frequency"`
	Displacement [][2]float64 `yaml:"displacement"`
}

// Document is a parsed phonon band-structure file.
type Document struct {
	Structure Structure `yaml:"structure"`
	Symmetry  Symmetry  `yaml:"symmetry"`
	Qpoints   []Qpoint  `yaml:"qpoints"`
}

// Load parses and validates a document. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("phonio: decode: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads a document from path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("phonio: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (d *Document) validate() error {
	n := len(d.Structure.Positions)
	if n == 0 {
		return &FormatError{Section: "structure", Reason: "no atomic positions"}
	}
	if len(d.Structure.Masses) != n {
		return &FormatError{
			Section: "structure",
			Reason:  fmt.Sprintf("%d masses for %d atoms", len(d.Structure.Masses), n),
		}
	}
	for i, m := range d.Structure.Masses {
		if m <= 0 {
			return &FormatError{Section: "structure", Reason: fmt.Sprintf("mass %d is %v", i, m)}
		}
	}
	if len(d.Structure.Symbols) != 0 && len(d.Structure.Symbols) != n {
		return &FormatError{
			Section: "structure",
			Reason:  fmt.Sprintf("%d symbols for %d atoms", len(d.Structure.Symbols), n),
		}
	}
	if _, ok := d.Structure.Lattice.Inverse(); !ok {
		return &FormatError{Section: "structure", Reason: "singular lattice"}
	}
	if len(d.Symmetry.Operations) == 0 {
		return ErrNoOperations
	}
	for i, op := range d.Symmetry.Operations {
		if op.XYZ == "" && op.Rotation == nil {
			return &FormatError{
				Section: "symmetry",
				Reason:  fmt.Sprintf("operation %d has neither xyz nor rotation", i),
			}
		}
	}
	for iq, qp := range d.Qpoints {
		for ib, m := range qp.Modes {
			if len(m.Displacement) != 3*n {
				return &FormatError{
					Section: "qpoints",
					Reason: fmt.Sprintf("q-point %d mode %d: displacement length %d, want %d",
						iq, ib, len(m.Displacement), 3*n),
				}
			}
		}
	}
	return nil
}

// NAtoms returns the atom count.
func (d *Document) NAtoms() int { return len(d.Structure.Positions) }

// Operations resolves every operation spec against the structure,
// producing permutations and lattice corrections.
func (d *Document) Operations(tol float64) ([]symmetry.Operation, error) {
	ops := make([]symmetry.Operation, len(d.Symmetry.Operations))
	for i, spec := range d.Symmetry.Operations {
		rot, trans := symmetry.Mat3{}, symmetry.Vec3{}
		if spec.XYZ != "" {
			var err error
			rot, trans, err = symmetry.ParseXYZ(spec.XYZ)
			if err != nil {
				return nil, fmt.Errorf("phonio: operation %d: %w", i, err)
			}
		} else {
			rot = *spec.Rotation
			if spec.Translation != nil {
				trans = *spec.Translation
			}
		}
		op, err := symmetry.BuildOperation(rot, trans, d.Structure.Lattice, d.Structure.Positions, tol, i)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

// LittleGroup builds the little group of the iq-th q-point, keeping
// only operations that leave the wavevector invariant.
func (d *Document) LittleGroup(iq int, tol float64) (*symmetry.LittleGroup, error) {
	if iq < 0 || iq >= len(d.Qpoints) {
		return nil, fmt.Errorf("%w: %d of %d", ErrQpointIndex, iq, len(d.Qpoints))
	}
	ops, err := d.Operations(tol)
	if err != nil {
		return nil, err
	}
	return symmetry.SelectLittleGroup(ops, d.Qpoints[iq].Q, tol,
		d.Symmetry.PointGroup, d.Symmetry.SpaceGroup), nil
}

// Modes returns the iq-th q-point's branches as normalized
// eigenvectors, mass-weighted and phase-fixed.
func (d *Document) Modes(iq int) ([]irreps.Mode, error) {
	if iq < 0 || iq >= len(d.Qpoints) {
		return nil, fmt.Errorf("%w: %d of %d", ErrQpointIndex, iq, len(d.Qpoints))
	}
	qp := d.Qpoints[iq]

	modes := make([]irreps.Mode, len(qp.Modes))
	for ib, md := range qp.Modes {
		displ := make([]complex128, len(md.Displacement))
		for i, pair := range md.Displacement {
			displ[i] = complex(pair[0], pair[1])
		}
		evec, err := Eigenvector(displ, d.Structure.Masses, d.Structure.Positions, qp.Q)
		if err != nil {
			return nil, fmt.Errorf("q-point %d mode %d: %w", iq, ib, err)
		}
		modes[ib] = irreps.Mode{Frequency: md.Frequency, Displacement: evec, Band: ib}
	}
	return modes, nil
}
