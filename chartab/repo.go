package chartab

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mailhexu/anaddb-irreps/symmetry"
)

//go:embed data/pointgroups.yaml
var pointGroupData []byte

// Repository is an immutable set of character tables keyed by group label.
type Repository struct {
	tables map[string]*Table
}

// NewRepository builds a repository from the embedded point-group tables
// plus any extra tables (user-loaded k-point tables, typically).
func NewRepository(extra ...*Table) (*Repository, error) {
	builtin, err := LoadTables(bytes.NewReader(pointGroupData))
	if err != nil {
		return nil, fmt.Errorf("chartab: embedded tables: %w", err)
	}

	tables := make(map[string]*Table, len(builtin)+len(extra))
	for _, t := range builtin {
		tables[t.Group] = t
	}
	for _, t := range extra {
		tables[t.Group] = t
	}
	return &Repository{tables: tables}, nil
}

// Lookup returns the table for a group label.
func (r *Repository) Lookup(group string) (*Table, error) {
	t, ok := r.tables[group]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGroup, group)
	}
	return t, nil
}

// Groups returns the sorted labels of all stored tables.
func (r *Repository) Groups() []string {
	out := make([]string, 0, len(r.tables))
	for g := range r.tables {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// tableDoc mirrors the YAML table schema.
type tableDoc struct {
	Groups []groupDoc `yaml:"groups"`
}

type groupDoc struct {
	Label       string     `yaml:"label"`
	Schoenflies string     `yaml:"schoenflies"`
	Operations  []opDoc    `yaml:"operations"`
	Irreps      []irrepDoc `yaml:"irreps"`
}

type opDoc struct {
	XYZ   string `yaml:"xyz"`
	Class string `yaml:"class"`
}

type irrepDoc struct {
	Label      string               `yaml:"label"`
	Characters map[string]charValue `yaml:"characters"`
}

// charValue accepts either a real scalar or a [re, im] pair.
type charValue complex128

func (c *charValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var re float64
		if err := node.Decode(&re); err != nil {
			return err
		}
		*c = charValue(complex(re, 0))
		return nil
	case yaml.SequenceNode:
		var pair [2]float64
		if err := node.Decode(&pair); err != nil {
			return err
		}
		*c = charValue(complex(pair[0], pair[1]))
		return nil
	default:
		return fmt.Errorf("character must be a number or [re, im] pair")
	}
}

// LoadTables parses tables from a YAML document. Operation matrices come
// from xyz-triplet notation; per-class characters are expanded to
// per-operation characters; dimensions derive from the identity character
// and the sum rule is enforced.
func LoadTables(r io.Reader) ([]*Table, error) {
	var doc tableDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("chartab: parse tables: %w", err)
	}

	tables := make([]*Table, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		t, err := buildTable(g)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func buildTable(g groupDoc) (*Table, error) {
	t := &Table{
		Group:       g.Label,
		Schoenflies: g.Schoenflies,
		Ops:         make([]symmetry.Mat3, len(g.Operations)),
		Entries:     make([]Entry, 0, len(g.Irreps)),
	}

	classes := make([]string, len(g.Operations))
	for i, op := range g.Operations {
		rot, trans, err := symmetry.ParseXYZ(op.XYZ)
		if err != nil {
			return nil, fmt.Errorf("chartab: table %q: %w", g.Label, err)
		}
		if !trans.IsZero(1e-12) {
			return nil, fmt.Errorf("chartab: table %q operation %q carries a translation", g.Label, op.XYZ)
		}
		t.Ops[i] = rot
		classes[i] = op.Class
	}

	for _, ir := range g.Irreps {
		chars := make([]complex128, len(g.Operations))
		for i, class := range classes {
			v, ok := ir.Characters[class]
			if !ok {
				return nil, fmt.Errorf("chartab: table %q irrep %q misses class %q", g.Label, ir.Label, class)
			}
			chars[i] = complex128(v)
		}
		t.Entries = append(t.Entries, Entry{Label: ir.Label, Chars: chars})
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}
