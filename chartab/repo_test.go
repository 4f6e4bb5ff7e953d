package chartab

import (
	"errors"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/mailhexu/anaddb-irreps/symmetry"
)

func TestRepository_EmbeddedTables(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	want := []string{"1", "-1", "2", "m", "2/m", "222", "mmm", "4/mmm", "m-3m"}
	for _, g := range want {
		if _, err := repo.Lookup(g); err != nil {
			t.Errorf("Lookup(%q): %v", g, err)
		}
	}

	if _, err := repo.Lookup("6/mmm"); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("Lookup(6/mmm) error = %v, want ErrUnknownGroup", err)
	}
}

// Every embedded table must satisfy sum(dim^2) == group order.
func TestRepository_SumRule(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	for _, g := range repo.Groups() {
		tab, err := repo.Lookup(g)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", g, err)
		}

		sum := 0
		for _, e := range tab.Entries {
			sum += e.Dim * e.Dim
		}
		if sum != tab.Order() {
			t.Errorf("group %q: sum(dim^2) = %d, order = %d", g, sum, tab.Order())
		}
	}
}

// Rows of a character table are orthogonal under the group-element inner
// product; the diagonal normalizes to the group order.
func TestRepository_RowOrthogonality(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	for _, g := range repo.Groups() {
		tab, _ := repo.Lookup(g)
		for i, a := range tab.Entries {
			for j, b := range tab.Entries {
				var s complex128
				for k := range a.Chars {
					s += cmplx.Conj(a.Chars[k]) * b.Chars[k]
				}
				want := 0.0
				if i == j {
					want = float64(tab.Order())
				}
				if cmplx.Abs(s-complex(want, 0)) > 1e-9 {
					t.Errorf("group %q: <%s,%s> = %v, want %v", g, a.Label, b.Label, s, want)
				}
			}
		}
	}
}

func TestTable_MinDimension(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	tests := map[string]int{"1": 1, "mmm": 1, "4/mmm": 1, "m-3m": 1}
	for g, want := range tests {
		tab, _ := repo.Lookup(g)
		if got := tab.MinDimension(); got != want {
			t.Errorf("MinDimension(%q) = %d, want %d", g, got, want)
		}
	}
}

func TestTable_Align(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	tab, _ := repo.Lookup("mmm")

	// Reverse the operation order and align.
	rots := make([]symmetry.Mat3, tab.Order())
	for i := range rots {
		rots[i] = tab.Ops[tab.Order()-1-i]
	}

	aligned, err := tab.Align(rots, 1e-8)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	for i, e := range aligned.Entries {
		orig := tab.Entries[i]
		for k := range e.Chars {
			if got, want := e.Chars[k], orig.Chars[tab.Order()-1-k]; got != want {
				t.Errorf("irrep %s op %d: char %v, want %v", e.Label, k, got, want)
			}
		}
	}
}

func TestTable_Align_Mismatch(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	tab, _ := repo.Lookup("mmm")

	var alignErr *AlignmentError

	// Wrong count.
	_, err = tab.Align(tab.Ops[:4], 1e-8)
	if !errors.As(err, &alignErr) {
		t.Fatalf("Align short list error = %v, want *AlignmentError", err)
	}

	// Right count, foreign operation.
	rots := make([]symmetry.Mat3, tab.Order())
	copy(rots, tab.Ops)
	rots[3] = symmetry.Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}} // C4z, not in mmm
	_, err = tab.Align(rots, 1e-8)
	if !errors.As(err, &alignErr) {
		t.Fatalf("Align foreign op error = %v, want *AlignmentError", err)
	}
	if alignErr.Operation != 3 {
		t.Errorf("AlignmentError.Operation = %d, want 3", alignErr.Operation)
	}
}

func TestLoadTables_ComplexCharacters(t *testing.T) {
	// A k-point style table with an explicitly complex character.
	doc := `
groups:
  - label: "4-test"
    schoenflies: C4
    operations:
      - { xyz: "x,y,z", class: E }
      - { xyz: "-y,x,z", class: C4 }
      - { xyz: "-x,-y,z", class: C2 }
      - { xyz: "y,-x,z", class: C4i }
    irreps:
      - label: A
        characters: { E: 1, C4: 1, C2: 1, C4i: 1 }
      - label: B
        characters: { E: 1, C4: -1, C2: 1, C4i: -1 }
      - label: E+
        characters: { E: 1, C4: [0, 1], C2: -1, C4i: [0, -1] }
      - label: E-
        characters: { E: 1, C4: [0, -1], C2: -1, C4i: [0, 1] }
`
	tables, err := LoadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}

	tab := tables[0]
	if tab.Order() != 4 {
		t.Errorf("Order = %d, want 4", tab.Order())
	}
	got := tab.Entries[2].Chars[1]
	if math.Abs(real(got)) > 1e-12 || math.Abs(imag(got)-1) > 1e-12 {
		t.Errorf("E+ character at C4 = %v, want i", got)
	}
}

func TestLoadTables_SumRuleViolation(t *testing.T) {
	doc := `
groups:
  - label: bad
    operations:
      - { xyz: "x,y,z", class: E }
      - { xyz: "-x,-y,-z", class: i }
    irreps:
      - label: Ag
        characters: { E: 1, i: 1 }
`
	if _, err := LoadTables(strings.NewReader(doc)); err == nil {
		t.Fatal("LoadTables: expected sum rule violation")
	}
}

func TestLoadTables_NoIdentity(t *testing.T) {
	doc := `
groups:
  - label: bad
    operations:
      - { xyz: "-x,-y,-z", class: i }
    irreps:
      - label: Ag
        characters: { i: 1 }
`
	if _, err := LoadTables(strings.NewReader(doc)); !errors.Is(err, ErrNoIdentity) {
		t.Fatalf("LoadTables error = %v, want ErrNoIdentity", err)
	}
}
