package symmetry

import (
	"errors"
	"testing"
)

func mustOp(t *testing.T, xyz string) Operation {
	t.Helper()
	rot, trans, err := ParseXYZ(xyz)
	if err != nil {
		t.Fatalf("ParseXYZ(%q): %v", xyz, err)
	}
	op, err := BuildOperation(rot, trans, cubicCell, []Vec3{{0, 0, 0}}, 1e-5, 0)
	if err != nil {
		t.Fatalf("BuildOperation(%q): %v", xyz, err)
	}
	return op
}

func TestNewLittleGroup_RejectsMismatch(t *testing.T) {
	// C4z does not leave q = (1/2, 0, 0) invariant.
	ops := []Operation{mustOp(t, "x,y,z"), mustOp(t, "-y,x,z")}

	_, err := NewLittleGroup(ops, Vec3{0.5, 0, 0}, 1e-5, "4/mmm", "P4/mmm")
	if err == nil {
		t.Fatal("NewLittleGroup: expected wavevector error")
	}

	var wvErr *WavevectorError
	if !errors.As(err, &wvErr) {
		t.Fatalf("error %v, want *WavevectorError", err)
	}
	if wvErr.Operation != 1 {
		t.Errorf("WavevectorError.Operation = %d, want 1", wvErr.Operation)
	}
}

func TestNewLittleGroup_XPointAccepts(t *testing.T) {
	// C2x maps (1/2,0,0) to itself; C2z maps it to (-1/2,0,0), which
	// differs by the reciprocal vector (1,0,0).
	ops := []Operation{mustOp(t, "x,y,z"), mustOp(t, "x,-y,-z"), mustOp(t, "-x,-y,z")}

	lg, err := NewLittleGroup(ops, Vec3{0.5, 0, 0}, 1e-5, "mmm", "Pmmm")
	if err != nil {
		t.Fatalf("NewLittleGroup: %v", err)
	}
	if lg.Order() != 3 {
		t.Errorf("Order = %d, want 3", lg.Order())
	}
	if lg.IsGamma(1e-5) {
		t.Error("IsGamma = true for X point")
	}
}

func TestSelectLittleGroup_Filters(t *testing.T) {
	ops := []Operation{mustOp(t, "x,y,z"), mustOp(t, "-y,x,z"), mustOp(t, "x,-y,-z")}

	lg := SelectLittleGroup(ops, Vec3{0.5, 0, 0}, 1e-5, "", "")
	if lg.Order() != 2 {
		t.Fatalf("Order = %d, want 2 (identity and C2x)", lg.Order())
	}
	if !lg.Ops[1].RotCart.ApproxEqual(Mat3{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, 1e-12) {
		t.Errorf("kept operation %v, want C2x", lg.Ops[1].RotCart)
	}
}

func TestLittleGroup_IsGamma(t *testing.T) {
	ops := []Operation{mustOp(t, "x,y,z")}

	for _, q := range []Vec3{{0, 0, 0}, {1, 0, 0}, {-1, 2, 0}} {
		lg, err := NewLittleGroup(ops, q, 1e-5, "1", "P1")
		if err != nil {
			t.Fatalf("NewLittleGroup(%v): %v", q, err)
		}
		if !lg.IsGamma(1e-5) {
			t.Errorf("IsGamma(%v) = false, want true", q)
		}
	}
}

func TestLittleGroup_SquareIndex(t *testing.T) {
	// C4z squared is C2z.
	ops := []Operation{mustOp(t, "x,y,z"), mustOp(t, "-y,x,z"), mustOp(t, "-x,-y,z"), mustOp(t, "y,-x,z")}

	lg, err := NewLittleGroup(ops, Vec3{}, 1e-5, "4", "P4")
	if err != nil {
		t.Fatalf("NewLittleGroup: %v", err)
	}

	j, err := lg.SquareIndex(1, 1e-5)
	if err != nil {
		t.Fatalf("SquareIndex: %v", err)
	}
	if j != 2 {
		t.Errorf("SquareIndex(C4z) = %d, want 2 (C2z)", j)
	}

	// Identity squared is identity.
	j, err = lg.SquareIndex(0, 1e-5)
	if err != nil {
		t.Fatalf("SquareIndex: %v", err)
	}
	if j != 0 {
		t.Errorf("SquareIndex(E) = %d, want 0", j)
	}
}

func TestLittleGroup_SquareIndex_NotClosed(t *testing.T) {
	ops := []Operation{mustOp(t, "-y,x,z")} // C4z without C2z
	lg := &LittleGroup{Qpoint: Vec3{}, Ops: ops}

	if _, err := lg.SquareIndex(0, 1e-5); !errors.Is(err, ErrNotClosed) {
		t.Errorf("SquareIndex error = %v, want ErrNotClosed", err)
	}
}
