package nscp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLookupGrade(t *testing.T) {
	g, err := LookupGrade("a992")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(SteelGrade{Name: "A992", Fy: 345, Fu: 450}, g); d != "" {
		t.Error(d)
	}
	if _, err := LookupGrade("S355"); err == nil {
		t.Error("expected an error for an unknown grade")
	}
}

func TestFlexuralCapacity(t *testing.T) {
	// 200×400 mm rectangle: S = b·h²/6, Z = b·h²/4.
	s := 200.0 * 400 * 400 / 6
	z := 200.0 * 400 * 400 / 4
	approx := cmpopts.EquateApprox(1e-12, 0)

	if d := cmp.Diff(248*s/1e6, YieldMoment(248, s), approx); d != "" {
		t.Error(d)
	}
	mp := PlasticMoment(248, z)
	if d := cmp.Diff(1984.0, mp, approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(0.9*1984.0, DesignFlexuralStrength(mp), approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(1.5, ShapeFactor(z, s), approx); d != "" {
		t.Error(d)
	}
	if got := ShapeFactor(z, 0); got != 0 {
		t.Errorf("got shape factor %v for zero S, want 0", got)
	}
	if d := cmp.Diff(0.00124, YieldStrain(248), approx); d != "" {
		t.Error(d)
	}
}
