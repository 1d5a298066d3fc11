package constraints_test

import (
	"testing"

	"github.com/intale/tchess/pkg/constraints"
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/moves"
	"github.com/intale/tchess/pkg/piece"
)

func TestNewOverlayIsDisabled(t *testing.T) {
	o := constraints.New()
	if o.Enabled() {
		t.Fatal("a fresh overlay should not be enabled")
	}
}

func TestEnableAndAllowed(t *testing.T) {
	o := constraints.New()
	at := geometry.Point{X: 3, Y: 3}
	o.Enable(map[geometry.Point]struct{}{at: {}})

	if !o.Enabled() {
		t.Fatal("Enable should mark the overlay enabled")
	}
	if !o.Allowed(at) {
		t.Fatalf("Allowed(%s) = false, want true", at)
	}
	if o.Allowed(geometry.Point{X: 0, Y: 0}) {
		t.Fatal("an unlisted square should not be Allowed")
	}
}

func TestCopyInIndexesByPieceDestAndScore(t *testing.T) {
	o := constraints.New()
	at := geometry.Point{X: 3, Y: 3}
	o.Enable(map[geometry.Point]struct{}{at: {}})

	id := piece.Id{Color: piece.White, Ordinal: 0}
	m := moves.NewPoint(at)
	o.CopyIn(id, m, moves.Score(2))

	if got := o.MovesOf(id); got[m] != moves.Score(2) {
		t.Fatalf("MovesOf(%v)[%v] = %v, want 2", id, m, got[m])
	}
	if got := o.PiecesToMoveOnto(at); got[id][m] != moves.Score(2) {
		t.Fatal("PiecesToMoveOnto should include the copied-in move")
	}
	if _, ok := o.MovesByScore(moves.Score(2))[id][m]; !ok {
		t.Fatal("MovesByScore should include the copied-in move")
	}
	if o.IsEmpty() {
		t.Fatal("IsEmpty should be false once a move has been copied in")
	}
}

func TestResetClearsOverlay(t *testing.T) {
	o := constraints.New()
	at := geometry.Point{X: 3, Y: 3}
	o.Enable(map[geometry.Point]struct{}{at: {}})
	o.CopyIn(piece.Id{Color: piece.White, Ordinal: 0}, moves.NewPoint(at), moves.Score(0))

	o.Reset()

	if o.Enabled() {
		t.Fatal("Reset should disable the overlay")
	}
	if o.Allowed(at) {
		t.Fatal("Reset should clear the allowed set")
	}
}

func TestCloneOfDisabledOverlayIsDisabled(t *testing.T) {
	o := constraints.New()
	cp := o.Clone()
	if cp.Enabled() {
		t.Fatal("cloning a disabled overlay should produce a disabled overlay")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	o := constraints.New()
	at := geometry.Point{X: 3, Y: 3}
	o.Enable(map[geometry.Point]struct{}{at: {}})
	id := piece.Id{Color: piece.White, Ordinal: 0}
	m := moves.NewPoint(at)
	o.CopyIn(id, m, moves.Score(0))

	cp := o.Clone()
	cp.Reset()

	if !o.Enabled() {
		t.Fatal("mutating the clone should not affect the original")
	}
	if cp.Enabled() {
		t.Fatal("clone should reflect its own mutation")
	}
}
