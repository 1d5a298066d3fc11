package strategy_test

import (
	"testing"

	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
	"github.com/intale/tchess/pkg/strategy"
)

func TestAddAssociationIsBidirectional(t *testing.T) {
	p := strategy.New()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	sp := strategy.Point{Kind: strategy.Attack, At: geometry.Point{X: 3, Y: 3}}

	p.AddAssociation(sp, id)

	if !p.IsUnderAttack(sp.At) {
		t.Fatal("IsUnderAttack should be true after adding an Attack point")
	}
	attackers := p.Attackers(sp.At)
	if len(attackers) != 1 || attackers[0] != id {
		t.Fatalf("Attackers(%s) = %v, want [%v]", sp.At, attackers, id)
	}
	points := p.GetPoints(id)
	if len(points) != 1 || points[0] != sp {
		t.Fatalf("GetPoints(%v) = %v, want [%v]", id, points, sp)
	}
}

func TestRemovePieceDropsBothDirections(t *testing.T) {
	p := strategy.New()
	id := piece.Id{Color: piece.Black, Ordinal: 2}
	sp := strategy.Point{Kind: strategy.Defense, At: geometry.Point{X: 1, Y: 1}}
	p.AddAssociation(sp, id)

	p.RemovePiece(id)

	if p.IsUnderDefense(sp.At) {
		t.Fatal("point should have no defenders after RemovePiece")
	}
	if points := p.GetPoints(id); len(points) != 0 {
		t.Fatalf("GetPoints after RemovePiece = %v, want empty", points)
	}
}

func TestMultiplePiecesShareAPoint(t *testing.T) {
	p := strategy.New()
	at := geometry.Point{X: 4, Y: 4}
	sp := strategy.Point{Kind: strategy.Attack, At: at}
	a := piece.Id{Color: piece.White, Ordinal: 0}
	b := piece.Id{Color: piece.White, Ordinal: 1}

	p.AddAssociation(sp, a)
	p.AddAssociation(sp, b)

	if got := p.Attackers(at); len(got) != 2 {
		t.Fatalf("Attackers(%s) = %v, want 2 entries", at, got)
	}

	p.RemovePiece(a)
	if got := p.Attackers(at); len(got) != 1 || got[0] != b {
		t.Fatalf("Attackers(%s) after removing a = %v, want [%v]", at, got, b)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := strategy.New()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	sp := strategy.Point{Kind: strategy.Attack, At: geometry.Point{X: 2, Y: 2}}
	p.AddAssociation(sp, id)

	cp := p.Clone()
	cp.RemovePiece(id)

	if !p.IsUnderAttack(sp.At) {
		t.Fatal("mutating the clone should not affect the original")
	}
	if cp.IsUnderAttack(sp.At) {
		t.Fatal("clone should have dropped the association")
	}
}
