package moves_test

import (
	"testing"

	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/moves"
	"github.com/intale/tchess/pkg/piece"
)

func TestAddIndexesByPieceDestAndScore(t *testing.T) {
	mm := moves.New()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	m := moves.NewPoint(geometry.Point{X: 3, Y: 3})

	mm.Add(id, m, moves.Score(5))

	if got := mm.MovesOf(id); got[m] != moves.Score(5) {
		t.Fatalf("MovesOf(%v)[%v] = %v, want 5", id, m, got[m])
	}
	byDest := mm.PiecesToMoveOnto(m.Dest)
	if byDest[id][m] != moves.Score(5) {
		t.Fatalf("PiecesToMoveOnto(%s) missing (%v, %v)", m.Dest, id, m)
	}
	byScore := mm.MovesByScore(moves.Score(5))
	if _, ok := byScore[id][m]; !ok {
		t.Fatalf("MovesByScore(5) missing (%v, %v)", id, m)
	}
}

func TestRemovePieceClearsAllIndices(t *testing.T) {
	mm := moves.New()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	m := moves.NewPoint(geometry.Point{X: 3, Y: 3})
	mm.Add(id, m, moves.Score(5))

	mm.RemovePiece(id)

	if got := mm.MovesOf(id); len(got) != 0 {
		t.Fatalf("MovesOf after RemovePiece = %v, want empty", got)
	}
	if got := mm.PiecesToMoveOnto(m.Dest); len(got) != 0 {
		t.Fatalf("PiecesToMoveOnto after RemovePiece = %v, want empty", got)
	}
	if got := mm.MovesByScore(moves.Score(5)); len(got) != 0 {
		t.Fatalf("MovesByScore after RemovePiece = %v, want empty", got)
	}
	if !mm.IsEmpty() {
		t.Fatal("IsEmpty should be true once the only piece is removed")
	}
}

func TestReAddAfterRemoveReplacesMoves(t *testing.T) {
	mm := moves.New()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	old := moves.NewPoint(geometry.Point{X: 3, Y: 3})
	mm.Add(id, old, moves.Score(5))
	mm.RemovePiece(id)

	fresh := moves.NewPoint(geometry.Point{X: 4, Y: 4})
	mm.Add(id, fresh, moves.Score(-2))

	if _, ok := mm.MovesOf(id)[old]; ok {
		t.Fatal("stale move should not reappear after RemovePiece+Add")
	}
	if mm.MovesOf(id)[fresh] != moves.Score(-2) {
		t.Fatal("fresh move should be indexed at its new score")
	}
	if got := mm.PiecesToMoveOnto(old.Dest); len(got) != 0 {
		t.Fatal("old destination index should be empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	mm := moves.New()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	m := moves.NewPoint(geometry.Point{X: 3, Y: 3})
	mm.Add(id, m, moves.Score(5))

	cp := mm.Clone()
	cp.RemovePiece(id)

	if _, ok := mm.MovesOf(id)[m]; !ok {
		t.Fatal("mutating the clone should not affect the original")
	}
	if len(cp.MovesOf(id)) != 0 {
		t.Fatal("clone should reflect its own mutation")
	}
}

func TestPromoteWrapsUnderlyingMove(t *testing.T) {
	underlying := moves.NewPoint(geometry.Point{X: 0, Y: 7})
	promo := moves.NewPromote(underlying, piece.Queen)

	if promo.Kind != moves.Promote {
		t.Fatalf("Kind = %v, want Promote", promo.Kind)
	}
	if promo.Dest != underlying.Dest {
		t.Fatalf("Dest = %s, want %s", promo.Dest, underlying.Dest)
	}
	if promo.PromoteKind != piece.Queen {
		t.Fatalf("PromoteKind = %v, want Queen", promo.PromoteKind)
	}
}
