package heatmap_test

import (
	"testing"

	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/heatmap"
	"github.com/intale/tchess/pkg/piece"
)

func TestValueAddsTableTermToFlatValue(t *testing.T) {
	hm := heatmap.PeSTO{}
	at := geometry.Point{X: 3, Y: 3}

	// Rook and Queen score their flat value plus the positional term
	// from their own table: White reads rank-from-top 7-Y = 4 (Rook
	// -1), Black reads rank-from-top Y = 3 (Queen -16).
	if got := hm.Value(piece.Rook, piece.White, at); got != 476 {
		t.Fatalf("Value(Rook, White, %s) = %d, want 476", at, got)
	}
	if got := hm.Value(piece.Queen, piece.Black, at); got != 1009 {
		t.Fatalf("Value(Queen, Black, %s) = %d, want 1009", at, got)
	}
}

func TestValueDegradesOutsideOrthodoxDimension(t *testing.T) {
	hm := heatmap.PeSTO{}
	outside := geometry.Point{X: 9, Y: 0}
	if got := hm.Value(piece.Pawn, piece.White, outside); got != 82 {
		t.Fatalf("Value outside 8x8 = %d, want the flat pawn value 82", got)
	}
}

func TestValueMirrorsRankByColor(t *testing.T) {
	hm := heatmap.PeSTO{}
	p := geometry.Point{X: 4, Y: 6}

	white := hm.Value(piece.Pawn, piece.White, p)
	black := hm.Value(piece.Pawn, piece.Black, geometry.Point{X: 4, Y: 1})

	if white != black {
		t.Fatalf("White at %s (%d) should mirror Black at the rank-flipped square (%d)", p, white, black)
	}
}

func TestPawnAdvancedRankScoresHigherThanBackRank(t *testing.T) {
	hm := heatmap.PeSTO{}
	// White pawns start on rank 2 (Y=1) and the table rewards advanced
	// ranks; a pawn on its seventh rank (Y=6, one step from promoting)
	// should score higher than one still on its second rank.
	back := hm.Value(piece.Pawn, piece.White, geometry.Point{X: 4, Y: 1})
	advanced := hm.Value(piece.Pawn, piece.White, geometry.Point{X: 4, Y: 6})

	if advanced <= back {
		t.Fatalf("advanced pawn value %d should exceed back-rank value %d", advanced, back)
	}
}
