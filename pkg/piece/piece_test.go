package piece_test

import (
	"testing"

	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

func TestColorOther(t *testing.T) {
	if piece.White.Other() != piece.Black {
		t.Fatal("White.Other() should be Black")
	}
	if piece.Black.Other() != piece.White {
		t.Fatal("Black.Other() should be White")
	}
}

func TestKindFromStringRoundTrips(t *testing.T) {
	for _, k := range []piece.Kind{piece.Pawn, piece.Knight, piece.Bishop, piece.Rook, piece.Queen, piece.King} {
		if got := piece.KindFromString(k.String()); got != k {
			t.Fatalf("KindFromString(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestKindFromStringInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an invalid kind letter")
		}
	}()
	piece.KindFromString("Z")
}

func TestIdString(t *testing.T) {
	id := piece.Id{Color: piece.White, Ordinal: 3}
	if got := id.String(); got != "w3" {
		t.Fatalf("Id.String() = %q, want %q", got, "w3")
	}
}

func TestNewPieceHasNoBuffsOrDebuffs(t *testing.T) {
	p := piece.New(piece.Id{Color: piece.Black, Ordinal: 0}, piece.Knight, piece.Black, geometry.Point{X: 1, Y: 7})
	if p.Buffs.Castle || p.Buffs.AdditionalPoint || p.Buffs.EnPassant != nil {
		t.Fatal("a new piece should carry no buffs")
	}
	if p.Debuffs.Check || p.Debuffs.Pin != nil {
		t.Fatal("a new piece should carry no debuffs")
	}
}

func TestPromotionsOrder(t *testing.T) {
	want := []piece.Kind{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}
	if len(piece.Promotions) != len(want) {
		t.Fatalf("Promotions = %v, want %v", piece.Promotions, want)
	}
	for i, k := range want {
		if piece.Promotions[i] != k {
			t.Fatalf("Promotions[%d] = %v, want %v", i, piece.Promotions[i], k)
		}
	}
}
