package boardmap_test

import (
	"testing"

	"github.com/intale/tchess/pkg/boardmap"
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

func newTestMap() *boardmap.BoardMap {
	dim := geometry.Dimension{Min: geometry.Point{X: 0, Y: 0}, Max: geometry.Point{X: 7, Y: 7}}
	m := boardmap.New(dim)
	for y := 0; y <= 7; y++ {
		for x := 0; x <= 7; x++ {
			color := boardmap.Light
			if (x+y)%2 == 0 {
				color = boardmap.Dark
			}
			m.AddSquare(geometry.Point{X: x, Y: y}, boardmap.Square{Color: color})
		}
	}
	return m
}

func TestSquareUndefinedIsVoid(t *testing.T) {
	dim := geometry.Dimension{Min: geometry.Point{X: 0, Y: 0}, Max: geometry.Point{X: 7, Y: 7}}
	m := boardmap.New(dim)
	if sq := m.Square(geometry.Point{X: 3, Y: 3}); !sq.Void {
		t.Fatal("undefined square should report Void")
	}
}

func TestAddPieceAndPieceAt(t *testing.T) {
	m := newTestMap()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	pc := piece.New(id, piece.Knight, piece.White, geometry.Point{X: 1, Y: 0})
	m.AddPiece(pc)

	got, ok := m.PieceAt(geometry.Point{X: 1, Y: 0})
	if !ok || got.Id != id {
		t.Fatalf("PieceAt: got %v, %v; want %v, true", got, ok, id)
	}
	if !m.Square(geometry.Point{X: 1, Y: 0}).Occupied() {
		t.Fatal("square should report occupied after AddPiece")
	}
}

func TestAddPieceOccupiedSquarePanics(t *testing.T) {
	m := newTestMap()
	p := geometry.Point{X: 1, Y: 0}
	m.AddPiece(piece.New(piece.Id{Color: piece.White, Ordinal: 0}, piece.Knight, piece.White, p))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding a piece onto an occupied square")
		}
	}()
	m.AddPiece(piece.New(piece.Id{Color: piece.White, Ordinal: 1}, piece.Bishop, piece.White, p))
}

func TestChangePiecePositionUpdatesSquares(t *testing.T) {
	m := newTestMap()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	from := geometry.Point{X: 1, Y: 0}
	to := geometry.Point{X: 2, Y: 2}
	m.AddPiece(piece.New(id, piece.Knight, piece.White, from))

	old := m.ChangePiecePosition(id, to)
	if old != from {
		t.Fatalf("ChangePiecePosition returned %s, want %s", old, from)
	}
	if m.Square(from).Occupied() {
		t.Fatal("origin square should be vacated")
	}
	if _, ok := m.PieceAt(to); !ok {
		t.Fatal("destination square should hold the moved piece")
	}
	pc, _ := m.Piece(id)
	if pc.Position != to {
		t.Fatalf("piece.Position = %s, want %s", pc.Position, to)
	}
}

func TestRemovePiece(t *testing.T) {
	m := newTestMap()
	id := piece.Id{Color: piece.Black, Ordinal: 0}
	p := geometry.Point{X: 4, Y: 4}
	m.AddPiece(piece.New(id, piece.Rook, piece.Black, p))

	gone := m.RemovePiece(id)
	if gone != p {
		t.Fatalf("RemovePiece returned %s, want %s", gone, p)
	}
	if _, ok := m.PieceAt(p); ok {
		t.Fatal("square should be vacant after RemovePiece")
	}
	if _, ok := m.Piece(id); ok {
		t.Fatal("id should no longer resolve after RemovePiece")
	}
}

func TestKingTracking(t *testing.T) {
	m := newTestMap()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	m.AddPiece(piece.New(id, piece.King, piece.White, geometry.Point{X: 4, Y: 0}))

	got, ok := m.King(piece.White)
	if !ok || got != id {
		t.Fatalf("King(White) = %v, %v; want %v, true", got, ok, id)
	}
	if _, ok := m.King(piece.Black); ok {
		t.Fatal("King(Black) should report false before a black king is added")
	}
}

func TestActivePieces(t *testing.T) {
	m := newTestMap()
	m.AddPiece(piece.New(piece.Id{Color: piece.White, Ordinal: 0}, piece.Pawn, piece.White, geometry.Point{X: 0, Y: 1}))
	m.AddPiece(piece.New(piece.Id{Color: piece.White, Ordinal: 1}, piece.Pawn, piece.White, geometry.Point{X: 1, Y: 1}))
	m.AddPiece(piece.New(piece.Id{Color: piece.Black, Ordinal: 0}, piece.Pawn, piece.Black, geometry.Point{X: 0, Y: 6}))

	white := m.ActivePieces(piece.White)
	if len(white) != 2 {
		t.Fatalf("ActivePieces(White) = %v, want 2 entries", white)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := newTestMap()
	id := piece.Id{Color: piece.White, Ordinal: 0}
	from := geometry.Point{X: 1, Y: 0}
	m.AddPiece(piece.New(id, piece.Knight, piece.White, from))

	cp := m.Clone()
	to := geometry.Point{X: 2, Y: 2}
	cp.ChangePiecePosition(id, to)

	orig, _ := m.Piece(id)
	if orig.Position != from {
		t.Fatalf("mutating clone changed original: got %s, want %s", orig.Position, from)
	}
	clonedPc, _ := cp.Piece(id)
	if clonedPc.Position != to {
		t.Fatalf("clone piece.Position = %s, want %s", clonedPc.Position, to)
	}

	cp.RemovePiece(id)
	if _, ok := m.Piece(id); !ok {
		t.Fatal("removing from clone should not affect original")
	}
}
