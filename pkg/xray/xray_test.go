package xray_test

import (
	"testing"

	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
	"github.com/intale/tchess/pkg/xray"
)

func TestSetAndGet(t *testing.T) {
	x := xray.New()
	q := piece.Id{Color: piece.White, Ordinal: 0}
	pinned := piece.Id{Color: piece.Black, Ordinal: 1}

	x.Set(geometry.LineTop, q, &pinned)

	rec, ok := x.Get(geometry.LineTop)
	if !ok {
		t.Fatal("Get should find the record just set")
	}
	if rec.Piece != q || rec.Pinned == nil || *rec.Pinned != pinned {
		t.Fatalf("Get(LineTop) = %+v, want Piece=%v Pinned=%v", rec, q, pinned)
	}
	if dir, ok := x.DirectionOf(q); !ok || dir != geometry.LineTop {
		t.Fatalf("DirectionOf(%v) = %v, %v; want LineTop, true", q, dir, ok)
	}
}

func TestClearRemovesBothIndices(t *testing.T) {
	x := xray.New()
	q := piece.Id{Color: piece.White, Ordinal: 0}
	x.Set(geometry.LineTop, q, nil)

	x.Clear(geometry.LineTop)

	if _, ok := x.Get(geometry.LineTop); ok {
		t.Fatal("Get should report nothing after Clear")
	}
	if _, ok := x.DirectionOf(q); ok {
		t.Fatal("DirectionOf should report nothing after Clear")
	}
}

func TestRemovePieceReportsVacatedDirection(t *testing.T) {
	x := xray.New()
	q := piece.Id{Color: piece.White, Ordinal: 0}
	x.Set(geometry.DiagonalTopRight, q, nil)

	dir, ok := x.RemovePiece(q)
	if !ok || dir != geometry.DiagonalTopRight {
		t.Fatalf("RemovePiece(%v) = %v, %v; want DiagonalTopRight, true", q, dir, ok)
	}
	if _, ok := x.RemovePiece(q); ok {
		t.Fatal("RemovePiece on an already-removed piece should report false")
	}
}

func TestDirectionsListsAllOccupied(t *testing.T) {
	x := xray.New()
	x.Set(geometry.LineTop, piece.Id{Color: piece.White, Ordinal: 0}, nil)
	x.Set(geometry.LineRight, piece.Id{Color: piece.White, Ordinal: 1}, nil)

	dirs := x.Directions()
	if len(dirs) != 2 {
		t.Fatalf("Directions() = %v, want 2 entries", dirs)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	x := xray.New()
	q := piece.Id{Color: piece.White, Ordinal: 0}
	pinned := piece.Id{Color: piece.Black, Ordinal: 1}
	x.Set(geometry.LineTop, q, &pinned)

	cp := x.Clone()

	cloneRec, ok := cp.Get(geometry.LineTop)
	if !ok {
		t.Fatal("clone should carry over the original's record")
	}
	if cloneRec.Pinned == &pinned {
		t.Fatal("Clone should allocate a fresh Pinned pointer, not alias the source's")
	}
	if *cloneRec.Pinned != pinned {
		t.Fatalf("cloned Pinned value = %v, want %v", *cloneRec.Pinned, pinned)
	}

	cp.Clear(geometry.LineTop)
	if _, ok := x.Get(geometry.LineTop); !ok {
		t.Fatal("mutating the clone should not affect the original")
	}
	if _, ok := cp.Get(geometry.LineTop); ok {
		t.Fatal("clone should reflect its own mutation")
	}
}
