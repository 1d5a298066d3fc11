// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package moves declares the PieceMove tagged variant and the MovesMap
// index that stores, per piece, per destination, and per positional
// score, the set of currently legal moves. Unlike the teacher's packed
// uint32 board/move.Move (built for a fixed 8x8 board and bitboard
// serialization), PieceMove is a plain struct: board size here is not
// known at compile time, so there is no fixed bit-width to pack into.
package moves

import (
	"fmt"

	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

// Kind tags the shape of a PieceMove.
type Kind int

const (
	// Point is a simple move (with or without capture) to Dest.
	Point Kind = iota
	// LongMove is a pawn's two-square opening push to Dest.
	LongMove
	// EnPassant is a pawn capturing the victim at Victim by moving to Dest.
	EnPassant
	// Castle swaps the king and rook identified by InitialKing/InitialRook
	// to Dest/RookDest in a single step.
	Castle
	// Promote replaces the moving pawn with a new piece of PromoteKind
	// after arriving at Dest.
	Promote
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "Point"
	case LongMove:
		return "LongMove"
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	case Promote:
		return "Promote"
	default:
		return "Invalid"
	}
}

// PieceMove is the tagged variant of everything a piece can do on a
// turn. Equality between two PieceMove values (==) compares by tag and
// payload, as required by spec.md §6, since the type contains no
// pointers or slices.
type PieceMove struct {
	Kind Kind

	// Dest is the destination square for Point, LongMove, EnPassant
	// and Promote, and the king's destination for Castle.
	Dest geometry.Point

	// Victim is the captured pawn's square, set only for EnPassant.
	Victim geometry.Point

	// RookDest, InitialKing and InitialRook are set only for Castle.
	RookDest    geometry.Point
	InitialKing geometry.Point
	InitialRook geometry.Point

	// PromoteKind is set only for Promote.
	PromoteKind piece.Kind
}

// NewPoint creates a simple Point move.
func NewPoint(dest geometry.Point) PieceMove {
	return PieceMove{Kind: Point, Dest: dest}
}

// NewLongMove creates a pawn two-square push move.
func NewLongMove(dest geometry.Point) PieceMove {
	return PieceMove{Kind: LongMove, Dest: dest}
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(dest, victim geometry.Point) PieceMove {
	return PieceMove{Kind: EnPassant, Dest: dest, Victim: victim}
}

// NewCastle creates a castling move.
func NewCastle(kingDest, rookDest, initialKing, initialRook geometry.Point) PieceMove {
	return PieceMove{
		Kind:        Castle,
		Dest:        kingDest,
		RookDest:    rookDest,
		InitialKing: initialKing,
		InitialRook: initialRook,
	}
}

// NewPromote creates a promotion move, wrapping the underlying move
// (Point or EnPassant) that delivers the pawn to the last rank.
func NewPromote(underlying PieceMove, to piece.Kind) PieceMove {
	underlying.Kind = Promote
	underlying.PromoteKind = to
	return underlying
}

// String renders a PieceMove for debugging.
func (m PieceMove) String() string {
	switch m.Kind {
	case Castle:
		return fmt.Sprintf("Castle(king %s->%s, rook %s->%s)", m.InitialKing, m.Dest, m.InitialRook, m.RookDest)
	case Promote:
		return fmt.Sprintf("Promote(->%s =%s)", m.Dest, m.PromoteKind)
	case EnPassant:
		return fmt.Sprintf("EnPassant(->%s, x%s)", m.Dest, m.Victim)
	case LongMove:
		return fmt.Sprintf("LongMove(->%s)", m.Dest)
	default:
		return fmt.Sprintf("Point(->%s)", m.Dest)
	}
}
