// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package piece implements the tagged chess-piece variant, its stable
// identifier, and the buffs/debuffs a piece can carry. Pieces never hold
// references to other pieces; every relation elsewhere in the engine is
// keyed by Id and resolved back through the board map.
package piece

import (
	"fmt"

	"github.com/intale/tchess/pkg/geometry"
)

// Color is the side a piece belongs to.
type Color int

const (
	White Color = iota
	Black

	NColor = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return 1 - c
}

// String converts a Color to its single-letter representation.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic("piece: invalid color")
	}
}

// Kind is the closed set of chess piece kinds.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	NKind = 7
)

// String converts a Kind to its upper-case algebraic letter.
func (k Kind) String() string {
	letters := [...]string{
		NoKind: "-",
		Pawn:   "P",
		Knight: "N",
		Bishop: "B",
		Rook:   "R",
		Queen:  "Q",
		King:   "K",
	}
	return letters[k]
}

// KindFromString parses a single upper-case algebraic letter into a
// Kind, mirroring the notation used for promotion payloads.
func KindFromString(s string) Kind {
	switch s {
	case "P":
		return Pawn
	case "N":
		return Knight
	case "B":
		return Bishop
	case "R":
		return Rook
	case "Q":
		return Queen
	case "K":
		return King
	default:
		panic("piece: invalid kind id " + s)
	}
}

// Promotions lists the kinds a pawn may promote to, in the order the
// engine tries them when expanding a promotion move (spec.md §4.4).
var Promotions = []Kind{Queen, Rook, Bishop, Knight}

// Id is a piece's stable identifier: its color and a per-color ordinal
// assigned in add order. Promotions allocate a fresh Id; ids are never
// reused for the lifetime of a Board.
type Id struct {
	Color   Color
	Ordinal int
}

// String renders an Id as "w3"/"b12"-style debug text.
func (id Id) String() string {
	return fmt.Sprintf("%s%d", id.Color, id.Ordinal)
}

// EnPassantBuff records the target square a pawn may move to in order
// to capture en passant, and the square of the victim pawn.
type EnPassantBuff struct {
	Target, Victim geometry.Point
}

// Buffs are the positive status tags a piece may carry.
type Buffs struct {
	// Castle marks a king or rook that has not yet moved and may
	// still participate in castling.
	Castle bool
	// AdditionalPoint marks a pawn that has not yet moved and may
	// therefore push two squares.
	AdditionalPoint bool
	// EnPassant is non-nil for exactly one half-move on a pawn that
	// may capture en passant this turn.
	EnPassant *EnPassantBuff
}

// Pin records the direction (towards the piece's own king) in which a
// pinned piece's moves are restricted.
type Pin struct {
	Direction geometry.Vector
}

// Debuffs are the negative status tags a piece may carry.
type Debuffs struct {
	// Check marks a king currently under attack.
	Check bool
	// Pin is non-nil for a piece pinned against its king.
	Pin *Pin
}

// Piece is a single chess piece: its kind, its stable Id, its current
// position, and its buffs/debuffs. A Piece never references another
// Piece directly; all cross-piece relations go through Id and are
// resolved via the board map.
type Piece struct {
	Id       Id
	Kind     Kind
	Color    Color
	Position geometry.Point

	Buffs   Buffs
	Debuffs Debuffs
}

// New creates a piece with no buffs or debuffs set.
func New(id Id, kind Kind, color Color, at geometry.Point) *Piece {
	return &Piece{Id: id, Kind: kind, Color: color, Position: at}
}

// String renders a piece as "wK"-style debug text.
func (p *Piece) String() string {
	return fmt.Sprintf("%s%s", p.Color, p.Kind)
}
