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

// Package boardmap implements the point-addressed board representation:
// a mapping from points to squares, a bidirectional point/piece index,
// the per-color active-piece set, and the per-color king handle. It is
// the map-based analogue of the teacher's fixed mailbox.Board, sized to
// an arbitrary geometry.Dimension instead of 8x8.
package boardmap

import (
	"fmt"

	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

// SquareColor is the static color of a playable square, used to decide
// whether a bishop may cross onto it.
type SquareColor int

const (
	Light SquareColor = iota
	Dark
)

// Square is a single board square: either Void (outside the playing
// surface) or Playable, in which case it carries its static color and,
// optionally, the Id of the piece occupying it.
type Square struct {
	Void     bool
	Color    SquareColor
	Occupant *piece.Id
}

// Occupied reports whether a playable square currently holds a piece.
func (s Square) Occupied() bool {
	return s.Occupant != nil
}

// BoardMap maps points to squares and maintains the bidirectional
// point/piece association along with per-color active-piece indices
// and king handles. It guarantees invariants I1 (every in-dimension
// point maps to exactly one square) and I2 (a piece's position equals
// the square whose occupant is that piece).
type BoardMap struct {
	dim     geometry.Dimension
	squares map[geometry.Point]*Square
	pieces  map[piece.Id]*piece.Piece
	active  map[piece.Color]map[piece.Id]struct{}
	kings   map[piece.Color]piece.Id
}

// New creates an empty BoardMap over the given dimension. No squares
// are defined until AddSquare is called for each point; querying an
// undefined point reports it as void.
func New(dim geometry.Dimension) *BoardMap {
	return &BoardMap{
		dim:     dim,
		squares: make(map[geometry.Point]*Square),
		pieces:  make(map[piece.Id]*piece.Piece),
		active: map[piece.Color]map[piece.Id]struct{}{
			piece.White: make(map[piece.Id]struct{}),
			piece.Black: make(map[piece.Id]struct{}),
		},
		kings: make(map[piece.Color]piece.Id),
	}
}

// Dimension returns the board's geometry.
func (m *BoardMap) Dimension() geometry.Dimension {
	return m.dim
}

// AddSquare defines the square at p. It is a caller contract violation
// to add a square outside the board's dimension.
func (m *BoardMap) AddSquare(p geometry.Point, sq Square) {
	if !m.dim.Contains(p) {
		panic(fmt.Sprintf("boardmap: add_square: %s is outside dimension", p))
	}
	sq.Occupant = nil
	m.squares[p] = &sq
}

// Square returns the square at p. Points with no defined square, and
// points outside the dimension, both report Void.
func (m *BoardMap) Square(p geometry.Point) Square {
	if sq, ok := m.squares[p]; ok {
		cp := *sq
		return cp
	}
	return Square{Void: true}
}

// AddPiece places pc at its Position. It is a caller contract violation
// to add a piece to an occupied or void square, or to add a second king
// of the same color.
func (m *BoardMap) AddPiece(pc *piece.Piece) {
	sq, ok := m.squares[pc.Position]
	if !ok || sq.Void {
		panic(fmt.Sprintf("boardmap: add_piece: %s is not a playable square", pc.Position))
	}
	if sq.Occupied() {
		panic(fmt.Sprintf("boardmap: add_piece: %s is already occupied", pc.Position))
	}

	if pc.Kind == piece.King {
		if _, exists := m.kings[pc.Color]; exists {
			panic(fmt.Sprintf("boardmap: add_piece: %s already has a king", pc.Color))
		}
		m.kings[pc.Color] = pc.Id
	}

	id := pc.Id
	sq.Occupant = &id
	m.pieces[pc.Id] = pc
	m.active[pc.Color][pc.Id] = struct{}{}
}

// RemovePiece removes the piece with the given id from the board and
// returns the point it occupied. It is a caller contract violation to
// remove an unknown id.
func (m *BoardMap) RemovePiece(id piece.Id) geometry.Point {
	pc, ok := m.pieces[id]
	if !ok {
		panic(fmt.Sprintf("boardmap: remove_piece: unknown id %s", id))
	}

	sq := m.squares[pc.Position]
	sq.Occupant = nil

	delete(m.pieces, id)
	delete(m.active[id.Color], id)
	if king, isKing := m.kings[id.Color]; isKing && king == id {
		delete(m.kings, id.Color)
	}

	return pc.Position
}

// ChangePiecePosition moves the piece with the given id to newP and
// returns its previous position. newP must be playable and unoccupied.
func (m *BoardMap) ChangePiecePosition(id piece.Id, newP geometry.Point) geometry.Point {
	pc, ok := m.pieces[id]
	if !ok {
		panic(fmt.Sprintf("boardmap: change_piece_position: unknown id %s", id))
	}

	newSq, ok := m.squares[newP]
	if !ok || newSq.Void {
		panic(fmt.Sprintf("boardmap: change_piece_position: %s is not a playable square", newP))
	}
	if newSq.Occupied() {
		panic(fmt.Sprintf("boardmap: change_piece_position: %s is already occupied", newP))
	}

	oldP := pc.Position
	oldSq := m.squares[oldP]
	oldSq.Occupant = nil

	idCopy := id
	newSq.Occupant = &idCopy
	pc.Position = newP

	return oldP
}

// PieceAt returns the piece occupying p, if any.
func (m *BoardMap) PieceAt(p geometry.Point) (*piece.Piece, bool) {
	sq, ok := m.squares[p]
	if !ok || sq.Void || sq.Occupant == nil {
		return nil, false
	}
	return m.pieces[*sq.Occupant], true
}

// Piece resolves an id to its current piece. This is the sole way
// other components dereference a PieceId; pieces never hold direct
// references to one another.
func (m *BoardMap) Piece(id piece.Id) (*piece.Piece, bool) {
	pc, ok := m.pieces[id]
	return pc, ok
}

// King returns the id of the king of the given color, if it has been
// placed on the board.
func (m *BoardMap) King(c piece.Color) (piece.Id, bool) {
	id, ok := m.kings[c]
	return id, ok
}

// ActivePieces returns the ids of every piece of the given color
// currently on the board. The returned slice is a fresh copy.
func (m *BoardMap) ActivePieces(c piece.Color) []piece.Id {
	ids := make([]piece.Id, 0, len(m.active[c]))
	for id := range m.active[c] {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns a deep copy of the board map: every square and piece is
// freshly allocated, so mutating the clone never affects the original
// (spec.md §8's "cloning must be cheap" requirement for branch
// exploration).
func (m *BoardMap) Clone() *BoardMap {
	cp := &BoardMap{
		dim:     m.dim,
		squares: make(map[geometry.Point]*Square, len(m.squares)),
		pieces:  make(map[piece.Id]*piece.Piece, len(m.pieces)),
		active: map[piece.Color]map[piece.Id]struct{}{
			piece.White: make(map[piece.Id]struct{}, len(m.active[piece.White])),
			piece.Black: make(map[piece.Id]struct{}, len(m.active[piece.Black])),
		},
		kings: make(map[piece.Color]piece.Id, len(m.kings)),
	}

	for p, sq := range m.squares {
		sqCopy := *sq
		if sq.Occupant != nil {
			id := *sq.Occupant
			sqCopy.Occupant = &id
		}
		cp.squares[p] = &sqCopy
	}
	for id, pc := range m.pieces {
		pcCopy := *pc
		if pc.Debuffs.Pin != nil {
			pin := *pc.Debuffs.Pin
			pcCopy.Debuffs.Pin = &pin
		}
		if pc.Buffs.EnPassant != nil {
			ep := *pc.Buffs.EnPassant
			pcCopy.Buffs.EnPassant = &ep
		}
		cp.pieces[id] = &pcCopy
	}
	for c, ids := range m.active {
		for id := range ids {
			cp.active[c][id] = struct{}{}
		}
	}
	for c, id := range m.kings {
		cp.kings[c] = id
	}

	return cp
}
