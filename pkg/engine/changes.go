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

package engine

import (
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

// ChangeKind tags what happened to produce a Change event. This is a
// feature original_source/ carries (a game-loop change log used to
// drive undo/redraw) that spec.md's distillation otherwise omits; it
// is supplemented here in the teacher's tagged-enum style since
// embedders (a terminal renderer, a network relay) need to know what
// to redraw or replicate without diffing two board snapshots.
type ChangeKind int

const (
	PieceAdded ChangeKind = iota
	PieceRemoved
	PositionChanged
	EnPassantGained
	EnPassantLost
	CastleRightLost
)

func (k ChangeKind) String() string {
	switch k {
	case PieceAdded:
		return "PieceAdded"
	case PieceRemoved:
		return "PieceRemoved"
	case PositionChanged:
		return "PositionChanged"
	case EnPassantGained:
		return "EnPassantGained"
	case EnPassantLost:
		return "EnPassantLost"
	case CastleRightLost:
		return "CastleRightLost"
	default:
		return "Invalid"
	}
}

// Change is one entry in the board's change log, emitted by AddPiece
// and MovePiece and retrievable afterwards via LastChanges. PassTurn
// emits none; it only clears the log.
type Change struct {
	Kind ChangeKind
	// Piece is the id the change concerns, set for every kind.
	Piece piece.Id
	// From and To describe a position change; To is also set for
	// PieceAdded, From for PieceRemoved.
	From, To geometry.Point
}

func (b *Board) emit(c Change) {
	b.changes = append(b.changes, c)
}

func (b *Board) resetChanges() {
	b.changes = b.changes[:0]
}
