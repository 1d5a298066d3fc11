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

// Snapshot is a flat, immutable copy of a Board's piece placement, side
// to move, per-color check state, and per-color legal move count,
// detached from the engine's internal indices. It is supplemented from
// original_source/'s board_summary.rs, which bundles exactly this kind
// of derived, queryable state (checks, move counts) apart from the
// mutable board, to feed a renderer and a network relay without
// exposing internal state; nothing in spec.md's distilled scope
// otherwise gives an embedder a way to read the whole position at once
// without walking every point of the Dimension by hand and separately
// calling IsInCheck/MoveScores per color.
type Snapshot struct {
	Turn      piece.Color
	Pieces    []piece.Piece
	Check     map[piece.Color]bool
	MoveCount map[piece.Color]int
}

// Snapshot copies out every active piece's current value, the side to
// move, each color's check state, and each color's total legal move
// count. The returned value is independent; mutating it has no effect
// on the Board.
func (b *Board) Snapshot() Snapshot {
	var pieces []piece.Piece
	check := make(map[piece.Color]bool, piece.NColor)
	moveCount := make(map[piece.Color]int, piece.NColor)

	for _, c := range [2]piece.Color{piece.White, piece.Black} {
		for _, id := range b.Map.ActivePieces(c) {
			pc, _ := b.Map.Piece(id)
			pieces = append(pieces, *pc)
		}
		check[c] = b.IsInCheck(c)
		for _, id := range b.Map.ActivePieces(c) {
			moveCount[c] += len(b.MovesOf(id))
		}
	}

	return Snapshot{Turn: b.turn, Pieces: pieces, Check: check, MoveCount: moveCount}
}

// At returns the piece occupying p in the snapshot, if any.
func (s Snapshot) At(p geometry.Point) (piece.Piece, bool) {
	for _, pc := range s.Pieces {
		if pc.Position == p {
			return pc, true
		}
	}
	return piece.Piece{}, false
}
