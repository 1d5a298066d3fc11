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

// Package regression builds a standard orthodox board on top of
// pkg/engine and checks it against external references: notnil/chess
// as a differential oracle, and real PGN games replayed move by move.
// Nothing here is exercised by pkg/engine itself; it exists purely to
// give this student implementation the same kind of confidence check
// the teacher gets from its own perft/search correctness suite
// (pkg/board/perft.go, testing/testing.go), just aimed at an external
// engine instead of a move counter.
package regression

import (
	"github.com/intale/tchess/pkg/boardmap"
	"github.com/intale/tchess/pkg/engine"
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/heatmap"
	"github.com/intale/tchess/pkg/piece"
)

// orthodoxSquares colors an 8x8 board in the standard checkerboard
// pattern, with a1 (0,0) dark.
type orthodoxSquares struct{ dim geometry.Dimension }

func (s orthodoxSquares) SquareAt(p geometry.Point) (engine.SquareInfo, bool) {
	if !s.dim.Contains(p) {
		return engine.SquareInfo{}, false
	}
	color := boardmap.Dark
	if (p.X+p.Y)%2 == 1 {
		color = boardmap.Light
	}
	return engine.SquareInfo{Color: color}, true
}

// StandardBoard builds an empty orthodox 8x8 Board, configured for
// classic (non-Chess960) castling on both sides.
func StandardBoard() *engine.Board {
	dim := geometry.Dimension{Min: geometry.Point{X: 0, Y: 0}, Max: geometry.Point{X: 7, Y: 7}}
	return engine.Empty(engine.BoardConfig{
		Dimension: dim,
		Squares:   orthodoxSquares{dim: dim},
		Heat:      heatmap.PeSTO{},
		Kingside: map[piece.Color]engine.CastleTarget{
			piece.White: {KingFile: 6, RookFile: 5},
			piece.Black: {KingFile: 6, RookFile: 5},
		},
		Queenside: map[piece.Color]engine.CastleTarget{
			piece.White: {KingFile: 2, RookFile: 3},
			piece.Black: {KingFile: 2, RookFile: 3},
		},
		Players: map[piece.Color]engine.Player{
			piece.White: engine.Human,
			piece.Black: engine.Human,
		},
	})
}

// backRank is the standard piece order, a-file to h-file.
var backRank = [8]piece.Kind{
	piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
	piece.King, piece.Bishop, piece.Knight, piece.Rook,
}

// StandardPosition places every piece of a standard game start on b,
// which must have come fresh from StandardBoard.
func StandardPosition(b *engine.Board) {
	for file, kind := range backRank {
		buffs := piece.Buffs{}
		if kind == piece.King || kind == piece.Rook {
			buffs.Castle = true
		}
		b.AddPiece(kind, piece.White, geometry.Point{X: file, Y: 0}, buffs)
		b.AddPiece(kind, piece.Black, geometry.Point{X: file, Y: 7}, buffs)
	}
	for file := 0; file < 8; file++ {
		b.AddPiece(piece.Pawn, piece.White, geometry.Point{X: file, Y: 1}, piece.Buffs{AdditionalPoint: true})
		b.AddPiece(piece.Pawn, piece.Black, geometry.Point{X: file, Y: 6}, piece.Buffs{AdditionalPoint: true})
	}
}

// LegalMoveCount totals the legal moves available to every piece of
// color c, mirroring what an external engine reports as "valid moves
// for the side to move".
func LegalMoveCount(b *engine.Board, c piece.Color) int {
	total := 0
	for _, id := range b.ActivePieces(c) {
		total += len(b.MovesOf(id))
	}
	return total
}
