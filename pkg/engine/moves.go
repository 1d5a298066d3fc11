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
	"github.com/intale/tchess/pkg/moves"
	"github.com/intale/tchess/pkg/piece"
)

// recalcMoves clears and rebuilds pc's entries in its color's MovesMap.
// King moves are excluded here: they depend on the opposing side's
// freshly recomputed strategy points and are always recalculated in
// the fourth step of the recomputation algorithm (spec.md §4.7),
// regardless of whether the king itself was a touched piece.
func (b *Board) recalcMoves(pc *piece.Piece) {
	b.movesMap[pc.Color].RemovePiece(pc.Id)
	if pc.Kind == piece.King {
		return
	}

	var ms []moves.PieceMove
	switch pc.Kind {
	case piece.Bishop, piece.Rook, piece.Queen:
		ms = b.slidingMoves(pc)
	case piece.Knight:
		ms = b.knightMoves(pc)
	case piece.Pawn:
		ms = b.pawnMoves(pc)
	}

	for _, m := range ms {
		b.movesMap[pc.Color].Add(pc.Id, m, b.scoreMove(pc, m))
	}
}

// pinAllows reports whether a pinned piece may still move
// along dir: only the pin's own axis, in either sense, keeps the king
// shielded.
func pinAllows(pc *piece.Piece, dir geometry.Vector) bool {
	if pc.Debuffs.Pin == nil {
		return true
	}
	axis := pc.Debuffs.Pin.Direction
	return dir == axis || dir == axis.Inverse()
}

// slidingMoves walks every attack direction of pc exactly as
// slidingStrategyPoints does, but yields Point moves instead of
// strategy associations: empty squares and capturable enemies (never
// the enemy king itself, which cannot be captured) are legal
// destinations; a pin restricts the piece to its own axis.
func (b *Board) slidingMoves(pc *piece.Piece) []moves.PieceMove {
	dim := b.dim()
	home := b.homeColor(pc)
	var out []moves.PieceMove

	for _, dir := range slidingDirections(pc.Kind) {
		if !pinAllows(pc, dir) {
			continue
		}
		it := geometry.NewVectorPoints(pc.Position, dir, dim, false)
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			sq := b.Map.Square(p)
			if sq.Void || (pc.Kind == piece.Bishop && sq.Color != home) {
				break
			}
			occ, has := b.Map.PieceAt(p)
			if !has {
				out = append(out, moves.NewPoint(p))
				continue
			}
			if occ.Color != pc.Color && occ.Kind != piece.King {
				out = append(out, moves.NewPoint(p))
			}
			break
		}
	}
	return out
}

// knightMoves yields a Point move to every on-board jump square not
// occupied by an ally. A pinned knight has no legal moves: there is no
// jump that stays on the pin's axis.
func (b *Board) knightMoves(pc *piece.Piece) []moves.PieceMove {
	if pc.Debuffs.Pin != nil {
		return nil
	}
	var out []moves.PieceMove
	for _, dir := range geometry.JumpVectors {
		p := dir.CalcNextPoint(pc.Position)
		sq := b.Map.Square(p)
		if sq.Void {
			continue
		}
		occ, has := b.Map.PieceAt(p)
		if !has || (occ.Color != pc.Color && occ.Kind != piece.King) {
			out = append(out, moves.NewPoint(p))
		}
	}
	return out
}

// pawnMoves yields the forward push (and, for an unmoved pawn, the
// two-square LongMove), diagonal captures (expanded into Promote moves
// on the last rank), and an en passant capture when the EnPassant buff
// targets one of the two diagonals.
func (b *Board) pawnMoves(pc *piece.Piece) []moves.PieceMove {
	var out []moves.PieceMove
	fwdDir := forwardDirection(pc.Color)

	if pinAllows(pc, fwdDir) {
		fwd := fwdDir.CalcNextPoint(pc.Position)
		sqF := b.Map.Square(fwd)
		if !sqF.Void {
			if _, has := b.Map.PieceAt(fwd); !has {
				out = append(out, b.expandPawnDest(pc, fwd)...)
				if pc.Buffs.AdditionalPoint {
					fwd2 := fwdDir.CalcNextPoint(fwd)
					sqF2 := b.Map.Square(fwd2)
					if !sqF2.Void {
						if _, has2 := b.Map.PieceAt(fwd2); !has2 {
							out = append(out, moves.NewLongMove(fwd2))
						}
					}
				}
			}
		}
	}

	for _, dir := range pawnDiagonals(pc.Color) {
		if !pinAllows(pc, dir) {
			continue
		}
		p := dir.CalcNextPoint(pc.Position)
		sq := b.Map.Square(p)
		if sq.Void {
			continue
		}
		occ, has := b.Map.PieceAt(p)
		switch {
		case has && occ.Color != pc.Color && occ.Kind != piece.King:
			out = append(out, b.expandPawnDest(pc, p)...)
		case !has && pc.Buffs.EnPassant != nil && pc.Buffs.EnPassant.Target == p:
			out = append(out, moves.NewEnPassant(p, pc.Buffs.EnPassant.Victim))
		}
	}

	return out
}

// expandPawnDest returns a single Point move, or one Promote move per
// entry in piece.Promotions, depending on whether dest is the last
// rank for pc's color.
func (b *Board) expandPawnDest(pc *piece.Piece, dest geometry.Point) []moves.PieceMove {
	if !b.isLastRank(pc.Color, dest) {
		return []moves.PieceMove{moves.NewPoint(dest)}
	}
	out := make([]moves.PieceMove, 0, len(piece.Promotions))
	for _, k := range piece.Promotions {
		out = append(out, moves.NewPromote(moves.NewPoint(dest), k))
	}
	return out
}

// scoreMove computes a move's heat-map delta: the value of the
// destination square for the piece it becomes (itself, except for a
// Promote move) minus the value of the source square for the piece as
// it is now.
func (b *Board) scoreMove(pc *piece.Piece, m moves.PieceMove) moves.Score {
	destKind := pc.Kind
	if m.Kind == moves.Promote {
		destKind = m.PromoteKind
	}
	dest := b.config.Heat.Value(destKind, pc.Color, m.Dest)
	src := b.config.Heat.Value(pc.Kind, pc.Color, pc.Position)
	return moves.Score(dest - src)
}
