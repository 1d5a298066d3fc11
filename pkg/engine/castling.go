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

// kingMoves returns every Point move to a safe, reachable adjacent
// square, plus, while not in check, any legal castling moves. Grounded
// on the teacher's castling-rights/rook-file bookkeeping
// (pkg/board/move/castling/rooks.go), generalised to Chess960-style
// configurable king/rook target files via BoardConfig.Kingside and
// BoardConfig.Queenside.
func (b *Board) kingMoves(king *piece.Piece, c piece.Color) []moves.PieceMove {
	enemy := c.Other()
	var out []moves.PieceMove

	for _, dir := range geometry.SlidingVectors {
		p := dir.CalcNextPoint(king.Position)
		sq := b.Map.Square(p)
		if sq.Void {
			continue
		}
		occ, has := b.Map.PieceAt(p)
		if !has {
			if !b.strategyPoints[enemy].IsUnderAttack(p) {
				out = append(out, moves.NewPoint(p))
			}
			continue
		}
		if occ.Color != c && !b.strategyPoints[enemy].IsUnderDefense(p) {
			out = append(out, moves.NewPoint(p))
		}
	}

	if king.Buffs.Castle && !king.Debuffs.Check {
		out = append(out, b.castlingMoves(king, c)...)
	}

	return out
}

// castlingMoves evaluates the kingside and queenside castling targets
// configured for c and returns a Castle move for each that is
// currently legal.
func (b *Board) castlingMoves(king *piece.Piece, c piece.Color) []moves.PieceMove {
	var out []moves.PieceMove
	rank := king.Position.Y

	targets := []CastleTarget{}
	if t, ok := b.config.Kingside[c]; ok {
		targets = append(targets, t)
	}
	if t, ok := b.config.Queenside[c]; ok {
		targets = append(targets, t)
	}

	for _, t := range targets {
		kingDest := geometry.Point{X: t.KingFile, Y: rank}
		rookDest := geometry.Point{X: t.RookFile, Y: rank}

		if kingDest == king.Position {
			continue
		}
		dir, ok := geometry.CalcDirection(king.Position, kingDest)
		if !ok {
			continue
		}

		rook, ok := b.findCastleCandidateRook(king, dir)
		if !ok {
			continue
		}

		if !b.castlePathClear(king.Position, kingDest, dir, &rook.Id, true, c) {
			continue
		}

		var rookOK bool
		if rook.Position == rookDest {
			rookOK = true
		} else if rdir, ok := geometry.CalcDirection(rook.Position, rookDest); ok {
			rookOK = b.castlePathClear(rook.Position, rookDest, rdir, &king.Id, false, c)
		}
		if !rookOK {
			continue
		}

		out = append(out, moves.NewCastle(kingDest, rookDest, king.Position, rook.Position))
	}

	return out
}

// findCastleCandidateRook walks from king along dir and returns the
// first occupied square's piece if it is an ally, unpinned rook still
// carrying the Castle buff. Any other occupant found first rules out
// castling in that direction.
func (b *Board) findCastleCandidateRook(king *piece.Piece, dir geometry.Vector) (*piece.Piece, bool) {
	it := geometry.NewVectorPoints(king.Position, dir, b.dim(), false)
	for {
		p, ok := it.Next()
		if !ok {
			return nil, false
		}
		occ, has := b.Map.PieceAt(p)
		if !has {
			continue
		}
		if occ.Color == king.Color && occ.Kind == piece.Rook && occ.Buffs.Castle && occ.Debuffs.Pin == nil {
			return occ, true
		}
		return nil, false
	}
}

// castlePathClear walks from, exclusive, to to, inclusive, along dir
// and reports whether every square is playable, optionally unattacked
// by the opposing color, and either empty or occupied by the one
// permitted occupant (the castling partner).
func (b *Board) castlePathClear(from, to geometry.Point, dir geometry.Vector, permitted *piece.Id, requireSafe bool, mover piece.Color) bool {
	if from == to {
		return true
	}
	p := from
	for p != to {
		p = dir.CalcNextPoint(p)
		sq := b.Map.Square(p)
		if sq.Void {
			return false
		}
		if requireSafe && b.strategyPoints[mover.Other()].IsUnderAttack(p) {
			return false
		}
		if occ, has := b.Map.PieceAt(p); has {
			if permitted == nil || occ.Id != *permitted {
				return false
			}
		}
	}
	return true
}
