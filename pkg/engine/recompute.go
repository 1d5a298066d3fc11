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
	"github.com/intale/tchess/pkg/strategy"
)

// affectedSquare is one point whose occupancy changed during a board
// mutation, tagged with the color whose relationship to that square
// changed: the color of the piece that left it, arrived at it, or (for
// a position change) both.
type affectedSquare struct {
	Point geometry.Point
	Color piece.Color
}

// recompute runs the five-step incremental recomputation algorithm of
// spec.md §4.7 over the given set of affected squares. It is the sole
// path by which strategy points, x-ray pins, moves, and check
// constraints are brought up to date after AddPiece, RemovePiece, or
// ChangePiecePosition are applied to the board map.
func (b *Board) recompute(affected []affectedSquare) {
	touched := map[piece.Id]struct{}{}

	for _, a := range affected {
		inv := a.Color.Other()

		for _, id := range b.strategyPoints[inv].Attackers(a.Point) {
			touched[id] = struct{}{}
		}
		for _, id := range b.strategyPoints[inv].GetPieces(strategy.Point{Kind: strategy.Move, At: a.Point}) {
			touched[id] = struct{}{}
		}
		for _, id := range b.strategyPoints[a.Color].Defenders(a.Point) {
			touched[id] = struct{}{}
		}
		for _, c := range [2]piece.Color{piece.White, piece.Black} {
			for _, id := range b.strategyPoints[c].GetPieces(strategy.Point{Kind: strategy.BlockedMove, At: a.Point}) {
				touched[id] = struct{}{}
			}
		}
		for id := range b.pawnsWithEnPassant[inv] {
			touched[id] = struct{}{}
		}
		if occ, has := b.Map.PieceAt(a.Point); has {
			touched[occ.Id] = struct{}{}
		}
	}

	// Step 1: recompute strategy points for every touched piece, then
	// moves for every touched non-king piece (king moves wait for
	// step 4, once the opposing side's points are current).
	var slidersTouched []piece.Id
	for id := range touched {
		pc, ok := b.Map.Piece(id)
		if !ok {
			continue
		}
		b.recalcStrategyPoints(pc)
		if pc.Kind == piece.Bishop || pc.Kind == piece.Rook || pc.Kind == piece.Queen {
			slidersTouched = append(slidersTouched, id)
		}
	}
	for id := range touched {
		pc, ok := b.Map.Piece(id)
		if !ok || pc.Kind == piece.King {
			continue
		}
		b.recalcMoves(pc)
	}

	// Step 2: any existing x-ray relationship whose ray runs through
	// an affected square must be re-derived, since a piece may have
	// vacated or landed on the ray between the slider and the king.
	for _, a := range affected {
		for _, c := range [2]piece.Color{piece.White, piece.Black} {
			b.recomputeXRayThroughPoint(c, a.Point)
		}
	}

	// Step 3: every sliding piece that was itself recalculated in step
	// 1 gets a fresh x-ray entry, since its own line of sight changed.
	for _, id := range slidersTouched {
		if pc, ok := b.Map.Piece(id); ok {
			b.recalcXRay(pc)
		}
	}

	// Step 4: unconditionally, for each color, recompute the king's
	// check status, its own moves, and the check-constraints overlay.
	for _, c := range [2]piece.Color{piece.White, piece.Black} {
		b.recomputeKingAndConstraints(c)
	}
}

// recomputeKingAndConstraints implements step 4 for a single color:
// it determines whether c's king is attacked, builds the allowed-
// destination set for a single checker (or the empty set for double
// check), recomputes the king's own moves (castling only while not in
// check), and repopulates the check-constraints overlay.
func (b *Board) recomputeKingAndConstraints(c piece.Color) {
	kingID, ok := b.Map.King(c)
	if !ok {
		b.constraints[c].Reset()
		return
	}
	king, _ := b.Map.Piece(kingID)
	enemy := c.Other()

	attackers := b.strategyPoints[enemy].Attackers(king.Position)
	king.Debuffs.Check = len(attackers) > 0

	b.constraints[c].Reset()

	var checkerSquare geometry.Point
	var singleChecker bool
	if len(attackers) == 1 {
		checker, _ := b.Map.Piece(attackers[0])
		checkerSquare = checker.Position
		singleChecker = true
	}

	if len(attackers) > 0 {
		allowed := map[geometry.Point]struct{}{}
		if len(attackers) >= 2 {
			b.constraints[c].Enable(allowed) // double check: no ally block/capture helps
		} else {
			allowed[checkerSquare] = struct{}{}
			checker, _ := b.Map.Piece(attackers[0])
			if checker.Kind != piece.Knight && checker.Kind != piece.Pawn {
				if dir, ok := geometry.CalcDirection(checker.Position, king.Position); ok {
					it := geometry.NewVectorPoints(checker.Position, dir, b.dim(), false)
					for {
						p, ok := it.Next()
						if !ok || p == king.Position {
							break
						}
						allowed[p] = struct{}{}
					}
				}
			}
			b.constraints[c].Enable(allowed)
		}

		for _, id := range b.Map.ActivePieces(c) {
			if id == kingID {
				continue
			}
			for m, score := range b.movesMap[c].MovesOf(id) {
				if b.constraints[c].Allowed(m.Dest) {
					b.constraints[c].CopyIn(id, m, score)
					continue
				}
				if singleChecker && m.Kind == moves.EnPassant && m.Victim == checkerSquare {
					b.constraints[c].CopyIn(id, m, score)
				}
			}
		}
	}

	kingMoves := b.kingMoves(king, c)
	b.movesMap[c].RemovePiece(kingID)
	for _, m := range kingMoves {
		b.movesMap[c].Add(kingID, m, b.scoreMove(king, m))
	}
	if b.constraints[c].Enabled() {
		for m, score := range b.movesMap[c].MovesOf(kingID) {
			b.constraints[c].CopyIn(kingID, m, score)
		}
	}
}

