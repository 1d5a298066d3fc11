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
	"github.com/intale/tchess/pkg/strategy"
)

// recalcStrategyPoints clears and rebuilds pc's entries in its color's
// StrategyPoints index. Grounded on the teacher's attack-table
// generation (pkg/attacks), generalised from bitboard lookup to a
// point-by-point walk since board size is not fixed at compile time.
func (b *Board) recalcStrategyPoints(pc *piece.Piece) {
	b.strategyPoints[pc.Color].RemovePiece(pc.Id)

	switch pc.Kind {
	case piece.Bishop, piece.Rook, piece.Queen:
		b.slidingStrategyPoints(pc)
	case piece.Knight:
		b.knightStrategyPoints(pc)
	case piece.Pawn:
		b.pawnStrategyPoints(pc)
	case piece.King:
		b.kingStrategyPoints(pc)
	}
}

// slidingStrategyPoints walks every attack direction of pc, emitting an
// Attack strategy point at every empty or enemy-occupied square along
// the ray (so that a later change anywhere on the ray is found through
// the affected square's own Attack(p) entry, per spec.md §4.7 step 1),
// a Defense point at the first ally encountered, and a DeadEnd where
// the ray leaves the board or, for a bishop, crosses onto a
// wrong-colored square.
//
// When the ray first hits an enemy king, pc is also given an Attack
// point on the king's square, and the ray continues exactly one more
// step past it: this is the look-through-the-king subtlety a pin graph
// cannot substitute for, since the king itself may need to flee along
// the same ray it is currently blocking.
func (b *Board) slidingStrategyPoints(pc *piece.Piece) {
	dim := b.dim()
	home := b.homeColor(pc)
	lookedThrough := false

	for _, dir := range slidingDirections(pc.Kind) {
		it := geometry.NewVectorPoints(pc.Position, dir, dim, false)
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			sq := b.Map.Square(p)
			if sq.Void || (pc.Kind == piece.Bishop && sq.Color != home) {
				b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.DeadEnd, At: p}, pc.Id)
				break
			}

			occ, has := b.Map.PieceAt(p)
			if !has {
				b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.Attack, At: p}, pc.Id)
				if lookedThrough {
					break
				}
				continue
			}

			if occ.Color == pc.Color {
				b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.Defense, At: p}, pc.Id)
				break
			}

			b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.Attack, At: p}, pc.Id)
			if occ.Kind == piece.King && !lookedThrough {
				lookedThrough = true
				continue
			}
			break
		}
		lookedThrough = false
	}
}

// knightStrategyPoints emits an Attack or Defense point for each of
// the eight jump squares that are on the board, and a DeadEnd for any
// that are not.
func (b *Board) knightStrategyPoints(pc *piece.Piece) {
	for _, dir := range geometry.JumpVectors {
		p := dir.CalcNextPoint(pc.Position)
		sq := b.Map.Square(p)
		if sq.Void {
			b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.DeadEnd, At: p}, pc.Id)
			continue
		}
		b.addAttackOrDefense(pc, p)
	}
}

// kingStrategyPoints emits an Attack or Defense point for each of the
// eight adjacent squares that are on the board, and a DeadEnd for any
// that are not. These describe what the king itself threatens or
// guards, used by the opposing king's own move legality (a king may
// never step next to the enemy king).
func (b *Board) kingStrategyPoints(pc *piece.Piece) {
	for _, dir := range geometry.SlidingVectors {
		p := dir.CalcNextPoint(pc.Position)
		sq := b.Map.Square(p)
		if sq.Void {
			b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.DeadEnd, At: p}, pc.Id)
			continue
		}
		b.addAttackOrDefense(pc, p)
	}
}

func (b *Board) addAttackOrDefense(pc *piece.Piece, p geometry.Point) {
	occ, has := b.Map.PieceAt(p)
	if !has || occ.Color != pc.Color {
		b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.Attack, At: p}, pc.Id)
		return
	}
	b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.Defense, At: p}, pc.Id)
}

// pawnStrategyPoints emits Attack/Defense points on the two diagonal
// capture squares (silently skipping one that is off the board: a
// pawn's attack reach is purely local and has no bookkeeping need for
// DeadEnd), and a Move, BlockedMove, or DeadEnd point on the single
// square directly ahead.
func (b *Board) pawnStrategyPoints(pc *piece.Piece) {
	for _, dir := range pawnDiagonals(pc.Color) {
		p := dir.CalcNextPoint(pc.Position)
		sq := b.Map.Square(p)
		if sq.Void {
			continue
		}
		b.addAttackOrDefense(pc, p)
	}

	fwd := forwardDirection(pc.Color).CalcNextPoint(pc.Position)
	sq := b.Map.Square(fwd)
	if sq.Void {
		b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.DeadEnd, At: fwd}, pc.Id)
		return
	}
	if _, has := b.Map.PieceAt(fwd); has {
		b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.BlockedMove, At: fwd}, pc.Id)
		return
	}
	b.strategyPoints[pc.Color].AddAssociation(strategy.Point{Kind: strategy.Move, At: fwd}, pc.Id)
}
