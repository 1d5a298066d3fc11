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
	"fmt"

	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/moves"
	"github.com/intale/tchess/pkg/piece"
)

// AddPiece places a new piece of the given kind and color at p and
// runs a full recomputation. It is a caller contract violation to add
// to an occupied or void square, or a second king of one color
// (panics, via boardmap.BoardMap.AddPiece).
func (b *Board) AddPiece(kind piece.Kind, color piece.Color, p geometry.Point, buffs piece.Buffs) piece.Id {
	b.resetChanges()

	id := piece.Id{Color: color, Ordinal: b.nextOrdinal(color)}
	pc := piece.New(id, kind, color, p)
	pc.Buffs = buffs
	b.Map.AddPiece(pc)

	b.emit(Change{Kind: PieceAdded, Piece: id, To: p})
	b.recompute([]affectedSquare{{Point: p, Color: color}})
	return id
}

// MovePiece applies m, which must currently be present in MovesOf(id),
// and reports whether it was applied. An unrecognised move is an
// ordinary rejection (false, no mutation), not a contract violation:
// the caller is expected to offer only moves drawn from MovesOf, but a
// stale or speculative choice is a normal occurrence, not a bug.
func (b *Board) MovePiece(id piece.Id, m moves.PieceMove) bool {
	if _, ok := b.MovesOf(id)[m]; !ok {
		return false
	}

	b.resetChanges()
	pc, _ := b.Map.Piece(id)
	mover := pc.Color

	b.clearEnPassantWindow(mover)

	// A pawn's two-square push is only available before its first move.
	if pc.Kind == piece.Pawn {
		pc.Buffs.AdditionalPoint = false
	}

	var affected []affectedSquare

	switch m.Kind {
	case moves.Point, moves.LongMove:
		affected = b.applyPointLike(pc, m)
	case moves.EnPassant:
		affected = b.applyEnPassant(pc, m)
	case moves.Castle:
		affected = b.applyCastle(pc, m)
	case moves.Promote:
		affected = b.applyPromote(pc, m)
	default:
		panic(fmt.Sprintf("engine: move_piece: unhandled move kind %s", m.Kind))
	}

	if m.Kind == moves.LongMove {
		b.grantEnPassant(mover, m.Dest)
	}

	b.turn = b.turn.Other()
	b.recompute(affected)
	return true
}

// PassTurn flips the color to move without mutating the board, for an
// embedder that needs to record a null move (e.g. setting up an
// initial position's side to move, or a variant that permits passing).
// The change log is cleared, since no Change events apply.
func (b *Board) PassTurn() {
	b.resetChanges()
	b.turn = b.turn.Other()
}

func (b *Board) applyPointLike(pc *piece.Piece, m moves.PieceMove) []affectedSquare {
	affected := b.captureAt(m.Dest, pc.Color)

	old := pc.Position
	b.Map.ChangePiecePosition(pc.Id, m.Dest)
	b.loseCastleRightsOnMove(pc)
	b.emit(Change{Kind: PositionChanged, Piece: pc.Id, From: old, To: m.Dest})

	affected = append(affected, affectedSquare{Point: old, Color: pc.Color}, affectedSquare{Point: m.Dest, Color: pc.Color})
	return affected
}

func (b *Board) applyEnPassant(pc *piece.Piece, m moves.PieceMove) []affectedSquare {
	victim, _ := b.Map.PieceAt(m.Victim)
	b.removePiece(victim)
	affected := []affectedSquare{{Point: m.Victim, Color: victim.Color}}

	old := pc.Position
	b.Map.ChangePiecePosition(pc.Id, m.Dest)
	b.emit(Change{Kind: PositionChanged, Piece: pc.Id, From: old, To: m.Dest})

	affected = append(affected, affectedSquare{Point: old, Color: pc.Color}, affectedSquare{Point: m.Dest, Color: pc.Color})
	return affected
}

func (b *Board) applyCastle(king *piece.Piece, m moves.PieceMove) []affectedSquare {
	rook, _ := b.Map.PieceAt(m.InitialRook)

	kingOld, rookOld := king.Position, rook.Position
	b.Map.RemovePiece(king.Id)
	b.Map.RemovePiece(rook.Id)
	king.Position = m.Dest
	rook.Position = m.RookDest
	b.Map.AddPiece(king)
	b.Map.AddPiece(rook)

	b.emit(Change{Kind: PositionChanged, Piece: king.Id, From: kingOld, To: m.Dest})
	b.emit(Change{Kind: PositionChanged, Piece: rook.Id, From: rookOld, To: m.RookDest})

	b.loseCastleRightsOnMove(king)
	b.loseCastleRightsOnMove(rook)

	return []affectedSquare{
		{Point: kingOld, Color: king.Color}, {Point: m.Dest, Color: king.Color},
		{Point: rookOld, Color: rook.Color}, {Point: m.RookDest, Color: rook.Color},
	}
}

func (b *Board) applyPromote(pawn *piece.Piece, m moves.PieceMove) []affectedSquare {
	affected := b.captureAt(m.Dest, pawn.Color)

	old := pawn.Position
	color := pawn.Color
	b.removePiece(pawn)
	b.emit(Change{Kind: PieceRemoved, Piece: pawn.Id, From: old})

	newID := piece.Id{Color: color, Ordinal: b.nextOrdinal(color)}
	newPc := piece.New(newID, m.PromoteKind, color, m.Dest)
	b.Map.AddPiece(newPc)
	b.emit(Change{Kind: PieceAdded, Piece: newID, To: m.Dest})

	affected = append(affected, affectedSquare{Point: old, Color: color}, affectedSquare{Point: m.Dest, Color: color})
	return affected
}

// captureAt removes whatever piece occupies p, if any, and returns the
// affected-square entry for it. p is expected to hold, at most, an
// enemy of mover (never an ally: move generation never offers such a
// destination, and never the enemy king, which cannot be captured).
func (b *Board) captureAt(p geometry.Point, mover piece.Color) []affectedSquare {
	victim, has := b.Map.PieceAt(p)
	if !has {
		return nil
	}
	color := victim.Color
	b.removePiece(victim)
	b.emit(Change{Kind: PieceRemoved, Piece: victim.Id, From: p})
	return []affectedSquare{{Point: p, Color: color}}
}

// removePiece takes a piece permanently off the board: the map entry,
// and every index that still references it by id, since the
// recomputation loops only ever revisit pieces still present on the
// board map.
func (b *Board) removePiece(pc *piece.Piece) {
	color := pc.Color
	id := pc.Id

	b.Map.RemovePiece(id)
	b.strategyPoints[color].RemovePiece(id)
	b.movesMap[color].RemovePiece(id)
	if dir, had := b.xrayPieces[color].DirectionOf(id); had {
		rec, _ := b.xrayPieces[color].Get(dir)
		b.xrayPieces[color].RemovePiece(id)
		clearPinOf(b, color.Other(), rec.Pinned)
	}
	delete(b.pawnsWithEnPassant[color], id)
}

// loseCastleRightsOnMove clears the Castle buff from a king or rook
// that has just moved under its own power (not via ChangePiecePosition
// inside applyCastle's rook leg, which calls this directly too), and
// emits CastleRightLost if the buff was actually present.
func (b *Board) loseCastleRightsOnMove(pc *piece.Piece) {
	if !pc.Buffs.Castle {
		return
	}
	pc.Buffs.Castle = false
	b.emit(Change{Kind: CastleRightLost, Piece: pc.Id})
}

// clearEnPassantWindow drops the EnPassant buff from every pawn of
// color that is still carrying one from the immediately preceding
// opportunity: the window lasts exactly one reply.
func (b *Board) clearEnPassantWindow(color piece.Color) {
	for id := range b.pawnsWithEnPassant[color] {
		if pc, ok := b.Map.Piece(id); ok {
			pc.Buffs.EnPassant = nil
			b.emit(Change{Kind: EnPassantLost, Piece: id})
		}
		delete(b.pawnsWithEnPassant[color], id)
	}
}

// grantEnPassant gives the EnPassant buff to every enemy pawn standing
// immediately beside dest, the square a LongMove by mover just landed
// on, targeting the square the mover passed through.
func (b *Board) grantEnPassant(mover piece.Color, dest geometry.Point) {
	enemy := mover.Other()
	target := forwardDirection(enemy).CalcNextPoint(dest)

	for _, dx := range [2]int{-1, 1} {
		p := dest.Add(dx, 0)
		occ, has := b.Map.PieceAt(p)
		if !has || occ.Color != enemy || occ.Kind != piece.Pawn {
			continue
		}
		occ.Buffs.EnPassant = &piece.EnPassantBuff{Target: target, Victim: dest}
		b.pawnsWithEnPassant[enemy][occ.Id] = struct{}{}
		b.emit(Change{Kind: EnPassantGained, Piece: occ.Id})
	}
}
