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

	"github.com/intale/tchess/pkg/boardmap"
	"github.com/intale/tchess/pkg/constraints"
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/moves"
	"github.com/intale/tchess/pkg/piece"
	"github.com/intale/tchess/pkg/strategy"
	"github.com/intale/tchess/pkg/xray"
)

// Board is the complete engine state for one game in progress: the
// point-addressed board map, the per-color strategy-point index,
// x-ray/pin graph, moves map and check-constraints overlay, and the
// bookkeeping (ordinals, en passant set, turn, change log) that drives
// the incremental recomputation algorithm of spec.md §4.7.
//
// A Board is a pure, synchronous, single-threaded value: it performs no
// I/O and never blocks. It does not search, evaluate, or choose moves;
// it only tells an embedder what is currently legal.
type Board struct {
	config BoardConfig

	Map *boardmap.BoardMap

	strategyPoints map[piece.Color]*strategy.Points
	xrayPieces     map[piece.Color]*xray.Pieces
	movesMap       map[piece.Color]*moves.Map
	constraints    map[piece.Color]*constraints.Overlay

	ordinals map[piece.Color]int

	// pawnsWithEnPassant tracks, per color, the ids of pawns of that
	// color currently carrying an EnPassant buff. Consulted by the
	// recomputation algorithm (spec.md §4.7 step 1) and cleared for the
	// mover's color at the start of every MovePiece.
	pawnsWithEnPassant map[piece.Color]map[piece.Id]struct{}

	turn    piece.Color
	changes []Change
}

// Empty creates a Board with no pieces placed, querying config.Squares
// once for every point in config.Dimension to build the board map.
func Empty(config BoardConfig) *Board {
	b := &Board{
		config: config,
		Map:    boardmap.New(config.Dimension),
		strategyPoints: map[piece.Color]*strategy.Points{
			piece.White: strategy.New(),
			piece.Black: strategy.New(),
		},
		xrayPieces: map[piece.Color]*xray.Pieces{
			piece.White: xray.New(),
			piece.Black: xray.New(),
		},
		movesMap: map[piece.Color]*moves.Map{
			piece.White: moves.New(),
			piece.Black: moves.New(),
		},
		constraints: map[piece.Color]*constraints.Overlay{
			piece.White: constraints.New(),
			piece.Black: constraints.New(),
		},
		ordinals: map[piece.Color]int{},
		pawnsWithEnPassant: map[piece.Color]map[piece.Id]struct{}{
			piece.White: {},
			piece.Black: {},
		},
		turn: piece.White,
	}

	dim := config.Dimension
	for y := dim.Min.Y; y <= dim.Max.Y; y++ {
		for x := dim.Min.X; x <= dim.Max.X; x++ {
			p := geometry.Point{X: x, Y: y}
			info, ok := config.Squares.SquareAt(p)
			if !ok || info.Void {
				b.Map.AddSquare(p, boardmap.Square{Void: true})
				continue
			}
			b.Map.AddSquare(p, boardmap.Square{Color: info.Color})
		}
	}

	return b
}

// CurrentTurn returns the color to move.
func (b *Board) CurrentTurn() piece.Color {
	return b.turn
}

// ActivePieces returns the ids of every piece of the given color
// currently on the board.
func (b *Board) ActivePieces(c piece.Color) []piece.Id {
	return b.Map.ActivePieces(c)
}

// King returns the id of the king of the given color, if placed.
func (b *Board) King(c piece.Color) (piece.Id, bool) {
	return b.Map.King(c)
}

// PieceAt returns the piece occupying p, if any.
func (b *Board) PieceAt(p geometry.Point) (*piece.Piece, bool) {
	return b.Map.PieceAt(p)
}

// Piece resolves an id to its current piece.
func (b *Board) Piece(id piece.Id) (*piece.Piece, bool) {
	return b.Map.Piece(id)
}

// MovesOf returns the moves currently available to id, mapped to their
// score. Under check, this is the check-constrained overlay for id's
// color; otherwise it is the raw moves map.
func (b *Board) MovesOf(id piece.Id) map[moves.PieceMove]moves.Score {
	c := b.pieceColor(id)
	if ov := b.constraints[c]; ov.Enabled() {
		return ov.MovesOf(id)
	}
	return b.movesMap[c].MovesOf(id)
}

// MoveScores returns every distinct score currently available to
// color c.
func (b *Board) MoveScores(c piece.Color) []moves.Score {
	if ov := b.constraints[c]; ov.Enabled() {
		return ov.MoveScores()
	}
	return b.movesMap[c].MoveScores()
}

// MovesByScore returns every (piece, move) pair of color c currently
// evaluated at score.
func (b *Board) MovesByScore(c piece.Color, score moves.Score) map[piece.Id]map[moves.PieceMove]struct{} {
	if ov := b.constraints[c]; ov.Enabled() {
		return ov.MovesByScore(score)
	}
	return b.movesMap[c].MovesByScore(score)
}

// PiecesToMoveOnto returns every piece of color c that can currently
// move to p.
func (b *Board) PiecesToMoveOnto(c piece.Color, p geometry.Point) map[piece.Id]map[moves.PieceMove]moves.Score {
	if ov := b.constraints[c]; ov.Enabled() {
		return ov.PiecesToMoveOnto(p)
	}
	return b.movesMap[c].PiecesToMoveOnto(p)
}

// HasNoMoves reports whether color c has no legal moves at all: under
// check this is checkmate, otherwise stalemate.
func (b *Board) HasNoMoves(c piece.Color) bool {
	if ov := b.constraints[c]; ov.Enabled() {
		return ov.IsEmpty()
	}
	return b.movesMap[c].IsEmpty()
}

// IsInCheck reports whether color c's king is currently attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.constraints[c].Enabled()
}

// StrategyPoints returns the per-color strategy-point index, exposed
// read-only for callers inspecting engine internals (spec.md §8).
func (b *Board) StrategyPoints(c piece.Color) *strategy.Points {
	return b.strategyPoints[c]
}

// XRayPieces returns the per-color x-ray/pin graph.
func (b *Board) XRayPieces(c piece.Color) *xray.Pieces {
	return b.xrayPieces[c]
}

// LastChanges returns the Change events emitted by the most recent
// mutating operation (AddPiece, MovePiece, or PassTurn).
func (b *Board) LastChanges() []Change {
	return b.changes
}

// Clone returns a deep, independent copy of the board: every derived
// index is freshly allocated, so applying a move to the clone never
// affects the original. This is spec.md §8's branch-exploration
// requirement ("a caller wishing to explore branches clones the
// engine"); a caller such as cmd/perft clones once per candidate move
// instead of implementing undo.
func (b *Board) Clone() *Board {
	cp := &Board{
		config: b.config,
		Map:    b.Map.Clone(),
		strategyPoints: map[piece.Color]*strategy.Points{
			piece.White: b.strategyPoints[piece.White].Clone(),
			piece.Black: b.strategyPoints[piece.Black].Clone(),
		},
		xrayPieces: map[piece.Color]*xray.Pieces{
			piece.White: b.xrayPieces[piece.White].Clone(),
			piece.Black: b.xrayPieces[piece.Black].Clone(),
		},
		movesMap: map[piece.Color]*moves.Map{
			piece.White: b.movesMap[piece.White].Clone(),
			piece.Black: b.movesMap[piece.Black].Clone(),
		},
		constraints: map[piece.Color]*constraints.Overlay{
			piece.White: b.constraints[piece.White].Clone(),
			piece.Black: b.constraints[piece.Black].Clone(),
		},
		ordinals: map[piece.Color]int{
			piece.White: b.ordinals[piece.White],
			piece.Black: b.ordinals[piece.Black],
		},
		pawnsWithEnPassant: map[piece.Color]map[piece.Id]struct{}{
			piece.White: make(map[piece.Id]struct{}, len(b.pawnsWithEnPassant[piece.White])),
			piece.Black: make(map[piece.Id]struct{}, len(b.pawnsWithEnPassant[piece.Black])),
		},
		turn: b.turn,
	}
	for c, ids := range b.pawnsWithEnPassant {
		for id := range ids {
			cp.pawnsWithEnPassant[c][id] = struct{}{}
		}
	}
	return cp
}

func (b *Board) pieceColor(id piece.Id) piece.Color {
	return id.Color
}

func (b *Board) nextOrdinal(c piece.Color) int {
	o := b.ordinals[c]
	b.ordinals[c]++
	return o
}

func (b *Board) dim() geometry.Dimension {
	return b.Map.Dimension()
}

// homeColor returns the static color of a bishop's current square,
// used to detect the colour-mismatch dead end of spec.md §4.7.
func (b *Board) homeColor(pc *piece.Piece) boardmap.SquareColor {
	return b.Map.Square(pc.Position).Color
}

// forwardDirection returns the direction a pawn of the given color
// advances in: toward increasing Y for White, decreasing Y for Black.
func forwardDirection(c piece.Color) geometry.Vector {
	if c == piece.White {
		return geometry.LineTop
	}
	return geometry.LineBottom
}

// pawnDiagonals returns the two capture directions for a pawn of the
// given color, in a fixed order.
func pawnDiagonals(c piece.Color) [2]geometry.Vector {
	if c == piece.White {
		return [2]geometry.Vector{geometry.DiagonalTopLeft, geometry.DiagonalTopRight}
	}
	return [2]geometry.Vector{geometry.DiagonalBottomLeft, geometry.DiagonalBottomRight}
}

// isLastRank reports whether p is the far rank for a pawn of color c,
// i.e. where it must promote.
func (b *Board) isLastRank(c piece.Color, p geometry.Point) bool {
	dim := b.dim()
	if c == piece.White {
		return p.Y == dim.Max.Y
	}
	return p.Y == dim.Min.Y
}

func slidingDirections(kind piece.Kind) []geometry.Vector {
	switch kind {
	case piece.Bishop:
		return geometry.DiagonalVectors
	case piece.Rook:
		return geometry.LineVectors
	case piece.Queen:
		return geometry.SlidingVectors
	default:
		panic(fmt.Sprintf("engine: %s is not a sliding piece", kind))
	}
}
