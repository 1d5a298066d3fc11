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

// Package engine implements the Board orchestration layer: add_piece,
// move_piece, promotion, and the incremental recomputation algorithm
// that keeps the board map, strategy points, x-ray graph, moves map,
// and move constraints consistent after every mutation (spec.md §4.7).
package engine

import (
	"github.com/intale/tchess/pkg/boardmap"
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

// SquareInfo is what a SquaresMap reports for a single point.
type SquareInfo struct {
	Void  bool
	Color boardmap.SquareColor
}

// SquaresMap is supplied by the embedder and defines the shape and
// colouring of the playing surface. Queried once per point when a
// Board is built by Empty.
type SquaresMap interface {
	// SquareAt returns the square information for p, and false if p
	// lies outside the board's geometry.Dimension entirely.
	SquareAt(p geometry.Point) (SquareInfo, bool)
}

// HeatMap is supplied by the embedder and assigns a positional value
// to a (kind, color, point) triple. The engine uses the delta between
// a move's destination and source heat to score moves in MovesMap; it
// never searches or chooses moves itself (spec.md §1 Non-goals).
type HeatMap interface {
	Value(kind piece.Kind, color piece.Color, at geometry.Point) int
}

// Player tags whether a color is driven by a human or a computer. The
// engine stores this but never interprets it.
type Player int

const (
	Human Player = iota
	Computer
)

// CastleTarget names the file a king or rook lands on for one side of
// castling (kingside or queenside). Only the file (X coordinate)
// matters; the rank is always the king's own rank at castling time, so
// both classic and Chess960 layouts are expressible.
type CastleTarget struct {
	KingFile int
	RookFile int
}

// BoardConfig aggregates everything the engine needs from the embedder:
// the board's shape and colouring, its positional heat map, the
// castling file layout per color, and a Player tag per color.
type BoardConfig struct {
	Dimension geometry.Dimension
	Squares   SquaresMap
	Heat      HeatMap

	Kingside  map[piece.Color]CastleTarget
	Queenside map[piece.Color]CastleTarget

	Players map[piece.Color]Player
}
