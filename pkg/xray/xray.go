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

// Package xray implements the per-color XRayPieces graph: for each
// direction leading from a sliding piece to the opposite king, the
// closest such piece, and the ally (if exactly one) that it currently
// pins. This is the generalised, map-based analogue of the teacher's
// bitboard PinnedD/PinnedHV masks in pkg/board/moveGenState.go, which
// only ever needed two axes (diagonal and line) because the teacher's
// board is always 8x8 with orthodox geometry; here the axis is a full
// geometry.Vector so custom boards and non-standard king approaches are
// supported uniformly.
package xray

import (
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

// Record is one entry in the XRayPieces graph: the sliding piece q that
// occupies direction Direction (pointing from q towards the opposite
// king), and the ally it pins, if any.
type Record struct {
	Piece     piece.Id
	Direction geometry.Vector
	Pinned    *piece.Id
}

// Pieces is the per-color XRayPieces graph.
type Pieces struct {
	byDirection map[geometry.Vector]Record
	byPiece     map[piece.Id]geometry.Vector
}

// New creates an empty graph.
func New() *Pieces {
	return &Pieces{
		byDirection: make(map[geometry.Vector]Record),
		byPiece:     make(map[piece.Id]geometry.Vector),
	}
}

// Set records q as the occupier of dir, optionally pinning pinned.
func (x *Pieces) Set(dir geometry.Vector, q piece.Id, pinned *piece.Id) {
	x.byDirection[dir] = Record{Piece: q, Direction: dir, Pinned: pinned}
	x.byPiece[q] = dir
}

// Clear removes whatever record occupies dir.
func (x *Pieces) Clear(dir geometry.Vector) {
	if rec, ok := x.byDirection[dir]; ok {
		delete(x.byPiece, rec.Piece)
		delete(x.byDirection, dir)
	}
}

// RemovePiece removes q from the graph, wherever it appears, and
// reports the direction it vacated, if any.
func (x *Pieces) RemovePiece(q piece.Id) (geometry.Vector, bool) {
	dir, ok := x.byPiece[q]
	if !ok {
		return 0, false
	}
	delete(x.byDirection, dir)
	delete(x.byPiece, q)
	return dir, true
}

// Get returns the record occupying dir, if any.
func (x *Pieces) Get(dir geometry.Vector) (Record, bool) {
	rec, ok := x.byDirection[dir]
	return rec, ok
}

// DirectionOf returns the direction the given sliding piece currently
// occupies in the graph, if any.
func (x *Pieces) DirectionOf(q piece.Id) (geometry.Vector, bool) {
	dir, ok := x.byPiece[q]
	return dir, ok
}

// Directions returns every direction currently occupied in the graph.
// Used by the engine to find x-ray relationships whose ray passes
// through a changed point (spec.md §4.7 step 2).
func (x *Pieces) Directions() []geometry.Vector {
	dirs := make([]geometry.Vector, 0, len(x.byDirection))
	for d := range x.byDirection {
		dirs = append(dirs, d)
	}
	return dirs
}

// Clone returns a deep copy of the graph, independent of future
// mutation of the original.
func (x *Pieces) Clone() *Pieces {
	cp := New()
	for dir, rec := range x.byDirection {
		recCopy := rec
		if rec.Pinned != nil {
			id := *rec.Pinned
			recCopy.Pinned = &id
		}
		cp.byDirection[dir] = recCopy
	}
	for id, dir := range x.byPiece {
		cp.byPiece[id] = dir
	}
	return cp
}
