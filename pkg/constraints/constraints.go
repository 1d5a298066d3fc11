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

// Package constraints implements the per-color MoveConstraints overlay
// that becomes authoritative whenever that color's king is in check. It
// is the map-based analogue of the teacher's CheckMask
// (pkg/board/moveGenState.go): instead of a bitboard intersected with
// pseudo-legal move generation on the fly, it is a materialised overlay
// the engine fills in once per recomputation and queries through the
// same read API as moves.Map, so callers (spec.md §4.6) don't need to
// know whether a king is in check to ask "what can this piece do".
package constraints

import (
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/moves"
	"github.com/intale/tchess/pkg/piece"
)

// Overlay is the per-color MoveConstraints.
type Overlay struct {
	enabled bool

	// allowed is the set of destinations a non-king ally move may
	// land on: the attacker's square, plus (for a single sliding
	// attacker) every square strictly between attacker and king.
	// Empty under double check.
	allowed map[geometry.Point]struct{}

	byPiece map[piece.Id]map[moves.PieceMove]moves.Score
	byDest  map[geometry.Point]map[piece.Id]map[moves.PieceMove]moves.Score
	byScore map[moves.Score]map[piece.Id]map[moves.PieceMove]struct{}
}

// New creates a disabled overlay.
func New() *Overlay {
	return &Overlay{}
}

// Enabled reports whether the king of this color is currently in
// check and this overlay is therefore authoritative.
func (o *Overlay) Enabled() bool {
	return o.enabled
}

// Reset disables the overlay and clears its contents. Called at the
// start of every recomputation (spec.md §4.7 step 4) before possibly
// being re-armed by Enable.
func (o *Overlay) Reset() {
	o.enabled = false
	o.allowed = nil
	o.byPiece = nil
	o.byDest = nil
	o.byScore = nil
}

// Enable arms the overlay with the given allowed-destination set. An
// empty, non-nil allowed set models double check: only king moves
// (added separately via AddKingMove) remain legal.
func (o *Overlay) Enable(allowed map[geometry.Point]struct{}) {
	o.enabled = true
	o.allowed = allowed
	o.byPiece = make(map[piece.Id]map[moves.PieceMove]moves.Score)
	o.byDest = make(map[geometry.Point]map[piece.Id]map[moves.PieceMove]moves.Score)
	o.byScore = make(map[moves.Score]map[piece.Id]map[moves.PieceMove]struct{})
}

// Allowed reports whether p is a legal destination for a non-king ally
// move under the current check.
func (o *Overlay) Allowed(p geometry.Point) bool {
	_, ok := o.allowed[p]
	return ok
}

// CopyIn copies a single (piece, move, score) triple from the
// authoritative MovesMap into the overlay. The engine uses this both
// for ally moves landing on an allowed destination and, unconditionally,
// for the king's own moves (which are always copied in verbatim).
func (o *Overlay) CopyIn(id piece.Id, m moves.PieceMove, score moves.Score) {
	if o.byPiece[id] == nil {
		o.byPiece[id] = make(map[moves.PieceMove]moves.Score)
	}
	o.byPiece[id][m] = score

	if o.byDest[m.Dest] == nil {
		o.byDest[m.Dest] = make(map[piece.Id]map[moves.PieceMove]moves.Score)
	}
	if o.byDest[m.Dest][id] == nil {
		o.byDest[m.Dest][id] = make(map[moves.PieceMove]moves.Score)
	}
	o.byDest[m.Dest][id][m] = score

	if o.byScore[score] == nil {
		o.byScore[score] = make(map[piece.Id]map[moves.PieceMove]struct{})
	}
	if o.byScore[score][id] == nil {
		o.byScore[score][id] = make(map[moves.PieceMove]struct{})
	}
	o.byScore[score][id][m] = struct{}{}
}

// MovesOf returns the moves available to id under this overlay.
func (o *Overlay) MovesOf(id piece.Id) map[moves.PieceMove]moves.Score {
	return o.byPiece[id]
}

// PiecesToMoveOnto returns every piece that can currently move to p
// under this overlay.
func (o *Overlay) PiecesToMoveOnto(p geometry.Point) map[piece.Id]map[moves.PieceMove]moves.Score {
	return o.byDest[p]
}

// MovesByScore returns every (piece, move) pair at the given score
// under this overlay.
func (o *Overlay) MovesByScore(score moves.Score) map[piece.Id]map[moves.PieceMove]struct{} {
	return o.byScore[score]
}

// MoveScores returns every distinct score present in this overlay.
func (o *Overlay) MoveScores() []moves.Score {
	scores := make([]moves.Score, 0, len(o.byScore))
	for s := range o.byScore {
		scores = append(scores, s)
	}
	return scores
}

// IsEmpty reports whether the overlay grants no moves at all, which
// for an enabled overlay means checkmate.
func (o *Overlay) IsEmpty() bool {
	return len(o.byPiece) == 0
}

// Clone returns a deep copy of the overlay, independent of future
// mutation of the original.
func (o *Overlay) Clone() *Overlay {
	cp := New()
	if !o.enabled {
		return cp
	}

	allowed := make(map[geometry.Point]struct{}, len(o.allowed))
	for p := range o.allowed {
		allowed[p] = struct{}{}
	}
	cp.Enable(allowed)

	for id, ms := range o.byPiece {
		for m, score := range ms {
			cp.CopyIn(id, m, score)
		}
	}
	return cp
}
