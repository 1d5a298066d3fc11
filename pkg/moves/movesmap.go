// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package moves

import (
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

// Score is the heat-map delta (positional value at destination minus
// positional value at source) for a move at the moment it was
// calculated. It is the per-move analogue of the teacher's
// move.OrderedMove eval payload (pkg/board/move/ordered.go), stored
// alongside the move instead of packed into its bits, since PieceMove
// is a struct rather than a fixed-width integer.
type Score int

// Map is the per-color MovesMap: every piece's legal moves, indexed
// also by destination and by score.
type Map struct {
	byPiece map[piece.Id]map[PieceMove]Score
	byDest  map[geometry.Point]map[piece.Id]map[PieceMove]Score
	byScore map[Score]map[piece.Id]map[PieceMove]struct{}
}

// New creates an empty MovesMap.
func New() *Map {
	return &Map{
		byPiece: make(map[piece.Id]map[PieceMove]Score),
		byDest:  make(map[geometry.Point]map[piece.Id]map[PieceMove]Score),
		byScore: make(map[Score]map[piece.Id]map[PieceMove]struct{}),
	}
}

// Add records that id may play m, scored at score.
func (mm *Map) Add(id piece.Id, m PieceMove, score Score) {
	if mm.byPiece[id] == nil {
		mm.byPiece[id] = make(map[PieceMove]Score)
	}
	mm.byPiece[id][m] = score

	if mm.byDest[m.Dest] == nil {
		mm.byDest[m.Dest] = make(map[piece.Id]map[PieceMove]Score)
	}
	if mm.byDest[m.Dest][id] == nil {
		mm.byDest[m.Dest][id] = make(map[PieceMove]Score)
	}
	mm.byDest[m.Dest][id][m] = score

	if mm.byScore[score] == nil {
		mm.byScore[score] = make(map[piece.Id]map[PieceMove]struct{})
	}
	if mm.byScore[score][id] == nil {
		mm.byScore[score][id] = make(map[PieceMove]struct{})
	}
	mm.byScore[score][id][m] = struct{}{}
}

// RemovePiece clears every move of the given piece from all three
// indices. Call this before recomputing a piece's moves.
func (mm *Map) RemovePiece(id piece.Id) {
	for m, score := range mm.byPiece[id] {
		if byID, ok := mm.byDest[m.Dest]; ok {
			delete(byID[id], m)
			if len(byID[id]) == 0 {
				delete(byID, id)
			}
			if len(byID) == 0 {
				delete(mm.byDest, m.Dest)
			}
		}

		if byID, ok := mm.byScore[score]; ok {
			delete(byID[id], m)
			if len(byID[id]) == 0 {
				delete(byID, id)
			}
			if len(byID) == 0 {
				delete(mm.byScore, score)
			}
		}
	}
	delete(mm.byPiece, id)
}

// MovesOf returns the moves available to id, mapped to their score.
func (mm *Map) MovesOf(id piece.Id) map[PieceMove]Score {
	return mm.byPiece[id]
}

// PiecesToMoveOnto returns every piece that can currently move to p,
// along with the moves each could use to get there.
func (mm *Map) PiecesToMoveOnto(p geometry.Point) map[piece.Id]map[PieceMove]Score {
	return mm.byDest[p]
}

// MovesByScore returns every (piece, move) pair currently evaluated at
// the given score.
func (mm *Map) MovesByScore(score Score) map[piece.Id]map[PieceMove]struct{} {
	return mm.byScore[score]
}

// MoveScores returns every distinct score currently present in the map.
func (mm *Map) MoveScores() []Score {
	scores := make([]Score, 0, len(mm.byScore))
	for s := range mm.byScore {
		scores = append(scores, s)
	}
	return scores
}

// IsEmpty reports whether the map contains no moves at all.
func (mm *Map) IsEmpty() bool {
	return len(mm.byPiece) == 0
}

// Clone returns a deep copy of the map, independent of future mutation
// of the original. Rebuilt through Add rather than copied field by
// field, since byDest and byScore are derived from byPiece and must
// stay in sync.
func (mm *Map) Clone() *Map {
	cp := New()
	for id, ms := range mm.byPiece {
		for m, score := range ms {
			cp.Add(id, m, score)
		}
	}
	return cp
}
