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

// Package strategy implements the per-color StrategyPoints index: a
// bidirectional map between pieces and the squares they care about, and
// why (attack, defense, reachable-by-move, blocked-move, or dead-end).
package strategy

import (
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
)

// Kind tags why a piece cares about a point.
type Kind int

const (
	// Attack means the piece threatens capture at the point.
	Attack Kind = iota
	// Defense means the piece protects an ally occupying the point.
	Defense
	// Move means a pawn could reach the point by a non-capturing move.
	Move
	// BlockedMove means a pawn's forward square is currently occupied,
	// by either color; the source square cares about repopulation.
	BlockedMove
	// DeadEnd means a ray terminated here (off-board or, for a
	// bishop, a color-mismatched square). Bookkeeping only.
	DeadEnd
)

// Point is a single strategy point: the reason tag plus the square it
// concerns.
type Point struct {
	Kind Kind
	At   geometry.Point
}

// Points is the per-color StrategyPoints bidirectional index.
type Points struct {
	byPiece map[piece.Id]map[Point]struct{}
	byPoint map[Point]map[piece.Id]struct{}
}

// New creates an empty index.
func New() *Points {
	return &Points{
		byPiece: make(map[piece.Id]map[Point]struct{}),
		byPoint: make(map[Point]map[piece.Id]struct{}),
	}
}

// AddAssociation records that the piece with the given id cares about
// sp, inserting both the piece->point and point->piece directions.
func (p *Points) AddAssociation(sp Point, id piece.Id) {
	if p.byPiece[id] == nil {
		p.byPiece[id] = make(map[Point]struct{})
	}
	p.byPiece[id][sp] = struct{}{}

	if p.byPoint[sp] == nil {
		p.byPoint[sp] = make(map[piece.Id]struct{})
	}
	p.byPoint[sp][id] = struct{}{}
}

// RemovePiece drops every strategy point the given piece is currently
// associated with. Call this before recomputing a piece's points.
func (p *Points) RemovePiece(id piece.Id) {
	for sp := range p.byPiece[id] {
		delete(p.byPoint[sp], id)
		if len(p.byPoint[sp]) == 0 {
			delete(p.byPoint, sp)
		}
	}
	delete(p.byPiece, id)
}

// GetPieces returns the ids of every piece associated with sp.
func (p *Points) GetPieces(sp Point) []piece.Id {
	ids := make([]piece.Id, 0, len(p.byPoint[sp]))
	for id := range p.byPoint[sp] {
		ids = append(ids, id)
	}
	return ids
}

// GetPoints returns every strategy point the given piece is associated
// with.
func (p *Points) GetPoints(id piece.Id) []Point {
	sps := make([]Point, 0, len(p.byPiece[id]))
	for sp := range p.byPiece[id] {
		sps = append(sps, sp)
	}
	return sps
}

// IsUnderAttack reports whether any piece indexed here attacks at.
func (p *Points) IsUnderAttack(at geometry.Point) bool {
	return len(p.byPoint[Point{Kind: Attack, At: at}]) > 0
}

// IsUnderDefense reports whether any piece indexed here defends at.
func (p *Points) IsUnderDefense(at geometry.Point) bool {
	return len(p.byPoint[Point{Kind: Defense, At: at}]) > 0
}

// Attackers returns the ids of every piece attacking at.
func (p *Points) Attackers(at geometry.Point) []piece.Id {
	return p.GetPieces(Point{Kind: Attack, At: at})
}

// Defenders returns the ids of every piece defending at.
func (p *Points) Defenders(at geometry.Point) []piece.Id {
	return p.GetPieces(Point{Kind: Defense, At: at})
}

// Clone returns a deep copy of the index, independent of future
// mutation of the original.
func (p *Points) Clone() *Points {
	cp := New()
	for id, sps := range p.byPiece {
		cpSps := make(map[Point]struct{}, len(sps))
		for sp := range sps {
			cpSps[sp] = struct{}{}
		}
		cp.byPiece[id] = cpSps
	}
	for sp, ids := range p.byPoint {
		cpIds := make(map[piece.Id]struct{}, len(ids))
		for id := range ids {
			cpIds[id] = struct{}{}
		}
		cp.byPoint[sp] = cpIds
	}
	return cp
}
