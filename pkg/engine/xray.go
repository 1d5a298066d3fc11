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
	"github.com/intale/tchess/pkg/util"
)

// recalcXRay recomputes q's entry in its color's XRayPieces graph
// (spec.md §4.5): the direction from q to the opposing king, whether
// some other sliding ally already occupies that direction closer to
// the king, and which single enemy piece (if any) q currently pins
// along it.
//
// Grounded on the teacher's PinnedD/PinnedHV computation in
// pkg/board/moveGenState.go, generalised from two fixed bitboard axes
// to an arbitrary geometry.Vector so non-orthodox boards are handled
// uniformly.
func (b *Board) recalcXRay(q *piece.Piece) {
	color := q.Color
	xg := b.xrayPieces[color]

	if oldDir, hadEntry := xg.DirectionOf(q.Id); hadEntry {
		oldRec, _ := xg.Get(oldDir)
		xg.RemovePiece(q.Id)
		clearPinOf(b, color.Other(), oldRec.Pinned)
	}

	kingID, ok := b.Map.King(color.Other())
	if !ok {
		return
	}
	king, _ := b.Map.Piece(kingID)

	dir, ok := geometry.CalcDirection(q.Position, king.Position)
	if !ok {
		return
	}
	if (q.Kind == piece.Rook && !dir.IsLine()) || (q.Kind == piece.Bishop && !dir.IsDiagonal()) {
		return
	}

	between, reachedKing := b.firstTwoOccupants(q.Position, dir, king.Position)
	if !reachedKing {
		// Nothing blocks the ray all the way to the king: either the
		// ray runs off the board first, or two or more pieces stand
		// between q and the king, so no pin is possible either way.
		return
	}

	var pinned *piece.Id
	if between != nil && between.Color != q.Color {
		id := between.Id
		pinned = &id
	}
	// If between is nil, q attacks the king directly: it is delivering
	// check, not pinning anything. If between belongs to q's own
	// color, it simply blocks the ray; nothing is pinned either.

	if existing, has := xg.Get(dir); has && existing.Piece != q.Id {
		rival, rivalOK := b.Map.Piece(existing.Piece)
		if rivalOK {
			rivalDist := stepsBetween(rival.Position, king.Position)
			qDist := stepsBetween(q.Position, king.Position)
			if qDist >= rivalDist {
				// q does not win the direction; it simply has no
				// x-ray entry for this color.
				return
			}
			// q is closer to the king: it displaces the rival.
			clearPinOf(b, color.Other(), existing.Pinned)
		}
	}

	xg.Set(dir, q.Id, pinned)
	applyPin(b, color.Other(), pinned, dir)
}

// firstTwoOccupants walks from origin (exclusive) towards king along
// dir and reports the first occupied square's piece (nil if the king's
// square is reached with nothing in between) and whether the king's
// square itself was reached before the ray left the board.
func (b *Board) firstTwoOccupants(origin geometry.Point, dir geometry.Vector, king geometry.Point) (*piece.Piece, bool) {
	it := geometry.NewVectorPoints(origin, dir, b.dim(), false)
	var first *piece.Piece
	for {
		p, ok := it.Next()
		if !ok {
			return first, false
		}
		if p == king {
			return first, true
		}
		if occ, has := b.Map.PieceAt(p); has {
			if first == nil {
				first = occ
				continue
			}
			// a second piece stands in the way before the king: no
			// pin is possible along this ray.
			return first, false
		}
	}
}

// stepsBetween is the Chebyshev distance between from and to, i.e. the
// number of king-steps needed to walk from one to the other.
func stepsBetween(from, to geometry.Point) int {
	dx := util.Abs(to.X - from.X)
	dy := util.Abs(to.Y - from.Y)
	return util.Max(dx, dy)
}

// clearPinOf removes the Pin debuff from the piece identified by id,
// if any, and recomputes its moves.
func clearPinOf(b *Board, color piece.Color, id *piece.Id) {
	if id == nil {
		return
	}
	pc, ok := b.Map.Piece(*id)
	if !ok {
		return
	}
	pc.Debuffs.Pin = nil
	b.recalcMoves(pc)
}

// applyPin sets the Pin debuff (towards the king, i.e. the occupier's
// own direction dir) on the piece identified by id, if any, and
// recomputes its moves.
func applyPin(b *Board, color piece.Color, id *piece.Id, dir geometry.Vector) {
	if id == nil {
		return
	}
	pc, ok := b.Map.Piece(*id)
	if !ok {
		return
	}
	// dir already points from the occupier q through the pinned piece
	// to the king, so it is also the direction from the pinned piece
	// itself towards its own king: the very definition of piece.Pin.
	pc.Debuffs.Pin = &piece.Pin{Direction: dir}
	b.recalcMoves(pc)
}

// recomputeXRayThroughPoint recomputes every x-ray record of color
// whose ray passes through p, called after p changes occupancy (spec.md
// §4.7 step 2).
func (b *Board) recomputeXRayThroughPoint(color piece.Color, p geometry.Point) {
	xg := b.xrayPieces[color]
	kingID, ok := b.Map.King(color.Other())
	if !ok {
		return
	}
	king, _ := b.Map.Piece(kingID)

	for _, dir := range xg.Directions() {
		rec, has := xg.Get(dir)
		if !has {
			continue
		}
		occ, ok := b.Map.Piece(rec.Piece)
		if !ok {
			continue
		}
		if !pointOnRay(occ.Position, dir, king.Position, p, b.dim()) {
			continue
		}
		b.recalcXRay(occ)
	}
}

// pointOnRay reports whether p lies strictly between from and to when
// stepping along dir (p itself may equal to, the king's square).
func pointOnRay(from geometry.Point, dir geometry.Vector, to geometry.Point, p geometry.Point, dim geometry.Dimension) bool {
	it := geometry.NewVectorPoints(from, dir, dim, false)
	for {
		q, ok := it.Next()
		if !ok {
			return false
		}
		if q == p {
			return true
		}
		if q == to {
			return false
		}
	}
}
