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

package geometry

// VectorPoints is a lazy, finite, non-restartable iterator over the
// points reached by repeatedly stepping from an origin along a
// direction, clipped to a Dimension. Once Next returns false the
// iterator is exhausted and must be discarded; a fresh one is required
// to walk the same ray again.
type VectorPoints struct {
	dim   Dimension
	dir   Vector
	next  Point
	valid bool
}

// NewVectorPoints creates an iterator that walks from origin along dir,
// clipped to dim. If includeOrigin is true, the first call to Next
// returns origin itself before taking any steps; otherwise the first
// point returned is one step away from origin.
func NewVectorPoints(origin Point, dir Vector, dim Dimension, includeOrigin bool) *VectorPoints {
	start := origin
	if !includeOrigin {
		start = dir.CalcNextPoint(origin)
	}

	return &VectorPoints{
		dim:   dim,
		dir:   dir,
		next:  start,
		valid: dim.Contains(start),
	}
}

// Next advances the iterator and returns the next point, or false if
// the ray has left the dimension.
func (it *VectorPoints) Next() (Point, bool) {
	if !it.valid {
		return Point{}, false
	}

	p := it.next
	it.next = it.dir.CalcNextPoint(p)
	it.valid = it.dim.Contains(it.next)
	return p, true
}
