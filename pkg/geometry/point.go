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

// Package geometry implements the board-dimension-agnostic primitives
// that every other package builds on: points, dimensions, and the sixteen
// chess movement directions (four lines, four diagonals, and the eight
// knight jumps), along with a stepped point iterator clipped to a
// dimension.
package geometry

import "fmt"

// Point is a single square on a board, addressed by a signed (x, y) pair.
// Unlike a fixed mailbox index, a Point carries no assumption about board
// size; Dimension is what bounds it.
type Point struct {
	X, Y int
}

// String converts a Point into a human readable "(x,y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the point obtained by translating p by the given delta.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Dimension is an inclusive (Min, Max) bounding box of playable points.
type Dimension struct {
	Min, Max Point
}

// Contains reports whether p lies within the dimension's bounds.
func (d Dimension) Contains(p Point) bool {
	return p.X >= d.Min.X && p.X <= d.Max.X && p.Y >= d.Min.Y && p.Y <= d.Max.Y
}

// Width returns the number of files spanned by the dimension.
func (d Dimension) Width() int {
	return d.Max.X - d.Min.X + 1
}

// Height returns the number of ranks spanned by the dimension.
func (d Dimension) Height() int {
	return d.Max.Y - d.Min.Y + 1
}
