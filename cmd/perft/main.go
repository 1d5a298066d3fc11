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

// cmd/perft counts the leaf nodes of the standard chess position's
// move tree to the given depth, one Board.Clone per candidate move
// instead of the teacher's MakeMove/UnmakeMove pair (pkg/board/perft.go),
// since undo/redo is an explicit spec non-goal here (see DESIGN.md)
// and Board.Clone is spec.md §8's prescribed substitute for it.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/intale/tchess/internal/regression"
	"github.com/intale/tchess/pkg/engine"
	"github.com/schollz/progressbar/v3"
)

func main() {
	depth := flag.Int("depth", 4, "perft search depth")
	flag.Parse()

	b := regression.StandardBoard()
	regression.StandardPosition(b)

	fmt.Printf("perft: counting standard position to depth %d\n", *depth)

	start := time.Now()
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("node"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	nodes := perft(b, *depth, bar)
	elapsed := time.Since(start)

	fmt.Printf("\nperft(%d) = %d nodes in %s (%.0f nodes/sec)\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if nodes == 0 {
		os.Exit(1)
	}
}

// perft walks b's move tree depth plies deep, cloning b once per
// candidate move rather than mutating and undoing it in place.
func perft(b *engine.Board, depth int, bar *progressbar.ProgressBar) int {
	if depth == 0 {
		_ = bar.Add(1)
		return 1
	}

	turn := b.CurrentTurn()

	var nodes int
	for _, id := range b.ActivePieces(turn) {
		for m := range b.MovesOf(id) {
			branch := b.Clone()
			if !branch.MovePiece(id, m) {
				continue
			}
			nodes += perft(branch, depth-1, bar)
		}
	}
	return nodes
}
