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

// tchess is a minimal REPL over a standard engine.Board: type a move as
// two squares ("e2e4"), "moves" to list what the side to move can
// play, or "quit" to exit. It mirrors the teacher's main.go shape (a
// thin run() that dispatches to a REPL) without the UCI protocol layer
// that run() used to drive, since this engine exposes move legality
// directly rather than through search (spec.md §1 Non-goals).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/intale/tchess/internal/regression"
	"github.com/intale/tchess/pkg/engine"
	"github.com/intale/tchess/pkg/geometry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("tchess: a parametric, incremental move-legality engine")

	b := regression.StandardBoard()
	regression.StandardPosition(b)

	scanner := bufio.NewScanner(os.Stdin)
	printBoard(b)
	for {
		fmt.Printf("%s> ", b.CurrentTurn())
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "moves":
			printMoves(b)
			continue
		}

		if !applyMove(b, line) {
			fmt.Println("illegal or unparseable move")
			continue
		}
		printBoard(b)
	}
}

// applyMove parses a "e2e4"-style square pair and plays it if it is a
// legal move for whichever piece occupies the source square.
func applyMove(b *engine.Board, text string) bool {
	from, to, ok := parseSquarePair(text)
	if !ok {
		return false
	}

	pc, ok := b.PieceAt(from)
	if !ok {
		return false
	}

	for m := range b.MovesOf(pc.Id) {
		if m.Dest == to {
			return b.MovePiece(pc.Id, m)
		}
	}
	return false
}

func parseSquarePair(text string) (from, to geometry.Point, ok bool) {
	if len(text) != 4 {
		return from, to, false
	}
	from, ok1 := parseSquare(text[0:2])
	to, ok2 := parseSquare(text[2:4])
	return from, to, ok1 && ok2
}

func parseSquare(text string) (geometry.Point, bool) {
	if len(text) != 2 {
		return geometry.Point{}, false
	}
	file := text[0] - 'a'
	rank := text[1] - '1'
	if file > 7 || rank > 7 {
		return geometry.Point{}, false
	}
	return geometry.Point{X: int(file), Y: int(rank)}, true
}

func printBoard(b *engine.Board) {
	dim := b.Map.Dimension()
	for y := dim.Max.Y; y >= dim.Min.Y; y-- {
		for x := dim.Min.X; x <= dim.Max.X; x++ {
			pc, ok := b.PieceAt(geometry.Point{X: x, Y: y})
			if !ok {
				fmt.Print(". ")
				continue
			}
			fmt.Printf("%s ", pc)
		}
		fmt.Println()
	}
	if b.IsInCheck(b.CurrentTurn()) {
		fmt.Printf("%s is in check\n", b.CurrentTurn())
	}
	if b.HasNoMoves(b.CurrentTurn()) {
		fmt.Println("no moves left")
	}
}

func printMoves(b *engine.Board) {
	turn := b.CurrentTurn()
	for _, id := range b.ActivePieces(turn) {
		pc, _ := b.Piece(id)
		for m := range b.MovesOf(id) {
			fmt.Printf("%s %s\n", pc, m)
		}
	}
}
