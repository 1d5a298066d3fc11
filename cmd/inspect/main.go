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

// cmd/inspect is a terminal dashboard over a standard Board: a
// read-only viewer for the position, the active StrategyPoints index,
// the XRayPieces pin graph, and the check/MoveConstraints state of the
// side to move, driven entirely by engine.Board's query surface
// (spec.md §8). The teacher has no terminal UI of its own (it only
// speaks UCI, pkg/uci), so this is grounded on the go-echarts/
// progressbar dependencies' sibling in the teacher's indirect require
// list, gizak/termui/v3, which is otherwise unused anywhere in the
// teacher's own source or the rest of the pack.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/intale/tchess/internal/regression"
	"github.com/intale/tchess/pkg/engine"
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/piece"
	"golang.org/x/term"
)

// minDashboardWidth/Height are the smallest terminal dimensions the
// four-panel layout below still fits in legibly; a narrower or
// shorter real terminal falls back to this size instead.
const (
	minDashboardWidth  = 74
	minDashboardHeight = 18
)

func main() {
	if err := ui.Init(); err != nil {
		log.Fatalf("inspect: failed to initialize termui: %v", err)
	}
	defer ui.Close()

	b := regression.StandardBoard()
	regression.StandardPosition(b)

	w, h := minDashboardWidth, minDashboardHeight
	if termW, termH, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if termW > w {
			w = termW
		}
		if termH > h {
			h = termH
		}
	}
	col, row := w/2, h*2/3

	board := widgets.NewParagraph()
	board.Title = "Position"
	board.SetRect(0, 0, col, row)

	status := widgets.NewParagraph()
	status.Title = "Status"
	status.SetRect(0, row, col, h)

	points := widgets.NewParagraph()
	points.Title = "Strategy Points"
	points.SetRect(col, 0, w, row)

	pins := widgets.NewParagraph()
	pins.Title = "X-Ray Pins"
	pins.SetRect(col, row, w, h)

	render := func() {
		board.Text = renderBoard(b)
		status.Text = renderStatus(b)
		points.Text = renderStrategyPoints(b)
		pins.Text = renderXRayPins(b)
		ui.Render(board, status, points, pins)
	}
	render()

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return
		case "<Resize>":
			render()
		}
	}
}

func renderBoard(b *engine.Board) string {
	var sb strings.Builder
	dim := b.Map.Dimension()
	for y := dim.Max.Y; y >= dim.Min.Y; y-- {
		for x := dim.Min.X; x <= dim.Max.X; x++ {
			pc, ok := b.PieceAt(geometry.Point{X: x, Y: y})
			if !ok {
				sb.WriteString(". ")
				continue
			}
			letter := pc.Kind.String()
			if pc.Color == piece.Black {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderStatus(b *engine.Board) string {
	turn := b.CurrentTurn()
	check := b.IsInCheck(turn)
	noMoves := b.HasNoMoves(turn)

	var outcome string
	switch {
	case noMoves && check:
		outcome = "checkmate"
	case noMoves:
		outcome = "stalemate"
	case check:
		outcome = "in check"
	default:
		outcome = "ongoing"
	}

	moveCount := 0
	for _, id := range b.ActivePieces(turn) {
		moveCount += len(b.MovesOf(id))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "turn: %s\nstatus: %s\nlegal moves: %d\n", turn, outcome, moveCount)

	// The MoveConstraints overlay only becomes authoritative under
	// check (spec.md §4.6); report which piece(s) triggered it.
	if check {
		if kingID, ok := b.King(turn); ok {
			if kingPc, ok := b.Piece(kingID); ok {
				checkers := b.StrategyPoints(turn.Other()).Attackers(kingPc.Position)
				fmt.Fprintf(&sb, "constrained by: %v\n", checkers)
			}
		}
	}

	sb.WriteString("press q to quit")
	return sb.String()
}

// renderStrategyPoints lists every square the side to move's
// StrategyPoints index currently cares about, and why.
func renderStrategyPoints(b *engine.Board) string {
	turn := b.CurrentTurn()
	sp := b.StrategyPoints(turn)
	dim := b.Map.Dimension()

	var sb strings.Builder
	for y := dim.Max.Y; y >= dim.Min.Y; y-- {
		for x := dim.Min.X; x <= dim.Max.X; x++ {
			p := geometry.Point{X: x, Y: y}
			attackers := sp.Attackers(p)
			defenders := sp.Defenders(p)
			if len(attackers) == 0 && len(defenders) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "%s: %d attackers, %d defenders\n", p, len(attackers), len(defenders))
		}
	}
	if sb.Len() == 0 {
		return fmt.Sprintf("no strategy points for %s", turn)
	}
	return sb.String()
}

// renderXRayPins lists every entry currently held in either color's
// XRayPieces graph: the sliding piece occupying the direction, and the
// ally it pins, if any.
func renderXRayPins(b *engine.Board) string {
	var sb strings.Builder
	for _, c := range [2]piece.Color{piece.White, piece.Black} {
		xg := b.XRayPieces(c)
		for _, dir := range xg.Directions() {
			rec, ok := xg.Get(dir)
			if !ok {
				continue
			}
			if rec.Pinned == nil {
				fmt.Fprintf(&sb, "%s dir=%d: %s unopposed\n", c, int(dir), rec.Piece)
				continue
			}
			fmt.Fprintf(&sb, "%s dir=%d: %s pins %s\n", c, int(dir), rec.Piece, *rec.Pinned)
		}
	}
	if sb.Len() == 0 {
		return "no x-ray relationships"
	}
	return sb.String()
}
