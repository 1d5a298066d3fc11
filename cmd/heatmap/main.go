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

// cmd/heatmap renders an 8x8 HeatMap.Value table as an HTML chart,
// grounded on the teacher's own go-echarts usage for plotting tuner
// error curves (pkg/search/eval/classical/tuner/tuner.go), here
// switched from a line series to a heatmap series since the data is a
// 2-D table rather than a sequence.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/intale/tchess/pkg/geometry"
	"github.com/intale/tchess/pkg/heatmap"
	"github.com/intale/tchess/pkg/piece"
)

func main() {
	kindFlag := flag.String("kind", "N", "piece kind letter to chart (P,N,B,R,Q,K)")
	colorFlag := flag.String("color", "w", "piece color (w or b)")
	outFlag := flag.String("out", "heatmap.html", "output HTML file path")
	flag.Parse()

	kind := piece.KindFromString(*kindFlag)
	color := piece.White
	if *colorFlag == "b" {
		color = piece.Black
	}

	hm := heatmap.PeSTO{}

	files := make([]string, 8)
	for x := 0; x < 8; x++ {
		files[x] = string(rune('a' + x))
	}

	data := make([]opts.HeatMapData, 0, 64)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := hm.Value(kind, color, geometry.Point{X: x, Y: y})
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, v}})
		}
	}

	chart := charts.NewHeatMap()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s%s positional heat", color, kind)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: files}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: []string{"1", "2", "3", "4", "5", "6", "7", "8"}}),
		charts.WithVisualMapOpts(opts.VisualMap{Calculable: true, Min: -180, Max: 180}),
	)
	chart.AddSeries("heat", data)

	f, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("heatmap: wrote %s\n", *outFlag)
}
