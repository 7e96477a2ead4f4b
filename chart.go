// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"goki.dev/mat32/v2"
)

// LineChart is a composite shape built strictly atop the primitives:
// one or more data polylines plus an L-shaped axis sized 10% larger
// than the data extent, with each data vertex rendered as a small
// black circle. Data coordinates are assumed non-negative, growing
// right and up from the chart origin; Margin shifts the whole chart
// within the document.
type LineChart struct {
	NodeBase

	// Margin shifts the chart contents away from the user origin.
	Margin mat32.Vec2

	// AxisStroke styles the axis polyline.
	AxisStroke Stroke

	polylines []*Polyline
}

// NewLineChart returns an empty chart with the given margin and a
// thin purple axis.
func NewLineChart(margin mat32.Vec2) *LineChart {
	if !validVec(margin) {
		nfDiag(nil, "NewLineChart")
	}
	return &LineChart{Margin: margin, AxisStroke: NewStroke(0.5, Purple)}
}

// Add appends clones of the given data polylines, skipping empty
// ones, returning the chart for chaining.
func (ch *LineChart) Add(polylines ...*Polyline) *LineChart {
	for _, pl := range polylines {
		if len(pl.Points) == 0 {
			continue
		}
		ch.polylines = append(ch.polylines, pl.Clone().(*Polyline))
	}
	return ch
}

func (ch *LineChart) SVGName() string { return "polyline" }

// bounds returns the data extent (max minus min over all polyline
// points), zero when there is no data.
func (ch *LineChart) bounds() mat32.Vec2 {
	var min, max mat32.Vec2
	first := true
	for _, pl := range ch.polylines {
		for _, p := range pl.Points {
			if first {
				min, max = p, p
				first = false
				continue
			}
			min.SetMin(p)
			max.SetMax(p)
		}
	}
	return max.Sub(min)
}

// XML serializes the chart: the data polylines with their vertex
// circles, then the axis. A chart with no data yields an empty string
// and no axis.
func (ch *LineChart) XML(ly *Layout, ds *Diagnostics) string {
	if len(ch.polylines) == 0 {
		return ""
	}
	dims := ch.bounds()
	var sb strings.Builder
	for _, pl := range ch.polylines {
		cp := pl.Clone()
		cp.Offset(ch.Margin)
		sb.WriteString(cp.XML(ly, ds))
		for _, p := range pl.Points {
			dot := NewCircle(p.Add(ch.Margin), dims.Y/15, NewFill(Black), NoStroke())
			sb.WriteString(dot.XML(ly, ds))
		}
	}
	w := dims.X * 1.1
	h := dims.Y * 1.1
	axis := NewPolyline([]mat32.Vec2{
		mat32.V2(ch.Margin.X, ch.Margin.Y+h),
		mat32.V2(ch.Margin.X, ch.Margin.Y),
		mat32.V2(ch.Margin.X+w, ch.Margin.Y),
	}, ch.AxisStroke)
	sb.WriteString(axis.XML(ly, ds))
	return sb.String()
}

func (ch *LineChart) Offset(delta mat32.Vec2) {
	if !validVec(delta) {
		nfDiag(nil, "LineChart.Offset")
	}
	ch.Margin.SetAdd(delta)
}

func (ch *LineChart) Clone() Node {
	cp := *ch
	cp.cloneBase()
	cp.AxisStroke.DashArray = append([]int(nil), ch.AxisStroke.DashArray...)
	cp.polylines = make([]*Polyline, len(ch.polylines))
	for i, pl := range ch.polylines {
		cp.polylines[i] = pl.Clone().(*Polyline)
	}
	return &cp
}
