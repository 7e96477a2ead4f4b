// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/mat32/v2"
)

func TestLineChartEmpty(t *testing.T) {
	ch := NewLineChart(mat32.V2(10, 10))
	assert.Equal(t, "", ch.XML(DefaultLayout(), nil))

	// empty polylines are skipped on add, so the chart stays empty
	ch.Add(NewPolyline(nil, NewStroke(1, Black)))
	assert.Equal(t, "", ch.XML(DefaultLayout(), nil))
}

func TestLineChartXML(t *testing.T) {
	data := NewPolyline([]mat32.Vec2{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 200, Y: 30}}, NewStroke(1, Red))
	ch := NewLineChart(mat32.V2(10, 10))
	ch.Add(data)
	out := ch.XML(IdentityLayout(), nil)

	// data polyline, margin-shifted
	assert.Contains(t, out, `points="10,10 110,60 210,40 " `)
	// one vertex dot per data point, radius = data height / 30
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.Contains(t, out, `r="1.6666666" `)
	// L-shaped axis sized 10% beyond the data extent
	assert.Contains(t, out, `points="10,65 10,10 230,10 " `)
	assert.Contains(t, out, Purple.String())
}

func TestLineChartAddClones(t *testing.T) {
	data := NewPolyline([]mat32.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}}, NewStroke(1, Black))
	ch := NewLineChart(mat32.Vec2{})
	ch.Add(data)
	before := ch.XML(IdentityLayout(), nil)
	data.Offset(mat32.V2(5, 5))
	assert.Equal(t, before, ch.XML(IdentityLayout(), nil))
}

func TestLineChartClone(t *testing.T) {
	data := NewPolyline([]mat32.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}}, NewStroke(1, Black))
	ch := NewLineChart(mat32.V2(1, 1))
	ch.Add(data)
	cp := ch.Clone().(*LineChart)
	cp.Offset(mat32.V2(5, 5))
	assert.Equal(t, mat32.V2(1, 1), ch.Margin)
	assert.Equal(t, cp.XML(IdentityLayout(), nil), func() string {
		moved := ch.Clone().(*LineChart)
		moved.Margin = mat32.V2(6, 6)
		return moved.XML(IdentityLayout(), nil)
	}())
}
