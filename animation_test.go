// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/mat32/v2"
)

func TestSetAttributeXML(t *testing.T) {
	a := NewSetAttribute("dot", "visibility", "hidden")
	a.Begin = "1s"
	a.Dur = "2s"
	a.Fill = "freeze"
	out := a.XML(DefaultLayout(), nil)
	assert.Equal(t, "\t<set href=\"#dot\" begin=\"1s\" fill=\"freeze\" dur=\"2s\" to=\"hidden\" attributeName=\"visibility\" attributeType=\"CSS\" />\n", out)
}

func TestSetAttributeDiagnostics(t *testing.T) {
	var ds Diagnostics
	a := NewSetAttribute("", "", "x")
	a.XML(DefaultLayout(), &ds)
	assert.Len(t, ds, 2) // missing href and missing attributeName
}

func TestAnimateMotionXML(t *testing.T) {
	a := NewAnimateMotion("dot", []mat32.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}})
	a.Dur = "5s"
	out := a.XML(DefaultLayout(), nil)
	// motion deltas are written untransformed, regardless of layout
	assert.Equal(t, "\t<animateMotion href=\"#dot\" dur=\"5s\" path=\"M0,0 L10,10 L20,0\" />\n", out)
}

func TestAnimateMotionEmptyPathDiagnostic(t *testing.T) {
	var ds Diagnostics
	a := NewAnimateMotion("dot", nil)
	a.XML(DefaultLayout(), &ds)
	assert.Len(t, ds, 1)
}

func TestAnimationClone(t *testing.T) {
	a := NewAnimateMotion("dot", []mat32.Vec2{{X: 1, Y: 1}})
	cp := a.Clone().(*AnimateMotion)
	cp.Points[0] = mat32.V2(9, 9)
	cp.Href = "other"
	assert.Equal(t, mat32.V2(1, 1), a.Points[0])
	assert.Equal(t, "dot", a.Href)
}
