// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"
)

// Fill styles the interior of a surface shape. Construct with NewFill
// or NewFillOpacity; the zero value has opacity 0 and serializes that
// way.
type Fill struct {

	// Color fills the shape; Transparent serializes as fill="none".
	Color Color

	// Opacity is in [0, 1]: 1 fully visible, 0 fully transparent.
	// It is emitted only when below 1, keeping default output compact.
	Opacity float32
}

// NewFill returns a fully opaque fill of the given color.
func NewFill(c Color) Fill {
	return Fill{Color: c, Opacity: 1}
}

// NewFillOpacity returns a fill with the given opacity in [0, 1];
// out-of-range values are reported as a diagnostic and kept.
func NewFillOpacity(c Color, opacity float32) Fill {
	if opacity < 0 || opacity > 1 {
		diagf("svg: NewFillOpacity: opacity=%g is out of range [0,1]", opacity)
	}
	return Fill{Color: c, Opacity: opacity}
}

// DefaultFill returns the default, fully transparent fill.
func DefaultFill() Fill {
	return NewFill(Transparent)
}

// XML returns the fill attribute fragment.
func (fl Fill) XML(ly *Layout) string {
	var sb strings.Builder
	sb.WriteString(xmlAttr("fill", fl.Color.String()))
	if fl.Opacity < 1 {
		sb.WriteString(xmlAttrF("fill-opacity", fl.Opacity))
	}
	return sb.String()
}

// Stroke styles the outline of a shape. A negative Width is the
// sentinel for "no stroke": the entire fragment is omitted, which is
// distinct from a zero-width stroke. Construct with NewStroke or
// NoStroke.
type Stroke struct {

	// Width of the stroke, in user units (scaled by the layout).
	// Negative means no stroke at all.
	Width float32

	// Color of the stroke.
	Color Color

	// NonScaling emits vector-effect="non-scaling-stroke", keeping the
	// rendered width constant under viewport transforms.
	NonScaling bool

	// MiterLimit is emitted only when >= 0; negative means unset.
	MiterLimit float32

	// DashArray is the dash pattern, emitted comma-joined only when
	// non-empty. Values are not layout-scaled.
	DashArray []int

	// DashOffset is always emitted (even zero) once a stroke is
	// present, layout-scaled.
	DashOffset int

	// Opacity is in [0, 1], emitted only when below 1.
	Opacity float32
}

// NoStroke returns the default stroke, which draws nothing.
func NoStroke() Stroke {
	return Stroke{Width: -1, MiterLimit: -1, Opacity: 1}
}

// NewStroke returns an opaque stroke of the given width and color.
func NewStroke(width float32, c Color) Stroke {
	if !validNum(width) {
		nfDiag(nil, "NewStroke")
	}
	return Stroke{Width: width, Color: c, MiterLimit: -1, Opacity: 1}
}

// XML returns the stroke attribute fragment, or an empty string when
// the width is negative (no stroke).
func (st Stroke) XML(ly *Layout) string {
	if st.Width < 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(xmlAttrF("stroke-width", ly.TranslateScale(st.Width)))
	sb.WriteString(xmlAttr("stroke", st.Color.String()))
	if st.MiterLimit >= 0 {
		sb.WriteString(xmlAttrF("stroke-miterlimit", ly.TranslateScale(st.MiterLimit)))
	}
	sb.WriteString(xmlAttrF("stroke-dashoffset", ly.TranslateScale(float32(st.DashOffset))))
	if len(st.DashArray) > 0 {
		strs := make([]string, len(st.DashArray))
		for i, d := range st.DashArray {
			strs[i] = fmt.Sprintf("%d", d)
		}
		sb.WriteString(xmlAttr("stroke-dasharray", strings.Join(strs, ",")))
	}
	if st.Opacity < 1 {
		sb.WriteString(xmlAttrF("stroke-opacity", st.Opacity))
	}
	if st.NonScaling {
		sb.WriteString(xmlAttr("vector-effect", "non-scaling-stroke"))
	}
	return sb.String()
}

// Font styles Text shapes.
type Font struct {

	// Size in user units, scaled by the layout on output.
	Size float32

	// Family is the font-family attribute value.
	Family string
}

// DefaultFont returns the default font: size 12, Verdana.
func DefaultFont() Font {
	return Font{Size: 12, Family: "Verdana"}
}

// XML returns the font attribute fragment.
func (fn Font) XML(ly *Layout) string {
	return xmlAttrF("font-size", ly.TranslateScale(fn.Size)) + xmlAttr("font-family", fn.Family)
}
