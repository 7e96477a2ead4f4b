// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"image/color"
	"math/rand"

	"goki.dev/colors"
)

// Color is an SVG paint value: either an opaque RGB color or the
// literal "none". The zero value is none. Alpha here is only the
// present/none flag; partial transparency is expressed through the
// Fill and Stroke opacity values instead.
type Color struct {
	color.RGBA
}

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{colors.FromRGB(r, g, b)}
}

// RandomColor returns a uniformly random opaque color drawn from rnd.
// Passing an explicitly seeded source keeps output reproducible.
func RandomColor(rnd *rand.Rand) Color {
	return RGB(uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)))
}

// The named palette.
var (
	Transparent = Color{}
	Aqua        = RGB(0, 255, 255)
	Black       = RGB(0, 0, 0)
	Gray        = RGB(127, 127, 127)
	Blue        = RGB(0, 0, 255)
	Brown       = RGB(165, 42, 42)
	Cyan        = RGB(0, 255, 255)
	Fuchsia     = RGB(255, 0, 255)
	Green       = RGB(0, 128, 0)
	Lime        = RGB(0, 255, 0)
	Magenta     = RGB(255, 0, 255)
	Orange      = RGB(255, 165, 0)
	Purple      = RGB(128, 0, 128)
	Red         = RGB(255, 0, 0)
	Silver      = RGB(192, 192, 192)
	White       = RGB(255, 255, 255)
	Yellow      = RGB(255, 255, 0)
)

// String returns the SVG attribute value for the color: the none
// keyword for transparent, an rgb() triple otherwise.
func (c Color) String() string {
	if c.A == 0 {
		return "none"
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
