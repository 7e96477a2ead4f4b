// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg builds SVG documents from geometric shape values and
serializes them to strings or files.

A Document owns an ordered list of shapes (Circle, Ellipse, Rect, Line,
Polygon, Path, Polyline, Text, LineChart) and animations. Shapes are
deep-copied when added, so callers keep full ownership of their
originals. Serialization maps user coordinates to SVG native
coordinates through a Layout, which selects the origin corner (allowing
a Cartesian, Y-up frame), a scale factor, and an origin offset.

Line and Polyline can reference reusable Marker groups (arrow heads
etc.) by pointer; markers are not owned by the shapes referencing them
and must outlive any serialization that uses them. The Document
collects all referenced markers into a single defs block and reports a
diagnostic when two different markers share one id.

svg does not parse SVG, rasterize, or do any layout solving; it only
writes markup.
*/
package svg
