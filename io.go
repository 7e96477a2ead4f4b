// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"goki.dev/grr"
)

// Version information, emitted in the document preamble.
const (
	LibraryName    = "svg-writer"
	LibraryVersion = "1.0.0"
	SVGVersion     = "1.1"
)

// Diagnostics collects the non-fatal problems encountered while
// serializing document content: non-finite coordinates, out-of-range
// opacities, marker id collisions, animations missing recommended
// fields. Entries are logged as they are added, so a nil *Diagnostics
// still reports; serialization always continues, preferring a
// best-effort renderable document over aborting.
type Diagnostics []error

// Addf formats, logs, and records a diagnostic.
func (ds *Diagnostics) Addf(format string, args ...any) {
	err := fmt.Errorf(format, args...)
	grr.Log(err)
	if ds != nil {
		*ds = append(*ds, err)
	}
}

// diagf logs a diagnostic outside of any serialization, for problems
// detected at construction time.
func diagf(format string, args ...any) {
	(*Diagnostics)(nil).Addf(format, args...)
}

// xmlAttr returns one XML attribute with the trailing separator space
// that the element writers rely on.
func xmlAttr(name, value string) string {
	return name + `="` + value + `" `
}

// xmlAttrF formats a float attribute with %g, the shortest exact
// representation, matching the rest of the output contract.
func xmlAttrF(name string, v float32) string {
	return xmlAttr(name, fmt.Sprintf("%g", v))
}

// xmlAttrUnit is xmlAttrF with a unit suffix inside the value.
func xmlAttrUnit(name string, v float32, unit string) string {
	return xmlAttr(name, fmt.Sprintf("%g%s", v, unit))
}

// elemStart opens an element, leaving it ready for attributes.
func elemStart(name string) string {
	return "\t<" + name + " "
}

// elemStartSingle opens an element that takes no attributes.
func elemStartSingle(name string) string {
	return "\t<" + name + ">\n"
}

func elemEnd(name string) string {
	return "</" + name + ">\n"
}

// emptyElemEnd closes a self-contained element.
const emptyElemEnd = "/>\n"
