// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"goki.dev/grr"
	"goki.dev/ordmap"
)

// Document is a complete SVG drawing: a layout, a set of shapes, and
// optionally animations. Shapes and animations are cloned on add, so a
// document owns its content and later mutation of the originals does
// not affect it.
type Document struct {

	// Id is the optional id attribute of the root svg element.
	Id string

	// Layout maps user coordinates to the output; fixed at creation.
	Layout Layout

	// Diags accumulates the non-fatal problems found while
	// serializing, most recent serialization last.
	Diags Diagnostics

	nodes        []Node
	anims        []Animation
	needsSorting bool
	fileName     string
}

// NewDocument returns an empty document with the given layout, or
// [DefaultLayout] if nil.
func NewDocument(ly *Layout) *Document {
	if ly == nil {
		ly = DefaultLayout()
	}
	return &Document{Layout: *ly}
}

// Add appends clones of the given shapes to the document, returning it
// for chaining.
func (doc *Document) Add(shapes ...Node) *Document {
	for _, sh := range shapes {
		cp := sh.Clone()
		if cp.AsNodeBase().Z != 0 {
			doc.needsSorting = true
		}
		doc.nodes = append(doc.nodes, cp)
	}
	return doc
}

// AddAnimation appends clones of the given animations, returning the
// document for chaining.
func (doc *Document) AddAnimation(anims ...Animation) *Document {
	for _, an := range anims {
		doc.anims = append(doc.anims, an.Clone())
	}
	return doc
}

// IsAnimated reports whether the document contains animations, which
// determines the default file extension on save.
func (doc *Document) IsAnimated() bool {
	return len(doc.anims) > 0
}

// FileName returns the name the document was last saved under, empty
// if never saved.
func (doc *Document) FileName() string {
	return doc.fileName
}

// String returns the complete serialized document.
func (doc *Document) String() string {
	var sb strings.Builder
	doc.writeXML(&sb)
	return sb.String()
}

// WriteXML serializes the document to w.
func (doc *Document) WriteXML(w io.Writer) error {
	if sw, ok := w.(io.StringWriter); ok {
		doc.writeXML(sw)
		return nil
	}
	var sb strings.Builder
	doc.writeXML(&sb)
	_, err := io.WriteString(w, sb.String())
	return grr.Log(err)
}

// SaveXML writes the document to the given file. With autoExt, a
// missing extension is added: .html for animated documents (browsers
// only run SMIL animations from HTML), .svg otherwise.
func (doc *Document) SaveXML(filename string, autoExt bool) error {
	if autoExt && !strings.HasSuffix(filename, ".svg") && !strings.HasSuffix(filename, ".html") {
		if doc.IsAnimated() {
			filename += ".html"
		} else {
			filename += ".svg"
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return grr.Log(err)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	doc.writeXML(bw)
	if err := bw.Flush(); err != nil {
		return grr.Log(err)
	}
	doc.fileName = filename
	return nil
}

func (doc *Document) writeXML(w io.StringWriter) {
	ly := &doc.Layout
	ds := &doc.Diags

	nodes := doc.nodes
	if doc.needsSorting {
		nodes = append([]Node(nil), doc.nodes...)
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].AsNodeBase().Z < nodes[j].AsNodeBase().Z
		})
	}

	w.WriteString(`<?xml version="1.0" standalone="no" ?>` + "\n")
	w.WriteString(fmt.Sprintf("<!-- Generator: %s (https://github.com/CodeFinder2/svg-writer), Version: %s -->\n",
		LibraryName, LibraryVersion))
	w.WriteString(`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">` + "\n")
	w.WriteString("<svg ")
	if doc.Id != "" {
		w.WriteString(xmlAttr("id", doc.Id))
	}
	w.WriteString(xmlAttrUnit("width", ly.Size.X, "px"))
	w.WriteString(xmlAttrUnit("height", ly.Size.Y, "px"))
	w.WriteString(xmlAttr("xmlns", "http://www.w3.org/2000/svg"))
	w.WriteString(xmlAttr("version", SVGVersion))
	w.WriteString(">\n")

	defs := doc.collectMarkers(nodes, ds)
	if defs.Len() > 0 {
		w.WriteString(elemStartSingle("defs"))
		ids := make([]string, 0, defs.Len())
		for _, kv := range defs.Order {
			ids = append(ids, kv.Key)
		}
		sort.Strings(ids)
		for _, id := range ids {
			idx, _ := defs.IdxByKeyTry(id)
			xml, err := defs.ValByIdx(idx).XML(ly, ds)
			if err != nil {
				ds.Addf("svg: %v", err)
				continue
			}
			w.WriteString(xml)
		}
		w.WriteString("\t" + elemEnd("defs"))
	}

	for _, n := range nodes {
		w.WriteString(n.XML(ly, ds))
	}
	for _, a := range doc.anims {
		w.WriteString(a.XML(ly, ds))
	}
	w.WriteString(elemEnd("svg"))
}

// collectMarkers gathers the distinct markers referenced anywhere in
// the node set, keyed by id, first reference winning. Two markers
// sharing an id but drawing different content are a collision: the
// first is kept and the clash is reported naming the offending
// element, because only one definition per id can exist in the output.
func (doc *Document) collectMarkers(nodes []Node, ds *Diagnostics) *ordmap.Map[string, *Marker] {
	om := &ordmap.Map[string, *Marker]{}
	for _, n := range nodes {
		ma, ok := n.(Markerable)
		if !ok {
			continue
		}
		for _, mk := range ma.UsedMarkers() {
			idx, has := om.IdxByKeyTry(mk.Id)
			if !has {
				om.Add(mk.Id, mk)
				continue
			}
			if !om.ValByIdx(idx).ContentEquals(mk) {
				ds.Addf("Marker collision detected for ID=%s within this element: \n%s\nExpect markers not to be rendered correctly.",
					mk.Id, n.XML(&doc.Layout, nil))
			}
		}
	}
	return om
}
