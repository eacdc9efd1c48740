// Package templates provides the per-tag renderers and the shared style
// assembly helpers they are built on.
package templates

import (
	"html"
	"strings"
)

type pair struct {
	name  string
	value string
}

// StyleBuilder accumulates the resolved output for one tag instance: CSS
// declarations, wrapper classes, and the persisted data attributes that make
// the transformation invertible. Declarations keep insertion order so output
// is deterministic.
type StyleBuilder struct {
	decls   []pair
	datas   []pair
	classes []string
}

// NewStyleBuilder starts a builder with the stable data-type identifier.
func NewStyleBuilder(kind string) *StyleBuilder {
	b := &StyleBuilder{}
	b.Data("type", kind)
	return b
}

// Style records a CSS declaration. Empty values are dropped so callers can
// pass resolution results straight through.
func (b *StyleBuilder) Style(prop, value string) {
	if value == "" {
		return
	}
	b.decls = append(b.decls, pair{prop, value})
}

// Data persists an input attribute for round-trip extraction. The name is
// recorded without the data- prefix. Data attributes store the original
// input value (preset key, styleguide id), never the resolved CSS value.
func (b *StyleBuilder) Data(name, value string) {
	b.datas = append(b.datas, pair{name, value})
}

// Class adds a wrapper class.
func (b *StyleBuilder) Class(c string) {
	if c == "" {
		return
	}
	b.classes = append(b.classes, c)
}

// StyleAttr renders the accumulated declarations as a style attribute value.
func (b *StyleBuilder) StyleAttr() string {
	if len(b.decls) == 0 {
		return ""
	}
	parts := make([]string, 0, len(b.decls))
	for _, d := range b.decls {
		parts = append(parts, d.name+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// HasStyle reports whether a declaration exists for prop.
func (b *StyleBuilder) HasStyle(prop string) bool {
	for _, d := range b.decls {
		if d.name == prop {
			return true
		}
	}
	return false
}

// Attrs renders the full attribute tail for an opening tag: class, style,
// then data attributes in insertion order. The leading space is included
// when anything is emitted.
func (b *StyleBuilder) Attrs() string {
	var sb strings.Builder
	if len(b.classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(html.EscapeString(strings.Join(b.classes, " ")))
		sb.WriteString(`"`)
	}
	if style := b.StyleAttr(); style != "" {
		sb.WriteString(` style="`)
		sb.WriteString(html.EscapeString(style))
		sb.WriteString(`"`)
	}
	for _, d := range b.datas {
		sb.WriteString(" data-")
		sb.WriteString(d.name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(d.value))
		sb.WriteString(`"`)
	}
	return sb.String()
}
