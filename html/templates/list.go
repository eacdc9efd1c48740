// Package templates provides the t-list renderer.
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// ListRenderer emits an icon-bulleted list shell. The bullet glyphs come
// from the external stylesheet keyed on data-icon; list item content keeps
// the content cascade role.
type ListRenderer struct{}

// NewListRenderer creates the t-list renderer.
func NewListRenderer() *ListRenderer {
	return &ListRenderer{}
}

// Render assembles one list instance.
func (r *ListRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagList)
	b.Data("role", "content")
	if v, ok := inst.Attr("icon"); ok && v != "" {
		b.Data("icon", v)
		b.Style("list-style", "none")
		b.Style("padding-left", "0")
	}
	applySize(b, ctx, inst, styleguide.ElementParagraph, "m")
	applyColor(b, ctx, inst)
	applyGap(b, inst, "spacing", "row-gap", 0.5)
	b.Style("display", "grid")
	return "<ul" + b.Attrs() + ">" + inner + "</ul>"
}
