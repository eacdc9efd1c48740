// Package templates provides the t-page renderer.
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
)

// PageRenderer emits the outermost page wrapper. It is the last kind in the
// processing order, so its captured content is the fully resolved document.
type PageRenderer struct{}

// NewPageRenderer creates the t-page renderer.
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{}
}

// Render assembles the page wrapper.
func (r *PageRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagPage)
	applyBackground(b, ctx, inst)
	if v, ok := inst.Attr("font"); ok && v != "" {
		b.Data("font", v)
		b.Style("font-family", "'"+v+"'")
		if ctx != nil {
			ctx.NoteFont(v)
		}
	}
	b.Style("min-height", "100vh")
	return "<div" + b.Attrs() + ">" + inner + "</div>"
}
