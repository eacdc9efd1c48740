// Package templates provides the t-popup renderer.
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// PopupRenderer emits the hidden shell for a popup-on-media element. The
// open/close trigger wiring is an external collaborator keyed on
// data-trigger.
type PopupRenderer struct{}

// NewPopupRenderer creates the t-popup renderer.
func NewPopupRenderer() *PopupRenderer {
	return &PopupRenderer{}
}

// Render assembles one popup instance.
func (r *PopupRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagPopup)
	if v, ok := inst.Attr("trigger"); ok && v != "" {
		b.Data("trigger", v)
	}
	b.Style("display", "none")
	b.Style("position", "absolute")
	b.Style("z-index", "10")
	b.Style("background-color", "#ffffff")
	if v, ok := inst.Attr("width"); ok && v != "" {
		b.Data("width", v)
		b.Style("width", v)
	}
	applyCatalog(b, ctx, inst, "radius", styleguide.CategoryCorner, "border-radius", presets.Radii, "lg")
	applyCatalog(b, ctx, inst, "shadow", styleguide.CategoryShadow, "box-shadow", presets.Shadows, "xl")
	return "<div" + b.Attrs() + ">" + inner + "</div>"
}
