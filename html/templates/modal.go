// Package templates provides the t-modal renderer.
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// ModalRenderer emits a hidden overlay plus the modal box. Open/close wiring
// is external; the overlay is keyed on data-type.
type ModalRenderer struct{}

// NewModalRenderer creates the t-modal renderer.
func NewModalRenderer() *ModalRenderer {
	return &ModalRenderer{}
}

// Render assembles one modal instance around its captured content.
func (r *ModalRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagModal)
	if v, ok := inst.Attr("width"); ok && v != "" {
		b.Data("width", v)
		b.Style("max-width", presets.Resolve(v, presets.ContainerWidths))
	} else {
		b.Style("max-width", "28rem")
	}
	b.Style("width", "100%")
	applyBackground(b, ctx, inst)
	if !b.HasStyle("background-color") {
		if _, hasPaint := inst.Attr("paint"); !hasPaint {
			b.Style("background-color", "#ffffff")
		}
	}
	applyGap(b, inst, "padding", "padding", 1.5)
	applyCatalog(b, ctx, inst, "radius", styleguide.CategoryCorner, "border-radius", presets.Radii, "lg")
	applyCatalog(b, ctx, inst, "shadow", styleguide.CategoryShadow, "box-shadow", presets.Shadows, "2xl")

	overlay := `<div style="display: none; position: fixed; inset: 0; z-index: 50; background-color: rgba(0,0,0,0.5); align-items: center; justify-content: center"` +
		` data-overlay="` + models.TagModal + `">`
	return overlay + "<div" + b.Attrs() + ">" + inner + "</div></div>"
}
