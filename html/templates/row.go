// Package templates provides the t-row renderer.
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
)

// RowRenderer emits a centered, width-constrained flex row.
type RowRenderer struct{}

// NewRowRenderer creates the t-row renderer.
func NewRowRenderer() *RowRenderer {
	return &RowRenderer{}
}

// Render assembles one row instance around its captured content.
func (r *RowRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagRow)
	b.Style("display", "flex")
	b.Style("flex-wrap", "wrap")
	applyPreset(b, inst, "width", "max-width", presets.RowWidths, "wide")
	b.Style("margin-left", "auto")
	b.Style("margin-right", "auto")
	applyGap(b, inst, "gap", "gap", 1.5)
	applyBackground(b, ctx, inst)
	applyGap(b, inst, "padding", "padding", 0)
	applyAlign(b, inst, "")
	return "<div" + b.Attrs() + ">" + inner + "</div>"
}
