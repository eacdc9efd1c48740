// Package templates provides the t-column and t-innercolumn renderers.
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// ColumnRenderer handles the two column container kinds; they share the
// full surface (width, background/paint, padding, gap, radius, shadow,
// border, align).
type ColumnRenderer struct {
	kind string
}

// NewColumnRenderer creates the t-column renderer.
func NewColumnRenderer() *ColumnRenderer {
	return &ColumnRenderer{kind: models.TagColumn}
}

// NewInnerColumnRenderer creates the t-innercolumn renderer.
func NewInnerColumnRenderer() *ColumnRenderer {
	return &ColumnRenderer{kind: models.TagInnerColumn}
}

// Render assembles one column instance around its captured content.
func (r *ColumnRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(r.kind)
	b.Style("display", "flex")
	b.Style("flex-direction", "column")
	if v, ok := inst.Attr("width"); ok && v != "" {
		b.Data("width", v)
		b.Style("flex-basis", v)
	} else {
		b.Style("flex", "1 1 0")
	}
	applyBackground(b, ctx, inst)
	applyGap(b, inst, "padding", "padding", 0)
	applyGap(b, inst, "gap", "gap", 1)
	applyCatalog(b, ctx, inst, "radius", styleguide.CategoryCorner, "border-radius", presets.Radii, "")
	applyCatalog(b, ctx, inst, "shadow", styleguide.CategoryShadow, "box-shadow", presets.Shadows, "")
	applyBorder(b, ctx, inst)
	applyAlign(b, inst, "")
	return "<div" + b.Attrs() + ">" + inner + "</div>"
}
