// Package templates provides the t-divider renderer.
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
)

// DividerRenderer emits a styled horizontal rule.
type DividerRenderer struct{}

// NewDividerRenderer creates the t-divider renderer.
func NewDividerRenderer() *DividerRenderer {
	return &DividerRenderer{}
}

// Render assembles one divider instance.
func (r *DividerRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagDivider)
	b.Style("border", "none")
	applyPreset(b, inst, "thickness", "border-top-width", presets.BorderWidths, "sm")
	b.Style("border-top-style", "solid")
	if v, ok := inst.Attr("color"); ok && v != "" {
		b.Data("color", v)
		b.Style("border-top-color", resolveColor(ctx, v))
	}
	if v, ok := inst.Attr("width"); ok && v != "" {
		b.Data("width", v)
		b.Style("width", v)
	}
	switch inst.AttrOr("align", "center") {
	case "left":
		b.Style("margin-left", "0")
		b.Style("margin-right", "auto")
	case "right":
		b.Style("margin-left", "auto")
		b.Style("margin-right", "0")
	default:
		b.Style("margin-left", "auto")
		b.Style("margin-right", "auto")
	}
	if a, ok := inst.Attr("align"); ok && a != "" {
		b.Data("align", a)
	}
	spacing := "1rem"
	if v, ok := inst.Attr("spacing"); ok && v != "" {
		b.Data("spacing", v)
		spacing = NormalizeGap(v)
	}
	b.Style("margin-top", spacing)
	b.Style("margin-bottom", spacing)
	return "<hr" + b.Attrs() + ">"
}
