// Package templates provides the t-button renderer.
package templates

import (
	"html"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// ButtonRenderer emits an anchor styled as a button. A button catalog
// reference takes the whole visual surface (background, color, radius,
// padding) to the generated stylesheet; the inline attributes for those
// properties are silently dropped.
type ButtonRenderer struct{}

// NewButtonRenderer creates the t-button renderer.
func NewButtonRenderer() *ButtonRenderer {
	return &ButtonRenderer{}
}

// Render assembles one button instance.
func (r *ButtonRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagButton)
	b.Data("role", "link")
	b.Style("display", "inline-block")
	b.Style("text-decoration", "none")
	b.Style("cursor", "pointer")

	catalog := false
	if v, ok := inst.Attr("button"); ok && v != "" {
		b.Data("button", v)
		catalog = guideRef(ctx, v, styleguide.CategoryButton)
	}

	applyPreset(b, inst, "size", "font-size", presets.FontSizes, "m")
	applyWeight(b, ctx, inst, styleguide.ElementParagraph, "semibold")
	if !catalog {
		applyColor(b, ctx, inst)
		if bg, ok := inst.Attr("bg"); ok && bg != "" {
			b.Data("bg", bg)
			b.Style("background-color", resolveColor(ctx, bg))
		}
		applyCatalog(b, ctx, inst, "radius", styleguide.CategoryCorner, "border-radius", presets.Radii, "md")
		b.Style("padding", "0.75rem 1.5rem")
	} else {
		// The explicitness flag still persists so the paint cascade
		// leaves catalog-styled buttons alone.
		if v, ok := inst.Attr("color"); ok && v != "" {
			b.Data("color", v)
			b.Data("color-explicit", "true")
		}
	}
	applyCatalog(b, ctx, inst, "shadow", styleguide.CategoryShadow, "box-shadow", presets.Shadows, "")
	applyBorder(b, ctx, inst)
	if v, ok := inst.Attr("width"); ok && v != "" {
		b.Data("width", v)
		b.Style("width", v)
		b.Style("text-align", "center")
	}

	align, _ := inst.Attr("align")
	if align != "" {
		b.Data("align", align)
	}

	href := inst.AttrOr("href", "#")
	attrs := b.Attrs() + ` href="` + html.EscapeString(href) + `"`
	if t, ok := inst.Attr("target"); ok && t != "" {
		attrs += ` target="` + html.EscapeString(t) + `"`
	}
	btn := "<a" + attrs + ">" + inner + "</a>"
	if align != "" {
		btn = `<div style="text-align: ` + html.EscapeString(align) + `">` + btn + `</div>`
	}
	return btn
}
