// Package templates provides the form field renderers (input, textarea,
// select). Submission wiring is an external collaborator; the renderers emit
// the styled controls and the round-trip data attributes.
package templates

import (
	"html"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// FieldRenderer handles the three form field kinds with one shared style
// surface.
type FieldRenderer struct {
	kind string
}

// NewInputRenderer creates the t-input renderer.
func NewInputRenderer() *FieldRenderer {
	return &FieldRenderer{kind: models.TagInput}
}

// NewTextareaRenderer creates the t-textarea renderer.
func NewTextareaRenderer() *FieldRenderer {
	return &FieldRenderer{kind: models.TagTextarea}
}

// NewSelectRenderer creates the t-select renderer.
func NewSelectRenderer() *FieldRenderer {
	return &FieldRenderer{kind: models.TagSelect}
}

// Render assembles one field instance.
func (r *FieldRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(r.kind)
	b.Style("display", "block")
	b.Style("width", "100%")
	b.Style("padding", "0.5rem 0.75rem")
	applyPreset(b, inst, "size", "font-size", presets.FontSizes, "m")
	applyCatalog(b, ctx, inst, "radius", styleguide.CategoryCorner, "border-radius", presets.Radii, "md")
	if v, ok := inst.Attr("border"); ok && v != "" {
		applyBorder(b, ctx, inst)
	} else {
		b.Style("border", "1px solid #d1d5db")
	}
	if v, ok := inst.Attr("bg"); ok && v != "" {
		b.Data("bg", v)
		b.Style("background-color", resolveColor(ctx, v))
	}
	if v, ok := inst.Attr("color"); ok && v != "" {
		b.Data("color", v)
		b.Style("color", resolveColor(ctx, v))
	}

	var extra string
	if v, ok := inst.Attr("name"); ok && v != "" {
		b.Data("name", v)
		extra += ` name="` + html.EscapeString(v) + `"`
	}
	if v, ok := inst.Attr("placeholder"); ok && v != "" {
		extra += ` placeholder="` + html.EscapeString(v) + `"`
	}
	if v, ok := inst.Attr("required"); ok && v != "false" {
		b.Data("required", "true")
		extra += " required"
	}

	switch r.kind {
	case models.TagTextarea:
		return "<textarea" + b.Attrs() + extra + ">" + inner + "</textarea>"
	case models.TagSelect:
		return "<select" + b.Attrs() + extra + ">" + inner + "</select>"
	default:
		fieldType := inst.AttrOr("type", "text")
		b.Data("field-type", fieldType)
		return "<input" + b.Attrs() + extra + ` type="` + html.EscapeString(fieldType) + `">`
	}
}
