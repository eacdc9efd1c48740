// Package templates provides the t-progress renderer.
package templates

import (
	"html"
	"strconv"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// ProgressRenderer emits a two-layer progress bar: a track and a value fill
// clamped to 0-100.
type ProgressRenderer struct{}

// NewProgressRenderer creates the t-progress renderer.
func NewProgressRenderer() *ProgressRenderer {
	return &ProgressRenderer{}
}

// Render assembles one progress bar instance.
func (r *ProgressRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	value := 0
	if v, ok := inst.Attr("value"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			value = n
		}
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	b := NewStyleBuilder(models.TagProgress)
	b.Data("value", strconv.Itoa(value))
	b.Style("overflow", "hidden")
	if v, ok := inst.Attr("bg"); ok && v != "" {
		b.Data("bg", v)
		b.Style("background-color", resolveColor(ctx, v))
	} else {
		b.Style("background-color", "#e5e7eb")
	}
	applyCatalog(b, ctx, inst, "radius", styleguide.CategoryCorner, "border-radius", presets.Radii, "full")
	height := "1rem"
	if v, ok := inst.Attr("height"); ok && v != "" {
		b.Data("height", v)
		height = NormalizeGap(v)
	}
	b.Style("height", height)

	fill := "#3b82f6"
	if v, ok := inst.Attr("color"); ok && v != "" {
		b.Data("color", v)
		fill = resolveColor(ctx, v)
	}
	bar := `<div style="` + html.EscapeString("width: "+strconv.Itoa(value)+"%; height: 100%; background-color: "+fill) + `"></div>`
	return "<div" + b.Attrs() + ">" + bar + "</div>"
}
