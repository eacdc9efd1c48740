// Package templates provides the t-icon renderer.
package templates

import (
	"html"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
)

// IconRenderer emits the Font-Awesome shell for an icon. Asset loading is an
// external collaborator; this renderer only emits the class reference.
type IconRenderer struct{}

// NewIconRenderer creates the t-icon renderer.
func NewIconRenderer() *IconRenderer {
	return &IconRenderer{}
}

// Render assembles one icon instance.
func (r *IconRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	name := inst.AttrOr("icon", "star")
	b := NewStyleBuilder(models.TagIcon)
	b.Data("role", "icon")
	b.Data("icon", name)
	b.Class("fa")
	b.Class("fa-" + name)
	applyPreset(b, inst, "size", "font-size", presets.FontSizes, "")
	applyColor(b, ctx, inst)

	align, _ := inst.Attr("align")
	if align != "" {
		b.Data("align", align)
	}
	icon := "<i" + b.Attrs() + "></i>"

	if align != "" {
		return `<div style="text-align: ` + html.EscapeString(align) + `">` + icon + `</div>`
	}
	return icon
}
