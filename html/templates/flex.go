// Package templates provides the t-flex renderer.
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
)

// FlexRenderer emits a flex wrapper around its captured content.
type FlexRenderer struct{}

// NewFlexRenderer creates the t-flex renderer.
func NewFlexRenderer() *FlexRenderer {
	return &FlexRenderer{}
}

// Render assembles one flex instance.
func (r *FlexRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagFlex)
	b.Style("display", "flex")
	dir := inst.AttrOr("direction", "row")
	if v, ok := inst.Attr("direction"); ok && v != "" {
		b.Data("direction", v)
	}
	b.Style("flex-direction", dir)
	applyGap(b, inst, "gap", "gap", 1)
	if v, ok := inst.Attr("align"); ok && v != "" {
		b.Data("align", v)
		b.Style("align-items", v)
	}
	if v, ok := inst.Attr("justify"); ok && v != "" {
		b.Data("justify", v)
		b.Style("justify-content", v)
	}
	if v, ok := inst.Attr("wrap"); ok && v != "" {
		b.Data("wrap", v)
		b.Style("flex-wrap", v)
	}
	return "<div" + b.Attrs() + ">" + inner + "</div>"
}
