// Package templates provides the t-section renderer.
package templates

import (
	"html"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
)

// SectionRenderer emits a full-bleed section with an inner width-constrained
// container, the same two-layer wrapper shape panes use. A brand background
// asset resolves to the active URL for its type.
type SectionRenderer struct{}

// NewSectionRenderer creates the t-section renderer.
func NewSectionRenderer() *SectionRenderer {
	return &SectionRenderer{}
}

// Render assembles one section instance around its captured content.
func (r *SectionRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagSection)
	applyBackground(b, ctx, inst)
	if brand, ok := inst.Attr("brand"); ok && brand != "" {
		b.Data("brand", brand)
		if ctx != nil {
			if u := ctx.Brand.Active(brand); u != "" {
				b.Style("background-image", "url('"+u+"')")
				b.Class(presets.Resolve(inst.AttrOr("fit", "cover"), presets.BackgroundStyles))
			}
		}
	}
	padding := "3rem 1rem"
	if v, ok := inst.Attr("padding"); ok && v != "" {
		b.Data("padding", v)
		padding = NormalizeGap(v)
	}
	b.Style("padding", padding)

	width := inst.AttrOr("width", "lg")
	if v, ok := inst.Attr("width"); ok && v != "" {
		b.Data("width", v)
	}
	innerStyle := "max-width: " + presets.Resolve(width, presets.ContainerWidths) + "; margin-left: auto; margin-right: auto"
	content := `<div style="` + html.EscapeString(innerStyle) + `">` + inner + `</div>`
	return "<section" + b.Attrs() + ">" + content + "</section>"
}
