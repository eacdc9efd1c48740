// Package templates provides the t-video renderer.
package templates

import (
	"html"
	"strings"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// VideoRenderer emits the embed shell for a YouTube video. The iframe wiring
// is an external collaborator; the shell carries the video id and aspect
// ratio as data attributes. The clip-layer rule matches t-image.
type VideoRenderer struct{}

// NewVideoRenderer creates the t-video renderer.
func NewVideoRenderer() *VideoRenderer {
	return &VideoRenderer{}
}

// Render assembles one video instance.
func (r *VideoRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagVideo)
	if id, ok := inst.Attr("id"); ok && id != "" {
		b.Data("id", id)
	}
	ratio := inst.AttrOr("ratio", "16/9")
	if v, ok := inst.Attr("ratio"); ok && v != "" {
		b.Data("ratio", v)
	}
	b.Style("aspect-ratio", strings.ReplaceAll(ratio, ":", "/"))
	if v, ok := inst.Attr("width"); ok && v != "" {
		b.Data("width", v)
		b.Style("width", v)
	} else {
		b.Style("width", "100%")
	}
	b.Style("background-color", "#000000")

	clip := needsClipWrap(ctx, inst)
	var radius, shadow string
	if clip {
		radius = presets.Resolve(inst.AttrOr("radius", ""), presets.Radii)
		shadow = presets.Resolve(inst.AttrOr("shadow", ""), presets.Shadows)
		b.Data("radius", inst.AttrOr("radius", ""))
		b.Data("shadow", inst.AttrOr("shadow", ""))
	} else {
		applyCatalog(b, ctx, inst, "radius", styleguide.CategoryCorner, "border-radius", presets.Radii, "")
		applyCatalog(b, ctx, inst, "shadow", styleguide.CategoryShadow, "box-shadow", presets.Shadows, "")
	}
	applyBorder(b, ctx, inst)

	shell := "<div" + b.Attrs() + ">" + inner + "</div>"
	if clip {
		shell = `<div style="` + html.EscapeString("border-radius: "+radius+"; box-shadow: "+shadow+"; overflow: hidden") + `">` + shell + `</div>`
	}
	return shell
}
