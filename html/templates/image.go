// Package templates provides the t-image renderer.
package templates

import (
	"html"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// ImageRenderer emits an img element, sourcing from an explicit src or the
// active brand asset for a type. When an inline radius and an inline shadow
// are both present the image is wrapped in a clipping layer so the shadow
// silhouette follows the rounded corner; a catalog reference for either
// property leaves clipping to the generated stylesheet.
type ImageRenderer struct{}

// NewImageRenderer creates the t-image renderer.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{}
}

// Render assembles one image instance.
func (r *ImageRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	src := inst.AttrOr("src", "")
	b := NewStyleBuilder(models.TagImage)
	if brand, ok := inst.Attr("brand"); ok && brand != "" {
		b.Data("brand", brand)
		if ctx != nil {
			if u := ctx.Brand.Active(brand); u != "" {
				src = u
			}
		}
	}
	if v, ok := inst.Attr("src"); ok && v != "" {
		b.Data("src", v)
	}
	if v, ok := inst.Attr("width"); ok && v != "" {
		b.Data("width", v)
		b.Style("width", v)
	}
	b.Style("max-width", "100%")

	clip := needsClipWrap(ctx, inst)
	var radius, shadow string
	if clip {
		// Radius and shadow move to the clipping wrapper; only the data
		// attributes stay on the img.
		radius = presets.Resolve(inst.AttrOr("radius", ""), presets.Radii)
		shadow = presets.Resolve(inst.AttrOr("shadow", ""), presets.Shadows)
		b.Data("radius", inst.AttrOr("radius", ""))
		b.Data("shadow", inst.AttrOr("shadow", ""))
	} else {
		applyCatalog(b, ctx, inst, "radius", styleguide.CategoryCorner, "border-radius", presets.Radii, "")
		applyCatalog(b, ctx, inst, "shadow", styleguide.CategoryShadow, "box-shadow", presets.Shadows, "")
	}
	applyBorder(b, ctx, inst)

	align, _ := inst.Attr("align")
	if align != "" {
		b.Data("align", align)
	}

	alt := inst.AttrOr("alt", "")
	img := "<img" + b.Attrs() + ` src="` + html.EscapeString(src) + `" alt="` + html.EscapeString(alt) + `">`

	if clip {
		img = `<div style="` + html.EscapeString("border-radius: "+radius+"; box-shadow: "+shadow+"; overflow: hidden; display: inline-block; max-width: 100%") + `">` + img + `</div>`
	}
	if align != "" {
		img = `<div style="text-align: ` + html.EscapeString(align) + `">` + img + `</div>`
	}
	return img
}
