// Package templates provides the text tag renderers (headline, subheadline,
// paragraph).
package templates

import (
	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// TextRenderer handles the three text-bearing tag kinds. They share one
// attribute surface and differ only in output tag, scale element type,
// cascade role and defaults.
type TextRenderer struct {
	kind    string
	tag     string
	element string
	role    string
	defSize string
	defWt   string
	defGap  float64
}

// NewHeadlineRenderer creates the t-headline renderer.
func NewHeadlineRenderer() *TextRenderer {
	return &TextRenderer{
		kind:    models.TagHeadline,
		tag:     "h2",
		element: styleguide.ElementHeadline,
		role:    "headline",
		defSize: "5xl",
		defWt:   "bold",
		defGap:  1,
	}
}

// NewSubheadlineRenderer creates the t-subheadline renderer.
func NewSubheadlineRenderer() *TextRenderer {
	return &TextRenderer{
		kind:    models.TagSubheadline,
		tag:     "h3",
		element: styleguide.ElementSubheadline,
		role:    "subheadline",
		defSize: "2xl",
		defWt:   "normal",
		defGap:  0.75,
	}
}

// NewParagraphRenderer creates the t-paragraph renderer.
func NewParagraphRenderer() *TextRenderer {
	return &TextRenderer{
		kind:    models.TagParagraph,
		tag:     "p",
		element: styleguide.ElementParagraph,
		role:    "content",
		defSize: "m",
		defWt:   "normal",
		defGap:  0.75,
	}
}

// Render assembles the resolved markup for one text instance.
func (r *TextRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(r.kind)
	b.Data("role", r.role)
	applySize(b, ctx, inst, r.element, r.defSize)
	applyWeight(b, ctx, inst, r.element, r.defWt)
	applyColor(b, ctx, inst)
	applyAlign(b, inst, "")
	applyPreset(b, inst, "leading", "line-height", presets.LineHeights, "")
	applyPreset(b, inst, "tracking", "letter-spacing", presets.Trackings, "")
	if v, ok := inst.Attr("transform"); ok && v != "" {
		b.Data("transform", v)
		b.Style("text-transform", v)
	}
	applyFont(b, ctx, inst, r.element)
	applyGap(b, inst, "spacing", "margin-bottom", r.defGap)
	return "<" + r.tag + b.Attrs() + ">" + inner + "</" + r.tag + ">"
}
