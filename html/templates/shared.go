package templates

import (
	"strconv"
	"strings"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/presets"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// TagRenderer is the uniform contract every tag kind implements. The inner
// argument is the instance's captured content: the already-final markup of
// its subtree, snapshotted by the scheduler before the call.
type TagRenderer interface {
	Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string
}

// pxPerRem is the fixed ratio used to normalize absolute gap/spacing values
// to font-relative units.
const pxPerRem = 16

// guideRef reports whether value names a styleguide catalog entry for the
// category. It gates the two mutually exclusive resolution paths: a catalog
// reference defers the property to the generated stylesheet, anything else
// resolves inline.
func guideRef(ctx *models.RenderContext, value, category string) bool {
	return ctx != nil && ctx.Guide != nil && ctx.Guide.IsRef(value, category)
}

// resolveColor maps a palette id to its hex value when a styleguide is
// active, otherwise the value passes through as a raw CSS color.
func resolveColor(ctx *models.RenderContext, value string) string {
	if ctx != nil && ctx.Guide != nil {
		if hex, ok := ctx.Guide.PaletteHex(value); ok {
			return hex
		}
	}
	return value
}

// applySize resolves the size attribute for a text-bearing element with the
// three-tier precedence: styleguide scale, static font-size table, raw value.
func applySize(b *StyleBuilder, ctx *models.RenderContext, inst *models.TagInstance, element, defPreset string) {
	v, ok := inst.Attr("size")
	if ok && v != "" {
		b.Data("size", v)
	} else {
		v = defPreset
	}
	if v == "" {
		return
	}
	if ctx != nil && ctx.Guide != nil {
		if px := ctx.Guide.ResolveSize(v, element); px != "" {
			b.Style("font-size", px)
			return
		}
	}
	b.Style("font-size", presets.Resolve(v, presets.FontSizes))
}

// applyWeight resolves font-weight, preferring an explicit attribute, then
// the styleguide typography weight for the element type, then the default.
func applyWeight(b *StyleBuilder, ctx *models.RenderContext, inst *models.TagInstance, element, def string) {
	v, ok := inst.Attr("weight")
	if ok && v != "" {
		b.Data("weight", v)
	} else {
		v = typographyWeight(ctx, element)
		if v == "" {
			v = def
		}
	}
	if v == "" {
		return
	}
	b.Style("font-weight", presets.Resolve(v, presets.FontWeights))
}

func typographyWeight(ctx *models.RenderContext, element string) string {
	if ctx == nil || ctx.Guide == nil {
		return ""
	}
	ty := ctx.Guide.Typography()
	if ty == nil {
		return ""
	}
	switch element {
	case styleguide.ElementHeadline:
		return ty.HeadlineWeight
	case styleguide.ElementSubheadline:
		return ty.SubheadlineWeight
	case styleguide.ElementParagraph:
		return ty.ContentWeight
	}
	return ""
}

// applyFont resolves font-family from the font attribute or the styleguide
// typography for the element type, recording the family on the session's
// font memo for deduplicated asset loading.
func applyFont(b *StyleBuilder, ctx *models.RenderContext, inst *models.TagInstance, element string) {
	v, ok := inst.Attr("font")
	if ok && v != "" {
		b.Data("font", v)
	} else {
		v = typographyFont(ctx, element)
	}
	if v == "" {
		return
	}
	b.Style("font-family", "'"+v+"'")
	if ctx != nil {
		ctx.NoteFont(v)
	}
}

func typographyFont(ctx *models.RenderContext, element string) string {
	if ctx == nil || ctx.Guide == nil {
		return ""
	}
	ty := ctx.Guide.Typography()
	if ty == nil {
		return ""
	}
	switch element {
	case styleguide.ElementHeadline:
		return ty.HeadlineFont
	case styleguide.ElementSubheadline:
		return ty.SubheadlineFont
	case styleguide.ElementParagraph:
		return ty.ContentFont
	}
	return ""
}

// applyColor emits an inline color only when the attribute was explicitly
// present, with a forced-priority marker and the persisted explicitness flag
// the paint cascade honors. Absent colors stay unstyled so an ancestor paint
// theme can supply one.
func applyColor(b *StyleBuilder, ctx *models.RenderContext, inst *models.TagInstance) {
	v, ok := inst.Attr("color")
	if !ok || v == "" {
		return
	}
	b.Data("color", v)
	b.Data("color-explicit", "true")
	b.Style("color", resolveColor(ctx, v)+" !important")
}

// applyPreset resolves one attribute through a preset table with raw
// passthrough, persisting the input value.
func applyPreset(b *StyleBuilder, inst *models.TagInstance, attrName, cssProp string, table presets.Table, def string) {
	v, ok := inst.Attr(attrName)
	if ok && v != "" {
		b.Data(attrName, v)
	} else {
		v = def
	}
	if v == "" {
		return
	}
	b.Style(cssProp, presets.Resolve(v, table))
}

// applyCatalog resolves an attribute that may name a styleguide catalog
// entry. A catalog reference persists the id and emits no inline CSS for the
// property; the catalog wins silently over any inline interpretation.
func applyCatalog(b *StyleBuilder, ctx *models.RenderContext, inst *models.TagInstance, attrName, category, cssProp string, table presets.Table, def string) {
	v, ok := inst.Attr(attrName)
	if ok && v != "" {
		b.Data(attrName, v)
	} else {
		v = def
	}
	if v == "" {
		return
	}
	if guideRef(ctx, v, category) {
		return
	}
	b.Style(cssProp, presets.Resolve(v, table))
}

// applyBorder resolves the border attribute: catalog reference, thickness
// preset, or a raw border shorthand.
func applyBorder(b *StyleBuilder, ctx *models.RenderContext, inst *models.TagInstance) {
	v, ok := inst.Attr("border")
	if !ok || v == "" {
		return
	}
	b.Data("border", v)
	if guideRef(ctx, v, styleguide.CategoryBorder) {
		return
	}
	if w, ok := presets.BorderWidths[v]; ok {
		b.Style("border-width", w)
		b.Style("border-style", "solid")
		return
	}
	b.Style("border", v)
}

// applyBackground resolves bg/gradient/paint. An element carrying a paint
// theme never receives an inline background from its own attributes: the
// styleguide-driven background wins unconditionally.
func applyBackground(b *StyleBuilder, ctx *models.RenderContext, inst *models.TagInstance) {
	if paint, ok := inst.Attr("paint"); ok && paint != "" {
		b.Data("paint", paint)
		return
	}
	if bg, ok := inst.Attr("bg"); ok && bg != "" {
		b.Data("bg", bg)
		b.Style("background-color", resolveColor(ctx, bg))
	}
	if g, ok := inst.Attr("gradient"); ok && g != "" {
		b.Data("gradient", g)
		b.Style("background-image", "linear-gradient("+g+")")
	}
}

// applyGap normalizes a gap/spacing attribute onto cssProp. Absolute px
// values convert to rem at the fixed 16px ratio; anything else passes
// through. When the attribute is unset the component's rem default applies.
func applyGap(b *StyleBuilder, inst *models.TagInstance, attrName, cssProp string, defRem float64) {
	v, ok := inst.Attr(attrName)
	if !ok || v == "" {
		if defRem > 0 {
			b.Style(cssProp, formatRem(defRem))
		}
		return
	}
	b.Data(attrName, v)
	b.Style(cssProp, NormalizeGap(v))
}

// NormalizeGap converts an absolute px length to rem; non-px values pass
// through verbatim.
func NormalizeGap(v string) string {
	if !strings.HasSuffix(v, "px") {
		return v
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return v
	}
	return formatRem(n / pxPerRem)
}

func formatRem(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "rem"
}

// applyAlign sets text-align when the attribute is present or a default is
// given.
func applyAlign(b *StyleBuilder, inst *models.TagInstance, def string) {
	v := inst.AttrOr("align", def)
	if v == "" {
		return
	}
	if _, ok := inst.Attr("align"); ok {
		b.Data("align", v)
	}
	b.Style("text-align", v)
}

// needsClipWrap reports whether the instance combines an inline (non-catalog)
// radius with an inline shadow. Image-like renderers then add a clipping
// layer so the shadow silhouette follows the rounded corner instead of the
// unclipped rectangular bounds.
func needsClipWrap(ctx *models.RenderContext, inst *models.TagInstance) bool {
	radius, rOK := inst.Attr("radius")
	shadow, sOK := inst.Attr("shadow")
	rInline := rOK && radius != "" && !guideRef(ctx, radius, styleguide.CategoryCorner)
	sInline := sOK && shadow != "" && !guideRef(ctx, shadow, styleguide.CategoryShadow)
	return rInline && sInline
}
