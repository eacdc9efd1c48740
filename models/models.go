// Package models provides the data structures shared by the tag-expansion
// pipeline: parsed tag instances, the per-session render context, and the
// externally supplied styleguide and brand-asset payloads.
package models

// TagChild is one ordered piece of a tag instance's content: either raw
// markup carried through verbatim, or a nested tag instance.
type TagChild struct {
	Raw string
	Tag *TagInstance
}

// TagInstance represents one occurrence of a t-* tag in the source markup.
// Attribute presence is tracked by map membership: an attribute written with
// an empty value is present-but-empty, which several resolution rules treat
// differently from an absent attribute.
type TagInstance struct {
	ID       string
	Kind     string
	Attrs    map[string]string
	Children []*TagChild

	// Rendered guards against double resolution; Output holds the final
	// markup once the instance has been resolved.
	Rendered bool
	Output   string
}

// Attr returns the attribute value and whether the attribute was present on
// the instance at all.
func (ti *TagInstance) Attr(name string) (string, bool) {
	if ti.Attrs == nil {
		return "", false
	}
	v, ok := ti.Attrs[name]
	return v, ok
}

// AttrOr returns the attribute value, or def when the attribute is absent.
// A present-but-empty attribute resolves to def as well; callers that need
// the presence distinction use Attr directly.
func (ti *TagInstance) AttrOr(name, def string) string {
	if v, ok := ti.Attr(name); ok && v != "" {
		return v
	}
	return def
}

// GuideResolver is the styleguide query surface the renderers depend on.
// The concrete implementation lives in the styleguide package; a resolver is
// always non-nil on a render context, with the no-styleguide case answering
// Active() == false so every lookup degrades to preset-table resolution.
type GuideResolver interface {
	// Active reports whether a styleguide was successfully loaded for this
	// session.
	Active() bool

	// IsRef reports whether value names an entry in the catalog for the
	// given category (shadow|border|corner|button|paint).
	IsRef(value, category string) bool

	// PaletteHex looks up a palette color id, reporting whether it exists.
	PaletteHex(id string) (string, bool)

	// ColorHex resolves a palette color id, falling back to #000000 when
	// the id is unknown. It never fails.
	ColorHex(id string) string

	// Theme returns the paint theme for an id.
	Theme(id string) (PaintTheme, bool)

	// ResolveSize resolves a font-size preset against the typographic
	// scale for an element type (headline|subheadline|paragraph). It
	// returns "" when no styleguide is active or the preset is unknown,
	// which sends the caller on to the static preset table.
	ResolveSize(preset, element string) string

	// Typography returns the styleguide typography block, or nil.
	Typography() *Typography
}

// RenderContext carries the session-scoped state for one rendering run.
// It is created at pipeline start and discarded when the run completes.
type RenderContext struct {
	SessionID string
	Guide     GuideResolver
	Brand     BrandAssets

	// Fonts is the ordered set of font families the rendered page needs
	// loaded, deduplicated through the loadedFonts memo.
	Fonts       []string
	loadedFonts map[string]struct{}
}

// NoteFont records a font family for the session, ignoring duplicates.
func (ctx *RenderContext) NoteFont(family string) {
	if family == "" {
		return
	}
	if ctx.loadedFonts == nil {
		ctx.loadedFonts = make(map[string]struct{})
	}
	if _, seen := ctx.loadedFonts[family]; seen {
		return
	}
	ctx.loadedFonts[family] = struct{}{}
	ctx.Fonts = append(ctx.Fonts, family)
}

// BrandAssets maps an asset-type key (logo, logo_light, logo_dark,
// background, pattern, icon, product_image) to an ordered URL list. The
// active asset for a type is the first element.
type BrandAssets map[string][]string

// Active returns the active asset URL for a type, or "".
func (ba BrandAssets) Active(assetType string) string {
	if urls, ok := ba[assetType]; ok && len(urls) > 0 {
		return urls[0]
	}
	return ""
}
