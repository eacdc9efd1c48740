package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

func inst(kind string, attrs map[string]string) *models.TagInstance {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &models.TagInstance{ID: "test", Kind: kind, Attrs: attrs}
}

func guideCtx(raw string) *models.RenderContext {
	return &models.RenderContext{SessionID: "test", Guide: styleguide.Parse([]byte(raw))}
}

const testGuide = `{
	"colors": [{"id": "ink", "hex": "#111827"}],
	"corners": [{"id": "rounded"}],
	"shadows": [{"id": "card-shadow"}],
	"buttons": [{"id": "cta"}],
	"typography": {
		"baseSize": 16,
		"scaleRatio": 1.25,
		"headlineFont": "Inter",
		"headlineWeight": "black"
	}
}`

func TestParagraphDefaults(t *testing.T) {
	out := NewParagraphRenderer().Render(inst(models.TagParagraph, nil), "hello", nil)
	want := `<p style="font-size: 16px; font-weight: 400; margin-bottom: 0.75rem" data-type="t-paragraph" data-role="content">hello</p>`
	assert.Equal(t, want, out)
}

func TestHeadlineDefaults(t *testing.T) {
	out := NewHeadlineRenderer().Render(inst(models.TagHeadline, nil), "Title", nil)
	want := `<h2 style="font-size: 48px; font-weight: 700; margin-bottom: 1rem" data-type="t-headline" data-role="headline">Title</h2>`
	assert.Equal(t, want, out)
}

func TestHeadlineUsesStyleguideScale(t *testing.T) {
	ctx := guideCtx(testGuide)
	out := NewHeadlineRenderer().Render(inst(models.TagHeadline, nil), "Title", ctx)
	// 16 * 1.25^8 rounds to 95; the static 48px table is bypassed.
	assert.Contains(t, out, "font-size: 95px")
	// Typography defaults flow in without being persisted as data attributes.
	assert.Contains(t, out, "font-weight: 900")
	assert.Contains(t, out, "font-family: &#39;Inter&#39;")
	assert.NotContains(t, out, "data-size")
	assert.NotContains(t, out, "data-weight")
	assert.NotContains(t, out, "data-font")
	assert.Contains(t, ctx.Fonts, "Inter")
}

func TestDefaultsAreNotPersisted(t *testing.T) {
	out := NewParagraphRenderer().Render(inst(models.TagParagraph, nil), "x", nil)
	for _, data := range []string{"data-size", "data-weight", "data-spacing", "data-align", "data-color"} {
		assert.NotContains(t, out, data)
	}
}

func TestExplicitAttributesArePersisted(t *testing.T) {
	out := NewParagraphRenderer().Render(inst(models.TagParagraph, map[string]string{
		"size":    "l",
		"spacing": "24px",
	}), "x", nil)
	assert.Contains(t, out, `data-size="l"`)
	assert.Contains(t, out, `data-spacing="24px"`)
	assert.Contains(t, out, "font-size: 18px")
	assert.Contains(t, out, "margin-bottom: 1.5rem")
}

func TestExplicitColorWinsOverCascade(t *testing.T) {
	ctx := guideCtx(testGuide)
	out := NewParagraphRenderer().Render(inst(models.TagParagraph, map[string]string{
		"color": "ink",
	}), "x", ctx)
	assert.Contains(t, out, "color: #111827 !important")
	assert.Contains(t, out, `data-color="ink"`)
	assert.Contains(t, out, `data-color-explicit="true"`)
}

func TestAbsentColorStaysUnstyled(t *testing.T) {
	out := NewParagraphRenderer().Render(inst(models.TagParagraph, nil), "x", guideCtx(testGuide))
	assert.NotContains(t, out, "color:")
	assert.NotContains(t, out, "data-color-explicit")
}

func TestImageClipWrapper(t *testing.T) {
	out := NewImageRenderer().Render(inst(models.TagImage, map[string]string{
		"src":    "/a.png",
		"radius": "lg",
		"shadow": "xl",
	}), "", nil)
	assert.Contains(t, out, "overflow: hidden")
	assert.Contains(t, out, "border-radius: 8px")
	// Persisted inputs stay on the img, not the wrapper.
	assert.Contains(t, out, `data-radius="lg"`)
	assert.Contains(t, out, `data-shadow="xl"`)
}

func TestImageNoClipWithoutBothProperties(t *testing.T) {
	out := NewImageRenderer().Render(inst(models.TagImage, map[string]string{
		"src":    "/a.png",
		"radius": "lg",
	}), "", nil)
	assert.NotContains(t, out, "overflow: hidden")
	assert.Contains(t, out, "border-radius: 8px")

	out = NewImageRenderer().Render(inst(models.TagImage, map[string]string{
		"src":    "/a.png",
		"shadow": "xl",
	}), "", nil)
	assert.NotContains(t, out, "overflow: hidden")
	assert.Contains(t, out, "box-shadow:")

	out = NewImageRenderer().Render(inst(models.TagImage, map[string]string{"src": "/a.png"}), "", nil)
	assert.NotContains(t, out, "overflow: hidden")
}

func TestImageCatalogRadiusSkipsClipAndInline(t *testing.T) {
	ctx := guideCtx(testGuide)
	out := NewImageRenderer().Render(inst(models.TagImage, map[string]string{
		"src":    "/a.png",
		"radius": "rounded",
		"shadow": "xl",
	}), "", ctx)
	assert.NotContains(t, out, "overflow: hidden", "catalog radius leaves clipping to the stylesheet")
	assert.NotContains(t, out, "border-radius")
	assert.Contains(t, out, `data-radius="rounded"`)
	assert.Contains(t, out, "box-shadow:")
}

func TestAlignPersistsAsDataAttribute(t *testing.T) {
	icon := NewIconRenderer().Render(inst(models.TagIcon, map[string]string{"icon": "star", "align": "center"}), "", nil)
	assert.Contains(t, icon, `data-align="center"`)
	assert.Contains(t, icon, "text-align: center")

	img := NewImageRenderer().Render(inst(models.TagImage, map[string]string{"src": "/a.png", "align": "right"}), "", nil)
	assert.Contains(t, img, `data-align="right"`)

	btn := NewButtonRenderer().Render(inst(models.TagButton, map[string]string{"href": "/go", "align": "center"}), "Go", nil)
	assert.Contains(t, btn, `data-align="center"`)

	// Absent inputs never persist.
	plain := NewIconRenderer().Render(inst(models.TagIcon, map[string]string{"icon": "star"}), "", nil)
	assert.NotContains(t, plain, "data-align")
}

func TestButtonCatalogSuppressesInlineSurface(t *testing.T) {
	ctx := guideCtx(testGuide)
	out := NewButtonRenderer().Render(inst(models.TagButton, map[string]string{
		"button": "cta",
		"bg":     "#ff0000",
		"color":  "ink",
		"href":   "/go",
	}), "Go", ctx)
	assert.Contains(t, out, `data-button="cta"`)
	assert.NotContains(t, out, "background-color")
	assert.NotContains(t, out, "border-radius")
	assert.NotContains(t, out, "padding")
	// The explicitness flag persists so the paint cascade stays away.
	assert.Contains(t, out, `data-color-explicit="true"`)
	assert.NotContains(t, out, "color: #111827")
}

func TestButtonInlineDefaults(t *testing.T) {
	out := NewButtonRenderer().Render(inst(models.TagButton, map[string]string{"href": "/go"}), "Go", nil)
	assert.Contains(t, out, `href="/go"`)
	assert.Contains(t, out, "border-radius: 6px")
	assert.Contains(t, out, "padding: 0.75rem 1.5rem")
	assert.Contains(t, out, `data-role="link"`)
}

func TestSectionPaintSuppressesOwnBackground(t *testing.T) {
	out := NewSectionRenderer().Render(inst(models.TagSection, map[string]string{
		"paint": "dark-hero",
		"bg":    "#222222",
	}), "inner", guideCtx(testGuide))
	assert.Contains(t, out, `data-paint="dark-hero"`)
	assert.NotContains(t, out, "background-color", "paint takes the background surface")
}

func TestSectionBrandBackground(t *testing.T) {
	ctx := &models.RenderContext{
		SessionID: "test",
		Guide:     styleguide.Empty(),
		Brand:     models.BrandAssets{"background": {"/media/site/bg-1.webp"}},
	}
	out := NewSectionRenderer().Render(inst(models.TagSection, map[string]string{
		"brand": "background",
	}), "inner", ctx)
	assert.Contains(t, out, "background-image: url(&#39;/media/site/bg-1.webp&#39;)")
	assert.Contains(t, out, `class="bg-cover"`)
}

func TestFlexGapNormalization(t *testing.T) {
	out := NewFlexRenderer().Render(inst(models.TagFlex, map[string]string{"gap": "24px"}), "inner", nil)
	assert.Contains(t, out, "gap: 1.5rem")
	assert.Contains(t, out, `data-gap="24px"`)

	out = NewFlexRenderer().Render(inst(models.TagFlex, nil), "inner", nil)
	assert.Contains(t, out, "gap: 1rem")
	assert.NotContains(t, out, "data-gap")
}
