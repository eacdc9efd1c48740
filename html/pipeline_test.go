package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

const cascadeGuide = `{
	"colors": [
		{"id": "brand-blue", "hex": "#1e40af"},
		{"id": "paper", "hex": "#fafaf9"},
		{"id": "ink", "hex": "#111827"},
		{"id": "mint", "hex": "#34d399"}
	],
	"paintThemes": [
		{
			"id": "dark-hero",
			"backgroundColorId": "brand-blue",
			"headlineColorId": "paper",
			"contentColorId": "paper"
		},
		{
			"id": "mint-card",
			"headlineColorId": "mint"
		},
		{
			"id": "broken",
			"backgroundColorId": "no-such-color"
		}
	]
}`

func render(t *testing.T, guide *styleguide.Store, markup string) string {
	t.Helper()
	p := NewPipeline(guide, nil)
	res, err := p.Render(markup)
	require.NoError(t, err)
	return res.HTML
}

func TestRenderPlainMarkupPassthrough(t *testing.T) {
	in := `<div class="wrap"><span>hello</span> world</div>`
	assert.Equal(t, in, render(t, nil, in))
}

func TestRenderKeepsWrapperAroundInstances(t *testing.T) {
	out := render(t, nil, `<div class="wrap"><t-paragraph>x</t-paragraph></div>`)
	assert.True(t, strings.HasPrefix(out, `<div class="wrap"><p `), "wrapper element survives around the expanded tag: %s", out)
	assert.True(t, strings.HasSuffix(out, `</div>`))
}

func TestRenderLeafFirstCapture(t *testing.T) {
	out := render(t, nil, `<t-row><t-column><t-paragraph>text</t-paragraph></t-column></t-row>`)
	// The paragraph's final markup is embedded in the column, the column's
	// in the row. No source tags survive.
	assert.NotContains(t, out, "<t-")
	rowAt := strings.Index(out, `data-type="t-row"`)
	colAt := strings.Index(out, `data-type="t-column"`)
	parAt := strings.Index(out, `data-type="t-paragraph"`)
	require.True(t, rowAt >= 0 && colAt >= 0 && parAt >= 0, "all three instances rendered: %s", out)
	assert.Less(t, rowAt, colAt)
	assert.Less(t, colAt, parAt)
}

func TestRenderDeterministic(t *testing.T) {
	guide := styleguide.Parse([]byte(cascadeGuide))
	in := `<t-section paint="dark-hero"><t-row><t-headline>Hi</t-headline><t-paragraph>body</t-paragraph></t-row></t-section>`
	first := render(t, guide, in)
	second := render(t, guide, in)
	assert.Equal(t, first, second)
}

func TestRenderInstanceIdempotent(t *testing.T) {
	tree, err := ParseFragment(`<t-paragraph>x</t-paragraph>`)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	inst := tree[0].Tag
	require.NotNil(t, inst)

	ctx := &models.RenderContext{SessionID: "test", Guide: styleguide.Empty()}
	RenderInstance(inst, ctx)
	first := inst.Output
	RenderInstance(inst, ctx)
	assert.Equal(t, first, inst.Output, "re-entry on a rendered instance is a no-op")
}

func TestRenderUnknownWordsStayText(t *testing.T) {
	out := render(t, nil, `score < 10 & rising`)
	assert.Equal(t, "score &lt; 10 &amp; rising", out)
}

func TestPaintCascadeColorsRoles(t *testing.T) {
	guide := styleguide.Parse([]byte(cascadeGuide))
	out := render(t, guide, `<t-section paint="dark-hero"><t-headline>Hi</t-headline><t-paragraph>body</t-paragraph></t-section>`)

	assert.Contains(t, out, "background-color: #1e40af", "container takes the theme background")
	// Headline and paragraph both receive the theme's role color.
	assert.Equal(t, 2, strings.Count(out, "color: #fafaf9")-strings.Count(out, "background-color: #fafaf9"))
}

func TestPaintCascadeRespectsExplicitColor(t *testing.T) {
	guide := styleguide.Parse([]byte(cascadeGuide))
	out := render(t, guide, `<t-section paint="dark-hero"><t-paragraph color="ink">stays</t-paragraph></t-section>`)

	assert.Contains(t, out, "color: #111827 !important")
	assert.Equal(t, 0, strings.Count(out, "color: #fafaf9"), "explicitly colored elements are skipped by the cascade")
}

func TestPaintCascadeNearestAncestorWins(t *testing.T) {
	guide := styleguide.Parse([]byte(cascadeGuide))
	out := render(t, guide, `<t-section paint="dark-hero"><t-column paint="mint-card"><t-headline>x</t-headline></t-column></t-section>`)

	assert.Contains(t, out, "color: #34d399", "inner paint container claims the headline")
	assert.Equal(t, 0, strings.Count(out, "color: #fafaf9"), "outer theme does not reach through the inner container")
}

func TestPaintCascadeSiblingContainersIndependent(t *testing.T) {
	guide := styleguide.Parse([]byte(cascadeGuide))
	out := render(t, guide, `<t-section paint="dark-hero"><t-headline>one</t-headline></t-section><t-section paint="mint-card"><t-headline>two</t-headline></t-section>`)

	first := strings.Index(out, "color: #fafaf9")
	second := strings.Index(out, "color: #34d399")
	require.NotEqual(t, -1, first, "first container's headline takes dark-hero paper")
	require.NotEqual(t, -1, second, "second container's headline takes mint-card mint")
	assert.Equal(t, 1, strings.Count(out, "color: #fafaf9")-strings.Count(out, "background-color: #fafaf9"))
	assert.Equal(t, 1, strings.Count(out, "color: #34d399"))
	assert.Less(t, first, second)
}

func TestPaintCascadeMissingPaletteFallsBack(t *testing.T) {
	guide := styleguide.Parse([]byte(cascadeGuide))
	out := render(t, guide, `<t-section paint="broken"><t-paragraph>x</t-paragraph></t-section>`)
	assert.Contains(t, out, "background-color: "+styleguide.FallbackColor)
}

func TestPaintCascadeUnknownThemeSkipped(t *testing.T) {
	guide := styleguide.Parse([]byte(cascadeGuide))
	out := render(t, guide, `<t-section paint="no-such-theme"><t-headline>x</t-headline></t-section>`)
	assert.Contains(t, out, `data-paint="no-such-theme"`)
	assert.NotContains(t, out, "background-color")
}

func TestPaintCascadeInactiveGuide(t *testing.T) {
	out := render(t, nil, `<t-section paint="dark-hero"><t-headline>x</t-headline></t-section>`)
	assert.Contains(t, out, `data-paint="dark-hero"`)
	assert.NotContains(t, out, "background-color")
}

func TestRenderCollectsFonts(t *testing.T) {
	p := NewPipeline(nil, nil)
	res, err := p.Render(`<t-headline font="Inter">a</t-headline><t-paragraph font="Lora">b</t-paragraph><t-paragraph font="Inter">c</t-paragraph>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter", "Lora"}, res.Fonts)
}

func TestRenderBrandAssets(t *testing.T) {
	p := NewPipeline(nil, models.BrandAssets{"logo": {"/media/site/logo.svg"}})
	res, err := p.Render(`<t-image brand="logo" alt="logo"></t-image>`)
	require.NoError(t, err)
	assert.Contains(t, res.HTML, `src="/media/site/logo.svg"`)
	assert.Contains(t, res.HTML, `data-brand="logo"`)
}
