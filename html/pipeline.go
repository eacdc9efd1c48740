// Package html rendering pipeline.
package html

import (
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// Pipeline runs the full expansion for one session: pass 1 resolves every
// tag instance in the fixed leaf-first kind order, pass 2 applies the paint
// cascade to the rendered output. A pipeline is single-use; the render
// context it creates is discarded with it.
type Pipeline struct {
	guide *styleguide.Store
	brand models.BrandAssets
}

// NewPipeline creates a pipeline. A nil styleguide store degrades to the
// inactive store so resolution runs in preset-only mode.
func NewPipeline(guide *styleguide.Store, brand models.BrandAssets) *Pipeline {
	if guide == nil {
		guide = styleguide.Empty()
	}
	return &Pipeline{guide: guide, brand: brand}
}

// Result carries the rendered document and the session's deduplicated font
// families.
type Result struct {
	HTML  string
	Fonts []string
}

// Render expands source markup. The pipeline only starts once the caller
// hands it the complete document; from there both passes run to completion
// without interruption. Parse failures degrade to the unmodified input, the
// engine never aborts a render.
func (p *Pipeline) Render(markup string) (*Result, error) {
	ctx := &models.RenderContext{
		SessionID: ulid.Make().String(),
		Guide:     p.guide,
		Brand:     p.brand,
	}

	tree, err := ParseFragment(markup)
	if err != nil {
		return &Result{HTML: markup}, err
	}

	// Pass 1: resolve instances strictly by kind order, document order
	// within a kind. Every instance of an earlier kind resolves before
	// any instance of a later kind, so container snapshots are final.
	byKind := make(map[string][]*models.TagInstance)
	collectInstances(tree, byKind)
	for _, kind := range models.KindOrder {
		for _, inst := range byKind[kind] {
			RenderInstance(inst, ctx)
		}
	}

	var sb strings.Builder
	for _, c := range tree {
		sb.WriteString(serializeChild(c))
	}

	// Pass 2 runs only after pass 1 has fully completed.
	rendered := ApplyPaintCascade(sb.String(), p.guide)

	return &Result{HTML: rendered, Fonts: ctx.Fonts}, nil
}

// collectInstances gathers instances per kind in document order.
func collectInstances(children []*models.TagChild, byKind map[string][]*models.TagInstance) {
	for _, c := range children {
		if c.Tag == nil {
			continue
		}
		byKind[c.Tag.Kind] = append(byKind[c.Tag.Kind], c.Tag)
		collectInstances(c.Tag.Children, byKind)
	}
}
