// Package html tag dispatch.
package html

import (
	"log"

	"github.com/MarkupMedia/pagetags-go/html/templates"
	"github.com/MarkupMedia/pagetags-go/models"
)

// tagRenderers is the dispatch table from tag kind to its renderer. The
// vocabulary is closed; renderers are stateless and shared across sessions.
var tagRenderers = map[string]templates.TagRenderer{
	models.TagIcon:        templates.NewIconRenderer(),
	models.TagDivider:     templates.NewDividerRenderer(),
	models.TagImage:       templates.NewImageRenderer(),
	models.TagVideo:       templates.NewVideoRenderer(),
	models.TagHeadline:    templates.NewHeadlineRenderer(),
	models.TagSubheadline: templates.NewSubheadlineRenderer(),
	models.TagParagraph:   templates.NewParagraphRenderer(),
	models.TagButton:      templates.NewButtonRenderer(),
	models.TagInput:       templates.NewInputRenderer(),
	models.TagTextarea:    templates.NewTextareaRenderer(),
	models.TagSelect:      templates.NewSelectRenderer(),
	models.TagList:        templates.NewListRenderer(),
	models.TagProgress:    templates.NewProgressRenderer(),
	models.TagPopup:       templates.NewPopupRenderer(),
	models.TagCountdown:   templates.NewCountdownRenderer(),
	models.TagFlex:        templates.NewFlexRenderer(),
	models.TagInnerColumn: templates.NewInnerColumnRenderer(),
	models.TagColumn:      templates.NewColumnRenderer(),
	models.TagRow:         templates.NewRowRenderer(),
	models.TagSection:     templates.NewSectionRenderer(),
	models.TagModal:       templates.NewModalRenderer(),
	models.TagPage:        templates.NewPageRenderer(),
}

// RenderInstance resolves one instance: it snapshots the instance's current
// subtree output as an opaque blob, dispatches to the kind's renderer, and
// marks the instance rendered. Re-entry on a rendered instance is a no-op.
func RenderInstance(inst *models.TagInstance, ctx *models.RenderContext) {
	if inst.Rendered {
		return
	}
	renderer, ok := tagRenderers[inst.Kind]
	if !ok {
		log.Printf("tag dispatch miss on %s", inst.Kind)
		inst.Output = serializeOriginal(inst)
		inst.Rendered = true
		return
	}
	var inner string
	for _, c := range inst.Children {
		inner += serializeChild(c)
	}
	inst.Output = renderer.Render(inst, inner, ctx)
	inst.Rendered = true
}
