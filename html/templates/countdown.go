// Package templates provides the t-countdown renderer.
package templates

import (
	"strings"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// CountdownRenderer emits the countdown shell: four placeholder units keyed
// on data-to. The clock logic is an external collaborator.
type CountdownRenderer struct{}

// NewCountdownRenderer creates the t-countdown renderer.
func NewCountdownRenderer() *CountdownRenderer {
	return &CountdownRenderer{}
}

var countdownUnits = []string{"days", "hours", "minutes", "seconds"}

// Render assembles one countdown instance.
func (r *CountdownRenderer) Render(inst *models.TagInstance, inner string, ctx *models.RenderContext) string {
	b := NewStyleBuilder(models.TagCountdown)
	b.Data("role", "content")
	if v, ok := inst.Attr("to"); ok && v != "" {
		b.Data("to", v)
	}
	b.Style("display", "flex")
	b.Style("gap", "0.75rem")
	b.Style("justify-content", "center")
	applySize(b, ctx, inst, styleguide.ElementHeadline, "3xl")
	applyWeight(b, ctx, inst, styleguide.ElementHeadline, "bold")
	applyColor(b, ctx, inst)

	var units strings.Builder
	for _, unit := range countdownUnits {
		units.WriteString(`<span class="countdown-` + unit + `" data-unit="` + unit + `">--</span>`)
	}
	return "<div" + b.Attrs() + ">" + units.String() + "</div>"
}
