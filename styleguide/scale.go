// Package styleguide scale derivation.
package styleguide

import (
	"fmt"
	"math"
)

// Element types for scale resolution. Headline takes the largest steps,
// subheadline sits one step down, paragraph two steps down.
const (
	ElementHeadline    = "headline"
	ElementSubheadline = "subheadline"
	ElementParagraph   = "paragraph"
)

// minStep and maxStep bound the geometric steps derived around the base
// size: step(n) = round(baseSize * scaleRatio^n) for n in [minStep, maxStep].
const (
	minStep = -3
	maxStep = 8
)

// presetIndex orders the named size presets onto scale offsets. Aliases
// (s/sm, m/md, l/lg) share an index.
var presetIndex = map[string]int{
	"xs":  0,
	"s":   1,
	"sm":  1,
	"m":   2,
	"md":  2,
	"l":   3,
	"lg":  3,
	"xl":  4,
	"2xl": 5,
	"3xl": 6,
	"4xl": 7,
	"5xl": 8,
}

// elementOffset shifts a preset index onto the step table per element type.
var elementOffset = map[string]int{
	ElementHeadline:    0,
	ElementSubheadline: -1,
	ElementParagraph:   -2,
}

// Scale is a derived geometric typographic scale. Immutable once built.
type Scale struct {
	steps map[int]int
}

// NewScale derives the step table from a base size in px and a unitless
// ratio greater than one.
func NewScale(baseSize, scaleRatio float64) *Scale {
	steps := make(map[int]int, maxStep-minStep+1)
	for n := minStep; n <= maxStep; n++ {
		steps[n] = int(math.Round(baseSize * math.Pow(scaleRatio, float64(n))))
	}
	return &Scale{steps: steps}
}

// Resolve maps a size preset and element type to a pixel string, or ""
// when the preset is not a named scale preset.
func (sc *Scale) Resolve(preset, element string) string {
	idx, ok := presetIndex[preset]
	if !ok {
		return ""
	}
	off, ok := elementOffset[element]
	if !ok {
		return ""
	}
	n := idx + off
	if n < minStep {
		n = minStep
	}
	if n > maxStep {
		n = maxStep
	}
	return fmt.Sprintf("%dpx", sc.steps[n])
}
