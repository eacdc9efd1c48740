// Package styleguide loads the externally supplied design-system payload
// and answers the resolution queries the renderers make against it: palette
// lookups, catalog membership, paint themes and the typographic scale.
package styleguide

import (
	"encoding/json"
	"log"

	"github.com/MarkupMedia/pagetags-go/models"
)

// FallbackColor is substituted for any palette id a paint theme references
// that does not exist. Missing references degrade, they never fail a render.
const FallbackColor = "#000000"

// Catalog categories recognized by IsRef. Each catalog is an independent
// namespace.
const (
	CategoryShadow = "shadow"
	CategoryBorder = "border"
	CategoryCorner = "corner"
	CategoryButton = "button"
	CategoryPaint  = "paint"
)

// Store holds one session's styleguide with lookup indices built once at
// load. A Store is write-once: built at session start, read-only thereafter.
// The zero-value-like empty store (Active() == false) stands in when no
// styleguide is supplied, so callers never branch on nil.
type Store struct {
	data     *models.StyleguideData
	palette  map[string]string
	themes   map[string]models.PaintTheme
	catalogs map[string]map[string]struct{}
	scale    *Scale
}

// Empty returns a store with no styleguide loaded. Every query degrades to
// the preset-table path.
func Empty() *Store {
	return NewStore(nil)
}

// NewStore builds a store from an already-decoded payload. A nil payload
// yields an inactive store.
func NewStore(data *models.StyleguideData) *Store {
	s := &Store{
		data:     data,
		palette:  make(map[string]string),
		themes:   make(map[string]models.PaintTheme),
		catalogs: make(map[string]map[string]struct{}),
	}
	for _, cat := range []string{CategoryShadow, CategoryBorder, CategoryCorner, CategoryButton, CategoryPaint} {
		s.catalogs[cat] = make(map[string]struct{})
	}
	if data == nil {
		return s
	}

	for _, c := range data.Colors {
		s.palette[c.ID] = c.Hex
	}
	for _, t := range data.PaintThemes {
		s.themes[t.ID] = t
		s.catalogs[CategoryPaint][t.ID] = struct{}{}
	}
	for _, sh := range data.Shadows {
		s.catalogs[CategoryShadow][sh.ID] = struct{}{}
	}
	for _, b := range data.Borders {
		s.catalogs[CategoryBorder][b.ID] = struct{}{}
	}
	for _, c := range data.Corners {
		s.catalogs[CategoryCorner][c.ID] = struct{}{}
	}
	for _, b := range data.Buttons {
		s.catalogs[CategoryButton][b.ID] = struct{}{}
	}
	if ty := data.Typography; ty != nil && ty.BaseSize > 0 && ty.ScaleRatio > 1 {
		s.scale = NewScale(ty.BaseSize, ty.ScaleRatio)
	}
	return s
}

// Parse decodes a styleguide JSON document. Malformed JSON degrades to an
// inactive store with a warning; the engine continues in preset-only mode.
func Parse(raw []byte) *Store {
	if len(raw) == 0 {
		return Empty()
	}
	var data models.StyleguideData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("WARN: malformed styleguide payload, continuing without styleguide: %v", err)
		return Empty()
	}
	return NewStore(&data)
}

// ParseBrandAssets decodes a brand-assets JSON document, degrading to no
// brand assets on malformed input.
func ParseBrandAssets(raw []byte) models.BrandAssets {
	if len(raw) == 0 {
		return nil
	}
	var assets models.BrandAssets
	if err := json.Unmarshal(raw, &assets); err != nil {
		log.Printf("WARN: malformed brand assets payload, continuing without brand assets: %v", err)
		return nil
	}
	return assets
}

// Active reports whether a styleguide was loaded for this session.
func (s *Store) Active() bool {
	return s.data != nil
}

// IsRef reports whether value names an entry in the catalog for category.
// With no styleguide loaded this is always false.
func (s *Store) IsRef(value, category string) bool {
	if s.data == nil || value == "" {
		return false
	}
	ids, ok := s.catalogs[category]
	if !ok {
		return false
	}
	_, ok = ids[value]
	return ok
}

// PaletteHex looks up a palette color id.
func (s *Store) PaletteHex(id string) (string, bool) {
	hex, ok := s.palette[id]
	return hex, ok
}

// ColorHex resolves a palette color id with the fixed fallback. Unknown ids
// are a soft warning path, never an error.
func (s *Store) ColorHex(id string) string {
	if hex, ok := s.palette[id]; ok {
		return hex
	}
	log.Printf("WARN: styleguide color id %q not in palette, using %s", id, FallbackColor)
	return FallbackColor
}

// Theme returns the paint theme for an id.
func (s *Store) Theme(id string) (models.PaintTheme, bool) {
	t, ok := s.themes[id]
	return t, ok
}

// ResolveSize resolves a size preset against the typographic scale for an
// element type. It returns "" when no scale is available or the preset is
// not a scale preset, sending the caller to the static font-size table.
func (s *Store) ResolveSize(preset, element string) string {
	if s.scale == nil {
		return ""
	}
	return s.scale.Resolve(preset, element)
}

// Typography returns the loaded typography block, or nil.
func (s *Store) Typography() *models.Typography {
	if s.data == nil {
		return nil
	}
	return s.data.Typography
}
