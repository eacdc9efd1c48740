// Package models provides styleguide payload structures.
package models

// StyleguideColor is one palette entry. IDs are unique within the palette.
type StyleguideColor struct {
	ID  string `json:"id"`
	Hex string `json:"hex"`
}

// PaintTheme is a named set of role-based colors applied to a container and
// cascaded onto its untagged descendants. Every *ColorID resolves against the
// palette; unknown ids fall back to #000000 at resolution time.
type PaintTheme struct {
	ID                 string `json:"id"`
	BackgroundColorID  string `json:"backgroundColorId"`
	HeadlineColorID    string `json:"headlineColorId"`
	SubheadlineColorID string `json:"subheadlineColorId"`
	ContentColorID     string `json:"contentColorId"`
	IconColorID        string `json:"iconColorId"`
	LinkColorID        string `json:"linkColorId,omitempty"`
}

// Typography holds the typographic scale parameters and default fonts.
type Typography struct {
	BaseSize          float64 `json:"baseSize"`
	ScaleRatio        float64 `json:"scaleRatio"`
	HeadlineFont      string  `json:"headlineFont,omitempty"`
	SubheadlineFont   string  `json:"subheadlineFont,omitempty"`
	ContentFont       string  `json:"contentFont,omitempty"`
	HeadlineWeight    string  `json:"headlineWeight,omitempty"`
	SubheadlineWeight string  `json:"subheadlineWeight,omitempty"`
	ContentWeight     string  `json:"contentWeight,omitempty"`
}

// ShadowStyle is one entry in the shadow catalog. The params are carried for
// the external stylesheet generator; the engine only needs the id.
type ShadowStyle struct {
	ID     string `json:"id"`
	X      string `json:"x,omitempty"`
	Y      string `json:"y,omitempty"`
	Blur   string `json:"blur,omitempty"`
	Spread string `json:"spread,omitempty"`
	Color  string `json:"color,omitempty"`
}

// BorderStyle is one entry in the border catalog.
type BorderStyle struct {
	ID    string `json:"id"`
	Width string `json:"width,omitempty"`
	Style string `json:"style,omitempty"`
	Color string `json:"color,omitempty"`
}

// CornerStyle is one entry in the corner catalog.
type CornerStyle struct {
	ID     string `json:"id"`
	Radius string `json:"radius,omitempty"`
}

// ButtonStyle is one entry in the button catalog.
type ButtonStyle struct {
	ID         string `json:"id"`
	Background string `json:"background,omitempty"`
	Color      string `json:"color,omitempty"`
	Radius     string `json:"radius,omitempty"`
	Padding    string `json:"padding,omitempty"`
}

// StyleguideData is the externally supplied design-system payload. At most
// one styleguide is active per rendering session. The shadow, border, corner
// and button catalogs are independent namespaces.
type StyleguideData struct {
	Colors      []StyleguideColor `json:"colors,omitempty"`
	PaintThemes []PaintTheme      `json:"paintThemes,omitempty"`
	Shadows     []ShadowStyle     `json:"shadows,omitempty"`
	Borders     []BorderStyle     `json:"borders,omitempty"`
	Corners     []CornerStyle     `json:"corners,omitempty"`
	Buttons     []ButtonStyle     `json:"buttons,omitempty"`
	Typography  *Typography       `json:"typography,omitempty"`
}
