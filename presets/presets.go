// Package presets holds the static preset tables: short named keys mapping
// to concrete CSS values. Tables are immutable, process-wide, and loaded
// once. Lookup is a total function: unknown keys pass through verbatim so
// free-form values coexist with the named presets.
package presets

// Table maps a preset key to a CSS value string.
type Table map[string]string

// FontSizes is the static font-size table, used when no styleguide scale
// covers a size preset.
var FontSizes = Table{
	"xs":  "12px",
	"s":   "14px",
	"sm":  "14px",
	"m":   "16px",
	"md":  "16px",
	"l":   "18px",
	"lg":  "18px",
	"xl":  "20px",
	"2xl": "24px",
	"3xl": "30px",
	"4xl": "36px",
	"5xl": "48px",
}

// Shadows maps shadow presets to box-shadow declarations.
var Shadows = Table{
	"none": "none",
	"sm":   "0 1px 2px 0 rgba(0,0,0,0.05)",
	"md":   "0 4px 6px -1px rgba(0,0,0,0.1)",
	"lg":   "0 10px 15px -3px rgba(0,0,0,0.1)",
	"xl":   "0 20px 25px -5px rgba(0,0,0,0.1)",
	"2xl":  "0 25px 50px -12px rgba(0,0,0,0.25)",
}

// Radii maps corner-radius presets to border-radius values.
var Radii = Table{
	"none": "0",
	"sm":   "2px",
	"md":   "6px",
	"lg":   "8px",
	"xl":   "12px",
	"2xl":  "16px",
	"full": "9999px",
}

// LineHeights maps leading presets to unitless line-height values.
var LineHeights = Table{
	"none":    "1",
	"tight":   "1.25",
	"snug":    "1.375",
	"normal":  "1.5",
	"relaxed": "1.625",
	"loose":   "2",
}

// FontWeights maps weight presets to numeric font-weight values.
var FontWeights = Table{
	"thin":     "100",
	"light":    "300",
	"normal":   "400",
	"medium":   "500",
	"semibold": "600",
	"bold":     "700",
	"black":    "900",
}

// RowWidths maps row width presets to max-width values.
var RowWidths = Table{
	"narrow": "600px",
	"medium": "900px",
	"wide":   "1140px",
	"full":   "100%",
}

// ContainerWidths maps section/container width presets to max-width values.
var ContainerWidths = Table{
	"sm":   "640px",
	"md":   "768px",
	"lg":   "1024px",
	"xl":   "1280px",
	"full": "100%",
}

// BorderWidths maps border thickness presets to border-width values.
var BorderWidths = Table{
	"none": "0",
	"sm":   "1px",
	"md":   "2px",
	"lg":   "4px",
	"xl":   "8px",
}

// BackgroundStyles maps background style presets to wrapper class names the
// external stylesheet styles (cover/contain/repeat handling).
var BackgroundStyles = Table{
	"cover":    "bg-cover",
	"contain":  "bg-contain",
	"repeat":   "bg-repeat",
	"repeat-x": "bg-repeat-x",
	"repeat-y": "bg-repeat-y",
	"fixed":    "bg-fixed",
}

// Trackings maps letter-spacing presets to CSS values.
var Trackings = Table{
	"tighter": "-0.05em",
	"tight":   "-0.025em",
	"normal":  "0",
	"wide":    "0.025em",
	"wider":   "0.05em",
	"widest":  "0.1em",
}

// Resolve looks key up in table, passing unknown keys through verbatim.
// An empty key returns the empty sentinel, which callers distinguish from a
// raw-value passthrough.
func Resolve(key string, table Table) string {
	if key == "" {
		return ""
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}
