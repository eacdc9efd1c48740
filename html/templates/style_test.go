package templates

import (
	"testing"
)

func TestStyleBuilderAttrs(t *testing.T) {
	b := NewStyleBuilder("t-paragraph")
	b.Class("bg-cover")
	b.Style("font-size", "16px")
	b.Style("margin-bottom", "0.75rem")
	b.Data("size", "m")

	got := b.Attrs()
	want := ` class="bg-cover" style="font-size: 16px; margin-bottom: 0.75rem" data-type="t-paragraph" data-size="m"`
	if got != want {
		t.Errorf("Attrs() = %q, want %q", got, want)
	}
}

func TestStyleBuilderDropsEmptyStyle(t *testing.T) {
	b := NewStyleBuilder("t-flex")
	b.Style("gap", "")
	if b.HasStyle("gap") {
		t.Error("empty style value must be dropped")
	}
	got := b.Attrs()
	if got != ` data-type="t-flex"` {
		t.Errorf("Attrs() = %q, want only the type attribute", got)
	}
}

func TestStyleBuilderEscapes(t *testing.T) {
	b := NewStyleBuilder("t-image")
	b.Data("src", `a"b<c`)
	got := b.Attrs()
	want := ` data-type="t-image" data-src="a&#34;b&lt;c"`
	if got != want {
		t.Errorf("Attrs() = %q, want %q", got, want)
	}
}

func TestNormalizeGap(t *testing.T) {
	cases := []struct{ in, want string }{
		{"24px", "1.5rem"},
		{"8px", "0.5rem"},
		{"16px", "1rem"},
		{"1.5rem", "1.5rem"},
		{"2em", "2em"},
		{"abcpx", "abcpx"},
	}
	for _, c := range cases {
		if got := NormalizeGap(c.in); got != c.want {
			t.Errorf("NormalizeGap(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
