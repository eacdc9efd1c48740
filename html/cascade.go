// Package html paint-cascade post-processing.
package html

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"github.com/MarkupMedia/pagetags-go/models"
	"github.com/MarkupMedia/pagetags-go/styleguide"
)

// roleColorID maps a cascade role to its color id within a theme.
func roleColorID(theme models.PaintTheme, role string) string {
	switch role {
	case "headline":
		return theme.HeadlineColorID
	case "subheadline":
		return theme.SubheadlineColorID
	case "content":
		return theme.ContentColorID
	case "icon":
		return theme.IconColorID
	case "link":
		return theme.LinkColorID
	}
	return ""
}

// ApplyPaintCascade walks the rendered output and propagates paint-theme
// colors: each container bearing a paint id paints its own background and
// the role-carrying descendants whose nearest paint ancestor it is. Elements
// with the explicit-color marker are left untouched. The cascade only runs
// on fully resolved markup.
func ApplyPaintCascade(rendered string, guide *styleguide.Store) string {
	if guide == nil || !guide.Active() || !strings.Contains(rendered, "data-paint") {
		return rendered
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		log.Printf("WARN: paint cascade skipped, could not re-parse rendered output: %v", err)
		return rendered
	}

	doc.Find("[data-paint]").Each(func(_ int, container *goquery.Selection) {
		id := container.AttrOr("data-paint", "")
		theme, ok := guide.Theme(id)
		if !ok {
			log.Printf("WARN: paint theme %q not in styleguide, cascade skipped for container", id)
			return
		}
		if theme.BackgroundColorID != "" {
			setStyleProp(container, "background-color", guide.ColorHex(theme.BackgroundColorID))
		}
		containerNode := container.Get(0)
		container.Find("[data-role]").Each(func(_ int, el *goquery.Selection) {
			if closestPaint(el.Get(0)) != containerNode {
				return
			}
			if _, explicit := el.Attr("data-color-explicit"); explicit {
				return
			}
			colorID := roleColorID(theme, el.AttrOr("data-role", ""))
			if colorID == "" {
				return
			}
			setStyleProp(el, "color", guide.ColorHex(colorID))
		})
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		log.Printf("WARN: paint cascade serialization failed: %v", err)
		return rendered
	}
	return out
}

// closestPaint returns the nearest ancestor carrying a paint id. Nested
// non-paint wrappers are transparent; a different paint container in between
// claims the element for itself.
func closestPaint(n *xhtml.Node) *xhtml.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != xhtml.ElementNode {
			continue
		}
		for _, a := range p.Attr {
			if a.Key == "data-paint" {
				return p
			}
		}
	}
	return nil
}

// setStyleProp sets one declaration in an element's style attribute,
// replacing an existing declaration for the property.
func setStyleProp(el *goquery.Selection, prop, value string) {
	style := el.AttrOr("style", "")
	var decls []string
	for _, d := range strings.Split(style, ";") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if name, _, found := strings.Cut(d, ":"); found && strings.TrimSpace(name) == prop {
			continue
		}
		decls = append(decls, d)
	}
	decls = append(decls, prop+": "+value)
	el.SetAttr("style", strings.Join(decls, "; "))
}
