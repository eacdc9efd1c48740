// Package html drives the two-pass tag expansion pipeline: fragment parsing,
// leaf-first scheduling of the per-tag renderers, and the paint-cascade
// post-processing of the rendered output.
package html

import (
	stdhtml "html"
	"strings"

	"github.com/oklog/ulid/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/MarkupMedia/pagetags-go/models"
)

// voidElements are HTML elements serialized without a closing tag.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// ParseFragment parses source markup into the mixed raw/instance tree the
// scheduler walks. Markup outside the tag vocabulary is carried through
// verbatim, including wrapper elements around nested tag instances.
func ParseFragment(markup string) ([]*models.TagChild, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	var children []*models.TagChild
	for _, n := range nodes {
		children = append(children, convertNode(n)...)
	}
	return children, nil
}

// convertNode maps one parsed node onto tag children. A known t-* element
// becomes a TagInstance; any other element contributes its own markup as raw
// pieces around its recursively converted content, so nested instances stay
// reachable.
func convertNode(n *html.Node) []*models.TagChild {
	switch n.Type {
	case html.TextNode:
		return []*models.TagChild{{Raw: stdhtml.EscapeString(n.Data)}}
	case html.CommentNode:
		return []*models.TagChild{{Raw: "<!--" + n.Data + "-->"}}
	case html.ElementNode:
		if models.IsKnownKind(n.Data) {
			return []*models.TagChild{{Tag: instanceFromNode(n)}}
		}
		var out []*models.TagChild
		out = append(out, &models.TagChild{Raw: openTag(n)})
		if _, void := voidElements[n.Data]; void {
			return out
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, convertNode(c)...)
		}
		out = append(out, &models.TagChild{Raw: "</" + n.Data + ">"})
		return out
	default:
		return nil
	}
}

func instanceFromNode(n *html.Node) *models.TagInstance {
	inst := &models.TagInstance{
		ID:    ulid.Make().String(),
		Kind:  n.Data,
		Attrs: make(map[string]string, len(n.Attr)),
	}
	for _, a := range n.Attr {
		inst.Attrs[a.Key] = a.Val
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inst.Children = append(inst.Children, convertNode(c)...)
	}
	return inst
}

func openTag(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(stdhtml.EscapeString(a.Val))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	return sb.String()
}

// serializeOriginal reconstructs an instance's source markup, used when an
// instance is captured before its kind's turn in the processing order.
func serializeOriginal(inst *models.TagInstance) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(inst.Kind)
	for k, v := range inst.Attrs {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(stdhtml.EscapeString(v))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	for _, c := range inst.Children {
		sb.WriteString(serializeChild(c))
	}
	sb.WriteString("</" + inst.Kind + ">")
	return sb.String()
}

// serializeChild snapshots one child's current output: raw pieces verbatim,
// rendered instances by their final markup, unrendered instances by their
// source markup.
func serializeChild(c *models.TagChild) string {
	if c.Tag == nil {
		return c.Raw
	}
	if c.Tag.Rendered {
		return c.Tag.Output
	}
	return serializeOriginal(c.Tag)
}
