package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	nethtml "golang.org/x/net/html"
)

var punctuationFix = strings.NewReplacer(
	" .", ".",
	" ,", ",",
	" ;", ";",
	" :", ":",
	" )", ")",
	"( ", "(",
)

func (r fragmentRenderer) renderInlineChildren(node *nethtml.Node) string {
	parts := make([]string, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		parts = append(parts, r.renderInlineNode(child))
	}
	return strings.Join(parts, " ")
}

func (r fragmentRenderer) renderInlineNode(node *nethtml.Node) string {
	switch node.Type {
	case nethtml.TextNode:
		return node.Data
	case nethtml.ElementNode:
		switch strings.ToLower(node.Data) {
		case "script", "style", "img":
			return ""
		case "br":
			return "\n"
		case "strong", "b":
			return styleInline(r.renderInlineChildren(node), strongStyle)
		case "em", "i":
			return styleInline(r.renderInlineChildren(node), emphasisStyle)
		case "code", "kbd":
			return styleInline(r.renderInlineChildren(node), codeStyle)
		default:
			return r.renderInlineChildren(node)
		}
	default:
		return ""
	}
}

// styleInline styles each word on its own so wrapping never splits an
// escape sequence across lines.
func styleInline(text string, style lipgloss.Style) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = style.Render(w)
	}
	return strings.Join(words, " ")
}

// normalizeInlineText collapses runs of whitespace within each line and
// drops empty lines.
func normalizeInlineText(s string) string {
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return punctuationFix.Replace(strings.Join(out, "\n"))
}
