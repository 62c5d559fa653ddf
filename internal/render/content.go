// Package render turns an entry's HTML content fragment into wrapped,
// styled terminal lines for the detail overlay.
package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	nethtml "golang.org/x/net/html"

	"github.com/nikbrunner/diario/internal/model"
)

type fragmentRenderer struct {
	width int
}

// EntryLines renders the entry's description followed by its content,
// separated by a blank line, to lines no wider than width.
func EntryLines(entry model.Entry, width int) []string {
	var lines []string
	if description := strings.TrimSpace(entry.Description); description != "" {
		lines = wrapText(description, width)
	}
	if content := FragmentLines(entry.Content, width); len(content) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, content...)
	}
	return lines
}

// FragmentLines renders an HTML fragment to lines no wider than width.
// A width below 1 disables wrapping.
func FragmentLines(raw string, width int) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return wrapText(raw, width)
	}
	body := findBodyNode(doc)
	if body == nil {
		return wrapText(raw, width)
	}
	r := fragmentRenderer{width: width}
	return trimBlankLines(r.renderNodes(elementChildren(body), 0))
}

// PlainText renders an HTML fragment without styling or wrapping.
func PlainText(raw string) string {
	return ansi.Strip(strings.Join(FragmentLines(raw, 0), "\n"))
}

func wrapText(text string, width int) []string {
	if width < 1 {
		return strings.Split(text, "\n")
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

func trimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines) - 1
	for end >= start && strings.TrimSpace(lines[end]) == "" {
		end--
	}
	if end < start {
		return nil
	}
	out := make([]string, 0, end-start+1)
	prevBlank := false
	for i := start; i <= end; i++ {
		blank := strings.TrimSpace(lines[i]) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, lines[i])
		prevBlank = blank
	}
	return out
}

func findBodyNode(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "body") {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBodyNode(child); found != nil {
			return found
		}
	}
	return nil
}

func elementChildren(node *nethtml.Node) []*nethtml.Node {
	children := make([]*nethtml.Node, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func collectRawText(node *nethtml.Node) string {
	if node.Type == nethtml.TextNode {
		return node.Data
	}
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(collectRawText(child))
	}
	return b.String()
}
