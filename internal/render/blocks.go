package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	nethtml "golang.org/x/net/html"
)

const codeIndent = "    "

func (r fragmentRenderer) renderNodes(nodes []*nethtml.Node, listDepth int) []string {
	lines := make([]string, 0, len(nodes)*2)
	inlineParts := make([]string, 0, 4)
	appendBlock := func(block []string) {
		if len(block) == 0 {
			return
		}
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	flushInline := func() {
		text := normalizeInlineText(strings.Join(inlineParts, " "))
		inlineParts = inlineParts[:0]
		if text != "" {
			appendBlock(wrapText(text, r.width))
		}
	}

	for _, node := range nodes {
		switch node.Type {
		case nethtml.TextNode:
			inlineParts = append(inlineParts, node.Data)
		case nethtml.ElementNode:
			if isBlockElement(node.Data) {
				flushInline()
				appendBlock(r.renderBlock(node, listDepth))
				continue
			}
			inlineParts = append(inlineParts, r.renderInlineNode(node))
		}
	}
	flushInline()
	return trimBlankLines(lines)
}

func (r fragmentRenderer) renderBlock(node *nethtml.Node, listDepth int) []string {
	tag := strings.ToLower(node.Data)
	switch tag {
	case "script", "style":
		return nil
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		prefix := headingPrefix(level)
		text := styleInline(normalizeInlineText(r.renderInlineChildren(node)), headingStyle)
		return r.wrapPrefixed(text, prefix, strings.Repeat(" ", ansi.StringWidth(prefix)))
	case "ul":
		return r.renderList(node, false, listDepth+1)
	case "ol":
		return r.renderList(node, true, listDepth+1)
	case "li":
		return r.renderListItem(node, listDepth, "• ")
	case "pre":
		return r.renderPre(node)
	case "hr":
		return []string{strings.Repeat("─", min(max(r.width, 3), 24))}
	default:
		if hasBlockChild(node) {
			return r.renderNodes(elementChildren(node), listDepth)
		}
		text := normalizeInlineText(r.renderInlineChildren(node))
		if text == "" {
			return nil
		}
		return wrapText(text, r.width)
	}
}

func (r fragmentRenderer) renderPre(node *nethtml.Node) []string {
	text := strings.ReplaceAll(collectRawText(node), "\r\n", "\n")
	limit := r.width - len(codeIndent)
	out := make([]string, 0, 8)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			out = append(out, "")
			continue
		}
		if r.width > 0 && limit > 0 {
			line = ansi.Hardwrap(line, limit, true)
		}
		for _, part := range strings.Split(line, "\n") {
			out = append(out, codeIndent+codeBlockStyle.Render(part))
		}
	}
	return trimBlankLines(out)
}

func (r fragmentRenderer) renderList(node *nethtml.Node, ordered bool, listDepth int) []string {
	lines := make([]string, 0, 16)
	index := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode || strings.ToLower(child.Data) != "li" {
			continue
		}
		index++
		marker := unorderedListMarker(listDepth)
		if ordered {
			marker = strconv.Itoa(index) + ". "
		}
		lines = append(lines, r.renderListItem(child, listDepth, marker)...)
	}
	return lines
}

func (r fragmentRenderer) renderListItem(node *nethtml.Node, listDepth int, marker string) []string {
	indent := strings.Repeat("  ", max(0, listDepth-1))
	lines := make([]string, 0, 4)

	parts := make([]string, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if isNestedList(child) {
			continue
		}
		parts = append(parts, r.renderInlineNode(child))
	}
	text := normalizeInlineText(strings.Join(parts, " "))
	if text != "" {
		lines = append(lines, r.wrapPrefixed(text, indent+marker, indent+strings.Repeat(" ", ansi.StringWidth(marker)))...)
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if !isNestedList(child) {
			continue
		}
		lines = append(lines, r.renderList(child, strings.EqualFold(child.Data, "ol"), listDepth+1)...)
	}
	return lines
}

func (r fragmentRenderer) wrapPrefixed(text, firstPrefix, restPrefix string) []string {
	if text == "" {
		return nil
	}
	if r.width < 1 {
		return []string{firstPrefix + strings.ReplaceAll(text, "\n", " ")}
	}
	limit := max(1, r.width-ansi.StringWidth(restPrefix))
	wrapped := strings.Split(ansi.Wrap(strings.ReplaceAll(text, "\n", " "), limit, ""), "\n")
	out := make([]string, len(wrapped))
	for i, line := range wrapped {
		if i == 0 {
			out[i] = firstPrefix + line
			continue
		}
		out[i] = restPrefix + line
	}
	return out
}

func headingPrefix(level int) string {
	level = min(max(level, 1), len(headingBars))
	return headingBars[level-1].Render("▌") + " "
}

func unorderedListMarker(listDepth int) string {
	switch listDepth {
	case 1:
		return "• "
	case 2:
		return "◦ "
	default:
		return "▪ "
	}
}

func isNestedList(node *nethtml.Node) bool {
	if node.Type != nethtml.ElementNode {
		return false
	}
	tag := strings.ToLower(node.Data)
	return tag == "ul" || tag == "ol"
}

func isBlockElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "h1", "h2", "h3", "h4", "h5", "h6",
		"p", "div", "section", "article", "header", "footer",
		"blockquote", "ul", "ol", "li", "pre", "hr", "table", "tr":
		return true
	default:
		return false
	}
}

func hasBlockChild(node *nethtml.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && isBlockElement(child.Data) {
			return true
		}
	}
	return false
}
