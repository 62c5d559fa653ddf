package exporter

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

// contentTags are the elements kept in exported entry content. They match
// what the terminal renderer draws.
var contentTags = map[string]bool{
	"p": true, "br": true, "hr": true, "pre": true, "code": true, "kbd": true,
	"strong": true, "b": true, "em": true, "i": true,
	"ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var voidTags = map[string]bool{"br": true, "hr": true}

// sanitizeContent re-emits raw keeping only contentTags, without
// attributes. Comments and script or style elements are dropped along
// with their text.
func sanitizeContent(raw string) string {
	var b strings.Builder
	z := nethtml.NewTokenizer(strings.NewReader(raw))
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case nethtml.ErrorToken:
			return b.String()

		case nethtml.TextToken:
			if skip == 0 {
				b.WriteString(html.EscapeString(string(z.Text())))
			}

		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == nethtml.StartTagToken {
					skip++
				}
				continue
			}
			if skip == 0 && contentTags[tag] {
				b.WriteString("<" + tag + ">")
			}

		case nethtml.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if skip > 0 {
					skip--
				}
				continue
			}
			if skip == 0 && contentTags[tag] && !voidTags[tag] {
				b.WriteString("</" + tag + ">")
			}
		}
	}
}
