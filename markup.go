package parlance

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup extracts the visible text from an HTML fragment, skipping
// script, style, and noscript elements and collapsing whitespace. Input
// without markup passes through with whitespace normalized.
func StripMarkup(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return strings.Join(strings.Fields(content), " ")
	}

	var text strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(text.String()), " ")
}

// looksLikeMarkup reports whether the input plausibly contains HTML tags.
func looksLikeMarkup(text string) bool {
	open := strings.IndexByte(text, '<')
	if open < 0 {
		return false
	}
	return strings.IndexByte(text[open:], '>') > 0
}
