package sanitize

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tags removed together with their contents.
var blockedTags = map[string]bool{
	"script": true,
	"style":  true,
	"iframe": true,
	"object": true,
	"embed":  true,
	"form":   true,
}

// HTML strips scripts, embedded frames, inline event handlers and
// javascript: URLs from rich article content while keeping the markup
// structure intact. Invalid markup is returned trimmed but otherwise
// untouched rather than dropped.
func HTML(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(input), ctx)
	if err != nil {
		return strings.TrimSpace(input)
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		clean(n)
		if n.Type == html.ElementNode && blockedTags[n.Data] {
			continue
		}
		html.Render(&buf, n)
	}
	return buf.String()
}

func clean(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && blockedTags[c.Data] {
			n.RemoveChild(c)
			continue
		}
		clean(c)
	}

	if n.Type != html.ElementNode {
		return
	}

	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") {
			continue
		}
		if (key == "href" || key == "src") && isScriptURL(a.Val) {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}

func isScriptURL(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	return strings.HasPrefix(v, "javascript:") || strings.HasPrefix(v, "data:text/html")
}
