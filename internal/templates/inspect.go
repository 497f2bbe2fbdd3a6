package templates

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"authmail/internal/domain/model"
)

// Inspect parses a rendered document and returns its title, hidden preview text and
// first h1. The preview span is the hidden span placed directly under <body>; hidden
// spans inside the body fragment are ignored.
func Inspect(doc string) (model.Outline, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return model.Outline{}, fmt.Errorf("parse document: %w", err)
	}

	var outline model.Outline
	var title, heading, body *html.Node
	walk(root, func(n *html.Node) {
		switch n.DataAtom {
		case atom.Title:
			if title == nil {
				title = n
			}
		case atom.H1:
			if heading == nil {
				heading = n
			}
		case atom.Body:
			if body == nil {
				body = n
			}
		}
	})

	preview := previewSpan(body)
	if title == nil || heading == nil || preview == nil {
		return outline, fmt.Errorf("document is missing its title, h1 or preview span")
	}

	outline.Title = textOf(title)
	outline.Heading = textOf(heading)
	outline.Preheader = textOf(preview)
	return outline, nil
}

// CheckOutline verifies a rendered document shows the params it was built from.
// Params are compared as the parser sees them: entities decoded, edges trimmed.
func CheckOutline(doc string, p model.TemplateParams) error {
	outline, err := Inspect(doc)
	if err != nil {
		return err
	}
	heading := displayText(p.Heading)
	if outline.Title != heading {
		return fmt.Errorf("title %q does not match heading %q", outline.Title, heading)
	}
	if outline.Heading != heading {
		return fmt.Errorf("h1 %q does not match heading %q", outline.Heading, heading)
	}
	if preheader := displayText(p.Preheader); outline.Preheader != preheader {
		return fmt.Errorf("preview text %q does not match preheader %q", outline.Preheader, preheader)
	}
	return nil
}

func displayText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(raw))
}

func previewSpan(body *html.Node) *html.Node {
	if body == nil {
		return nil
	}
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.DataAtom == atom.Span && isHidden(child) {
			return child
		}
	}
	return nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

func textOf(n *html.Node) string {
	var builder strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return strings.TrimSpace(builder.String())
}

func isHidden(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key == "style" && strings.Contains(strings.ReplaceAll(attr.Val, " ", ""), "display:none") {
			return true
		}
	}
	return false
}
