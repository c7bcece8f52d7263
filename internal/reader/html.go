package reader

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/rosterly/candex/internal/document"
)

// HTMLReader handles HTML files. Block elements delimit paragraphs, b and
// strong (and headings) feed the bold channel, and hr becomes a page break.
type HTMLReader struct{}

func (h *HTMLReader) Read(r io.Reader, filename string) ([]document.Paragraph, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var paras []document.Paragraph
	pendingBreak := false

	appendBlock := func(runs []document.Run) {
		for _, p := range splitRunsAtNewlines(runs) {
			if p.Text == "" {
				continue
			}
			if pendingBreak {
				p.PageBreak = true
				pendingBreak = false
			}
			paras = append(paras, p)
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "hr":
				pendingBreak = true
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				appendBlock(elementRuns(n, true))
				return
			case "p", "li", "td", "blockquote":
				appendBlock(elementRuns(n, false))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return paras, nil
}

// elementRuns collects the emphasis-flagged text runs of a block element.
// br elements become newline runs so splitRunsAtNewlines yields one
// paragraph per rendered line.
func elementRuns(n *html.Node, bold bool) []document.Run {
	var runs []document.Run
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			if c.Data != "" {
				runs = append(runs, document.Run{Text: c.Data, Bold: bold})
			}
		case c.Type == html.ElementNode && c.Data == "br":
			runs = append(runs, document.Run{Text: "\n", Bold: bold})
		case c.Type == html.ElementNode && (c.Data == "b" || c.Data == "strong"):
			runs = append(runs, elementRuns(c, true)...)
		case c.Type == html.ElementNode:
			runs = append(runs, elementRuns(c, bold)...)
		}
	}
	return runs
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
