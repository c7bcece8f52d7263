package reader

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/rosterly/candex/internal/document"
)

// MarkdownReader handles Markdown files using goldmark. Strong emphasis
// maps to the bold channel, thematic breaks map to page breaks, and line
// breaks inside a block yield separate paragraphs.
type MarkdownReader struct{}

func (m *MarkdownReader) Read(r io.Reader, filename string) ([]document.Paragraph, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

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

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch b := c.(type) {
			case *ast.Heading:
				// Headings carry candidate names; treat them as emphasized.
				appendBlock(inlineRuns(b, src, true))
			case *ast.Paragraph:
				appendBlock(inlineRuns(b, src, false))
			case *ast.TextBlock:
				appendBlock(inlineRuns(b, src, false))
			case *ast.ThematicBreak:
				pendingBreak = true
			default:
				walk(c)
			}
		}
	}
	walk(doc)

	return paras, nil
}

// inlineRuns flattens a block's inline children into emphasis-flagged runs.
// Soft and hard line breaks become newline runs for splitRunsAtNewlines.
func inlineRuns(n ast.Node, src []byte, bold bool) []document.Run {
	var runs []document.Run
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			if txt := string(t.Value(src)); txt != "" {
				runs = append(runs, document.Run{Text: txt, Bold: bold})
			}
			if t.SoftLineBreak() || t.HardLineBreak() {
				runs = append(runs, document.Run{Text: "\n", Bold: bold})
			}
		case *ast.Emphasis:
			runs = append(runs, inlineRuns(t, src, bold || t.Level >= 2)...)
		default:
			runs = append(runs, inlineRuns(c, src, bold)...)
		}
	}
	return runs
}
