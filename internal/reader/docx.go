package reader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/rosterly/candex/internal/document"
)

// DOCXReader handles .docx files.
type DOCXReader struct{}

func (d *DOCXReader) Read(r io.Reader, filename string) ([]document.Paragraph, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "candex-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var paras []document.Paragraph
	pendingBreak := false

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		p, breakBefore, breakAfter := docxParagraph(para)
		if pendingBreak || breakBefore {
			p.PageBreak = true
		}
		pendingBreak = breakAfter
		paras = append(paras, p)
	}

	return paras, nil
}

// docxParagraph flattens a go-docx paragraph into runs with emphasis flags.
// A page-break run seen before any text breaks before this paragraph; one
// seen after text breaks before the next.
func docxParagraph(para *docx.Paragraph) (p document.Paragraph, breakBefore, breakAfter bool) {
	sawText := false
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		bold := run.RunProperties != nil && run.RunProperties.Bold != nil

		var buf strings.Builder
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				buf.WriteString(t.Text)
			case *docx.BarterRabbet:
				if t.Type == "page" {
					if sawText {
						breakAfter = true
					} else {
						breakBefore = true
					}
				}
			}
		}
		if buf.Len() > 0 {
			sawText = true
			p.Runs = append(p.Runs, document.Run{Text: buf.String(), Bold: bold})
		}
	}

	var full strings.Builder
	for _, r := range p.Runs {
		full.WriteString(r.Text)
	}
	p.Text = strings.TrimSpace(full.String())
	return p, breakBefore, breakAfter
}
