// Package reader converts raw document bytes into the ordered paragraph
// sequence the segmenter consumes.
package reader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rosterly/candex/internal/document"
)

// Reader parses one document format into paragraphs.
type Reader interface {
	Read(r io.Reader, filename string) ([]document.Paragraph, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".docx":     true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// ForFile returns the appropriate reader for a filename.
func ForFile(filename string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DOCXReader{}, nil
	case ".txt":
		return &TextReader{}, nil
	case ".md", ".markdown":
		return &MarkdownReader{}, nil
	case ".html", ".htm":
		return &HTMLReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// paragraphFromRuns builds a paragraph whose plain text is the trimmed
// concatenation of its runs.
func paragraphFromRuns(runs []document.Run) document.Paragraph {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return document.Paragraph{
		Text: strings.TrimSpace(b.String()),
		Runs: runs,
	}
}

// splitRunsAtNewlines breaks a flat run sequence into one paragraph per
// line, keeping each fragment's emphasis flag. Readers whose source packs
// several lines into one block (markdown soft breaks, html <br>) use it so
// the extractor still sees one label per line.
func splitRunsAtNewlines(runs []document.Run) []document.Paragraph {
	var paras []document.Paragraph
	var cur []document.Run
	for _, r := range runs {
		parts := strings.Split(r.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				paras = append(paras, paragraphFromRuns(cur))
				cur = nil
			}
			if part != "" {
				cur = append(cur, document.Run{Text: part, Bold: r.Bold})
			}
		}
	}
	if len(cur) > 0 {
		paras = append(paras, paragraphFromRuns(cur))
	}
	return paras
}
