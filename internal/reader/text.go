package reader

import (
	"bufio"
	"io"
	"strings"

	"github.com/rosterly/candex/internal/document"
)

// TextReader handles plain text files. Every source line becomes one
// paragraph; blank lines are kept as blank paragraphs so the segmenter can
// detect blank-run boundaries.
type TextReader struct{}

func (t *TextReader) Read(r io.Reader, filename string) ([]document.Paragraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paras []document.Paragraph
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		p := document.Paragraph{Text: line}
		if line != "" {
			p.Runs = []document.Run{{Text: line}}
		}
		paras = append(paras, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paras, nil
}
