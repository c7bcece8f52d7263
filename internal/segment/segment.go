// Package segment partitions a document's paragraph sequence into
// per-candidate sections.
package segment

import (
	"regexp"
	"strings"

	"github.com/rosterly/candex/internal/document"
	"github.com/rosterly/candex/internal/fields"
)

// Config controls the boundary-detection heuristics.
type Config struct {
	MinPriorLines   int // lines a section must hold before a name line may close it
	LabelLookahead  int // lines after a name line to scan for a field label
	MinSectionWords int // name-split sections shorter than this merge into a neighbor
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		MinPriorLines:   5,
		LabelLookahead:  4,
		MinSectionWords: 10,
	}
}

// Split partitions paragraphs into ordered, non-empty sections. Rules apply
// in priority order, each used only when it yields more than one section:
// structural page breaks, then runs of blank paragraphs, then name-shaped
// lines, else the whole document is one section. The retained (non-blank)
// paragraphs are covered exactly once, in order.
func Split(paras []document.Paragraph, cfg Config) []document.Section {
	if cfg.MinPriorLines <= 0 {
		cfg.MinPriorLines = 5
	}
	if cfg.LabelLookahead <= 0 {
		cfg.LabelLookahead = 4
	}
	if cfg.MinSectionWords <= 0 {
		cfg.MinSectionWords = 10
	}

	retained := retain(paras)
	if len(retained) == 0 {
		return nil
	}

	if secs := splitAtPageBreaks(paras); len(secs) > 1 {
		return secs
	}
	if secs := splitAtBlankRuns(paras); len(secs) > 1 {
		return secs
	}
	if secs := splitAtNameLines(retained, cfg); len(secs) > 1 {
		return secs
	}

	return []document.Section{{Paragraphs: retained}}
}

func retain(paras []document.Paragraph) []document.Paragraph {
	var out []document.Paragraph
	for _, p := range paras {
		if !p.Blank() {
			out = append(out, p)
		}
	}
	return out
}

// splitAtPageBreaks closes a section before every paragraph that carries a
// structural break marker.
func splitAtPageBreaks(paras []document.Paragraph) []document.Section {
	var secs []document.Section
	var cur []document.Paragraph
	for _, p := range paras {
		if p.Blank() {
			continue
		}
		if p.PageBreak && len(cur) > 0 {
			secs = append(secs, document.Section{Paragraphs: cur})
			cur = nil
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		secs = append(secs, document.Section{Paragraphs: cur})
	}
	return secs
}

// splitAtBlankRuns closes a section when two or more consecutive blank
// paragraphs separate content, i.e. three or more newlines in the original
// text stream.
func splitAtBlankRuns(paras []document.Paragraph) []document.Section {
	var secs []document.Section
	var cur []document.Paragraph
	blanks := 0
	for _, p := range paras {
		if p.Blank() {
			blanks++
			continue
		}
		if blanks >= 2 && len(cur) > 0 {
			secs = append(secs, document.Section{Paragraphs: cur})
			cur = nil
		}
		blanks = 0
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		secs = append(secs, document.Section{Paragraphs: cur})
	}
	return secs
}

// allCapsName matches short all-uppercase name lines such as "JOHN DOE".
var allCapsName = regexp.MustCompile(`^[A-Z][A-Z.'-]*(?:\s+[A-Z][A-Z.'-]*){1,3}$`)

// titleCaseName matches alternating-case names such as "John Doe".
var titleCaseName = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}$`)

func isNameLine(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	return allCapsName.MatchString(line) || titleCaseName.MatchString(line)
}

// splitAtNameLines opens a new section at each name-shaped line, provided
// either enough content accumulated before it or a field label follows
// within the lookahead window. The boundary line itself opens the section.
func splitAtNameLines(retained []document.Paragraph, cfg Config) []document.Section {
	var secs []document.Section
	var cur []document.Paragraph
	for i, p := range retained {
		if i > 0 && isNameLine(p.Text) && len(cur) > 0 {
			if len(cur) >= cfg.MinPriorLines || labelNearby(retained, i+1, cfg.LabelLookahead) {
				secs = append(secs, document.Section{Paragraphs: cur})
				cur = nil
			}
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		secs = append(secs, document.Section{Paragraphs: cur})
	}
	return mergeShort(secs, cfg.MinSectionWords)
}

func labelNearby(retained []document.Paragraph, start, lookahead int) bool {
	end := start + lookahead
	if end > len(retained) {
		end = len(retained)
	}
	for _, p := range retained[start:end] {
		if fields.HasFieldLabel(p.Text) {
			return true
		}
	}
	return false
}

// mergeShort folds sections below the word threshold into a neighbor so the
// output still partitions the input exactly.
func mergeShort(secs []document.Section, minWords int) []document.Section {
	if len(secs) <= 1 {
		return secs
	}
	var out []document.Section
	for _, s := range secs {
		if len(out) > 0 && wordCount(s) < minWords {
			last := &out[len(out)-1]
			last.Paragraphs = append(last.Paragraphs, s.Paragraphs...)
			continue
		}
		out = append(out, s)
	}
	// A short leading section has no earlier neighbor; fold it forward.
	if len(out) > 1 && wordCount(out[0]) < minWords {
		out[1].Paragraphs = append(out[0].Paragraphs, out[1].Paragraphs...)
		out = out[1:]
	}
	return out
}

func wordCount(s document.Section) int {
	n := 0
	for _, p := range s.Paragraphs {
		n += len(strings.Fields(p.Text))
	}
	return n
}
