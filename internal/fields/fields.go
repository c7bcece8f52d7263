// Package fields extracts labeled candidate fields from one section of a
// document. Labels are short uppercase prefixes (CS:, ES:, NP:, NOTICE
// PERIOD:, RFL:) marking free-text values.
package fields

import (
	"regexp"
	"strings"

	"github.com/rosterly/candex/internal/document"
)

// Field identifies one labeled record field.
type Field int

const (
	FieldCurrentSalary Field = iota
	FieldExpectedSalary
	FieldNoticePeriod
	FieldReasonForLeaving
)

type labelRule struct {
	field   Field
	pattern *regexp.Regexp // anchored label prefix, ends at the label's colon
}

// labelRules is tested in order against each line; the first match consumes
// the line. Extend the label set here.
var labelRules = []labelRule{
	{FieldCurrentSalary, regexp.MustCompile(`(?i)^CS\s*:`)},
	{FieldExpectedSalary, regexp.MustCompile(`(?i)^ES\s*:`)},
	{FieldNoticePeriod, regexp.MustCompile(`(?i)^(?:NOTICE\s+PERIOD|NP)\s*:`)},
	{FieldReasonForLeaving, regexp.MustCompile(`(?i)^RFL\s*:`)},
}

// genericLabel matches the next uppercase label key in a value, e.g. "ES:"
// or "NOTICE PERIOD:". The key must start at a token boundary, so an
// uppercase unit inside the value ("50K", "12 LPA") cannot open a match.
// The key start is capture group 1.
var genericLabel = regexp.MustCompile(`(?:^|[^0-9A-Za-z])((?:NOTICE PERIOD|[A-Z]+)\s*:)`)

// lineLabel matches a label key opening a line; it closes a multi-line RFL
// capture.
var lineLabel = regexp.MustCompile(`^(?:NOTICE PERIOD|[A-Z]+)\s*:`)

var experienceToken = regexp.MustCompile(`(?i)\b(?:YEAR|EXPERIENCE)`)

// HasFieldLabel reports whether a line opens with a known field label or
// mentions an experience keyword. The segmenter uses it to confirm that a
// name-shaped line really starts a new candidate.
func HasFieldLabel(line string) bool {
	line = strings.TrimSpace(line)
	for _, r := range labelRules {
		if r.pattern.MatchString(line) {
			return true
		}
	}
	return experienceToken.MatchString(line)
}

// Extract produces one candidate record from a section. It is total: absent
// data yields the default value, never an error.
func Extract(sec document.Section) document.CandidateRecord {
	plainLines := sec.PlainLines()

	rec := document.NewCandidateRecord()
	rec.Summary = strings.Join(plainLines, "\n")
	for _, l := range plainLines {
		if t := strings.TrimSpace(l); t != "" {
			rec.FirstName = t
			break
		}
	}

	plain := scanLines(plainLines)
	// Bold text is treated as the curated, authoritative channel: where both
	// channels yield a value, bold wins.
	bold := scanLines(sec.BoldLines())

	rec.CurrentSalary = pick(bold, plain, FieldCurrentSalary)
	rec.ExpectedSalary = pick(bold, plain, FieldExpectedSalary)
	rec.NoticePeriod = pick(bold, plain, FieldNoticePeriod)
	rec.ReasonForLeaving = pick(bold, plain, FieldReasonForLeaving)
	return rec
}

func pick(primary, fallback map[Field]string, f Field) string {
	if v := primary[f]; v != "" {
		return v
	}
	if v := fallback[f]; v != "" {
		return v
	}
	return document.NA
}

// scanLines runs the label rules over a line sequence and returns the values
// found. RFL captures across lines until the next label-shaped line or end
// of input.
func scanLines(lines []string) map[Field]string {
	vals := make(map[Field]string)

	rflOpen := false
	var rflParts []string
	closeRFL := func() {
		if len(rflParts) > 0 {
			vals[FieldReasonForLeaving] = strings.Join(rflParts, " ")
		}
		rflOpen = false
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rflOpen {
			if !lineLabel.MatchString(line) {
				rflParts = append(rflParts, line)
				continue
			}
			// A label line closes the capture and is scanned normally.
			closeRFL()
		}

		for _, rule := range labelRules {
			loc := rule.pattern.FindStringIndex(line)
			if loc == nil {
				continue
			}
			value := line[loc[1]:]
			// One label's value must not swallow the next label's key.
			if cut := genericLabel.FindStringSubmatchIndex(value); cut != nil {
				value = value[:cut[2]]
			}
			value = strings.TrimSpace(value)

			if rule.field == FieldReasonForLeaving {
				rflOpen = true
				rflParts = rflParts[:0]
				if value != "" {
					rflParts = append(rflParts, value)
				}
			} else if value != "" {
				vals[rule.field] = value
			}
			break
		}
	}
	if rflOpen {
		closeRFL()
	}

	return vals
}
