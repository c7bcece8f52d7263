package document

import "strings"

// NA is the value of every record field for which no data was found.
const NA = "NA"

// Run is a contiguous run of paragraph text with a single emphasis state.
type Run struct {
	Text string
	Bold bool
}

// Paragraph is one ordered unit of document text.
type Paragraph struct {
	Text      string // trimmed plain text, "" for blank paragraphs
	Runs      []Run
	PageBreak bool // a structural page/section break precedes this paragraph
}

// Blank reports whether the paragraph carries no visible text.
func (p Paragraph) Blank() bool { return p.Text == "" }

// BoldText returns the concatenation of the paragraph's bold runs, trimmed.
func (p Paragraph) BoldText() string {
	var b strings.Builder
	for _, r := range p.Runs {
		if r.Bold {
			b.WriteString(r.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// Section is a contiguous run of retained paragraphs describing one candidate.
type Section struct {
	Paragraphs []Paragraph
}

// PlainLines returns the plain text of each paragraph, in order.
func (s Section) PlainLines() []string {
	lines := make([]string, 0, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		lines = append(lines, p.Text)
	}
	return lines
}

// BoldLines returns one line per paragraph that has bold runs; paragraphs
// without bold runs contribute nothing.
func (s Section) BoldLines() []string {
	var lines []string
	for _, p := range s.Paragraphs {
		if t := p.BoldText(); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// CandidateRecord is the structured output for one section.
type CandidateRecord struct {
	FirstName        string `json:"first_name"`
	CurrentSalary    string `json:"current_salary"`
	ExpectedSalary   string `json:"expected_salary"`
	NoticePeriod     string `json:"notice_period"`
	ReasonForLeaving string `json:"reason_for_leaving"`
	Summary          string `json:"summary"`
}

// Columns is the fixed export column order.
var Columns = []string{"First Name", "CS", "ES", "Notice Period", "RFL", "Summary"}

// NewCandidateRecord returns a record with every field at its default.
func NewCandidateRecord() CandidateRecord {
	return CandidateRecord{
		FirstName:        NA,
		CurrentSalary:    NA,
		ExpectedSalary:   NA,
		NoticePeriod:     NA,
		ReasonForLeaving: NA,
		Summary:          "",
	}
}

// Row returns the record's values in Columns order.
func (r CandidateRecord) Row() []string {
	return []string{
		r.FirstName,
		r.CurrentSalary,
		r.ExpectedSalary,
		r.NoticePeriod,
		r.ReasonForLeaving,
		r.Summary,
	}
}
