package document

import "testing"

func TestParagraph_BoldText(t *testing.T) {
	p := Paragraph{
		Text: "JOHN DOE CS: 500k",
		Runs: []Run{
			{Text: "JOHN DOE "},
			{Text: "CS: 500k", Bold: true},
		},
	}
	if got := p.BoldText(); got != "CS: 500k" {
		t.Errorf("expected %q, got %q", "CS: 500k", got)
	}
}

func TestSection_BoldLinesSkipParagraphsWithoutBold(t *testing.T) {
	sec := Section{
		Paragraphs: []Paragraph{
			{Text: "JOHN DOE", Runs: []Run{{Text: "JOHN DOE"}}},
			{Text: "CS: 500k", Runs: []Run{{Text: "CS: 500k", Bold: true}}},
			{Text: "free text", Runs: []Run{{Text: "free text"}}},
		},
	}
	lines := sec.BoldLines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 bold line, got %d", len(lines))
	}
	if lines[0] != "CS: 500k" {
		t.Errorf("expected %q, got %q", "CS: 500k", lines[0])
	}

	plain := sec.PlainLines()
	if len(plain) != 3 {
		t.Errorf("expected 3 plain lines, got %d", len(plain))
	}
}

func TestNewCandidateRecord_Defaults(t *testing.T) {
	rec := NewCandidateRecord()
	for name, got := range map[string]string{
		"first_name":         rec.FirstName,
		"current_salary":     rec.CurrentSalary,
		"expected_salary":    rec.ExpectedSalary,
		"notice_period":      rec.NoticePeriod,
		"reason_for_leaving": rec.ReasonForLeaving,
	} {
		if got != NA {
			t.Errorf("%s: expected %q, got %q", name, NA, got)
		}
	}
	if rec.Summary != "" {
		t.Errorf("expected empty summary, got %q", rec.Summary)
	}
}

func TestCandidateRecord_RowMatchesColumns(t *testing.T) {
	rec := CandidateRecord{
		FirstName:        "JOHN DOE",
		CurrentSalary:    "500k",
		ExpectedSalary:   "700k",
		NoticePeriod:     "30 days",
		ReasonForLeaving: "better opportunity",
		Summary:          "JOHN DOE\nCS: 500k",
	}
	row := rec.Row()
	if len(row) != len(Columns) {
		t.Fatalf("expected %d values, got %d", len(Columns), len(row))
	}
	want := []string{"JOHN DOE", "500k", "700k", "30 days", "better opportunity", "JOHN DOE\nCS: 500k"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("column %q: expected %q, got %q", Columns[i], w, row[i])
		}
	}
}
