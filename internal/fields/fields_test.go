package fields

import (
	"strings"
	"testing"

	"github.com/rosterly/candex/internal/document"
)

func plainSection(lines ...string) document.Section {
	var sec document.Section
	for _, l := range lines {
		sec.Paragraphs = append(sec.Paragraphs, document.Paragraph{
			Text: l,
			Runs: []document.Run{{Text: l}},
		})
	}
	return sec
}

func TestExtract_BasicLabels(t *testing.T) {
	sec := plainSection(
		"JOHN DOE",
		"CS: 500k",
		"ES: 700k",
		"NOTICE PERIOD: 30 days",
		"RFL: better opportunity",
	)
	rec := Extract(sec)

	if rec.FirstName != "JOHN DOE" {
		t.Errorf("expected first name %q, got %q", "JOHN DOE", rec.FirstName)
	}
	if rec.CurrentSalary != "500k" {
		t.Errorf("expected CS %q, got %q", "500k", rec.CurrentSalary)
	}
	if rec.ExpectedSalary != "700k" {
		t.Errorf("expected ES %q, got %q", "700k", rec.ExpectedSalary)
	}
	if rec.NoticePeriod != "30 days" {
		t.Errorf("expected notice period %q, got %q", "30 days", rec.NoticePeriod)
	}
	if rec.ReasonForLeaving != "better opportunity" {
		t.Errorf("expected RFL %q, got %q", "better opportunity", rec.ReasonForLeaving)
	}
}

func TestExtract_SummaryIsVerbatimJoin(t *testing.T) {
	lines := []string{"JOHN DOE", "CS: 500k", "some free text"}
	sec := plainSection(lines...)

	rec := Extract(sec)
	want := strings.Join(lines, "\n")
	if rec.Summary != want {
		t.Errorf("expected summary %q, got %q", want, rec.Summary)
	}

	// Re-running extraction yields byte-identical output.
	again := Extract(sec)
	if again != rec {
		t.Errorf("expected identical records, got %+v and %+v", rec, again)
	}
}

func TestExtract_DefaultsWhenNoLabelsMatch(t *testing.T) {
	sec := plainSection("JOHN DOE", "ten years in sales", "available immediately")
	rec := Extract(sec)

	for name, got := range map[string]string{
		"current_salary":     rec.CurrentSalary,
		"expected_salary":    rec.ExpectedSalary,
		"notice_period":      rec.NoticePeriod,
		"reason_for_leaving": rec.ReasonForLeaving,
	} {
		if got != document.NA {
			t.Errorf("%s: expected %q, got %q", name, document.NA, got)
		}
	}
}

func TestExtract_EmptyLabelValueDoesNotOverwrite(t *testing.T) {
	sec := plainSection("JOHN DOE", "CS:")
	rec := Extract(sec)
	if rec.CurrentSalary != document.NA {
		t.Errorf("expected %q for empty label value, got %q", document.NA, rec.CurrentSalary)
	}
}

func TestExtract_SameLineTruncation(t *testing.T) {
	sec := plainSection("JOHN DOE", "CS: 500k ES: 600k")
	rec := Extract(sec)

	if rec.CurrentSalary != "500k" {
		t.Errorf("expected CS %q, got %q", "500k", rec.CurrentSalary)
	}
	// The line was consumed by the CS rule; ES stays at its default.
	if rec.ExpectedSalary != document.NA {
		t.Errorf("expected ES %q, got %q", document.NA, rec.ExpectedSalary)
	}
}

func TestExtract_UppercaseUnitKeptBeforeNextLabel(t *testing.T) {
	sec := plainSection("JOHN DOE", "CS: 50K ES: 60K")
	rec := Extract(sec)

	if rec.CurrentSalary != "50K" {
		t.Errorf("expected CS %q, got %q", "50K", rec.CurrentSalary)
	}
	if rec.ExpectedSalary != document.NA {
		t.Errorf("expected ES %q, got %q", document.NA, rec.ExpectedSalary)
	}
}

func TestExtract_UppercaseUnitWordsKept(t *testing.T) {
	sec := plainSection("JOHN DOE", "CS: 12 LPA ES: 15 LPA")
	rec := Extract(sec)
	if rec.CurrentSalary != "12 LPA" {
		t.Errorf("expected CS %q, got %q", "12 LPA", rec.CurrentSalary)
	}
}

func TestExtract_TruncationAtMultiWordLabel(t *testing.T) {
	sec := plainSection("JOHN DOE", "CS: 500k NOTICE PERIOD: 30 days")
	rec := Extract(sec)

	if rec.CurrentSalary != "500k" {
		t.Errorf("expected CS %q, got %q", "500k", rec.CurrentSalary)
	}
	// The line was consumed by the CS rule; the notice period stays default.
	if rec.NoticePeriod != document.NA {
		t.Errorf("expected notice period %q, got %q", document.NA, rec.NoticePeriod)
	}
}

func TestExtract_RFLContinuationWithUppercaseUnit(t *testing.T) {
	sec := plainSection(
		"JOHN DOE",
		"RFL: salary stuck at",
		"50K PA for two years",
		"CS: 60K",
	)
	rec := Extract(sec)

	if rec.ReasonForLeaving != "salary stuck at 50K PA for two years" {
		t.Errorf("expected RFL %q, got %q", "salary stuck at 50K PA for two years", rec.ReasonForLeaving)
	}
	if rec.CurrentSalary != "60K" {
		t.Errorf("expected CS %q, got %q", "60K", rec.CurrentSalary)
	}
}

func TestExtract_MultiLineRFL(t *testing.T) {
	sec := plainSection(
		"JOHN DOE",
		"RFL: relocation",
		"for family reasons",
		"CS: 500k",
	)
	rec := Extract(sec)

	if rec.ReasonForLeaving != "relocation for family reasons" {
		t.Errorf("expected RFL %q, got %q", "relocation for family reasons", rec.ReasonForLeaving)
	}
	if rec.CurrentSalary != "500k" {
		t.Errorf("expected CS %q, got %q", "500k", rec.CurrentSalary)
	}
}

func TestExtract_RFLRunsToEndOfSection(t *testing.T) {
	sec := plainSection("JOHN DOE", "RFL: wants a", "shorter commute")
	rec := Extract(sec)
	if rec.ReasonForLeaving != "wants a shorter commute" {
		t.Errorf("expected RFL %q, got %q", "wants a shorter commute", rec.ReasonForLeaving)
	}
}

func TestExtract_LabelsAreCaseInsensitive(t *testing.T) {
	sec := plainSection("JOHN DOE", "cs: 500k", "np: 2 weeks")
	rec := Extract(sec)
	if rec.CurrentSalary != "500k" {
		t.Errorf("expected CS %q, got %q", "500k", rec.CurrentSalary)
	}
	if rec.NoticePeriod != "2 weeks" {
		t.Errorf("expected notice period %q, got %q", "2 weeks", rec.NoticePeriod)
	}
}

func TestExtract_BoldValueWinsOverPlain(t *testing.T) {
	sec := document.Section{
		Paragraphs: []document.Paragraph{
			{Text: "JOHN DOE", Runs: []document.Run{{Text: "JOHN DOE"}}},
			{Text: "CS: 10", Runs: []document.Run{{Text: "CS: 10"}}},
			{Text: "CS: 12", Runs: []document.Run{{Text: "CS: 12", Bold: true}}},
		},
	}
	rec := Extract(sec)
	if rec.CurrentSalary != "12" {
		t.Errorf("expected bold CS %q to win, got %q", "12", rec.CurrentSalary)
	}
}

func TestExtract_PlainValueUsedWhenBoldHasNone(t *testing.T) {
	sec := document.Section{
		Paragraphs: []document.Paragraph{
			{Text: "JOHN DOE", Runs: []document.Run{{Text: "JOHN DOE", Bold: true}}},
			{Text: "CS: 500k", Runs: []document.Run{{Text: "CS: 500k"}}},
		},
	}
	rec := Extract(sec)
	if rec.CurrentSalary != "500k" {
		t.Errorf("expected plain CS %q, got %q", "500k", rec.CurrentSalary)
	}
}

func TestExtract_FirstNameIsFirstNonEmptyLine(t *testing.T) {
	sec := plainSection("  Jane Smith  ", "CS: 600k")
	// plainSection stores the padded line verbatim; Extract trims it.
	rec := Extract(sec)
	if rec.FirstName != "Jane Smith" {
		t.Errorf("expected first name %q, got %q", "Jane Smith", rec.FirstName)
	}
}

func TestExtract_RepeatedRFLLastCaptureWins(t *testing.T) {
	sec := plainSection(
		"JOHN DOE",
		"RFL: first reason",
		"CS: 500k",
		"RFL: second reason",
	)
	rec := Extract(sec)
	if rec.ReasonForLeaving != "second reason" {
		t.Errorf("expected RFL %q, got %q", "second reason", rec.ReasonForLeaving)
	}
}

func TestHasFieldLabel(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"CS: 500k", true},
		{"es: 700k", true},
		{"NOTICE PERIOD: 30 days", true},
		{"NP: 1 month", true},
		{"RFL: moving abroad", true},
		{"10 years experience in retail", true},
		{"YEAR of graduation 2019", true},
		{"just a sentence about hobbies", false},
		{"", false},
	}
	for _, c := range cases {
		if got := HasFieldLabel(c.line); got != c.want {
			t.Errorf("HasFieldLabel(%q): expected %v, got %v", c.line, c.want, got)
		}
	}
}
