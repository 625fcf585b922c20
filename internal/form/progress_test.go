package form

import "testing"

func TestEmptyStateZeroPercent(t *testing.T) {
	p := Evaluate(NewState())
	if p.Percent != 0 {
		t.Errorf("percent = %d, want 0", p.Percent)
	}
}

func TestCompleteStateHundredPercent(t *testing.T) {
	p := Evaluate(completeState())
	if p.Percent != 100 {
		t.Errorf("percent = %d, want 100", p.Percent)
	}
	for _, section := range Sections() {
		if !p.Completed[section] {
			t.Errorf("section %s not marked complete", section)
		}
	}
}

func TestSingleSectionRoundsToFourteen(t *testing.T) {
	s := NewState()
	s.CoreFeatures = []string{"One feature"}
	p := Evaluate(s)
	// round(100 * 1/7) = 14
	if p.Percent != 14 {
		t.Errorf("percent = %d, want 14", p.Percent)
	}
}

func TestClearingRequiredFieldDropsSection(t *testing.T) {
	s := completeState()
	before := Evaluate(s)
	if before.Percent != 100 {
		t.Fatalf("precondition: percent = %d, want 100", before.Percent)
	}
	s.SecurityLevel = ""
	after := Evaluate(s)
	if after.Completed[SectionTechnical] {
		t.Error("technical section should drop to incomplete")
	}
	if after.Percent >= 100 {
		t.Errorf("percent = %d, want < 100", after.Percent)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	s := completeState()
	s.CoreFeatures = []string{"Only one"}
	first := Evaluate(s)
	second := Evaluate(s)
	if first.Percent != second.Percent {
		t.Errorf("re-evaluation changed percent: %d then %d", first.Percent, second.Percent)
	}
	for section, done := range first.Completed {
		if second.Completed[section] != done {
			t.Errorf("section %s flag changed between evaluations", section)
		}
	}
}
