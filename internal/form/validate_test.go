package form

import "testing"

func completeState() State {
	s := NewState()
	s.ProjectName = "Invoice Tracker"
	s.ProjectType = ProjectBrowser
	s.TargetUsers = []TargetUser{UserYourself}
	s.Motivation = MotivationProductivity
	s.ProblemDescription = "Invoices are tracked by hand in a spreadsheet"
	s.ImpactLevel = ImpactMedium
	s.SolutionDescription = "Small browser app with local storage"
	s.Platform = PlatformBrowser
	s.Complexity = ComplexitySimple
	s.CoreFeatures = []string{"Add invoices", "Mark invoices paid"}
	s.DataHandling = DataLocal
	s.SecurityLevel = SecurityPublic
	s.SuccessMetrics = []SuccessMetric{{Name: "Entry time", Target: "30", Unit: UnitSeconds}}
	s.DoneItems = []string{"All invoices visible in one list"}
	s.ReferenceDocuments = []string{"existing-spreadsheet.xlsx"}
	return s
}

func TestEmptyStateNoSectionComplete(t *testing.T) {
	for _, report := range CheckAll(NewState()) {
		if report.Complete {
			t.Errorf("section %s unexpectedly complete on empty state", report.Section)
		}
		if len(report.Missing) == 0 {
			t.Errorf("section %s reports no missing fields on empty state", report.Section)
		}
	}
}

func TestCompleteStateAllSectionsComplete(t *testing.T) {
	for _, report := range CheckAll(completeState()) {
		if !report.Complete {
			t.Errorf("section %s incomplete, missing %v", report.Section, report.Missing)
		}
	}
}

func TestOverviewMissingFieldsEnumerated(t *testing.T) {
	s := NewState()
	s.ProjectName = "Named"
	report := Check(s, SectionOverview)
	if report.Complete {
		t.Fatal("overview should be incomplete")
	}
	want := []string{"projectType", "targetUsers", "motivation"}
	if len(report.Missing) != len(want) {
		t.Fatalf("missing = %v, want %v", report.Missing, want)
	}
	for i, field := range want {
		if report.Missing[i] != field {
			t.Errorf("missing[%d] = %s, want %s", i, report.Missing[i], field)
		}
	}
}

func TestResourcesCompleteWithAnySingleList(t *testing.T) {
	s := NewState()
	s.CompetitorExamples = []string{"https://example.com"}
	if !Check(s, SectionResources).Complete {
		t.Error("resources should be complete with one non-empty list")
	}
}

func TestWhitespaceOnlyScalarCountsAsUnset(t *testing.T) {
	s := completeState()
	s.ProblemDescription = "   "
	if Check(s, SectionProblem).Complete {
		t.Error("whitespace-only problem description should not count as set")
	}
}

func TestFieldErrorsFlagNonNumericInput(t *testing.T) {
	s := NewState()
	s.TimeAmount = "about ten"
	s.MaxFileSize = "50"
	s.ConcurrentUsers = "lots"
	errs := FieldErrors(s)
	if len(errs) != 2 {
		t.Fatalf("got %d field errors, want 2: %v", len(errs), errs)
	}
	if errs[0].Field != "timeAmount" || errs[1].Field != "concurrentUsers" {
		t.Errorf("unexpected fields: %v", errs)
	}
}

func TestFieldErrorsIgnoreEmptyValues(t *testing.T) {
	if errs := FieldErrors(NewState()); len(errs) != 0 {
		t.Errorf("empty state should have no field errors, got %v", errs)
	}
}
