package form

import (
	"strconv"
	"strings"
)

// Report is the completeness verdict for one section. Validation is
// advisory: nothing here gates navigation, rendering, or export.
type Report struct {
	Section  Section
	Complete bool
	Missing  []string
}

// Check returns the completeness report for one section.
func Check(s State, section Section) Report {
	r := Report{Section: section}
	missing := func(cond bool, field string) {
		if !cond {
			r.Missing = append(r.Missing, field)
		}
	}
	switch section {
	case SectionOverview:
		missing(strings.TrimSpace(s.ProjectName) != "", "projectName")
		missing(s.ProjectType != "", "projectType")
		missing(len(s.TargetUsers) > 0, "targetUsers")
		missing(s.Motivation != "", "motivation")
	case SectionProblem:
		missing(strings.TrimSpace(s.ProblemDescription) != "", "problemDescription")
		missing(s.ImpactLevel != "", "impactLevel")
	case SectionSolution:
		missing(strings.TrimSpace(s.SolutionDescription) != "", "solutionDescription")
		missing(s.Platform != "", "platform")
		missing(s.Complexity != "", "complexity")
	case SectionFeatures:
		missing(len(s.CoreFeatures) > 0, "coreFeatures")
	case SectionTechnical:
		missing(s.DataHandling != "", "dataHandling")
		missing(s.SecurityLevel != "", "securityLevel")
	case SectionSuccess:
		missing(len(s.SuccessMetrics) > 0, "successMetrics")
		missing(len(s.DoneItems) > 0, "doneItems")
	case SectionResources:
		any := false
		for _, list := range s.ResourceLists() {
			if len(list.Items) > 0 {
				any = true
				break
			}
		}
		missing(any, "resources")
	}
	r.Complete = len(r.Missing) == 0
	return r
}

// CheckAll reports every section in interview order.
func CheckAll(s State) []Report {
	reports := make([]Report, 0, len(Sections()))
	for _, section := range Sections() {
		reports = append(reports, Check(s, section))
	}
	return reports
}

// FieldError is a non-blocking per-field input problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors reports invalid per-field input, currently non-numeric text in
// the numeric-string fields. These never block navigation or export.
func FieldErrors(s State) []FieldError {
	var errs []FieldError
	numeric := []struct {
		field string
		value string
	}{
		{"timeAmount", s.TimeAmount},
		{"maxFileSize", s.MaxFileSize},
		{"responseTime", s.ResponseTime},
		{"concurrentUsers", s.ConcurrentUsers},
	}
	for _, n := range numeric {
		v := strings.TrimSpace(n.value)
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			errs = append(errs, FieldError{Field: n.field, Message: "must be a number"})
		}
	}
	return errs
}
