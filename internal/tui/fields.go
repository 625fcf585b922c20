package tui

import "github.com/jerops/prd-generator/internal/form"

type fieldKind int

const (
	kindText fieldKind = iota
	kindSelect
	kindMulti
	kindList
	kindMetrics
)

// fieldSpec describes one editable entry of a section. name is the record
// field name used by the mutation intents.
type fieldSpec struct {
	name    string
	label   string
	kind    fieldKind
	options []string
	hint    string
}

func sectionTitle(sec form.Section) string {
	switch sec {
	case form.SectionOverview:
		return "Project Overview"
	case form.SectionProblem:
		return "Problem Statement"
	case form.SectionSolution:
		return "Proposed Solution"
	case form.SectionFeatures:
		return "Feature Requirements"
	case form.SectionTechnical:
		return "Technical Specifications"
	case form.SectionSuccess:
		return "Success Criteria"
	case form.SectionResources:
		return "Resources & References"
	}
	return string(sec)
}

func options[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func sectionFields(sec form.Section) []fieldSpec {
	switch sec {
	case form.SectionOverview:
		return []fieldSpec{
			{name: "projectName", label: "Project Name", kind: kindText},
			{name: "projectType", label: "Project Type", kind: kindSelect, options: options(form.ProjectTypes())},
			{name: "projectTypeOther", label: "Project Type (other)", kind: kindText, hint: "used when type is \"other\""},
			{name: "targetUsers", label: "Target Users", kind: kindMulti, options: options(form.TargetUsers())},
			{name: "motivation", label: "Motivation", kind: kindSelect, options: options(form.Motivations())},
		}
	case form.SectionProblem:
		return []fieldSpec{
			{name: "problemDescription", label: "Problem Description", kind: kindText},
			{name: "impactLevel", label: "Impact Level", kind: kindSelect, options: options(form.ImpactLevels())},
			{name: "timeAmount", label: "Time Lost", kind: kindText, hint: "a number"},
			{name: "timeUnit", label: "Time Unit", kind: kindSelect, options: options(form.TimeUnits())},
			{name: "timeFrequency", label: "Per", kind: kindSelect, options: options(form.TimeFrequencies())},
			{name: "workarounds", label: "Current Workarounds", kind: kindMulti, options: options(form.Workarounds())},
		}
	case form.SectionSolution:
		return []fieldSpec{
			{name: "solutionDescription", label: "Solution Description", kind: kindText},
			{name: "platform", label: "Platform", kind: kindSelect, options: options(form.Platforms())},
			{name: "techStack", label: "Tech Stack", kind: kindMulti, options: options(form.TechTags())},
			{name: "techStackOther", label: "Tech Stack (other)", kind: kindText, hint: "used when stack includes \"other\""},
			{name: "complexity", label: "Complexity", kind: kindSelect, options: options(form.Complexities())},
		}
	case form.SectionFeatures:
		return []fieldSpec{
			{name: "coreFeatures", label: "Core Features", kind: kindList},
			{name: "niceToHaveFeatures", label: "Nice-to-Have Features", kind: kindList},
			{name: "excludedFeatures", label: "Explicitly Excluded", kind: kindList},
		}
	case form.SectionTechnical:
		return []fieldSpec{
			{name: "browserSupport", label: "Browser Support", kind: kindMulti, options: options(form.BrowserTags())},
			{name: "maxFileSize", label: "Max File Size (MB)", kind: kindText, hint: "a number"},
			{name: "responseTime", label: "Response Time (s)", kind: kindText, hint: "a number"},
			{name: "concurrentUsers", label: "Concurrent Users", kind: kindText, hint: "a number"},
			{name: "dataHandling", label: "Data Handling", kind: kindSelect, options: options(form.DataHandlings())},
			{name: "securityLevel", label: "Security Level", kind: kindSelect, options: options(form.SecurityLevels())},
			{name: "dependencies", label: "Dependencies", kind: kindMulti, options: options(form.DependencyTags())},
		}
	case form.SectionSuccess:
		return []fieldSpec{
			{name: "successMetrics", label: "Success Metrics", kind: kindMetrics, hint: "name:target:unit"},
			{name: "doneItems", label: "Definition of Done", kind: kindList},
			{name: "startDate", label: "Start Date", kind: kindText, hint: "YYYY-MM-DD"},
			{name: "endDate", label: "Target Date", kind: kindText, hint: "YYYY-MM-DD"},
			{name: "reviewProcess", label: "Review Process", kind: kindText},
		}
	case form.SectionResources:
		return []fieldSpec{
			{name: "referenceDocuments", label: "Reference Documents", kind: kindList},
			{name: "dataSourceUrls", label: "Data Source URLs", kind: kindList},
			{name: "designReferences", label: "Design References", kind: kindList},
			{name: "competitorExamples", label: "Competitor Examples", kind: kindList},
			{name: "technicalReferences", label: "Technical References", kind: kindList},
		}
	}
	return nil
}
