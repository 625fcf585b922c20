package form

import (
	"fmt"
	"strings"
)

// Mutation intents. Every mutation reads a full State and returns an updated
// copy; callers replace their snapshot with the result. Nothing here touches
// shared state.

// Toggle adds tag to the set when absent and removes it when present,
// preserving the selection order of the remaining tags.
func Toggle[T comparable](set []T, tag T) []T {
	out := make([]T, 0, len(set)+1)
	found := false
	for _, t := range set {
		if t == tag {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		out = append(out, tag)
	}
	return out
}

// Append adds an item to the end of a sequence.
func Append[T any](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

// SetAt replaces the element at index i.
func SetAt[T any](list []T, i int, item T) ([]T, error) {
	if i < 0 || i >= len(list) {
		return nil, fmt.Errorf("index %d out of range (len %d)", i, len(list))
	}
	out := make([]T, len(list))
	copy(out, list)
	out[i] = item
	return out, nil
}

// RemoveAt drops the element at index i, shifting later elements down.
func RemoveAt[T any](list []T, i int) ([]T, error) {
	if i < 0 || i >= len(list) {
		return nil, fmt.Errorf("index %d out of range (len %d)", i, len(list))
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return out, nil
}

// SetField sets a scalar field by its JSON name, validating enumerated
// values. Unknown fields and invalid enum values are errors; the input state
// is returned unchanged alongside them.
func SetField(s State, field, value string) (State, error) {
	switch field {
	case "projectName":
		s.ProjectName = value
	case "projectType":
		pt := ProjectType(value)
		if value != "" && !pt.Valid() {
			return s, fmt.Errorf("invalid project type %q", value)
		}
		s.ProjectType = pt
	case "projectTypeOther":
		s.ProjectTypeOther = value
	case "motivation":
		m := Motivation(value)
		if value != "" && !m.Valid() {
			return s, fmt.Errorf("invalid motivation %q", value)
		}
		s.Motivation = m
	case "problemDescription":
		s.ProblemDescription = value
	case "impactLevel":
		l := ImpactLevel(value)
		if value != "" && !l.Valid() {
			return s, fmt.Errorf("invalid impact level %q", value)
		}
		s.ImpactLevel = l
	case "timeAmount":
		s.TimeAmount = value
	case "timeUnit":
		u := TimeUnit(value)
		if value != "" && !u.Valid() {
			return s, fmt.Errorf("invalid time unit %q", value)
		}
		s.TimeUnit = u
	case "timeFrequency":
		f := TimeFrequency(value)
		if value != "" && !f.Valid() {
			return s, fmt.Errorf("invalid time frequency %q", value)
		}
		s.TimeFrequency = f
	case "solutionDescription":
		s.SolutionDescription = value
	case "platform":
		p := Platform(value)
		if value != "" && !p.Valid() {
			return s, fmt.Errorf("invalid platform %q", value)
		}
		s.Platform = p
	case "techStackOther":
		s.TechStackOther = value
	case "complexity":
		c := Complexity(value)
		if value != "" && !c.Valid() {
			return s, fmt.Errorf("invalid complexity %q", value)
		}
		s.Complexity = c
	case "maxFileSize":
		s.MaxFileSize = value
	case "responseTime":
		s.ResponseTime = value
	case "concurrentUsers":
		s.ConcurrentUsers = value
	case "dataHandling":
		d := DataHandling(value)
		if value != "" && !d.Valid() {
			return s, fmt.Errorf("invalid data handling %q", value)
		}
		s.DataHandling = d
	case "securityLevel":
		l := SecurityLevel(value)
		if value != "" && !l.Valid() {
			return s, fmt.Errorf("invalid security level %q", value)
		}
		s.SecurityLevel = l
	case "startDate":
		s.StartDate = value
	case "endDate":
		s.EndDate = value
	case "reviewProcess":
		s.ReviewProcess = value
	default:
		return s, fmt.Errorf("unknown scalar field %q", field)
	}
	return s, nil
}

// AddItem appends a value to a collection field by its JSON name. Tag sets
// dedupe; a value already present is left alone. Success metrics use the
// form "name:target:unit".
func AddItem(s State, field, value string) (State, error) {
	switch field {
	case "targetUsers":
		t := TargetUser(value)
		if !t.Valid() {
			return s, fmt.Errorf("invalid target user %q", value)
		}
		if !contains(s.TargetUsers, t) {
			s.TargetUsers = Append(s.TargetUsers, t)
		}
	case "workarounds":
		w := Workaround(value)
		if !w.Valid() {
			return s, fmt.Errorf("invalid workaround %q", value)
		}
		if !contains(s.Workarounds, w) {
			s.Workarounds = Append(s.Workarounds, w)
		}
	case "techStack":
		t := TechTag(value)
		if !t.Valid() {
			return s, fmt.Errorf("invalid tech tag %q", value)
		}
		if !contains(s.TechStack, t) {
			s.TechStack = Append(s.TechStack, t)
		}
	case "browserSupport":
		b := BrowserTag(value)
		if !b.Valid() {
			return s, fmt.Errorf("invalid browser tag %q", value)
		}
		if !contains(s.BrowserSupport, b) {
			s.BrowserSupport = Append(s.BrowserSupport, b)
		}
	case "dependencies":
		d := DependencyTag(value)
		if !d.Valid() {
			return s, fmt.Errorf("invalid dependency tag %q", value)
		}
		if !contains(s.Dependencies, d) {
			s.Dependencies = Append(s.Dependencies, d)
		}
	case "coreFeatures":
		s.CoreFeatures = Append(s.CoreFeatures, value)
	case "niceToHaveFeatures":
		s.NiceToHaveFeatures = Append(s.NiceToHaveFeatures, value)
	case "excludedFeatures":
		s.ExcludedFeatures = Append(s.ExcludedFeatures, value)
	case "doneItems":
		s.DoneItems = Append(s.DoneItems, value)
	case "successMetrics":
		m, err := parseMetric(value)
		if err != nil {
			return s, err
		}
		s.SuccessMetrics = Append(s.SuccessMetrics, m)
	case "referenceDocuments":
		s.ReferenceDocuments = Append(s.ReferenceDocuments, value)
	case "dataSourceUrls":
		s.DataSourceURLs = Append(s.DataSourceURLs, value)
	case "designReferences":
		s.DesignReferences = Append(s.DesignReferences, value)
	case "competitorExamples":
		s.CompetitorExamples = Append(s.CompetitorExamples, value)
	case "technicalReferences":
		s.TechnicalReferences = Append(s.TechnicalReferences, value)
	default:
		return s, fmt.Errorf("unknown collection field %q", field)
	}
	return s, nil
}

// RemoveItemAt removes the element at index from a collection field.
func RemoveItemAt(s State, field string, index int) (State, error) {
	var err error
	switch field {
	case "targetUsers":
		s.TargetUsers, err = RemoveAt(s.TargetUsers, index)
	case "workarounds":
		s.Workarounds, err = RemoveAt(s.Workarounds, index)
	case "techStack":
		s.TechStack, err = RemoveAt(s.TechStack, index)
	case "browserSupport":
		s.BrowserSupport, err = RemoveAt(s.BrowserSupport, index)
	case "dependencies":
		s.Dependencies, err = RemoveAt(s.Dependencies, index)
	case "coreFeatures":
		s.CoreFeatures, err = RemoveAt(s.CoreFeatures, index)
	case "niceToHaveFeatures":
		s.NiceToHaveFeatures, err = RemoveAt(s.NiceToHaveFeatures, index)
	case "excludedFeatures":
		s.ExcludedFeatures, err = RemoveAt(s.ExcludedFeatures, index)
	case "doneItems":
		s.DoneItems, err = RemoveAt(s.DoneItems, index)
	case "successMetrics":
		s.SuccessMetrics, err = RemoveAt(s.SuccessMetrics, index)
	case "referenceDocuments":
		s.ReferenceDocuments, err = RemoveAt(s.ReferenceDocuments, index)
	case "dataSourceUrls":
		s.DataSourceURLs, err = RemoveAt(s.DataSourceURLs, index)
	case "designReferences":
		s.DesignReferences, err = RemoveAt(s.DesignReferences, index)
	case "competitorExamples":
		s.CompetitorExamples, err = RemoveAt(s.CompetitorExamples, index)
	case "technicalReferences":
		s.TechnicalReferences, err = RemoveAt(s.TechnicalReferences, index)
	default:
		return s, fmt.Errorf("unknown collection field %q", field)
	}
	if err != nil {
		return s, fmt.Errorf("%s: %w", field, err)
	}
	return s, nil
}

func parseMetric(value string) (SuccessMetric, error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 {
		return SuccessMetric{}, fmt.Errorf("metric %q must be name:target:unit", value)
	}
	unit := MetricUnit(strings.TrimSpace(parts[2]))
	if !unit.Valid() {
		return SuccessMetric{}, fmt.Errorf("invalid metric unit %q", parts[2])
	}
	return SuccessMetric{
		Name:   strings.TrimSpace(parts[0]),
		Target: strings.TrimSpace(parts[1]),
		Unit:   unit,
	}, nil
}

func contains[T comparable](set []T, tag T) bool {
	for _, t := range set {
		if t == tag {
			return true
		}
	}
	return false
}
