package form

import "fmt"

// Scalar reads a scalar field by its JSON name. The inverse of SetField.
func Scalar(s State, field string) (string, error) {
	switch field {
	case "projectName":
		return s.ProjectName, nil
	case "projectType":
		return string(s.ProjectType), nil
	case "projectTypeOther":
		return s.ProjectTypeOther, nil
	case "motivation":
		return string(s.Motivation), nil
	case "problemDescription":
		return s.ProblemDescription, nil
	case "impactLevel":
		return string(s.ImpactLevel), nil
	case "timeAmount":
		return s.TimeAmount, nil
	case "timeUnit":
		return string(s.TimeUnit), nil
	case "timeFrequency":
		return string(s.TimeFrequency), nil
	case "solutionDescription":
		return s.SolutionDescription, nil
	case "platform":
		return string(s.Platform), nil
	case "techStackOther":
		return s.TechStackOther, nil
	case "complexity":
		return string(s.Complexity), nil
	case "maxFileSize":
		return s.MaxFileSize, nil
	case "responseTime":
		return s.ResponseTime, nil
	case "concurrentUsers":
		return s.ConcurrentUsers, nil
	case "dataHandling":
		return string(s.DataHandling), nil
	case "securityLevel":
		return string(s.SecurityLevel), nil
	case "startDate":
		return s.StartDate, nil
	case "endDate":
		return s.EndDate, nil
	case "reviewProcess":
		return s.ReviewProcess, nil
	}
	return "", fmt.Errorf("unknown scalar field %q", field)
}

// Items reads a collection field by its JSON name as display strings.
// Success metrics come back in the same name:target:unit form AddItem accepts.
func Items(s State, field string) ([]string, error) {
	switch field {
	case "targetUsers":
		return asStrings(s.TargetUsers), nil
	case "workarounds":
		return asStrings(s.Workarounds), nil
	case "techStack":
		return asStrings(s.TechStack), nil
	case "browserSupport":
		return asStrings(s.BrowserSupport), nil
	case "dependencies":
		return asStrings(s.Dependencies), nil
	case "coreFeatures":
		return s.CoreFeatures, nil
	case "niceToHaveFeatures":
		return s.NiceToHaveFeatures, nil
	case "excludedFeatures":
		return s.ExcludedFeatures, nil
	case "doneItems":
		return s.DoneItems, nil
	case "successMetrics":
		out := make([]string, len(s.SuccessMetrics))
		for i, m := range s.SuccessMetrics {
			out[i] = fmt.Sprintf("%s:%s:%s", m.Name, m.Target, m.Unit)
		}
		return out, nil
	case "referenceDocuments":
		return s.ReferenceDocuments, nil
	case "dataSourceUrls":
		return s.DataSourceURLs, nil
	case "designReferences":
		return s.DesignReferences, nil
	case "competitorExamples":
		return s.CompetitorExamples, nil
	case "technicalReferences":
		return s.TechnicalReferences, nil
	}
	return nil, fmt.Errorf("unknown collection field %q", field)
}

func asStrings[T ~string](set []T) []string {
	out := make([]string, len(set))
	for i, t := range set {
		out[i] = string(t)
	}
	return out
}
