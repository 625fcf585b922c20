package form

import "math"

// Progress is the overall completion picture used for the progress bar and
// per-section badges.
type Progress struct {
	Percent   int              `json:"percent"`
	Completed map[Section]bool `json:"completed"`
}

// Evaluate computes the completion percentage: round(100 × complete / total)
// over the seven sections. Pure and stable under re-evaluation.
func Evaluate(s State) Progress {
	completed := make(map[Section]bool, len(Sections()))
	count := 0
	for _, report := range CheckAll(s) {
		completed[report.Section] = report.Complete
		if report.Complete {
			count++
		}
	}
	percent := int(math.Round(float64(count) / float64(len(Sections())) * 100))
	return Progress{Percent: percent, Completed: completed}
}
