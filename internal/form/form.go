package form

// Section identifies one logical group of form fields.
type Section string

const (
	SectionOverview  Section = "overview"
	SectionProblem   Section = "problem"
	SectionSolution  Section = "solution"
	SectionFeatures  Section = "features"
	SectionTechnical Section = "technical"
	SectionSuccess   Section = "success"
	SectionResources Section = "resources"
)

// Sections returns all form sections in interview order.
func Sections() []Section {
	return []Section{
		SectionOverview,
		SectionProblem,
		SectionSolution,
		SectionFeatures,
		SectionTechnical,
		SectionSuccess,
		SectionResources,
	}
}

// SuccessMetric is one measurable success criterion.
type SuccessMetric struct {
	Name   string     `json:"name"`
	Target string     `json:"target"`
	Unit   MetricUnit `json:"unit"`
}

// State is the complete structured record of all interview answers.
// JSON field names match the persisted blob format, so saved state from
// earlier versions of the tool rehydrates verbatim.
type State struct {
	// Overview
	ProjectName      string       `json:"projectName"`
	ProjectType      ProjectType  `json:"projectType"`
	ProjectTypeOther string       `json:"projectTypeOther"`
	TargetUsers      []TargetUser `json:"targetUsers"`
	Motivation       Motivation   `json:"motivation"`

	// Problem
	ProblemDescription string        `json:"problemDescription"`
	ImpactLevel        ImpactLevel   `json:"impactLevel"`
	TimeAmount         string        `json:"timeAmount"`
	TimeUnit           TimeUnit      `json:"timeUnit"`
	TimeFrequency      TimeFrequency `json:"timeFrequency"`
	Workarounds        []Workaround  `json:"workarounds"`

	// Solution
	SolutionDescription string     `json:"solutionDescription"`
	Platform            Platform   `json:"platform"`
	TechStack           []TechTag  `json:"techStack"`
	TechStackOther      string     `json:"techStackOther"`
	Complexity          Complexity `json:"complexity"`

	// Features
	CoreFeatures       []string `json:"coreFeatures"`
	NiceToHaveFeatures []string `json:"niceToHaveFeatures"`
	ExcludedFeatures   []string `json:"excludedFeatures"`

	// Technical
	BrowserSupport  []BrowserTag    `json:"browserSupport"`
	MaxFileSize     string          `json:"maxFileSize"`
	ResponseTime    string          `json:"responseTime"`
	ConcurrentUsers string          `json:"concurrentUsers"`
	DataHandling    DataHandling    `json:"dataHandling"`
	SecurityLevel   SecurityLevel   `json:"securityLevel"`
	Dependencies    []DependencyTag `json:"dependencies"`

	// Success
	SuccessMetrics []SuccessMetric `json:"successMetrics"`
	DoneItems      []string        `json:"doneItems"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	ReviewProcess  string          `json:"reviewProcess"`

	// Resources & references. Collected and persisted but not part of the
	// rendered document body; exposed through the same interfaces as the
	// rest of the record so a renderer extension needs no model change.
	ReferenceDocuments  []string `json:"referenceDocuments"`
	DataSourceURLs      []string `json:"dataSourceUrls"`
	DesignReferences    []string `json:"designReferences"`
	CompetitorExamples  []string `json:"competitorExamples"`
	TechnicalReferences []string `json:"technicalReferences"`
}

// NewState returns a State with all-empty defaults. Collections are
// allocated so a fresh record is never partially typed, and the two time
// selectors start on their form defaults.
func NewState() State {
	return State{
		TimeUnit:            TimeMinutes,
		TimeFrequency:       FreqTask,
		TargetUsers:         []TargetUser{},
		Workarounds:         []Workaround{},
		TechStack:           []TechTag{},
		CoreFeatures:        []string{},
		NiceToHaveFeatures:  []string{},
		ExcludedFeatures:    []string{},
		BrowserSupport:      []BrowserTag{},
		Dependencies:        []DependencyTag{},
		SuccessMetrics:      []SuccessMetric{},
		DoneItems:           []string{},
		ReferenceDocuments:  []string{},
		DataSourceURLs:      []string{},
		DesignReferences:    []string{},
		CompetitorExamples:  []string{},
		TechnicalReferences: []string{},
	}
}

// Normalize fills nil collections on a rehydrated record so downstream code
// never sees missing fields.
func (s State) Normalize() State {
	if s.TargetUsers == nil {
		s.TargetUsers = []TargetUser{}
	}
	if s.Workarounds == nil {
		s.Workarounds = []Workaround{}
	}
	if s.TechStack == nil {
		s.TechStack = []TechTag{}
	}
	if s.CoreFeatures == nil {
		s.CoreFeatures = []string{}
	}
	if s.NiceToHaveFeatures == nil {
		s.NiceToHaveFeatures = []string{}
	}
	if s.ExcludedFeatures == nil {
		s.ExcludedFeatures = []string{}
	}
	if s.BrowserSupport == nil {
		s.BrowserSupport = []BrowserTag{}
	}
	if s.Dependencies == nil {
		s.Dependencies = []DependencyTag{}
	}
	if s.SuccessMetrics == nil {
		s.SuccessMetrics = []SuccessMetric{}
	}
	if s.DoneItems == nil {
		s.DoneItems = []string{}
	}
	if s.ReferenceDocuments == nil {
		s.ReferenceDocuments = []string{}
	}
	if s.DataSourceURLs == nil {
		s.DataSourceURLs = []string{}
	}
	if s.DesignReferences == nil {
		s.DesignReferences = []string{}
	}
	if s.CompetitorExamples == nil {
		s.CompetitorExamples = []string{}
	}
	if s.TechnicalReferences == nil {
		s.TechnicalReferences = []string{}
	}
	return s
}

// ResourceLists returns the five resource sequences keyed by a stable label,
// in form order.
func (s State) ResourceLists() []ResourceList {
	return []ResourceList{
		{Key: "referenceDocuments", Label: "Reference Documents", Items: s.ReferenceDocuments},
		{Key: "dataSourceUrls", Label: "Data Source URLs", Items: s.DataSourceURLs},
		{Key: "designReferences", Label: "Design References", Items: s.DesignReferences},
		{Key: "competitorExamples", Label: "Competitor Examples", Items: s.CompetitorExamples},
		{Key: "technicalReferences", Label: "Technical References", Items: s.TechnicalReferences},
	}
}

// ResourceList is one named resource sequence.
type ResourceList struct {
	Key   string
	Label string
	Items []string
}
