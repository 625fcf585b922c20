package form

// ProjectType classifies what kind of software is being built.
type ProjectType string

const (
	ProjectBrowser   ProjectType = "browser"
	ProjectDesktop   ProjectType = "desktop"
	ProjectAPI       ProjectType = "api"
	ProjectExtension ProjectType = "extension"
	ProjectMobile    ProjectType = "mobile"
	ProjectOther     ProjectType = "other"
)

// ProjectTypes lists the selectable project types in form order.
func ProjectTypes() []ProjectType {
	return []ProjectType{ProjectBrowser, ProjectDesktop, ProjectAPI, ProjectExtension, ProjectMobile, ProjectOther}
}

func (p ProjectType) Valid() bool {
	switch p {
	case ProjectBrowser, ProjectDesktop, ProjectAPI, ProjectExtension, ProjectMobile, ProjectOther:
		return true
	}
	return false
}

// TargetUser identifies an audience the project is built for.
type TargetUser string

const (
	UserYourself TargetUser = "yourself"
	UserTeam     TargetUser = "team"
	UserClients  TargetUser = "clients"
	UserExternal TargetUser = "external"
)

func TargetUsers() []TargetUser {
	return []TargetUser{UserYourself, UserTeam, UserClients, UserExternal}
}

func (t TargetUser) Valid() bool {
	switch t {
	case UserYourself, UserTeam, UserClients, UserExternal:
		return true
	}
	return false
}

// Motivation captures why the project is being built.
type Motivation string

const (
	MotivationProductivity Motivation = "productivity"
	MotivationEfficiency   Motivation = "efficiency"
	MotivationClient       Motivation = "client"
	MotivationBusiness     Motivation = "business"
	MotivationLearning     Motivation = "learning"
	MotivationOther        Motivation = "other"
)

func Motivations() []Motivation {
	return []Motivation{MotivationProductivity, MotivationEfficiency, MotivationClient, MotivationBusiness, MotivationLearning, MotivationOther}
}

func (m Motivation) Valid() bool {
	switch m {
	case MotivationProductivity, MotivationEfficiency, MotivationClient, MotivationBusiness, MotivationLearning, MotivationOther:
		return true
	}
	return false
}

// ImpactLevel grades how badly the problem hurts today.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "low"
	ImpactMedium   ImpactLevel = "medium"
	ImpactHigh     ImpactLevel = "high"
	ImpactCritical ImpactLevel = "critical"
)

func ImpactLevels() []ImpactLevel {
	return []ImpactLevel{ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical}
}

func (i ImpactLevel) Valid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical:
		return true
	}
	return false
}

// TimeUnit is the unit of the time-impact amount.
type TimeUnit string

const (
	TimeMinutes TimeUnit = "minutes"
	TimeHours   TimeUnit = "hours"
	TimeDays    TimeUnit = "days"
)

func TimeUnits() []TimeUnit { return []TimeUnit{TimeMinutes, TimeHours, TimeDays} }

func (u TimeUnit) Valid() bool {
	switch u {
	case TimeMinutes, TimeHours, TimeDays:
		return true
	}
	return false
}

// TimeFrequency is how often the time impact recurs.
type TimeFrequency string

const (
	FreqTask  TimeFrequency = "task"
	FreqDay   TimeFrequency = "day"
	FreqWeek  TimeFrequency = "week"
	FreqMonth TimeFrequency = "month"
)

func TimeFrequencies() []TimeFrequency {
	return []TimeFrequency{FreqTask, FreqDay, FreqWeek, FreqMonth}
}

func (f TimeFrequency) Valid() bool {
	switch f {
	case FreqTask, FreqDay, FreqWeek, FreqMonth:
		return true
	}
	return false
}

// Workaround names how the problem is coped with today.
type Workaround string

const (
	WorkaroundManual       Workaround = "manual"
	WorkaroundThirdParty   Workaround = "thirdparty"
	WorkaroundSpreadsheets Workaround = "spreadsheets"
	WorkaroundNone         Workaround = "none"
)

func Workarounds() []Workaround {
	return []Workaround{WorkaroundManual, WorkaroundThirdParty, WorkaroundSpreadsheets, WorkaroundNone}
}

func (w Workaround) Valid() bool {
	switch w {
	case WorkaroundManual, WorkaroundThirdParty, WorkaroundSpreadsheets, WorkaroundNone:
		return true
	}
	return false
}

// Platform is the primary delivery platform of the solution.
type Platform string

const (
	PlatformBrowser    Platform = "browser"
	PlatformDesktop    Platform = "desktop"
	PlatformWebService Platform = "webservice"
	PlatformMobile     Platform = "mobile"
	PlatformExtension  Platform = "extension"
	PlatformCLI        Platform = "cli"
)

func Platforms() []Platform {
	return []Platform{PlatformBrowser, PlatformDesktop, PlatformWebService, PlatformMobile, PlatformExtension, PlatformCLI}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformBrowser, PlatformDesktop, PlatformWebService, PlatformMobile, PlatformExtension, PlatformCLI:
		return true
	}
	return false
}

// TechTag is a technology-stack selection.
type TechTag string

const (
	TechVanilla TechTag = "vanilla"
	TechReact   TechTag = "react"
	TechPython  TechTag = "python"
	TechNodeJS  TechTag = "nodejs"
	TechPHP     TechTag = "php"
	TechOther   TechTag = "other"
)

func TechTags() []TechTag {
	return []TechTag{TechVanilla, TechReact, TechPython, TechNodeJS, TechPHP, TechOther}
}

func (t TechTag) Valid() bool {
	switch t {
	case TechVanilla, TechReact, TechPython, TechNodeJS, TechPHP, TechOther:
		return true
	}
	return false
}

// Complexity grades the expected build effort.
type Complexity string

const (
	ComplexitySimple       Complexity = "simple"
	ComplexityModerate     Complexity = "moderate"
	ComplexityComplex      Complexity = "complex"
	ComplexityExperimental Complexity = "experimental"
)

func Complexities() []Complexity {
	return []Complexity{ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityExperimental}
}

func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityExperimental:
		return true
	}
	return false
}

// BrowserTag is a supported browser target.
type BrowserTag string

const (
	BrowserChrome  BrowserTag = "chrome"
	BrowserFirefox BrowserTag = "firefox"
	BrowserSafari  BrowserTag = "safari"
	BrowserEdge    BrowserTag = "edge"
	BrowserMobile  BrowserTag = "mobile"
	BrowserLegacy  BrowserTag = "legacy"
)

func BrowserTags() []BrowserTag {
	return []BrowserTag{BrowserChrome, BrowserFirefox, BrowserSafari, BrowserEdge, BrowserMobile, BrowserLegacy}
}

func (b BrowserTag) Valid() bool {
	switch b {
	case BrowserChrome, BrowserFirefox, BrowserSafari, BrowserEdge, BrowserMobile, BrowserLegacy:
		return true
	}
	return false
}

// DataHandling is where the project's data lives.
type DataHandling string

const (
	DataLocal    DataHandling = "local"
	DataCloud    DataHandling = "cloud"
	DataAPI      DataHandling = "api"
	DataDatabase DataHandling = "database"
)

func DataHandlings() []DataHandling {
	return []DataHandling{DataLocal, DataCloud, DataAPI, DataDatabase}
}

func (d DataHandling) Valid() bool {
	switch d {
	case DataLocal, DataCloud, DataAPI, DataDatabase:
		return true
	}
	return false
}

// SecurityLevel grades data sensitivity.
type SecurityLevel string

const (
	SecurityPublic       SecurityLevel = "public"
	SecurityInternal     SecurityLevel = "internal"
	SecuritySensitive    SecurityLevel = "sensitive"
	SecurityConfidential SecurityLevel = "confidential"
)

func SecurityLevels() []SecurityLevel {
	return []SecurityLevel{SecurityPublic, SecurityInternal, SecuritySensitive, SecurityConfidential}
}

func (s SecurityLevel) Valid() bool {
	switch s {
	case SecurityPublic, SecurityInternal, SecuritySensitive, SecurityConfidential:
		return true
	}
	return false
}

// DependencyTag is an external dependency category.
type DependencyTag string

const (
	DepAPIs        DependencyTag = "apis"
	DepLibraries   DependencyTag = "libraries"
	DepPaid        DependencyTag = "paid"
	DepPermissions DependencyTag = "permissions"
)

func DependencyTags() []DependencyTag {
	return []DependencyTag{DepAPIs, DepLibraries, DepPaid, DepPermissions}
}

func (d DependencyTag) Valid() bool {
	switch d {
	case DepAPIs, DepLibraries, DepPaid, DepPermissions:
		return true
	}
	return false
}

// MetricUnit is the unit attached to a success metric target.
type MetricUnit string

const (
	UnitSeconds MetricUnit = "seconds"
	UnitMinutes MetricUnit = "minutes"
	UnitHours   MetricUnit = "hours"
	UnitDays    MetricUnit = "days"
	UnitPercent MetricUnit = "%"
	UnitCount   MetricUnit = "count"
	UnitScore   MetricUnit = "score"
)

func MetricUnits() []MetricUnit {
	return []MetricUnit{UnitSeconds, UnitMinutes, UnitHours, UnitDays, UnitPercent, UnitCount, UnitScore}
}

func (m MetricUnit) Valid() bool {
	switch m {
	case UnitSeconds, UnitMinutes, UnitHours, UnitDays, UnitPercent, UnitCount, UnitScore:
		return true
	}
	return false
}
