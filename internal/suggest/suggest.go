// Package suggest derives default values for later form fields from earlier
// answers. Every rule is a pure function invoked only on explicit request;
// a rule overwrites its target fields wholesale and leaves everything else
// alone, so repeat invocations with unchanged inputs are no-ops.
package suggest

import "github.com/jerops/prd-generator/internal/form"

// ProjectType proposes a project type from the selected audiences. All
// branches currently converge on "browser": a browser app runs locally and
// deploys to static hosting with zero install, which is the maximum
// flexibility default for every audience. The branches are kept separate so
// the precedence is explicit if they ever diverge.
func ProjectType(s form.State) (form.ProjectType, bool) {
	users := s.TargetUsers
	switch {
	case hasUser(users, form.UserExternal) || hasUser(users, form.UserClients):
		return form.ProjectBrowser, true
	case hasUser(users, form.UserTeam):
		return form.ProjectBrowser, true
	case hasUser(users, form.UserYourself):
		return form.ProjectBrowser, true
	}
	return "", false
}

// ApplyProjectType runs the project-type rule and writes the result.
func ApplyProjectType(s form.State) form.State {
	if pt, ok := ProjectType(s); ok {
		s.ProjectType = pt
	}
	return s
}

// Platform proposes a delivery platform from the project type and audience.
// First matching branch wins.
func Platform(s form.State) form.Platform {
	switch {
	case s.ProjectType == form.ProjectBrowser || s.ProjectType == "webapp":
		return form.PlatformBrowser
	case s.ProjectType == form.ProjectMobile || hasUser(s.TargetUsers, "mobile"):
		return form.PlatformMobile
	case s.ProjectType == form.ProjectDesktop || hasUser(s.TargetUsers, "desktop"):
		return form.PlatformDesktop
	case s.ProjectType == form.ProjectAPI || s.ProjectType == "service":
		return form.PlatformWebService
	case s.ProjectType == "tool" || s.ProjectType == "script":
		return form.PlatformCLI
	case s.ProjectType == form.ProjectExtension:
		return form.PlatformExtension
	}
	return form.PlatformBrowser
}

// ApplyPlatform runs the platform rule and writes the result.
func ApplyPlatform(s form.State) form.State {
	s.Platform = Platform(s)
	return s
}

// TechStack proposes a technology stack from platform, project type and
// complexity. The result replaces the current stack wholesale.
func TechStack(s form.State) []form.TechTag {
	var tags []form.TechTag
	switch {
	case s.Platform == form.PlatformBrowser || s.ProjectType == form.ProjectBrowser:
		if s.Complexity == form.ComplexitySimple {
			tags = []form.TechTag{form.TechVanilla}
		} else {
			tags = []form.TechTag{form.TechReact, form.TechNodeJS}
		}
	case s.Platform == form.PlatformDesktop || s.ProjectType == form.ProjectDesktop:
		tags = []form.TechTag{form.TechNodeJS, form.TechPython}
	case s.Platform == form.PlatformMobile || s.ProjectType == form.ProjectMobile:
		tags = []form.TechTag{form.TechReact}
	case s.Platform == form.PlatformCLI || s.ProjectType == "cli":
		tags = []form.TechTag{form.TechPython, form.TechNodeJS}
	case s.Platform == form.PlatformWebService || s.ProjectType == form.ProjectAPI:
		tags = []form.TechTag{form.TechNodeJS, form.TechPython}
	}
	if s.Complexity == form.ComplexityComplex && !hasTech(tags, form.TechNodeJS) {
		tags = append(tags, form.TechNodeJS)
	}
	return tags
}

// ApplyTechStack runs the tech-stack rule and writes the result.
func ApplyTechStack(s form.State) form.State {
	s.TechStack = TechStack(s)
	return s
}

// performance is the fixed lookup from complexity to the performance triple.
var performance = map[form.Complexity]struct {
	maxFileSize     string
	responseTime    string
	concurrentUsers string
}{
	form.ComplexitySimple:   {"10", "2", "10"},
	form.ComplexityModerate: {"50", "5", "100"},
	form.ComplexityComplex:  {"200", "10", "1000"},
}

// Technical computes the technical-requirements bundle: browser support,
// performance triple, data handling, security level and dependencies, all
// written together. Experimental complexity leaves the performance triple
// unset rather than guessing.
func Technical(s form.State) form.State {
	// Browser outranks mobile: a browser project on a mobile platform still
	// gets the full set.
	switch {
	case s.ProjectType == form.ProjectBrowser || s.Platform == form.PlatformBrowser:
		s.BrowserSupport = fullBrowserSet()
	case s.ProjectType == form.ProjectMobile || s.Platform == form.PlatformMobile:
		s.BrowserSupport = []form.BrowserTag{form.BrowserMobile}
	default:
		// Non-browser projects whose docs end up hosted on the web anyway.
		s.BrowserSupport = fullBrowserSet()
	}

	if perf, ok := performance[s.Complexity]; ok {
		s.MaxFileSize = perf.maxFileSize
		s.ResponseTime = perf.responseTime
		s.ConcurrentUsers = perf.concurrentUsers
	}

	users := s.TargetUsers
	switch {
	case hasUser(users, form.UserYourself) && !hasUser(users, form.UserExternal):
		s.DataHandling = form.DataLocal
	case hasUser(users, form.UserTeam) || hasUser(users, form.UserClients):
		s.DataHandling = form.DataCloud
	case hasUser(users, form.UserExternal):
		s.DataHandling = form.DataDatabase
	}

	switch {
	case hasUser(users, form.UserExternal):
		s.SecurityLevel = form.SecuritySensitive
	case hasUser(users, form.UserClients):
		s.SecurityLevel = form.SecurityInternal
	case hasUser(users, form.UserYourself):
		s.SecurityLevel = form.SecurityPublic
	}

	s.Dependencies = Dependencies(s)
	return s
}

func fullBrowserSet() []form.BrowserTag {
	return []form.BrowserTag{
		form.BrowserChrome, form.BrowserFirefox, form.BrowserSafari,
		form.BrowserEdge, form.BrowserMobile,
	}
}

func hasUser(users []form.TargetUser, u form.TargetUser) bool {
	for _, candidate := range users {
		if candidate == u {
			return true
		}
	}
	return false
}

func hasTech(tags []form.TechTag, tag form.TechTag) bool {
	for _, candidate := range tags {
		if candidate == tag {
			return true
		}
	}
	return false
}
