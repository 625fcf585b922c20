package suggest

import (
	"strings"

	"github.com/jerops/prd-generator/internal/form"
)

// keywordRules maps substrings of the core-feature text to the dependency
// category they imply. Checked against the lowercased concatenation of all
// core features.
var keywordRules = []struct {
	terms []string
	tag   form.DependencyTag
}{
	{[]string{"chart", "graph"}, form.DepLibraries},
	{[]string{"map", "location"}, form.DepAPIs},
	{[]string{"payment", "checkout"}, form.DepAPIs},
	{[]string{"auth", "login"}, form.DepAPIs},
	{[]string{"email", "notification"}, form.DepAPIs},
	{[]string{"pdf", "export"}, form.DepLibraries},
	{[]string{"image", "upload"}, form.DepLibraries},
	{[]string{"animation"}, form.DepLibraries},
}

// Dependencies assembles the dependency set from independent contributing
// rules keyed on platform, tech stack, project type, data handling and
// keyword matches over the core-feature text. Duplicates collapse; the
// result preserves first-contribution order.
func Dependencies(s form.State) []form.DependencyTag {
	var deps []form.DependencyTag
	add := func(tag form.DependencyTag) {
		for _, d := range deps {
			if d == tag {
				return
			}
		}
		deps = append(deps, tag)
	}

	// Anything not explicitly simple counts as non-simple, unset included.
	if s.Platform == form.PlatformBrowser && (hasTech(s.TechStack, form.TechReact) || s.Complexity != form.ComplexitySimple) {
		add(form.DepLibraries)
	}
	if s.DataHandling == form.DataCloud || s.DataHandling == form.DataDatabase {
		add(form.DepAPIs)
	}
	if s.ProjectType == form.ProjectExtension || s.Platform == form.PlatformExtension {
		add(form.DepPermissions)
	}

	features := strings.ToLower(strings.Join(s.CoreFeatures, " "))
	if features != "" {
		for _, rule := range keywordRules {
			for _, term := range rule.terms {
				if strings.Contains(features, term) {
					add(rule.tag)
					break
				}
			}
		}
	}
	return deps
}
