// Package render turns form state into the final requirements document.
// Rendering is total: any reachable state produces a full document, with the
// literal "Not specified" standing in for unset values.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/jerops/prd-generator/internal/form"
)

// NotSpecified is the placeholder for required-but-unset values.
const NotSpecified = "Not specified"

// Document renders the markdown PRD for the current date.
func Document(s form.State) string {
	return DocumentAt(s, time.Now())
}

// DocumentAt renders the markdown PRD with the given generation date. Six
// fixed sections in fixed order; the resources group is collected by the
// form but intentionally not part of the document body.
func DocumentAt(s form.State, now time.Time) string {
	sections := []string{
		overviewSection(s),
		problemSection(s),
		solutionSection(s),
		featuresSection(s),
		technicalSection(s),
		successSection(s, now),
	}
	return strings.Join(sections, "\n\n")
}

func overviewSection(s form.State) string {
	projectType := string(s.ProjectType)
	if s.ProjectType == form.ProjectOther {
		projectType = s.ProjectTypeOther
	}
	title := s.ProjectName
	if title == "" {
		title = "Untitled Project"
	}
	return fmt.Sprintf(`# Project Requirements Document: %s

## 1. Project Overview

**Project Name:** %s

**Project Type:** %s

**Target Users:** %s

**Main Motivation:** %s`,
		title,
		orPlaceholder(s.ProjectName),
		orPlaceholder(projectType),
		joined(s.TargetUsers),
		orPlaceholder(string(s.Motivation)))
}

func problemSection(s form.State) string {
	// Partial time data renders as unset; the composite only appears whole.
	timeImpact := NotSpecified
	if s.TimeAmount != "" && s.TimeUnit != "" && s.TimeFrequency != "" {
		timeImpact = fmt.Sprintf("%s %s per %s", s.TimeAmount, s.TimeUnit, s.TimeFrequency)
	}
	return fmt.Sprintf(`## 2. Problem Statement

### Problem Description
%s

### Impact Level
%s

### Time Impact
%s

### Current Workarounds
%s`,
		orPlaceholder(s.ProblemDescription),
		orPlaceholder(string(s.ImpactLevel)),
		timeImpact,
		joined(s.Workarounds))
}

func solutionSection(s form.State) string {
	stack := make([]string, 0, len(s.TechStack))
	hasOther := false
	for _, tag := range s.TechStack {
		if tag == form.TechOther {
			hasOther = true
			continue
		}
		stack = append(stack, string(tag))
	}
	if hasOther && s.TechStackOther != "" {
		stack = append(stack, s.TechStackOther)
	}
	return fmt.Sprintf(`## 3. Solution Approach

### High-level Approach
%s

### Primary Platform
%s

### Technology Stack
%s

### Project Complexity
%s`,
		orPlaceholder(s.SolutionDescription),
		orPlaceholder(string(s.Platform)),
		orPlaceholder(strings.Join(stack, ", ")),
		orPlaceholder(string(s.Complexity)))
}

func featuresSection(s form.State) string {
	return fmt.Sprintf(`## 4. Key Features

### Core Features (Must Have)
%s

### Nice-to-Have Features
%s

### Explicitly NOT Included
%s`,
		bulleted(s.CoreFeatures),
		bulleted(s.NiceToHaveFeatures),
		bulleted(s.ExcludedFeatures))
}

func technicalSection(s form.State) string {
	return fmt.Sprintf(`## 5. Technical Considerations

### Browser Support
%s

### Performance Requirements
- Max file size: %s MB
- Response time: %s seconds
- Concurrent users: %s

### Data Handling
%s

### Security Level
%s

### Dependencies
%s`,
		joined(s.BrowserSupport),
		orPlaceholder(s.MaxFileSize),
		orPlaceholder(s.ResponseTime),
		orPlaceholder(s.ConcurrentUsers),
		orPlaceholder(string(s.DataHandling)),
		orPlaceholder(string(s.SecurityLevel)),
		joined(s.Dependencies))
}

func successSection(s form.State, now time.Time) string {
	metrics := "- " + NotSpecified
	if len(s.SuccessMetrics) > 0 {
		lines := make([]string, 0, len(s.SuccessMetrics))
		for _, m := range s.SuccessMetrics {
			lines = append(lines, fmt.Sprintf("- %s: %s %s", m.Name, m.Target, m.Unit))
		}
		metrics = strings.Join(lines, "\n")
	}
	return fmt.Sprintf(`## 6. Success Criteria

### Success Metrics
%s

### Definition of Done
%s

### Timeline
- Start Date: %s
- End Date: %s

### Review Process
%s

---

*Generated on %s using PRD Generator*`,
		metrics,
		bulleted(s.DoneItems),
		orPlaceholder(s.StartDate),
		orPlaceholder(s.EndDate),
		orPlaceholder(s.ReviewProcess),
		now.Format("1/2/2006"))
}

func orPlaceholder(value string) string {
	if value == "" {
		return NotSpecified
	}
	return value
}

// joined renders a tag set as a comma list in selection order.
func joined[T ~string](tags []T) string {
	if len(tags) == 0 {
		return NotSpecified
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// bulleted renders a sequence as one bullet per line; an empty sequence is a
// single placeholder bullet.
func bulleted(items []string) string {
	if len(items) == 0 {
		return "- " + NotSpecified
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
