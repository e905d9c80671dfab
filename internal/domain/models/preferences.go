package models

import (
	"strings"

	"github.com/samber/lo"
)

// JobPreferences is the single user's stated search criteria. A nil
// *JobPreferences means "never configured" and disables scoring entirely;
// a non-nil value with empty fields scores with partial-credit defaults.
type JobPreferences struct {
	RoleKeywords       []string   `json:"roleKeywords"`
	PreferredLocations []string   `json:"preferredLocations"`
	PreferredMode      []WorkMode `json:"preferredMode"`
	ExperienceLevel    string     `json:"experienceLevel"`
	Skills             []string   `json:"skills"`
	MinMatchScore      int        `json:"minMatchScore"`
}

// Normalize drops blank list entries and clamps MinMatchScore into [0,100].
// Malformed fields degrade to empty rather than erroring.
func (p *JobPreferences) Normalize() {
	p.RoleKeywords = compact(p.RoleKeywords)
	p.PreferredLocations = compact(p.PreferredLocations)
	p.Skills = compact(p.Skills)

	p.PreferredMode = lo.Filter(p.PreferredMode, func(m WorkMode, _ int) bool {
		_, err := ToWorkMode(string(m))
		return err == nil
	})

	if p.MinMatchScore < 0 {
		p.MinMatchScore = 0
	}
	if p.MinMatchScore > 100 {
		p.MinMatchScore = 100
	}
}

func compact(items []string) []string {
	trimmed := lo.Map(items, func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Filter(trimmed, func(s string, _ int) bool {
		return s != ""
	})
}

// ParseCommaSeparated splits a raw form value like "Go, SQL, gRPC" into
// trimmed non-empty entries.
func ParseCommaSeparated(input string) []string {
	return compact(strings.Split(input, ","))
}
