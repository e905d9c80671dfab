package matching

import (
	"strings"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/samber/lo"
)

// FilterAll is the sentinel a front-end dropdown sends for "no restriction".
// An empty string means the same.
const FilterAll = "all"

// Filters holds the dashboard's optional restrictions. Active filters
// combine with logical AND.
type Filters struct {
	Keyword     string
	Location    string
	Mode        string
	Experience  string
	Source      string
	OnlyMatches bool // require MatchScore >= preferences.MinMatchScore
}

// Apply filters and orders a scored job collection. It is a pure
// transformation: the input slice is not modified. The OnlyMatches filter is
// inert when prefs is nil, since without preferences every score is 0 and no
// threshold was ever stated.
func Apply(jobs []models.ScoredJob, prefs *models.JobPreferences, f Filters, order SortOrder) []models.ScoredJob {
	filtered := lo.Filter(jobs, func(job models.ScoredJob, _ int) bool {
		return matches(job, prefs, f)
	})
	sortJobs(filtered, order)
	return filtered
}

func matches(job models.ScoredJob, prefs *models.JobPreferences, f Filters) bool {
	if !matchesKeyword(job.Job, f.Keyword) {
		return false
	}
	if restricts(f.Location) && job.Location != f.Location {
		return false
	}
	if restricts(f.Mode) && string(job.Mode) != f.Mode {
		return false
	}
	if restricts(f.Experience) && job.Experience != f.Experience {
		return false
	}
	if restricts(f.Source) && job.Source != f.Source {
		return false
	}
	if f.OnlyMatches && prefs != nil && job.MatchScore < prefs.MinMatchScore {
		return false
	}
	return true
}

// matchesKeyword searches title, company and description; a hit in any one
// field passes.
func matchesKeyword(job models.Job, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(job.Title), keyword) ||
		strings.Contains(strings.ToLower(job.Company), keyword) ||
		strings.Contains(strings.ToLower(job.Description), keyword)
}

func restricts(value string) bool {
	return value != "" && value != FilterAll
}
