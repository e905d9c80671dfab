package matching

import (
	"sort"

	"github.com/jobtrackr/matchengine/internal/domain/models"
)

// SortOrder selects the ranking of a filtered job list.
type SortOrder string

const (
	// SortLatest orders by ascending PostedDaysAgo.
	SortLatest SortOrder = "latest"
	// SortMatchScore orders by descending MatchScore.
	SortMatchScore SortOrder = "matchScore"
	// SortSalary orders by descending parsed salary figure; listings with no
	// parsable figure sort as 0.
	SortSalary SortOrder = "salary"
)

// sortJobs orders jobs in place. Every order falls back to ascending job id
// so results are deterministic regardless of catalog order.
func sortJobs(jobs []models.ScoredJob, order SortOrder) {
	switch order {
	case SortMatchScore:
		sort.SliceStable(jobs, func(i, j int) bool {
			if jobs[i].MatchScore != jobs[j].MatchScore {
				return jobs[i].MatchScore > jobs[j].MatchScore
			}
			return jobs[i].ID < jobs[j].ID
		})
	case SortSalary:
		sort.SliceStable(jobs, func(i, j int) bool {
			si, sj := SalaryFigure(jobs[i].SalaryRange), SalaryFigure(jobs[j].SalaryRange)
			if si != sj {
				return si > sj
			}
			return jobs[i].ID < jobs[j].ID
		})
	default: // SortLatest
		sort.SliceStable(jobs, func(i, j int) bool {
			if jobs[i].PostedDaysAgo != jobs[j].PostedDaysAgo {
				return jobs[i].PostedDaysAgo < jobs[j].PostedDaysAgo
			}
			return jobs[i].ID < jobs[j].ID
		})
	}
}
