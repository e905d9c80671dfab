package matching

import (
	"testing"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func testJobs() []models.ScoredJob {
	return []models.ScoredJob{
		{Job: models.Job{
			ID: "j1", Title: "Backend Engineer", Company: "Finch Labs", Location: "Remote",
			Mode: models.ModeRemote, Experience: "1-3", Source: models.SourceLinkedIn,
			Description: "Go services", SalaryRange: "₹12,00,000", PostedDaysAgo: 0,
		}, MatchScore: 80},
		{Job: models.Job{
			ID: "j2", Title: "Frontend Developer", Company: "Bright Commerce", Location: "Bengaluru",
			Mode: models.ModeHybrid, Experience: "0-1", Source: models.SourceNaukri,
			Description: "React storefront", SalaryRange: "₹8,50,000", PostedDaysAgo: 1,
		}, MatchScore: 55},
		{Job: models.Job{
			ID: "j3", Title: "Data Engineer", Company: "Northwind", Location: "Pune",
			Mode: models.ModeOnsite, Experience: "3-5", Source: models.SourceIndeed,
			Description: "Spark pipelines", SalaryRange: "no data", PostedDaysAgo: 3,
		}, MatchScore: 30},
	}
}

func ids(jobs []models.ScoredJob) []string {
	return lo.Map(jobs, func(j models.ScoredJob, _ int) string { return j.ID })
}

func Test_Apply_WhenNoFiltersActive_ShouldKeepEverything(t *testing.T) {
	result := Apply(testJobs(), nil, Filters{}, SortLatest)
	assert.Len(t, result, 3)
}

func Test_Apply_AllSentinelMeansNoRestriction(t *testing.T) {
	filters := Filters{Location: FilterAll, Mode: FilterAll, Experience: FilterAll, Source: FilterAll}
	result := Apply(testJobs(), nil, filters, SortLatest)
	assert.Len(t, result, 3)
}

func Test_Apply_KeywordSearchesTitleCompanyAndDescription(t *testing.T) {
	byTitle := Apply(testJobs(), nil, Filters{Keyword: "frontend"}, SortLatest)
	assert.Equal(t, []string{"j2"}, ids(byTitle))

	byCompany := Apply(testJobs(), nil, Filters{Keyword: "finch"}, SortLatest)
	assert.Equal(t, []string{"j1"}, ids(byCompany))

	byDescription := Apply(testJobs(), nil, Filters{Keyword: "spark"}, SortLatest)
	assert.Equal(t, []string{"j3"}, ids(byDescription))
}

func Test_Apply_ActiveFiltersCombineWithAnd(t *testing.T) {
	jobs := testJobs()
	filters := Filters{Keyword: "engineer", Location: "Remote"}

	result := Apply(jobs, nil, filters, SortLatest)

	// j1 and j3 both match the keyword, only j1 the location.
	assert.Equal(t, []string{"j1"}, ids(result))

	for _, job := range jobs {
		keep := matches(job, nil, filters)
		expected := matchesKeyword(job.Job, filters.Keyword) && job.Location == filters.Location
		assert.Equal(t, expected, keep, "job %v", job.ID)
	}
}

func Test_Apply_MatchThreshold_WhenPreferencesNil_ShouldBeInert(t *testing.T) {
	result := Apply(testJobs(), nil, Filters{OnlyMatches: true}, SortLatest)
	assert.Len(t, result, 3)
}

func Test_Apply_MatchThreshold_ShouldDropJobsBelowMinScore(t *testing.T) {
	prefs := &models.JobPreferences{MinMatchScore: 50}
	result := Apply(testJobs(), prefs, Filters{OnlyMatches: true}, SortMatchScore)
	assert.Equal(t, []string{"j1", "j2"}, ids(result))
}

func Test_Apply_DoesNotModifyInput(t *testing.T) {
	jobs := testJobs()
	Apply(jobs, nil, Filters{}, SortMatchScore)
	assert.Equal(t, []string{"j1", "j2", "j3"}, ids(jobs))
}

func Test_SortLatest_OrdersByAscendingAge(t *testing.T) {
	result := Apply(testJobs(), nil, Filters{}, SortLatest)
	assert.Equal(t, []string{"j1", "j2", "j3"}, ids(result))
}

func Test_SortMatchScore_OrdersByDescendingScore(t *testing.T) {
	result := Apply(testJobs(), nil, Filters{}, SortMatchScore)
	assert.Equal(t, []string{"j1", "j2", "j3"}, ids(result))
}

func Test_SortSalary_UnparsableSortsAsZero(t *testing.T) {
	result := Apply(testJobs(), nil, Filters{}, SortSalary)
	assert.Equal(t, []string{"j1", "j2", "j3"}, ids(result))
}

func Test_Sort_TiesBreakByAscendingJobID(t *testing.T) {
	jobs := []models.ScoredJob{
		{Job: models.Job{ID: "b", PostedDaysAgo: 1}, MatchScore: 40},
		{Job: models.Job{ID: "a", PostedDaysAgo: 1}, MatchScore: 40},
		{Job: models.Job{ID: "c", PostedDaysAgo: 1}, MatchScore: 40},
	}

	for _, order := range []SortOrder{SortLatest, SortMatchScore, SortSalary} {
		result := Apply(jobs, nil, Filters{}, order)
		assert.Equal(t, []string{"a", "b", "c"}, ids(result), "order %v", order)
	}
}
