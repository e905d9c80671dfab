package matching

import (
	"testing"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func referenceJob() models.Job {
	return models.Job{
		ID:            "job-1",
		Title:         "Backend Engineer",
		Company:       "Finch Labs",
		Location:      "Remote",
		Mode:          models.ModeRemote,
		Experience:    "1-3",
		Skills:        []string{"Go", "SQL"},
		Description:   "Work on APIs and services.",
		Source:        models.SourceLinkedIn,
		PostedDaysAgo: 0,
	}
}

func Test_Score_WhenPreferencesNil_ShouldReturnZero(t *testing.T) {
	assert.Equal(t, 0, Score(referenceJob(), nil))
	assert.Equal(t, 0, Score(models.Job{}, nil))
}

func Test_Score_MatchesReferenceExample(t *testing.T) {
	prefs := &models.JobPreferences{
		RoleKeywords:       []string{"Engineer"},
		PreferredLocations: []string{"Remote"},
		PreferredMode:      []models.WorkMode{},
		ExperienceLevel:    "1-3",
		Skills:             []string{"Go"},
		MinMatchScore:      50,
	}

	// 10/25 title + 0/15 description + 15/15 location + 3/10 mode +
	// 10/10 experience + 5/15 skills + 5/5 recency + 5/5 source
	// = round(100 * 53 / 100) = 53; the unset mode still adds its full
	// weight to the denominator.
	assert.Equal(t, 53, Score(referenceJob(), prefs))
}

func Test_Score_WhenEmptyPreferences_ShouldUsePartialCredits(t *testing.T) {
	prefs := &models.JobPreferences{}

	// Keyword and skill criteria drop out entirely; location/mode/experience
	// contribute partial credit against their full weights:
	// (5+3+3+5+5) / (15+10+10+5+5) = round(100 * 21 / 45) = 47
	assert.Equal(t, 47, Score(referenceJob(), prefs))
}

func Test_Score_AlwaysWithinBounds(t *testing.T) {
	jobs := []models.Job{
		referenceJob(),
		{ID: "empty"},
		{ID: "old", PostedDaysAgo: 400, Source: "Unknown"},
	}
	prefsVariants := []*models.JobPreferences{
		nil,
		{},
		{
			RoleKeywords:       []string{"Backend", "Engineer", "Go", "API"},
			PreferredLocations: []string{"Remote"},
			PreferredMode:      []models.WorkMode{models.ModeRemote},
			ExperienceLevel:    "1-3",
			Skills:             []string{"Go", "SQL", "Docker", "Kubernetes"},
		},
	}

	for _, job := range jobs {
		for _, prefs := range prefsVariants {
			score := Score(job, prefs)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func Test_Score_WhenMatchingKeywordAdded_ShouldNotDecrease(t *testing.T) {
	job := referenceJob()
	prefs := &models.JobPreferences{RoleKeywords: []string{"Engineer"}}

	before := Score(job, prefs)
	prefs.RoleKeywords = append(prefs.RoleKeywords, "Backend")
	after := Score(job, prefs)

	assert.GreaterOrEqual(t, after, before)
}

func Test_Score_KeywordMatchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	job := referenceJob()

	withNoise := &models.JobPreferences{RoleKeywords: []string{"  eNgInEeR  "}}
	plain := &models.JobPreferences{RoleKeywords: []string{"engineer"}}

	assert.Equal(t, Score(job, plain), Score(job, withNoise))
}

func Test_Score_WhenDuplicateKeywords_ShouldCountOnce(t *testing.T) {
	job := referenceJob()

	duplicated := &models.JobPreferences{RoleKeywords: []string{"Engineer", "engineer", " ENGINEER "}}
	single := &models.JobPreferences{RoleKeywords: []string{"Engineer"}}

	assert.Equal(t, Score(job, single), Score(job, duplicated))
}

func Test_ScoreAll_PreservesCatalogOrder(t *testing.T) {
	jobs := []models.Job{
		{ID: "a", Title: "Engineer"},
		{ID: "b", Title: "Designer"},
	}
	prefs := &models.JobPreferences{RoleKeywords: []string{"Engineer"}}

	scored := ScoreAll(jobs, prefs)

	assert.Len(t, scored, 2)
	assert.Equal(t, "a", scored[0].ID)
	assert.Equal(t, "b", scored[1].ID)
	assert.Greater(t, scored[0].MatchScore, scored[1].MatchScore)
}
