package matching

import (
	"math"
	"strings"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/samber/lo"
)

// Sub-criterion weights. Each evaluated criterion adds its weight to the
// denominator; the final score is the accumulated points normalized to 100.
const (
	titleWeight       = 25
	descriptionWeight = 15
	locationWeight    = 15
	modeWeight        = 10
	experienceWeight  = 10
	skillsWeight      = 15
	recencyWeight     = 5
	sourceWeight      = 5

	titlePointsPerKeyword       = 10
	descriptionPointsPerKeyword = 5
	skillPointsPerMatch         = 5
)

// Partial credits awarded when a preference dimension is left unset, so an
// unset dimension neither fully rewards nor fully penalizes a job. The
// constants are hand-tuned and kept as-is.
const (
	locationPartialCredit   = 5
	modePartialCredit       = 3
	experiencePartialCredit = 3
)

// Score rates how well job fits prefs on a 0..100 scale. A nil prefs means
// preferences were never configured and always yields 0. The function is
// total: malformed preference fields count as empty.
func Score(job models.Job, prefs *models.JobPreferences) int {
	if prefs == nil {
		return 0
	}

	score, maxScore := 0, 0

	keywords := normalizeTerms(prefs.RoleKeywords)
	if len(keywords) > 0 {
		maxScore += titleWeight
		matched := countSubstrings(job.Title, keywords)
		if matched > 0 {
			score += min(titleWeight, matched*titlePointsPerKeyword)
		}

		maxScore += descriptionWeight
		matched = countSubstrings(job.Description, keywords)
		if matched > 0 {
			score += min(descriptionWeight, matched*descriptionPointsPerKeyword)
		}
	}

	maxScore += locationWeight
	if locations := compactTerms(prefs.PreferredLocations); len(locations) > 0 {
		if lo.Contains(locations, job.Location) {
			score += locationWeight
		}
	} else {
		score += locationPartialCredit
	}

	maxScore += modeWeight
	if len(prefs.PreferredMode) > 0 {
		if lo.Contains(prefs.PreferredMode, job.Mode) {
			score += modeWeight
		}
	} else {
		score += modePartialCredit
	}

	maxScore += experienceWeight
	if level := strings.TrimSpace(prefs.ExperienceLevel); level != "" {
		if job.Experience == level {
			score += experienceWeight
		}
	} else {
		score += experiencePartialCredit
	}

	if skills := normalizeTerms(prefs.Skills); len(skills) > 0 {
		maxScore += skillsWeight
		matched := lo.CountBy(job.Skills, func(jobSkill string) bool {
			return lo.Contains(skills, strings.ToLower(strings.TrimSpace(jobSkill)))
		})
		if matched > 0 {
			score += min(skillsWeight, matched*skillPointsPerMatch)
		}
	}

	maxScore += recencyWeight
	score += recencyPoints(job.PostedDaysAgo)

	maxScore += sourceWeight
	score += sourcePoints(job.Source)

	if maxScore > 0 {
		score = int(math.Round(float64(score) / float64(maxScore) * 100))
	}

	return min(score, 100)
}

// ScoreAll annotates every job with its score against prefs, preserving
// catalog order.
func ScoreAll(jobs []models.Job, prefs *models.JobPreferences) []models.ScoredJob {
	return lo.Map(jobs, func(job models.Job, _ int) models.ScoredJob {
		return models.ScoredJob{Job: job, MatchScore: Score(job, prefs)}
	})
}

func recencyPoints(postedDaysAgo int) int {
	switch {
	case postedDaysAgo == 0:
		return 5
	case postedDaysAgo == 1:
		return 4
	case postedDaysAgo <= 2:
		return 3
	case postedDaysAgo <= 5:
		return 1
	default:
		return 0
	}
}

func sourcePoints(source string) int {
	switch source {
	case models.SourceLinkedIn:
		return 5
	case models.SourceNaukri:
		return 3
	default:
		return 2
	}
}

// normalizeTerms lowercases, trims and deduplicates preference terms.
func normalizeTerms(terms []string) []string {
	lowered := lo.Map(terms, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	return lo.Uniq(lo.Filter(lowered, func(s string, _ int) bool {
		return s != ""
	}))
}

func compactTerms(terms []string) []string {
	trimmed := lo.Map(terms, func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Filter(trimmed, func(s string, _ int) bool {
		return s != ""
	})
}

func countSubstrings(text string, needles []string) int {
	lowered := strings.ToLower(text)
	return lo.CountBy(needles, func(needle string) bool {
		return strings.Contains(lowered, needle)
	})
}
