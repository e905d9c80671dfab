package models

import "errors"

var errInvalidWorkMode = errors.New("invalid work mode")

type WorkMode string

const (
	ModeRemote WorkMode = "Remote"
	ModeHybrid WorkMode = "Hybrid"
	ModeOnsite WorkMode = "Onsite"
)

func ToWorkMode(s string) (WorkMode, error) {
	switch s {
	case string(ModeRemote):
		return ModeRemote, nil
	case string(ModeHybrid):
		return ModeHybrid, nil
	case string(ModeOnsite):
		return ModeOnsite, nil
	default:
		return "", errInvalidWorkMode
	}
}

const (
	SourceLinkedIn = "LinkedIn"
	SourceNaukri   = "Naukri"
	SourceIndeed   = "Indeed"
)

// Job is a read-only listing supplied by the catalog. The engine never
// mutates or persists jobs; only their ids appear in persisted state.
type Job struct {
	ID            string   `json:"id" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Mode          WorkMode `json:"mode" validate:"oneof=Remote Hybrid Onsite"`
	Experience    string   `json:"experience"`
	Skills        []string `json:"skills"`
	Description   string   `json:"description"`
	SalaryRange   string   `json:"salaryRange"`
	Source        string   `json:"source" validate:"required"`
	PostedDaysAgo int      `json:"postedDaysAgo" validate:"gte=0"`
	ApplyURL      string   `json:"applyUrl"`
}

// ScoredJob is a job annotated with its match score against the current
// preferences. Derived, never persisted outside a digest snapshot.
type ScoredJob struct {
	Job
	MatchScore int `json:"matchScore"`
}
