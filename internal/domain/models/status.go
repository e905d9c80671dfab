package models

import "errors"

type JobStatus string

const (
	StatusNotApplied JobStatus = "Not Applied"
	StatusApplied    JobStatus = "Applied"
	StatusRejected   JobStatus = "Rejected"
	StatusSelected   JobStatus = "Selected"
)

func ToJobStatus(s string) (JobStatus, error) {
	switch s {
	case string(StatusNotApplied):
		return StatusNotApplied, nil
	case string(StatusApplied):
		return StatusApplied, nil
	case string(StatusRejected):
		return StatusRejected, nil
	case string(StatusSelected):
		return StatusSelected, nil
	default:
		return "", errors.New("invalid job status")
	}
}

// StatusUpdate is one entry of the append-only application history.
// Timestamp is wall-clock milliseconds.
type StatusUpdate struct {
	JobID     string    `json:"jobId"`
	Status    JobStatus `json:"status"`
	Timestamp int64     `json:"timestamp"`
}
