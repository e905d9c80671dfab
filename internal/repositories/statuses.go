package repositories

import (
	"context"
	"time"

	"github.com/jobtrackr/matchengine/internal/domain/models"
)

// maxHistoryEntries caps the status history; the oldest entries are dropped
// on overflow.
const maxHistoryEntries = 50

// Statuses persists the per-job application status map and the append-only,
// newest-first status history.
type Statuses struct {
	kv KV
}

func NewStatusesRepository(kv KV) *Statuses {
	return &Statuses{kv: kv}
}

// Get returns the current status for jobID, defaulting to "Not Applied" for
// ids never seen.
func (repo *Statuses) Get(ctx context.Context, jobID string) models.JobStatus {
	statuses := loadJSON[map[string]models.JobStatus](ctx, repo.kv, statusKey)
	if status, ok := statuses[jobID]; ok {
		if _, err := models.ToJobStatus(string(status)); err == nil {
			return status
		}
	}
	return models.StatusNotApplied
}

func (repo *Statuses) GetAll(ctx context.Context) map[string]models.JobStatus {
	statuses := loadJSON[map[string]models.JobStatus](ctx, repo.kv, statusKey)
	if statuses == nil {
		return map[string]models.JobStatus{}
	}
	return statuses
}

// Set overwrites the current status for jobID and unconditionally prepends a
// history entry, truncating to the newest maxHistoryEntries.
func (repo *Statuses) Set(ctx context.Context, jobID string, status models.JobStatus) (models.StatusUpdate, error) {
	if _, err := models.ToJobStatus(string(status)); err != nil {
		return models.StatusUpdate{}, err
	}

	statuses := loadJSON[map[string]models.JobStatus](ctx, repo.kv, statusKey)
	if statuses == nil {
		statuses = map[string]models.JobStatus{}
	}
	statuses[jobID] = status
	if err := saveJSON(ctx, repo.kv, statusKey, statuses); err != nil {
		return models.StatusUpdate{}, err
	}

	update := models.StatusUpdate{
		JobID:     jobID,
		Status:    status,
		Timestamp: time.Now().UnixMilli(),
	}

	history := loadJSON[[]models.StatusUpdate](ctx, repo.kv, statusHistoryKey)
	history = append([]models.StatusUpdate{update}, history...)
	if len(history) > maxHistoryEntries {
		history = history[:maxHistoryEntries]
	}
	if err := saveJSON(ctx, repo.kv, statusHistoryKey, history); err != nil {
		return models.StatusUpdate{}, err
	}

	return update, nil
}

// History returns status updates newest first.
func (repo *Statuses) History(ctx context.Context) []models.StatusUpdate {
	return loadJSON[[]models.StatusUpdate](ctx, repo.kv, statusHistoryKey)
}

// Clear drops the status map and the history.
func (repo *Statuses) Clear(ctx context.Context) error {
	if err := repo.kv.Delete(ctx, statusKey); err != nil {
		return err
	}
	return repo.kv.Delete(ctx, statusHistoryKey)
}
