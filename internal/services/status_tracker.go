package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/jobtrackr/matchengine/internal/events"
	"github.com/jobtrackr/matchengine/internal/metrics"
)

type statusRepository interface {
	Get(ctx context.Context, jobID string) models.JobStatus
	GetAll(ctx context.Context) map[string]models.JobStatus
	Set(ctx context.Context, jobID string, status models.JobStatus) (models.StatusUpdate, error)
	History(ctx context.Context) []models.StatusUpdate
	Clear(ctx context.Context) error
}

// StatusTracker records per-job application statuses and publishes a
// StatusChanged event for every accepted update.
type StatusTracker struct {
	bus      EventBus.Bus
	statuses statusRepository
}

func NewStatusTracker(bus EventBus.Bus, statuses statusRepository) *StatusTracker {
	return &StatusTracker{bus: bus, statuses: statuses}
}

func (t *StatusTracker) Get(ctx context.Context, jobID string) models.JobStatus {
	return t.statuses.Get(ctx, jobID)
}

func (t *StatusTracker) GetAll(ctx context.Context) map[string]models.JobStatus {
	return t.statuses.GetAll(ctx)
}

func (t *StatusTracker) Set(ctx context.Context, jobID string, status models.JobStatus) error {
	update, err := t.statuses.Set(ctx, jobID, status)
	if err != nil {
		return err
	}

	metrics.StatusUpdatesCounter.Inc()
	t.bus.Publish(events.StatusChangedTopic, events.StatusChanged{Update: update})
	return nil
}

// History returns the status log newest first, capped at 50 entries by the
// repository.
func (t *StatusTracker) History(ctx context.Context) []models.StatusUpdate {
	return t.statuses.History(ctx)
}

func (t *StatusTracker) ClearAll(ctx context.Context) error {
	return t.statuses.Clear(ctx)
}
