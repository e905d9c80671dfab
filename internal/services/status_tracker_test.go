package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/jobtrackr/matchengine/internal/events"
	"github.com/jobtrackr/matchengine/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func newTrackerFixture() (*StatusTracker, EventBus.Bus) {
	bus := EventBus.New()
	tracker := NewStatusTracker(bus, repositories.NewStatusesRepository(repositories.NewMemoryKV()))
	return tracker, bus
}

func Test_StatusTracker_SetPublishesStatusChanged(t *testing.T) {
	tracker, bus := newTrackerFixture()
	ctx := context.Background()

	var got events.StatusChanged
	err := bus.Subscribe(events.StatusChangedTopic, func(event events.StatusChanged) {
		got = event
	})
	assert.NoError(t, err)

	assert.NoError(t, tracker.Set(ctx, "job-1", models.StatusApplied))

	assert.Equal(t, "job-1", got.Update.JobID)
	assert.Equal(t, models.StatusApplied, got.Update.Status)
	assert.NotZero(t, got.Update.Timestamp)
	assert.Equal(t, models.StatusApplied, tracker.Get(ctx, "job-1"))
}

func Test_StatusTracker_WhenStatusInvalid_ShouldNotPublish(t *testing.T) {
	tracker, bus := newTrackerFixture()

	published := false
	err := bus.Subscribe(events.StatusChangedTopic, func(event events.StatusChanged) {
		published = true
	})
	assert.NoError(t, err)

	assert.Error(t, tracker.Set(context.Background(), "job-1", models.JobStatus("Maybe")))
	assert.False(t, published)
}

func Test_StatusTracker_ClearAllResetsEverything(t *testing.T) {
	tracker, _ := newTrackerFixture()
	ctx := context.Background()

	assert.NoError(t, tracker.Set(ctx, "job-1", models.StatusApplied))
	assert.NoError(t, tracker.Set(ctx, "job-2", models.StatusRejected))
	assert.NoError(t, tracker.ClearAll(ctx))

	assert.Empty(t, tracker.History(ctx))
	assert.Empty(t, tracker.GetAll(ctx))
	assert.Equal(t, models.StatusNotApplied, tracker.Get(ctx, "job-1"))
}
