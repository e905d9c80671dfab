package repositories

import (
	"context"
	"strconv"
	"testing"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func Test_Statuses_WhenJobUnknown_ShouldDefaultToNotApplied(t *testing.T) {
	repo := NewStatusesRepository(NewMemoryKV())

	assert.Equal(t, models.StatusNotApplied, repo.Get(context.Background(), "never-seen"))
	assert.Empty(t, repo.History(context.Background()))
}

func Test_Statuses_SetOverwritesCurrentAndAppendsHistory(t *testing.T) {
	repo := NewStatusesRepository(NewMemoryKV())
	ctx := context.Background()

	_, err := repo.Set(ctx, "job-1", models.StatusApplied)
	assert.NoError(t, err)
	_, err = repo.Set(ctx, "job-1", models.StatusSelected)
	assert.NoError(t, err)

	assert.Equal(t, models.StatusSelected, repo.Get(ctx, "job-1"))

	history := repo.History(ctx)
	assert.Len(t, history, 2)
	assert.Equal(t, models.StatusSelected, history[0].Status)
	assert.Equal(t, models.StatusApplied, history[1].Status)
}

func Test_Statuses_WhenInvalidStatus_ShouldReject(t *testing.T) {
	repo := NewStatusesRepository(NewMemoryKV())

	_, err := repo.Set(context.Background(), "job-1", models.JobStatus("Ghosted"))

	assert.Error(t, err)
	assert.Empty(t, repo.History(context.Background()))
}

func Test_Statuses_HistoryIsCappedAtNewestFifty(t *testing.T) {
	repo := NewStatusesRepository(NewMemoryKV())
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		jobID := "job-" + strconv.Itoa(i)
		_, err := repo.Set(ctx, jobID, models.StatusApplied)
		assert.NoError(t, err)
	}

	history := repo.History(ctx)
	assert.Len(t, history, 50)
	assert.Equal(t, "job-59", history[0].JobID)
	assert.Equal(t, "job-10", history[49].JobID)
}

func Test_Statuses_WhenPersistedStateCorrupt_ShouldActAsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	assert.NoError(t, kv.Set(ctx, statusKey, []byte("{not json")))
	assert.NoError(t, kv.Set(ctx, statusHistoryKey, []byte("also not json")))

	repo := NewStatusesRepository(kv)

	assert.Equal(t, models.StatusNotApplied, repo.Get(ctx, "job-1"))
	assert.Empty(t, repo.History(ctx))

	_, err := repo.Set(ctx, "job-1", models.StatusRejected)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, repo.Get(ctx, "job-1"))
	assert.Len(t, repo.History(ctx), 1)
}

func Test_Statuses_ClearDropsMapAndHistory(t *testing.T) {
	repo := NewStatusesRepository(NewMemoryKV())
	ctx := context.Background()

	_, err := repo.Set(ctx, "job-1", models.StatusApplied)
	assert.NoError(t, err)
	assert.NoError(t, repo.Clear(ctx))

	assert.Equal(t, models.StatusNotApplied, repo.Get(ctx, "job-1"))
	assert.Empty(t, repo.History(ctx))
}
