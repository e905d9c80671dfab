package repositories

import (
	"context"

	"github.com/samber/lo"
)

// SavedJobs persists the ordered list of job ids the user bookmarked.
type SavedJobs struct {
	kv KV
}

func NewSavedJobsRepository(kv KV) *SavedJobs {
	return &SavedJobs{kv: kv}
}

func (repo *SavedJobs) Get(ctx context.Context) []string {
	return loadJSON[[]string](ctx, repo.kv, savedJobsKey)
}

// Toggle saves jobID if it is not on the list and removes it otherwise,
// returning whether the job is saved afterwards.
func (repo *SavedJobs) Toggle(ctx context.Context, jobID string) (bool, error) {
	saved := repo.Get(ctx)

	if lo.Contains(saved, jobID) {
		saved = lo.Filter(saved, func(id string, _ int) bool {
			return id != jobID
		})
		return false, saveJSON(ctx, repo.kv, savedJobsKey, saved)
	}

	saved = append(saved, jobID)
	return true, saveJSON(ctx, repo.kv, savedJobsKey, saved)
}

func (repo *SavedJobs) IsSaved(ctx context.Context, jobID string) bool {
	return lo.Contains(repo.Get(ctx), jobID)
}
