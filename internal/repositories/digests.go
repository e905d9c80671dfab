package repositories

import (
	"context"

	"github.com/jobtrackr/matchengine/internal/domain/models"
)

// Digests persists one snapshot per calendar day, each under its own
// date-suffixed key. Snapshots are never expired.
type Digests struct {
	kv KV
}

func NewDigestsRepository(kv KV) *Digests {
	return &Digests{kv: kv}
}

// Get returns nil when no snapshot exists for dateKey or the stored blob is
// unreadable; a corrupt snapshot is treated as absent and regenerated.
func (repo *Digests) Get(ctx context.Context, dateKey string) *models.DigestSnapshot {
	snapshot := loadJSON[models.DigestSnapshot](ctx, repo.kv, digestKeyPrefix+dateKey)
	if snapshot.DateKey == "" {
		return nil
	}
	return &snapshot
}

func (repo *Digests) Save(ctx context.Context, snapshot models.DigestSnapshot) error {
	return saveJSON(ctx, repo.kv, digestKeyPrefix+snapshot.DateKey, snapshot)
}
