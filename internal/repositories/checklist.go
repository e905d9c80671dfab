package repositories

import (
	"context"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/samber/lo"
)

// Checklist persists the demo ship-gate checklist. Informational only; the
// engine stores it on behalf of the front end.
type Checklist struct {
	kv KV
}

func NewChecklistRepository(kv KV) *Checklist {
	return &Checklist{kv: kv}
}

func (repo *Checklist) Get(ctx context.Context) []models.ChecklistItem {
	return loadJSON[[]models.ChecklistItem](ctx, repo.kv, checklistKey)
}

func (repo *Checklist) Save(ctx context.Context, items []models.ChecklistItem) error {
	return saveJSON(ctx, repo.kv, checklistKey, items)
}

// AllPassed reports whether every stored item is checked; an empty or
// missing checklist does not pass.
func (repo *Checklist) AllPassed(ctx context.Context) bool {
	items := repo.Get(ctx)
	if len(items) == 0 {
		return false
	}
	return lo.EveryBy(items, func(item models.ChecklistItem) bool {
		return item.Checked
	})
}
