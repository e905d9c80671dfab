package repositories

import (
	"context"
	"encoding/json"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/jobtrackr/matchengine/internal/logger"
	log "github.com/sirupsen/logrus"
)

// Preferences persists the single user's JobPreferences aggregate.
type Preferences struct {
	kv KV
}

func NewPreferencesRepository(kv KV) *Preferences {
	return &Preferences{kv: kv}
}

// Get returns nil when preferences were never saved or the stored blob is
// unreadable. Nil is a distinct state: it disables scoring, while a saved
// value with empty fields scores with partial credits.
func (repo *Preferences) Get(ctx context.Context) *models.JobPreferences {

	raw, err := repo.kv.Get(ctx, preferencesKey)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to load preferences: %v", err)
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	prefs := &models.JobPreferences{}
	if err = json.Unmarshal(raw, prefs); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("discarding corrupt preferences blob: %v", err)
		return nil
	}

	prefs.Normalize()
	return prefs
}

func (repo *Preferences) Save(ctx context.Context, prefs models.JobPreferences) error {
	prefs.Normalize()
	return saveJSON(ctx, repo.kv, preferencesKey, prefs)
}

func (repo *Preferences) Clear(ctx context.Context) error {
	return repo.kv.Delete(ctx, preferencesKey)
}
