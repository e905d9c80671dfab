package repositories

import (
	"context"
	"encoding/json"

	"github.com/jobtrackr/matchengine/internal/logger"
	log "github.com/sirupsen/logrus"
)

// Store keys. They match what the web front end persists under, so state
// exported from the browser keeps loading.
const (
	preferencesKey   = "jobTrackerPreferences"
	savedJobsKey     = "savedJobs"
	statusKey        = "jobTrackerStatus"
	statusHistoryKey = "jobStatusHistory"
	digestKeyPrefix  = "jobTrackerDigest_"
	checklistKey     = "test-checklist"
)

// loadJSON decodes the blob under key into a fresh T. Missing keys, storage
// failures and corrupt blobs all yield the zero value: persisted state is
// best-effort and never surfaces an error to the caller.
func loadJSON[T any](ctx context.Context, kv KV, key string) T {
	var value T

	raw, err := kv.Get(ctx, key)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to load %v: %v", key, err)
		return value
	}
	if len(raw) == 0 {
		return value
	}

	if err = json.Unmarshal(raw, &value); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("discarding corrupt blob under %v: %v", key, err)
		var zero T
		return zero
	}
	return value
}

func saveJSON[T any](ctx context.Context, kv KV, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, raw)
}
