// Package events defines the bus topics the engine publishes; the front end
// subscribes to refresh its views.
package events

import "github.com/jobtrackr/matchengine/internal/domain/models"

var DigestGeneratedTopic = "DigestGeneratedEvent"

// DigestGenerated fires only when a snapshot is freshly computed, not on
// idempotent re-reads of an existing one.
type DigestGenerated struct {
	Snapshot models.DigestSnapshot
}

var StatusChangedTopic = "StatusChangedEvent"

type StatusChanged struct {
	Update models.StatusUpdate
}
