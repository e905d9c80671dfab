package services

import (
	"context"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/jobtrackr/matchengine/internal/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// defaultDigestSpec fires at 09:00 local time, matching the "9AM digest"
// the front end simulates manually.
const defaultDigestSpec = "0 9 * * *"

type digestGenerator interface {
	Generate(ctx context.Context) (models.DigestSnapshot, error)
}

// DigestScheduler triggers digest generation on a cron schedule. Because
// generation is idempotent per day, a scheduled run after a manual one is a
// no-op.
type DigestScheduler struct {
	generator digestGenerator
	cron      *cron.Cron
}

func NewDigestScheduler(generator digestGenerator, spec string) (*DigestScheduler, error) {

	if spec == "" {
		spec = defaultDigestSpec
	}

	s := &DigestScheduler{
		generator: generator,
		cron:      cron.New(),
	}

	_, err := s.cron.AddFunc(spec, s.generateDigest)
	if err != nil {
		return nil, err
	}

	s.cron.Start()
	log.Infof("digest scheduler started with spec %q", spec)
	return s, nil
}

func (s *DigestScheduler) Stop() {
	s.cron.Stop()
}

func (s *DigestScheduler) generateDigest() {
	snapshot, err := s.generator.Generate(context.Background())
	if errors.Is(err, ErrNoPreferences) {
		log.Info("digest run skipped: preferences are not configured")
		return
	}
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDigest).
			Errorf("failed to generate digest: %v", err)
		return
	}
	log.Infof("digest ready for %v with %v items", snapshot.DateKey, len(snapshot.Items))
}
