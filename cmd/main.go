package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/jobtrackr/matchengine/internal/catalog"
	"github.com/jobtrackr/matchengine/internal/config"
	"github.com/jobtrackr/matchengine/internal/events"
	"github.com/jobtrackr/matchengine/internal/logger"
	"github.com/jobtrackr/matchengine/internal/metrics"
	"github.com/jobtrackr/matchengine/internal/repositories"
	"github.com/jobtrackr/matchengine/internal/services"
	log "github.com/sirupsen/logrus"
)

func openStore(cfg config.StoreConfig) (repositories.KV, func()) {
	switch cfg.Backend {
	case config.BackendMemory:
		return repositories.NewMemoryKV(), func() {}
	case config.BackendRedis:
		kv := repositories.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return kv, func() { _ = kv.Close() }
	default:
		dbContext, err := repositories.NewDbContext(cfg.ConnectionString)
		if err != nil {
			log.Fatalf("can't create db context: %v", err)
		}
		if err = dbContext.Migrate(); err != nil {
			log.Fatalf("can't migrate db context: %v", err)
		}
		return repositories.NewSqliteKV(dbContext.DB), func() { _ = dbContext.Close() }
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer()

	kv, closeStore := openStore(cfg.Store)
	defer closeStore()

	jobs, err := catalog.Load(cfg.Catalog.FixturePath)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeCatalog).
			Fatalf("can't load job catalog: %v", err)
	}
	log.Infof("loaded %v jobs from catalog", jobs.Len())

	bus := EventBus.New()

	// The daemon only drives the digest schedule; listing, status tracking,
	// saved jobs and the checklist are consumed in-process by the embedding
	// front end through the services and repositories packages.
	preferences := repositories.NewPreferencesRepository(kv)
	digests := repositories.NewDigestsRepository(kv)

	digestService := services.NewDigestService(bus, jobs, preferences, digests)

	err = bus.Subscribe(events.DigestGeneratedTopic, func(event events.DigestGenerated) {
		log.Infof("digest snapshot ready: %v items for %v", len(event.Snapshot.Items), event.Snapshot.DateKey)
	})
	if err != nil {
		log.Fatalf("can't subscribe to digest events: %v", err)
	}

	if cfg.Digest.ScheduleEnabled {
		scheduler, err := services.NewDigestScheduler(digestService, cfg.Digest.CronSpec)
		if err != nil {
			log.Fatalf("can't create digest scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	<-ctx.Done()

	log.Info("Shutting down services...")
}
