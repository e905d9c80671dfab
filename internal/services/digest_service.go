package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/jobtrackr/matchengine/internal/events"
	"github.com/jobtrackr/matchengine/internal/matching"
	"github.com/jobtrackr/matchengine/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// ErrNoPreferences is returned when digest generation is requested before
// the user ever saved preferences. Not an internal failure: callers gate on
// it.
var ErrNoPreferences = errors.New("preferences are not configured")

const digestSize = 10

// MailSubject is the subject line the front end uses for the email draft.
const MailSubject = "My 9AM Job Digest"

type preferencesRepository interface {
	Get(ctx context.Context) *models.JobPreferences
}

type digestRepository interface {
	Get(ctx context.Context, dateKey string) *models.DigestSnapshot
	Save(ctx context.Context, snapshot models.DigestSnapshot) error
}

type jobCatalog interface {
	Jobs() []models.Job
	Get(id string) (models.Job, bool)
}

// DigestService computes and persists the daily top-10 ranked snapshot.
// Generation is idempotent per calendar day: once a snapshot exists for a
// dateKey it is returned unchanged so the ranking the user saw stays stable.
type DigestService struct {
	bus         EventBus.Bus
	catalog     jobCatalog
	preferences preferencesRepository
	digests     digestRepository
	rankedCache *gocache.Cache
}

func NewDigestService(bus EventBus.Bus, catalog jobCatalog, preferences preferencesRepository,
	digests digestRepository) *DigestService {

	return &DigestService{
		bus:         bus,
		catalog:     catalog,
		preferences: preferences,
		digests:     digests,
		rankedCache: gocache.New(10*time.Minute, 20*time.Minute),
	}
}

// Generate produces (or re-reads) the snapshot for the current local date.
func (s *DigestService) Generate(ctx context.Context) (models.DigestSnapshot, error) {
	return s.GenerateFor(ctx, models.DateKeyFor(time.Now()))
}

func (s *DigestService) GenerateFor(ctx context.Context, dateKey string) (models.DigestSnapshot, error) {

	prefs := s.preferences.Get(ctx)
	if prefs == nil {
		return models.DigestSnapshot{}, ErrNoPreferences
	}

	if existing := s.digests.Get(ctx, dateKey); existing != nil {
		return *existing, nil
	}

	ranked := s.rankedJobs(prefs)
	if len(ranked) > digestSize {
		ranked = ranked[:digestSize]
	}

	snapshot := models.DigestSnapshot{
		DateKey: dateKey,
		Items:   make([]models.DigestItem, 0, len(ranked)),
	}
	for _, job := range ranked {
		snapshot.Items = append(snapshot.Items, models.DigestItem{ID: job.ID, MatchScore: job.MatchScore})
	}

	if err := s.digests.Save(ctx, snapshot); err != nil {
		return models.DigestSnapshot{}, errors.Wrap(err, "failed to persist digest snapshot")
	}

	metrics.DigestsGeneratedCounter.Inc()
	s.bus.Publish(events.DigestGeneratedTopic, events.DigestGenerated{Snapshot: snapshot})
	log.Infof("generated digest for %v with %v items", dateKey, len(snapshot.Items))

	return snapshot, nil
}

// rankedJobs scores the catalog, drops zero scores and orders by descending
// score, ascending postedDaysAgo, ascending id. The result is memoized per
// preferences fingerprint so repeated calls within a session skip rescoring.
func (s *DigestService) rankedJobs(prefs *models.JobPreferences) []models.ScoredJob {

	fingerprint := preferencesFingerprint(prefs)
	if cached, found := s.rankedCache.Get(fingerprint); found {
		return cached.([]models.ScoredJob)
	}

	start := time.Now()
	scored := matching.ScoreAll(s.catalog.Jobs(), prefs)
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	withScore := lo.Filter(scored, func(job models.ScoredJob, _ int) bool {
		return job.MatchScore > 0
	})
	sortForDigest(withScore)

	if err := s.rankedCache.Add(fingerprint, withScore, gocache.DefaultExpiration); err != nil {
		log.Errorf("failed to cache ranked jobs: %v", err)
	}
	return withScore
}

// FormatText renders a snapshot in the plain-text export format used for
// the clipboard copy and the mail draft.
func (s *DigestService) FormatText(snapshot models.DigestSnapshot) string {

	var lines []string
	lines = append(lines, "Top 10 Jobs For You — 9AM Digest")
	lines = append(lines, fmt.Sprintf("Date: %v", readableDate(snapshot.DateKey)))
	lines = append(lines, "")

	if len(snapshot.Items) == 0 {
		lines = append(lines, "No matching roles today. Check again tomorrow.")
	} else {
		for i, item := range snapshot.Items {
			job, ok := s.catalog.Get(item.ID)
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("%d. %s — %s | %s | %s | %d%% Match | %s",
				i+1, job.Title, job.Company, job.Location, job.Experience, item.MatchScore, job.ApplyURL))
		}
	}

	lines = append(lines, "")
	lines = append(lines, "This digest was generated based on your preferences.")
	return strings.Join(lines, "\n")
}

// sortForDigest orders by descending score, ascending postedDaysAgo,
// ascending id.
func sortForDigest(jobs []models.ScoredJob) {
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].MatchScore != jobs[j].MatchScore {
			return jobs[i].MatchScore > jobs[j].MatchScore
		}
		if jobs[i].PostedDaysAgo != jobs[j].PostedDaysAgo {
			return jobs[i].PostedDaysAgo < jobs[j].PostedDaysAgo
		}
		return jobs[i].ID < jobs[j].ID
	})
}

func readableDate(dateKey string) string {
	date, err := models.ParseDateKey(dateKey)
	if err != nil {
		return dateKey
	}
	return date.Format("Monday, January 2, 2006")
}

// preferencesFingerprint hashes the canonical preferences JSON; any edit to
// preferences invalidates the memoized ranking.
func preferencesFingerprint(prefs *models.JobPreferences) string {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
