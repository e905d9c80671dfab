package services

import (
	"context"
	"time"

	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/jobtrackr/matchengine/internal/matching"
	"github.com/jobtrackr/matchengine/internal/metrics"
)

// ListingService serves the dashboard views: the catalog scored against the
// current preferences, filtered and ordered. Scores are recomputed on every
// call since preferences may have changed in between.
type ListingService struct {
	catalog     jobCatalog
	preferences preferencesRepository
}

func NewListingService(catalog jobCatalog, preferences preferencesRepository) *ListingService {
	return &ListingService{catalog: catalog, preferences: preferences}
}

func (s *ListingService) List(ctx context.Context, filters matching.Filters, order matching.SortOrder) []models.ScoredJob {
	prefs := s.preferences.Get(ctx)

	start := time.Now()
	scored := matching.ScoreAll(s.catalog.Jobs(), prefs)
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	return matching.Apply(scored, prefs, filters, order)
}
