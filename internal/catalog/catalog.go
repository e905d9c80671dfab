// Package catalog holds the static job reference data the engine scores
// against. Jobs are loaded once at startup and never mutated.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/jobtrackr/matchengine/internal/domain/models"
	"github.com/samber/lo"
)

var validate = validator.New()

type Catalog struct {
	jobs []models.Job
	byID map[string]models.Job
}

// Load reads a JSON fixture of job records. Unlike persisted user state,
// the fixture is a boot-time input and fails fast when invalid.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog fixture: %w", err)
	}

	var jobs []models.Job
	if err = json.Unmarshal(raw, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog fixture: %w", err)
	}

	return New(jobs)
}

func New(jobs []models.Job) (*Catalog, error) {
	byID := make(map[string]models.Job, len(jobs))

	for i, job := range jobs {
		if err := validate.Struct(job); err != nil {
			return nil, fmt.Errorf("invalid job record at index %d: %w", i, err)
		}
		if _, exists := byID[job.ID]; exists {
			return nil, fmt.Errorf("duplicate job id: %v", job.ID)
		}
		byID[job.ID] = job
	}

	return &Catalog{jobs: jobs, byID: byID}, nil
}

// Jobs returns the catalog in fixture order. Callers get a copy and may
// reorder it freely.
func (c *Catalog) Jobs() []models.Job {
	jobs := make([]models.Job, len(c.jobs))
	copy(jobs, c.jobs)
	return jobs
}

func (c *Catalog) Get(id string) (models.Job, bool) {
	job, ok := c.byID[id]
	return job, ok
}

func (c *Catalog) Len() int {
	return len(c.jobs)
}

// Locations lists the distinct job locations, sorted, for filter dropdowns.
func (c *Catalog) Locations() []string {
	return distinct(c.jobs, func(job models.Job) string { return job.Location })
}

// Sources lists the distinct job sources, sorted.
func (c *Catalog) Sources() []string {
	return distinct(c.jobs, func(job models.Job) string { return job.Source })
}

func distinct(jobs []models.Job, field func(models.Job) string) []string {
	values := lo.Uniq(lo.Map(jobs, func(job models.Job, _ int) string {
		return field(job)
	}))
	values = lo.Filter(values, func(v string, _ int) bool { return v != "" })
	sort.Strings(values)
	return values
}
