package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go-linkedin-job-source/internal/ai"
	"go-linkedin-job-source/internal/browser"
	"go-linkedin-job-source/internal/models"
	"go-linkedin-job-source/internal/protocol"
	"go-linkedin-job-source/internal/scraper/linkedin"
)

var (
	ErrNoCompany     = errors.New("job page has no company")
	ErrNoDescription = errors.New("job page has no description")
)

// Source finds job links for a role and reads a single job page.
type Source interface {
	ListingLinks(ctx context.Context, role string) ([]string, error)
	Detail(ctx context.Context, url string) (linkedin.Detail, error)
}

// Stats summarises one run.
type Stats struct {
	Roles              int
	Links              int
	Jobs               int
	PartialJobs        int
	Companies          int
	Recruiters         int
	EnrichmentFailures int
}

type Pipeline struct {
	source        Source
	enricher      ai.Client
	writer        protocol.Writer
	primaryModel  string
	fallbackModel string
	now           func() time.Time
}

type Option func(*Pipeline)

// WithModels overrides the primary and fallback enrichment models.
func WithModels(primary, fallback string) Option {
	return func(p *Pipeline) {
		if primary != "" {
			p.primaryModel = primary
		}
		if fallback != "" {
			p.fallbackModel = fallback
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

func New(source Source, enricher ai.Client, w protocol.Writer, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:        source,
		enricher:      enricher,
		writer:        w,
		primaryModel:  ai.DefaultPrimaryModel,
		fallbackModel: ai.DefaultFallbackModel,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes roles in order and finishes with one STATE message per
// stream. A run that is cancelled or whose writer fails emits no STATE.
func (p *Pipeline) Run(ctx context.Context, roles []string) (Stats, error) {
	var stats Stats

	for _, role := range roles {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Roles++
		log.Printf("💼 Role %d/%d: %s", stats.Roles, len(roles), role)

		if err := p.emit(ctx, protocol.StreamJobRoles, models.RoleMarker{Title: role}); err != nil {
			return stats, err
		}

		links, err := p.source.ListingLinks(ctx, role)
		if err != nil {
			if errors.Is(err, browser.ErrLaunch) || ctx.Err() != nil {
				return stats, err
			}
			log.Printf("  ❌ Failed to collect links for %s: %v", role, err)
			links = nil
		}
		log.Printf("  ✅ Found %d job links", len(links))

		for _, link := range links {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			stats.Links++
			if err := p.processLink(ctx, role, link, &stats); err != nil {
				return stats, err
			}
		}
	}

	for _, stream := range protocol.Streams {
		if err := p.writer.Write(ctx, protocol.NewState(stream)); err != nil {
			return stats, fmt.Errorf("failed to write state for %s: %w", stream, err)
		}
	}
	return stats, nil
}

// processLink emits the records for one job page. Extraction failures end
// in a partial job record; only writer failures are returned.
func (p *Pipeline) processLink(ctx context.Context, role, link string, stats *Stats) error {
	job := models.NewJob(link, role)

	contact, err := p.fillJob(ctx, job, stats)
	if err != nil {
		var werr *writeError
		if errors.As(err, &werr) {
			return werr.err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("    ⚠️ %s: %v", link, err)
		stats.PartialJobs++
		return p.emit(ctx, protocol.StreamJobOpenings, job)
	}

	if err := p.emit(ctx, protocol.StreamJobOpenings, job); err != nil {
		return err
	}
	stats.Jobs++

	if contact.name == "" {
		return nil
	}
	intro := ""
	if job.Enrichment != nil {
		intro = job.HRName
	}
	if err := p.emit(ctx, protocol.StreamRecruiterDetails, models.NewRecruiter(contact.name, intro, contact.jobURL, job.Company)); err != nil {
		return err
	}
	stats.Recruiters++
	return nil
}

type hiringContact struct {
	name   string
	jobURL string
}

// writeError marks a failure that must abort the run rather than the job.
type writeError struct{ err error }

func (e *writeError) Error() string { return e.err.Error() }

// fillJob reads the job page and enrichment into job, stopping at the first
// missing piece. Whatever was set before the failure stays on job.
func (p *Pipeline) fillJob(ctx context.Context, job *models.Job, stats *Stats) (hiringContact, error) {
	detailURL := linkedin.CanonicalDetailURL(job.URL)

	d, err := p.source.Detail(ctx, detailURL)
	if err != nil {
		return hiringContact{}, fmt.Errorf("failed to fetch job page: %w", err)
	}

	job.Title = d.Title
	job.Location = d.Location
	if d.Applicants != "" {
		job.RawResponse = &models.RawResponse{Applicants: d.Applicants}
	}
	job.Description = d.Description

	if d.Company.Name != "" {
		if err := p.emit(ctx, protocol.StreamCompanies, d.Company); err != nil {
			return hiringContact{}, &writeError{err}
		}
		stats.Companies++
	}

	if d.Company.Name == "" {
		return hiringContact{}, ErrNoCompany
	}
	job.Company = d.Company.Name

	if d.Description == "" {
		return hiringContact{}, ErrNoDescription
	}

	enrichment, err := p.enrich(ctx, d.Description)
	if err != nil {
		stats.EnrichmentFailures++
		log.Printf("    ⚠️ Enrichment failed for %s: %v", job.URL, err)
	} else {
		enrichment.NormalizeExperience()
		job.Enrichment = enrichment
	}

	return hiringContact{name: d.HiringContact, jobURL: detailURL}, nil
}

// enrich asks the primary model and retries once with the fallback model.
func (p *Pipeline) enrich(ctx context.Context, description string) (*models.Enrichment, error) {
	e, err := p.enricher.Enrich(ctx, description, p.primaryModel)
	if err == nil {
		return e, nil
	}
	log.Printf("    🔁 %s failed (%v), retrying with %s", p.primaryModel, err, p.fallbackModel)
	return p.enricher.Enrich(ctx, description, p.fallbackModel)
}

func (p *Pipeline) emit(ctx context.Context, stream string, data any) error {
	if err := p.writer.Write(ctx, protocol.NewRecord(stream, data, p.now())); err != nil {
		return fmt.Errorf("failed to write %s record: %w", stream, err)
	}
	return nil
}
