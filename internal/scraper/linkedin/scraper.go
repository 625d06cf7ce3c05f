package linkedin

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go-linkedin-job-source/internal/browser"
	"go-linkedin-job-source/internal/search"

	"github.com/PuerkitoBio/goquery"
)

// LinkedInScraper finds job links for a role and reads job pages.
type LinkedInScraper struct {
	fetcher     DocumentFetcher
	opener      browser.Opener
	driver      *browser.ScrollDriver
	filters     search.Filters
	denominator int
	screenshots *browser.ScreenshotDebugger
}

type Option func(*LinkedInScraper)

// WithScreenshots saves a screenshot whenever a listing fails to load.
func WithScreenshots(d *browser.ScreenshotDebugger) Option {
	return func(s *LinkedInScraper) { s.screenshots = d }
}

func WithDenominator(n int) Option {
	return func(s *LinkedInScraper) {
		if n > 0 {
			s.denominator = n
		}
	}
}

func NewLinkedInScraper(fetcher DocumentFetcher, opener browser.Opener, driver *browser.ScrollDriver, filters search.Filters, opts ...Option) *LinkedInScraper {
	s := &LinkedInScraper{
		fetcher:     fetcher,
		opener:      opener,
		driver:      driver,
		filters:     filters,
		denominator: ResultsPerPage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListingLinks searches for role, scrolls the listing until the estimated
// number of results is loaded and returns the detail links found.
func (s *LinkedInScraper) ListingLinks(ctx context.Context, role string) ([]string, error) {
	q, err := search.NewQuery(role, s.filters)
	if err != nil {
		return nil, err
	}
	listingURL := q.URL()

	iterations := EstimateIterations(ctx, s.fetcher, listingURL, s.denominator)
	log.Printf("  🔍 Searching %q (%d scroll iterations)", q.Role(), iterations)

	html, err := s.loadListing(ctx, listingURL, iterations)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}
	return ExtractLinks(doc)
}

// loadListing opens one browser session for the listing and always releases it.
func (s *LinkedInScraper) loadListing(ctx context.Context, url string, iterations int) (string, error) {
	session, err := s.opener.Open(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("    ⚠️ Failed to close browser session: %v", err)
		}
	}()

	html, err := s.driver.Load(ctx, session.Page(), url, iterations, ShowMoreButtonClass)
	if err != nil && s.screenshots != nil {
		s.screenshots.CaptureAndLog(session.Page(), "linkedin-listing-failed", "🚨 LinkedIn: listing failed to load")
	}
	return html, err
}

// Detail fetches a job page without a browser and extracts its fields.
func (s *LinkedInScraper) Detail(ctx context.Context, url string) (Detail, error) {
	doc, err := s.fetcher.Document(ctx, url)
	if err != nil {
		return Detail{}, err
	}
	return ExtractDetail(doc), nil
}
