package linkedin

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrNoResultCount = errors.New("result count not found")
	digitsRegex      = regexp.MustCompile(`\d+`)
)

// DocumentFetcher loads a page without a browser.
type DocumentFetcher interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
}

// EstimateIterations returns how many scroll iterations are needed to load
// the listing at url, one iteration per denominator results. It never fails:
// anything unexpected yields a single iteration.
func EstimateIterations(ctx context.Context, f DocumentFetcher, url string, denominator int) int {
	if denominator <= 0 {
		return 1
	}
	doc, err := f.Document(ctx, url)
	if err != nil {
		return 1
	}
	count, err := ResultCount(doc)
	if err != nil {
		return 1
	}
	return count / denominator
}

// ResultCount reads the number of results shown in the listing header.
// Large totals render as "1,000+", so a count of exactly 1 is treated as
// truncated and the "new jobs" header is read instead.
func ResultCount(doc *goquery.Document) (int, error) {
	count, err := headerNumber(doc, "span."+jobCountClass, false)
	if err != nil {
		return 0, err
	}
	if count != 1 {
		return count, nil
	}
	return headerNumber(doc, "span."+newJobsClass, true)
}

func headerNumber(doc *goquery.Document, selector string, stripSeparators bool) (int, error) {
	tag := doc.Find(selector).First()
	if tag.Length() == 0 {
		return 0, ErrNoResultCount
	}
	text := tag.Text()
	if stripSeparators {
		text = strings.ReplaceAll(text, ",", "")
	}
	digits := digitsRegex.FindString(text)
	if digits == "" {
		return 0, ErrNoResultCount
	}
	return strconv.Atoi(digits)
}
