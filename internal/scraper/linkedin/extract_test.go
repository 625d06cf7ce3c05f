package linkedin

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const listingHTML = `<html><body>
<ul class="jobs-search__results-list">
  <li><div class="base-card"><a class="base-card__full-link absolute" href="https://in.linkedin.com/jobs/view/backend-developer-1?refId=abc&trackingId=x">Backend</a></div></li>
  <li><a class="base-card__full-link" href="https://in.linkedin.com/jobs/view/go-engineer-2?position=2">Go</a>
      <a class="base-search-card__subtitle" href="https://in.linkedin.com/company/acme">Acme</a></li>
  <li><a class="base-card__full-link" href="https://in.linkedin.com/jobs/view/backend-developer-1?refId=def">Backend again</a></li>
  <li><a class="base-card__full-link" href="https://in.linkedin.com/jobs/view/sre-3">SRE</a></li>
</ul>
</body></html>`

func TestExtractLinks(t *testing.T) {
	links, err := ExtractLinks(parse(t, listingHTML))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://in.linkedin.com/jobs/view/backend-developer-1",
		"https://in.linkedin.com/jobs/view/go-engineer-2",
		"https://in.linkedin.com/jobs/view/sre-3",
	}, links)
}

func TestExtractLinksWithoutResultsList(t *testing.T) {
	_, err := ExtractLinks(parse(t, `<html><body><div>No jobs</div></body></html>`))
	assert.ErrorIs(t, err, ErrNoResultsList)
}

func TestCanonicalDetailURL(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/jobs/view/1", CanonicalDetailURL("https://in.linkedin.com/jobs/view/1"))
	assert.Equal(t, "https://www.linkedin.com/jobs/view/1", CanonicalDetailURL("https://www.linkedin.com/jobs/view/1"))
}

func detailHTML(bullets ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body>
<h1 class="top-card-layout__title font-sans">Backend Developer</h1>
<h4 class="top-card-layout__second-subline">
  <span class="topcard__flavor"><a class="topcard__org-name-link" href="https://www.linkedin.com/company/acme?trk=public_jobs">  Acme Corp </a></span>`)
	for _, bullet := range bullets {
		b.WriteString(`<span class="topcard__flavor topcard__flavor--bullet">` + bullet + `</span>`)
	}
	b.WriteString(`</h4>
<div class="description__text">
  <div class="show-more-less-html__markup relative"><p>We build <strong>Go</strong> services.</p><ul><li>3+ years&nbsp;experience</li></ul></div>
</div>
<div class="hiring-team">
  <h3 class="base-main-card__title font-sans text-[18px] font-bold text-color-text overflow-hidden">
     Jane Doe
  </h3>
</div>
</body></html>`)
	return b.String()
}

func TestExtractDetail(t *testing.T) {
	d := ExtractDetail(parse(t, detailHTML("Bengaluru, Karnataka, India", "Over 200 applicants")))

	assert.Equal(t, "Backend Developer", d.Title)
	assert.Equal(t, "Acme Corp", d.Company.Name)
	assert.Equal(t, "https://www.linkedin.com/company/acme", d.Company.LinkedInURL)
	assert.Equal(t, "Bengaluru, Karnataka, India", d.Location)
	assert.Equal(t, "Over 200 applicants", d.Applicants)
	assert.Equal(t, "Jane Doe", d.HiringContact)
	assert.NotContains(t, d.Description, "<")
	assert.Contains(t, d.Description, "We build  Go  services.")
	assert.Contains(t, d.Description, "3+ years experience")
}

func TestExtractDetailBulletCounts(t *testing.T) {
	tests := []struct {
		name           string
		bullets        []string
		wantLocation   string
		wantApplicants string
	}{
		{"no bullets", nil, "", ""},
		{"location only", []string{"Pune, Maharashtra, India"}, "Pune, Maharashtra, India", ""},
		{"location and applicants", []string{"Pune", "Be among the first 25 applicants"}, "Pune", "Be among the first 25 applicants"},
		{"extra bullet classified by wording", []string{"Remote", "2 weeks ago", "47 applicants"}, "Remote", "47 applicants"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ExtractDetail(parse(t, detailHTML(tt.bullets...)))
			assert.Equal(t, tt.wantLocation, d.Location)
			assert.Equal(t, tt.wantApplicants, d.Applicants)
		})
	}
}

func TestExtractDetailMissingElements(t *testing.T) {
	d := ExtractDetail(parse(t, `<html><body><h1 class="top-card-layout__title">Only a title</h1></body></html>`))

	assert.Equal(t, "Only a title", d.Title)
	assert.Empty(t, d.Company.Name)
	assert.Empty(t, d.Description)
	assert.Empty(t, d.HiringContact)
}

func TestHiringContactMatchesClassTokens(t *testing.T) {
	reordered := `<html><body>
<h3 class="base-main-card__title">Card title only</h3>
<h3 class="overflow-hidden extra base-main-card__title font-sans text-[18px] font-bold text-color-text">  Ravi Kumar </h3>
</body></html>`
	assert.Equal(t, "Ravi Kumar", ExtractDetail(parse(t, reordered)).HiringContact)

	partial := `<html><body><h3 class="base-main-card__title font-sans">Someone</h3></body></html>`
	assert.Empty(t, ExtractDetail(parse(t, partial)).HiringContact)
}

func TestLastDescriptionWins(t *testing.T) {
	html := `<html><body>
<div class="show-more-less-html__markup">first</div>
<div class="show-more-less-html__markup"><p>second</p></div>
</body></html>`
	assert.Equal(t, "second", ExtractDetail(parse(t, html)).Description)
}
