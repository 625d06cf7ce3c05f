package linkedin

import (
	"regexp"
	"strings"

	"go-linkedin-job-source/internal/models"

	"github.com/PuerkitoBio/goquery"
)

var applicantsRegex = regexp.MustCompile(`(?i)\bapplicants?\b`)

// Detail is everything read from one job page. Each field is extracted on
// its own, so a missing element leaves only that field empty.
type Detail struct {
	Title         string
	Location      string
	Applicants    string
	Description   string
	Company       models.Company
	HiringContact string
}

func ExtractDetail(doc *goquery.Document) Detail {
	var d Detail

	if h1 := doc.Find("h1." + titleClass).First(); h1.Length() > 0 {
		d.Title = strings.TrimSpace(h1.Text())
	}

	// last company anchor wins
	doc.Find("span." + flavorClass).Each(func(_ int, span *goquery.Selection) {
		a := span.Find("a").First()
		if a.Length() == 0 {
			return
		}
		href, _ := a.Attr("href")
		d.Company = models.Company{
			Name:        strings.TrimSpace(a.Text()),
			LinkedInURL: StripQuery(href),
		}
	})

	var bullets []string
	doc.Find("span." + flavorBulletClass).Each(func(_ int, span *goquery.Selection) {
		bullets = append(bullets, strings.TrimSpace(span.Text()))
	})
	d.Location, d.Applicants = classifyBullets(bullets)

	doc.Find("." + descriptionClass).Each(func(_ int, sel *goquery.Selection) {
		inner, err := sel.Html()
		if err != nil {
			return
		}
		d.Description = StripTags(strings.TrimSpace(inner))
	})

	d.HiringContact = hiringContact(doc)
	return d
}

// classifyBullets splits the top-card bullets into location and applicant
// count. One bullet is the location; two are location then applicants. Any
// other count falls back to matching the applicant wording.
func classifyBullets(bullets []string) (location, applicants string) {
	switch len(bullets) {
	case 0:
		return "", ""
	case 1:
		return bullets[0], ""
	case 2:
		return bullets[0], bullets[1]
	}
	for _, b := range bullets {
		if applicantsRegex.MatchString(b) {
			if applicants == "" {
				applicants = b
			}
			continue
		}
		if location == "" {
			location = b
		}
	}
	return location, applicants
}

// hiringContact reads the first h3 carrying every hiring-card class, in any
// order and alongside extra classes.
func hiringContact(doc *goquery.Document) string {
	want := strings.Fields(hiringContactClasses)
	h3 := doc.Find("h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		have := make(map[string]bool)
		for _, c := range strings.Fields(class) {
			have[c] = true
		}
		for _, c := range want {
			if !have[c] {
				return false
			}
		}
		return true
	}).First()
	if h3.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(h3.Text())
}
