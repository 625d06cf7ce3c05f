package linkedin

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoResultsList = errors.New("results list not found")

// ExtractLinks collects the unique job-detail links of a fully loaded listing
// page. Order follows first appearance.
func ExtractLinks(doc *goquery.Document) ([]string, error) {
	list := doc.Find("ul." + resultsListClass).First()
	if list.Length() == 0 {
		return nil, ErrNoResultsList
	}

	seen := make(map[string]bool)
	var links []string
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		li.Find("a." + fullCardLinkClass).Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok {
				return
			}
			link := StripQuery(href)
			if link == "" || seen[link] {
				return
			}
			seen[link] = true
			links = append(links, link)
		})
	})
	return links, nil
}

// StripQuery drops everything from the first "?" on. Tracking parameters
// make the same posting look like different URLs.
func StripQuery(href string) string {
	if idx := strings.Index(href, "?"); idx != -1 {
		href = href[:idx]
	}
	return strings.TrimSpace(href)
}

// CanonicalDetailURL rewrites regional subdomains to www.
func CanonicalDetailURL(link string) string {
	return strings.Replace(link, "https://in.", "https://www.", 1)
}
