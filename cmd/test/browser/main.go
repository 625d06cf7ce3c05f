package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go-linkedin-job-source/internal/browser"
	"go-linkedin-job-source/internal/scraper/linkedin"
	"go-linkedin-job-source/internal/search"

	"github.com/PuerkitoBio/goquery"
	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")
	_ = godotenv.Load()

	role := "Backend Developer"
	if len(os.Args) > 1 {
		role = os.Args[1]
	}

	ctx := context.Background()

	opts := browser.DefaultOptions()
	opts.ExecutablePath = os.Getenv("CHROME_BIN")
	opts.DriverDirectory = os.Getenv("CHROME_DRIVER_PATH")

	//create playwright manager
	pm, err := browser.NewPlaywright(ctx, opts)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	session, err := pm.Open(ctx)
	if err != nil {
		log.Fatalf("Failed to open session: %v", err)
	}
	defer session.Close()

	q, err := search.NewQuery(role, search.DefaultFilters())
	if err != nil {
		log.Fatalf("Invalid query: %v", err)
	}

	fmt.Printf("🔍 Loading %s...\n", q.URL())
	html, err := browser.NewScrollDriver().Load(ctx, session.Page(), q.URL(), 1, linkedin.ShowMoreButtonClass)
	if err != nil {
		log.Fatalf("Failed to load listing: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Fatalf("Failed to parse listing: %v", err)
	}
	links, err := linkedin.ExtractLinks(doc)
	if err != nil {
		log.Printf("⚠️ %v", err)
	}
	fmt.Printf("✅ Found %d job links\n", len(links))

	//take screenshot
	_, err = session.Page().Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String("linkedin-test.png"),
	})
	if err != nil {
		log.Printf("Failed to take screenshot: %v", err)
	} else {
		fmt.Println("📸 Screenshot saved: linkedin-test.png")
	}
	fmt.Println("✨ Test complete!")
}
