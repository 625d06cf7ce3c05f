// Package app wires configuration into a full read: browser, scraper,
// enrichment, optional Postgres mirror and optional Telegram summary.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-linkedin-job-source/internal/ai"
	"go-linkedin-job-source/internal/browser"
	"go-linkedin-job-source/internal/config"
	"go-linkedin-job-source/internal/database"
	"go-linkedin-job-source/internal/fetch"
	"go-linkedin-job-source/internal/pipeline"
	"go-linkedin-job-source/internal/protocol"
	"go-linkedin-job-source/internal/reporter"
	"go-linkedin-job-source/internal/roles"
	"go-linkedin-job-source/internal/scraper/linkedin"
)

const pageTimeout = 30 * time.Second

// Spec writes the connector specification.
func Spec(ctx context.Context, w protocol.Writer) error {
	spec := protocol.ConnectorSpec()
	return w.Write(ctx, protocol.Message{Type: protocol.TypeSpec, Spec: &spec})
}

// Discover writes the static catalog. It does not depend on configuration.
func Discover(ctx context.Context, w protocol.Writer) error {
	catalog := protocol.DiscoverCatalog()
	return w.Write(ctx, protocol.Message{Type: protocol.TypeCatalog, Catalog: &catalog})
}

// Check always reports success without contacting LinkedIn.
func Check(ctx context.Context, w protocol.Writer) error {
	return w.Write(ctx, protocol.NewConnectionStatus(true, ""))
}

// Read runs every configured role and writes records and checkpoints to out.
func Read(ctx context.Context, cfg *config.Config, out protocol.Writer) (pipeline.Stats, error) {
	start := time.Now()
	tg := newReporter(cfg)

	stats, err := read(ctx, cfg, out)
	if err != nil {
		log.Printf("❌ Read failed: %v", err)
		if tg != nil {
			if serr := tg.SendError(cfg.JobRole, err); serr != nil {
				log.Printf("⚠️ Failed to send Telegram error: %v", serr)
			}
		}
		return stats, err
	}

	log.Printf("✅ Read finished: %d roles, %d jobs (%d partial), %d companies, %d recruiters",
		stats.Roles, stats.Jobs+stats.PartialJobs, stats.PartialJobs, stats.Companies, stats.Recruiters)
	if tg != nil {
		if serr := tg.SendSummary(cfg.JobRole, stats, time.Since(start)); serr != nil {
			log.Printf("⚠️ Failed to send Telegram summary: %v", serr)
		}
	}
	return stats, nil
}

func read(ctx context.Context, cfg *config.Config, out protocol.Writer) (pipeline.Stats, error) {
	writer := protocol.MultiWriter{out}
	if cfg.DatabaseURL != "" {
		repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return pipeline.Stats{}, err
		}
		defer repo.Close()
		if err := repo.EnsureSchema(ctx); err != nil {
			return pipeline.Stats{}, err
		}
		log.Println("🗄️ Mirroring records to Postgres")
		writer = append(writer, protocol.BestEffort{Name: "postgres mirror", Writer: repo})
	}

	opts := cfg.BrowserOptions()
	if cfg.CookiesPath != "" {
		cookies, err := browser.LoadCookies(cfg.CookiesPath)
		if err != nil {
			log.Printf("⚠️ Could not load cookies: %v. Continuing.", err)
		} else {
			log.Printf("🍪 Loaded %d cookies", len(cookies))
			opts.Cookies = cookies
		}
	}

	pw, err := browser.NewPlaywright(ctx, opts)
	if err != nil {
		return pipeline.Stats{}, err
	}
	defer func() {
		if err := pw.Close(); err != nil {
			log.Printf("⚠️ Failed to stop playwright: %v", err)
		}
	}()

	scraperOpts := []linkedin.Option{linkedin.WithDenominator(cfg.ScrollDenominator)}
	if cfg.DebugScreenshots != "" {
		scraperOpts = append(scraperOpts, linkedin.WithScreenshots(browser.NewScreenshotDebugger(cfg.DebugScreenshots)))
	}
	source := linkedin.NewLinkedInScraper(
		fetch.NewClient(pageTimeout),
		pw,
		browser.NewScrollDriver(),
		cfg.Filters(),
		scraperOpts...,
	)

	p := pipeline.New(source, ai.NewOpenAIClient(cfg.OpenAIAPIKey), writer,
		pipeline.WithModels(cfg.PrimaryModel, cfg.FallbackModel))

	roleList := roles.Resolve(cfg.JobRole)
	log.Printf("🚀 Reading %d role(s) from LinkedIn", len(roleList))
	stats, err := p.Run(ctx, roleList)
	if err != nil {
		return stats, fmt.Errorf("read aborted: %w", err)
	}
	return stats, nil
}

func newReporter(cfg *config.Config) *reporter.TelegramReporter {
	if !cfg.TelegramEnabled() {
		return nil
	}
	r, err := reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Telegram disabled: %v", err)
		return nil
	}
	return r
}
