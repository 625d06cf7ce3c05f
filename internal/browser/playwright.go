package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

var ErrLaunch = errors.New("browser launch failed")

// Page is the part of playwright.Page the scraper drives.
type Page interface {
	Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error)
	Evaluate(expression string, arg ...interface{}) (interface{}, error)
	Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator
	Content() (string, error)
	Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error)
}

// Session is one browser with a single page. Close releases the browser.
type Session interface {
	Page() Page
	Close() error
}

type Opener interface {
	Open(ctx context.Context) (Session, error)
}

// Options replaces process-wide launch flags: it is built from configuration
// and handed to the launcher.
type Options struct {
	ExecutablePath  string // CHROME_BIN; empty uses the bundled chromium
	DriverDirectory string // CHROME_DRIVER_PATH; empty uses playwright's cache
	Headless        bool
	Width           int
	Height          int
	Args            []string
	Cookies         []playwright.OptionalCookie
}

func DefaultOptions() Options {
	return Options{
		Headless: true,
		Width:    1920,
		Height:   1080,
		Args: []string{
			"--window-size=1920,1080",
			"--disable-gpu",
			"--headless",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-browser-side-navigation",
			"--disable-infobars",
			"--disable-extensions",
		},
	}
}

// PlaywrightManager owns the playwright driver for the whole run and opens
// a fresh browser per session.
type PlaywrightManager struct {
	pw   *playwright.Playwright
	opts Options
}

func NewPlaywright(ctx context.Context, opts Options) (*PlaywrightManager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pw, err := playwright.Run(&playwright.RunOptions{
		DriverDirectory:     opts.DriverDirectory,
		SkipInstallBrowsers: opts.ExecutablePath != "",
		Browsers:            []string{"chromium"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: could not start playwright: %v", ErrLaunch, err)
	}
	return &PlaywrightManager{pw: pw, opts: opts}, nil
}

func (pm *PlaywrightManager) Open(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	launch := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(pm.opts.Headless),
		Args:     pm.opts.Args,
	}
	if pm.opts.ExecutablePath != "" {
		launch.ExecutablePath = playwright.String(pm.opts.ExecutablePath)
	}
	b, err := pm.pw.Chromium.Launch(launch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLaunch, err)
	}

	browserCtx, err := b.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: pm.opts.Width, Height: pm.opts.Height},
	})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	if len(pm.opts.Cookies) > 0 {
		if err := browserCtx.AddCookies(pm.opts.Cookies); err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to add cookies: %w", err)
		}
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return &chromiumSession{browser: b, page: page}, nil
}

func (pm *PlaywrightManager) Close() error {
	return pm.pw.Stop()
}

type chromiumSession struct {
	browser playwright.Browser
	page    playwright.Page
}

func (s *chromiumSession) Page() Page { return s.page }

func (s *chromiumSession) Close() error {
	return s.browser.Close()
}
