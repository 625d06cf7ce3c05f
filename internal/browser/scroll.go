package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

const scrollToBottomJS = "window.scrollTo(0, document.body.scrollHeight)"

// ScrollDriver loads an infinite-scroll listing by scrolling to the bottom a
// fixed number of times. It never checks whether new content appeared.
type ScrollDriver struct {
	SettleDelay    time.Duration
	IterationDelay time.Duration
	ClickTimeout   time.Duration
	NavTimeout     time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

func NewScrollDriver() *ScrollDriver {
	return &ScrollDriver{
		SettleDelay:    2 * time.Second,
		IterationDelay: 1 * time.Second,
		ClickTimeout:   500 * time.Millisecond,
		NavTimeout:     30 * time.Second,
		sleep:          Sleep,
	}
}

// Load navigates page to url, runs the scroll loop and returns the page markup.
// The caller owns the session and closes it.
func (d *ScrollDriver) Load(ctx context.Context, page Page, url string, iterations int, triggerClass string) (string, error) {
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(d.NavTimeout.Milliseconds())),
	}); err != nil {
		return "", fmt.Errorf("failed to load %s: %w", url, err)
	}

	if err := d.sleep(ctx, d.SettleDelay); err != nil {
		return "", err
	}

	for i := 0; i < iterations; i++ {
		if _, err := page.Evaluate(scrollToBottomJS); err != nil {
			return "", fmt.Errorf("scroll %d/%d failed: %w", i+1, iterations, err)
		}
		d.clickShowMore(page, triggerClass)
		if err := d.sleep(ctx, d.IterationDelay); err != nil {
			return "", err
		}
	}

	html, err := page.Content()
	if err != nil {
		return "", fmt.Errorf("failed to read page content: %w", err)
	}
	return html, nil
}

// clickShowMore clicks the "see more jobs" button if it is already there.
// A missing or hidden button is skipped, never waited for.
func (d *ScrollDriver) clickShowMore(page Page, class string) bool {
	buttons := page.Locator("." + class)
	if n, err := buttons.Count(); err != nil || n == 0 {
		return false
	}
	btn := buttons.First()
	if visible, err := btn.IsVisible(); err != nil || !visible {
		return false
	}
	if err := btn.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(d.ClickTimeout.Milliseconds())),
	}); err != nil {
		return false
	}
	return true
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
