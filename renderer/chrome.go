package renderer

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/chromedp"

	"rss-summarizer/internal/httpclient"
)

const defaultChromePath = "/usr/bin/chromium-browser"

// ChromeRenderer renders client-side pages in headless Chrome.
type ChromeRenderer struct {
	chromePath string
	timeout    time.Duration
}

// NewChromeRenderer uses CHROME_PATH when set.
func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		chromePath = defaultChromePath
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &ChromeRenderer{chromePath: chromePath, timeout: timeout}
}

func (r *ChromeRenderer) Render(ctx context.Context, pageURL string) (*Page, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(r.chromePath),
		chromedp.UserAgent(httpclient.UserAgent),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	browserCtx, cancel = context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return nil, err
	}
	return &Page{URL: pageURL, ContentType: "text/html", Body: htmlContent}, nil
}
