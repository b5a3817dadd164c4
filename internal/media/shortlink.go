package media

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	mobileUserAgent  = "Mozilla/5.0 (Linux; Android 10; Mobile) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/103.0.0.0 Mobile Safari/537.36"
	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	douyinReferer    = "https://www.douyin.com/"
	shortLinkHost    = "v.douyin.com"

	maxRedirectHops      = 5
	shortLinkTimeout     = 8 * time.Second
	sourceRequestTimeout = 10 * time.Second
)

type ShortLinkExpander struct {
	client    *http.Client
	shortHost string
	logger    *slog.Logger
}

func NewShortLinkExpander(logger *slog.Logger) *ShortLinkExpander {
	return &ShortLinkExpander{
		client: &http.Client{
			Timeout: shortLinkTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirectHops {
					return fmt.Errorf("stopped after %d redirects", maxRedirectHops)
				}
				return nil
			},
		},
		shortHost: shortLinkHost,
		logger:    logger,
	}
}

// Expand follows a v.douyin.com short link to the canonical video URL.
// Non-short links pass through unchanged. Expansion failure is never fatal:
// the raw URL is returned so later stages can still try it.
func (e *ShortLinkExpander) Expand(ctx context.Context, rawURL string) string {
	if !strings.Contains(rawURL, e.shortHost) {
		return rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		e.logger.Warn("Short link expansion failed", "url", rawURL, "err", err)
		return rawURL
	}
	req.Header.Set("User-Agent", mobileUserAgent)
	req.Header.Set("Referer", douyinReferer)

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Warn("Short link expansion failed", "url", rawURL, "err", err)
		return rawURL
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL.String()
	e.logger.Debug("Short link expanded", "url", rawURL, "finalUrl", finalURL)
	return finalURL
}
