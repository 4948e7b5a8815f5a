package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-match/internal/fetch"
)

// FromURL downloads a job posting and returns its cleaned main text. The
// page is fetched over plain HTTP first; when the extracted text looks like
// a JavaScript-rendered shell, the page is re-fetched with a headless
// browser.
func FromURL(ctx context.Context, urlStr string, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("ingesting URL",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", urlStr, err)
	}

	selectors := fetch.PlatformContentSelectors(platform)
	noise := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, selectors, noise...)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", urlStr, err)
	}

	if fetch.ShouldUseBrowser(text) {
		logger.Info("content too short, retrying with headless browser",
			zap.String("url", urlStr), zap.Int("length", len(text)))

		html, berr := fetch.Browser(ctx, urlStr, logger)
		if berr != nil {
			logger.Warn("browser fetch failed, keeping HTTP result", zap.Error(berr))
		} else if rendered, rerr := fetch.ExtractMainText(html, selectors, noise...); rerr == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("no text content found at %s", urlStr)
	}
	return cleaned, nil
}
