package media

import (
	"context"
	"log/slog"
	"os"

	"github.com/xiao334455/dyresolve/internal/errs"
)

// Pipeline chains short-link expansion, ID extraction and the two lookup
// sources. A request makes at most three outbound calls, each bounded by
// its source's own timeout, and never retries within a source.
type Pipeline struct {
	expander Expander
	primary  Source
	fallback Source
	logger   *slog.Logger
}

func NewPipeline(expander Expander, primary Source, fallback Source, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		expander: expander,
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// NewDefaultPipeline wires the production sources. The fallback source
// needs the DEURL_SECRET_KEY shared secret and is disabled when it is not
// set; DEURL_API_URL overrides the fallback endpoint.
func NewDefaultPipeline(logger *slog.Logger) *Pipeline {
	var fallback Source
	if secret, ok := os.LookupEnv("DEURL_SECRET_KEY"); ok {
		fallback = NewDeURLSource(os.Getenv("DEURL_API_URL"), secret)
	} else {
		logger.Warn("DEURL_SECRET_KEY not set, fallback resolution disabled")
	}

	return NewPipeline(NewShortLinkExpander(logger), NewItemInfoSource(), fallback, logger)
}

// Resolve runs the full chain for one share URL. Exactly one of primary
// success, fallback success or a terminal error holds per call.
//
// An extraction miss is terminal: without an aweme ID the primary source
// cannot be queried, and the original service does not consult the fallback
// in that case either.
func (p *Pipeline) Resolve(ctx context.Context, rawURL string) (*MediaRecord, error) {
	if rawURL == "" {
		return nil, errs.ErrMissingURL
	}

	finalURL := p.expander.Expand(ctx, rawURL)

	awemeID, ok := ExtractAwemeID(finalURL)
	if !ok {
		return nil, &errs.ExtractError{ReceivedURL: rawURL, ProcessedURL: finalURL}
	}
	p.logger.Debug("Extracted aweme ID", "awemeId", awemeID)

	record, primaryErr := p.primary.Resolve(ctx, awemeID)
	if primaryErr == nil {
		return record, nil
	}
	p.logger.Warn("Primary lookup failed", "awemeId", awemeID, "err", primaryErr)

	if p.fallback == nil {
		return nil, &errs.ResolveError{Cause: primaryErr, Details: primaryErr.Error()}
	}

	record, fallbackErr := p.fallback.Resolve(ctx, finalURL)
	if fallbackErr != nil {
		p.logger.Warn("Fallback lookup failed", "url", finalURL, "err", fallbackErr)
		return nil, &errs.ResolveError{Cause: fallbackErr, Details: primaryErr.Error()}
	}

	return record, nil
}
