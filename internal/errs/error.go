package errs

import (
	"errors"
	"fmt"
)

var ErrMissingURL = errors.New("Missing url parameter")

// ExtractError is raised when no aweme ID could be found in a share URL.
// It keeps both the URL the caller sent and the post-redirect URL so the
// caller can see what was actually matched against.
type ExtractError struct {
	ReceivedURL  string
	ProcessedURL string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("no aweme ID in URL '%s' (received as '%s')", e.ProcessedURL, e.ReceivedURL)
}

// ResolveError is the terminal failure of the resolution chain, raised once
// the fallback source has also failed (or is not configured). Details holds
// the primary source's failure message for diagnostics.
type ResolveError struct {
	Cause   error
	Details string
}

func (e *ResolveError) Error() string {
	return "video resolution failed: " + e.Cause.Error()
}

func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// IsClientError reports whether err is caused by the caller's input rather
// than by upstream failure.
func IsClientError(err error) bool {
	var extractErr *ExtractError
	return errors.Is(err, ErrMissingURL) || errors.As(err, &extractErr)
}
