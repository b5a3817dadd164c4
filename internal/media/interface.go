package media

import (
	"context"
	"errors"
)

const (
	UnknownAuthor      = "未知"
	UnknownPublishTime = "未知"
	NoDescription      = "无描述"
)

var ErrNoData = errors.New("No data returned from iteminfo API")

// MediaRecord is the normalized metadata for one resolved video. Optional
// upstream fields degrade to documented defaults instead of being absent.
type MediaRecord struct {
	VideoURL     string
	Desc         string
	Author       string
	LikeCount    int64
	CommentCount int64
	CollectCount int64
	ShareCount   int64
	PublishTime  string

	// Partial is set on records from the fallback source, which carries no
	// engagement counters and no publish time.
	Partial bool
}

// Source resolves a single reference (an aweme ID for the primary source,
// a share URL for the fallback source) into a MediaRecord.
type Source interface {
	Resolve(ctx context.Context, ref string) (*MediaRecord, error)
}

// Expander turns a possibly-shortened share URL into its canonical form.
type Expander interface {
	Expand(ctx context.Context, rawURL string) string
}
