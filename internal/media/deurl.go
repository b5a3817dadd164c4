package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultDeURLAPIURL = "https://min.taoanlife.com/dy/api/de-url"

type deURLRequest struct {
	ShareURL string `json:"share_url"`
	DeType   int    `json:"de_type"`
}

type deURLResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		PlayURL string `json:"play_url"`
		Desc    string `json:"desc"`
		Author  struct {
			Nickname string `json:"nickname"`
		} `json:"author"`
	} `json:"data"`
}

// DeURLSource is the secondary, authenticated resolution service. It takes
// the share URL itself rather than an extracted aweme ID, and returns a
// partial record without engagement counters.
type DeURLSource struct {
	apiURL string
	secret string
	client *http.Client
}

func NewDeURLSource(apiURL string, secret string) *DeURLSource {
	if apiURL == "" {
		apiURL = defaultDeURLAPIURL
	}

	return &DeURLSource{
		apiURL: apiURL,
		secret: secret,
		client: &http.Client{Timeout: sourceRequestTimeout},
	}
}

func (s *DeURLSource) Resolve(ctx context.Context, shareURL string) (*MediaRecord, error) {
	payload, err := json.Marshal(deURLRequest{ShareURL: shareURL, DeType: 1})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", desktopUserAgent)
	req.Header.Set("de-secret-key", s.secret)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body deURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("malformed de-url response: %w", err)
	}

	if body.Code != 0 {
		return nil, fmt.Errorf("de-url API returned code %d: %s", body.Code, body.Msg)
	}

	record := &MediaRecord{
		VideoURL:    body.Data.PlayURL,
		Desc:        body.Data.Desc,
		Author:      body.Data.Author.Nickname,
		PublishTime: UnknownPublishTime,
		Partial:     true,
	}
	if record.Desc == "" {
		record.Desc = NoDescription
	}
	if record.Author == "" {
		record.Author = UnknownAuthor
	}

	return record, nil
}
