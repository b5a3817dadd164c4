package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultItemInfoURL = "https://www.iesdouyin.com/web/api/v2/aweme/iteminfo/"

type itemInfoResponse struct {
	ItemList []struct {
		Desc       string `json:"desc"`
		CreateTime int64  `json:"create_time"`
		Author     struct {
			Nickname string `json:"nickname"`
		} `json:"author"`
		Video struct {
			PlayAddr struct {
				URLList []string `json:"url_list"`
			} `json:"play_addr"`
		} `json:"video"`
		Statistics struct {
			DiggCount    int64 `json:"digg_count"`
			CommentCount int64 `json:"comment_count"`
			CollectCount int64 `json:"collect_count"`
			ShareCount   int64 `json:"share_count"`
		} `json:"statistics"`
	} `json:"item_list"`
}

// ItemInfoSource resolves aweme IDs against the first-party iteminfo
// endpoint. All of its errors are recoverable by the fallback source.
type ItemInfoSource struct {
	apiURL string
	client *http.Client
}

func NewItemInfoSource() *ItemInfoSource {
	return &ItemInfoSource{
		apiURL: defaultItemInfoURL,
		client: &http.Client{Timeout: sourceRequestTimeout},
	}
}

func (s *ItemInfoSource) Resolve(ctx context.Context, awemeID string) (*MediaRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?item_ids="+awemeID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", mobileUserAgent)
	req.Header.Set("Referer", douyinReferer)
	// the endpoint rejects cookieless requests
	req.Header.Set("Cookie", "ttwid=1;")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("iteminfo API returned status %d", resp.StatusCode)
	}

	var body itemInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("malformed iteminfo response: %w", err)
	}

	if len(body.ItemList) == 0 {
		return nil, ErrNoData
	}

	item := body.ItemList[0]
	record := &MediaRecord{
		Desc:         item.Desc,
		Author:       item.Author.Nickname,
		LikeCount:    item.Statistics.DiggCount,
		CommentCount: item.Statistics.CommentCount,
		CollectCount: item.Statistics.CollectCount,
		ShareCount:   item.Statistics.ShareCount,
		PublishTime:  UnknownPublishTime,
	}
	if urls := item.Video.PlayAddr.URLList; len(urls) > 0 {
		record.VideoURL = urls[0]
	}
	if record.Author == "" {
		record.Author = UnknownAuthor
	}
	if item.CreateTime != 0 {
		record.PublishTime = time.Unix(item.CreateTime, 0).UTC().Format(time.RFC3339)
	}

	return record, nil
}
