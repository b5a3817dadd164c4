package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xiao334455/dyresolve/internal/errs"
	"github.com/xiao334455/dyresolve/internal/media"
)

type parseResponse struct {
	Success      bool   `json:"success"`
	VideoURL     string `json:"videoUrl"`
	Desc         string `json:"desc"`
	Author       string `json:"author"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	CollectCount int64  `json:"collect_count"`
	ShareCount   int64  `json:"share_count"`
	PublishTime  string `json:"publish_time"`
}

// partialParseResponse is the fallback-path shape. The secondary source has
// no engagement counters or publish time, so they are omitted rather than
// reported as zero.
type partialParseResponse struct {
	Success  bool   `json:"success"`
	VideoURL string `json:"videoUrl"`
	Desc     string `json:"desc"`
	Author   string `json:"author"`
}

func ParseRouter(g *gin.RouterGroup, pipeline *media.Pipeline) {
	g.GET("/parse", parseHandler(pipeline))
}

func parseHandler(pipeline *media.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := pipeline.Resolve(c.Request.Context(), c.Query("url"))
		if err != nil {
			if errs.IsClientError(err) {
				errs.PublicError(c, err)
			} else {
				errs.PrivateError(c, err)
			}
			return
		}

		if record.Partial {
			c.JSON(http.StatusOK, partialParseResponse{
				Success:  true,
				VideoURL: record.VideoURL,
				Desc:     record.Desc,
				Author:   record.Author,
			})
			return
		}

		c.JSON(http.StatusOK, parseResponse{
			Success:      true,
			VideoURL:     record.VideoURL,
			Desc:         record.Desc,
			Author:       record.Author,
			LikeCount:    record.LikeCount,
			CommentCount: record.CommentCount,
			CollectCount: record.CollectCount,
			ShareCount:   record.ShareCount,
			PublishTime:  record.PublishTime,
		})
	}
}
