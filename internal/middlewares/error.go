package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xiao334455/dyresolve/internal/errs"
)

type missingURLResponse struct {
	Error   string `json:"error"`
	Example string `json:"example"`
}

type extractErrorResponse struct {
	Error        string `json:"error"`
	ReceivedURL  string `json:"receivedUrl"`
	ProcessedURL string `json:"processedUrl"`
}

type resolveErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type serverErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorMiddleware renders errors attached to the context as the JSON error
// shapes of the parse API. Missing input and extraction misses are client
// errors; everything else is a server error.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		slog.Warn("Error handling request", "id", c.GetString(RequestIdKey), "errors", c.Errors)

		var extractErr *errs.ExtractError
		var resolveErr *errs.ResolveError
		switch {
		case errors.Is(err, errs.ErrMissingURL):
			c.JSON(http.StatusBadRequest, missingURLResponse{
				Error:   "请提供抖音链接",
				Example: "/api/parse?url=https://v.douyin.com/iJNvRkF9/",
			})
		case errors.As(err, &extractErr):
			c.JSON(http.StatusBadRequest, extractErrorResponse{
				Error:        "无法提取有效视频ID",
				ReceivedURL:  extractErr.ReceivedURL,
				ProcessedURL: extractErr.ProcessedURL,
			})
		case errors.As(err, &resolveErr):
			c.JSON(http.StatusInternalServerError, resolveErrorResponse{
				Error:   "视频解析失败",
				Details: resolveErr.Details,
			})
		default:
			c.JSON(http.StatusInternalServerError, serverErrorResponse{
				Error:   "服务端错误",
				Message: err.Error(),
			})
		}
	}
}
