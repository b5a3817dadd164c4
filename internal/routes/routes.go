package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/xiao334455/dyresolve/internal/media"
	"github.com/xiao334455/dyresolve/internal/middlewares"
)

func CreateMainRouter() http.Handler {
	router := gin.New()

	gzipMode, err := strconv.Atoi(os.Getenv("GZIP_MODE"))
	if err != nil {
		slog.Warn("Invalid value for GZIP_MODE environment variable", "err", err)
		gzipMode = 0
	}

	router.Use(middlewares.LogMiddleware())
	router.Use(gin.CustomRecovery(recoverHandler))
	router.Use(gzip.Gzip(gzipMode))
	router.Use(middlewares.ErrorMiddleware())

	router.GET("/healthz", healthHandler)

	pipeline := media.NewDefaultPipeline(slog.Default())
	ParseRouter(router.Group("/api"), pipeline)

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// recoverHandler is the outermost boundary: a panicking handler still
// answers with the generic server error shape.
func recoverHandler(c *gin.Context, recovered any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   "服务端错误",
		"message": fmt.Sprint(recovered),
	})
}
