package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	redisdb "tutorchat/internal/redis"
)

// PreviewHandler returns a title/host preview for a URL. The endpoint always
// answers 200: fetch failures become a structured error payload instead of a
// fault. Successful previews go through the optional cache.
func PreviewHandler(fetcher Fetcher, cache *redisdb.PreviewCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageURL := c.Query("url")
		ctx := c.Request.Context()

		if p, ok := cache.Get(ctx, pageURL); ok {
			c.JSON(http.StatusOK, p)
			return
		}

		p, err := fetcher.Preview(ctx, pageURL)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{
				"title":    "Error fetching preview",
				"url_host": "Error",
				"error":    err.Error(),
			})
			return
		}

		cache.Set(ctx, pageURL, p)
		c.JSON(http.StatusOK, p)
	}
}
