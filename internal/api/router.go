package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	redisdb "tutorchat/internal/redis"
)

// SetupRouter wires the HTTP surface. CORS is fully permissive: the API is a
// public frontend backend and accepts any origin.
func SetupRouter(completer Completer, searcher Searcher, fetcher Fetcher, cache *redisdb.PreviewCache) *gin.Engine {
	r := gin.Default()

	r.Use(RequestID())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/", rootHandler)
	r.GET("/health", healthHandler)
	r.POST("/chat", ChatHandler(completer, searcher, fetcher))
	r.GET("/preview", PreviewHandler(fetcher, cache))

	return r
}
