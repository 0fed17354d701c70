package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mission77/core/internal/database"
	pkgredis "github.com/mission77/core/internal/pkg/redis"
)

const probeTimeout = 3 * time.Second

func RegisterRoutes(rg *gin.RouterGroup, db *database.DB, rdb *pkgredis.Client) {
	rg.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	rg.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
		defer cancel()

		dbOK := db != nil && db.Ping(ctx) == nil
		redisOK := rdb != nil && rdb.Ping(ctx) == nil

		status := "ok"
		code := http.StatusOK
		if !dbOK || !redisOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbOK,
			"redis":    redisOK,
		})
	})
}
