package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires liveness and readiness probes. Readiness pings the DB.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok\n")
	})
	r.GET("/readyz", func(c *gin.Context) {
		if db == nil {
			c.String(http.StatusServiceUnavailable, "db not configured")
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			c.String(http.StatusServiceUnavailable, "db handle error")
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.String(http.StatusServiceUnavailable, "db unreachable")
			return
		}
		c.String(http.StatusOK, "ok\n")
	})
}
