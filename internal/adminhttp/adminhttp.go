// Package adminhttp serves the console's operator-facing side channel:
// health, prometheus metrics, and a read-only view of the advertised
// catalog — entirely separate from the L1/L2/L3 protocol it observes.
package adminhttp

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/apparata/appconsole/internal/catalog"
	"github.com/apparata/appconsole/internal/observability"
	"github.com/apparata/appconsole/internal/session"
)

// Server exposes the admin HTTP surface over an *gin.Engine.
type Server struct {
	InstanceName string
	Addr         string

	router  *gin.Engine
	started time.Time
	table   *session.Table
	cat     func() catalog.Catalog
}

// NewServer builds the admin router: CORS, request logging, request
// metrics, then /healthz, /metrics, and /catalog.
func NewServer(instanceName, addr string, corsOrigins []string, table *session.Table, catalogFn func() catalog.Catalog, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(instanceName, log))
	r.Use(observability.RequestMetricsMiddleware(instanceName))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	s := &Server{InstanceName: instanceName, Addr: addr, router: r, started: time.Now(), table: table, cat: catalogFn}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"instance":    s.InstanceName,
			"uptime":      time.Since(s.started).String(),
			"connections": s.table.Len(),
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/catalog", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.cat())
	})
}

// Run blocks serving the admin router.
func (s *Server) Run() error {
	return s.router.Run(s.Addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
