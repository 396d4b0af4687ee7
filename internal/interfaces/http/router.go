// Package http wires the gin engine for the gateway service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wagate/internal/interfaces/http/routes"
	"wagate/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	logger logger.Interface
}

func NewRouter(cfg *routes.GatewayRouteConfig, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupGatewayRoutes(engine, cfg)

	return &Router{engine: engine, logger: log}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func requestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusInternalServerError {
			log.Warnw("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status())
		}
	}
}
