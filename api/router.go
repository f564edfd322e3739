// Package api exposes the board store over HTTP with gin.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller registers a group of routes.
type Controller interface {
	Register(route *gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	log         logrus.FieldLogger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      logrus.FieldLogger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		log:         log,
	}
}

// Addr returns the address Run listens on.
func (r *Router) Addr() string { return r.addr }

// Handler builds the gin engine with every controller mounted under
// baseURL + "/v1" and a health check at /healthz.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group(r.baseURL + "/v1")
	{
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}
	return router
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	r.log.WithField("addr", r.addr).Info("http server listening")
	return r.Handler().Run(r.addr)
}
