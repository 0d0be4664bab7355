// Package server wires the HTTP router.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SyedHashirA/Email-Spam-Detection/internal/handler"
)

// Server owns the gin router and its middleware.
type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

// NewServer builds the router with CORS and request logging and registers
// the API routes.
func NewServer(apiHandler *handler.Handler, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestLogger(logger))

	apiHandler.RegisterRoutes(router)

	return &Server{router: router, logger: logger}
}

// Run starts the HTTP listener and blocks until it fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("server starting", zap.String("address", addr))
	return s.router.Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestLogger attaches a request id and logs each request after it
// completes.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Next()
		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}
