// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/AccelByte/extend-santa-skill/pkg/handler"
)

// HTTPServer serves the skill webhook.
type HTTPServer struct {
	server         *http.Server
	port           int
	serviceName    string
	allowedOrigins []string
	skill          *handler.Skill
}

// NewHTTPServer creates a new webhook server instance. CORS is enabled only
// when allowedOrigins is not empty.
func NewHTTPServer(port int, serviceName string, allowedOrigins []string, skill *handler.Skill) *HTTPServer {
	return &HTTPServer{
		port:           port,
		serviceName:    serviceName,
		allowedOrigins: allowedOrigins,
		skill:          skill,
	}
}

// Setup builds the router.
func (s *HTTPServer) Setup() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}

// Router returns the webhook routes.
func (s *HTTPServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(s.serviceName))

	if len(s.allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: s.allowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", handler.RequestIDHeader},
		}))
	}

	router.GET("/healthz", handler.Health)
	router.POST("/skill", s.skill.Handle)

	return router
}

// Start begins serving webhook requests.
func (s *HTTPServer) Start(ctx context.Context) error {
	go func() {
		logrus.Infof("HTTP server listening on port %d", s.port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()
	return nil
}

// Shutdown gracefully stops the webhook server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down HTTP server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("HTTP server stopped")
	return nil
}
