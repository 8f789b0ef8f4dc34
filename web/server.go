package web

import (
	"context"
	"net/http"
	"time"

	"insight-copilot/config"
	"insight-copilot/document"
	"insight-copilot/fixtures"
	"insight-copilot/matcher"
	"insight-copilot/web/handlers"
	"insight-copilot/web/middleware"
	"insight-copilot/web/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router  *gin.Engine
	limiter *middleware.SessionRateLimiter
	logger  *zap.Logger
	config  *config.Config
}

func NewServer(m *matcher.Matcher, store *fixtures.Store, logger *zap.Logger, cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		c.Set("logger", logger)
		c.Next()
	})

	limiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
		MessagesPerMinute: cfg.RateLimitMessagesPerMin,
		BurstSize:         cfg.RateLimitBurstSize,
		CleanupInterval:   10 * time.Minute,
	}, logger)

	server := &Server{
		router:  router,
		limiter: limiter,
		logger:  logger,
		config:  cfg,
	}

	server.setupRoutes(m, store)
	return server
}

func (s *Server) setupRoutes(m *matcher.Matcher, store *fixtures.Store) {
	sessionService := services.NewSessionService(s.logger)
	documentService := document.NewService(store, s.logger)
	chatService := services.NewChatService(m, sessionService, documentService, s.logger)

	chatHandler := handlers.NewChatHandler(chatService, s.logger)
	documentHandler := handlers.NewDocumentHandler(chatService, store, s.logger)
	anomalyHandler := handlers.NewAnomalyHandler(chatService, s.logger)

	api := s.router.Group("/api")
	api.Use(middleware.SessionMiddleware())

	api.POST("/ask", middleware.RateLimitMiddleware(s.limiter), chatHandler.Ask)
	api.GET("/messages", chatHandler.Messages)
	api.GET("/questions/starter", chatHandler.StarterQuestions)
	api.GET("/documents", documentHandler.List)
	api.GET("/documents/:id", documentHandler.Get)
	api.POST("/anomalies", anomalyHandler.Push)
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	s.limiter.Stop()
	return srv.Shutdown(context.Background())
}
