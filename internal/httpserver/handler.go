package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-task-management/internal/middleware"
	"voice-task-management/internal/model"
	taskHTTP "voice-task-management/internal/task/delivery/http"
	voiceHTTP "voice-task-management/internal/voice/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
	srv.l.Infof(context.Background(), "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts /api/v1/tasks and /api/v1/voice.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.rateLimit)

	taskHTTP.RegisterRoutes(api.Group("/tasks"), taskHTTP.New(srv.l, srv.taskUC))
	srv.l.Infof(ctx, "Task routes registered at /api/v1/tasks")

	voiceHTTP.RegisterRoutes(api.Group("/voice"), voiceHTTP.New(srv.l, srv.voiceUC), mw)
	srv.l.Infof(ctx, "Voice routes registered at /api/v1/voice (rate limit %d/min)", srv.rateLimit)
}
