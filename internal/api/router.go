package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/linkedpost/post_go_server/config"
	"github.com/linkedpost/post_go_server/internal/api/handler"
	"github.com/linkedpost/post_go_server/internal/api/middleware"
)

type Router struct {
	generateHandler *handler.GenerateHandler
	proCodeHandler  *handler.ProCodeHandler
	cfg             *config.Config
}

func NewRouter(
	generateHandler *handler.GenerateHandler,
	proCodeHandler *handler.ProCodeHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		generateHandler: generateHandler,
		proCodeHandler:  proCodeHandler,
		cfg:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api")
	{
		api.POST("/generate", r.generateHandler.Generate)
		api.GET("/generate", r.generateHandler.Health)
		api.POST("/validate-code", r.proCodeHandler.Validate)
	}

	// 营销页面等前端静态文件（可选）
	if dir := r.cfg.Server.StaticDir; dir != "" {
		engine.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet {
				c.Status(http.StatusNotFound)
				return
			}
			c.File(filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path)))
		})
	}

	return engine
}
