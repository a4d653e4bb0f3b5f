package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/linkedpost/post_go_server/config"
	"github.com/linkedpost/post_go_server/internal/api"
	"github.com/linkedpost/post_go_server/internal/api/handler"
	"github.com/linkedpost/post_go_server/internal/pkg/gemini"
	"github.com/linkedpost/post_go_server/internal/service"
)

func main() {
	// .env 仅本地开发使用，不存在则忽略
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Gemini.APIKey == "" {
		// 不中断启动：缺失的密钥在每次生成请求时作为配置错误返回
		log.Println("Warning: GEMINI_API_KEY is not set, generation requests will fail")
	}

	// 初始化 Gemini 客户端
	geminiClient := gemini.NewClient(&cfg.Gemini)

	// 初始化 Service
	codeService := service.NewProCodeService(cfg)
	quotaService := service.NewQuotaService(codeService, cfg)
	generateService := service.NewGenerateService(geminiClient, cfg)

	// 初始化 Handler
	generateHandler := handler.NewGenerateHandler(generateService, quotaService)
	proCodeHandler := handler.NewProCodeHandler(codeService)

	// 初始化 Router
	router := api.NewRouter(generateHandler, proCodeHandler, cfg)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
