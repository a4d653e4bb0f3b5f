package handler

import (
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/linkedpost/post_go_server/internal/api/middleware"
	"github.com/linkedpost/post_go_server/internal/model/dto"
	"github.com/linkedpost/post_go_server/internal/pkg/gemini"
	"github.com/linkedpost/post_go_server/internal/pkg/response"
	"github.com/linkedpost/post_go_server/internal/service"
)

// 去除首尾空白后的主题长度上限（按字符计）
const maxTopicLength = 500

type GenerateHandler struct {
	generateService *service.GenerateService
	quotaService    *service.QuotaService
}

func NewGenerateHandler(generateService *service.GenerateService, quotaService *service.QuotaService) *GenerateHandler {
	return &GenerateHandler{
		generateService: generateService,
		quotaService:    quotaService,
	}
}

// Generate 生成帖子
// POST /api/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "Неверный формат запроса")
		return
	}

	// 输入校验先于配额检查与上游调用
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		response.ParamError(c, "Тема обязательна для заполнения")
		return
	}
	if utf8.RuneCountInString(topic) > maxTopicLength {
		response.ParamError(c, "Тема слишком длинная (максимум 500 символов)")
		return
	}
	if !service.IsValidStyle(req.Style) {
		response.ParamError(c, "Неверный стиль поста")
		return
	}

	clientKey := middleware.ClientKey(c)

	status := h.quotaService.Check(clientKey, req.ProCode)
	if !status.Allowed {
		log.Printf("Rate limit exceeded for client: %s", clientKey)
		response.QuotaError(c, "")
		return
	}

	log.Printf("Generation: topic=%q, style=%s, client=%s, request_id=%s",
		truncate(topic, 50), req.Style, clientKey, middleware.GetRequestID(c))

	posts, err := h.generateService.Generate(c.Request.Context(), topic, req.Style)
	if err != nil {
		// 详细原因只写日志，不回传给客户端
		log.Printf("Generation failed: %v, request_id=%s", err, middleware.GetRequestID(c))
		switch {
		case errors.Is(err, service.ErrTimeout):
			response.TimeoutError(c, "")
		case errors.Is(err, service.ErrParseFailed), errors.Is(err, service.ErrNoValidPosts):
			response.ServerError(c, "Ошибка генерации. Попробуйте ещё раз.")
		case errors.Is(err, gemini.ErrAPIKeyMissing):
			response.ServerError(c, "Ошибка конфигурации сервера")
		default:
			response.ServerError(c, "")
		}
		return
	}

	// PRO 用户不消耗配额
	if !status.IsPro {
		h.quotaService.Increment(clientKey)
	}

	response.OK(c, dto.GenerateResponse{
		Posts:     posts,
		Remaining: status.Remaining,
		IsPro:     status.IsPro,
	})
}

// Health 健康检查
// GET /api/generate
func (h *GenerateHandler) Health(c *gin.Context) {
	response.OK(c, dto.HealthResponse{
		Status:    "ok",
		Service:   "LinkedIn Post Generator",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
