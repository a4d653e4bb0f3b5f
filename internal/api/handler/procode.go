package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/linkedpost/post_go_server/internal/model/dto"
	"github.com/linkedpost/post_go_server/internal/service"
)

type ProCodeHandler struct {
	codeService *service.ProCodeService
}

func NewProCodeHandler(codeService *service.ProCodeService) *ProCodeHandler {
	return &ProCodeHandler{codeService: codeService}
}

// Validate 校验 PRO 激活码
// POST /api/validate-code
func (h *ProCodeHandler) Validate(c *gin.Context) {
	var req dto.ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		c.JSON(http.StatusBadRequest, dto.ValidateCodeResponse{
			Valid: false,
			Error: "Код не указан",
		})
		return
	}

	// 比对前统一转大写，码表本身保持原样
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	if h.codeService.IsValid(code) {
		log.Printf("PRO code validated: %s", code)
		c.JSON(http.StatusOK, dto.ValidateCodeResponse{
			Valid:   true,
			Message: "Код активирован! Теперь у вас безлимитный доступ.",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ValidateCodeResponse{
		Valid: false,
		Error: "Неверный код. Проверьте правильность ввода.",
	})
}
