package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 各状态码对应的默认提示文案
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Неверный запрос",
	http.StatusTooManyRequests:     "Лимит исчерпан. Получите PRO за €19/мес для безлимитных генераций!",
	http.StatusInternalServerError: "Произошла ошибка при генерации. Попробуйте позже.",
	http.StatusGatewayTimeout:      "Генерация заняла слишком много времени. Попробуйте ещё раз.",
}

// ErrorBody 错误响应结构
type ErrorBody struct {
	Error string `json:"error"`
}

// QuotaErrorBody 配额耗尽响应结构，额外携带剩余次数与 PRO 标志
type QuotaErrorBody struct {
	Error     string `json:"error"`
	Remaining int    `json:"remaining"`
	IsPro     bool   `json:"isPro"`
}

// OK 成功响应，原样输出 data
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应，message 为空时使用状态码默认文案
func Error(c *gin.Context, status int, message string) {
	if message == "" {
		message = statusMessages[status]
	}
	c.JSON(status, ErrorBody{Error: message})
}

// ParamError 参数错误（400）
func ParamError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// QuotaError 配额耗尽（429），按约定携带 remaining=0 与 isPro=false
func QuotaError(c *gin.Context, message string) {
	if message == "" {
		message = statusMessages[http.StatusTooManyRequests]
	}
	c.JSON(http.StatusTooManyRequests, QuotaErrorBody{
		Error:     message,
		Remaining: 0,
		IsPro:     false,
	})
}

// TimeoutError 上游超时（504）
func TimeoutError(c *gin.Context, message string) {
	Error(c, http.StatusGatewayTimeout, message)
}

// ServerError 服务器错误（500）
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
