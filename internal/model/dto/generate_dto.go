package dto

import "github.com/linkedpost/post_go_server/internal/model"

// UnlimitedRemaining PRO 用户的剩余次数哨兵值（JSON 无法表示无穷大）
const UnlimitedRemaining = -1

// GenerateRequest 生成请求
type GenerateRequest struct {
	Topic   string `json:"topic"`
	Style   string `json:"style"`
	ProCode string `json:"proCode"`
}

// GenerateResponse 生成成功响应
type GenerateResponse struct {
	Posts     []model.Post `json:"posts"`
	Remaining int          `json:"remaining"`
	IsPro     bool         `json:"isPro"`
}

// QuotaStatus 配额检查结果（非错误路径，参见 QuotaService.Check）
type QuotaStatus struct {
	Allowed   bool
	Remaining int
	IsPro     bool
}

// HealthResponse GET /api/generate 健康检查响应
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
