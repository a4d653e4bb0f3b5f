package dto

// ValidateCodeRequest 激活码校验请求
type ValidateCodeRequest struct {
	Code string `json:"code"`
}

// ValidateCodeResponse 激活码校验响应
// 成功时返回 message，失败时返回 error，二者只出现一个
type ValidateCodeResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
