package service

import (
	"strings"

	"github.com/linkedpost/post_go_server/config"
)

// ProCodeService 校验 PRO 激活码
// 码表来自进程配置，启动后不可变；校验是纯函数，可重复调用
type ProCodeService struct {
	codes []string
}

func NewProCodeService(cfg *config.Config) *ProCodeService {
	var codes []string
	for _, c := range strings.Split(cfg.Pro.Codes, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			codes = append(codes, c)
		}
	}
	return &ProCodeService{codes: codes}
}

// IsValid 去除首尾空白后做大小写敏感的全量比对
// 大小写归一化由调用方负责（validate-code 接口先转大写再调用）
func (s *ProCodeService) IsValid(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	for _, c := range s.codes {
		if c == code {
			return true
		}
	}
	return false
}
