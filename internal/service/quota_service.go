package service

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/linkedpost/post_go_server/config"
	"github.com/linkedpost/post_go_server/internal/model/dto"
)

// UsageRecord 单个客户端当天的使用记录
type UsageRecord struct {
	Count int
	Date  string // YYYY-MM-DD，进程本地时区
}

// QuotaService 按客户端与自然日限制生成次数
// 存储为进程内易失状态：不做持久化，不做后台清理，跨天在读取时惰性重置
type QuotaService struct {
	store       *cache.Cache
	codeService *ProCodeService
	dailyLimit  int
}

func NewQuotaService(codeService *ProCodeService, cfg *config.Config) *QuotaService {
	return &QuotaService{
		// 不设置过期时间也不启动清扫协程，条目跨天后原地覆盖
		store:       cache.New(cache.NoExpiration, 0),
		codeService: codeService,
		dailyLimit:  cfg.RateLimit.DailyLimit,
	}
}

// Check 检查客户端今天是否还能生成
// 有效 PRO 码直接放行且不查表；配额检查不产生错误，结果始终是正常返回值
func (s *QuotaService) Check(clientKey, proCode string) dto.QuotaStatus {
	if proCode != "" && s.codeService.IsValid(proCode) {
		return dto.QuotaStatus{Allowed: true, Remaining: dto.UnlimitedRemaining, IsPro: true}
	}

	today := currentDate()

	rec, found := s.getRecord(clientKey)
	// 新客户端或新的一天
	if !found || rec.Date != today {
		return dto.QuotaStatus{Allowed: true, Remaining: s.dailyLimit - 1}
	}

	if rec.Count >= s.dailyLimit {
		return dto.QuotaStatus{Allowed: false, Remaining: 0}
	}

	return dto.QuotaStatus{Allowed: true, Remaining: s.dailyLimit - rec.Count - 1}
}

// Increment 成功生成后计数加一
// 每次被接受的非 PRO 生成恰好调用一次；与 Check 合起来不构成原子操作（接受的折衷）
func (s *QuotaService) Increment(clientKey string) {
	today := currentDate()

	rec, found := s.getRecord(clientKey)
	if !found || rec.Date != today {
		s.store.Set(clientKey, UsageRecord{Count: 1, Date: today}, cache.NoExpiration)
		return
	}

	s.store.Set(clientKey, UsageRecord{Count: rec.Count + 1, Date: today}, cache.NoExpiration)
}

func (s *QuotaService) getRecord(clientKey string) (UsageRecord, bool) {
	v, found := s.store.Get(clientKey)
	if !found {
		return UsageRecord{}, false
	}
	rec, ok := v.(UsageRecord)
	if !ok {
		return UsageRecord{}, false
	}
	return rec, true
}

// currentDate 当天日期，以进程本地时区的午夜为界
func currentDate() string {
	return time.Now().Format("2006-01-02")
}
