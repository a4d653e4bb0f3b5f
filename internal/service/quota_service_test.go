package service

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"

	"github.com/linkedpost/post_go_server/config"
	"github.com/linkedpost/post_go_server/internal/model/dto"
)

func setupQuotaService(t *testing.T) *QuotaService {
	t.Helper()

	cfg := &config.Config{
		Pro:       config.ProConfig{Codes: "PRO2024"},
		RateLimit: config.RateLimitConfig{DailyLimit: 5},
	}
	return NewQuotaService(NewProCodeService(cfg), cfg)
}

func TestQuotaService_Check_NewClient(t *testing.T) {
	s := setupQuotaService(t)

	status := s.Check("1.2.3.4", "")
	assert.True(t, status.Allowed)
	assert.Equal(t, 4, status.Remaining)
	assert.False(t, status.IsPro)
}

func TestQuotaService_Check_RemainingDecreases(t *testing.T) {
	s := setupQuotaService(t)

	for used := 0; used < 5; used++ {
		status := s.Check("1.2.3.4", "")
		assert.True(t, status.Allowed)
		assert.Equal(t, 4-used, status.Remaining)
		s.Increment("1.2.3.4")
	}
}

func TestQuotaService_Check_Exhausted(t *testing.T) {
	s := setupQuotaService(t)

	for i := 0; i < 5; i++ {
		s.Increment("1.2.3.4")
	}

	status := s.Check("1.2.3.4", "")
	assert.False(t, status.Allowed)
	assert.Equal(t, 0, status.Remaining)
	assert.False(t, status.IsPro)
}

func TestQuotaService_Check_ProBypassesExhaustedQuota(t *testing.T) {
	s := setupQuotaService(t)

	for i := 0; i < 5; i++ {
		s.Increment("1.2.3.4")
	}

	status := s.Check("1.2.3.4", "PRO2024")
	assert.True(t, status.Allowed)
	assert.Equal(t, dto.UnlimitedRemaining, status.Remaining)
	assert.True(t, status.IsPro)
}

func TestQuotaService_Check_InvalidProCodeCounts(t *testing.T) {
	s := setupQuotaService(t)

	for i := 0; i < 5; i++ {
		s.Increment("1.2.3.4")
	}

	status := s.Check("1.2.3.4", "WRONG")
	assert.False(t, status.Allowed)
	assert.False(t, status.IsPro)
}

func TestQuotaService_Check_DayRollover(t *testing.T) {
	s := setupQuotaService(t)

	// 昨天已耗尽的记录在今天读取时视为零使用
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	s.store.Set("1.2.3.4", UsageRecord{Count: 5, Date: yesterday}, cache.NoExpiration)

	status := s.Check("1.2.3.4", "")
	assert.True(t, status.Allowed)
	assert.Equal(t, 4, status.Remaining)
}

func TestQuotaService_Increment_ResetsStaleRecord(t *testing.T) {
	s := setupQuotaService(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	s.store.Set("1.2.3.4", UsageRecord{Count: 5, Date: yesterday}, cache.NoExpiration)

	s.Increment("1.2.3.4")

	rec, found := s.getRecord("1.2.3.4")
	assert.True(t, found)
	assert.Equal(t, 1, rec.Count)
	assert.Equal(t, currentDate(), rec.Date)
}

func TestQuotaService_ClientsIndependent(t *testing.T) {
	s := setupQuotaService(t)

	for i := 0; i < 5; i++ {
		s.Increment("1.2.3.4")
	}

	status := s.Check("5.6.7.8", "")
	assert.True(t, status.Allowed)
	assert.Equal(t, 4, status.Remaining)

	status = s.Check("1.2.3.4", "")
	assert.False(t, status.Allowed)
}

func TestQuotaService_UnknownClientsShareBucket(t *testing.T) {
	s := setupQuotaService(t)

	for i := 0; i < 5; i++ {
		s.Increment("unknown")
	}

	status := s.Check("unknown", "")
	assert.False(t, status.Allowed)
}
