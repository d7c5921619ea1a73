package ratelimiter

import (
	"academia-service/internal/app/contracts"
	"academia-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// QuotaLimiter is a fixed-window counter kept in Redis. Each window key expires one second
// after the window closes.
type QuotaLimiter struct {
	redis  contracts.RedisRepository
	log    *zap.Logger
	group  string
	window time.Duration
	quota  int
	now    func() time.Time
}

// QuotaDecision reports whether a call fits the quota and, if not, when to retry.
type QuotaDecision struct {
	Allowed        bool
	RetryAfterSecs int
}

// NewQuotaLimiter builds a limiter allowing quota calls per window for every resource in group.
// A non-positive quota disables limiting.
func NewQuotaLimiter(redis contracts.RedisRepository, log *zap.Logger, group string, window time.Duration, quota int) *QuotaLimiter {
	if window < time.Second {
		window = time.Minute
	}
	return &QuotaLimiter{
		redis:  redis,
		log:    log,
		group:  strings.ToUpper(strings.TrimSpace(group)),
		window: window,
		quota:  quota,
		now:    time.Now,
	}
}

// Allow counts one call for resource in the current window.
func (l *QuotaLimiter) Allow(ctx context.Context, resource string) (*QuotaDecision, error) {
	if l.quota <= 0 {
		return &QuotaDecision{Allowed: true}, nil
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	windowSecs := int64(l.window / time.Second)
	if resource == "" {
		return &QuotaDecision{Allowed: false, RetryAfterSecs: int(windowSecs)}, nil
	}

	now := l.now().UTC()
	windowID := now.Unix() / windowSecs
	key := fmt.Sprintf("academia:quota:%s:%s:%d", l.group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, l.window+time.Second)
	if err != nil {
		l.log.Error("QuotaLimiter.Allow increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}

	if count > l.quota {
		nextWindowStart := (windowID + 1) * windowSecs
		return &QuotaDecision{Allowed: false, RetryAfterSecs: int(nextWindowStart-now.Unix()) + 1}, nil
	}
	return &QuotaDecision{Allowed: true}, nil
}
