package quota

import (
	"context"
	"errors"
	"sync"
	"time"

	"rss-summarizer/config"
)

var ErrQuotaExceeded = errors.New("daily summary quota exceeded")

// SummaryQuotaLimiter 는 요약용 LLM 호출에 대한 분당 간격과 일일 한도를 관리한다.
// 인메모리로 동작하며 프로세스가 재시작되면 카운터가 초기화된다.
type SummaryQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewSummaryQuotaLimiter 는 limiter 를 생성한다. 0 이하인 값은 해당 제한을 두지 않는다.
func NewSummaryQuotaLimiter(requestsPerMinute, requestsPerDay int) *SummaryQuotaLimiter {
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &SummaryQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

func NewSummaryQuotaLimiterFromConfig(cfg config.AppConfig) *SummaryQuotaLimiter {
	q := cfg.SummaryQuota
	return NewSummaryQuotaLimiter(q.RequestsPerMinute, q.RequestsPerDay)
}

// WaitAndReserve 는 다음 호출이 허용될 때까지 대기한 뒤 한 건을 예약한다.
// - 일일 한도를 초과한 경우: ErrQuotaExceeded 를 반환한다.
// - 대기 중 컨텍스트가 끝난 경우: 컨텍스트 에러를 반환한다.
func (l *SummaryQuotaLimiter) WaitAndReserve(ctx context.Context) error {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return ErrQuotaExceeded
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return nil
		}

		l.mu.Unlock()
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

// Remaining 은 오늘 남은 호출 수를 반환한다. 일일 한도가 없으면 -1 이다.
func (l *SummaryQuotaLimiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.dailyLimit <= 0 {
		return -1
	}
	if l.dayKey != l.now().UTC().Format("2006-01-02") {
		return l.dailyLimit
	}
	return l.dailyLimit - l.usedToday
}
