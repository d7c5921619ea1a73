package calendar

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts"
	"academia-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultRefreshCronSpec = "@hourly"

// Worker periodically refreshes the planner calendar. Only the instance holding the leader
// lock refreshes on a given tick.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	calendar contracts.CalendarUsecase
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, calendarUsecase contracts.CalendarUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, calendar: calendarUsecase}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Planner.RefreshCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("calendar.worker: invalid cron spec; falling back to @hourly",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultRefreshCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight refreshes and waits for the running job to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) lockTTL() time.Duration {
	ttl := time.Duration(w.cfg.Planner.RefreshLockTTLInMs) * time.Millisecond
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return ttl
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := w.lockTTL()
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyPlannerLock, ttl)
	if err != nil {
		w.log.Warn("calendar.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("calendar.worker: leader lock held by another instance")
		return
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyPlannerLock, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.RedisKeyPlannerLock, token, ttl); err != nil {
					w.log.Warn("calendar.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	calendar, err := w.calendar.RefreshPlanner(ctx)
	if err != nil {
		w.log.Warn("calendar.worker: planner refresh failed", zap.Error(err))
		return
	}
	w.log.Info("calendar.worker: planner refreshed", zap.Int(constvars.LoggingMonthCountKey, len(calendar)))
}
