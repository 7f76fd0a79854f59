package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"abohawa-api/internal/domain/usecase/forecast"
	"abohawa-api/pkg/log"
	"abohawa-api/pkg/redis"
)

// RefreshSchedulerConfig holds configuration for the auto-refresh scheduler
type RefreshSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// RefreshScheduler periodically re-refreshes the active location. A redis
// distributed lock keeps only one instance running the schedule.
type RefreshScheduler struct {
	cron        *cron.Cron
	useCase     forecast.ForecastUseCase
	redisClient *redis.Client
	config      *RefreshSchedulerConfig
}

// NewRefreshScheduler creates a new auto-refresh scheduler with distributed locking support
func NewRefreshScheduler(useCase forecast.ForecastUseCase, redisClient *redis.Client, cronExpression string, lockTTL, refreshInterval time.Duration) *RefreshScheduler {
	return &RefreshScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &RefreshSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         lockTTL,
			RefreshInterval: refreshInterval,
		},
	}
}

// InitRefreshScheduleTasks initializes the auto-refresh schedule behind the distributed lock
func (s *RefreshScheduler) InitRefreshScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewScheduledTaskLock(
			s.redisClient,
			"weather_auto_refresh",
			s.getLockTTL(),
			s.getRefreshInterval(),
			"weather_schedules",
		)

		if err := lock.Lock(ctx); err != nil {
			log.Errorf("Failed to acquire distributed lock, auto-refresh scheduler will not be initialized: %v", err)
			return
		}

		refreshErrChan := lock.AutoRefresh(ctx)

		if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledRefresh); err != nil {
			log.Errorf("Failed to initialize auto-refresh scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Auto-refresh scheduler started successfully with cron expression: %s", s.config.CronExpression)

		err := <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Auto-refresh scheduler stopped due to lock refresh failure: %v", err)
		} else {
			log.Info("Auto-refresh scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledRefresh re-runs the fetch cycle for the active location
func (s *RefreshScheduler) ExecuteScheduledRefresh() {
	cycleID := uuid.New().String()

	log.Info("Scheduled weather refresh triggered", zap.String("cycle_id", cycleID))

	snapshot, err := s.useCase.RefreshActive(context.Background())
	if err != nil {
		if errors.Is(err, forecast.ErrNoActiveLocation) {
			log.Info("No active location yet, skipping scheduled refresh", zap.String("cycle_id", cycleID))
			return
		}
		log.Error("Scheduled weather refresh failed", zap.String("cycle_id", cycleID), zap.Error(err))
		return
	}

	log.Info("Scheduled weather refresh completed",
		zap.String("cycle_id", cycleID),
		zap.String("location_id", snapshot.Location.ID),
		zap.String("location_name", snapshot.Location.Name))
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *RefreshScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *RefreshScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return time.Minute
}
