package task

import (
	"context"
	"time"

	"caterfind/internal/service/calendar"
	"github.com/gotomicro/ego/core/elog"
)

// CleanupCron 日程清理定时任务，每天凌晨低峰期跑一次，
// 删除超过保留期的日程
type CleanupCron struct {
	svc    calendar.Service
	logger *elog.Component
}

func (c *CleanupCron) Do(ctx context.Context) error {
	const cleanupTimeout = time.Minute
	ctx, cancel := context.WithTimeout(ctx, cleanupTimeout)
	defer cancel()
	deleted, err := c.svc.CleanupExpired(ctx)
	if err != nil {
		c.logger.Error("日程清理任务失败", elog.FieldErr(err))
		return err
	}
	c.logger.Info("日程清理任务完成", elog.Int64("deleted", deleted))
	return nil
}

func NewCalendarCleanupCron(svc calendar.Service) *CleanupCron {
	return &CleanupCron{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}
