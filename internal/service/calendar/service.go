package calendar

import (
	"context"
	"fmt"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// retentionDays 日程保留天数，过期的由定时任务清理
const retentionDays = 30

type calendarService struct {
	eventRepo        repository.CalendarEventRepository
	availabilityRepo repository.AvailabilityRepository
	logger           *elog.Component
}

func (svc *calendarService) CreateEvent(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error) {
	if event.UserID <= 0 {
		return domain.CalendarEvent{}, fmt.Errorf("%w: UserID = %d", errs.ErrInvalidParameter, event.UserID)
	}
	if event.EventHostName == "" {
		return domain.CalendarEvent{}, fmt.Errorf("%w: EventHostName 不能为空", errs.ErrInvalidParameter)
	}
	if beforeToday(event.EventDate) {
		return domain.CalendarEvent{}, fmt.Errorf("%w: %s", errs.ErrPastDate, event.EventDate.Format("2006-01-02"))
	}
	return svc.eventRepo.Create(ctx, event)
}

func (svc *calendarService) DeleteEvent(ctx context.Context, userID, id int64) error {
	events, err := svc.eventRepo.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, event := range events {
		if event.ID == id {
			return svc.eventRepo.Delete(ctx, id)
		}
	}
	return fmt.Errorf("%w: id=%d userID=%d", errs.ErrCalendarEventNotFound, id, userID)
}

func (svc *calendarService) ListEvents(ctx context.Context, userID int64) ([]domain.CalendarEvent, error) {
	return svc.eventRepo.FindByUser(ctx, userID)
}

func (svc *calendarService) ListEventsOn(ctx context.Context, userID int64, date time.Time) ([]domain.CalendarEvent, error) {
	return svc.eventRepo.FindByUserAndDate(ctx, userID, date)
}

func (svc *calendarService) ListEventsInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.CalendarEvent, error) {
	return svc.eventRepo.FindByUserInRange(ctx, userID, start, end)
}

// SetAvailability 每商家每天至多一条标记。status 为空是中性态，
// 直接删掉已有标记；过去的日期不允许再标。
func (svc *calendarService) SetAvailability(ctx context.Context, userID int64, date time.Time, status domain.AvailabilityState) error {
	if beforeToday(date) {
		return fmt.Errorf("%w: %s", errs.ErrPastDate, date.Format("2006-01-02"))
	}
	if status == "" {
		return svc.availabilityRepo.DeleteByUserAndDate(ctx, userID, date)
	}
	if status != domain.AvailabilityAvailable && status != domain.AvailabilityBusy {
		return fmt.Errorf("%w: status = %q", errs.ErrInvalidParameter, status)
	}
	_, err := svc.availabilityRepo.Upsert(ctx, domain.AvailabilityStatus{
		UserID: userID,
		Date:   date,
		Status: status,
	})
	return err
}

func (svc *calendarService) ListAvailabilityInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.AvailabilityStatus, error) {
	return svc.availabilityRepo.FindByUserInRange(ctx, userID, start, end)
}

func (svc *calendarService) CleanupExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	deleted, err := svc.eventRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		svc.logger.Info("清理过期日程",
			elog.Int64("deleted", deleted),
			elog.String("cutoff", cutoff.Format("2006-01-02")))
	}
	return deleted, nil
}

// beforeToday 只比较日期部分
func beforeToday(date time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return date.Before(today)
}

// NewService 创建档期服务
func NewService(eventRepo repository.CalendarEventRepository, availabilityRepo repository.AvailabilityRepository) Service {
	return &calendarService{
		eventRepo:        eventRepo,
		availabilityRepo: availabilityRepo,
		logger:           elog.DefaultLogger,
	}
}
