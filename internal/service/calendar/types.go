package calendar

import (
	"context"
	"time"

	"caterfind/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/calendar.mock.go -package=calendarmocks Service

// Service 档期日程与空闲/繁忙标记
type Service interface {
	CreateEvent(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, userID, id int64) error
	ListEvents(ctx context.Context, userID int64) ([]domain.CalendarEvent, error)
	ListEventsOn(ctx context.Context, userID int64, date time.Time) ([]domain.CalendarEvent, error)
	ListEventsInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.CalendarEvent, error)
	// SetAvailability 标记某天空闲或繁忙；status 为空表示清除标记
	SetAvailability(ctx context.Context, userID int64, date time.Time, status domain.AvailabilityState) error
	ListAvailabilityInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.AvailabilityStatus, error)
	// CleanupExpired 删除保留期之前的日程，返回删除行数
	CleanupExpired(ctx context.Context) (int64, error)
}
