package repository

import (
	"context"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type calendarEventRepository struct {
	dao dao.CalendarEventDAO
}

func (repo *calendarEventRepository) Create(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error) {
	created, err := repo.dao.Create(ctx, repo.toEntity(event))
	if err != nil {
		return domain.CalendarEvent{}, err
	}
	return repo.toDomain(created), nil
}

func (repo *calendarEventRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *calendarEventRepository) FindByUser(ctx context.Context, userID int64) ([]domain.CalendarEvent, error) {
	events, err := repo.dao.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return slice.Map(events, func(_ int, src dao.CalendarEvent) domain.CalendarEvent {
		return repo.toDomain(src)
	}), nil
}

func (repo *calendarEventRepository) FindByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]domain.CalendarEvent, error) {
	events, err := repo.dao.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return slice.Map(events, func(_ int, src dao.CalendarEvent) domain.CalendarEvent {
		return repo.toDomain(src)
	}), nil
}

func (repo *calendarEventRepository) FindByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.CalendarEvent, error) {
	events, err := repo.dao.FindByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return slice.Map(events, func(_ int, src dao.CalendarEvent) domain.CalendarEvent {
		return repo.toDomain(src)
	}), nil
}

func (repo *calendarEventRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return repo.dao.DeleteBefore(ctx, cutoff)
}

func (repo *calendarEventRepository) toEntity(event domain.CalendarEvent) dao.CalendarEvent {
	return dao.CalendarEvent{
		ID:            event.ID,
		UserID:        event.UserID,
		EventDate:     event.EventDate,
		EventHostName: event.EventHostName,
		ManagedBy:     event.ManagedBy,
		Location:      event.Location,
	}
}

func (repo *calendarEventRepository) toDomain(event dao.CalendarEvent) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:            event.ID,
		UserID:        event.UserID,
		EventDate:     event.EventDate,
		EventHostName: event.EventHostName,
		ManagedBy:     event.ManagedBy,
		Location:      event.Location,
		Ctime:         event.Ctime,
	}
}

// NewCalendarEventRepository 创建日程仓储实例
func NewCalendarEventRepository(dao dao.CalendarEventDAO) CalendarEventRepository {
	return &calendarEventRepository{dao: dao}
}

type availabilityRepository struct {
	dao dao.AvailabilityDAO
}

func (repo *availabilityRepository) Upsert(ctx context.Context, status domain.AvailabilityStatus) (domain.AvailabilityStatus, error) {
	saved, err := repo.dao.Upsert(ctx, dao.AvailabilityStatus{
		ID:            status.ID,
		UserID:        status.UserID,
		AvailableDate: status.Date,
		Status:        status.Status.String(),
	})
	if err != nil {
		return domain.AvailabilityStatus{}, err
	}
	return repo.toDomain(saved), nil
}

func (repo *availabilityRepository) DeleteByUserAndDate(ctx context.Context, userID int64, date time.Time) error {
	return repo.dao.DeleteByUserAndDate(ctx, userID, date)
}

func (repo *availabilityRepository) FindByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.AvailabilityStatus, error) {
	statuses, err := repo.dao.FindByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return slice.Map(statuses, func(_ int, src dao.AvailabilityStatus) domain.AvailabilityStatus {
		return repo.toDomain(src)
	}), nil
}

func (repo *availabilityRepository) toDomain(status dao.AvailabilityStatus) domain.AvailabilityStatus {
	return domain.AvailabilityStatus{
		ID:     status.ID,
		UserID: status.UserID,
		Date:   status.AvailableDate,
		Status: domain.AvailabilityState(status.Status),
	}
}

// NewAvailabilityRepository 创建档期状态仓储实例
func NewAvailabilityRepository(dao dao.AvailabilityDAO) AvailabilityRepository {
	return &availabilityRepository{dao: dao}
}
