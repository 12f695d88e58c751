package dao

import (
	"context"
	"fmt"
	"time"

	"caterfind/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

const dateLayout = "2006-01-02"

type calendarEventDAO struct {
	db *egorm.Component
}

func (dao *calendarEventDAO) Create(ctx context.Context, event CalendarEvent) (CalendarEvent, error) {
	event.Ctime = time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Create(&event).Error
	if err != nil {
		return CalendarEvent{}, err
	}
	return event, nil
}

func (dao *calendarEventDAO) Delete(ctx context.Context, id int64) error {
	res := dao.db.WithContext(ctx).Delete(&CalendarEvent{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("%w: id=%d", errs.ErrCalendarEventNotFound, id)
	}
	return nil
}

func (dao *calendarEventDAO) FindByUser(ctx context.Context, userID int64) ([]CalendarEvent, error) {
	var events []CalendarEvent
	err := dao.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("event_date DESC").
		Find(&events).Error
	return events, err
}

func (dao *calendarEventDAO) FindByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]CalendarEvent, error) {
	var events []CalendarEvent
	err := dao.db.WithContext(ctx).
		Where("user_id = ? AND event_date = ?", userID, date.Format(dateLayout)).
		Find(&events).Error
	return events, err
}

func (dao *calendarEventDAO) FindByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]CalendarEvent, error) {
	var events []CalendarEvent
	err := dao.db.WithContext(ctx).
		Where("user_id = ? AND event_date BETWEEN ? AND ?",
			userID, start.Format(dateLayout), end.Format(dateLayout)).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}

func (dao *calendarEventDAO) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := dao.db.WithContext(ctx).
		Where("event_date < ?", cutoff.Format(dateLayout)).
		Delete(&CalendarEvent{})
	return res.RowsAffected, res.Error
}

// NewCalendarEventDAO 创建日程DAO实例
func NewCalendarEventDAO(db *egorm.Component) CalendarEventDAO {
	return &calendarEventDAO{db: db}
}

type availabilityDAO struct {
	db *egorm.Component
}

func (dao *availabilityDAO) Upsert(ctx context.Context, status AvailabilityStatus) (AvailabilityStatus, error) {
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "available_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&status).Error
	if err != nil {
		return AvailabilityStatus{}, err
	}
	return status, nil
}

func (dao *availabilityDAO) DeleteByUserAndDate(ctx context.Context, userID int64, date time.Time) error {
	return dao.db.WithContext(ctx).
		Where("user_id = ? AND available_date = ?", userID, date.Format(dateLayout)).
		Delete(&AvailabilityStatus{}).Error
}

func (dao *availabilityDAO) FindByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]AvailabilityStatus, error) {
	var statuses []AvailabilityStatus
	err := dao.db.WithContext(ctx).
		Where("user_id = ? AND available_date BETWEEN ? AND ?",
			userID, start.Format(dateLayout), end.Format(dateLayout)).
		Order("available_date ASC").
		Find(&statuses).Error
	return statuses, err
}

// NewAvailabilityDAO 创建档期状态DAO实例
func NewAvailabilityDAO(db *egorm.Component) AvailabilityDAO {
	return &availabilityDAO{db: db}
}

var _ schema.Tabler = (*CalendarEvent)(nil)

// CalendarEvent 档期日程表。超过保留期的行由定时任务批量删除。
type CalendarEvent struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	UserID        int64     `gorm:"type:BIGINT;NOT NULL;index:idx_user_date,priority:1;comment:'归属商家ID'"`
	EventDate     time.Time `gorm:"type:DATE;NOT NULL;index:idx_user_date,priority:2;index:idx_event_date"`
	EventHostName string    `gorm:"type:VARCHAR(128);NOT NULL"`
	ManagedBy     string    `gorm:"type:VARCHAR(128)"`
	Location      string    `gorm:"type:VARCHAR(500)"`
	Ctime         int64
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// AvailabilityStatus 档期状态表，每商家每天至多一行
type AvailabilityStatus struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	UserID        int64     `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uk_user_date,priority:1"`
	AvailableDate time.Time `gorm:"type:DATE;NOT NULL;uniqueIndex:uk_user_date,priority:2;index:idx_available_date"`
	Status        string    `gorm:"type:ENUM('available','busy');NOT NULL"`
}

func (AvailabilityStatus) TableName() string {
	return "availability_status"
}
