package repository

import (
	"context"
	"time"

	"caterfind/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/repository.mock.go -package=repomocks

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
}

// ContactRepository 联系人仓储接口
type ContactRepository interface {
	Create(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	Update(ctx context.Context, contact domain.Contact) error
	Delete(ctx context.Context, id int64) error
	// GetByID 根据ID查找联系人，读路径走缓存
	GetByID(ctx context.Context, id int64) (domain.Contact, error)
	FindByCaterer(ctx context.Context, catererID int64) ([]domain.Contact, error)
	CountByCaterer(ctx context.Context, catererID int64) (int64, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	Update(ctx context.Context, item domain.InventoryItem) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (domain.InventoryItem, error)
	FindByCaterer(ctx context.Context, catererID int64) ([]domain.InventoryItem, error)
	FindLowStock(ctx context.Context, catererID int64) ([]domain.InventoryItem, error)
	CountLowStock(ctx context.Context, catererID int64) (int64, error)
}

type CalendarEventRepository interface {
	Create(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error)
	Delete(ctx context.Context, id int64) error
	FindByUser(ctx context.Context, userID int64) ([]domain.CalendarEvent, error)
	FindByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]domain.CalendarEvent, error)
	FindByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.CalendarEvent, error)
	// DeleteBefore 清理保留期之前的日程，返回删除行数
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type AvailabilityRepository interface {
	Upsert(ctx context.Context, status domain.AvailabilityStatus) (domain.AvailabilityStatus, error)
	DeleteByUserAndDate(ctx context.Context, userID int64, date time.Time) error
	FindByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.AvailabilityStatus, error)
}

type CateringProfileRepository interface {
	Create(ctx context.Context, profile domain.CateringProfile) (domain.CateringProfile, error)
	Update(ctx context.Context, profile domain.CateringProfile) error
	GetByUserID(ctx context.Context, userID int64) (domain.CateringProfile, error)
}

// MessageRepository 消息审计仓储接口，只追加
type MessageRepository interface {
	Create(ctx context.Context, msg domain.Message) (domain.Message, error)
	// FindByCaterer 按发送时间倒序
	FindByCaterer(ctx context.Context, catererID int64) ([]domain.Message, error)
	CountByCaterer(ctx context.Context, catererID int64) (int64, error)
}
