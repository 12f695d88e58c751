package dao

import (
	"context"
	"time"
)

type UserDAO interface {
	// Create 创建用户，邮箱唯一
	Create(ctx context.Context, user User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
}

type ContactDAO interface {
	// Create 创建联系人并绑定标签
	Create(ctx context.Context, contact Contact, labelNames []string) (Contact, error)
	// Update 更新联系人基础信息；labelNames 非 nil 时整体替换标签绑定
	Update(ctx context.Context, contact Contact, labelNames []string) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Contact, error)
	FindByCaterer(ctx context.Context, catererID int64) ([]Contact, error)
	CountByCaterer(ctx context.Context, catererID int64) (int64, error)
	// GetLabelNames 查询联系人绑定的标签名
	GetLabelNames(ctx context.Context, contactID int64) ([]string, error)
}

type InventoryDAO interface {
	Create(ctx context.Context, item InventoryItem) (InventoryItem, error)
	Update(ctx context.Context, item InventoryItem) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (InventoryItem, error)
	FindByCaterer(ctx context.Context, catererID int64) ([]InventoryItem, error)
	// FindLowStock 查询低库存条目：quantity < min_threshold
	FindLowStock(ctx context.Context, catererID int64) ([]InventoryItem, error)
	CountLowStock(ctx context.Context, catererID int64) (int64, error)
}

type CalendarEventDAO interface {
	Create(ctx context.Context, event CalendarEvent) (CalendarEvent, error)
	Delete(ctx context.Context, id int64) error
	FindByUser(ctx context.Context, userID int64) ([]CalendarEvent, error)
	FindByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]CalendarEvent, error)
	FindByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]CalendarEvent, error)
	// DeleteBefore 删除指定日期之前的所有日程，返回删除行数
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type AvailabilityDAO interface {
	// Upsert 按 (user_id, available_date) 覆盖写入
	Upsert(ctx context.Context, status AvailabilityStatus) (AvailabilityStatus, error)
	DeleteByUserAndDate(ctx context.Context, userID int64, date time.Time) error
	FindByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]AvailabilityStatus, error)
}

type CateringProfileDAO interface {
	Create(ctx context.Context, profile CateringProfile) (CateringProfile, error)
	Update(ctx context.Context, profile CateringProfile) error
	GetByUserID(ctx context.Context, userID int64) (CateringProfile, error)
}

type MessageDAO interface {
	// Create 追加一条审计记录。记录只追加，创建后不再更新或删除。
	Create(ctx context.Context, msg Message) (Message, error)
	// FindByCaterer 按发送时间倒序返回某商家的全部记录
	FindByCaterer(ctx context.Context, catererID int64) ([]Message, error)
	CountByCaterer(ctx context.Context, catererID int64) (int64, error)
}
