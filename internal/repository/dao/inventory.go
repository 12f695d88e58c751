package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caterfind/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type inventoryDAO struct {
	db *egorm.Component
}

func (dao *inventoryDAO) Create(ctx context.Context, item InventoryItem) (InventoryItem, error) {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&item).Error
	if err != nil {
		return InventoryItem{}, err
	}
	return item, nil
}

func (dao *inventoryDAO) Update(ctx context.Context, item InventoryItem) error {
	res := dao.db.WithContext(ctx).Model(&InventoryItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"item_name":         item.ItemName,
			"category":          item.Category,
			"quantity":          item.Quantity,
			"unit":              item.Unit,
			"min_threshold":     item.MinThreshold,
			"dealer_contact_id": item.DealerContactID,
			"dealer_name":       item.DealerName,
			"dealer_phone":      item.DealerPhone,
			"utime":             time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("%w: id=%d", errs.ErrInventoryItemNotFound, item.ID)
	}
	return nil
}

func (dao *inventoryDAO) Delete(ctx context.Context, id int64) error {
	res := dao.db.WithContext(ctx).Delete(&InventoryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("%w: id=%d", errs.ErrInventoryItemNotFound, id)
	}
	return nil
}

func (dao *inventoryDAO) GetByID(ctx context.Context, id int64) (InventoryItem, error) {
	var item InventoryItem
	err := dao.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InventoryItem{}, fmt.Errorf("%w: id=%d", errs.ErrInventoryItemNotFound, id)
		}
		return InventoryItem{}, err
	}
	return item, nil
}

func (dao *inventoryDAO) FindByCaterer(ctx context.Context, catererID int64) ([]InventoryItem, error) {
	var items []InventoryItem
	err := dao.db.WithContext(ctx).
		Where("caterer_id = ?", catererID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (dao *inventoryDAO) FindLowStock(ctx context.Context, catererID int64) ([]InventoryItem, error) {
	var items []InventoryItem
	err := dao.db.WithContext(ctx).
		Where("caterer_id = ? AND quantity < min_threshold", catererID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (dao *inventoryDAO) CountLowStock(ctx context.Context, catererID int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&InventoryItem{}).
		Where("caterer_id = ? AND quantity < min_threshold", catererID).
		Count(&cnt).Error
	return cnt, err
}

// NewInventoryDAO 创建库存DAO实例
func NewInventoryDAO(db *egorm.Component) InventoryDAO {
	return &inventoryDAO{db: db}
}

// InventoryItem 库存条目表
type InventoryItem struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	CatererID       int64   `gorm:"type:BIGINT;NOT NULL;index:idx_caterer_id;comment:'归属商家ID'"`
	ItemName        string  `gorm:"type:VARCHAR(128);NOT NULL"`
	Category        string  `gorm:"type:ENUM('GRAINS','VEGETABLES','SPICES','DAIRY','EQUIPMENT','OTHER');NOT NULL;DEFAULT:'OTHER'"`
	Quantity        float64 `gorm:"NOT NULL;DEFAULT:0"`
	Unit            string  `gorm:"type:VARCHAR(32)"`
	MinThreshold    float64 `gorm:"NOT NULL;DEFAULT:0;comment:'低库存预警阈值'"`
	DealerContactID int64   `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;comment:'关联的经销商联系人ID，0表示手工填写'"`
	DealerName      string  `gorm:"type:VARCHAR(128)"`
	DealerPhone     string  `gorm:"type:VARCHAR(20)"`
	Ctime           int64
	Utime           int64
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
