package domain

import (
	"fmt"

	"caterfind/internal/errs"
)

// ItemCategory 库存分类
type ItemCategory string

const (
	ItemCategoryGrains     ItemCategory = "GRAINS"     // 粮油米面
	ItemCategoryVegetables ItemCategory = "VEGETABLES" // 蔬菜
	ItemCategorySpices     ItemCategory = "SPICES"     // 香料调味
	ItemCategoryDairy      ItemCategory = "DAIRY"      // 奶制品
	ItemCategoryEquipment  ItemCategory = "EQUIPMENT"  // 器具设备
	ItemCategoryOther      ItemCategory = "OTHER"      // 其他
)

func (c ItemCategory) String() string {
	return string(c)
}

func (c ItemCategory) IsValid() bool {
	switch c {
	case ItemCategoryGrains, ItemCategoryVegetables, ItemCategorySpices,
		ItemCategoryDairy, ItemCategoryEquipment, ItemCategoryOther:
		return true
	default:
		return false
	}
}

// InventoryItem 库存条目领域模型。仅做内部库存跟踪，不涉及采购单与结算。
type InventoryItem struct {
	ID           int64        `json:"id"`
	CatererID    int64        `json:"catererId"`
	ItemName     string       `json:"itemName"`
	Category     ItemCategory `json:"category"`
	Quantity     float64      `json:"quantity"`
	Unit         string       `json:"unit"`
	MinThreshold float64      `json:"minThreshold"`

	// 经销商信息：可以关联联系人，也可以手工填写
	DealerContactID int64  `json:"dealerContactId"` // 0 表示未关联
	DealerName      string `json:"dealerName"`
	DealerPhone     string `json:"dealerPhone"`

	Ctime int64 `json:"ctime"`
	Utime int64 `json:"utime"`
}

// IsLowStock 低库存判定：当前数量低于预警阈值
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity < i.MinThreshold
}

func (i *InventoryItem) Validate() error {
	if i.CatererID <= 0 {
		return fmt.Errorf("%w: CatererID = %d", errs.ErrInvalidParameter, i.CatererID)
	}
	if i.ItemName == "" {
		return fmt.Errorf("%w: ItemName 不能为空", errs.ErrInvalidParameter)
	}
	if !i.Category.IsValid() {
		return fmt.Errorf("%w: Category = %q", errs.ErrInvalidParameter, i.Category)
	}
	return nil
}
