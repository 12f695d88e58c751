package inventory

import (
	"context"

	"caterfind/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/inventory.mock.go -package=inventorymocks Service

// Service 库存管理
type Service interface {
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	Update(ctx context.Context, item domain.InventoryItem) error
	Delete(ctx context.Context, catererID, id int64) error
	Get(ctx context.Context, catererID, id int64) (domain.InventoryItem, error)
	List(ctx context.Context, catererID int64) ([]domain.InventoryItem, error)
	// ListLowStock 低库存条目：quantity < min_threshold
	ListLowStock(ctx context.Context, catererID int64) ([]domain.InventoryItem, error)
}
