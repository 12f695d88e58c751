package repository

import (
	"context"

	"caterfind/internal/domain"
	"caterfind/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type inventoryRepository struct {
	dao dao.InventoryDAO
}

func (repo *inventoryRepository) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	created, err := repo.dao.Create(ctx, repo.toEntity(item))
	if err != nil {
		return domain.InventoryItem{}, err
	}
	return repo.toDomain(created), nil
}

func (repo *inventoryRepository) Update(ctx context.Context, item domain.InventoryItem) error {
	return repo.dao.Update(ctx, repo.toEntity(item))
}

func (repo *inventoryRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *inventoryRepository) GetByID(ctx context.Context, id int64) (domain.InventoryItem, error) {
	item, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	return repo.toDomain(item), nil
}

func (repo *inventoryRepository) FindByCaterer(ctx context.Context, catererID int64) ([]domain.InventoryItem, error) {
	items, err := repo.dao.FindByCaterer(ctx, catererID)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(_ int, src dao.InventoryItem) domain.InventoryItem {
		return repo.toDomain(src)
	}), nil
}

func (repo *inventoryRepository) FindLowStock(ctx context.Context, catererID int64) ([]domain.InventoryItem, error) {
	items, err := repo.dao.FindLowStock(ctx, catererID)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(_ int, src dao.InventoryItem) domain.InventoryItem {
		return repo.toDomain(src)
	}), nil
}

func (repo *inventoryRepository) CountLowStock(ctx context.Context, catererID int64) (int64, error) {
	return repo.dao.CountLowStock(ctx, catererID)
}

func (repo *inventoryRepository) toEntity(item domain.InventoryItem) dao.InventoryItem {
	return dao.InventoryItem{
		ID:              item.ID,
		CatererID:       item.CatererID,
		ItemName:        item.ItemName,
		Category:        item.Category.String(),
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		MinThreshold:    item.MinThreshold,
		DealerContactID: item.DealerContactID,
		DealerName:      item.DealerName,
		DealerPhone:     item.DealerPhone,
	}
}

func (repo *inventoryRepository) toDomain(item dao.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ID:              item.ID,
		CatererID:       item.CatererID,
		ItemName:        item.ItemName,
		Category:        domain.ItemCategory(item.Category),
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		MinThreshold:    item.MinThreshold,
		DealerContactID: item.DealerContactID,
		DealerName:      item.DealerName,
		DealerPhone:     item.DealerPhone,
		Ctime:           item.Ctime,
		Utime:           item.Utime,
	}
}

// NewInventoryRepository 创建库存仓储实例
func NewInventoryRepository(dao dao.InventoryDAO) InventoryRepository {
	return &inventoryRepository{dao: dao}
}
