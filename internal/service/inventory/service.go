package inventory

import (
	"context"
	"fmt"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/repository"
)

type inventoryService struct {
	repo        repository.InventoryRepository
	contactRepo repository.ContactRepository
}

func (svc *inventoryService) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if err := item.Validate(); err != nil {
		return domain.InventoryItem{}, err
	}
	if err := svc.fillDealer(ctx, &item); err != nil {
		return domain.InventoryItem{}, err
	}
	return svc.repo.Create(ctx, item)
}

func (svc *inventoryService) Update(ctx context.Context, item domain.InventoryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, err := svc.owned(ctx, item.CatererID, item.ID); err != nil {
		return err
	}
	if err := svc.fillDealer(ctx, &item); err != nil {
		return err
	}
	return svc.repo.Update(ctx, item)
}

func (svc *inventoryService) Delete(ctx context.Context, catererID, id int64) error {
	if _, err := svc.owned(ctx, catererID, id); err != nil {
		return err
	}
	return svc.repo.Delete(ctx, id)
}

func (svc *inventoryService) Get(ctx context.Context, catererID, id int64) (domain.InventoryItem, error) {
	return svc.owned(ctx, catererID, id)
}

func (svc *inventoryService) List(ctx context.Context, catererID int64) ([]domain.InventoryItem, error) {
	return svc.repo.FindByCaterer(ctx, catererID)
}

func (svc *inventoryService) ListLowStock(ctx context.Context, catererID int64) ([]domain.InventoryItem, error) {
	return svc.repo.FindLowStock(ctx, catererID)
}

// fillDealer 关联了经销商联系人时，经销商姓名和号码以联系人为准。
// 关联的联系人必须属于同一个商家。
func (svc *inventoryService) fillDealer(ctx context.Context, item *domain.InventoryItem) error {
	if item.DealerContactID == 0 {
		return nil
	}
	contact, err := svc.contactRepo.GetByID(ctx, item.DealerContactID)
	if err != nil {
		return err
	}
	if contact.CatererID != item.CatererID {
		return fmt.Errorf("%w: contactID=%d catererID=%d",
			errs.ErrContactOwnership, item.DealerContactID, item.CatererID)
	}
	item.DealerName = contact.Name
	item.DealerPhone = contact.Phone
	return nil
}

func (svc *inventoryService) owned(ctx context.Context, catererID, id int64) (domain.InventoryItem, error) {
	item, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	if item.CatererID != catererID {
		return domain.InventoryItem{}, fmt.Errorf("%w: id=%d catererID=%d",
			errs.ErrInventoryItemNotFound, id, catererID)
	}
	return item, nil
}

// NewService 创建库存服务
func NewService(repo repository.InventoryRepository, contactRepo repository.ContactRepository) Service {
	return &inventoryService{repo: repo, contactRepo: contactRepo}
}
