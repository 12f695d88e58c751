package contact

import (
	"context"
	"fmt"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/repository"
)

type contactService struct {
	repo repository.ContactRepository
}

func (svc *contactService) Create(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	if err := contact.Validate(); err != nil {
		return domain.Contact{}, err
	}
	return svc.repo.Create(ctx, contact)
}

func (svc *contactService) Update(ctx context.Context, contact domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	// 先校验归属再更新
	if _, err := svc.owned(ctx, contact.CatererID, contact.ID); err != nil {
		return err
	}
	return svc.repo.Update(ctx, contact)
}

func (svc *contactService) Delete(ctx context.Context, catererID, id int64) error {
	if _, err := svc.owned(ctx, catererID, id); err != nil {
		return err
	}
	return svc.repo.Delete(ctx, id)
}

func (svc *contactService) Get(ctx context.Context, catererID, id int64) (domain.Contact, error) {
	return svc.owned(ctx, catererID, id)
}

func (svc *contactService) List(ctx context.Context, catererID int64) ([]domain.Contact, error) {
	return svc.repo.FindByCaterer(ctx, catererID)
}

// owned 取联系人并校验归属，别的商家的联系人按越权处理
func (svc *contactService) owned(ctx context.Context, catererID, id int64) (domain.Contact, error) {
	contact, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Contact{}, err
	}
	if contact.CatererID != catererID {
		return domain.Contact{}, fmt.Errorf("%w: contactID=%d catererID=%d",
			errs.ErrContactOwnership, id, catererID)
	}
	return contact, nil
}

// NewService 创建联系人服务
func NewService(repo repository.ContactRepository) Service {
	return &contactService{repo: repo}
}
