package inventory

import (
	"context"
	"testing"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	repomocks "caterfind/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newInventoryService(ctrl *gomock.Controller) (Service, *repomocks.MockInventoryRepository, *repomocks.MockContactRepository) {
	repo := repomocks.NewMockInventoryRepository(ctrl)
	contactRepo := repomocks.NewMockContactRepository(ctrl)
	return NewService(repo, contactRepo), repo, contactRepo
}

func validItem() domain.InventoryItem {
	return domain.InventoryItem{
		CatererID:    10,
		ItemName:     "Basmati Rice",
		Category:     domain.ItemCategoryGrains,
		Quantity:     25,
		Unit:         "kg",
		MinThreshold: 50,
	}
}

func TestInventoryCreate(t *testing.T) {
	t.Parallel()

	t.Run("关联经销商联系人_姓名号码以联系人为准", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, repo, contactRepo := newInventoryService(ctrl)

		item := validItem()
		item.DealerContactID = 101
		item.DealerName = "Stale Name"
		item.DealerPhone = "0000000000"

		contactRepo.EXPECT().GetByID(gomock.Any(), int64(101)).Return(domain.Contact{
			ID:        101,
			CatererID: 10,
			Name:      "Ravi Traders",
			Phone:     "9876543210",
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, it domain.InventoryItem) (domain.InventoryItem, error) {
				assert.Equal(t, "Ravi Traders", it.DealerName)
				assert.Equal(t, "9876543210", it.DealerPhone)
				it.ID = 1
				return it, nil
			})

		created, err := svc.Create(context.Background(), item)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("关联别家的联系人_拒绝", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, contactRepo := newInventoryService(ctrl)

		item := validItem()
		item.DealerContactID = 101
		contactRepo.EXPECT().GetByID(gomock.Any(), int64(101)).
			Return(domain.Contact{ID: 101, CatererID: 99}, nil)

		_, err := svc.Create(context.Background(), item)
		assert.ErrorIs(t, err, errs.ErrContactOwnership)
	})

	t.Run("未关联联系人_手工经销商信息原样保留", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, repo, _ := newInventoryService(ctrl)

		item := validItem()
		item.DealerName = "Manual Dealer"
		item.DealerPhone = "9123456789"
		repo.EXPECT().Create(gomock.Any(), item).Return(item, nil)

		created, err := svc.Create(context.Background(), item)
		assert.NoError(t, err)
		assert.Equal(t, "Manual Dealer", created.DealerName)
	})

	t.Run("非法类目", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newInventoryService(ctrl)

		item := validItem()
		item.Category = "FURNITURE"
		_, err := svc.Create(context.Background(), item)
		assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	})
}

func TestInventoryOwnership(t *testing.T) {
	t.Parallel()

	t.Run("读自己的条目", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, repo, _ := newInventoryService(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(domain.InventoryItem{ID: 3, CatererID: 10}, nil)

		item, err := svc.Get(context.Background(), 10, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), item.ID)
	})

	t.Run("读别家的条目_当不存在处理", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, repo, _ := newInventoryService(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(domain.InventoryItem{ID: 3, CatererID: 99}, nil)

		_, err := svc.Get(context.Background(), 10, 3)
		assert.ErrorIs(t, err, errs.ErrInventoryItemNotFound)
	})

	t.Run("删别家的条目_不落库", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, repo, _ := newInventoryService(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(domain.InventoryItem{ID: 3, CatererID: 99}, nil)

		err := svc.Delete(context.Background(), 10, 3)
		assert.ErrorIs(t, err, errs.ErrInventoryItemNotFound)
	})
}

func TestLowStock(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _ := newInventoryService(ctrl)

	repo.EXPECT().FindLowStock(gomock.Any(), int64(10)).Return([]domain.InventoryItem{
		{ID: 1, CatererID: 10, ItemName: "Basmati Rice", Quantity: 25, MinThreshold: 50},
	}, nil)

	items, err := svc.ListLowStock(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, items[0].IsLowStock())
}
