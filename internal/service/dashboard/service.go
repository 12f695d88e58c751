package dashboard

import (
	"context"

	"caterfind/internal/domain"
	"caterfind/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -destination=./mocks/dashboard.mock.go -package=dashboardmocks Service

// Service 首页统计卡片
type Service interface {
	Summary(ctx context.Context, catererID int64) (domain.DashboardSummary, error)
}

type dashboardService struct {
	contactRepo   repository.ContactRepository
	inventoryRepo repository.InventoryRepository
	messageRepo   repository.MessageRepository
}

// Summary 三个计数相互独立，并发查
func (svc *dashboardService) Summary(ctx context.Context, catererID int64) (domain.DashboardSummary, error) {
	var summary domain.DashboardSummary
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		cnt, err := svc.contactRepo.CountByCaterer(ctx, catererID)
		summary.TotalContacts = cnt
		return err
	})
	eg.Go(func() error {
		cnt, err := svc.inventoryRepo.CountLowStock(ctx, catererID)
		summary.LowStockCount = cnt
		return err
	})
	eg.Go(func() error {
		cnt, err := svc.messageRepo.CountByCaterer(ctx, catererID)
		summary.TotalMessages = cnt
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.DashboardSummary{}, err
	}
	return summary, nil
}

// NewService 创建看板服务
func NewService(
	contactRepo repository.ContactRepository,
	inventoryRepo repository.InventoryRepository,
	messageRepo repository.MessageRepository,
) Service {
	return &dashboardService{
		contactRepo:   contactRepo,
		inventoryRepo: inventoryRepo,
		messageRepo:   messageRepo,
	}
}
