package dashboard

import (
	"context"
	"errors"
	"testing"

	"caterfind/internal/domain"
	repomocks "caterfind/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	t.Run("三项计数汇总", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		contactRepo := repomocks.NewMockContactRepository(ctrl)
		inventoryRepo := repomocks.NewMockInventoryRepository(ctrl)
		messageRepo := repomocks.NewMockMessageRepository(ctrl)

		contactRepo.EXPECT().CountByCaterer(gomock.Any(), int64(10)).Return(int64(12), nil)
		inventoryRepo.EXPECT().CountLowStock(gomock.Any(), int64(10)).Return(int64(3), nil)
		messageRepo.EXPECT().CountByCaterer(gomock.Any(), int64(10)).Return(int64(45), nil)

		svc := NewService(contactRepo, inventoryRepo, messageRepo)
		summary, err := svc.Summary(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, domain.DashboardSummary{
			TotalContacts: 12,
			LowStockCount: 3,
			TotalMessages: 45,
		}, summary)
	})

	t.Run("任一计数失败_整体失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		contactRepo := repomocks.NewMockContactRepository(ctrl)
		inventoryRepo := repomocks.NewMockInventoryRepository(ctrl)
		messageRepo := repomocks.NewMockMessageRepository(ctrl)

		contactRepo.EXPECT().CountByCaterer(gomock.Any(), int64(10)).Return(int64(0), errors.New("db down"))
		inventoryRepo.EXPECT().CountLowStock(gomock.Any(), int64(10)).Return(int64(3), nil).AnyTimes()
		messageRepo.EXPECT().CountByCaterer(gomock.Any(), int64(10)).Return(int64(45), nil).AnyTimes()

		svc := NewService(contactRepo, inventoryRepo, messageRepo)
		_, err := svc.Summary(context.Background(), 10)
		assert.Error(t, err)
	})
}
