package calendar

import (
	"context"
	"testing"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	repomocks "caterfind/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCalendarService(ctrl *gomock.Controller) (Service, *repomocks.MockCalendarEventRepository, *repomocks.MockAvailabilityRepository) {
	eventRepo := repomocks.NewMockCalendarEventRepository(ctrl)
	availabilityRepo := repomocks.NewMockAvailabilityRepository(ctrl)
	return NewService(eventRepo, availabilityRepo), eventRepo, availabilityRepo
}

func TestCreateEvent(t *testing.T) {
	t.Parallel()

	t.Run("创建成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, eventRepo, _ := newCalendarService(ctrl)

		event := domain.CalendarEvent{
			UserID:        7,
			EventHostName: "Sharma Wedding",
			EventDate:     time.Now().AddDate(0, 0, 3),
		}
		eventRepo.EXPECT().Create(gomock.Any(), event).
			DoAndReturn(func(_ context.Context, e domain.CalendarEvent) (domain.CalendarEvent, error) {
				e.ID = 1
				return e, nil
			})

		created, err := svc.CreateEvent(context.Background(), event)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("过去的日期_拒绝", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newCalendarService(ctrl)

		_, err := svc.CreateEvent(context.Background(), domain.CalendarEvent{
			UserID:        7,
			EventHostName: "Sharma Wedding",
			EventDate:     time.Now().AddDate(0, 0, -1),
		})
		assert.ErrorIs(t, err, errs.ErrPastDate)
	})

	t.Run("今天_允许", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, eventRepo, _ := newCalendarService(ctrl)

		event := domain.CalendarEvent{
			UserID:        7,
			EventHostName: "Corporate Lunch",
			EventDate:     time.Now(),
		}
		eventRepo.EXPECT().Create(gomock.Any(), event).Return(event, nil)

		_, err := svc.CreateEvent(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("缺主办方名称", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newCalendarService(ctrl)

		_, err := svc.CreateEvent(context.Background(), domain.CalendarEvent{
			UserID:    7,
			EventDate: time.Now().AddDate(0, 0, 3),
		})
		assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()

	t.Run("删除自己的日程", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, eventRepo, _ := newCalendarService(ctrl)

		eventRepo.EXPECT().FindByUser(gomock.Any(), int64(7)).
			Return([]domain.CalendarEvent{{ID: 3, UserID: 7}}, nil)
		eventRepo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		assert.NoError(t, svc.DeleteEvent(context.Background(), 7, 3))
	})

	t.Run("删别人的日程_当不存在处理", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, eventRepo, _ := newCalendarService(ctrl)

		eventRepo.EXPECT().FindByUser(gomock.Any(), int64(7)).
			Return([]domain.CalendarEvent{{ID: 5, UserID: 7}}, nil)

		err := svc.DeleteEvent(context.Background(), 7, 3)
		assert.ErrorIs(t, err, errs.ErrCalendarEventNotFound)
	})
}

func TestSetAvailability(t *testing.T) {
	t.Parallel()

	tomorrow := time.Now().AddDate(0, 0, 1)

	t.Run("标可接单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, availabilityRepo := newCalendarService(ctrl)

		availabilityRepo.EXPECT().Upsert(gomock.Any(), domain.AvailabilityStatus{
			UserID: 7,
			Date:   tomorrow,
			Status: domain.AvailabilityAvailable,
		}).Return(domain.AvailabilityStatus{}, nil)

		assert.NoError(t, svc.SetAvailability(context.Background(), 7, tomorrow, domain.AvailabilityAvailable))
	})

	t.Run("状态为空_删除标记", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, availabilityRepo := newCalendarService(ctrl)

		availabilityRepo.EXPECT().DeleteByUserAndDate(gomock.Any(), int64(7), tomorrow).Return(nil)

		assert.NoError(t, svc.SetAvailability(context.Background(), 7, tomorrow, ""))
	})

	t.Run("非法状态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newCalendarService(ctrl)

		err := svc.SetAvailability(context.Background(), 7, tomorrow, "MAYBE")
		assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	})

	t.Run("过去的日期", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _, _ := newCalendarService(ctrl)

		err := svc.SetAvailability(context.Background(), 7, time.Now().AddDate(0, 0, -1), domain.AvailabilityBusy)
		assert.ErrorIs(t, err, errs.ErrPastDate)
	})
}

func TestCleanupExpired(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, eventRepo, _ := newCalendarService(ctrl)

	eventRepo.EXPECT().DeleteBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			// 保留窗口30天
			want := time.Now().AddDate(0, 0, -30)
			assert.WithinDuration(t, want, cutoff, time.Minute)
			return 12, nil
		})

	deleted, err := svc.CleanupExpired(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
}
