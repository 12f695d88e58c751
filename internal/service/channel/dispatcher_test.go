package channel

import (
	"context"
	"testing"

	"caterfind/internal/domain"
	channelmocks "caterfind/internal/service/channel/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDispatcher(t *testing.T) {
	t.Parallel()

	t.Run("按渠道路由", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		emailChannel := channelmocks.NewMockChannel(ctrl)
		smsChannel := channelmocks.NewMockChannel(ctrl)

		delivery := domain.Delivery{
			Method:      domain.ContactMethodEmail,
			Destination: "ravi@traders.in",
			Body:        "hello",
		}
		emailChannel.EXPECT().Send(gomock.Any(), delivery).
			Return(domain.SendResult{OK: true})

		dispatcher := NewDispatcher(map[domain.ContactMethod]Channel{
			domain.ContactMethodEmail: emailChannel,
			domain.ContactMethodSMS:   smsChannel,
		})
		res := dispatcher.Send(context.Background(), delivery)
		assert.True(t, res.OK)
	})

	t.Run("未注册的渠道_返回失败结果", func(t *testing.T) {
		t.Parallel()
		dispatcher := NewDispatcher(map[domain.ContactMethod]Channel{})
		res := dispatcher.Send(context.Background(), domain.Delivery{
			Method:      domain.ContactMethodCall,
			Destination: "9876543210",
		})
		assert.False(t, res.OK)
		assert.Contains(t, res.Reason, "没有可用渠道")
	})
}
