package channel

import (
	"context"
	"fmt"

	"caterfind/internal/domain"
)

var _ Channel = (*Dispatcher)(nil)

// Dispatcher 渠道分发器，对外伪装成Channel，作为统一入口
type Dispatcher struct {
	channels map[domain.ContactMethod]Channel
}

func (d *Dispatcher) Send(ctx context.Context, delivery domain.Delivery) domain.SendResult {
	channel, ok := d.channels[delivery.Method]
	if !ok {
		return domain.SendResult{
			OK:     false,
			Reason: fmt.Sprintf("没有可用渠道: %s", delivery.Method),
		}
	}
	return channel.Send(ctx, delivery)
}

// NewDispatcher 创建渠道分发器
func NewDispatcher(channels map[domain.ContactMethod]Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
	}
}
