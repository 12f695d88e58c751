package channel

import (
	"context"

	"caterfind/internal/domain"
	"caterfind/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

var _ Channel = (*emailChannel)(nil)

type emailChannel struct {
	provider provider.Provider
	logger   *elog.Component
}

func (c *emailChannel) Send(ctx context.Context, delivery domain.Delivery) domain.SendResult {
	if delivery.Destination == "" {
		return domain.SendResult{OK: false, Reason: "收件人没有邮箱地址"}
	}
	if err := c.provider.Send(ctx, delivery); err != nil {
		c.logger.Error("邮件发送失败",
			elog.FieldErr(err),
			elog.String("to", delivery.Destination))
		return domain.SendResult{OK: false, Reason: err.Error()}
	}
	return domain.SendResult{OK: true}
}

// NewEmailChannel 创建邮件渠道适配器
func NewEmailChannel(p provider.Provider) Channel {
	return &emailChannel{provider: p, logger: elog.DefaultLogger}
}
