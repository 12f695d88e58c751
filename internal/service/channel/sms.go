package channel

import (
	"context"

	"caterfind/internal/domain"
	"caterfind/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

var _ Channel = (*smsChannel)(nil)

type smsChannel struct {
	provider    provider.Provider
	countryCode string
	logger      *elog.Component
}

func (c *smsChannel) Send(ctx context.Context, delivery domain.Delivery) domain.SendResult {
	if delivery.Destination == "" {
		return domain.SendResult{OK: false, Reason: "收件人没有手机号"}
	}
	delivery.Destination = normalizePhone(delivery.Destination, c.countryCode)
	if err := c.provider.Send(ctx, delivery); err != nil {
		c.logger.Error("短信发送失败",
			elog.FieldErr(err),
			elog.String("to", delivery.Destination))
		return domain.SendResult{OK: false, Reason: err.Error()}
	}
	return domain.SendResult{OK: true}
}

// NewSMSChannel 创建短信渠道适配器
func NewSMSChannel(p provider.Provider, countryCode string) Channel {
	return &smsChannel{provider: p, countryCode: countryCode, logger: elog.DefaultLogger}
}
