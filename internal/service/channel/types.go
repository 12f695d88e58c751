package channel

import (
	"context"

	"caterfind/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/channel.mock.go -package=channelmocks Channel

// Channel 渠道适配器。适配器是故障边界：供应商侧的一切失败
// 都收敛成 SendResult{OK: false}，绝不向调度层抛错，
// 保证群发中单个收件人失败不会中断整轮投递。
type Channel interface {
	Send(ctx context.Context, delivery domain.Delivery) domain.SendResult
}
