package provider

import (
	"context"

	"caterfind/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks Provider

// Provider 供应商客户端抽象。负责把一次投递真正送出去，
// 供应商侧的失败以 error 返回，由上层渠道适配器收敛。
type Provider interface {
	Send(ctx context.Context, delivery domain.Delivery) error
}
