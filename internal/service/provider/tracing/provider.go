package tracing

import (
	"context"

	"caterfind/internal/domain"
	"caterfind/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Provider 为供应商实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	tracer   trace.Tracer
	name     string
}

func (p *Provider) Send(ctx context.Context, delivery domain.Delivery) error {
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("provider.name", p.name),
			attribute.String("delivery.method", delivery.Method.String()),
		))
	defer span.End()

	err := p.provider.Send(ctx, delivery)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

// NewProvider 创建一个新的带有链路追踪的供应商
// name 应该传入类似于 twilio, exotel, smtp 这种名字
func NewProvider(p provider.Provider, name string) *Provider {
	return &Provider{
		provider: p,
		name:     name,
		tracer:   otel.Tracer("caterfind/provider"),
	}
}
