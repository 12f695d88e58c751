package metrics

import (
	"context"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// 摘要指标的分位数配置
	median = 0.5
	p90    = 0.9
	p95    = 0.95
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p95Error    = 0.005
	p99Error    = 0.001

	// 摘要指标的最大保留时间
	maxAgeDuration = 5 * time.Minute

	statusOK     = "OK"
	statusFailed = "FAILED"
)

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider            provider.Provider
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	name                string
}

// Send 发送并记录指标
func (p *Provider) Send(ctx context.Context, delivery domain.Delivery) error {
	startTime := time.Now()

	err := p.provider.Send(ctx, delivery)

	duration := time.Since(startTime).Seconds()
	status := statusOK
	if err != nil {
		status = statusFailed
	}
	p.sendCounter.WithLabelValues(p.name, delivery.Method.String(), status).Inc()
	p.sendDurationSummary.WithLabelValues(p.name, delivery.Method.String(), status).Observe(duration)

	return err
}

// NewProvider 创建一个新的带有指标收集的供应商
// name 应该传入类似于 twilio, exotel, smtp 这种名字
func NewProvider(name string, p provider.Provider) *Provider {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "provider_send_duration_seconds",
			Help: "供应商发送消息耗时统计（秒）",
			Objectives: map[float64]float64{
				median: medianError,
				p90:    p90Error,
				p95:    p95Error,
				p99:    p99Error,
			},
			MaxAge: maxAgeDuration,
			ConstLabels: prometheus.Labels{
				"provider_instance": name,
			},
		},
		[]string{"provider", "method", "status"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_total",
			Help: "供应商发送消息总数",
			ConstLabels: prometheus.Labels{
				"provider_instance": name,
			},
		},
		[]string{"provider", "method", "status"},
	)

	prometheus.MustRegister(sendDurationSummary, sendCounter)

	return &Provider{
		provider:            p,
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		name:                name,
	}
}
