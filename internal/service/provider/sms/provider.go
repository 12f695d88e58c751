package sms

import (
	"context"
	"fmt"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/service/provider"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var _ provider.Provider = (*Provider)(nil)

// Config Twilio短信配置
type Config struct {
	AccountSID string `yaml:"accountSid"`
	AuthToken  string `yaml:"authToken"`
	// FromNumber 发送号码，E.164格式
	FromNumber string `yaml:"fromNumber"`
}

// Provider 基于Twilio的短信供应商。
// 注意国内云厂商短信走模板审核，发不了自由文本，所以选Twilio。
type Provider struct {
	client *twilio.RestClient
	from   string
}

func (p *Provider) Send(_ context.Context, delivery domain.Delivery) error {
	if delivery.Destination == "" {
		return fmt.Errorf("%w: 手机号为空", errs.ErrEmptyDestination)
	}
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(delivery.Destination)
	params.SetFrom(p.from)
	params.SetBody(delivery.Body)
	_, err := p.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendMessageFailed, err)
	}
	return nil
}

// NewProvider 创建Twilio短信供应商
func NewProvider(cfg Config) *Provider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &Provider{client: client, from: cfg.FromNumber}
}
