package email

import (
	"context"
	"fmt"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/service/provider"
	"gopkg.in/gomail.v2"
)

var _ provider.Provider = (*Provider)(nil)

// Config SMTP配置
type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// From 发件人地址，为空时使用 Username
	From string `yaml:"from"`
}

// Provider 基于SMTP的邮件供应商
type Provider struct {
	dialer *gomail.Dialer
	from   string
}

func (p *Provider) Send(_ context.Context, delivery domain.Delivery) error {
	if delivery.Destination == "" {
		return fmt.Errorf("%w: 邮箱地址为空", errs.ErrEmptyDestination)
	}
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", delivery.Destination)
	m.SetHeader("Subject", delivery.Subject)
	m.SetBody("text/plain", delivery.Body)
	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendMessageFailed, err)
	}
	return nil
}

// NewProvider 创建SMTP邮件供应商
func NewProvider(cfg Config) *Provider {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &Provider{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
	}
}
