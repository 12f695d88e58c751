package voice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/service/provider"
)

var _ provider.Provider = (*ExotelProvider)(nil)

const defaultExotelTimeout = 10 * time.Second

// ExotelConfig Exotel语音配置
type ExotelConfig struct {
	AccountSID string `yaml:"accountSid"`
	APIKey     string `yaml:"apiKey"`
	APIToken   string `yaml:"apiToken"`
	// CallerID Exotel侧申请的主叫号码
	CallerID string `yaml:"callerId"`
	// Subdomain 一般是 api.exotel.com 或所在区域的域名
	Subdomain string `yaml:"subdomain"`
	CallType  string `yaml:"callType"`
}

// ExotelProvider 备选语音供应商，覆盖Twilio在印度本地打不通的号段。
// Exotel没有官方Go SDK，直接走它的REST接口。
type ExotelProvider struct {
	cfg        ExotelConfig
	httpClient *http.Client
}

func (p *ExotelProvider) Send(ctx context.Context, delivery domain.Delivery) error {
	if delivery.Destination == "" {
		return fmt.Errorf("%w: 手机号为空", errs.ErrEmptyDestination)
	}
	endpoint := fmt.Sprintf("https://%s/v1/Accounts/%s/Calls/connect.json", p.cfg.Subdomain, p.cfg.AccountSID)
	form := url.Values{}
	form.Set("From", delivery.Destination)
	form.Set("CallerId", p.cfg.CallerID)
	form.Set("CallType", p.cfg.CallType)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendMessageFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(p.cfg.APIKey, p.cfg.APIToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendMessageFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: exotel响应码 %d", errs.ErrSendMessageFailed, resp.StatusCode)
	}
	return nil
}

// NewExotelProvider 创建Exotel语音供应商
func NewExotelProvider(cfg ExotelConfig) *ExotelProvider {
	if cfg.CallType == "" {
		cfg.CallType = "trans"
	}
	return &ExotelProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultExotelTimeout},
	}
}
