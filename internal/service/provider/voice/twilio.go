package voice

import (
	"context"
	"fmt"
	"net/url"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/service/provider"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var _ provider.Provider = (*TwilioProvider)(nil)

// TwilioConfig Twilio语音配置
type TwilioConfig struct {
	AccountSID string `yaml:"accountSid"`
	AuthToken  string `yaml:"authToken"`
	FromNumber string `yaml:"fromNumber"`
	// CallbackURL 本服务对外可达的根地址，
	// Twilio 接通后回调 {CallbackURL}/twiml 取播报脚本
	CallbackURL string `yaml:"callbackUrl"`
}

// TwilioProvider 基于Twilio的语音供应商。不直接传语音内容，
// 而是给Twilio一个TwiML回调地址，消息文本放在查询参数里。
type TwilioProvider struct {
	client      *twilio.RestClient
	from        string
	callbackURL string
}

func (p *TwilioProvider) Send(_ context.Context, delivery domain.Delivery) error {
	if delivery.Destination == "" {
		return fmt.Errorf("%w: 手机号为空", errs.ErrEmptyDestination)
	}
	twimlURL, err := p.buildTwimlURL(delivery.Body)
	if err != nil {
		// 回调地址拼不出来就不能发起呼叫
		return err
	}
	params := &twilioapi.CreateCallParams{}
	params.SetTo(delivery.Destination)
	params.SetFrom(p.from)
	params.SetUrl(twimlURL)
	_, err = p.client.Api.CreateCall(params)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendMessageFailed, err)
	}
	return nil
}

func (p *TwilioProvider) buildTwimlURL(msg string) (string, error) {
	if p.callbackURL == "" {
		return "", fmt.Errorf("%w: 未配置语音回调地址", errs.ErrSendMessageFailed)
	}
	base, err := url.Parse(p.callbackURL)
	if err != nil {
		return "", fmt.Errorf("%w: 语音回调地址非法: %w", errs.ErrSendMessageFailed, err)
	}
	return fmt.Sprintf("%s/twiml?msg=%s", base.String(), url.QueryEscape(msg)), nil
}

// NewTwilioProvider 创建Twilio语音供应商
func NewTwilioProvider(cfg TwilioConfig) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioProvider{
		client:      client,
		from:        cfg.FromNumber,
		callbackURL: cfg.CallbackURL,
	}
}
