package ioc

import (
	"caterfind/internal/domain"
	"caterfind/internal/service/channel"
	"caterfind/internal/service/provider"
	"caterfind/internal/service/provider/email"
	"caterfind/internal/service/provider/metrics"
	"caterfind/internal/service/provider/sms"
	"caterfind/internal/service/provider/tracing"
	"caterfind/internal/service/provider/voice"
	"github.com/gotomicro/ego/core/econf"
)

// channelConfig 三条渠道的供应商配置
type channelConfig struct {
	CountryCode string             `yaml:"countryCode"`
	Email       email.Config       `yaml:"email"`
	SMS         sms.Config         `yaml:"sms"`
	Voice       voice.TwilioConfig `yaml:"voice"`
	// VoiceVendor twilio 或 exotel
	VoiceVendor string             `yaml:"voiceVendor"`
	Exotel      voice.ExotelConfig `yaml:"exotel"`
}

// InitChannelDispatcher 组装渠道分发器。每个供应商都套上
// 指标和链路追踪装饰器。
func InitChannelDispatcher() *channel.Dispatcher {
	var cfg channelConfig
	if err := econf.UnmarshalKey("channel", &cfg); err != nil {
		panic(err)
	}

	emailProvider := decorate("smtp", email.NewProvider(cfg.Email))
	smsProvider := decorate("twilio-sms", sms.NewProvider(cfg.SMS))

	var voiceProvider provider.Provider
	if cfg.VoiceVendor == "exotel" {
		voiceProvider = decorate("exotel", voice.NewExotelProvider(cfg.Exotel))
	} else {
		voiceProvider = decorate("twilio-voice", voice.NewTwilioProvider(cfg.Voice))
	}

	return channel.NewDispatcher(map[domain.ContactMethod]channel.Channel{
		domain.ContactMethodEmail: channel.NewEmailChannel(emailProvider),
		domain.ContactMethodSMS:   channel.NewSMSChannel(smsProvider, cfg.CountryCode),
		domain.ContactMethodCall:  channel.NewVoiceChannel(voiceProvider, cfg.CountryCode),
	})
}

func decorate(name string, p provider.Provider) provider.Provider {
	return tracing.NewProvider(metrics.NewProvider(name, p), name)
}
