package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTwimlURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		callbackURL string
		msg         string
		want        string
		wantErr     bool
	}{
		{
			name:        "普通文本",
			callbackURL: "https://api.caterfind.in",
			msg:         "Delivery tomorrow 9am",
			want:        "https://api.caterfind.in/twiml?msg=Delivery+tomorrow+9am",
		},
		{
			// 消息里的保留字符要转义，否则Twilio取到的文本会被截断
			name:        "特殊字符转义",
			callbackURL: "https://api.caterfind.in",
			msg:         "50% off & more?",
			want:        "https://api.caterfind.in/twiml?msg=50%25+off+%26+more%3F",
		},
		{
			name:        "未配置回调地址",
			callbackURL: "",
			msg:         "hello",
			wantErr:     true,
		},
		{
			name:        "回调地址非法",
			callbackURL: "://bad",
			msg:         "hello",
			wantErr:     true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := &TwilioProvider{callbackURL: tc.callbackURL}
			got, err := p.buildTwimlURL(tc.msg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
