package message

import (
	"testing"

	"caterfind/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSelectChannel(t *testing.T) {
	t.Parallel()

	recipient := domain.Recipient{
		ContactID: 101,
		CatererID: 1,
		Name:      "Ravi Traders",
		Phone:     "9876543210",
		Email:     "ravi@traders.in",
	}

	tests := []struct {
		name            string
		recipient       func() domain.Recipient
		dispatchCtx     domain.DispatchContext
		wantMethod      domain.ContactMethod
		wantDestination string
	}{
		{
			name: "群发_首选邮件",
			recipient: func() domain.Recipient {
				r := recipient
				r.Preferred = domain.ContactMethodEmail
				return r
			},
			dispatchCtx:     domain.DispatchBroadcast,
			wantMethod:      domain.ContactMethodEmail,
			wantDestination: "ravi@traders.in",
		},
		{
			name: "群发_首选短信",
			recipient: func() domain.Recipient {
				r := recipient
				r.Preferred = domain.ContactMethodSMS
				return r
			},
			dispatchCtx:     domain.DispatchBroadcast,
			wantMethod:      domain.ContactMethodSMS,
			wantDestination: "9876543210",
		},
		{
			name: "群发_首选语音",
			recipient: func() domain.Recipient {
				r := recipient
				r.Preferred = domain.ContactMethodCall
				return r
			},
			dispatchCtx:     domain.DispatchBroadcast,
			wantMethod:      domain.ContactMethodCall,
			wantDestination: "9876543210",
		},
		{
			// 首选渠道的地址为空也不改道，交给适配器去失败
			name: "群发_首选邮件但邮箱为空_不回退",
			recipient: func() domain.Recipient {
				r := recipient
				r.Preferred = domain.ContactMethodEmail
				r.Email = ""
				return r
			},
			dispatchCtx:     domain.DispatchBroadcast,
			wantMethod:      domain.ContactMethodEmail,
			wantDestination: "",
		},
		{
			name: "补货_关联联系人首选邮件_覆盖默认短信",
			recipient: func() domain.Recipient {
				r := recipient
				r.Preferred = domain.ContactMethodEmail
				return r
			},
			dispatchCtx:     domain.DispatchReorder,
			wantMethod:      domain.ContactMethodEmail,
			wantDestination: "ravi@traders.in",
		},
		{
			name: "补货_未关联联系人_默认短信发手工号码",
			recipient: func() domain.Recipient {
				return domain.Recipient{
					CatererID: 1,
					Name:      "New Dealer",
					Phone:     "9123456789",
				}
			},
			dispatchCtx:     domain.DispatchReorder,
			wantMethod:      domain.ContactMethodSMS,
			wantDestination: "9123456789",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			method, destination := SelectChannel(tc.recipient(), tc.dispatchCtx)
			assert.Equal(t, tc.wantMethod, method)
			assert.Equal(t, tc.wantDestination, destination)
		})
	}
}
