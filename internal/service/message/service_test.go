package message

import (
	"context"
	"errors"
	"testing"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	repomocks "caterfind/internal/repository/mocks"
	channelmocks "caterfind/internal/service/channel/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestMessageServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MessageServiceTestSuite))
}

type MessageServiceTestSuite struct {
	suite.Suite
}

func (s *MessageServiceTestSuite) newService(ctrl *gomock.Controller) (
	Service,
	*repomocks.MockContactRepository,
	*channelmocks.MockChannel,
	*repomocks.MockMessageRepository,
) {
	contactRepo := repomocks.NewMockContactRepository(ctrl)
	dispatcher := channelmocks.NewMockChannel(ctrl)
	messageRepo := repomocks.NewMockMessageRepository(ctrl)
	svc := NewService(NewContactResolver(contactRepo), dispatcher, messageRepo, contactRepo)
	return svc, contactRepo, dispatcher, messageRepo
}

func (s *MessageServiceTestSuite) contact(id, catererID int64, preferred domain.ContactMethod) domain.Contact {
	return domain.Contact{
		ID:        id,
		CatererID: catererID,
		Name:      "Contact",
		Phone:     "9876543210",
		Email:     "contact@example.in",
		Preferred: preferred,
	}
}

func (s *MessageServiceTestSuite) TestBroadcastAllSucceed() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contactRepo, dispatcher, messageRepo := s.newService(ctrl)

	contactRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(s.contact(1, 10, domain.ContactMethodEmail), nil)
	contactRepo.EXPECT().GetByID(gomock.Any(), int64(2)).
		Return(s.contact(2, 10, domain.ContactMethodSMS), nil)
	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(domain.SendResult{OK: true}).Times(2)

	var audited []domain.Message
	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Message) (domain.Message, error) {
			audited = append(audited, msg)
			return msg, nil
		}).Times(2)

	sentCount, err := svc.SendBroadcast(context.Background(), 10, "Delivery tomorrow 9am", []int64{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), sentCount)
	assert.Len(t, audited, 2)
	for _, msg := range audited {
		assert.Equal(t, int64(10), msg.CatererID)
		assert.Equal(t, domain.MessageStatusSent, msg.Status)
		assert.Equal(t, "Delivery tomorrow 9am", msg.MessageText)
		assert.False(t, msg.SentAt.IsZero())
	}
}

// 群发示例：A首选邮件且邮箱有效，B首选短信但手机号为空。
// 预期只发出1条，审计只有A的一条EMAIL记录，B不留痕迹。
func (s *MessageServiceTestSuite) TestBroadcastPartialFailure() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contactRepo, dispatcher, messageRepo := s.newService(ctrl)

	contactA := s.contact(1, 10, domain.ContactMethodEmail)
	contactB := s.contact(2, 10, domain.ContactMethodSMS)
	contactB.Phone = ""

	contactRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(contactA, nil)
	contactRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(contactB, nil)

	dispatcher.EXPECT().Send(gomock.Any(), domain.Delivery{
		Method:      domain.ContactMethodEmail,
		Destination: contactA.Email,
		Subject:     emailSubject,
		Body:        "Delivery tomorrow 9am",
	}).Return(domain.SendResult{OK: true})
	dispatcher.EXPECT().Send(gomock.Any(), domain.Delivery{
		Method:      domain.ContactMethodSMS,
		Destination: "",
		Subject:     emailSubject,
		Body:        "Delivery tomorrow 9am",
	}).Return(domain.SendResult{OK: false, Reason: "收件人没有手机号"})

	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Message) (domain.Message, error) {
			assert.Equal(t, int64(1), msg.ContactID)
			assert.Equal(t, domain.ContactMethodEmail, msg.ContactMethod)
			assert.Equal(t, domain.MessageStatusSent, msg.Status)
			return msg, nil
		})

	sentCount, err := svc.SendBroadcast(context.Background(), 10, "Delivery tomorrow 9am", []int64{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), sentCount)
}

// 不存在和越权的联系人都跳过，不中断后面的投递
func (s *MessageServiceTestSuite) TestBroadcastSkipsUnresolvable() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contactRepo, dispatcher, messageRepo := s.newService(ctrl)

	contactRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(domain.Contact{}, errs.ErrContactNotFound)
	// 属于商家99，不属于发起方10
	contactRepo.EXPECT().GetByID(gomock.Any(), int64(2)).
		Return(s.contact(2, 99, domain.ContactMethodSMS), nil)
	contactRepo.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(s.contact(3, 10, domain.ContactMethodSMS), nil)

	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.SendResult{OK: true})
	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Message) (domain.Message, error) {
			assert.Equal(t, int64(3), msg.ContactID)
			return msg, nil
		})

	sentCount, err := svc.SendBroadcast(context.Background(), 10, "hello", []int64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), sentCount)
}

// 审计写失败不能推翻已经成功的发送，计数照常
func (s *MessageServiceTestSuite) TestBroadcastAuditFailureDoesNotAffectCount() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contactRepo, dispatcher, messageRepo := s.newService(ctrl)

	contactRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(s.contact(1, 10, domain.ContactMethodSMS), nil)
	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.SendResult{OK: true})
	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(domain.Message{}, errors.New("db down"))

	sentCount, err := svc.SendBroadcast(context.Background(), 10, "hello", []int64{1})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), sentCount)
}

// 补货：关联联系人首选邮件，走邮件渠道而不是默认短信；
// 审计渠道记EMAIL，收件人快照仍然是手工填写的经销商信息
func (s *MessageServiceTestSuite) TestReorderLinkedContactPrefersEmail() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contactRepo, dispatcher, messageRepo := s.newService(ctrl)

	linked := s.contact(101, 10, domain.ContactMethodEmail)
	contactRepo.EXPECT().GetByID(gomock.Any(), int64(101)).Return(linked, nil)

	dispatcher.EXPECT().Send(gomock.Any(), domain.Delivery{
		Method:      domain.ContactMethodEmail,
		Destination: linked.Email,
		Subject:     emailSubject,
		Body:        "Need 50kg rice",
	}).Return(domain.SendResult{OK: true})

	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Message) (domain.Message, error) {
			assert.Equal(t, int64(101), msg.ContactID)
			assert.Equal(t, domain.ContactMethodEmail, msg.ContactMethod)
			assert.Equal(t, "Manual Dealer", msg.RecipientName)
			assert.Equal(t, "9000000000", msg.RecipientPhone)
			return msg, nil
		})

	ok, err := svc.SendReorder(context.Background(), domain.ReorderRequest{
		CatererID:       10,
		DealerName:      "Manual Dealer",
		DealerPhone:     "9000000000",
		LinkedContactID: 101,
		MessageText:     "Need 50kg rice",
	})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func (s *MessageServiceTestSuite) TestReorderManualDealerDefaultsToSMS() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, dispatcher, messageRepo := s.newService(ctrl)

	dispatcher.EXPECT().Send(gomock.Any(), domain.Delivery{
		Method:      domain.ContactMethodSMS,
		Destination: "9876543210",
		Subject:     emailSubject,
		Body:        "Need 50kg rice",
	}).Return(domain.SendResult{OK: true})

	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Message) (domain.Message, error) {
			assert.Equal(t, int64(0), msg.ContactID)
			assert.Equal(t, domain.ContactMethodSMS, msg.ContactMethod)
			return msg, nil
		})

	ok, err := svc.SendReorder(context.Background(), domain.ReorderRequest{
		CatererID:   10,
		DealerName:  "New Dealer",
		DealerPhone: "9876543210",
		MessageText: "Need 50kg rice",
	})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func (s *MessageServiceTestSuite) TestReorderSendFailureWritesNothing() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, dispatcher, _ := s.newService(ctrl)

	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(domain.SendResult{OK: false, Reason: "供应商拒绝"})

	ok, err := svc.SendReorder(context.Background(), domain.ReorderRequest{
		CatererID:   10,
		DealerName:  "Dealer",
		DealerPhone: "9876543210",
		MessageText: "Need 50kg rice",
	})
	assert.NoError(t, err)
	assert.False(t, ok)
}

// 关联联系人解析不出来时退回手工路径，不算失败
func (s *MessageServiceTestSuite) TestReorderLinkedContactUnresolvableFallsBack() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contactRepo, dispatcher, messageRepo := s.newService(ctrl)

	contactRepo.EXPECT().GetByID(gomock.Any(), int64(404)).
		Return(domain.Contact{}, errs.ErrContactNotFound)
	dispatcher.EXPECT().Send(gomock.Any(), domain.Delivery{
		Method:      domain.ContactMethodSMS,
		Destination: "9876543210",
		Subject:     emailSubject,
		Body:        "restock",
	}).Return(domain.SendResult{OK: true})
	messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Message) (domain.Message, error) {
			assert.Equal(t, int64(0), msg.ContactID)
			return msg, nil
		})

	ok, err := svc.SendReorder(context.Background(), domain.ReorderRequest{
		CatererID:       10,
		DealerName:      "Dealer",
		DealerPhone:     "9876543210",
		LinkedContactID: 404,
		MessageText:     "restock",
	})
	assert.NoError(t, err)
	assert.True(t, ok)
}

// 历史按倒序返回，显示名优先取联系人当前姓名，
// 联系人删了用快照，快照也没有就是 Unknown
func (s *MessageServiceTestSuite) TestListHistoryDisplayNames() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contactRepo, _, messageRepo := s.newService(ctrl)

	now := time.Now()
	messageRepo.EXPECT().FindByCaterer(gomock.Any(), int64(10)).Return([]domain.Message{
		{ID: 3, CatererID: 10, ContactID: 1, RecipientName: "Old Name", SentAt: now},
		{ID: 2, CatererID: 10, ContactID: 2, RecipientName: "Deleted Snapshot", SentAt: now.Add(-time.Hour)},
		{ID: 1, CatererID: 10, ContactID: 0, RecipientName: "", SentAt: now.Add(-2 * time.Hour)},
	}, nil)

	contactRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(domain.Contact{ID: 1, CatererID: 10, Name: "Current Name"}, nil)
	contactRepo.EXPECT().GetByID(gomock.Any(), int64(2)).
		Return(domain.Contact{}, errs.ErrContactNotFound)

	msgs, err := svc.ListHistory(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, msgs, 3)
	assert.Equal(t, "Current Name", msgs[0].RecipientName)
	assert.Equal(t, "Deleted Snapshot", msgs[1].RecipientName)
	assert.Equal(t, "Unknown", msgs[2].RecipientName)
	// 倒序由仓储层的排序保证，这里只校验顺序未被打乱
	assert.True(t, msgs[0].SentAt.After(msgs[1].SentAt))
	assert.True(t, msgs[1].SentAt.After(msgs[2].SentAt))
}
