package message

import (
	"context"
	"fmt"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/repository"
	"caterfind/internal/service/channel"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

// emailSubject 邮件渠道的固定主题，短信和语音不使用
const emailSubject = "CaterFind Notification"

// unknownRecipient 联系人已删除且没有姓名快照时的显示名
const unknownRecipient = "Unknown"

type messageService struct {
	resolver    *ContactResolver
	dispatcher  channel.Channel
	repo        repository.MessageRepository
	contactRepo repository.ContactRepository
	logger      *elog.Component
}

// SendBroadcast 群发。每个收件人独立处理：解析失败跳过，
// 发送失败跳过，循环绝不提前中断。只有发送成功才写审计、才计数，
// 返回值是成功条数而不是尝试条数。
func (svc *messageService) SendBroadcast(ctx context.Context, catererID int64, messageText string, contactIDs []int64) (int64, error) {
	var sentCount int64
	// 解析失败只聚合到日志里，不影响返回值
	var skipped *multierror.Error
	for _, contactID := range contactIDs {
		recipient, err := svc.resolver.Resolve(ctx, contactID, catererID)
		if err != nil {
			skipped = multierror.Append(skipped, err)
			continue
		}
		method, destination := SelectChannel(recipient, domain.DispatchBroadcast)
		res := svc.dispatcher.Send(ctx, domain.Delivery{
			Method:      method,
			Destination: destination,
			Subject:     emailSubject,
			Body:        messageText,
		})
		if !res.OK {
			svc.logger.Warn("群发单个收件人发送失败",
				elog.Int64("catererID", catererID),
				elog.Int64("contactID", contactID),
				elog.String("method", method.String()),
				elog.String("reason", res.Reason))
			continue
		}
		svc.audit(ctx, domain.Message{
			CatererID:      catererID,
			ContactID:      recipient.ContactID,
			RecipientName:  recipient.Name,
			RecipientPhone: recipient.Phone,
			MessageText:    messageText,
			ContactMethod:  method,
			Status:         domain.MessageStatusSent,
			SentAt:         time.Now(),
		})
		sentCount++
	}
	if err := skipped.ErrorOrNil(); err != nil {
		svc.logger.Warn("群发跳过了部分收件人",
			elog.Int64("catererID", catererID),
			elog.FieldErr(err))
	}
	return sentCount, nil
}

// SendReorder 补货请求。关联联系人解析不出来时退回手工路径，
// 审计快照永远记手工填写的经销商姓名和号码。
func (svc *messageService) SendReorder(ctx context.Context, req domain.ReorderRequest) (bool, error) {
	recipient := domain.Recipient{
		CatererID: req.CatererID,
		Name:      req.DealerName,
		Phone:     req.DealerPhone,
	}
	if req.LinkedContactID > 0 {
		linked, err := svc.resolver.Resolve(ctx, req.LinkedContactID, req.CatererID)
		if err != nil {
			svc.logger.Warn("补货请求关联联系人解析失败，按手工收件人处理",
				elog.Int64("catererID", req.CatererID),
				elog.Int64("contactID", req.LinkedContactID),
				elog.FieldErr(err))
		} else {
			recipient = linked
		}
	}
	method, destination := SelectChannel(recipient, domain.DispatchReorder)
	res := svc.dispatcher.Send(ctx, domain.Delivery{
		Method:      method,
		Destination: destination,
		Subject:     emailSubject,
		Body:        req.MessageText,
	})
	if !res.OK {
		svc.logger.Warn("补货请求发送失败",
			elog.Int64("catererID", req.CatererID),
			elog.String("method", method.String()),
			elog.String("reason", res.Reason))
		return false, nil
	}
	svc.audit(ctx, domain.Message{
		CatererID: req.CatererID,
		ContactID: recipient.ContactID,
		// 快照永远是手工提供的经销商信息，即便实际按联系人偏好发送
		RecipientName:  req.DealerName,
		RecipientPhone: req.DealerPhone,
		MessageText:    req.MessageText,
		ContactMethod:  method,
		Status:         domain.MessageStatusSent,
		SentAt:         time.Now(),
	})
	return true, nil
}

func (svc *messageService) ListHistory(ctx context.Context, catererID int64) ([]domain.Message, error) {
	msgs, err := svc.repo.FindByCaterer(ctx, catererID)
	if err != nil {
		return nil, err
	}
	for i := range msgs {
		msgs[i].RecipientName = svc.displayName(ctx, msgs[i])
	}
	return msgs, nil
}

// displayName 收件人显示名：联系人还在就用当前姓名，
// 删了就回退到快照，快照也没有就是 Unknown
func (svc *messageService) displayName(ctx context.Context, msg domain.Message) string {
	if msg.ContactID > 0 {
		contact, err := svc.contactRepo.GetByID(ctx, msg.ContactID)
		if err == nil {
			return contact.Name
		}
	}
	if msg.RecipientName != "" {
		return msg.RecipientName
	}
	return unknownRecipient
}

// audit 追加审计记录。写失败不能推翻已经报告的发送结果，
// 只记日志
func (svc *messageService) audit(ctx context.Context, msg domain.Message) {
	if _, err := svc.repo.Create(ctx, msg); err != nil {
		svc.logger.Error("写入消息审计记录失败",
			elog.Int64("catererID", msg.CatererID),
			elog.Int64("contactID", msg.ContactID),
			elog.FieldErr(fmt.Errorf("审计落库失败: %w", err)))
	}
}

// NewService 创建消息服务
func NewService(
	resolver *ContactResolver,
	dispatcher channel.Channel,
	repo repository.MessageRepository,
	contactRepo repository.ContactRepository,
) Service {
	return &messageService{
		resolver:    resolver,
		dispatcher:  dispatcher,
		repo:        repo,
		contactRepo: contactRepo,
		logger:      elog.DefaultLogger,
	}
}
