package repository

import (
	"context"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type messageRepository struct {
	dao dao.MessageDAO
}

func (repo *messageRepository) Create(ctx context.Context, msg domain.Message) (domain.Message, error) {
	created, err := repo.dao.Create(ctx, repo.toEntity(msg))
	if err != nil {
		return domain.Message{}, err
	}
	return repo.toDomain(created), nil
}

func (repo *messageRepository) FindByCaterer(ctx context.Context, catererID int64) ([]domain.Message, error) {
	msgs, err := repo.dao.FindByCaterer(ctx, catererID)
	if err != nil {
		return nil, err
	}
	return slice.Map(msgs, func(_ int, src dao.Message) domain.Message {
		return repo.toDomain(src)
	}), nil
}

func (repo *messageRepository) CountByCaterer(ctx context.Context, catererID int64) (int64, error) {
	return repo.dao.CountByCaterer(ctx, catererID)
}

func (repo *messageRepository) toEntity(msg domain.Message) dao.Message {
	var sentAt int64
	if !msg.SentAt.IsZero() {
		sentAt = msg.SentAt.UnixMilli()
	}
	return dao.Message{
		ID:             msg.ID,
		CatererID:      msg.CatererID,
		ContactID:      msg.ContactID,
		RecipientName:  msg.RecipientName,
		RecipientPhone: msg.RecipientPhone,
		MessageText:    msg.MessageText,
		ContactMethod:  msg.ContactMethod.String(),
		Status:         msg.Status.String(),
		SentAt:         sentAt,
	}
}

func (repo *messageRepository) toDomain(msg dao.Message) domain.Message {
	return domain.Message{
		ID:             msg.ID,
		CatererID:      msg.CatererID,
		ContactID:      msg.ContactID,
		RecipientName:  msg.RecipientName,
		RecipientPhone: msg.RecipientPhone,
		MessageText:    msg.MessageText,
		ContactMethod:  domain.ContactMethod(msg.ContactMethod),
		Status:         domain.MessageStatus(msg.Status),
		SentAt:         time.UnixMilli(msg.SentAt),
	}
}

// NewMessageRepository 创建消息审计仓储实例
func NewMessageRepository(dao dao.MessageDAO) MessageRepository {
	return &messageRepository{dao: dao}
}
