package message

import (
	"context"
	"fmt"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/repository"
)

// ContactResolver 把联系人ID解析成一次投递用的收件人，
// 并做归属校验：联系人必须属于发起请求的商家。
type ContactResolver struct {
	repo repository.ContactRepository
}

// Resolve 解析失败分两类，调用方都按跳过处理，
// 但日志里要能区分开：
//   - errs.ErrContactNotFound 联系人不存在
//   - errs.ErrContactOwnership 联系人存在但属于别的商家
func (r *ContactResolver) Resolve(ctx context.Context, contactID, catererID int64) (domain.Recipient, error) {
	contact, err := r.repo.GetByID(ctx, contactID)
	if err != nil {
		return domain.Recipient{}, err
	}
	if contact.CatererID != catererID {
		return domain.Recipient{}, fmt.Errorf("%w: contactID=%d catererID=%d",
			errs.ErrContactOwnership, contactID, catererID)
	}
	return domain.Recipient{
		ContactID: contact.ID,
		CatererID: contact.CatererID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		Email:     contact.Email,
		Preferred: contact.Preferred,
	}, nil
}

// NewContactResolver 创建收件人解析器
func NewContactResolver(repo repository.ContactRepository) *ContactResolver {
	return &ContactResolver{repo: repo}
}
