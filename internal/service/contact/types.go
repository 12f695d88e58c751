package contact

import (
	"context"

	"caterfind/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/contact.mock.go -package=contactmocks Service

// Service 联系人管理。所有读写都做归属校验，
// 跨商家访问一律按不存在处理。
type Service interface {
	Create(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	Update(ctx context.Context, contact domain.Contact) error
	Delete(ctx context.Context, catererID, id int64) error
	Get(ctx context.Context, catererID, id int64) (domain.Contact, error)
	List(ctx context.Context, catererID int64) ([]domain.Contact, error)
}
