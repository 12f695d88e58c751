package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caterfind/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	ContactPrefix      = "contact"
	DefaultExpiredTime = 10 * time.Minute
)

// ContactCache 联系人读缓存。群发解析联系人是最热的读路径，
// 本地缓存挡一层，redis 再挡一层。
type ContactCache interface {
	Get(ctx context.Context, contactID int64) (domain.Contact, error)
	Set(ctx context.Context, contact domain.Contact) error
	Del(ctx context.Context, contactID int64) error
}

func ContactKey(contactID int64) string {
	return fmt.Sprintf("%s:%d", ContactPrefix, contactID)
}
