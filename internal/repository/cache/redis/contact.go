package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"caterfind/internal/domain"
	"caterfind/internal/repository/cache"
	"github.com/redis/go-redis/v9"
)

var _ cache.ContactCache = (*contactCache)(nil)

type contactCache struct {
	client redis.Cmdable
}

func (c *contactCache) Get(ctx context.Context, contactID int64) (domain.Contact, error) {
	val, err := c.client.Get(ctx, cache.ContactKey(contactID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Contact{}, cache.ErrKeyNotFound
		}
		return domain.Contact{}, err
	}
	var contact domain.Contact
	if err := json.Unmarshal(val, &contact); err != nil {
		return domain.Contact{}, fmt.Errorf("反序列化联系人失败: %w", err)
	}
	return contact, nil
}

func (c *contactCache) Set(ctx context.Context, contact domain.Contact) error {
	val, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("序列化联系人失败: %w", err)
	}
	return c.client.Set(ctx, cache.ContactKey(contact.ID), val, cache.DefaultExpiredTime).Err()
}

func (c *contactCache) Del(ctx context.Context, contactID int64) error {
	return c.client.Del(ctx, cache.ContactKey(contactID)).Err()
}

// NewContactCache 创建基于redis的联系人缓存
func NewContactCache(client redis.Cmdable) cache.ContactCache {
	return &contactCache{client: client}
}
