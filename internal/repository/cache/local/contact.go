package local

import (
	"context"
	"errors"

	"caterfind/internal/domain"
	"caterfind/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
)

var _ cache.ContactCache = (*Cache)(nil)

// Cache 进程内联系人缓存
type Cache struct {
	localCache *ca.Cache
}

func (c *Cache) Get(_ context.Context, contactID int64) (domain.Contact, error) {
	v, ok := c.localCache.Get(cache.ContactKey(contactID))
	if !ok {
		return domain.Contact{}, cache.ErrKeyNotFound
	}
	vv, ok := v.(domain.Contact)
	if !ok {
		return domain.Contact{}, errors.New("数据类型不正确")
	}
	return vv, nil
}

func (c *Cache) Set(_ context.Context, contact domain.Contact) error {
	c.localCache.Set(cache.ContactKey(contact.ID), contact, cache.DefaultExpiredTime)
	return nil
}

func (c *Cache) Del(_ context.Context, contactID int64) error {
	c.localCache.Delete(cache.ContactKey(contactID))
	return nil
}

func NewCache(localCache *ca.Cache) *Cache {
	return &Cache{localCache: localCache}
}
