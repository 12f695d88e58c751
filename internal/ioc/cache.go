package ioc

import (
	"time"

	"caterfind/internal/repository/cache"
	"caterfind/internal/repository/cache/local"
	rediscache "caterfind/internal/repository/cache/redis"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// InitLocalContactCache 进程内联系人缓存
func InitLocalContactCache() cache.ContactCache {
	const cleanupInterval = 15 * time.Minute
	return local.NewCache(ca.New(cache.DefaultExpiredTime, cleanupInterval))
}

// InitRedisContactCache redis联系人缓存
func InitRedisContactCache(client redis.Cmdable) cache.ContactCache {
	return rediscache.NewContactCache(client)
}
