package auth

import (
	"context"

	"caterfind/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/auth.mock.go -package=authmocks Service

// Service 注册与登录。口令是明文等值比较，
// 沿用现网行为，不是安全机制。
type Service interface {
	// Register 注册商家账号，同时创建一份空的经营资料
	Register(ctx context.Context, email, password, businessName string) (domain.User, error)
	// Login 校验口令并签发访问令牌
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	// VerifyToken 校验令牌，返回用户ID
	VerifyToken(tokenStr string) (int64, error)
}
