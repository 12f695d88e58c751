package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gotomicro/ego/core/elog"
)

// defaultServiceRadius 注册时经营资料的默认服务半径，公里
const defaultServiceRadius = 50

const tokenExpiration = 24 * time.Hour

// UserClaims 访问令牌载荷
type UserClaims struct {
	UserID int64           `json:"userId"`
	Role   domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.CateringProfileRepository
	jwtKey      []byte
	logger      *elog.Component
}

func (svc *authService) Register(ctx context.Context, email, password, businessName string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: 邮箱和口令不能为空", errs.ErrInvalidParameter)
	}
	user, err := svc.userRepo.Create(ctx, domain.User{
		Email:    email,
		Password: password,
		Role:     domain.UserRoleCaterer,
	})
	if err != nil {
		return domain.User{}, err
	}
	// 注册即建一份经营资料，商家之后再补全
	_, err = svc.profileRepo.Create(ctx, domain.CateringProfile{
		UserID:        user.ID,
		BusinessName:  businessName,
		Email:         email,
		ServiceRadius: defaultServiceRadius,
	})
	if err != nil {
		// 资料建失败不回滚账号，登录后仍可补建
		svc.logger.Error("注册时创建经营资料失败",
			elog.Int64("userID", user.ID),
			elog.FieldErr(err))
	}
	return user, nil
}

func (svc *authService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := svc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return domain.User{}, "", fmt.Errorf("%w: %s", errs.ErrInvalidCredentials, email)
		}
		return domain.User{}, "", err
	}
	// 明文等值比较，保持与现网一致
	if user.Password != password {
		return domain.User{}, "", fmt.Errorf("%w: %s", errs.ErrInvalidCredentials, email)
	}
	token, err := svc.issueToken(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (svc *authService) issueToken(user domain.User) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(svc.jwtKey)
	if err != nil {
		return "", fmt.Errorf("签发令牌失败: %w", err)
	}
	return signed, nil
}

func (svc *authService) VerifyToken(tokenStr string) (int64, error) {
	var claims UserClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(_ *jwt.Token) (any, error) {
		return svc.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: 令牌无效", errs.ErrInvalidCredentials)
	}
	return claims.UserID, nil
}

// NewService 创建认证服务
func NewService(userRepo repository.UserRepository, profileRepo repository.CateringProfileRepository, jwtKey string) Service {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtKey:      []byte(jwtKey),
		logger:      elog.DefaultLogger,
	}
}
