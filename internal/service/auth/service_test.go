package auth

import (
	"context"
	"errors"
	"testing"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	repomocks "caterfind/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testJWTKey = "k6CswdUm77WKcbM68UQUuxVsHSpTCwgK"

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("注册成功_自动建经营资料", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		profileRepo := repomocks.NewMockCateringProfileRepository(ctrl)

		userRepo.EXPECT().Create(gomock.Any(), domain.User{
			Email:    "anita@caterfind.in",
			Password: "secret",
			Role:     domain.UserRoleCaterer,
		}).Return(domain.User{
			ID:    7,
			Email: "anita@caterfind.in",
			Role:  domain.UserRoleCaterer,
		}, nil)
		profileRepo.EXPECT().Create(gomock.Any(), domain.CateringProfile{
			UserID:        7,
			BusinessName:  "Anita Caterers",
			Email:         "anita@caterfind.in",
			ServiceRadius: 50,
		}).Return(domain.CateringProfile{UserID: 7}, nil)

		svc := NewService(userRepo, profileRepo, testJWTKey)
		user, err := svc.Register(context.Background(), "anita@caterfind.in", "secret", "Anita Caterers")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("邮箱已占用", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		profileRepo := repomocks.NewMockCateringProfileRepository(ctrl)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(domain.User{}, errs.ErrUserDuplicate)

		svc := NewService(userRepo, profileRepo, testJWTKey)
		_, err := svc.Register(context.Background(), "anita@caterfind.in", "secret", "Anita Caterers")
		assert.ErrorIs(t, err, errs.ErrUserDuplicate)
	})

	t.Run("经营资料建失败_不影响注册", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		profileRepo := repomocks.NewMockCateringProfileRepository(ctrl)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(domain.User{ID: 7, Email: "anita@caterfind.in"}, nil)
		profileRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(domain.CateringProfile{}, errors.New("db down"))

		svc := NewService(userRepo, profileRepo, testJWTKey)
		user, err := svc.Register(context.Background(), "anita@caterfind.in", "secret", "Anita Caterers")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})
}

func TestLoginAndVerify(t *testing.T) {
	t.Parallel()

	t.Run("登录成功_令牌可验证", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		profileRepo := repomocks.NewMockCateringProfileRepository(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "anita@caterfind.in").
			Return(domain.User{ID: 7, Email: "anita@caterfind.in", Password: "secret"}, nil)

		svc := NewService(userRepo, profileRepo, testJWTKey)
		user, token, err := svc.Login(context.Background(), "anita@caterfind.in", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NotEmpty(t, token)

		uid, err := svc.VerifyToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), uid)
	})

	t.Run("口令不匹配", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		profileRepo := repomocks.NewMockCateringProfileRepository(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "anita@caterfind.in").
			Return(domain.User{ID: 7, Password: "secret"}, nil)

		svc := NewService(userRepo, profileRepo, testJWTKey)
		_, _, err := svc.Login(context.Background(), "anita@caterfind.in", "wrong")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("用户不存在_报凭证错误不报不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		profileRepo := repomocks.NewMockCateringProfileRepository(ctrl)
		userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@caterfind.in").
			Return(domain.User{}, errs.ErrUserNotFound)

		svc := NewService(userRepo, profileRepo, testJWTKey)
		_, _, err := svc.Login(context.Background(), "nobody@caterfind.in", "secret")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("伪造令牌", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		profileRepo := repomocks.NewMockCateringProfileRepository(ctrl)

		svc := NewService(userRepo, profileRepo, testJWTKey)
		_, err := svc.VerifyToken("not-a-token")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
