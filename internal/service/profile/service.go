package profile

import (
	"context"
	"errors"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	"caterfind/internal/repository"
)

//go:generate mockgen -source=./service.go -destination=./mocks/profile.mock.go -package=profilemocks Service

// Service 商家经营资料。评分由客户端评价汇总维护，
// 商家自己改不了，更新接口不收这个字段。
type Service interface {
	Get(ctx context.Context, userID int64) (domain.CateringProfile, error)
	Save(ctx context.Context, profile domain.CateringProfile) (domain.CateringProfile, error)
}

type profileService struct {
	repo repository.CateringProfileRepository
}

func (svc *profileService) Get(ctx context.Context, userID int64) (domain.CateringProfile, error) {
	return svc.repo.GetByUserID(ctx, userID)
}

// Save 有则更新，没有就建一份
func (svc *profileService) Save(ctx context.Context, profile domain.CateringProfile) (domain.CateringProfile, error) {
	err := svc.repo.Update(ctx, profile)
	if err == nil {
		return svc.repo.GetByUserID(ctx, profile.UserID)
	}
	if !errors.Is(err, errs.ErrProfileNotFound) {
		return domain.CateringProfile{}, err
	}
	return svc.repo.Create(ctx, profile)
}

// NewService 创建资料服务
func NewService(repo repository.CateringProfileRepository) Service {
	return &profileService{repo: repo}
}
