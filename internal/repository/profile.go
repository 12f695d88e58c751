package repository

import (
	"context"

	"caterfind/internal/domain"
	"caterfind/internal/repository/dao"
)

type cateringProfileRepository struct {
	dao dao.CateringProfileDAO
}

func (repo *cateringProfileRepository) Create(ctx context.Context, profile domain.CateringProfile) (domain.CateringProfile, error) {
	created, err := repo.dao.Create(ctx, repo.toEntity(profile))
	if err != nil {
		return domain.CateringProfile{}, err
	}
	return repo.toDomain(created), nil
}

func (repo *cateringProfileRepository) Update(ctx context.Context, profile domain.CateringProfile) error {
	return repo.dao.Update(ctx, repo.toEntity(profile))
}

func (repo *cateringProfileRepository) GetByUserID(ctx context.Context, userID int64) (domain.CateringProfile, error) {
	profile, err := repo.dao.GetByUserID(ctx, userID)
	if err != nil {
		return domain.CateringProfile{}, err
	}
	return repo.toDomain(profile), nil
}

func (repo *cateringProfileRepository) toEntity(profile domain.CateringProfile) dao.CateringProfile {
	return dao.CateringProfile{
		ID:             profile.ID,
		UserID:         profile.UserID,
		BusinessName:   profile.BusinessName,
		Description:    profile.Description,
		PrimaryPhone:   profile.PrimaryPhone,
		AlternatePhone: profile.AlternatePhone,
		Email:          profile.Email,
		StreetAddress:  profile.StreetAddress,
		Area:           profile.Area,
		City:           profile.City,
		Landmark:       profile.Landmark,
		ServiceRadius:  profile.ServiceRadius,
		Rating:         profile.Rating,
		ImageURL:       profile.ImageURL,
		BusinessPhotos: profile.BusinessPhotos,
	}
}

func (repo *cateringProfileRepository) toDomain(profile dao.CateringProfile) domain.CateringProfile {
	return domain.CateringProfile{
		ID:             profile.ID,
		UserID:         profile.UserID,
		BusinessName:   profile.BusinessName,
		Description:    profile.Description,
		PrimaryPhone:   profile.PrimaryPhone,
		AlternatePhone: profile.AlternatePhone,
		Email:          profile.Email,
		StreetAddress:  profile.StreetAddress,
		Area:           profile.Area,
		City:           profile.City,
		Landmark:       profile.Landmark,
		ServiceRadius:  profile.ServiceRadius,
		Rating:         profile.Rating,
		ImageURL:       profile.ImageURL,
		BusinessPhotos: profile.BusinessPhotos,
		Ctime:          profile.Ctime,
		Utime:          profile.Utime,
	}
}

// NewCateringProfileRepository 创建商家资料仓储实例
func NewCateringProfileRepository(dao dao.CateringProfileDAO) CateringProfileRepository {
	return &cateringProfileRepository{dao: dao}
}
