package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caterfind/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type cateringProfileDAO struct {
	db *egorm.Component
}

func (dao *cateringProfileDAO) Create(ctx context.Context, profile CateringProfile) (CateringProfile, error) {
	now := time.Now().UnixMilli()
	profile.Ctime, profile.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&profile).Error
	if err != nil {
		return CateringProfile{}, err
	}
	return profile, nil
}

func (dao *cateringProfileDAO) Update(ctx context.Context, profile CateringProfile) error {
	res := dao.db.WithContext(ctx).Model(&CateringProfile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"business_name":   profile.BusinessName,
			"description":     profile.Description,
			"primary_phone":   profile.PrimaryPhone,
			"alternate_phone": profile.AlternatePhone,
			"email":           profile.Email,
			"street_address":  profile.StreetAddress,
			"area":            profile.Area,
			"city":            profile.City,
			"landmark":        profile.Landmark,
			"service_radius":  profile.ServiceRadius,
			"image_url":       profile.ImageURL,
			"business_photos": profile.BusinessPhotos,
			"utime":           time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("%w: userID=%d", errs.ErrProfileNotFound, profile.UserID)
	}
	return nil
}

func (dao *cateringProfileDAO) GetByUserID(ctx context.Context, userID int64) (CateringProfile, error) {
	var profile CateringProfile
	err := dao.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CateringProfile{}, fmt.Errorf("%w: userID=%d", errs.ErrProfileNotFound, userID)
		}
		return CateringProfile{}, err
	}
	return profile, nil
}

// NewCateringProfileDAO 创建商家资料DAO实例
func NewCateringProfileDAO(db *egorm.Component) CateringProfileDAO {
	return &cateringProfileDAO{db: db}
}

// CateringProfile 商家经营资料表，与用户一对一
type CateringProfile struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	UserID         int64   `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uk_user_id"`
	BusinessName   string  `gorm:"type:VARCHAR(128);NOT NULL"`
	Description    string  `gorm:"type:TEXT"`
	PrimaryPhone   string  `gorm:"type:VARCHAR(20)"`
	AlternatePhone string  `gorm:"type:VARCHAR(20)"`
	Email          string  `gorm:"type:VARCHAR(100)"`
	StreetAddress  string  `gorm:"type:VARCHAR(255)"`
	Area           string  `gorm:"type:VARCHAR(100)"`
	City           string  `gorm:"type:VARCHAR(50)"`
	Landmark       string  `gorm:"type:VARCHAR(100)"`
	ServiceRadius  int     `gorm:"comment:'服务半径，公里'"`
	Rating         float64 `gorm:"comment:'平均评分'"`
	ImageURL       string  `gorm:"type:VARCHAR(255)"`
	BusinessPhotos string  `gorm:"type:TEXT;comment:'逗号分隔的图片URL列表'"`
	Ctime          int64
	Utime          int64
}

func (CateringProfile) TableName() string {
	return "catering_profile"
}
