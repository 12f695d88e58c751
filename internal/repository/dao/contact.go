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

type contactDAO struct {
	db *egorm.Component
}

func (dao *contactDAO) Create(ctx context.Context, contact Contact, labelNames []string) (Contact, error) {
	now := time.Now().UnixMilli()
	contact.Ctime, contact.Utime = now, now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}
		return dao.bindLabels(tx, contact.ID, labelNames)
	})
	if err != nil {
		return Contact{}, err
	}
	return contact, nil
}

func (dao *contactDAO) Update(ctx context.Context, contact Contact, labelNames []string) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Contact{}).
			Where("id = ?", contact.ID).
			Updates(map[string]any{
				"name":                     contact.Name,
				"phone":                    contact.Phone,
				"email":                    contact.Email,
				"preferred_contact_method": contact.PreferredContactMethod,
				"utime":                    time.Now().UnixMilli(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return fmt.Errorf("%w: id=%d", errs.ErrContactNotFound, contact.ID)
		}
		if labelNames == nil {
			return nil
		}
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&ContactLabelMapping{}).Error; err != nil {
			return err
		}
		return dao.bindLabels(tx, contact.ID, labelNames)
	})
}

// bindLabels 按标签名绑定，未知标签名直接忽略
func (dao *contactDAO) bindLabels(tx *gorm.DB, contactID int64, labelNames []string) error {
	if len(labelNames) == 0 {
		return nil
	}
	var labels []ContactLabel
	if err := tx.Where("label_name IN ?", labelNames).Find(&labels).Error; err != nil {
		return err
	}
	mappings := make([]ContactLabelMapping, 0, len(labels))
	for _, label := range labels {
		mappings = append(mappings, ContactLabelMapping{
			ContactID: contactID,
			LabelID:   label.ID,
		})
	}
	if len(mappings) == 0 {
		return nil
	}
	return tx.Create(&mappings).Error
}

func (dao *contactDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&ContactLabelMapping{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Contact{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return fmt.Errorf("%w: id=%d", errs.ErrContactNotFound, id)
		}
		return nil
	})
}

func (dao *contactDAO) GetByID(ctx context.Context, id int64) (Contact, error) {
	var contact Contact
	err := dao.db.WithContext(ctx).First(&contact, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Contact{}, fmt.Errorf("%w: id=%d", errs.ErrContactNotFound, id)
		}
		return Contact{}, err
	}
	return contact, nil
}

func (dao *contactDAO) FindByCaterer(ctx context.Context, catererID int64) ([]Contact, error) {
	var contacts []Contact
	err := dao.db.WithContext(ctx).
		Where("caterer_id = ?", catererID).
		Order("id ASC").
		Find(&contacts).Error
	return contacts, err
}

func (dao *contactDAO) CountByCaterer(ctx context.Context, catererID int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Contact{}).
		Where("caterer_id = ?", catererID).
		Count(&cnt).Error
	return cnt, err
}

func (dao *contactDAO) GetLabelNames(ctx context.Context, contactID int64) ([]string, error) {
	var names []string
	err := dao.db.WithContext(ctx).Model(&ContactLabel{}).
		Select("contact_labels.label_name").
		Joins("JOIN contact_label_mapping ON contact_label_mapping.label_id = contact_labels.id").
		Where("contact_label_mapping.contact_id = ?", contactID).
		Scan(&names).Error
	return names, err
}

// NewContactDAO 创建联系人DAO实例
func NewContactDAO(db *egorm.Component) ContactDAO {
	return &contactDAO{db: db}
}

// Contact 联系人表
type Contact struct {
	ID                     int64  `gorm:"primaryKey;autoIncrement"`
	CatererID              int64  `gorm:"type:BIGINT;NOT NULL;index:idx_caterer_id;comment:'归属商家ID，所有读写按它校验'"`
	Name                   string `gorm:"type:VARCHAR(128);NOT NULL"`
	Phone                  string `gorm:"type:VARCHAR(20)"`
	Email                  string `gorm:"type:VARCHAR(128)"`
	PreferredContactMethod string `gorm:"type:ENUM('EMAIL','SMS','CALL');NOT NULL;DEFAULT:'EMAIL';comment:'群发时使用的渠道'"`
	Ctime                  int64
	Utime                  int64
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactLabel 联系人标签表（员工/厨师/帮工/供应商/经销商）
type ContactLabel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	LabelName string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_label_name"`
}

func (ContactLabel) TableName() string {
	return "contact_labels"
}

// ContactLabelMapping 联系人与标签的多对多关联表
type ContactLabelMapping struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ContactID int64 `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uk_contact_label,priority:1"`
	LabelID   int64 `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uk_contact_label,priority:2"`
}

func (ContactLabelMapping) TableName() string {
	return "contact_label_mapping"
}
