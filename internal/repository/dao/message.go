package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type messageDAO struct {
	db *egorm.Component
}

func (dao *messageDAO) Create(ctx context.Context, msg Message) (Message, error) {
	if msg.SentAt == 0 {
		msg.SentAt = time.Now().UnixMilli()
	}
	err := dao.db.WithContext(ctx).Create(&msg).Error
	if err != nil {
		return Message{}, err
	}
	return msg, nil
}

func (dao *messageDAO) FindByCaterer(ctx context.Context, catererID int64) ([]Message, error) {
	var msgs []Message
	err := dao.db.WithContext(ctx).
		Where("caterer_id = ?", catererID).
		Order("sent_at DESC, id DESC").
		Find(&msgs).Error
	return msgs, err
}

func (dao *messageDAO) CountByCaterer(ctx context.Context, catererID int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Message{}).
		Where("caterer_id = ?", catererID).
		Count(&cnt).Error
	return cnt, err
}

// NewMessageDAO 创建消息审计DAO实例
func NewMessageDAO(db *egorm.Component) MessageDAO {
	return &messageDAO{db: db}
}

// Message 消息审计表。一行对应一次成功投递，只追加。
// contact_id 是对联系人的弱引用：联系人删除后行保留，
// recipient_name/recipient_phone 快照保证历史可读。
type Message struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	CatererID      int64  `gorm:"type:BIGINT;NOT NULL;index:idx_caterer_sent,priority:1;comment:'发送方商家ID'"`
	ContactID      int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;comment:'关联联系人ID，0表示手工收件人'"`
	RecipientName  string `gorm:"type:VARCHAR(128);comment:'收件人姓名快照'"`
	RecipientPhone string `gorm:"type:VARCHAR(20);comment:'收件人号码快照'"`
	MessageText    string `gorm:"type:TEXT;NOT NULL"`
	ContactMethod  string `gorm:"type:ENUM('EMAIL','SMS','CALL');NOT NULL;comment:'实际使用的发送渠道'"`
	Status         string `gorm:"type:ENUM('SENT','FAILED');NOT NULL;DEFAULT:'SENT'"`
	SentAt         int64  `gorm:"type:BIGINT;NOT NULL;index:idx_caterer_sent,priority:2,sort:desc;comment:'发送时间，毫秒'"`
}

func (Message) TableName() string {
	return "messages"
}
