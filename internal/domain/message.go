package domain

import "time"

// MessageStatus 投递状态
type MessageStatus string

const (
	MessageStatusSent   MessageStatus = "SENT"
	MessageStatusFailed MessageStatus = "FAILED"
)

func (s MessageStatus) String() string {
	return string(s)
}

// Message 消息审计记录。这不是聊天系统：每行对应一次成功投递，
// 只追加、不更新、不删除，用于消息历史与追溯。
type Message struct {
	ID        int64 `json:"id"`
	CatererID int64 `json:"catererId"`
	// ContactID 关联的联系人，0 表示手工填写的收件人。
	// 弱引用：联系人之后被删除也不级联删除审计记录，
	// 快照字段保证历史可读。
	ContactID      int64         `json:"contactId"`
	RecipientName  string        `json:"recipientName"`  // 收件人姓名快照
	RecipientPhone string        `json:"recipientPhone"` // 收件人号码快照
	MessageText    string        `json:"messageText"`
	ContactMethod  ContactMethod `json:"contactMethod"` // 实际使用的发送渠道
	Status         MessageStatus `json:"status"`
	SentAt         time.Time     `json:"sentAt"`
}

// DashboardSummary 首页统计卡片数据
type DashboardSummary struct {
	TotalContacts int64 `json:"totalContacts"`
	LowStockCount int64 `json:"lowStockCount"`
	TotalMessages int64 `json:"totalMessages"`
}
