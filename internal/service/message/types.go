package message

import (
	"context"

	"caterfind/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/message.mock.go -package=messagemocks Service

// Service 消息投递与历史查询。群发和补货是两个结构不同的入口，
// 但渠道选择、发送、审计走同一条流水线。
type Service interface {
	// SendBroadcast 把一条消息群发给多个联系人，按每个联系人的
	// 首选渠道发送。单个收件人解析失败或发送失败只跳过不中断，
	// 返回成功送出的条数。
	SendBroadcast(ctx context.Context, catererID int64, messageText string, contactIDs []int64) (int64, error)
	// SendReorder 向经销商发送单收件人补货请求，返回是否送达
	SendReorder(ctx context.Context, req domain.ReorderRequest) (bool, error)
	// ListHistory 按发送时间倒序返回消息历史，
	// 收件人显示名优先取联系人当前姓名，联系人已删除时回退到快照
	ListHistory(ctx context.Context, catererID int64) ([]domain.Message, error)
}
