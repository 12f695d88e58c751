package errs

import "errors"

var (
	// ErrInvalidParameter 参数非法
	ErrInvalidParameter = errors.New("参数非法")

	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("用户不存在")
	// ErrUserDuplicate 邮箱已被注册
	ErrUserDuplicate = errors.New("邮箱已被注册")
	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = errors.New("邮箱或密码错误")

	// ErrContactNotFound 联系人不存在
	ErrContactNotFound = errors.New("联系人不存在")
	// ErrContactOwnership 联系人不属于当前餐饮商家
	ErrContactOwnership = errors.New("联系人不属于当前餐饮商家")

	// ErrInventoryItemNotFound 库存条目不存在
	ErrInventoryItemNotFound = errors.New("库存条目不存在")

	// ErrCalendarEventNotFound 日程不存在
	ErrCalendarEventNotFound = errors.New("日程不存在")
	// ErrPastDate 不允许操作过去的日期
	ErrPastDate = errors.New("不允许操作过去的日期")

	// ErrProfileNotFound 商家资料不存在
	ErrProfileNotFound = errors.New("商家资料不存在")

	// ErrSendMessageFailed 消息发送失败
	ErrSendMessageFailed = errors.New("消息发送失败")
	// ErrNoAvailableChannel 没有可用的发送渠道
	ErrNoAvailableChannel = errors.New("没有可用的发送渠道")
	// ErrEmptyDestination 所选渠道缺少可用的目标地址
	ErrEmptyDestination = errors.New("所选渠道缺少可用的目标地址")

	// ErrUploadFailed 文件上传失败
	ErrUploadFailed = errors.New("文件上传失败")
)
