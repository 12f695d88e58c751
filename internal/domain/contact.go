package domain

import (
	"fmt"

	"caterfind/internal/errs"
)

// ContactMethod 联系渠道
type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "EMAIL" // 电子邮件
	ContactMethodSMS   ContactMethod = "SMS"   // 短信
	ContactMethodCall  ContactMethod = "CALL"  // 语音电话
)

func (m ContactMethod) String() string {
	return string(m)
}

func (m ContactMethod) IsValid() bool {
	switch m {
	case ContactMethodEmail, ContactMethodSMS, ContactMethodCall:
		return true
	default:
		return false
	}
}

// Contact 联系人领域模型。仅用于商家内部协调（员工、供应商、经销商等），
// 不是客户活动联系人。
type Contact struct {
	ID        int64         `json:"id"`
	CatererID int64         `json:"catererId"` // 归属的商家ID，所有读写都按它校验
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email"`
	Preferred ContactMethod `json:"preferredContactMethod"` // 群发时按此渠道发送
	Labels    []string      `json:"labels"`
	Ctime     int64         `json:"ctime"`
	Utime     int64         `json:"utime"`
}

func (c *Contact) Validate() error {
	if c.CatererID <= 0 {
		return fmt.Errorf("%w: CatererID = %d", errs.ErrInvalidParameter, c.CatererID)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: Name 不能为空", errs.ErrInvalidParameter)
	}
	if !c.Preferred.IsValid() {
		return fmt.Errorf("%w: PreferredContactMethod = %q", errs.ErrInvalidParameter, c.Preferred)
	}
	return nil
}

// ContactLabel 联系人标签（员工/厨师/帮工/供应商/经销商）
type ContactLabel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
