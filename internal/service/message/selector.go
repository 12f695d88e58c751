package message

import "caterfind/internal/domain"

// SelectChannel 渠道选择，纯函数。按顺序应用三条规则：
//  1. 群发：严格按联系人的首选渠道，目的地址按渠道取邮箱或手机号。
//     首选渠道对应的地址为空也不改道，让适配器自己失败，
//     保证"尊重联系人声明的偏好"这条规则不被悄悄绕过。
//  2. 补货且关联了联系人：按该联系人的首选渠道，同样的三向映射。
//  3. 补货且未关联联系人：默认短信，发到手工填写的号码。
//
// 这一层没有错误：任何输入都能选出一个渠道和一个目的地址，
// 地址为空的情况由下游适配器兜住。
func SelectChannel(recipient domain.Recipient, dispatchCtx domain.DispatchContext) (domain.ContactMethod, string) {
	if dispatchCtx == domain.DispatchReorder && recipient.ContactID == 0 {
		return domain.ContactMethodSMS, recipient.Phone
	}
	switch recipient.Preferred {
	case domain.ContactMethodEmail:
		return domain.ContactMethodEmail, recipient.Email
	case domain.ContactMethodSMS:
		return domain.ContactMethodSMS, recipient.Phone
	case domain.ContactMethodCall:
		return domain.ContactMethodCall, recipient.Phone
	default:
		// 库里存的是合法枚举，走到这里说明数据异常，
		// 原样上报，由渠道分发器转成失败
		return recipient.Preferred, ""
	}
}
