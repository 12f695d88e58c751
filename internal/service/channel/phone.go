package channel

import "strings"

// DefaultCountryCode 缺省国家码。主要市场是印度，
// 用户录入的号码基本都是本地10位号。
const DefaultCountryCode = "+91"

// normalizePhone 把号码补成E.164形式：
// 已带 "+" 前缀的原样使用，否则拼上国家码。
func normalizePhone(phone, countryCode string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return countryCode + phone
}
