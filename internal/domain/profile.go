package domain

// CateringProfile 商家经营资料，与 User 一对一，仅 CATERER 角色持有。
type CateringProfile struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	BusinessName   string  `json:"businessName"`
	Description    string  `json:"description"`
	PrimaryPhone   string  `json:"primaryPhone"`
	AlternatePhone string  `json:"alternatePhone"`
	Email          string  `json:"email"`
	StreetAddress  string  `json:"streetAddress"`
	Area           string  `json:"area"`
	City           string  `json:"city"`
	Landmark       string  `json:"landmark"`
	ServiceRadius  int     `json:"serviceRadius"` // 服务半径，公里
	Rating         float64 `json:"rating"`
	ImageURL       string  `json:"imageUrl"`
	BusinessPhotos string  `json:"businessPhotos"` // 逗号分隔的图片URL列表
	Ctime          int64   `json:"ctime"`
	Utime          int64   `json:"utime"`
}
