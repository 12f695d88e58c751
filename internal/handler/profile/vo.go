package profile

type SaveProfileReq struct {
	BusinessName   string `json:"businessName"`
	Description    string `json:"description"`
	PrimaryPhone   string `json:"primaryPhone"`
	AlternatePhone string `json:"alternatePhone"`
	Email          string `json:"email"`
	StreetAddress  string `json:"streetAddress"`
	Area           string `json:"area"`
	City           string `json:"city"`
	Landmark       string `json:"landmark"`
	ServiceRadius  int    `json:"serviceRadius"`
	ImageURL       string `json:"imageUrl"`
	BusinessPhotos string `json:"businessPhotos"`
}

type ProfileVO struct {
	ID             int64   `json:"id"`
	BusinessName   string  `json:"businessName"`
	Description    string  `json:"description"`
	PrimaryPhone   string  `json:"primaryPhone"`
	AlternatePhone string  `json:"alternatePhone"`
	Email          string  `json:"email"`
	StreetAddress  string  `json:"streetAddress"`
	Area           string  `json:"area"`
	City           string  `json:"city"`
	Landmark       string  `json:"landmark"`
	ServiceRadius  int     `json:"serviceRadius"`
	Rating         float64 `json:"rating"`
	ImageURL       string  `json:"imageUrl"`
	BusinessPhotos string  `json:"businessPhotos"`
}
