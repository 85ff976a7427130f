package models

// User is the single implicit owner of all study data. There is no
// authentication; the record exists to carry display preferences.
type User struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Username   string `gorm:"unique;not null" json:"username"`
	Name       string `gorm:"not null" json:"name"`
	AppColor   string `gorm:"default:blue" json:"appColor"`
	IsDarkMode bool   `gorm:"default:false" json:"isDarkMode"`
}

// UserPatch lists the editable User fields
type UserPatch struct {
	Name       *string `json:"name"`
	AppColor   *string `json:"appColor"`
	IsDarkMode *bool   `json:"isDarkMode"`
}
