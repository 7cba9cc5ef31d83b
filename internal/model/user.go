package model

import "time"

// User is an account registered with the bridge host
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserName     string    `json:"userName" gorm:"uniqueIndex;not null"`
	PhoneNumber  string    `json:"phoneNumber" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	NationalCode string    `json:"nationalCode"`
	AvatarURL    string    `json:"avatarUrl"`
	IPAddress    string    `json:"ipAddress"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DisplayName returns the full name when present, otherwise the username
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.UserName
}
