package models

import (
	"time"
)

// User is an account created via phone OTP or Google sign-in.
type User struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phoneNumber"` // digits-only canonical form
	GoogleID    string    `gorm:"type:varchar(100);index" json:"-"`
	Email       string    `gorm:"type:varchar(100)" json:"email"`
	Name        string    `gorm:"type:varchar(100)" json:"name"`
	Picture     string    `gorm:"type:varchar(255)" json:"picture"`
	DateOfBirth string    `gorm:"type:varchar(30)" json:"dateOfBirth"`
	Location    string    `gorm:"type:varchar(100)" json:"location"`
	Occupation  string    `gorm:"type:varchar(100)" json:"occupation"`
	Education   string    `gorm:"type:varchar(100)" json:"education"`
	Bio         string    `gorm:"type:text" json:"bio"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return u.PhoneNumber
}
