package model

import "time"

// UserType is the role assigned to a user at registration.
type UserType string

const (
	UserTypeAdmin UserType = "Admin"
	UserTypeUser  UserType = "User"
)

// User represents a registered account holder.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Document       string    `json:"document" gorm:"size:20;not null"`
	FirstName      string    `json:"firstName" gorm:"size:50;not null"`
	LastName       string    `json:"lastName" gorm:"size:50;not null"`
	Address        string    `json:"address" gorm:"size:200;not null"`
	PhoneNumber    string    `json:"phoneNumber" gorm:"size:20"`
	Photo          string    `json:"photo" gorm:"size:255"` // Relative path, empty when no photo
	CityID         int       `json:"cityId" gorm:"index"`
	UserType       UserType  `json:"userType" gorm:"type:varchar(10);not null;default:'User'"`
	EmailConfirmed bool      `json:"emailConfirmed" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FullName joins first and last name for display and filtering.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
