package models

import "time"

// User is a staff member of a business. Referenced by Pos.OpenedBy/ClosedBy
// and Order.UserID; deletion is blocked while any such open reference exists.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Username      string     `gorm:"not null;unique" json:"username"`
	Password      string     `gorm:"not null" json:"-"`
	Role          string     `gorm:"not null" json:"role"`
	FirstName     string     `gorm:"not null" json:"firstName"`
	LastName      string     `gorm:"not null" json:"lastName"`
	Email         string     `gorm:"not null;unique" json:"email"`
	PhoneNumber   string     `gorm:"not null" json:"phoneNumber"`
	Address       string     `json:"address,omitempty"`
	JoiningDate   *time.Time `json:"joiningDate,omitempty"`
	TerminateDate *time.Time `json:"terminateDate,omitempty"`
	Active        bool       `gorm:"not null;default:true" json:"active"`
	OnDuty        bool       `gorm:"not null;default:false" json:"onDuty"`
	BusinessID    uint       `gorm:"not null;index" json:"business"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
