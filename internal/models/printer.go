package models

import "time"

// Printer is a network receipt/kitchen printer configured per business and
// assigned to one or more tables.
type Printer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	IPAddress   string    `gorm:"not null" json:"ipAddress"`
	Port        int       `gorm:"not null" json:"port"`
	PrintForPos []Pos     `gorm:"many2many:printer_pos" json:"printForPos"`
	BusinessID  uint      `gorm:"not null;index" json:"business"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
