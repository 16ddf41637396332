package models

import "time"

// Pos is a table session: an open tab at a physical table, not a device.
// While a Pos is not Closed, its reference code is unique within the business
// so two live tables can never share a code. Closing requires ClosedAt and
// ClosedBy together and is refused while any referenced order is still Open.
type Pos struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	PosReferenceCode string     `gorm:"not null;index" json:"posReferenceCode"`
	Status           string     `gorm:"not null;default:'Occupied'" json:"status"`
	Guests           int        `json:"guests,omitempty"`
	ClientName       string     `json:"clientName,omitempty"`
	OpenedAt         time.Time  `gorm:"not null;autoCreateTime" json:"openedAt"`
	ClosedAt         *time.Time `json:"closedAt,omitempty"`
	OpenedByID       uint       `gorm:"not null;index" json:"openedBy"`
	ClosedByID       *uint      `json:"closedBy,omitempty"`
	Orders           []Order    `gorm:"foreignKey:PosID" json:"orders"`
	BusinessID       uint       `gorm:"not null;index" json:"business"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// TableName pins the table to "pos"; the default pluralizer mangles it.
func (Pos) TableName() string { return "pos" }
