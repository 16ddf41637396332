package models

import "time"

// Business is the owning tenant for every other entity. Users, suppliers,
// goods, tables, orders and printers all carry its id as a foreign key; there
// is no embedding.
type Business struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TradeName     string `gorm:"not null;index" json:"tradeName"`
	LegalName     string `gorm:"not null;unique" json:"legalName"`
	Email         string `gorm:"not null;unique" json:"email"`
	Password      string `gorm:"not null" json:"-"`
	Country       string `gorm:"not null" json:"country"`
	Region        string `json:"region,omitempty"`
	City          string `gorm:"not null" json:"city"`
	Address       string `gorm:"not null" json:"address"`
	PostCode      string `gorm:"not null" json:"postCode"`
	PhoneNumber   string `gorm:"not null" json:"phoneNumber"`
	TaxNumber     string `gorm:"not null;unique" json:"taxNumber"`
	ContactPerson string `gorm:"not null" json:"contactPerson"`
	Subscription  string `gorm:"not null;default:'Free'" json:"subscription"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
