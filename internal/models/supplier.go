package models

import "time"

// Supplier sells raw goods to a business. Owns its SupplierGoods: deleting a
// supplier cascades over them.
// Legal name, email and tax number are unique within the owning business.
type Supplier struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TradeName     string `gorm:"not null" json:"tradeName"`
	LegalName     string `gorm:"not null;index:idx_supplier_business_legal,unique,priority:2" json:"legalName"`
	Country       string `gorm:"not null" json:"country"`
	Region        string `json:"region,omitempty"`
	City          string `gorm:"not null" json:"city"`
	Address       string `gorm:"not null" json:"address"`
	PostCode      string `gorm:"not null" json:"postCode"`
	Email         string `gorm:"not null" json:"email"`
	PhoneNumber   string `gorm:"not null" json:"phoneNumber"`
	TaxNumber     string `gorm:"not null" json:"taxNumber"`
	ContactPerson string `json:"contactPerson,omitempty"`
	BusinessID    uint   `gorm:"not null;index:idx_supplier_business_legal,unique,priority:1" json:"business"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
