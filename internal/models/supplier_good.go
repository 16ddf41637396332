package models

import "time"

// SupplierGood is a raw input purchased from a supplier and consumed by
// business goods through SupplierGoodUsage rows. Name is unique within the
// owning business. The measurement unit must belong to the unit set of the
// measurement type (see MeasurementUnits).
type SupplierGood struct {
	ID                       uint    `gorm:"primaryKey" json:"id"`
	Name                     string  `gorm:"not null;index:idx_suppliergood_business_name,unique,priority:2" json:"name"`
	Keyword                  string  `gorm:"not null" json:"keyword"`
	Description              string  `json:"description,omitempty"`
	Category                 string  `gorm:"not null" json:"category"`
	MeasurementType          string  `gorm:"not null" json:"measurementType"`
	MeasurementUnit          string  `gorm:"not null" json:"measurementUnit"`
	MeasurementValue         float64 `gorm:"not null" json:"measurementValue"`
	WholePrice               float64 `gorm:"not null" json:"wholePrice"`
	PricePerMeasurementUnit  float64 `gorm:"not null" json:"pricePerMeasurementUnit"`
	VirtualQuantityAvailable float64 `gorm:"not null;default:0" json:"virtualQuantityAvailable"`
	RealQuantityAvailable    float64 `gorm:"not null;default:0" json:"realQuantityAvailable"`
	MinimumQuantityRequired  float64 `gorm:"not null" json:"minimumQuantityRequired"`
	CurrentlyInUse           bool    `gorm:"not null;default:true" json:"currentlyInUse"`
	SupplierID               uint    `gorm:"not null;index" json:"supplier"`
	BusinessID               uint    `gorm:"not null;index:idx_suppliergood_business_name,unique,priority:1" json:"business"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}
