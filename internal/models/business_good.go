package models

import "time"

// BusinessGood is a sellable menu item composed of zero or more supplier
// goods. Name is unique within the owning business.
type BusinessGood struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	Name              string             `gorm:"not null;index:idx_businessgood_business_name,unique,priority:2" json:"name"`
	Keyword           string             `gorm:"not null" json:"keyword"`
	Description       string             `json:"description,omitempty"`
	Category          string             `gorm:"not null" json:"category"`
	SubCategory       string             `json:"subCategory,omitempty"`
	Available         bool               `gorm:"not null" json:"available"`
	SellingPrice      float64            `gorm:"not null" json:"sellingPrice"`
	ManufacturingCost float64            `json:"manufacturingCost,omitempty"`
	QuantityAvailable float64            `json:"quantityAvailable,omitempty"`
	SupplierGoods     []SupplierGoodUsage `gorm:"foreignKey:BusinessGoodID" json:"supplierGoods"`
	BusinessID        uint               `gorm:"not null;index:idx_businessgood_business_name,unique,priority:1" json:"business"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// SupplierGoodUsage links one supplier good into a business good's recipe.
// It is a weak reference: deleting the supplier good removes the usage row and
// leaves the business good itself untouched. A supplier good may appear at
// most once per business good.
type SupplierGoodUsage struct {
	ID                  uint    `gorm:"primaryKey" json:"-"`
	BusinessGoodID      uint    `gorm:"not null;index:idx_usage_good_supplier,unique,priority:1" json:"-"`
	SupplierGoodID      uint    `gorm:"not null;index:idx_usage_good_supplier,unique,priority:2;index" json:"supplierGood"`
	MeasurementUsed     string  `json:"measurementUsed,omitempty"`
	QuantityNeeded      float64 `json:"quantityNeeded,omitempty"`
	QuantityNeededPrice float64 `json:"quantityNeededPrice,omitempty"`
}
