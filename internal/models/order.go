package models

import "time"

// Order belongs to a Pos and a User. An order with billing status Open keeps
// its Pos from being closed or deleted and its User from being deleted.
type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	OrderTime     time.Time      `gorm:"not null;autoCreateTime" json:"orderTime"`
	TotalPrice    float64        `gorm:"not null" json:"totalPrice"`
	BillingStatus string         `gorm:"not null;default:'Open'" json:"billingStatus"`
	OrderStatus   string         `gorm:"not null;default:'Sent'" json:"orderStatus"`
	PosID         uint           `gorm:"not null;index" json:"pos"`
	UserID        uint           `gorm:"not null;index" json:"user"`
	BusinessGoods []BusinessGood `gorm:"many2many:order_business_goods" json:"businessGoods"`
	BusinessID    uint           `gorm:"not null;index" json:"business"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
