package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
	"github.com/rmartins/tabletrack/internal/validation"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService { return &OrderService{db: db} }

type CreateOrderInput struct {
	TotalPrice    float64 `json:"totalPrice"`
	BillingStatus string  `json:"billingStatus"`
	OrderStatus   string  `json:"orderStatus"`
	Pos           uint    `json:"pos"`
	User          uint    `json:"user"`
	BusinessGoods []uint  `json:"businessGoods"`
	Business      uint    `json:"business"`
}

type UpdateOrderInput struct {
	TotalPrice    *float64 `json:"totalPrice"`
	BillingStatus *string  `json:"billingStatus"`
	OrderStatus   *string  `json:"orderStatus"`
	BusinessGoods *[]uint  `json:"businessGoods"`
}

func (s *OrderService) List() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("BusinessGoods").Find(&orders).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return orders, nil
}

func (s *OrderService) ListByBusiness(businessID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("BusinessGoods").Where("business_id = ?", businessID).Find(&orders).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return orders, nil
}

func (s *OrderService) ListByPos(posID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("BusinessGoods").Where("pos_id = ?", posID).Find(&orders).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return orders, nil
}

func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("BusinessGoods").First(&order, id).Error; err != nil {
		return nil, translate(err, "Order not found!", "")
	}
	return &order, nil
}

func (s *OrderService) loadGoods(ids []uint) ([]models.BusinessGood, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var goods []models.BusinessGood
	if err := s.db.Where("id IN ?", ids).Find(&goods).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	if len(goods) != len(ids) {
		return nil, NotFoundf("Business good not found!")
	}
	return goods, nil
}

// Create attaches a new order to an existing, still-open pos.
func (s *OrderService) Create(in CreateOrderInput) (*models.Order, error) {
	var missing validation.Missing
	missing.RequirePositive("totalPrice", in.TotalPrice)
	missing.RequireID("pos", in.Pos)
	missing.RequireID("user", in.User)
	missing.RequireID("business", in.Business)
	if !missing.Empty() {
		return nil, Validationf("%s", missing.Message())
	}
	billing := in.BillingStatus
	if billing == "" {
		billing = models.BillingStatusOpen
	}
	if !models.OneOf(billing, models.BillingStatuses) {
		return nil, Validationf("BillingStatus must be one of %s!", strings.Join(models.BillingStatuses, ", "))
	}
	status := in.OrderStatus
	if status == "" {
		status = models.OrderStatusSent
	}
	if !models.OneOf(status, models.OrderStatuses) {
		return nil, Validationf("OrderStatus must be one of %s!", strings.Join(models.OrderStatuses, ", "))
	}
	var pos models.Pos
	if err := s.db.First(&pos, in.Pos).Error; err != nil {
		return nil, translate(err, "Pos not found!", "")
	}
	if pos.Status == models.PosStatusClosed {
		return nil, Blockedf("Cannot add orders to a closed POS!")
	}
	goods, err := s.loadGoods(in.BusinessGoods)
	if err != nil {
		return nil, err
	}
	order := models.Order{
		TotalPrice:    in.TotalPrice,
		BillingStatus: billing,
		OrderStatus:   status,
		PosID:         in.Pos,
		UserID:        in.User,
		BusinessGoods: goods,
		BusinessID:    in.Business,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return &order, nil
}

func (s *OrderService) Update(id uint, in UpdateOrderInput) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, translate(err, "Order not found!", "")
	}

	if in.TotalPrice != nil {
		order.TotalPrice = *in.TotalPrice
	}
	if in.BillingStatus != nil {
		if !models.OneOf(*in.BillingStatus, models.BillingStatuses) {
			return nil, Validationf("BillingStatus must be one of %s!", strings.Join(models.BillingStatuses, ", "))
		}
		order.BillingStatus = *in.BillingStatus
	}
	if in.OrderStatus != nil {
		if !models.OneOf(*in.OrderStatus, models.OrderStatuses) {
			return nil, Validationf("OrderStatus must be one of %s!", strings.Join(models.OrderStatuses, ", "))
		}
		order.OrderStatus = *in.OrderStatus
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if in.BusinessGoods != nil {
			goods, err := s.loadGoods(*in.BusinessGoods)
			if err != nil {
				return err
			}
			if err := tx.Model(&order).Association("BusinessGoods").Replace(goods); err != nil {
				return Internalf("%s", err.Error())
			}
		}
		if err := tx.Omit("BusinessGoods").Save(&order).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Delete(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, translate(err, "Order not found!", "")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Association("BusinessGoods").Clear(); err != nil {
			return Internalf("%s", err.Error())
		}
		if err := tx.Delete(&models.Order{}, id).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
