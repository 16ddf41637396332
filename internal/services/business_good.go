package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
	"github.com/rmartins/tabletrack/internal/validation"
)

type BusinessGoodService struct {
	db        *gorm.DB
	integrity *Integrity
}

func NewBusinessGoodService(db *gorm.DB, integrity *Integrity) *BusinessGoodService {
	return &BusinessGoodService{db: db, integrity: integrity}
}

// SupplierGoodUsageInput is one recipe entry of a business good.
type SupplierGoodUsageInput struct {
	SupplierGood        uint    `json:"supplierGood"`
	MeasurementUsed     string  `json:"measurementUsed"`
	QuantityNeeded      float64 `json:"quantityNeeded"`
	QuantityNeededPrice float64 `json:"quantityNeededPrice"`
}

type CreateBusinessGoodInput struct {
	Name              string                   `json:"name"`
	Keyword           string                   `json:"keyword"`
	Description       string                   `json:"description"`
	Category          string                   `json:"category"`
	SubCategory       string                   `json:"subCategory"`
	Available         *bool                    `json:"available"`
	SellingPrice      float64                  `json:"sellingPrice"`
	ManufacturingCost float64                  `json:"manufacturingCost"`
	QuantityAvailable float64                  `json:"quantityAvailable"`
	SupplierGoods     []SupplierGoodUsageInput `json:"supplierGoods"`
	Business          uint                     `json:"business"`
}

type UpdateBusinessGoodInput struct {
	Name              *string                   `json:"name"`
	Keyword           *string                   `json:"keyword"`
	Description       *string                   `json:"description"`
	Category          *string                   `json:"category"`
	SubCategory       *string                   `json:"subCategory"`
	Available         *bool                     `json:"available"`
	SellingPrice      *float64                  `json:"sellingPrice"`
	ManufacturingCost *float64                  `json:"manufacturingCost"`
	QuantityAvailable *float64                  `json:"quantityAvailable"`
	SupplierGoods     *[]SupplierGoodUsageInput `json:"supplierGoods"`
}

func usageRows(in []SupplierGoodUsageInput) []models.SupplierGoodUsage {
	rows := make([]models.SupplierGoodUsage, 0, len(in))
	for _, u := range in {
		rows = append(rows, models.SupplierGoodUsage{
			SupplierGoodID:      u.SupplierGood,
			MeasurementUsed:     u.MeasurementUsed,
			QuantityNeeded:      u.QuantityNeeded,
			QuantityNeededPrice: u.QuantityNeededPrice,
		})
	}
	return rows
}

func (s *BusinessGoodService) List() ([]models.BusinessGood, error) {
	var goods []models.BusinessGood
	if err := s.db.Preload("SupplierGoods").Find(&goods).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return goods, nil
}

func (s *BusinessGoodService) ListByBusiness(businessID uint) ([]models.BusinessGood, error) {
	var goods []models.BusinessGood
	if err := s.db.Preload("SupplierGoods").Where("business_id = ?", businessID).Find(&goods).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return goods, nil
}

func (s *BusinessGoodService) GetByID(id uint) (*models.BusinessGood, error) {
	var good models.BusinessGood
	if err := s.db.Preload("SupplierGoods").First(&good, id).Error; err != nil {
		return nil, translate(err, "Business good not found!", "")
	}
	return &good, nil
}

func (s *BusinessGoodService) Create(in CreateBusinessGoodInput) (*models.BusinessGood, error) {
	var missing validation.Missing
	missing.Require("name", in.Name)
	missing.Require("keyword", in.Keyword)
	missing.Require("category", in.Category)
	missing.RequirePresent("available", in.Available != nil)
	missing.RequirePositive("sellingPrice", in.SellingPrice)
	missing.RequireID("business", in.Business)
	if !missing.Empty() {
		return nil, Validationf("%s", missing.Message())
	}
	if !models.OneOf(in.Category, models.BusinessGoodCategories) {
		return nil, Validationf("Category must be one of %s!", strings.Join(models.BusinessGoodCategories, ", "))
	}
	usages := usageRows(in.SupplierGoods)
	if err := s.integrity.AssertUniqueSupplierGoodUsages(usages); err != nil {
		return nil, err
	}
	err := s.integrity.AssertUniqueInBusiness(s.db, &models.BusinessGood{}, in.Business, 0, map[string]any{
		"name": in.Name,
	}, in.Name+" already exists on business goods!")
	if err != nil {
		return nil, err
	}
	good := models.BusinessGood{
		Name:              in.Name,
		Keyword:           in.Keyword,
		Description:       in.Description,
		Category:          in.Category,
		SubCategory:       in.SubCategory,
		Available:         *in.Available,
		SellingPrice:      in.SellingPrice,
		ManufacturingCost: in.ManufacturingCost,
		QuantityAvailable: in.QuantityAvailable,
		SupplierGoods:     usages,
		BusinessID:        in.Business,
	}
	if err := s.db.Create(&good).Error; err != nil {
		return nil, translate(err, "", in.Name+" already exists on business goods!")
	}
	return &good, nil
}

func (s *BusinessGoodService) Update(id uint, in UpdateBusinessGoodInput) (*models.BusinessGood, error) {
	var good models.BusinessGood
	if err := s.db.Preload("SupplierGoods").First(&good, id).Error; err != nil {
		return nil, translate(err, "Business good not found!", "")
	}

	if in.Name != nil {
		err := s.integrity.AssertUniqueInBusiness(s.db, &models.BusinessGood{}, good.BusinessID, id, map[string]any{
			"name": *in.Name,
		}, "Business good "+*in.Name+" already exists!")
		if err != nil {
			return nil, err
		}
		good.Name = *in.Name
	}
	if in.Keyword != nil {
		good.Keyword = *in.Keyword
	}
	if in.Description != nil {
		good.Description = *in.Description
	}
	if in.Category != nil {
		if !models.OneOf(*in.Category, models.BusinessGoodCategories) {
			return nil, Validationf("Category must be one of %s!", strings.Join(models.BusinessGoodCategories, ", "))
		}
		good.Category = *in.Category
	}
	if in.SubCategory != nil {
		good.SubCategory = *in.SubCategory
	}
	if in.Available != nil {
		good.Available = *in.Available
	}
	if in.SellingPrice != nil {
		good.SellingPrice = *in.SellingPrice
	}
	if in.ManufacturingCost != nil {
		good.ManufacturingCost = *in.ManufacturingCost
	}
	if in.QuantityAvailable != nil {
		good.QuantityAvailable = *in.QuantityAvailable
	}

	var newUsages []models.SupplierGoodUsage
	replaceUsages := in.SupplierGoods != nil
	if replaceUsages {
		newUsages = usageRows(*in.SupplierGoods)
		if err := s.integrity.AssertUniqueSupplierGoodUsages(newUsages); err != nil {
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if replaceUsages {
			if err := tx.Where("business_good_id = ?", id).Delete(&models.SupplierGoodUsage{}).Error; err != nil {
				return Internalf("%s", err.Error())
			}
			for i := range newUsages {
				newUsages[i].BusinessGoodID = id
			}
			if len(newUsages) > 0 {
				if err := tx.Create(&newUsages).Error; err != nil {
					return Internalf("%s", err.Error())
				}
			}
			good.SupplierGoods = newUsages
		}
		if err := tx.Omit("SupplierGoods").Save(&good).Error; err != nil {
			return translate(err, "", "Business good already exists!")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &good, nil
}

func (s *BusinessGoodService) Delete(id uint) (*models.BusinessGood, error) {
	var good models.BusinessGood
	if err := s.db.First(&good, id).Error; err != nil {
		return nil, translate(err, "Business good not found!", "")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_good_id = ?", id).Delete(&models.SupplierGoodUsage{}).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		if err := tx.Delete(&models.BusinessGood{}, id).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &good, nil
}
