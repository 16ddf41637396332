package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
	"github.com/rmartins/tabletrack/internal/validation"
)

type SupplierGoodService struct {
	db        *gorm.DB
	integrity *Integrity
}

func NewSupplierGoodService(db *gorm.DB, integrity *Integrity) *SupplierGoodService {
	return &SupplierGoodService{db: db, integrity: integrity}
}

type CreateSupplierGoodInput struct {
	Name                     string   `json:"name"`
	Keyword                  string   `json:"keyword"`
	Description              string   `json:"description"`
	Category                 string   `json:"category"`
	MeasurementType          string   `json:"measurementType"`
	MeasurementUnit          string   `json:"measurementUnit"`
	MeasurementValue         float64  `json:"measurementValue"`
	WholePrice               float64  `json:"wholePrice"`
	PricePerMeasurementUnit  float64  `json:"pricePerMeasurementUnit"`
	VirtualQuantityAvailable float64  `json:"virtualQuantityAvailable"`
	RealQuantityAvailable    float64  `json:"realQuantityAvailable"`
	MinimumQuantityRequired  float64  `json:"minimumQuantityRequired"`
	CurrentlyInUse           *bool    `json:"currentlyInUse"`
	Supplier                 uint     `json:"supplier"`
	Business                 uint     `json:"business"`
}

type UpdateSupplierGoodInput struct {
	Name                     *string  `json:"name"`
	Keyword                  *string  `json:"keyword"`
	Description              *string  `json:"description"`
	Category                 *string  `json:"category"`
	MeasurementType          *string  `json:"measurementType"`
	MeasurementUnit          *string  `json:"measurementUnit"`
	MeasurementValue         *float64 `json:"measurementValue"`
	WholePrice               *float64 `json:"wholePrice"`
	PricePerMeasurementUnit  *float64 `json:"pricePerMeasurementUnit"`
	VirtualQuantityAvailable *float64 `json:"virtualQuantityAvailable"`
	RealQuantityAvailable    *float64 `json:"realQuantityAvailable"`
	MinimumQuantityRequired  *float64 `json:"minimumQuantityRequired"`
	CurrentlyInUse           *bool    `json:"currentlyInUse"`
}

func (s *SupplierGoodService) List() ([]models.SupplierGood, error) {
	var goods []models.SupplierGood
	if err := s.db.Find(&goods).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return goods, nil
}

func (s *SupplierGoodService) ListByBusiness(businessID uint) ([]models.SupplierGood, error) {
	var goods []models.SupplierGood
	if err := s.db.Where("business_id = ?", businessID).Find(&goods).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return goods, nil
}

func (s *SupplierGoodService) ListBySupplier(supplierID uint) ([]models.SupplierGood, error) {
	var goods []models.SupplierGood
	if err := s.db.Where("supplier_id = ?", supplierID).Find(&goods).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return goods, nil
}

func (s *SupplierGoodService) GetByID(id uint) (*models.SupplierGood, error) {
	var good models.SupplierGood
	if err := s.db.First(&good, id).Error; err != nil {
		return nil, translate(err, "Supplier good not found!", "")
	}
	return &good, nil
}

func (s *SupplierGoodService) validateMeasurement(typ, unit string) error {
	if _, ok := models.MeasurementUnits[typ]; !ok {
		return Validationf("MeasurementType must be one of Solid, Liquid, Size, Distance, Weight or Service!")
	}
	if !models.ValidMeasurement(typ, unit) {
		return Validationf("MeasurementUnit %s is not valid for measurement type %s!", unit, typ)
	}
	return nil
}

func (s *SupplierGoodService) Create(in CreateSupplierGoodInput) (*models.SupplierGood, error) {
	var missing validation.Missing
	missing.Require("name", in.Name)
	missing.Require("keyword", in.Keyword)
	missing.Require("category", in.Category)
	missing.Require("measurementType", in.MeasurementType)
	missing.Require("measurementUnit", in.MeasurementUnit)
	missing.RequirePositive("measurementValue", in.MeasurementValue)
	missing.RequirePositive("wholePrice", in.WholePrice)
	missing.RequirePositive("pricePerMeasurementUnit", in.PricePerMeasurementUnit)
	missing.RequirePositive("minimumQuantityRequired", in.MinimumQuantityRequired)
	missing.RequireID("supplier", in.Supplier)
	missing.RequireID("business", in.Business)
	if !missing.Empty() {
		return nil, Validationf("%s", missing.Message())
	}
	if !models.OneOf(in.Category, models.GoodCategories) {
		return nil, Validationf("Category must be one of %s!", strings.Join(models.GoodCategories, ", "))
	}
	if err := s.validateMeasurement(in.MeasurementType, in.MeasurementUnit); err != nil {
		return nil, err
	}
	var supplier models.Supplier
	if err := s.db.First(&supplier, in.Supplier).Error; err != nil {
		return nil, translate(err, "Supplier not found!", "")
	}
	err := s.integrity.AssertUniqueInBusiness(s.db, &models.SupplierGood{}, in.Business, 0, map[string]any{
		"name": in.Name,
	}, "Supplier good "+in.Name+" already exists!")
	if err != nil {
		return nil, err
	}
	inUse := true
	if in.CurrentlyInUse != nil {
		inUse = *in.CurrentlyInUse
	}
	good := models.SupplierGood{
		Name:                     in.Name,
		Keyword:                  in.Keyword,
		Description:              in.Description,
		Category:                 in.Category,
		MeasurementType:          in.MeasurementType,
		MeasurementUnit:          in.MeasurementUnit,
		MeasurementValue:         in.MeasurementValue,
		WholePrice:               in.WholePrice,
		PricePerMeasurementUnit:  in.PricePerMeasurementUnit,
		VirtualQuantityAvailable: in.VirtualQuantityAvailable,
		RealQuantityAvailable:    in.RealQuantityAvailable,
		MinimumQuantityRequired:  in.MinimumQuantityRequired,
		CurrentlyInUse:           inUse,
		SupplierID:               in.Supplier,
		BusinessID:               in.Business,
	}
	if err := s.db.Create(&good).Error; err != nil {
		return nil, translate(err, "", "Supplier good "+in.Name+" already exists!")
	}
	return &good, nil
}

func (s *SupplierGoodService) Update(id uint, in UpdateSupplierGoodInput) (*models.SupplierGood, error) {
	var good models.SupplierGood
	if err := s.db.First(&good, id).Error; err != nil {
		return nil, translate(err, "Supplier good not found!", "")
	}

	if in.Name != nil {
		err := s.integrity.AssertUniqueInBusiness(s.db, &models.SupplierGood{}, good.BusinessID, id, map[string]any{
			"name": *in.Name,
		}, "Supplier good "+*in.Name+" already exists!")
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
		if !models.OneOf(*in.Category, models.GoodCategories) {
			return nil, Validationf("Category must be one of %s!", strings.Join(models.GoodCategories, ", "))
		}
		good.Category = *in.Category
	}
	typ, unit := good.MeasurementType, good.MeasurementUnit
	if in.MeasurementType != nil {
		typ = *in.MeasurementType
	}
	if in.MeasurementUnit != nil {
		unit = *in.MeasurementUnit
	}
	if typ != good.MeasurementType || unit != good.MeasurementUnit {
		if err := s.validateMeasurement(typ, unit); err != nil {
			return nil, err
		}
		good.MeasurementType, good.MeasurementUnit = typ, unit
	}
	if in.MeasurementValue != nil {
		good.MeasurementValue = *in.MeasurementValue
	}
	if in.WholePrice != nil {
		good.WholePrice = *in.WholePrice
	}
	if in.PricePerMeasurementUnit != nil {
		good.PricePerMeasurementUnit = *in.PricePerMeasurementUnit
	}
	if in.VirtualQuantityAvailable != nil {
		good.VirtualQuantityAvailable = *in.VirtualQuantityAvailable
	}
	if in.RealQuantityAvailable != nil {
		good.RealQuantityAvailable = *in.RealQuantityAvailable
	}
	if in.MinimumQuantityRequired != nil {
		good.MinimumQuantityRequired = *in.MinimumQuantityRequired
	}
	if in.CurrentlyInUse != nil {
		good.CurrentlyInUse = *in.CurrentlyInUse
	}

	if err := s.db.Save(&good).Error; err != nil {
		return nil, translate(err, "", "Supplier good already exists!")
	}
	return &good, nil
}

// Delete repairs every business-good recipe referencing the good, then
// removes the good. Repair plus delete run in one transaction.
func (s *SupplierGoodService) Delete(id uint) (*models.SupplierGood, error) {
	var good models.SupplierGood
	if err := s.db.First(&good, id).Error; err != nil {
		return nil, translate(err, "Supplier good not found!", "")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.integrity.RepairSupplierGoodReferences(tx, id); err != nil {
			return err
		}
		if err := tx.Delete(&models.SupplierGood{}, id).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &good, nil
}
