package services

import (
	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
	"github.com/rmartins/tabletrack/internal/validation"
)

type SupplierService struct {
	db        *gorm.DB
	integrity *Integrity
}

func NewSupplierService(db *gorm.DB, integrity *Integrity) *SupplierService {
	return &SupplierService{db: db, integrity: integrity}
}

type CreateSupplierInput struct {
	TradeName     string `json:"tradeName"`
	LegalName     string `json:"legalName"`
	Country       string `json:"country"`
	Region        string `json:"region"`
	City          string `json:"city"`
	Address       string `json:"address"`
	PostCode      string `json:"postCode"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	TaxNumber     string `json:"taxNumber"`
	ContactPerson string `json:"contactPerson"`
	Business      uint   `json:"business"`
}

type UpdateSupplierInput struct {
	TradeName     *string `json:"tradeName"`
	LegalName     *string `json:"legalName"`
	Country       *string `json:"country"`
	Region        *string `json:"region"`
	City          *string `json:"city"`
	Address       *string `json:"address"`
	PostCode      *string `json:"postCode"`
	Email         *string `json:"email"`
	PhoneNumber   *string `json:"phoneNumber"`
	TaxNumber     *string `json:"taxNumber"`
	ContactPerson *string `json:"contactPerson"`
}

func (s *SupplierService) List() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.db.Find(&suppliers).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return suppliers, nil
}

func (s *SupplierService) ListByBusiness(businessID uint) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.db.Where("business_id = ?", businessID).Find(&suppliers).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return suppliers, nil
}

func (s *SupplierService) GetByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.First(&supplier, id).Error; err != nil {
		return nil, translate(err, "Supplier not found!", "")
	}
	return &supplier, nil
}

func (s *SupplierService) Create(in CreateSupplierInput) (*models.Supplier, error) {
	var missing validation.Missing
	missing.Require("tradeName", in.TradeName)
	missing.Require("legalName", in.LegalName)
	missing.Require("country", in.Country)
	missing.Require("city", in.City)
	missing.Require("address", in.Address)
	missing.Require("postCode", in.PostCode)
	missing.Require("email", in.Email)
	missing.Require("phoneNumber", in.PhoneNumber)
	missing.Require("taxNumber", in.TaxNumber)
	missing.RequireID("business", in.Business)
	if !missing.Empty() {
		return nil, Validationf("%s", missing.Message())
	}
	err := s.integrity.AssertUniqueInBusiness(s.db, &models.Supplier{}, in.Business, 0, map[string]any{
		"legal_name": in.LegalName,
		"email":      in.Email,
		"tax_number": in.TaxNumber,
	}, "Supplier "+in.LegalName+", "+in.Email+" or "+in.TaxNumber+" already exists!")
	if err != nil {
		return nil, err
	}
	supplier := models.Supplier{
		TradeName:     in.TradeName,
		LegalName:     in.LegalName,
		Country:       in.Country,
		Region:        in.Region,
		City:          in.City,
		Address:       in.Address,
		PostCode:      in.PostCode,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		TaxNumber:     in.TaxNumber,
		ContactPerson: in.ContactPerson,
		BusinessID:    in.Business,
	}
	if err := s.db.Create(&supplier).Error; err != nil {
		return nil, translate(err, "", "Supplier "+in.LegalName+" already exists!")
	}
	return &supplier, nil
}

func (s *SupplierService) Update(id uint, in UpdateSupplierInput) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.First(&supplier, id).Error; err != nil {
		return nil, translate(err, "Supplier not found!", "")
	}

	unique := map[string]any{}
	if in.LegalName != nil {
		unique["legal_name"] = *in.LegalName
	}
	if in.Email != nil {
		unique["email"] = *in.Email
	}
	if in.TaxNumber != nil {
		unique["tax_number"] = *in.TaxNumber
	}
	if err := s.integrity.AssertUniqueInBusiness(s.db, &models.Supplier{}, supplier.BusinessID, id, unique, "Supplier already exists!"); err != nil {
		return nil, err
	}

	if in.TradeName != nil {
		supplier.TradeName = *in.TradeName
	}
	if in.LegalName != nil {
		supplier.LegalName = *in.LegalName
	}
	if in.Country != nil {
		supplier.Country = *in.Country
	}
	if in.Region != nil {
		supplier.Region = *in.Region
	}
	if in.City != nil {
		supplier.City = *in.City
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.PostCode != nil {
		supplier.PostCode = *in.PostCode
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		supplier.PhoneNumber = *in.PhoneNumber
	}
	if in.TaxNumber != nil {
		supplier.TaxNumber = *in.TaxNumber
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}

	if err := s.db.Save(&supplier).Error; err != nil {
		return nil, translate(err, "", "Supplier already exists!")
	}
	return &supplier, nil
}

// Delete cascades over the supplier's goods before removing the supplier.
func (s *SupplierService) Delete(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.First(&supplier, id).Error; err != nil {
		return nil, translate(err, "Supplier not found!", "")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.integrity.CascadeDeleteSupplier(tx, id)
	})
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}
