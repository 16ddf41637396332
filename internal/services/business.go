package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
	"github.com/rmartins/tabletrack/internal/validation"
)

// hashPassword is the one-way hashing collaborator shared by the business and
// user services. Fails closed on blank input.
func hashPassword(plain string) (string, error) {
	if strings.TrimSpace(plain) == "" {
		return "", Validationf("Password is required!")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", Internalf("%s", err.Error())
	}
	return string(hash), nil
}

type BusinessService struct {
	db        *gorm.DB
	integrity *Integrity
}

func NewBusinessService(db *gorm.DB, integrity *Integrity) *BusinessService {
	return &BusinessService{db: db, integrity: integrity}
}

type CreateBusinessInput struct {
	TradeName     string `json:"tradeName"`
	LegalName     string `json:"legalName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Country       string `json:"country"`
	Region        string `json:"region"`
	City          string `json:"city"`
	Address       string `json:"address"`
	PostCode      string `json:"postCode"`
	PhoneNumber   string `json:"phoneNumber"`
	TaxNumber     string `json:"taxNumber"`
	ContactPerson string `json:"contactPerson"`
	Subscription  string `json:"subscription"`
}

type UpdateBusinessInput struct {
	TradeName     *string `json:"tradeName"`
	LegalName     *string `json:"legalName"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Country       *string `json:"country"`
	Region        *string `json:"region"`
	City          *string `json:"city"`
	Address       *string `json:"address"`
	PostCode      *string `json:"postCode"`
	PhoneNumber   *string `json:"phoneNumber"`
	TaxNumber     *string `json:"taxNumber"`
	ContactPerson *string `json:"contactPerson"`
	Subscription  *string `json:"subscription"`
}

func (s *BusinessService) List() ([]models.Business, error) {
	var businesses []models.Business
	if err := s.db.Find(&businesses).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return businesses, nil
}

func (s *BusinessService) GetByID(id uint) (*models.Business, error) {
	var business models.Business
	if err := s.db.First(&business, id).Error; err != nil {
		return nil, translate(err, "Business not found!", "")
	}
	return &business, nil
}

func (s *BusinessService) Create(in CreateBusinessInput) (*models.Business, error) {
	var missing validation.Missing
	missing.Require("tradeName", in.TradeName)
	missing.Require("legalName", in.LegalName)
	missing.Require("email", in.Email)
	missing.Require("password", in.Password)
	missing.Require("country", in.Country)
	missing.Require("city", in.City)
	missing.Require("address", in.Address)
	missing.Require("postCode", in.PostCode)
	missing.Require("phoneNumber", in.PhoneNumber)
	missing.Require("taxNumber", in.TaxNumber)
	missing.Require("contactPerson", in.ContactPerson)
	missing.Require("subscription", in.Subscription)
	if !missing.Empty() {
		return nil, Validationf("%s", missing.Message())
	}
	if !models.OneOf(in.Subscription, models.Subscriptions) {
		return nil, Validationf("Subscription must be one of %s!", strings.Join(models.Subscriptions, ", "))
	}
	// Business uniqueness is global, hence the zero business scope.
	err := s.integrity.AssertUniqueInBusiness(s.db, &models.Business{}, 0, 0, map[string]any{
		"legal_name": in.LegalName,
		"email":      in.Email,
		"tax_number": in.TaxNumber,
	}, "Business name already exists!")
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	business := models.Business{
		TradeName:     in.TradeName,
		LegalName:     in.LegalName,
		Email:         in.Email,
		Password:      hash,
		Country:       in.Country,
		Region:        in.Region,
		City:          in.City,
		Address:       in.Address,
		PostCode:      in.PostCode,
		PhoneNumber:   in.PhoneNumber,
		TaxNumber:     in.TaxNumber,
		ContactPerson: in.ContactPerson,
		Subscription:  in.Subscription,
	}
	if err := s.db.Create(&business).Error; err != nil {
		return nil, translate(err, "", "Business name already exists!")
	}
	return &business, nil
}

func (s *BusinessService) Update(id uint, in UpdateBusinessInput) (*models.Business, error) {
	var business models.Business
	if err := s.db.First(&business, id).Error; err != nil {
		return nil, translate(err, "Business not found!", "")
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
	if err := s.integrity.AssertUniqueInBusiness(s.db, &models.Business{}, 0, id, unique, "Business name already exists!"); err != nil {
		return nil, err
	}

	if in.TradeName != nil {
		business.TradeName = *in.TradeName
	}
	if in.LegalName != nil {
		business.LegalName = *in.LegalName
	}
	if in.Email != nil {
		business.Email = *in.Email
	}
	if in.Country != nil {
		business.Country = *in.Country
	}
	if in.Region != nil {
		business.Region = *in.Region
	}
	if in.City != nil {
		business.City = *in.City
	}
	if in.Address != nil {
		business.Address = *in.Address
	}
	if in.PostCode != nil {
		business.PostCode = *in.PostCode
	}
	if in.PhoneNumber != nil {
		business.PhoneNumber = *in.PhoneNumber
	}
	if in.TaxNumber != nil {
		business.TaxNumber = *in.TaxNumber
	}
	if in.ContactPerson != nil {
		business.ContactPerson = *in.ContactPerson
	}
	if in.Subscription != nil {
		if !models.OneOf(*in.Subscription, models.Subscriptions) {
			return nil, Validationf("Subscription must be one of %s!", strings.Join(models.Subscriptions, ", "))
		}
		business.Subscription = *in.Subscription
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		business.Password = hash
	}

	if err := s.db.Save(&business).Error; err != nil {
		return nil, translate(err, "", "Business name already exists!")
	}
	return &business, nil
}

// Delete cascades over every entity owned by the business.
func (s *BusinessService) Delete(id uint) (*models.Business, error) {
	var business models.Business
	if err := s.db.First(&business, id).Error; err != nil {
		return nil, translate(err, "Business not found!", "")
	}
	if err := s.integrity.CascadeDeleteBusiness(id); err != nil {
		return nil, err
	}
	return &business, nil
}
