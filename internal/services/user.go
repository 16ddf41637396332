package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
	"github.com/rmartins/tabletrack/internal/validation"
)

type UserService struct {
	db        *gorm.DB
	integrity *Integrity
}

func NewUserService(db *gorm.DB, integrity *Integrity) *UserService {
	return &UserService{db: db, integrity: integrity}
}

type CreateUserInput struct {
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Role        string     `json:"role"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	PhoneNumber string     `json:"phoneNumber"`
	Address     string     `json:"address"`
	JoiningDate *time.Time `json:"joiningDate"`
	Business    uint       `json:"business"`
}

type UpdateUserInput struct {
	Username      *string    `json:"username"`
	Email         *string    `json:"email"`
	Password      *string    `json:"password"`
	Role          *string    `json:"role"`
	FirstName     *string    `json:"firstName"`
	LastName      *string    `json:"lastName"`
	PhoneNumber   *string    `json:"phoneNumber"`
	Address       *string    `json:"address"`
	JoiningDate   *time.Time `json:"joiningDate"`
	TerminateDate *time.Time `json:"terminateDate"`
	Active        *bool      `json:"active"`
	OnDuty        *bool      `json:"onDuty"`
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return users, nil
}

func (s *UserService) ListByBusiness(businessID uint) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("business_id = ?", businessID).Find(&users).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return users, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err, "User not found!", "")
	}
	return &user, nil
}

func (s *UserService) Create(in CreateUserInput) (*models.User, error) {
	var missing validation.Missing
	missing.Require("username", in.Username)
	missing.Require("email", in.Email)
	missing.Require("password", in.Password)
	missing.Require("role", in.Role)
	missing.Require("firstName", in.FirstName)
	missing.Require("lastName", in.LastName)
	missing.Require("phoneNumber", in.PhoneNumber)
	missing.RequireID("business", in.Business)
	if !missing.Empty() {
		return nil, Validationf("%s", missing.Message())
	}
	if !models.OneOf(in.Role, models.UserRoles) {
		return nil, Validationf("Role must be one of %s!", strings.Join(models.UserRoles, ", "))
	}
	err := s.integrity.AssertUniqueInBusiness(s.db, &models.User{}, 0, 0, map[string]any{
		"username": in.Username,
		"email":    in.Email,
	}, "Username already exists!")
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    hash,
		Role:        in.Role,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		JoiningDate: in.JoiningDate,
		Active:      true,
		BusinessID:  in.Business,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, translate(err, "", "Username already exists!")
	}
	return &user, nil
}

func (s *UserService) Update(id uint, in UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err, "User not found!", "")
	}

	unique := map[string]any{}
	if in.Username != nil {
		unique["username"] = *in.Username
	}
	if in.Email != nil {
		unique["email"] = *in.Email
	}
	if err := s.integrity.AssertUniqueInBusiness(s.db, &models.User{}, 0, id, unique, "Username already exists!"); err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !models.OneOf(*in.Role, models.UserRoles) {
			return nil, Validationf("Role must be one of %s!", strings.Join(models.UserRoles, ", "))
		}
		user.Role = *in.Role
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.JoiningDate != nil {
		user.JoiningDate = in.JoiningDate
	}
	if in.TerminateDate != nil {
		user.TerminateDate = in.TerminateDate
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.OnDuty != nil {
		user.OnDuty = *in.OnDuty
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, translate(err, "", "Username already exists!")
	}
	return &user, nil
}

// Delete refuses while the user is referenced by an open order or has a
// non-closed pos opened under their name.
func (s *UserService) Delete(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err, "User not found!", "")
	}

	var openOrders int64
	err := s.db.Model(&models.Order{}).
		Where("user_id = ? AND billing_status = ?", id, models.BillingStatusOpen).
		Count(&openOrders).Error
	if err != nil {
		return nil, Internalf("%s", err.Error())
	}
	if openOrders > 0 {
		return nil, Blockedf("User has open orders!")
	}

	var openPos int64
	err = s.db.Model(&models.Pos{}).
		Where("opened_by_id = ? AND status <> ?", id, models.PosStatusClosed).
		Count(&openPos).Error
	if err != nil {
		return nil, Internalf("%s", err.Error())
	}
	if openPos > 0 {
		return nil, Blockedf("User has open POSs!")
	}

	if err := s.db.Delete(&models.User{}, id).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return &user, nil
}
