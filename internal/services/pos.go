package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
	"github.com/rmartins/tabletrack/internal/validation"
)

type PosService struct {
	db        *gorm.DB
	lifecycle *PosLifecycle
}

func NewPosService(db *gorm.DB, lifecycle *PosLifecycle) *PosService {
	return &PosService{db: db, lifecycle: lifecycle}
}

type CreatePosInput struct {
	PosReferenceCode string `json:"posReferenceCode"`
	Status           string `json:"status"`
	Guests           int    `json:"guests"`
	ClientName       string `json:"clientName"`
	OpenedBy         uint   `json:"openedBy"`
	Business         uint   `json:"business"`
}

type UpdatePosInput struct {
	PosReferenceCode *string    `json:"posReferenceCode"`
	Status           *string    `json:"status"`
	Guests           *int       `json:"guests"`
	ClientName       *string    `json:"clientName"`
	ClosedAt         *time.Time `json:"closedAt"`
	ClosedBy         *uint      `json:"closedBy"`
}

func (s *PosService) List() ([]models.Pos, error) {
	var pos []models.Pos
	if err := s.db.Preload("Orders").Find(&pos).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return pos, nil
}

func (s *PosService) ListByBusiness(businessID uint) ([]models.Pos, error) {
	var pos []models.Pos
	if err := s.db.Preload("Orders").Where("business_id = ?", businessID).Find(&pos).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return pos, nil
}

func (s *PosService) GetByID(id uint) (*models.Pos, error) {
	var pos models.Pos
	if err := s.db.Preload("Orders").First(&pos, id).Error; err != nil {
		return nil, translate(err, "Pos not found!", "")
	}
	return &pos, nil
}

func (s *PosService) Create(in CreatePosInput) (*models.Pos, error) {
	var missing validation.Missing
	missing.Require("posReferenceCode", in.PosReferenceCode)
	missing.RequireID("business", in.Business)
	missing.RequireID("openedBy", in.OpenedBy)
	if !missing.Empty() {
		return nil, Validationf("%s", missing.Message())
	}
	status := in.Status
	if status == "" {
		status = models.PosStatusOccupied
	}
	if !models.OneOf(status, models.PosStatuses) {
		return nil, Validationf("Status must be one of %s!", strings.Join(models.PosStatuses, ", "))
	}
	if status == models.PosStatusClosed {
		return nil, Validationf("A new POS cannot be created as Closed!")
	}
	if err := s.lifecycle.AssertLiveCodeAvailable(s.db, in.Business, in.PosReferenceCode, 0); err != nil {
		return nil, err
	}
	pos := models.Pos{
		PosReferenceCode: in.PosReferenceCode,
		Status:           status,
		Guests:           in.Guests,
		ClientName:       in.ClientName,
		OpenedByID:       in.OpenedBy,
		BusinessID:       in.Business,
	}
	if err := s.db.Create(&pos).Error; err != nil {
		return nil, translate(err, "", "Pos "+in.PosReferenceCode+" already exists and it is not closed!")
	}
	return &pos, nil
}

// Update applies a partial patch. A patch that moves the status to Closed
// passes through the lifecycle close gate and writes status, closedAt and
// closedBy together with the rest of the patch, in one transaction. A failed
// gate leaves the pos exactly as it was.
func (s *PosService) Update(id uint, in UpdatePosInput) (*models.Pos, error) {
	var pos models.Pos
	if err := s.db.First(&pos, id).Error; err != nil {
		return nil, translate(err, "Pos not found!", "")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if in.PosReferenceCode != nil && *in.PosReferenceCode != pos.PosReferenceCode {
			if pos.Status != models.PosStatusClosed {
				if err := s.lifecycle.AssertLiveCodeAvailable(tx, pos.BusinessID, *in.PosReferenceCode, id); err != nil {
					return err
				}
			}
			pos.PosReferenceCode = *in.PosReferenceCode
		}
		if in.Guests != nil {
			pos.Guests = *in.Guests
		}
		if in.ClientName != nil {
			pos.ClientName = *in.ClientName
		}

		if in.Status != nil {
			if !models.OneOf(*in.Status, models.PosStatuses) {
				return Validationf("Status must be one of %s!", strings.Join(models.PosStatuses, ", "))
			}
			switch {
			case *in.Status == models.PosStatusClosed:
				if err := s.lifecycle.AssertCloseAllowed(tx, &pos, in.ClosedAt, in.ClosedBy); err != nil {
					return err
				}
				pos.Status = models.PosStatusClosed
				pos.ClosedAt = in.ClosedAt
				pos.ClosedByID = in.ClosedBy
			case pos.Status == models.PosStatusClosed:
				return Blockedf("Pos %s is already closed!", pos.PosReferenceCode)
			default:
				pos.Status = *in.Status
			}
		}

		if err := tx.Save(&pos).Error; err != nil {
			return translate(err, "", "Pos "+pos.PosReferenceCode+" already exists and it is not closed!")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

// Delete removes the pos unless any referenced order is still Open.
func (s *PosService) Delete(id uint) (*models.Pos, error) {
	var pos models.Pos
	if err := s.db.First(&pos, id).Error; err != nil {
		return nil, translate(err, "Pos not found!", "")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.lifecycle.AssertDeleteAllowed(tx, id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Pos{}, id).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pos, nil
}
