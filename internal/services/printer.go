package services

import (
	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
	"github.com/rmartins/tabletrack/internal/validation"
)

type PrinterService struct {
	db *gorm.DB
}

func NewPrinterService(db *gorm.DB) *PrinterService { return &PrinterService{db: db} }

type CreatePrinterInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IPAddress   string `json:"ipAddress"`
	Port        int    `json:"port"`
	PrintForPos []uint `json:"printForPos"`
	Business    uint   `json:"business"`
}

type UpdatePrinterInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IPAddress   *string `json:"ipAddress"`
	Port        *int    `json:"port"`
	PrintForPos *[]uint `json:"printForPos"`
}

func (s *PrinterService) List() ([]models.Printer, error) {
	var printers []models.Printer
	if err := s.db.Preload("PrintForPos").Find(&printers).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return printers, nil
}

func (s *PrinterService) ListByBusiness(businessID uint) ([]models.Printer, error) {
	var printers []models.Printer
	if err := s.db.Preload("PrintForPos").Where("business_id = ?", businessID).Find(&printers).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return printers, nil
}

func (s *PrinterService) GetByID(id uint) (*models.Printer, error) {
	var printer models.Printer
	if err := s.db.Preload("PrintForPos").First(&printer, id).Error; err != nil {
		return nil, translate(err, "Printer not found!", "")
	}
	return &printer, nil
}

func (s *PrinterService) loadPos(ids []uint) ([]models.Pos, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var pos []models.Pos
	if err := s.db.Where("id IN ?", ids).Find(&pos).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	if len(pos) != len(ids) {
		return nil, NotFoundf("Pos not found!")
	}
	return pos, nil
}

func (s *PrinterService) Create(in CreatePrinterInput) (*models.Printer, error) {
	var missing validation.Missing
	missing.Require("name", in.Name)
	missing.Require("ipAddress", in.IPAddress)
	missing.RequirePositive("port", float64(in.Port))
	missing.RequireID("business", in.Business)
	if !missing.Empty() {
		return nil, Validationf("%s", missing.Message())
	}
	pos, err := s.loadPos(in.PrintForPos)
	if err != nil {
		return nil, err
	}
	printer := models.Printer{
		Name:        in.Name,
		Description: in.Description,
		IPAddress:   in.IPAddress,
		Port:        in.Port,
		PrintForPos: pos,
		BusinessID:  in.Business,
	}
	if err := s.db.Create(&printer).Error; err != nil {
		return nil, Internalf("%s", err.Error())
	}
	return &printer, nil
}

func (s *PrinterService) Update(id uint, in UpdatePrinterInput) (*models.Printer, error) {
	var printer models.Printer
	if err := s.db.First(&printer, id).Error; err != nil {
		return nil, translate(err, "Printer not found!", "")
	}

	if in.Name != nil {
		printer.Name = *in.Name
	}
	if in.Description != nil {
		printer.Description = *in.Description
	}
	if in.IPAddress != nil {
		printer.IPAddress = *in.IPAddress
	}
	if in.Port != nil {
		printer.Port = *in.Port
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if in.PrintForPos != nil {
			pos, err := s.loadPos(*in.PrintForPos)
			if err != nil {
				return err
			}
			if err := tx.Model(&printer).Association("PrintForPos").Replace(pos); err != nil {
				return Internalf("%s", err.Error())
			}
		}
		if err := tx.Omit("PrintForPos").Save(&printer).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &printer, nil
}

func (s *PrinterService) Delete(id uint) (*models.Printer, error) {
	var printer models.Printer
	if err := s.db.First(&printer, id).Error; err != nil {
		return nil, translate(err, "Printer not found!", "")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&printer).Association("PrintForPos").Clear(); err != nil {
			return Internalf("%s", err.Error())
		}
		if err := tx.Delete(&models.Printer{}, id).Error; err != nil {
			return Internalf("%s", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &printer, nil
}
