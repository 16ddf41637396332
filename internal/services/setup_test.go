package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rmartins/tabletrack/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:svc_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Business{}, &models.User{}, &models.Supplier{}, &models.SupplierGood{},
		&models.BusinessGood{}, &models.SupplierGoodUsage{}, &models.Pos{}, &models.Order{}, &models.Printer{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBusiness(t *testing.T, db *gorm.DB, legalName string) models.Business {
	t.Helper()
	b := models.Business{
		TradeName: legalName, LegalName: legalName, Email: legalName + "@example.com",
		Password: "hash", Country: "PT", City: "Lisbon", Address: "Rua 1", PostCode: "1000",
		PhoneNumber: "+351210000000", TaxNumber: "TAX-" + legalName, ContactPerson: "Rui",
		Subscription: models.SubscriptionFree,
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed business: %v", err)
	}
	return b
}

func seedUser(t *testing.T, db *gorm.DB, businessID uint, username string) models.User {
	t.Helper()
	u := models.User{
		Username: username, Password: "hash", Role: "Waiter", FirstName: "Ana", LastName: "Silva",
		Email: username + "@example.com", PhoneNumber: "+351910000000", Active: true, BusinessID: businessID,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedSupplier(t *testing.T, db *gorm.DB, businessID uint, legalName string) models.Supplier {
	t.Helper()
	s := models.Supplier{
		TradeName: legalName, LegalName: legalName, Country: "PT", City: "Porto", Address: "Rua 2",
		PostCode: "4000", Email: legalName + "@example.com", PhoneNumber: "+351220000000",
		TaxNumber: "STAX-" + legalName, BusinessID: businessID,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	return s
}

func seedSupplierGood(t *testing.T, db *gorm.DB, businessID, supplierID uint, name string) models.SupplierGood {
	t.Helper()
	g := models.SupplierGood{
		Name: name, Keyword: name, Category: "Food",
		MeasurementType: models.MeasurementWeight, MeasurementUnit: "Kilogram",
		MeasurementValue: 1, WholePrice: 10, PricePerMeasurementUnit: 10,
		MinimumQuantityRequired: 1, CurrentlyInUse: true,
		SupplierID: supplierID, BusinessID: businessID,
	}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed supplier good: %v", err)
	}
	return g
}

func seedPos(t *testing.T, db *gorm.DB, businessID, openedBy uint, code, status string) models.Pos {
	t.Helper()
	p := models.Pos{PosReferenceCode: code, Status: status, OpenedByID: openedBy, BusinessID: businessID}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed pos: %v", err)
	}
	return p
}

func seedOrder(t *testing.T, db *gorm.DB, businessID, posID, userID uint, billing string) models.Order {
	t.Helper()
	o := models.Order{TotalPrice: 9.5, BillingStatus: billing, OrderStatus: models.OrderStatusSent, PosID: posID, UserID: userID, BusinessID: businessID}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
