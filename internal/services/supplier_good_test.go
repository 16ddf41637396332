package services

import (
	"testing"

	"github.com/rmartins/tabletrack/internal/models"
)

func TestCreateSupplierGoodMeasurementValidation(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	sup := seedSupplier(t, db, b.ID, "Fresh Farms")

	svc := NewSupplierGoodService(db, NewIntegrity(db, nil))
	in := CreateSupplierGoodInput{
		Name: "Tomato", Keyword: "tomato", Category: "Food",
		MeasurementType: models.MeasurementWeight, MeasurementUnit: "Liter",
		MeasurementValue: 1, WholePrice: 10, PricePerMeasurementUnit: 10,
		MinimumQuantityRequired: 1, Supplier: sup.ID, Business: b.ID,
	}
	if _, err := svc.Create(in); err == nil || KindOf(err) != KindValidation {
		t.Fatalf("Liter under Weight must fail, got %v", err)
	}

	in.MeasurementUnit = "Kilogram"
	good, err := svc.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !good.CurrentlyInUse {
		t.Fatalf("currentlyInUse must default to true")
	}
}

func TestCreateSupplierGoodUnknownSupplier(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	svc := NewSupplierGoodService(db, NewIntegrity(db, nil))
	_, err := svc.Create(CreateSupplierGoodInput{
		Name: "Tomato", Keyword: "tomato", Category: "Food",
		MeasurementType: models.MeasurementWeight, MeasurementUnit: "Kilogram",
		MeasurementValue: 1, WholePrice: 10, PricePerMeasurementUnit: 10,
		MinimumQuantityRequired: 1, Supplier: 99, Business: b.ID,
	})
	if err == nil || KindOf(err) != KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteSupplierGoodRepairsRecipes(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	sup := seedSupplier(t, db, b.ID, "Fresh Farms")
	tomato := seedSupplierGood(t, db, b.ID, sup.ID, "Tomato")

	salad := models.BusinessGood{
		Name: "Salad", Keyword: "salad", Category: "Salad", Available: true, SellingPrice: 7,
		BusinessID:    b.ID,
		SupplierGoods: []models.SupplierGoodUsage{{SupplierGoodID: tomato.ID, QuantityNeeded: 2}},
	}
	if err := db.Create(&salad).Error; err != nil {
		t.Fatalf("seed business good: %v", err)
	}

	svc := NewSupplierGoodService(db, NewIntegrity(db, nil))
	if _, err := svc.Delete(tomato.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	bgSvc := NewBusinessGoodService(db, NewIntegrity(db, nil))
	got, err := bgSvc.GetByID(salad.ID)
	if err != nil {
		t.Fatalf("the recipe owner must stay readable: %v", err)
	}
	if len(got.SupplierGoods) != 0 {
		t.Fatalf("dangling usages left: %+v", got.SupplierGoods)
	}
}

func TestSupplierGoodNameUniquePerBusiness(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	other := seedBusiness(t, db, "Other Diner")
	sup := seedSupplier(t, db, b.ID, "Fresh Farms")
	otherSup := seedSupplier(t, db, other.ID, "Fresh Farms")
	seedSupplierGood(t, db, b.ID, sup.ID, "Tomato")

	svc := NewSupplierGoodService(db, NewIntegrity(db, nil))
	in := CreateSupplierGoodInput{
		Name: "Tomato", Keyword: "tomato", Category: "Food",
		MeasurementType: models.MeasurementWeight, MeasurementUnit: "Kilogram",
		MeasurementValue: 1, WholePrice: 10, PricePerMeasurementUnit: 10,
		MinimumQuantityRequired: 1, Supplier: sup.ID, Business: b.ID,
	}
	if _, err := svc.Create(in); err == nil || KindOf(err) != KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	in.Supplier = otherSup.ID
	in.Business = other.ID
	if _, err := svc.Create(in); err != nil {
		t.Fatalf("same name in another business: %v", err)
	}
}
