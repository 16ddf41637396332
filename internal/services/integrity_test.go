package services

import (
	"testing"

	"github.com/rmartins/tabletrack/internal/models"
)

func TestSupplierUniquenessScopedToBusiness(t *testing.T) {
	db := openTestDB(t)
	b1 := seedBusiness(t, db, "Acme Diner")
	b2 := seedBusiness(t, db, "Other Diner")
	seedSupplier(t, db, b1.ID, "Fresh Farms")

	svc := NewSupplierService(db, NewIntegrity(db, nil))

	_, err := svc.Create(CreateSupplierInput{
		TradeName: "Fresh Farms", LegalName: "Fresh Farms", Country: "PT", City: "Porto",
		Address: "Rua 2", PostCode: "4000", Email: "other@example.com",
		PhoneNumber: "+351220000001", TaxNumber: "STAX-2", Business: b1.ID,
	})
	if err == nil || KindOf(err) != KindConflict {
		t.Fatalf("expected conflict in same business, got %v", err)
	}

	// The same legal name under another business is a different supplier.
	if _, err := svc.Create(CreateSupplierInput{
		TradeName: "Fresh Farms", LegalName: "Fresh Farms", Country: "PT", City: "Porto",
		Address: "Rua 2", PostCode: "4000", Email: "ff2@example.com",
		PhoneNumber: "+351220000002", TaxNumber: "STAX-3", Business: b2.ID,
	}); err != nil {
		t.Fatalf("cross-business create: %v", err)
	}
}

func TestRepairSupplierGoodReferencesIsExactAndIdempotent(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	sup := seedSupplier(t, db, b.ID, "Fresh Farms")
	tomato := seedSupplierGood(t, db, b.ID, sup.ID, "Tomato")
	lettuce := seedSupplierGood(t, db, b.ID, sup.ID, "Lettuce")

	salad := models.BusinessGood{
		Name: "Salad", Keyword: "salad", Category: "Salad", Available: true, SellingPrice: 7,
		BusinessID: b.ID,
		SupplierGoods: []models.SupplierGoodUsage{
			{SupplierGoodID: tomato.ID, QuantityNeeded: 2},
			{SupplierGoodID: lettuce.ID, QuantityNeeded: 1},
		},
	}
	if err := db.Create(&salad).Error; err != nil {
		t.Fatalf("seed business good: %v", err)
	}

	integ := NewIntegrity(db, nil)
	if err := integ.RepairSupplierGoodReferences(db, tomato.ID); err != nil {
		t.Fatalf("repair: %v", err)
	}
	if n := countRows(t, db, &models.SupplierGoodUsage{}, "supplier_good_id = ?", tomato.ID); n != 0 {
		t.Fatalf("tomato usages remaining: %d", n)
	}
	if n := countRows(t, db, &models.SupplierGoodUsage{}, "supplier_good_id = ?", lettuce.ID); n != 1 {
		t.Fatalf("lettuce usage must survive, got %d", n)
	}

	// Running the repair again changes nothing.
	if err := integ.RepairSupplierGoodReferences(db, tomato.ID); err != nil {
		t.Fatalf("second repair: %v", err)
	}
	if n := countRows(t, db, &models.SupplierGoodUsage{}, "", nil); n != 1 {
		t.Fatalf("usage rows after second repair: %d", n)
	}
}

func TestCascadeDeleteSupplierRemovesGoodsAndUsages(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	sup := seedSupplier(t, db, b.ID, "Fresh Farms")
	other := seedSupplier(t, db, b.ID, "Sea Harvest")
	tomato := seedSupplierGood(t, db, b.ID, sup.ID, "Tomato")
	fish := seedSupplierGood(t, db, b.ID, other.ID, "Cod")

	salad := models.BusinessGood{
		Name: "Salad", Keyword: "salad", Category: "Salad", Available: true, SellingPrice: 7,
		BusinessID: b.ID,
		SupplierGoods: []models.SupplierGoodUsage{
			{SupplierGoodID: tomato.ID},
			{SupplierGoodID: fish.ID},
		},
	}
	if err := db.Create(&salad).Error; err != nil {
		t.Fatalf("seed business good: %v", err)
	}

	svc := NewSupplierService(db, NewIntegrity(db, nil))
	if _, err := svc.Delete(sup.ID); err != nil {
		t.Fatalf("delete supplier: %v", err)
	}

	if n := countRows(t, db, &models.Supplier{}, "id = ?", sup.ID); n != 0 {
		t.Fatalf("supplier still present")
	}
	if n := countRows(t, db, &models.SupplierGood{}, "supplier_id = ?", sup.ID); n != 0 {
		t.Fatalf("supplier goods still present")
	}
	if n := countRows(t, db, &models.SupplierGoodUsage{}, "supplier_good_id = ?", tomato.ID); n != 0 {
		t.Fatalf("dangling usage for deleted good")
	}
	// The other supplier's good and its usage are untouched.
	if n := countRows(t, db, &models.SupplierGoodUsage{}, "supplier_good_id = ?", fish.ID); n != 1 {
		t.Fatalf("unrelated usage lost")
	}
	var got models.BusinessGood
	if err := db.Preload("SupplierGoods").First(&got, salad.ID).Error; err != nil {
		t.Fatalf("business good must survive the cascade: %v", err)
	}
	if len(got.SupplierGoods) != 1 {
		t.Fatalf("expected 1 remaining usage, got %d", len(got.SupplierGoods))
	}
}

func TestCascadeDeleteBusinessRemovesEverything(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	keep := seedBusiness(t, db, "Other Diner")

	u := seedUser(t, db, b.ID, "ana")
	keepUser := seedUser(t, db, keep.ID, "bruno")
	sup := seedSupplier(t, db, b.ID, "Fresh Farms")
	sg := seedSupplierGood(t, db, b.ID, sup.ID, "Tomato")
	bg := models.BusinessGood{
		Name: "Salad", Keyword: "salad", Category: "Salad", Available: true, SellingPrice: 7,
		BusinessID:    b.ID,
		SupplierGoods: []models.SupplierGoodUsage{{SupplierGoodID: sg.ID}},
	}
	if err := db.Create(&bg).Error; err != nil {
		t.Fatalf("seed business good: %v", err)
	}
	p := seedPos(t, db, b.ID, u.ID, "T1", models.PosStatusOccupied)
	o := seedOrder(t, db, b.ID, p.ID, u.ID, models.BillingStatusOpen)
	if err := db.Model(&o).Association("BusinessGoods").Append(&bg); err != nil {
		t.Fatalf("attach good: %v", err)
	}
	pr := models.Printer{Name: "Bar", IPAddress: "10.0.0.9", Port: 9100, BusinessID: b.ID, PrintForPos: []models.Pos{p}}
	if err := db.Create(&pr).Error; err != nil {
		t.Fatalf("seed printer: %v", err)
	}

	if err := NewIntegrity(db, nil).CascadeDeleteBusiness(b.ID); err != nil {
		t.Fatalf("cascade: %v", err)
	}

	checks := []struct {
		name  string
		model any
	}{
		{"orders", &models.Order{}},
		{"pos", &models.Pos{}},
		{"users", &models.User{}},
		{"business goods", &models.BusinessGood{}},
		{"supplier goods", &models.SupplierGood{}},
		{"suppliers", &models.Supplier{}},
		{"printers", &models.Printer{}},
	}
	for _, ck := range checks {
		if n := countRows(t, db, ck.model, "business_id = ?", b.ID); n != 0 {
			t.Fatalf("%s not removed: %d left", ck.name, n)
		}
	}
	if n := countRows(t, db, &models.Business{}, "id = ?", b.ID); n != 0 {
		t.Fatalf("business row still present")
	}
	var joinRows int64
	if err := db.Raw("SELECT COUNT(*) FROM order_business_goods").Scan(&joinRows).Error; err != nil {
		t.Fatalf("join count: %v", err)
	}
	if joinRows != 0 {
		t.Fatalf("order join rows left: %d", joinRows)
	}
	if err := db.Raw("SELECT COUNT(*) FROM printer_pos").Scan(&joinRows).Error; err != nil {
		t.Fatalf("join count: %v", err)
	}
	if joinRows != 0 {
		t.Fatalf("printer join rows left: %d", joinRows)
	}
	if n := countRows(t, db, &models.User{}, "id = ?", keepUser.ID); n != 1 {
		t.Fatalf("other business's user was deleted")
	}
}

func TestDuplicateUsageInRecipeRejected(t *testing.T) {
	db := openTestDB(t)
	integ := NewIntegrity(db, nil)
	err := integ.AssertUniqueSupplierGoodUsages([]models.SupplierGoodUsage{
		{SupplierGoodID: 4}, {SupplierGoodID: 4},
	})
	if err == nil || KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
