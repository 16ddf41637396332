package services

import (
	"testing"

	"github.com/rmartins/tabletrack/internal/models"
)

func validBusinessInput(name string) CreateBusinessInput {
	return CreateBusinessInput{
		TradeName: name, LegalName: name, Email: name + "@example.com", Password: "s3cret",
		Country: "PT", City: "Lisbon", Address: "Rua 1", PostCode: "1000",
		PhoneNumber: "+351210000000", TaxNumber: "TAX-" + name, ContactPerson: "Rui",
		Subscription: models.SubscriptionFree,
	}
}

func TestCreateBusiness(t *testing.T) {
	db := openTestDB(t)
	svc := NewBusinessService(db, NewIntegrity(db, nil))
	b, err := svc.Create(validBusinessInput("Acme Diner"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID == 0 {
		t.Fatalf("no id assigned")
	}
	if b.Password == "s3cret" {
		t.Fatalf("password stored in clear")
	}
}

func TestCreateBusinessDuplicateConflict(t *testing.T) {
	db := openTestDB(t)
	svc := NewBusinessService(db, NewIntegrity(db, nil))
	if _, err := svc.Create(validBusinessInput("Acme Diner")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Each of legal name, email and tax number conflicts on its own.
	dup := validBusinessInput("Other Diner")
	dup.LegalName = "Acme Diner"
	if _, err := svc.Create(dup); err == nil || KindOf(err) != KindConflict {
		t.Fatalf("legal name dup: got %v", err)
	}
	dup = validBusinessInput("Third Diner")
	dup.Email = "Acme Diner@example.com"
	if _, err := svc.Create(dup); err == nil || KindOf(err) != KindConflict {
		t.Fatalf("email dup: got %v", err)
	}
}

func TestCreateBusinessInvalidSubscription(t *testing.T) {
	db := openTestDB(t)
	svc := NewBusinessService(db, NewIntegrity(db, nil))
	in := validBusinessInput("Acme Diner")
	in.Subscription = "Gold"
	if _, err := svc.Create(in); err == nil || KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteBusinessNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewBusinessService(db, NewIntegrity(db, nil))
	if _, err := svc.Delete(99); err == nil || KindOf(err) != KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
