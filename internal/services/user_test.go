package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/rmartins/tabletrack/internal/models"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")

	svc := NewUserService(db, NewIntegrity(db, nil))
	user, err := svc.Create(CreateUserInput{
		Username: "ana", Email: "ana@example.com", Password: "s3cret", Role: "Waiter",
		FirstName: "Ana", LastName: "Silva", PhoneNumber: "+351910000000", Business: b.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Password == "s3cret" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestCreateUserReportsAllMissingFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db, NewIntegrity(db, nil))
	_, err := svc.Create(CreateUserInput{Username: "ana", Email: "ana@example.com", Password: "x"})
	if err == nil || KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := "Role, firstName, lastName, phoneNumber and business are required!"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	svc := NewUserService(db, NewIntegrity(db, nil))
	_, err := svc.Create(CreateUserInput{
		Username: "ana", Email: "ana@example.com", Password: "x", Role: "Astronaut",
		FirstName: "Ana", LastName: "Silva", PhoneNumber: "+351910000000", Business: b.ID,
	})
	if err == nil || KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateUserDuplicateUsernameConflict(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	seedUser(t, db, b.ID, "ana")

	svc := NewUserService(db, NewIntegrity(db, nil))
	_, err := svc.Create(CreateUserInput{
		Username: "ana", Email: "ana2@example.com", Password: "x", Role: "Waiter",
		FirstName: "Ana", LastName: "Silva", PhoneNumber: "+351910000000", Business: b.ID,
	})
	if err == nil || KindOf(err) != KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteUserBlockedByOpenWork(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	u := seedUser(t, db, b.ID, "ana")
	p := seedPos(t, db, b.ID, u.ID, "T1", models.PosStatusOccupied)
	o := seedOrder(t, db, b.ID, p.ID, u.ID, models.BillingStatusOpen)

	svc := NewUserService(db, NewIntegrity(db, nil))
	_, err := svc.Delete(u.ID)
	if err == nil || err.Error() != "User has open orders!" {
		t.Fatalf("expected open-orders block, got %v", err)
	}

	if err := db.Model(&o).Update("billing_status", models.BillingStatusPayed).Error; err != nil {
		t.Fatalf("settle order: %v", err)
	}
	_, err = svc.Delete(u.ID)
	if err == nil || err.Error() != "User has open POSs!" {
		t.Fatalf("expected open-pos block, got %v", err)
	}

	if err := db.Model(&p).Update("status", models.PosStatusClosed).Error; err != nil {
		t.Fatalf("close pos: %v", err)
	}
	if _, err := svc.Delete(u.ID); err != nil {
		t.Fatalf("delete after closing everything: %v", err)
	}
	if n := countRows(t, db, &models.User{}, "id = ?", u.ID); n != 0 {
		t.Fatalf("user still present")
	}
}

func TestUpdateUserPartialPatch(t *testing.T) {
	db := openTestDB(t)
	b := seedBusiness(t, db, "Acme Diner")
	u := seedUser(t, db, b.ID, "ana")

	svc := NewUserService(db, NewIntegrity(db, nil))
	onDuty := true
	got, err := svc.Update(u.ID, UpdateUserInput{OnDuty: &onDuty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.OnDuty {
		t.Fatalf("onDuty not applied")
	}
	if got.Username != "ana" || got.Email != "ana@example.com" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}
