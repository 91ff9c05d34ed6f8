package services

import (
	"errors"
	"testing"

	"pgstay-backend/models"
	"pgstay-backend/statemachine"
)

func TestCreateBookingDefaults(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Booker One", models.RoleResident)
	svc := NewBookingService(db, nil)

	booking, err := svc.Create(user.ID, models.PropertyTypePG, 1)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.Status != models.BookingPending {
		t.Errorf("status = %s, want Pending", booking.Status)
	}
	if booking.PaymentStatus != models.PaymentNotPaid {
		t.Errorf("paymentStatus = %s, want Not Paid", booking.PaymentStatus)
	}
}

func TestCreateBookingRejectsUnknownTag(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Booker Two", models.RoleResident)
	svc := NewBookingService(db, nil)

	if _, err := svc.Create(user.ID, "Villa", 1); !errors.Is(err, ErrUnknownPropertyType) {
		t.Errorf("unknown tag: got %v, want ErrUnknownPropertyType", err)
	}
}

func TestCreateBookingSkipsExistenceCheck(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Booker Three", models.RoleResident)
	svc := NewBookingService(db, nil)

	// the referenced listing does not exist; creation still succeeds and
	// the dangling reference surfaces at read time
	if _, err := svc.Create(user.ID, models.PropertyTypeHostel, 424242); err != nil {
		t.Fatalf("booking a missing listing should succeed at create time: %v", err)
	}
}

func TestListForUserResolvesProperties(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Listing Owner", models.RoleOwner)
	user := createUser(t, db, "Booker Four", models.RoleResident)

	pgSvc := NewListingService(db, models.PropertyTypePG)
	hostelSvc := NewListingService(db, models.PropertyTypeHostel)
	pg := createListing(t, pgSvc, owner.ID, ListingInput{Name: "Resolved PG", Location: "HSR", Price: 6000})
	hostel := createListing(t, hostelSvc, owner.ID, ListingInput{Name: "Resolved Hostel", Location: "HSR", Price: 5500})

	svc := NewBookingService(db, nil)
	if _, err := svc.Create(user.ID, models.PropertyTypePG, pg.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(user.ID, models.PropertyTypeHostel, hostel.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(user.ID, models.PropertyTypeHostel, 424242); err != nil {
		t.Fatal(err)
	}

	got, err := svc.ListForUser(user.ID)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d bookings, want 3", len(got))
	}

	for _, bw := range got {
		switch {
		case bw.PropertyType == models.PropertyTypePG:
			if bw.Property == nil || bw.Property.Name != "Resolved PG" {
				t.Errorf("PG booking resolved to %+v, want the PG row", bw.Property)
			}
		case bw.PropertyID == 424242:
			if bw.Property != nil {
				t.Errorf("dangling booking resolved to %+v, want null property", bw.Property)
			}
		default:
			if bw.Property == nil || bw.Property.Name != "Resolved Hostel" {
				t.Errorf("hostel booking resolved to %+v, want the hostel row", bw.Property)
			}
		}
	}
}

func TestListForUserScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "Alice User", models.RoleResident)
	bob := createUser(t, db, "Bob User", models.RoleResident)

	svc := NewBookingService(db, nil)
	if _, err := svc.Create(alice.ID, models.PropertyTypePG, 1); err != nil {
		t.Fatal(err)
	}

	got, err := svc.ListForUser(bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("bob sees %d of alice's bookings", len(got))
	}
}

func TestConfirmPaymentIdempotent(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "Hostel Owner", models.RoleOwner)
	user := createUser(t, db, "Paying User", models.RoleResident)

	hostelSvc := NewListingService(db, models.PropertyTypeHostel)
	hostel := createListing(t, hostelSvc, owner.ID, ListingInput{Name: "Pay Hostel", Location: "MG Road", Price: 6500})

	svc := NewBookingService(db, nil)
	booking, err := svc.Create(user.ID, models.PropertyTypeHostel, hostel.ID)
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.ConfirmPayment(booking.ID)
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if first.Status != models.BookingConfirmed || first.PaymentStatus != models.PaymentPaid {
		t.Fatalf("after confirm: status=%s payment=%s", first.Status, first.PaymentStatus)
	}
	if first.UserID != user.ID || first.PropertyType != models.PropertyTypeHostel || first.PropertyID != hostel.ID {
		t.Errorf("confirm mutated the booking reference: %+v", first)
	}

	second, err := svc.ConfirmPayment(booking.ID)
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	if second.Status != models.BookingConfirmed || second.PaymentStatus != models.PaymentPaid {
		t.Errorf("second confirm changed state: status=%s payment=%s", second.Status, second.PaymentStatus)
	}

	var stored models.Booking
	if err := db.First(&stored, booking.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Status != models.BookingConfirmed || stored.PaymentStatus != models.PaymentPaid {
		t.Errorf("stored booking reverted: status=%s payment=%s", stored.Status, stored.PaymentStatus)
	}
}

func TestConfirmPaymentMissingBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db, nil)

	if _, err := svc.ConfirmPayment(999); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("missing booking: got %v, want ErrBookingNotFound", err)
	}
}

func TestConfirmPaymentRejectsCancelled(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Cancelled User", models.RoleResident)
	svc := NewBookingService(db, nil)

	booking, err := svc.Create(user.ID, models.PropertyTypePG, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Model(booking).Update("status", models.BookingCancelled).Error; err != nil {
		t.Fatal(err)
	}

	_, err = svc.ConfirmPayment(booking.ID)
	var invalid *statemachine.InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Errorf("paying a cancelled booking: got %v, want InvalidTransitionError", err)
	}
}
