package repositories

import (
	"errors"
	"fmt"
	"testing"

	"cargoflow/controllers/idgen"
	"cargoflow/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRefusalUnwrapsToCannotBook(t *testing.T) {
	var err error = &Refusal{Reason: "Capacité poids dépassée: 25.0T > 24.0T"}

	if !errors.Is(err, ErrCannotBook) {
		t.Fatal("refusal should match ErrCannotBook")
	}

	var refusal *Refusal
	if !errors.As(err, &refusal) {
		t.Fatal("errors.As should extract the refusal")
	}
	if refusal.Reason != "Capacité poids dépassée: 25.0T > 24.0T" {
		t.Errorf("unexpected reason %q", refusal.Reason)
	}
	if err.Error() != refusal.Reason {
		t.Errorf("Error() should return the reason, got %q", err.Error())
	}
}

func TestRefusalDoesNotMatchOtherSentinels(t *testing.T) {
	var err error = &Refusal{Reason: "Commande non réceptionnée chez le transitaire"}

	if errors.Is(err, ErrCapacityExhausted) {
		t.Error("refusal must not match ErrCapacityExhausted")
	}
	if errors.Is(err, ErrAlreadyCancelled) {
		t.Error("refusal must not match ErrAlreadyCancelled")
	}
}

func newBookingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	idgen.Init()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Transitaire{},
		&models.Supplier{},
		&models.Product{},
		&models.Order{},
		&models.OrderLine{},
		&models.Groupage{},
		&models.Booking{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedGroupageAndOrder(t *testing.T, db *gorm.DB) (models.Groupage, models.Order) {
	t.Helper()

	transitaire := models.Transitaire{TransitaireCode: "SIFA", TransitaireName: "SIFA Transit"}
	if err := db.Create(&transitaire).Error; err != nil {
		t.Fatalf("seed transitaire: %v", err)
	}

	groupage := models.Groupage{
		GroupageNo:        "GRP2608310001",
		TransitaireID:     transitaire.ID,
		MaxPallets:        10,
		MaxWeightKg:       10000,
		MaxVolumeM3:       30,
		AvailablePallets:  10,
		AvailableWeightKg: 10000,
		AvailableVolumeM3: 30,
	}
	if err := db.Create(&groupage).Error; err != nil {
		t.Fatalf("seed groupage: %v", err)
	}

	order := models.Order{
		OrderNo:       "CMD2608310001",
		TransitaireID: transitaire.ID,
		WeightKg:      2500,
		VolumeM3:      8,
		IsReceived:    true,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return groupage, order
}

func fetchGroupage(t *testing.T, db *gorm.DB, id uint) models.Groupage {
	t.Helper()
	var g models.Groupage
	if err := db.First(&g, id).Error; err != nil {
		t.Fatalf("fetch groupage: %v", err)
	}
	return g
}

func TestCreateBookingDecrementsAvailability(t *testing.T) {
	db := newBookingTestDB(t)
	groupage, order := seedGroupageAndOrder(t, db)

	repo := NewBookingRepository(db)
	booking, err := repo.Create(BookingRequest{
		GroupageID:     groupage.ID,
		OrderID:        order.ID,
		PalettesBooked: 4,
		WeightBookedKg: 2500,
		VolumeBookedM3: 8,
		UserID:         1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if booking.BookingStatus != models.BookingPending {
		t.Errorf("status = %q, want %q", booking.BookingStatus, models.BookingPending)
	}
	if booking.BookingID == 0 {
		t.Error("booking should carry a generated identifier")
	}

	got := fetchGroupage(t, db, groupage.ID)
	if got.AvailablePallets != 6 || got.AvailableWeightKg != 7500 || got.AvailableVolumeM3 != 22 {
		t.Errorf("availability after booking = %d/%.0f/%.0f, want 6/7500/22",
			got.AvailablePallets, got.AvailableWeightKg, got.AvailableVolumeM3)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("fetch order: %v", err)
	}
	if reloaded.GroupageID == nil || *reloaded.GroupageID != groupage.ID {
		t.Error("order should be linked to the groupage")
	}
}

func TestCancelBookingRestoresExactlyOnce(t *testing.T) {
	db := newBookingTestDB(t)
	groupage, order := seedGroupageAndOrder(t, db)

	repo := NewBookingRepository(db)
	booking, err := repo.Create(BookingRequest{
		GroupageID:     groupage.ID,
		OrderID:        order.ID,
		PalettesBooked: 4,
		WeightBookedKg: 2500,
		VolumeBookedM3: 8,
		UserID:         1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Cancel(booking.ID, 1); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	got := fetchGroupage(t, db, groupage.ID)
	if got.AvailablePallets != 10 || got.AvailableWeightKg != 10000 || got.AvailableVolumeM3 != 30 {
		t.Errorf("availability after cancel = %d/%.0f/%.0f, want 10/10000/30",
			got.AvailablePallets, got.AvailableWeightKg, got.AvailableVolumeM3)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("fetch order: %v", err)
	}
	if reloaded.GroupageID != nil {
		t.Error("cancel should unlink the order from the groupage")
	}

	// A second cancel hits the status guard and must not restore again.
	if err := repo.Cancel(booking.ID, 1); !errors.Is(err, ErrAlreadyCancelled) {
		t.Fatalf("second Cancel = %v, want ErrAlreadyCancelled", err)
	}

	got = fetchGroupage(t, db, groupage.ID)
	if got.AvailablePallets != 10 || got.AvailableWeightKg != 10000 || got.AvailableVolumeM3 != 30 {
		t.Errorf("availability after double cancel = %d/%.0f/%.0f, counters were restored twice",
			got.AvailablePallets, got.AvailableWeightKg, got.AvailableVolumeM3)
	}
}

func TestCreateBookingCapacityExhausted(t *testing.T) {
	db := newBookingTestDB(t)
	groupage, order := seedGroupageAndOrder(t, db)

	// Simulate a concurrent booking that drained the pallet slots between the
	// planner's screen load and the submit.
	if err := db.Model(&models.Groupage{}).Where("id = ?", groupage.ID).
		Update("available_pallets", 2).Error; err != nil {
		t.Fatalf("drain availability: %v", err)
	}

	repo := NewBookingRepository(db)
	_, err := repo.Create(BookingRequest{
		GroupageID:     groupage.ID,
		OrderID:        order.ID,
		PalettesBooked: 5,
		WeightBookedKg: 2500,
		VolumeBookedM3: 8,
		UserID:         1,
	})
	if !errors.Is(err, ErrCapacityExhausted) {
		t.Fatalf("Create = %v, want ErrCapacityExhausted", err)
	}

	// The failed attempt must leave no trace.
	got := fetchGroupage(t, db, groupage.ID)
	if got.AvailablePallets != 2 || got.AvailableWeightKg != 10000 || got.AvailableVolumeM3 != 30 {
		t.Errorf("availability after refused booking = %d/%.0f/%.0f, want 2/10000/30",
			got.AvailablePallets, got.AvailableWeightKg, got.AvailableVolumeM3)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("refused booking left %d rows", count)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("fetch order: %v", err)
	}
	if reloaded.GroupageID != nil {
		t.Error("refused booking must not link the order")
	}
}
