package repositories

import (
	"errors"
	"fmt"

	"cargoflow/cargo/imdg"
	"cargoflow/cargo/loading"
	"cargoflow/controllers/idgen"
	"cargoflow/models"
	"cargoflow/types"
	"cargoflow/utils"

	"gorm.io/gorm"
)

var (
	// ErrCannotBook carries the operator-facing refusal reason.
	ErrCannotBook = errors.New("booking refused")
	// ErrCapacityExhausted means the conditional decrement found less
	// availability than requested (lost race or stale screen).
	ErrCapacityExhausted = errors.New("capacité insuffisante sur le groupage")
	// ErrAlreadyCancelled guards the idempotent cancel: capacity was not
	// restored a second time.
	ErrAlreadyCancelled = errors.New("réservation déjà annulée")
)

// Refusal wraps ErrCannotBook with the reason reported by the checks.
type Refusal struct {
	Reason string
}

func (r *Refusal) Error() string { return r.Reason }
func (r *Refusal) Unwrap() error { return ErrCannotBook }

type BookingRepository struct {
	db    *gorm.DB
	locks *utils.KeyLock
}

var bookingLocks = utils.NewKeyLock()

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db, locks: bookingLocks}
}

type BookingRequest struct {
	GroupageID     uint
	OrderID        uint
	PalettesBooked int
	WeightBookedKg float64
	VolumeBookedM3 float64
	UserID         int
}

// Create reserves part of a groupage's capacity for an order. Hazard
// segregation and the business checks run first; the capacity reservation
// itself is a conditional decrement of the available_* counters, so a
// concurrent booking that would overbook the unit loses the race and gets
// ErrCapacityExhausted. The whole sequence is additionally serialized
// per-groupage in-process.
func (r *BookingRepository) Create(req BookingRequest) (*models.Booking, error) {
	key := fmt.Sprintf("groupage:%d", req.GroupageID)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	var booking models.Booking
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var groupage models.Groupage
		if err := tx.Preload("Transitaire").
			Preload("Bookings", "booking_status <> ?", models.BookingCancelled).
			Preload("Bookings.Order.Lines.Product").
			First(&groupage, req.GroupageID).Error; err != nil {
			return err
		}

		var order models.Order
		if err := tx.Preload("Transitaire").Preload("Lines.Product").
			First(&order, req.OrderID).Error; err != nil {
			return err
		}

		if order.GroupageID != nil || order.ContainerID != nil {
			return &Refusal{Reason: "Commande déjà affectée à une unité"}
		}

		// Segregation first: loaded classes plus the candidate's.
		classes := append(groupage.LoadedClasses(), order.ImdgClasses()...)
		if result := imdg.CheckGroupCompatibility(classes); !result.Compatible {
			return &Refusal{Reason: result.Conflicts[0].Description}
		}

		if d := loading.CanBook(order.ToCargo(), groupage.CapacityUnit(), groupage.BookedLoad()); !d.OK {
			return &Refusal{Reason: d.Reason}
		}

		res := tx.Model(&models.Groupage{}).
			Where("id = ? AND available_pallets >= ? AND available_weight_kg >= ? AND available_volume_m3 >= ?",
				groupage.ID, req.PalettesBooked, req.WeightBookedKg, req.VolumeBookedM3).
			Updates(map[string]interface{}{
				"available_pallets":   gorm.Expr("available_pallets - ?", req.PalettesBooked),
				"available_weight_kg": gorm.Expr("available_weight_kg - ?", req.WeightBookedKg),
				"available_volume_m3": gorm.Expr("available_volume_m3 - ?", req.VolumeBookedM3),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCapacityExhausted
		}

		booking = models.Booking{
			BookingID:         types.SnowflakeID(idgen.GenerateID()),
			GroupageID:        groupage.ID,
			OrderID:           order.ID,
			PalettesBooked:    req.PalettesBooked,
			WeightBookedKg:    req.WeightBookedKg,
			VolumeBookedM3:    req.VolumeBookedM3,
			BookingStatus:     models.BookingPending,
			HasDangerousGoods: order.HasDangerousGoods(),
			CreatedBy:         req.UserID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("groupage_id", groupage.ID).Error; err != nil {
			return err
		}

		return r.refreshStatus(tx, groupage.ID)
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Confirm moves a pending booking to confirmed.
func (r *BookingRepository) Confirm(bookingID uint, userID int) error {
	res := r.db.Model(&models.Booking{}).
		Where("id = ? AND booking_status = ?", bookingID, models.BookingPending).
		Updates(map[string]interface{}{
			"booking_status": models.BookingConfirmed,
			"updated_by":     userID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &Refusal{Reason: "Réservation introuvable ou non confirmable"}
	}
	return nil
}

// Cancel restores the booked capacity exactly once. The status flip is
// guarded in the WHERE clause, so cancelling an already-cancelled booking
// affects zero rows and never double-restores the counters.
func (r *BookingRepository) Cancel(bookingID uint, userID int) error {
	var booking models.Booking
	if err := r.db.First(&booking, bookingID).Error; err != nil {
		return err
	}

	key := fmt.Sprintf("groupage:%d", booking.GroupageID)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND booking_status <> ?", bookingID, models.BookingCancelled).
			Updates(map[string]interface{}{
				"booking_status": models.BookingCancelled,
				"updated_by":     userID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyCancelled
		}

		if err := tx.Model(&models.Groupage{}).Where("id = ?", booking.GroupageID).
			Updates(map[string]interface{}{
				"available_pallets":   gorm.Expr("available_pallets + ?", booking.PalettesBooked),
				"available_weight_kg": gorm.Expr("available_weight_kg + ?", booking.WeightBookedKg),
				"available_volume_m3": gorm.Expr("available_volume_m3 + ?", booking.VolumeBookedM3),
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", booking.OrderID).
			Update("groupage_id", nil).Error; err != nil {
			return err
		}

		return r.refreshStatus(tx, booking.GroupageID)
	})
}

// refreshStatus flips the groupage between available and full depending on
// the remaining pallet slots.
func (r *BookingRepository) refreshStatus(tx *gorm.DB, groupageID uint) error {
	var groupage models.Groupage
	if err := tx.First(&groupage, groupageID).Error; err != nil {
		return err
	}
	status := "available"
	if groupage.AvailablePallets <= 0 {
		status = "full"
	}
	if groupage.Status == status {
		return nil
	}
	return tx.Model(&models.Groupage{}).Where("id = ?", groupageID).
		Update("status", status).Error
}
