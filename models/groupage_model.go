package models

import (
	"cargoflow/cargo/loading"
	"cargoflow/types"

	"gorm.io/gorm"
)

// Booking statuses. Cancelled bookings keep their row for traceability; their
// booked quantities have been restored to the groupage.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Groupage is a consolidated shipment: several orders share one container's
// space, each through a Booking that reserves part of the capacity. The
// available_* counters are mutated only by conditional updates in
// repositories.BookingRepository; never write them directly.
type Groupage struct {
	gorm.Model
	GroupageNo    string      `json:"groupage_no" gorm:"unique"`
	Status        string      `json:"status" gorm:"default:'available'"` // available, full
	TransitaireID uint        `json:"transitaire_id"`
	Transitaire   Transitaire `gorm:"foreignKey:TransitaireID"`

	MaxPallets            int     `json:"max_pallets" gorm:"default:0"`
	MaxWeightKg           float64 `json:"max_weight_kg" gorm:"default:0"`
	MaxVolumeM3           float64 `json:"max_volume_m3" gorm:"default:0"`
	DangerousGoodsAllowed bool    `json:"dangerous_goods_allowed" gorm:"default:false"`

	AvailablePallets  int     `json:"available_pallets" gorm:"default:0"`
	AvailableWeightKg float64 `json:"available_weight_kg" gorm:"default:0"`
	AvailableVolumeM3 float64 `json:"available_volume_m3" gorm:"default:0"`

	Etd string `json:"etd"`
	Eta string `json:"eta"`

	Bookings []Booking `json:"bookings" gorm:"foreignKey:GroupageID;references:ID"`

	Remarks   string `json:"remarks"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Booking struct {
	gorm.Model
	BookingID  types.SnowflakeID `json:"booking_id" gorm:"uniqueIndex"`
	GroupageID uint              `json:"groupage_id"`
	OrderID    uint              `json:"order_id"`
	Order      Order             `gorm:"foreignKey:OrderID"`

	PalettesBooked    int     `json:"palettes_booked"`
	WeightBookedKg    float64 `json:"weight_booked_kg"`
	VolumeBookedM3    float64 `json:"volume_booked_m3"`
	BookingStatus     string  `json:"booking_status" gorm:"default:'pending'"`
	HasDangerousGoods bool    `json:"has_dangerous_goods" gorm:"default:false"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// CapacityUnit maps the groupage onto the loading engine's view.
func (g *Groupage) CapacityUnit() loading.Unit {
	return loading.Unit{
		Transitaire:           g.Transitaire.TransitaireCode,
		MaxPallets:            g.MaxPallets,
		MaxWeightKg:           g.MaxWeightKg,
		MaxVolumeM3:           g.MaxVolumeM3,
		DangerousGoodsAllowed: g.DangerousGoodsAllowed,
	}
}

// LoadedClasses collects the hazard classes of every order behind an active
// booking.
func (g *Groupage) LoadedClasses() []string {
	classes := []string{}
	for i := range g.Bookings {
		if g.Bookings[i].BookingStatus == BookingCancelled {
			continue
		}
		classes = append(classes, g.Bookings[i].Order.ImdgClasses()...)
	}
	return classes
}

// BookedLoad aggregates the active (non-cancelled) bookings, i.e. the
// capacity already consumed.
func (g *Groupage) BookedLoad() loading.Load {
	var load loading.Load
	for _, b := range g.Bookings {
		if b.BookingStatus == BookingCancelled {
			continue
		}
		load.TotalPallets += b.PalettesBooked
		load.TotalWeightKg += b.WeightBookedKg
		load.TotalVolumeM3 += b.VolumeBookedM3
	}
	return load
}
