package models

import (
	"cargoflow/cargo/loading"

	"gorm.io/gorm"
)

type Container struct {
	gorm.Model
	ContainerNo   string      `json:"container_no" gorm:"unique"`
	ContainerType string      `json:"container_type"` // 20GP, 40GP, 40HC
	Status        string      `json:"status" gorm:"default:'planning'"` // planning, loading, departed, arrived, completed
	TransitaireID uint        `json:"transitaire_id"`
	Transitaire   Transitaire `gorm:"foreignKey:TransitaireID"`

	MaxPallets            int     `json:"max_pallets" gorm:"default:0"`
	MaxWeightKg           float64 `json:"max_weight_kg" gorm:"default:0"`
	MaxVolumeM3           float64 `json:"max_volume_m3" gorm:"default:0"`
	DangerousGoodsAllowed bool    `json:"dangerous_goods_allowed" gorm:"default:false"`

	Etd string `json:"etd"`
	Eta string `json:"eta"`

	Orders []Order `json:"orders" gorm:"foreignKey:ContainerID;references:ID"`

	Remarks   string `json:"remarks"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// CapacityUnit maps the container onto the loading engine's view.
func (c *Container) CapacityUnit() loading.Unit {
	return loading.Unit{
		Transitaire:           c.Transitaire.TransitaireCode,
		MaxPallets:            c.MaxPallets,
		MaxWeightKg:           c.MaxWeightKg,
		MaxVolumeM3:           c.MaxVolumeM3,
		DangerousGoodsAllowed: c.DangerousGoodsAllowed,
	}
}

// LoadedClasses collects the hazard classes of every order already assigned.
func (c *Container) LoadedClasses() []string {
	classes := []string{}
	for i := range c.Orders {
		classes = append(classes, c.Orders[i].ImdgClasses()...)
	}
	return classes
}
