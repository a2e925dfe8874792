package models

import (
	"cargoflow/cargo/loading"
	"cargoflow/types"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNo       string      `json:"order_no" gorm:"unique"`
	Status        string      `json:"status" gorm:"default:'brouillon'"`
	OrderDate     string      `json:"order_date"`
	SupplierID    uint        `json:"supplier_id"`
	Supplier      Supplier    `gorm:"foreignKey:SupplierID"`
	TransitaireID uint        `json:"transitaire_id"`
	Transitaire   Transitaire `gorm:"foreignKey:TransitaireID"`

	WeightKg    float64 `json:"weight_kg" gorm:"default:0"`
	VolumeM3    float64 `json:"volume_m3" gorm:"default:0"`
	CartonCount int     `json:"carton_count" gorm:"default:0"`
	TotalValue  float64 `json:"total_value" gorm:"default:0"`
	IsReceived  bool    `json:"is_received" gorm:"default:false"`

	// An order sits in at most one shipping unit at a time.
	ContainerID *uint `json:"container_id"`
	GroupageID  *uint `json:"groupage_id"`

	Lines []OrderLine `json:"lines" gorm:"foreignKey:OrderID;references:ID"`

	Remarks   string `json:"remarks"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type OrderLine struct {
	gorm.Model
	LineID    types.SnowflakeID `json:"line_id" gorm:"uniqueIndex"`
	OrderID   uint              `json:"order_id"`
	ProductID uint              `json:"product_id"`
	Product   Product           `gorm:"foreignKey:ProductID"`
	Quantity  int               `json:"quantity"`
	UnitPrice float64           `json:"unit_price"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// HasDangerousGoods reports whether any line carries a dangerous product.
// Lines must be preloaded with their products.
func (o *Order) HasDangerousGoods() bool {
	for _, l := range o.Lines {
		if l.Product.Dangerous {
			return true
		}
	}
	return false
}

// ImdgClasses collects the hazard classes present on the order's lines.
func (o *Order) ImdgClasses() []string {
	classes := []string{}
	for _, l := range o.Lines {
		if l.Product.Dangerous && l.Product.ImdgClass != "" {
			classes = append(classes, l.Product.ImdgClass)
		}
	}
	return classes
}

// ToCargo maps the order onto the loading engine's view. Lines without full
// packing ratios contribute nothing to the fine-grained pallet count and the
// engine falls back to the carton heuristic.
func (o *Order) ToCargo() loading.Cargo {
	lines := make([]loading.Line, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, loading.Line{
			Quantity:          l.Quantity,
			UnitsPerPackage:   l.Product.UnitsPerPackage,
			PackagesPerCarton: l.Product.PackagesPerCarton,
			CartonsPerPalette: l.Product.CartonsPerPalette,
		})
	}
	return loading.Cargo{
		Reference:   o.OrderNo,
		Transitaire: o.Transitaire.TransitaireCode,
		WeightKg:    o.WeightKg,
		VolumeM3:    o.VolumeM3,
		TotalValue:  o.TotalValue,
		CartonCount: o.CartonCount,
		Received:    o.IsReceived,
		Dangerous:   o.HasDangerousGoods(),
		Lines:       lines,
	}
}
