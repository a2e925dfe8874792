package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	ProductCode string   `json:"product_code" gorm:"unique"`
	ProductName string   `json:"product_name"`
	SupplierID  uint     `json:"supplier_id"`
	Supplier    Supplier `gorm:"foreignKey:SupplierID"`
	UnitPrice   float64  `json:"unit_price" gorm:"default:0"`
	WeightKg    float64  `json:"weight_kg" gorm:"default:0"`
	VolumeM3    float64  `json:"volume_m3" gorm:"default:0"`

	// Packing ratios used for fine-grained pallet derivation. Zero means
	// unknown; the loading engine then falls back to the carton heuristic.
	UnitsPerPackage   int `json:"units_per_package" gorm:"default:0"`
	PackagesPerCarton int `json:"packages_per_carton" gorm:"default:0"`
	CartonsPerPalette int `json:"cartons_per_palette" gorm:"default:0"`

	Dangerous bool   `json:"dangerous" gorm:"default:false"`
	ImdgClass string `json:"imdg_class"`

	Remarks   string `json:"remarks"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
