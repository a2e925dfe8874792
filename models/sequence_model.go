package models

import "gorm.io/gorm"

// Sequence backs the per-day document number generator (CMD/CTN/GRP...).
// One row per prefix and day; LastNumber is bumped with a conditional update.
type Sequence struct {
	gorm.Model
	Prefix     string `json:"prefix" gorm:"uniqueIndex:idx_seq_prefix_day"`
	Day        string `json:"day" gorm:"uniqueIndex:idx_seq_prefix_day"` // YYMMDD
	LastNumber int    `json:"last_number" gorm:"default:0"`
}
