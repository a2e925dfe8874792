// Package loading evaluates whether candidate cargo fits the remaining
// capacity of a shipping unit (container or groupage). It is pure arithmetic
// over values supplied by the caller; persistence and hazard segregation live
// elsewhere.
package loading

import (
	"fmt"
	"math"
)

// FallbackCartonsPerPalette converts a raw carton count into pallets when the
// product catalog has no packing ratios for the order.
const FallbackCartonsPerPalette = 20

// Unit is the capacity profile of a container or groupage slot.
type Unit struct {
	Transitaire           string
	MaxPallets            int
	MaxWeightKg           float64
	MaxVolumeM3           float64
	DangerousGoodsAllowed bool
}

// Line is one order line with optional product-level packing ratios. A ratio
// of zero means the catalog does not know it and the line falls back to the
// order-level carton heuristic.
type Line struct {
	Quantity          int
	UnitsPerPackage   int
	PackagesPerCarton int
	CartonsPerPalette int
}

// Cargo is the loading view of an order: only what the capacity and
// segregation checks need.
type Cargo struct {
	Reference   string
	Transitaire string
	WeightKg    float64
	VolumeM3    float64
	TotalValue  float64
	CartonCount int
	Received    bool
	Dangerous   bool
	Lines       []Line
}

// Load is the aggregate consumption of the cargo already in a unit.
type Load struct {
	TotalWeightKg float64 `json:"total_weight_kg"`
	TotalVolumeM3 float64 `json:"total_volume_m3"`
	TotalValue    float64 `json:"total_value"`
	TotalPallets  int     `json:"total_pallets"`
}

// Decision is a capacity verdict. A refusal is a value, not an error; Reason
// is written for the operator and names the first failing rule only.
type Decision struct {
	OK     bool   `json:"can_book"`
	Reason string `json:"reason"`
}

// PalletsForLine computes the pallet need of one order line from its packing
// ratios: quantity → packages → cartons → pallets, rounding up at each step.
// Returns 0 when any ratio is missing.
func PalletsForLine(l Line) int {
	if l.Quantity <= 0 || l.UnitsPerPackage <= 0 || l.PackagesPerCarton <= 0 || l.CartonsPerPalette <= 0 {
		return 0
	}
	packages := int(math.Ceil(float64(l.Quantity) / float64(l.UnitsPerPackage)))
	cartons := int(math.Ceil(float64(packages) / float64(l.PackagesPerCarton)))
	return int(math.Ceil(float64(cartons) / float64(l.CartonsPerPalette)))
}

// Pallets derives the pallet count of a cargo. Lines carrying full packing
// ratios are summed precisely; if none do, the order-level carton count is
// divided by the fallback ratio, with a floor of one pallet for any cargo
// that has cartons at all.
func Pallets(c Cargo) int {
	fromLines := 0
	for _, l := range c.Lines {
		fromLines += PalletsForLine(l)
	}
	if fromLines > 0 {
		return fromLines
	}
	if c.CartonCount <= 0 {
		return 0
	}
	pallets := int(math.Ceil(float64(c.CartonCount) / float64(FallbackCartonsPerPalette)))
	if pallets < 1 {
		pallets = 1
	}
	return pallets
}

// AggregateLoad sums weight, volume, value and derived pallets over the
// cargo already assigned to a unit.
func AggregateLoad(cargos []Cargo) Load {
	var load Load
	for _, c := range cargos {
		load.TotalWeightKg += c.WeightKg
		load.TotalVolumeM3 += c.VolumeM3
		load.TotalValue += c.TotalValue
		load.TotalPallets += Pallets(c)
	}
	return load
}

// CanBook decides whether cargo fits a unit on top of the current load.
// Checks short-circuit: the first failing rule is the reason reported, in
// this order — transitaire, reception, dangerous goods, weight, volume,
// pallets. All capacity boundaries are inclusive.
func CanBook(c Cargo, u Unit, current Load) Decision {
	if c.Transitaire != u.Transitaire {
		return Decision{Reason: fmt.Sprintf(
			"Transitaire différent: commande chez %s, unité gérée par %s", c.Transitaire, u.Transitaire)}
	}
	if !c.Received {
		return Decision{Reason: "Commande non réceptionnée chez le transitaire"}
	}
	if c.Dangerous && !u.DangerousGoodsAllowed {
		return Decision{Reason: "Marchandises dangereuses non acceptées sur cette unité"}
	}
	if newWeight := current.TotalWeightKg + c.WeightKg; newWeight > u.MaxWeightKg {
		return Decision{Reason: fmt.Sprintf(
			"Capacité poids dépassée: %.1fT > %.1fT", newWeight/1000, u.MaxWeightKg/1000)}
	}
	if newVolume := current.TotalVolumeM3 + c.VolumeM3; newVolume > u.MaxVolumeM3 {
		return Decision{Reason: fmt.Sprintf(
			"Capacité volume dépassée: %.1fm3 > %.1fm3", newVolume, u.MaxVolumeM3)}
	}
	if newPallets := current.TotalPallets + Pallets(c); newPallets > u.MaxPallets {
		return Decision{Reason: fmt.Sprintf(
			"Capacité palettes dépassée: %d > %d", newPallets, u.MaxPallets)}
	}
	return Decision{OK: true}
}
