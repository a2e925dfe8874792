package loading

import (
	"strings"
	"testing"
)

func TestPallets_FallbackHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		cartons int
		want    int
	}{
		{"no cartons", 0, 0},
		{"single carton rounds up to one pallet", 1, 1},
		{"exact multiple", 40, 2},
		{"41 cartons need 3 pallets", 41, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pallets(Cargo{CartonCount: tt.cartons})
			if got != tt.want {
				t.Errorf("Pallets(%d cartons) = %d, want %d", tt.cartons, got, tt.want)
			}
		})
	}
}

func TestPalletsForLine(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want int
	}{
		{"missing ratios", Line{Quantity: 100}, 0},
		{"exact fit", Line{Quantity: 120, UnitsPerPackage: 6, PackagesPerCarton: 4, CartonsPerPalette: 5}, 1},
		{"rounds up at every step", Line{Quantity: 121, UnitsPerPackage: 6, PackagesPerCarton: 4, CartonsPerPalette: 5}, 2},
		{"small quantity still one pallet", Line{Quantity: 1, UnitsPerPackage: 10, PackagesPerCarton: 10, CartonsPerPalette: 10}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PalletsForLine(tt.line); got != tt.want {
				t.Errorf("PalletsForLine(%+v) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestPallets_PrefersLineRatiosOverHeuristic(t *testing.T) {
	c := Cargo{
		CartonCount: 200, // heuristic would say 10 pallets
		Lines: []Line{
			{Quantity: 120, UnitsPerPackage: 6, PackagesPerCarton: 4, CartonsPerPalette: 5},
			{Quantity: 60, UnitsPerPackage: 6, PackagesPerCarton: 4, CartonsPerPalette: 5},
		},
	}
	if got := Pallets(c); got != 2 {
		t.Errorf("Pallets = %d, want 2 (line-level ratios must win)", got)
	}
}

func TestAggregateLoad(t *testing.T) {
	cargos := []Cargo{
		{WeightKg: 1200, VolumeM3: 8.5, TotalValue: 15000, CartonCount: 20},
		{WeightKg: 800, VolumeM3: 4.5, TotalValue: 5000, CartonCount: 21},
	}
	load := AggregateLoad(cargos)
	if load.TotalWeightKg != 2000 {
		t.Errorf("TotalWeightKg = %v, want 2000", load.TotalWeightKg)
	}
	if load.TotalVolumeM3 != 13 {
		t.Errorf("TotalVolumeM3 = %v, want 13", load.TotalVolumeM3)
	}
	if load.TotalValue != 20000 {
		t.Errorf("TotalValue = %v, want 20000", load.TotalValue)
	}
	if load.TotalPallets != 3 {
		t.Errorf("TotalPallets = %d, want 3", load.TotalPallets)
	}
}

func testUnit() Unit {
	return Unit{
		Transitaire:           "SIFA",
		MaxPallets:            20,
		MaxWeightKg:           24000,
		MaxVolumeM3:           66,
		DangerousGoodsAllowed: false,
	}
}

func receivedCargo() Cargo {
	return Cargo{Transitaire: "SIFA", Received: true, WeightKg: 1000, VolumeM3: 5, CartonCount: 20}
}

func TestCanBook_TransitaireMismatchWinsOverCapacity(t *testing.T) {
	c := receivedCargo()
	c.Transitaire = "TAF"
	c.WeightKg = 100000 // would also overflow, but rule 1 must be reported
	d := CanBook(c, testUnit(), Load{})
	if d.OK {
		t.Fatal("expected refusal")
	}
	if !strings.Contains(d.Reason, "Transitaire") || !strings.Contains(d.Reason, "TAF") || !strings.Contains(d.Reason, "SIFA") {
		t.Errorf("reason = %q, want transitaire mismatch naming both", d.Reason)
	}
}

func TestCanBook_NotReceived(t *testing.T) {
	c := receivedCargo()
	c.Received = false
	d := CanBook(c, testUnit(), Load{})
	if d.OK || !strings.Contains(d.Reason, "non réceptionnée") {
		t.Errorf("decision = %+v, want not-received refusal", d)
	}
}

func TestCanBook_DangerousGoodsRefusedOnlyWhenCarried(t *testing.T) {
	c := receivedCargo()
	c.Dangerous = true
	d := CanBook(c, testUnit(), Load{})
	if d.OK || !strings.Contains(d.Reason, "dangereuses") {
		t.Errorf("decision = %+v, want dangerous-goods refusal", d)
	}

	// A clean order on the same unit passes.
	if d := CanBook(receivedCargo(), testUnit(), Load{}); !d.OK {
		t.Errorf("non-dangerous cargo refused: %q", d.Reason)
	}
}

func TestCanBook_WeightOverflowReportsTonnes(t *testing.T) {
	c := receivedCargo()
	c.WeightKg = 5000
	d := CanBook(c, testUnit(), Load{TotalWeightKg: 20000})
	if d.OK {
		t.Fatal("expected refusal")
	}
	if !strings.Contains(d.Reason, "25.0T") || !strings.Contains(d.Reason, "24.0T") {
		t.Errorf("reason = %q, want both sides in tonnes", d.Reason)
	}
}

func TestCanBook_InclusiveBoundaries(t *testing.T) {
	u := testUnit()
	c := receivedCargo() // 1000 kg, 5 m3, 1 pallet

	exact := Load{TotalWeightKg: 23000, TotalVolumeM3: 61, TotalPallets: 19}
	if d := CanBook(c, u, exact); !d.OK {
		t.Errorf("exact fit refused: %q", d.Reason)
	}

	over := Load{TotalWeightKg: 23000.5, TotalVolumeM3: 61, TotalPallets: 19}
	if d := CanBook(c, u, over); d.OK {
		t.Error("overflow by 0.5kg accepted")
	}
}

func TestCanBook_VolumeAndPalletReasons(t *testing.T) {
	u := testUnit()
	c := receivedCargo()

	d := CanBook(c, u, Load{TotalVolumeM3: 62})
	if d.OK || !strings.Contains(d.Reason, "m3") {
		t.Errorf("decision = %+v, want volume refusal", d)
	}

	d = CanBook(c, u, Load{TotalPallets: 20})
	if d.OK || !strings.Contains(d.Reason, "palettes") {
		t.Errorf("decision = %+v, want pallet refusal", d)
	}
}
