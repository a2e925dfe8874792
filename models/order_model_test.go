package models

import (
	"testing"

	"cargoflow/cargo/loading"
)

func makeOrder() Order {
	return Order{
		OrderNo:     "CMD2608310001",
		WeightKg:    1200,
		VolumeM3:    4.5,
		CartonCount: 41,
		TotalValue:  9800,
		IsReceived:  true,
		Transitaire: Transitaire{TransitaireCode: "SIFA"},
		Lines: []OrderLine{
			{Quantity: 500, Product: Product{UnitsPerPackage: 10, PackagesPerCarton: 5, CartonsPerPalette: 40}},
			{Quantity: 30, Product: Product{Dangerous: true, ImdgClass: "Classe 3"}},
		},
	}
}

func TestOrderHasDangerousGoods(t *testing.T) {
	order := makeOrder()
	if !order.HasDangerousGoods() {
		t.Error("order with a dangerous line should report dangerous goods")
	}

	order.Lines[1].Product.Dangerous = false
	if order.HasDangerousGoods() {
		t.Error("order without dangerous lines should not report dangerous goods")
	}
}

func TestOrderImdgClasses(t *testing.T) {
	order := makeOrder()
	classes := order.ImdgClasses()
	if len(classes) != 1 || classes[0] != "Classe 3" {
		t.Errorf("expected [Classe 3], got %v", classes)
	}

	// A dangerous product with no class recorded contributes nothing.
	order.Lines[1].Product.ImdgClass = ""
	if got := order.ImdgClasses(); len(got) != 0 {
		t.Errorf("expected no classes, got %v", got)
	}
}

func TestOrderToCargo(t *testing.T) {
	order := makeOrder()
	cargo := order.ToCargo()

	if cargo.Reference != "CMD2608310001" {
		t.Errorf("reference = %q", cargo.Reference)
	}
	if cargo.Transitaire != "SIFA" {
		t.Errorf("transitaire = %q", cargo.Transitaire)
	}
	if !cargo.Received || !cargo.Dangerous {
		t.Error("received and dangerous flags should carry over")
	}
	if cargo.WeightKg != 1200 || cargo.VolumeM3 != 4.5 || cargo.CartonCount != 41 {
		t.Errorf("totals not carried over: %+v", cargo)
	}
	if len(cargo.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cargo.Lines))
	}
	if cargo.Lines[0].CartonsPerPalette != 40 {
		t.Errorf("packing ratios not carried over: %+v", cargo.Lines[0])
	}
}

func TestGroupageBookedLoadSkipsCancelled(t *testing.T) {
	groupage := Groupage{
		Bookings: []Booking{
			{BookingStatus: BookingConfirmed, PalettesBooked: 4, WeightBookedKg: 3000, VolumeBookedM3: 8},
			{BookingStatus: BookingPending, PalettesBooked: 2, WeightBookedKg: 1000, VolumeBookedM3: 3},
			{BookingStatus: BookingCancelled, PalettesBooked: 10, WeightBookedKg: 9000, VolumeBookedM3: 20},
		},
	}

	want := loading.Load{TotalPallets: 6, TotalWeightKg: 4000, TotalVolumeM3: 11}
	if got := groupage.BookedLoad(); got != want {
		t.Errorf("BookedLoad() = %+v, want %+v", got, want)
	}
}

func TestGroupageLoadedClassesSkipsCancelled(t *testing.T) {
	dangerous := Order{Lines: []OrderLine{
		{Product: Product{Dangerous: true, ImdgClass: "Classe 5.1"}},
	}}
	groupage := Groupage{
		Bookings: []Booking{
			{BookingStatus: BookingConfirmed, Order: dangerous},
			{BookingStatus: BookingCancelled, Order: dangerous},
		},
	}

	classes := groupage.LoadedClasses()
	if len(classes) != 1 || classes[0] != "Classe 5.1" {
		t.Errorf("expected [Classe 5.1], got %v", classes)
	}
}
