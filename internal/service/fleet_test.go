package service

import (
	"testing"

	"express/internal/domain"
)

func newTestFleet() *Fleet {
	f := NewFleet([]domain.VehicleConfig{
		{Name: "Vehicle01", Speed: 100, MaxWeight: 200},
		{Name: "Vehicle02", Speed: 50, MaxWeight: 300},
	})
	f.Classify()
	return f
}

func assertPartition(t *testing.T, f *Fleet) {
	t.Helper()
	for _, v := range f.Vehicles() {
		inAvail := contains(f.available, v)
		inTransit := contains(f.inTransit, v)
		if inAvail == inTransit {
			t.Errorf("vehicle %s: available=%v in_transit=%v, want exactly one", v.Name, inAvail, inTransit)
		}
	}
	if len(f.available)+len(f.inTransit) != len(f.Vehicles()) {
		t.Errorf("views hold %d vehicles, roster has %d", len(f.available)+len(f.inTransit), len(f.Vehicles()))
	}
}

func TestFleet_InitialClassification(t *testing.T) {
	t.Parallel()

	f := newTestFleet()
	assertPartition(t, f)

	if len(f.available) != 2 {
		t.Fatalf("expected 2 available vehicles, got %d", len(f.available))
	}
	for _, v := range f.available {
		if v.Status != domain.VehicleStatusLoading {
			t.Errorf("vehicle %s status = %s, want %s", v.Name, v.Status, domain.VehicleStatusLoading)
		}
	}
}

func TestFleet_ClassifyIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newTestFleet()
	f.roster[0].Packages = append(f.roster[0].Packages, &domain.Package{Name: "PKG1", Weight: 200})

	if moved := f.Classify(); !moved {
		t.Fatal("expected full vehicle to move into transit")
	}
	avail := append([]*domain.Vehicle(nil), f.available...)
	transit := append([]*domain.Vehicle(nil), f.inTransit...)

	if moved := f.Classify(); moved {
		t.Error("second classify should move nothing")
	}
	if len(avail) != len(f.available) || len(transit) != len(f.inTransit) {
		t.Fatal("partition changed on second classify")
	}
	for i := range avail {
		if avail[i] != f.available[i] {
			t.Errorf("available[%d] changed", i)
		}
	}
	for i := range transit {
		if transit[i] != f.inTransit[i] {
			t.Errorf("in_transit[%d] changed", i)
		}
	}
	assertPartition(t, f)
}

func TestFleet_AssignReachingCapacityMovesToTransit(t *testing.T) {
	t.Parallel()

	f := newTestFleet()
	first := &domain.Package{Name: "PKG1", Weight: 120, Distance: 50}
	second := &domain.Package{Name: "PKG2", Weight: 80, Distance: 200}

	if ok, moved := f.Assign(first, "Vehicle01"); !ok || moved {
		t.Fatalf("first assign: ok=%v moved=%v, want true/false", ok, moved)
	}
	if first.TravelTime != 0.5 {
		t.Errorf("TravelTime = %v, want 0.5", first.TravelTime)
	}

	if ok, moved := f.Assign(second, "Vehicle01"); !ok || !moved {
		t.Fatalf("second assign: ok=%v moved=%v, want true/true", ok, moved)
	}

	v := f.FindInTransit("Vehicle01")
	if v == nil {
		t.Fatal("expected Vehicle01 in transit")
	}
	if v.Status != domain.VehicleStatusDelivering {
		t.Errorf("status = %s, want %s", v.Status, domain.VehicleStatusDelivering)
	}
	if f.FindAvailable("Vehicle01") != nil {
		t.Error("Vehicle01 should no longer be available")
	}
	assertPartition(t, f)
}

func TestFleet_AssignUnknownVehicleIsNoop(t *testing.T) {
	t.Parallel()

	f := newTestFleet()
	pkg := &domain.Package{Name: "PKG1", Weight: 10, Distance: 10}

	if ok, _ := f.Assign(pkg, "Vehicle99"); ok {
		t.Error("assign to unknown vehicle should fail")
	}
	if pkg.TravelTime != 0 {
		t.Error("travel time should not be stamped on failed assign")
	}
}

func TestFleet_ReclassifiesOverfullVehicle(t *testing.T) {
	t.Parallel()

	f := newTestFleet()
	// Assign trusts its caller; an overfull vehicle is still moved into transit.
	pkg := &domain.Package{Name: "PKG1", Weight: 500, Distance: 10}
	if ok, moved := f.Assign(pkg, "Vehicle02"); !ok || !moved {
		t.Fatalf("assign: ok=%v moved=%v", ok, moved)
	}
	if f.FindInTransit("Vehicle02") == nil {
		t.Error("overfull vehicle should be in transit")
	}
}

func TestFleet_DeliverLastPackageReturnsVehicle(t *testing.T) {
	t.Parallel()

	f := newTestFleet()
	f.Assign(&domain.Package{Name: "PKG1", Weight: 200, Distance: 100}, "Vehicle01")

	if f.Deliver("Vehicle01", "PKG404") {
		t.Error("delivering a package not on board should fail")
	}
	if f.Deliver("Vehicle02", "PKG1") {
		t.Error("delivering from a vehicle not in transit should fail")
	}

	if !f.Deliver("Vehicle01", "PKG1") {
		t.Fatal("expected delivery to succeed")
	}
	v := f.FindAvailable("Vehicle01")
	if v == nil {
		t.Fatal("emptied vehicle should be available")
	}
	if v.Status != domain.VehicleStatusAvailable {
		t.Errorf("status = %s, want %s", v.Status, domain.VehicleStatusAvailable)
	}
	assertPartition(t, f)
}

func TestFleet_PartialDeliveryStaysInTransit(t *testing.T) {
	t.Parallel()

	f := newTestFleet()
	f.Assign(&domain.Package{Name: "PKG1", Weight: 100, Distance: 100}, "Vehicle01")
	f.Assign(&domain.Package{Name: "PKG2", Weight: 100, Distance: 100}, "Vehicle01")

	if !f.Deliver("Vehicle01", "PKG1") {
		t.Fatal("expected delivery to succeed")
	}
	if f.FindInTransit("Vehicle01") == nil {
		t.Error("vehicle with remaining packages should stay in transit")
	}
}

func TestFleet_LookupUsesLastMatch(t *testing.T) {
	t.Parallel()

	f := NewFleet([]domain.VehicleConfig{
		{Name: "Dup", Speed: 10, MaxWeight: 100},
		{Name: "Dup", Speed: 20, MaxWeight: 100},
	})
	f.Classify()

	if v := f.FindAvailable("Dup"); v == nil || v.Speed != 20 {
		t.Errorf("expected most recently added vehicle, got %+v", v)
	}
}

func TestFleet_SnapshotsAreCopies(t *testing.T) {
	t.Parallel()

	f := newTestFleet()
	snap := f.Available()
	snap[0].Name = "mutated"

	if f.available[0].Name == "mutated" {
		t.Error("snapshot shares memory with fleet")
	}
}

func TestEstimateDeliveryHours(t *testing.T) {
	t.Parallel()

	if got := EstimateDeliveryHours(nil); got != 0 {
		t.Errorf("empty estimate = %v, want 0", got)
	}

	vehicles := []*domain.Vehicle{
		{Packages: []*domain.Package{{TravelTime: 1.5}, {TravelTime: 0.5}}},
		{Packages: []*domain.Package{{TravelTime: 2}}},
	}
	if got := EstimateDeliveryHours(vehicles); got != 8 {
		t.Errorf("estimate = %v, want 8", got)
	}
}
