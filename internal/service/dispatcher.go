package service

import (
	"context"
	"log"
	"math"
	"strings"
	"sync"

	"express/internal/domain"
)

const maxNameAttempts = 1000

// Input is the package currently being entered.
type Input struct {
	Weight      float64
	Distance    float64
	OfferCode   string
	WeightSet   bool
	DistanceSet bool
}

// Snapshot is a read-only copy of the whole simulation state.
type Snapshot struct {
	Input          Input
	Quote          domain.Quote
	Storage        []*domain.Package
	Available      []*domain.Vehicle
	InTransit      []*domain.Vehicle
	EstimatedHours float64
}

// Dispatcher routes commands to the cost calculator, fleet allocator and
// delivery estimator. Every command and query holds the same mutex, so
// commands never interleave their mutations.
type Dispatcher struct {
	mu sync.Mutex

	calculator *CostCalculator
	fleet      *Fleet
	notifier   Notifier
	namer      Namer

	input          Input
	quote          domain.Quote
	storage        []*domain.Package
	estimatedHours float64
}

// NewDispatcher creates a Dispatcher over the given roster and offers and runs
// the initial fleet classification.
func NewDispatcher(
	vehicles []domain.VehicleConfig,
	offers []domain.Offer,
	notifier Notifier,
	namer Namer,
) (*Dispatcher, error) {
	if len(vehicles) == 0 {
		return nil, ErrEmptyFleet
	}

	d := &Dispatcher{
		calculator: NewCostCalculator(offers),
		fleet:      NewFleet(vehicles),
		notifier:   notifier,
		namer:      namer,
	}
	d.fleet.Classify()
	return d, nil
}

// SetWeight updates the pending weight and recomputes the quote. Negative or
// non-finite weights, and weights that would overflow the cost, are rejected.
func (d *Dispatcher) SetWeight(w float64) error {
	if !finite(w) || w < 0 {
		return ErrInvalidWeight
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !finite(BaseCost(w, d.input.Distance)) {
		return ErrInvalidWeight
	}
	d.input.Weight = w
	d.input.WeightSet = true
	d.recomputeQuote()
	return nil
}

// SetDistance updates the pending distance and recomputes the quote. Negative
// or non-finite distances, and distances that would overflow the cost, are
// rejected.
func (d *Dispatcher) SetDistance(km float64) error {
	if !finite(km) || km < 0 {
		return ErrInvalidDistance
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !finite(BaseCost(d.input.Weight, km)) {
		return ErrInvalidDistance
	}
	d.input.Distance = km
	d.input.DistanceSet = true
	d.recomputeQuote()
	return nil
}

// SetOfferCode updates the pending offer code and recomputes the quote. The
// code is matched exactly as entered.
func (d *Dispatcher) SetOfferCode(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.input.OfferCode = code
	d.recomputeQuote()
}

// CommitPackage moves the pending input into storage as a new package.
// It returns a nil package and nil error when weight or distance was never
// entered.
func (d *Dispatcher) CommitPackage() (*domain.Package, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.input.WeightSet || !d.input.DistanceSet {
		return nil, nil
	}

	name, err := d.uniqueName()
	if err != nil {
		return nil, err
	}

	pkg := &domain.Package{
		Name:         name,
		Weight:       d.input.Weight,
		Distance:     d.input.Distance,
		TotalCost:    d.quote.TotalCost,
		DiscountCode: d.input.OfferCode,
	}
	d.storage = append(d.storage, pkg)

	// Only the amounts are cleared; the eligibility text stays until the
	// next input change.
	d.input = Input{}
	d.quote.BaseCost = 0
	d.quote.DiscountAmount = 0
	d.quote.TotalCost = 0

	log.Printf("package committed name=%s weight=%.2f distance=%.2f cost=%.2f",
		pkg.Name, pkg.Weight, pkg.Distance, pkg.TotalCost)
	return pkg.Clone(), nil
}

// AssignPackage loads a stored package onto an available vehicle.
//
// A missing vehicle name or a package that would overfill the vehicle is
// rejected with ErrAssignmentRejected and a notification. A package not in
// storage, or a vehicle not currently available, is a silent no-op that
// returns false.
func (d *Dispatcher) AssignPackage(ctx context.Context, packageName, vehicleName string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if strings.TrimSpace(vehicleName) == "" {
		d.reject(ctx, packageName, vehicleName)
		return false, ErrAssignmentRejected
	}

	idx := d.storageIndex(packageName)
	if idx < 0 {
		return false, nil
	}
	pkg := d.storage[idx]

	vehicle := d.fleet.FindAvailable(vehicleName)
	if vehicle == nil {
		return false, nil
	}

	if !Admit(vehicle, pkg) {
		d.reject(ctx, packageName, vehicleName)
		return false, ErrAssignmentRejected
	}

	assigned, movedToTransit := d.fleet.Assign(pkg, vehicleName)
	if !assigned {
		return false, nil
	}
	d.storage = append(d.storage[:idx], d.storage[idx+1:]...)

	// Classify can also move a partially delivered vehicle out of transit,
	// so the estimate is refreshed on every assignment.
	d.estimatedHours = EstimateDeliveryHours(d.fleet.inTransit)

	log.Printf("package assigned name=%s vehicle=%s travel_time=%.2fh in_transit=%t",
		pkg.Name, vehicleName, pkg.TravelTime, movedToTransit)
	return true, nil
}

// DeliverPackage removes a package from an in-transit vehicle and refreshes
// the delivery estimate. Returns false when the vehicle is not in transit or
// does not carry the package.
func (d *Dispatcher) DeliverPackage(vehicleName, packageName string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	delivered := d.fleet.Deliver(vehicleName, packageName)
	d.estimatedHours = EstimateDeliveryHours(d.fleet.inTransit)

	if delivered {
		log.Printf("package delivered name=%s vehicle=%s", packageName, vehicleName)
	}
	return delivered
}

// Input returns the pending input.
func (d *Dispatcher) Input() Input {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input
}

// Quote returns the quote for the pending input.
func (d *Dispatcher) Quote() domain.Quote {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.quote
}

// Storage returns copies of the unassigned packages.
func (d *Dispatcher) Storage() []*domain.Package {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.storageCopy()
}

// AvailableVehicles returns copies of the vehicles accepting packages.
func (d *Dispatcher) AvailableVehicles() []*domain.Vehicle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fleet.Available()
}

// InTransitVehicles returns copies of the vehicles out for delivery.
func (d *Dispatcher) InTransitVehicles() []*domain.Vehicle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fleet.InTransit()
}

// EstimatedHours returns the current round-trip delivery estimate.
func (d *Dispatcher) EstimatedHours() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.estimatedHours
}

// Offers returns the offer table.
func (d *Dispatcher) Offers() map[string]int {
	return d.calculator.Offers()
}

// Snapshot returns a consistent copy of the whole state.
func (d *Dispatcher) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		Input:          d.input,
		Quote:          d.quote,
		Storage:        d.storageCopy(),
		Available:      d.fleet.Available(),
		InTransit:      d.fleet.InTransit(),
		EstimatedHours: d.estimatedHours,
	}
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (d *Dispatcher) recomputeQuote() {
	d.quote = d.calculator.Quote(d.input.Weight, d.input.Distance, d.input.OfferCode)
}

func (d *Dispatcher) reject(ctx context.Context, packageName, vehicleName string) {
	if d.notifier == nil {
		return
	}
	if err := d.notifier.NotifyAssignmentRejected(ctx, packageName, vehicleName); err != nil {
		log.Printf("notify assignment rejected failed: package=%s vehicle=%s err=%v", packageName, vehicleName, err)
	}
}

func (d *Dispatcher) storageIndex(name string) int {
	for i, p := range d.storage {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (d *Dispatcher) storageCopy() []*domain.Package {
	out := make([]*domain.Package, 0, len(d.storage))
	for _, p := range d.storage {
		out = append(out, p.Clone())
	}
	return out
}

// uniqueName draws names until one is unused by storage and every vehicle.
func (d *Dispatcher) uniqueName() (string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		name := d.namer.Next()
		if d.nameInUse(name) {
			continue
		}
		return name, nil
	}
	return "", ErrNamesExhausted
}

func (d *Dispatcher) nameInUse(name string) bool {
	if d.storageIndex(name) >= 0 {
		return true
	}
	for _, v := range d.fleet.Vehicles() {
		if v.HasPackage(name) {
			return true
		}
	}
	return false
}
