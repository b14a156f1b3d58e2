package service

import (
	"express/internal/domain"
)

// Fleet owns the vehicle roster and its Available / In-transit views.
// Fleet is not safe for concurrent use; the Dispatcher serializes access.
type Fleet struct {
	roster    []*domain.Vehicle
	available []*domain.Vehicle
	inTransit []*domain.Vehicle
}

// NewFleet builds a fleet from roster entries. Vehicles belong to no view
// until the first Classify.
func NewFleet(configs []domain.VehicleConfig) *Fleet {
	roster := make([]*domain.Vehicle, 0, len(configs))
	for _, cfg := range configs {
		roster = append(roster, domain.NewVehicle(cfg))
	}
	return &Fleet{roster: roster}
}

// Classify places every vehicle in exactly one view based on its load.
// Vehicles already in the right view are left untouched. Reports whether any
// vehicle moved into transit.
func (f *Fleet) Classify() bool {
	movedToTransit := false
	for _, v := range f.roster {
		if v.IsFull() {
			if !contains(f.inTransit, v) {
				f.available = remove(f.available, v)
				f.inTransit = append(f.inTransit, v)
				v.Status = domain.VehicleStatusDelivering
				movedToTransit = true
			}
			continue
		}

		if !contains(f.available, v) {
			f.inTransit = remove(f.inTransit, v)
			f.available = append(f.available, v)
			v.Status = domain.VehicleStatusLoading
		}
	}
	return movedToTransit
}

// FindAvailable returns the last Available vehicle with the given name.
func (f *Fleet) FindAvailable(name string) *domain.Vehicle {
	return findLast(f.available, name)
}

// FindInTransit returns the last In-transit vehicle with the given name.
func (f *Fleet) FindInTransit(name string) *domain.Vehicle {
	return findLast(f.inTransit, name)
}

// Admit reports whether pkg fits in the vehicle's remaining capacity.
// Assign does not call this; callers must check before assigning.
func Admit(v *domain.Vehicle, pkg *domain.Package) bool {
	return v.LoadedWeight()+pkg.Weight <= v.MaxWeight
}

// Assign loads pkg onto the named Available vehicle and reclassifies the
// fleet. Returns false without side effects when no such vehicle exists.
func (f *Fleet) Assign(pkg *domain.Package, vehicleName string) (assigned, movedToTransit bool) {
	v := f.FindAvailable(vehicleName)
	if v == nil {
		return false, false
	}

	pkg.TravelTime = pkg.Distance / v.Speed
	v.Packages = append(v.Packages, pkg)
	v.Status = domain.VehicleStatusLoading

	return true, f.Classify()
}

// Deliver removes the named package from the named In-transit vehicle. An
// emptied vehicle returns to the Available view with status AVAILABLE.
func (f *Fleet) Deliver(vehicleName, packageName string) bool {
	v := f.FindInTransit(vehicleName)
	if v == nil {
		return false
	}

	idx := -1
	for i, p := range v.Packages {
		if p.Name == packageName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	v.Packages = append(v.Packages[:idx], v.Packages[idx+1:]...)

	if len(v.Packages) == 0 {
		f.inTransit = remove(f.inTransit, v)
		f.available = append(f.available, v)
		v.Status = domain.VehicleStatusAvailable
	}
	return true
}

// Vehicles returns the roster in configuration order.
func (f *Fleet) Vehicles() []*domain.Vehicle {
	return f.roster
}

// Available returns copies of the Available vehicles.
func (f *Fleet) Available() []*domain.Vehicle {
	return cloneVehicles(f.available)
}

// InTransit returns copies of the In-transit vehicles.
func (f *Fleet) InTransit() []*domain.Vehicle {
	return cloneVehicles(f.inTransit)
}

func contains(list []*domain.Vehicle, v *domain.Vehicle) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func remove(list []*domain.Vehicle, v *domain.Vehicle) []*domain.Vehicle {
	for i, item := range list {
		if item == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func findLast(list []*domain.Vehicle, name string) *domain.Vehicle {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Name == name {
			return list[i]
		}
	}
	return nil
}

func cloneVehicles(list []*domain.Vehicle) []*domain.Vehicle {
	out := make([]*domain.Vehicle, 0, len(list))
	for _, v := range list {
		out = append(out, v.Clone())
	}
	return out
}
