package domain

// VehicleStatus represents the current status of a vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable  VehicleStatus = "AVAILABLE"
	VehicleStatusLoading    VehicleStatus = "LOADING"
	VehicleStatusDelivering VehicleStatus = "DELIVERING"
)

// VehicleConfig describes one roster entry. Speed is in km/h, MaxWeight in kg.
type VehicleConfig struct {
	Name      string  `mapstructure:"name" json:"name" validate:"required"`
	Speed     float64 `mapstructure:"speed" json:"speed" validate:"gt=0"`
	MaxWeight float64 `mapstructure:"max_weight" json:"max_weight" validate:"gt=0"`
}

// DefaultFleet returns the reference roster of two lorries.
func DefaultFleet() []VehicleConfig {
	return []VehicleConfig{
		{Name: "Vehicle01", Speed: 100, MaxWeight: 200},
		{Name: "Vehicle02", Speed: 100, MaxWeight: 200},
	}
}

// Vehicle represents a delivery lorry in the fleet.
type Vehicle struct {
	Name      string
	Packages  []*Package
	Speed     float64
	MaxWeight float64
	Status    VehicleStatus
}

// NewVehicle creates an empty vehicle from its roster entry.
func NewVehicle(cfg VehicleConfig) *Vehicle {
	return &Vehicle{
		Name:      cfg.Name,
		Speed:     cfg.Speed,
		MaxWeight: cfg.MaxWeight,
		Status:    VehicleStatusAvailable,
	}
}

// LoadedWeight returns the summed weight of all packages on board.
func (v *Vehicle) LoadedWeight() float64 {
	total := 0.0
	for _, p := range v.Packages {
		total += p.Weight
	}
	return total
}

// IsFull reports whether the load has reached capacity.
func (v *Vehicle) IsFull() bool {
	return v.LoadedWeight() >= v.MaxWeight
}

// HasPackage reports whether the named package is on board.
func (v *Vehicle) HasPackage(name string) bool {
	for _, p := range v.Packages {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, packages included.
func (v *Vehicle) Clone() *Vehicle {
	c := *v
	c.Packages = make([]*Package, 0, len(v.Packages))
	for _, p := range v.Packages {
		c.Packages = append(c.Packages, p.Clone())
	}
	return &c
}
