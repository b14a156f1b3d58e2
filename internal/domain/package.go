package domain

// Package represents a unit of cargo.
type Package struct {
	Name         string
	Weight       float64 // kg
	Distance     float64 // km
	TotalCost    float64 // fixed when the package is committed to storage
	DiscountCode string
	TravelTime   float64 // hours, stamped on assignment: Distance / vehicle speed
}

// Clone returns a copy of the package.
func (p *Package) Clone() *Package {
	c := *p
	return &c
}
