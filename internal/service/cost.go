package service

import (
	"fmt"

	"express/internal/domain"
)

const (
	baseDeliveryCost = 100.0
	costPerKg        = 10.0
	costPerKm        = 5.0
)

// DiscountCriteria is the inclusive weight/distance window a package must fall
// in for a discount tier to apply.
type DiscountCriteria struct {
	MinWeight   float64
	MaxWeight   float64
	MinDistance float64
	MaxDistance float64
}

// Matches reports whether weight and distance both fall inside the window.
func (c DiscountCriteria) Matches(weight, distance float64) bool {
	return weight >= c.MinWeight && weight <= c.MaxWeight &&
		distance >= c.MinDistance && distance <= c.MaxDistance
}

// DefaultDiscountCriteria returns eligibility windows keyed by discount percent.
// Percentages without an entry are never eligible.
func DefaultDiscountCriteria() map[int]DiscountCriteria {
	return map[int]DiscountCriteria{
		10: {MinWeight: 70, MaxWeight: 200, MinDistance: 0, MaxDistance: 200},
		7:  {MinWeight: 100, MaxWeight: 250, MinDistance: 50, MaxDistance: 150},
		5:  {MinWeight: 10, MaxWeight: 150, MinDistance: 50, MaxDistance: 250},
	}
}

// CostCalculator prices packages against a read-only offer table.
type CostCalculator struct {
	offers   map[string]int
	criteria map[int]DiscountCriteria
}

// NewCostCalculator creates a CostCalculator from the given offers.
func NewCostCalculator(offers []domain.Offer) *CostCalculator {
	table := make(map[string]int, len(offers))
	for _, o := range offers {
		table[o.Code] = o.Percent
	}
	return &CostCalculator{
		offers:   table,
		criteria: DefaultDiscountCriteria(),
	}
}

// Offers returns a copy of the offer table.
func (c *CostCalculator) Offers() map[string]int {
	out := make(map[string]int, len(c.offers))
	for code, pct := range c.offers {
		out[code] = pct
	}
	return out
}

// BaseCost returns the undiscounted delivery cost.
func BaseCost(weight, distance float64) float64 {
	return baseDeliveryCost + weight*costPerKg + distance*costPerKm
}

// Quote computes the cost breakdown for a package.
// Eligibility depends only on weight and distance, never on the resulting cost.
func (c *CostCalculator) Quote(weight, distance float64, offerCode string) domain.Quote {
	base := BaseCost(weight, distance)
	percent := c.offers[offerCode]

	q := domain.Quote{
		BaseCost:        base,
		DiscountPercent: percent,
		TotalCost:       base,
		Description:     "(Offer not applicable as criteria not met)",
	}

	crit, ok := c.criteria[percent]
	if !ok || !crit.Matches(weight, distance) {
		return q
	}

	q.DiscountApplies = true
	q.DiscountAmount = float64(percent) / 100 * base
	q.TotalCost = base - q.DiscountAmount
	q.Description = fmt.Sprintf("(%d%% of %.2f i.e: Delivery Cost)", percent, base)
	return q
}
