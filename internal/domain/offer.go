package domain

// Offer maps an offer code to a discount percentage (0-100).
type Offer struct {
	Code    string
	Percent int
}

// DefaultOffers returns the built-in offer table.
func DefaultOffers() []Offer {
	return []Offer{
		{Code: "OFR001", Percent: 10},
		{Code: "OFR002", Percent: 7},
		{Code: "OFR003", Percent: 5},
	}
}

// Quote is the cost breakdown for a package under construction.
type Quote struct {
	BaseCost        float64
	DiscountPercent int
	DiscountApplies bool
	DiscountAmount  float64
	TotalCost       float64
	Description     string
}
