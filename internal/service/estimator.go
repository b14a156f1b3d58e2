package service

import "express/internal/domain"

// EstimateDeliveryHours returns the round-trip hours needed for every
// in-transit vehicle to finish: twice the summed package travel times.
func EstimateDeliveryHours(inTransit []*domain.Vehicle) float64 {
	total := 0.0
	for _, v := range inTransit {
		for _, p := range v.Packages {
			total += p.TravelTime
		}
	}
	return total * 2
}
