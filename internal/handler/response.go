package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"express/internal/domain"
	"express/internal/repository"
	"express/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PackageResponse is the HTTP representation of a package.
type PackageResponse struct {
	Name         string  `json:"name"`
	Weight       float64 `json:"weight"`
	Distance     float64 `json:"distance"`
	TotalCost    float64 `json:"total_cost"`
	DiscountCode string  `json:"discount_code"`
	TravelTime   float64 `json:"travel_time"`
}

// VehicleResponse is the HTTP representation of a vehicle.
type VehicleResponse struct {
	Name         string            `json:"name"`
	Status       string            `json:"status"`
	Speed        float64           `json:"speed"`
	MaxWeight    float64           `json:"max_weight"`
	LoadedWeight float64           `json:"loaded_weight"`
	Packages     []PackageResponse `json:"packages"`
}

// respondError sends an error response with the appropriate HTTP status code
// and attaches the error to the context for APM reporting.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrInvalidWeight),
		errors.Is(err, service.ErrInvalidDistance):
		return http.StatusBadRequest

	// Capacity or availability failure
	case errors.Is(err, service.ErrAssignmentRejected):
		return http.StatusConflict

	case errors.Is(err, service.ErrNamesExhausted):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

func toPackageResponse(p *domain.Package) PackageResponse {
	return PackageResponse{
		Name:         p.Name,
		Weight:       p.Weight,
		Distance:     p.Distance,
		TotalCost:    p.TotalCost,
		DiscountCode: p.DiscountCode,
		TravelTime:   p.TravelTime,
	}
}

func toPackageResponses(pkgs []*domain.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, toPackageResponse(p))
	}
	return out
}

func toVehicleResponses(vehicles []*domain.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleResponse{
			Name:         v.Name,
			Status:       string(v.Status),
			Speed:        v.Speed,
			MaxWeight:    v.MaxWeight,
			LoadedWeight: v.LoadedWeight(),
			Packages:     toPackageResponses(v.Packages),
		})
	}
	return out
}
