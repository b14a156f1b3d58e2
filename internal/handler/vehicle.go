package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"express/internal/service"
)

// VehicleHandler handles HTTP requests for the fleet.
type VehicleHandler struct {
	dispatcher *service.Dispatcher
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(dispatcher *service.Dispatcher) *VehicleHandler {
	return &VehicleHandler{dispatcher: dispatcher}
}

// PackageRefRequest names a package in a vehicle command.
type PackageRefRequest struct {
	Package string `json:"package" binding:"required"`
}

// AssignResponse is the HTTP response for an assignment.
type AssignResponse struct {
	Package        string  `json:"package"`
	Vehicle        string  `json:"vehicle"`
	Assigned       bool    `json:"assigned"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// DeliverResponse is the HTTP response for a delivery.
type DeliverResponse struct {
	Package        string  `json:"package"`
	Vehicle        string  `json:"vehicle"`
	Delivered      bool    `json:"delivered"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// EstimateResponse is the HTTP response for the delivery estimate.
type EstimateResponse struct {
	EstimatedHours float64 `json:"estimated_hours"`
}

// GetAvailable handles GET /v1/vehicles/available
func (h *VehicleHandler) GetAvailable(c *gin.Context) {
	respondJSON(c, http.StatusOK, toVehicleResponses(h.dispatcher.AvailableVehicles()))
}

// GetInTransit handles GET /v1/vehicles/in-transit
func (h *VehicleHandler) GetInTransit(c *gin.Context) {
	respondJSON(c, http.StatusOK, toVehicleResponses(h.dispatcher.InTransitVehicles()))
}

// Assign handles POST /v1/vehicles/:name/packages
func (h *VehicleHandler) Assign(c *gin.Context) {
	vehicle := c.Param("name")

	var req PackageRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	assigned, err := h.dispatcher.AssignPackage(c.Request.Context(), req.Package, vehicle)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, AssignResponse{
		Package:        req.Package,
		Vehicle:        vehicle,
		Assigned:       assigned,
		EstimatedHours: h.dispatcher.EstimatedHours(),
	})
}

// Deliver handles POST /v1/vehicles/:name/deliveries
func (h *VehicleHandler) Deliver(c *gin.Context) {
	vehicle := c.Param("name")

	var req PackageRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	delivered := h.dispatcher.DeliverPackage(vehicle, req.Package)

	respondJSON(c, http.StatusOK, DeliverResponse{
		Package:        req.Package,
		Vehicle:        vehicle,
		Delivered:      delivered,
		EstimatedHours: h.dispatcher.EstimatedHours(),
	})
}

// GetEstimate handles GET /v1/estimate
func (h *VehicleHandler) GetEstimate(c *gin.Context) {
	respondJSON(c, http.StatusOK, EstimateResponse{EstimatedHours: h.dispatcher.EstimatedHours()})
}
