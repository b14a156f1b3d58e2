package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"express/internal/service"
)

// StateHandler serves the full snapshot and the notification stream.
type StateHandler struct {
	dispatcher    *service.Dispatcher
	notifications *service.NotificationService
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(dispatcher *service.Dispatcher, notifications *service.NotificationService) *StateHandler {
	return &StateHandler{
		dispatcher:    dispatcher,
		notifications: notifications,
	}
}

// StateResponse is the HTTP response for the full simulation state.
type StateResponse struct {
	Quote          QuoteResponse     `json:"quote"`
	Storage        []PackageResponse `json:"storage"`
	Available      []VehicleResponse `json:"available"`
	InTransit      []VehicleResponse `json:"in_transit"`
	EstimatedHours float64           `json:"estimated_hours"`
}

// GetState handles GET /v1/state
func (h *StateHandler) GetState(c *gin.Context) {
	snap := h.dispatcher.Snapshot()

	respondJSON(c, http.StatusOK, StateResponse{
		Quote: QuoteResponse{
			Weight:          snap.Input.Weight,
			Distance:        snap.Input.Distance,
			OfferCode:       snap.Input.OfferCode,
			BaseCost:        snap.Quote.BaseCost,
			DiscountPercent: snap.Quote.DiscountPercent,
			DiscountApplies: snap.Quote.DiscountApplies,
			DiscountAmount:  snap.Quote.DiscountAmount,
			TotalCost:       snap.Quote.TotalCost,
			Description:     snap.Quote.Description,
		},
		Storage:        toPackageResponses(snap.Storage),
		Available:      toVehicleResponses(snap.Available),
		InTransit:      toVehicleResponses(snap.InTransit),
		EstimatedHours: snap.EstimatedHours,
	})
}

// StreamNotifications handles GET /v1/notifications as a server-sent event
// stream. Notifications raised while no client is connected are not replayed.
func (h *StateHandler) StreamNotifications(c *gin.Context) {
	ch, cancel := h.notifications.Subscribe()
	defer cancel()

	// Send headers right away so clients see the stream open before the
	// first notification.
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case n, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("notification", n)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
