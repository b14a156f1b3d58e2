package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"express/internal/service"
)

// PackageHandler handles HTTP requests for pending input and storage.
type PackageHandler struct {
	dispatcher *service.Dispatcher
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(dispatcher *service.Dispatcher) *PackageHandler {
	return &PackageHandler{dispatcher: dispatcher}
}

// SetValueRequest is the HTTP request body for numeric input fields.
type SetValueRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

// SetOfferCodeRequest is the HTTP request body for the offer code field.
type SetOfferCodeRequest struct {
	Code string `json:"code"`
}

// QuoteResponse is the HTTP response for the pending input and its cost.
type QuoteResponse struct {
	Weight          float64 `json:"weight"`
	Distance        float64 `json:"distance"`
	OfferCode       string  `json:"offer_code"`
	BaseCost        float64 `json:"base_cost"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountApplies bool    `json:"discount_applies"`
	DiscountAmount  float64 `json:"discount_amount"`
	TotalCost       float64 `json:"total_cost"`
	Description     string  `json:"description"`
}

func (h *PackageHandler) quoteResponse() QuoteResponse {
	snap := h.dispatcher.Snapshot()
	return QuoteResponse{
		Weight:          snap.Input.Weight,
		Distance:        snap.Input.Distance,
		OfferCode:       snap.Input.OfferCode,
		BaseCost:        snap.Quote.BaseCost,
		DiscountPercent: snap.Quote.DiscountPercent,
		DiscountApplies: snap.Quote.DiscountApplies,
		DiscountAmount:  snap.Quote.DiscountAmount,
		TotalCost:       snap.Quote.TotalCost,
		Description:     snap.Quote.Description,
	}
}

// GetQuote handles GET /v1/quote
func (h *PackageHandler) GetQuote(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.quoteResponse())
}

// SetWeight handles POST /v1/input/weight
func (h *PackageHandler) SetWeight(c *gin.Context) {
	var req SetValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.dispatcher.SetWeight(*req.Value); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, h.quoteResponse())
}

// SetDistance handles POST /v1/input/distance
func (h *PackageHandler) SetDistance(c *gin.Context) {
	var req SetValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.dispatcher.SetDistance(*req.Value); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, h.quoteResponse())
}

// SetOfferCode handles POST /v1/input/offer-code
func (h *PackageHandler) SetOfferCode(c *gin.Context) {
	var req SetOfferCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	h.dispatcher.SetOfferCode(req.Code)
	respondJSON(c, http.StatusOK, h.quoteResponse())
}

// Commit handles POST /v1/storage
func (h *PackageHandler) Commit(c *gin.Context) {
	pkg, err := h.dispatcher.CommitPackage()
	if err != nil {
		respondError(c, err)
		return
	}

	// Weight or distance missing: nothing was created.
	if pkg == nil {
		c.Status(http.StatusNoContent)
		return
	}
	respondJSON(c, http.StatusCreated, toPackageResponse(pkg))
}

// GetStorage handles GET /v1/storage
func (h *PackageHandler) GetStorage(c *gin.Context) {
	respondJSON(c, http.StatusOK, toPackageResponses(h.dispatcher.Storage()))
}

// GetOffers handles GET /v1/offers
func (h *PackageHandler) GetOffers(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.dispatcher.Offers())
}
