package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"express/internal/domain"
)

// OfferRepository defines read access to the offer table.
type OfferRepository interface {
	// GetAll retrieves every offer. Returns ErrNotFound when the table is empty.
	GetAll(ctx context.Context) ([]domain.Offer, error)
}

// StaticOfferRepository serves a fixed, in-memory offer table.
type StaticOfferRepository struct {
	offers []domain.Offer
}

// NewStaticOfferRepository creates a repository over offers.
func NewStaticOfferRepository(offers []domain.Offer) *StaticOfferRepository {
	return &StaticOfferRepository{offers: offers}
}

// GetAll returns a copy of the offers.
func (r *StaticOfferRepository) GetAll(ctx context.Context) ([]domain.Offer, error) {
	if len(r.offers) == 0 {
		return nil, ErrNotFound
	}
	return append([]domain.Offer(nil), r.offers...), nil
}

// ValidateOffer checks that an offer has a code and a percent in 0-100.
func ValidateOffer(o domain.Offer) error {
	if strings.TrimSpace(o.Code) == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidOffer)
	}
	if o.Percent < 0 || o.Percent > 100 {
		return fmt.Errorf("%w: %s percent %d out of range", ErrInvalidOffer, o.Code, o.Percent)
	}
	return nil
}

// LoadOffers reads the offer table once, falling back to fallback when the
// repository has no rows.
func LoadOffers(ctx context.Context, repo OfferRepository, fallback []domain.Offer) ([]domain.Offer, error) {
	offers, err := repo.GetAll(ctx)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load offers: %w", err)
	}

	for _, o := range offers {
		if err := ValidateOffer(o); err != nil {
			return nil, fmt.Errorf("load offers: %w", err)
		}
	}
	return offers, nil
}
