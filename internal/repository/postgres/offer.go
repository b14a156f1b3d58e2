package postgres

import (
	"context"
	"database/sql"

	"express/internal/domain"
	"express/internal/repository"
)

// OfferRepository is a PostgreSQL implementation of repository.OfferRepository.
type OfferRepository struct {
	q Querier
}

// NewOfferRepository creates a new PostgreSQL offer repository.
func NewOfferRepository(db *sql.DB) *OfferRepository {
	return &OfferRepository{q: db}
}

// NewOfferRepositoryWithQuerier creates an offer repository over any Querier.
func NewOfferRepositoryWithQuerier(q Querier) *OfferRepository {
	return &OfferRepository{q: q}
}

// GetAll retrieves all offers ordered by code. Codes are returned as stored.
func (r *OfferRepository) GetAll(ctx context.Context) ([]domain.Offer, error) {
	query := `SELECT code, percent FROM offers ORDER BY code`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var offer domain.Offer
		if err := rows.Scan(&offer.Code, &offer.Percent); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(offers) == 0 {
		return nil, repository.ErrNotFound
	}
	return offers, nil
}
