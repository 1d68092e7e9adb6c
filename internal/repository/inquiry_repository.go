package repository

import (
	"context"

	"github.com/SamDTech/realtor-api/internal/domain"
)

// InquiryRepository defines persistence access for buyer inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	ListByHome(ctx context.Context, homeID int64) ([]*domain.Inquiry, error)
}

type inquiryRepository struct {
	db DB
}

// NewInquiryRepository returns a Postgres-backed implementation.
func NewInquiryRepository(db DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	const query = `
        INSERT INTO inquiries (home_id, realtor_id, buyer_id, message)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		inquiry.HomeID,
		inquiry.RealtorID,
		inquiry.BuyerID,
		inquiry.Message,
	).Scan(&inquiry.ID, &inquiry.CreatedAt)
}

func (r *inquiryRepository) ListByHome(ctx context.Context, homeID int64) ([]*domain.Inquiry, error) {
	const query = `
        SELECT id, home_id, realtor_id, buyer_id, message, created_at
        FROM inquiries WHERE home_id=$1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []*domain.Inquiry{}
	for rows.Next() {
		var inquiry domain.Inquiry
		if err := rows.Scan(
			&inquiry.ID,
			&inquiry.HomeID,
			&inquiry.RealtorID,
			&inquiry.BuyerID,
			&inquiry.Message,
			&inquiry.CreatedAt,
		); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, &inquiry)
	}
	return inquiries, rows.Err()
}
