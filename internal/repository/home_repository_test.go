package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamDTech/realtor-api/internal/domain"
)

var homeColumnNames = []string{
	"id", "address", "city", "price", "property_type", "number_of_rooms",
	"number_of_bathrooms", "land_size", "listed_date", "realtor_id", "created_at", "updated_at",
}

func homeRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(homeColumnNames).AddRow(
		int64(1), "3 Oyewale Street", "Yaba", 300.0, domain.PropertyTypeResidential,
		3, 2, 120.5, now, int64(5), now, now,
	)
}

func TestHomeRepository_GetOwner(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT realtor_id FROM homes WHERE id=\$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"realtor_id"}).AddRow(int64(5)))

	repo := NewHomeRepository(mock)
	owner, err := repo.GetOwner(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeRepository_GetOwner_NotFound(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectQuery(`SELECT realtor_id FROM homes WHERE id=\$1`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	repo := NewHomeRepository(mock)
	_, err := repo.GetOwner(context.Background(), 404)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestHomeRepository_Delete_NoRows(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec(`DELETE FROM homes WHERE id=\$1`).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewHomeRepository(mock)
	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeRepository_Delete(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec(`DELETE FROM homes WHERE id=\$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewHomeRepository(mock)
	assert.NoError(t, repo.Delete(context.Background(), 1))
}

func TestHomeRepository_List_WithFilters(t *testing.T) {
	mock := newMockPool(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM homes WHERE city=\$1 AND price>=\$2 ORDER BY listed_date DESC`).
		WithArgs("Yaba", 100.0).
		WillReturnRows(homeRow(now))
	mock.ExpectQuery(`SELECT id, home_id, url FROM home_images WHERE home_id=\$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "home_id", "url"}).
			AddRow(int64(10), int64(1), "https://img.example.com/1.jpg"))

	repo := NewHomeRepository(mock)
	city := "Yaba"
	minPrice := 100.0
	homes, err := repo.List(context.Background(), domain.HomeFilter{City: &city, MinPrice: &minPrice})
	require.NoError(t, err)
	require.Len(t, homes, 1)
	assert.Equal(t, "Yaba", homes[0].City)
	require.Len(t, homes[0].Images, 1)
	assert.Equal(t, "https://img.example.com/1.jpg", homes[0].Images[0].URL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeRepository_Update_Partial(t *testing.T) {
	mock := newMockPool(t)
	now := time.Now()

	mock.ExpectQuery(`UPDATE homes SET updated_at=NOW\(\), city=\$1 WHERE id=\$2 RETURNING`).
		WithArgs("Lagos", int64(1)).
		WillReturnRows(homeRow(now))

	repo := NewHomeRepository(mock)
	city := "Lagos"
	home, err := repo.Update(context.Background(), 1, domain.HomeUpdate{City: &city})
	require.NoError(t, err)
	assert.Equal(t, int64(1), home.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO inquiries`).
		WithArgs(int64(1), int64(5), int64(9), "Is this still available?").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	repo := NewInquiryRepository(mock)
	inquiry := &domain.Inquiry{HomeID: 1, RealtorID: 5, BuyerID: 9, Message: "Is this still available?"}
	require.NoError(t, repo.Create(context.Background(), inquiry))
	assert.Equal(t, int64(3), inquiry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
