package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/SamDTech/realtor-api/internal/domain"
)

// HomeRepository defines persistence access for listings.
type HomeRepository interface {
	Create(ctx context.Context, home *domain.Home) error
	Update(ctx context.Context, id int64, update domain.HomeUpdate) (*domain.Home, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Home, error)
	GetOwner(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, filter domain.HomeFilter) ([]*domain.Home, error)
}

type homeRepository struct {
	db DB
}

// NewHomeRepository returns a Postgres-backed implementation.
func NewHomeRepository(db DB) HomeRepository {
	return &homeRepository{db: db}
}

const homeColumns = `id, address, city, price, property_type, number_of_rooms,
        number_of_bathrooms, land_size, listed_date, realtor_id, created_at, updated_at`

func (r *homeRepository) Create(ctx context.Context, home *domain.Home) error {
	const query = `
        INSERT INTO homes (address, city, price, property_type, number_of_rooms,
            number_of_bathrooms, land_size, realtor_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, listed_date, created_at, updated_at`

	if err := r.db.QueryRow(ctx, query,
		home.Address,
		home.City,
		home.Price,
		home.PropertyType,
		home.NumberOfRooms,
		home.NumberOfBathrooms,
		home.LandSize,
		home.RealtorID,
	).Scan(&home.ID, &home.ListedDate, &home.CreatedAt, &home.UpdatedAt); err != nil {
		return err
	}

	for i := range home.Images {
		img := &home.Images[i]
		img.HomeID = home.ID
		if err := r.db.QueryRow(ctx,
			`INSERT INTO home_images (home_id, url) VALUES ($1, $2) RETURNING id`,
			img.HomeID, img.URL,
		).Scan(&img.ID); err != nil {
			return err
		}
	}
	return nil
}

// Update applies only the fields set on the partial update and returns the
// refreshed row. An empty update still touches updated_at.
func (r *homeRepository) Update(ctx context.Context, id int64, update domain.HomeUpdate) (*domain.Home, error) {
	sets := []string{"updated_at=NOW()"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.Address != nil {
		sets = append(sets, "address="+arg(*update.Address))
	}
	if update.City != nil {
		sets = append(sets, "city="+arg(*update.City))
	}
	if update.Price != nil {
		sets = append(sets, "price="+arg(*update.Price))
	}
	if update.PropertyType != nil {
		sets = append(sets, "property_type="+arg(*update.PropertyType))
	}
	if update.NumberOfRooms != nil {
		sets = append(sets, "number_of_rooms="+arg(*update.NumberOfRooms))
	}
	if update.NumberOfBathrooms != nil {
		sets = append(sets, "number_of_bathrooms="+arg(*update.NumberOfBathrooms))
	}
	if update.LandSize != nil {
		sets = append(sets, "land_size="+arg(*update.LandSize))
	}

	query := fmt.Sprintf(`UPDATE homes SET %s WHERE id=%s RETURNING %s`,
		strings.Join(sets, ", "), arg(id), homeColumns)

	home, err := r.scanHome(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	return home, nil
}

func (r *homeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM homes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *homeRepository) GetByID(ctx context.Context, id int64) (*domain.Home, error) {
	query := fmt.Sprintf(`SELECT %s FROM homes WHERE id=$1`, homeColumns)

	home, err := r.scanHome(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachImages(ctx, home); err != nil {
		return nil, err
	}
	return home, nil
}

// GetOwner resolves the owning realtor without loading the full row; the
// ownership check runs on every guarded mutation.
func (r *homeRepository) GetOwner(ctx context.Context, id int64) (int64, error) {
	var realtorID int64
	if err := r.db.QueryRow(ctx, `SELECT realtor_id FROM homes WHERE id=$1`, id).Scan(&realtorID); err != nil {
		return 0, err
	}
	return realtorID, nil
}

func (r *homeRepository) List(ctx context.Context, filter domain.HomeFilter) ([]*domain.Home, error) {
	conditions := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.City != nil {
		conditions = append(conditions, "city="+arg(*filter.City))
	}
	if filter.PropertyType != nil {
		conditions = append(conditions, "property_type="+arg(*filter.PropertyType))
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "price>="+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price<="+arg(*filter.MaxPrice))
	}

	query := fmt.Sprintf(`SELECT %s FROM homes`, homeColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY listed_date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	homes := []*domain.Home{}
	for rows.Next() {
		home, err := r.scanHome(rows)
		if err != nil {
			return nil, err
		}
		homes = append(homes, home)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, home := range homes {
		if err := r.attachImages(ctx, home); err != nil {
			return nil, err
		}
	}
	return homes, nil
}

func (r *homeRepository) attachImages(ctx context.Context, home *domain.Home) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, home_id, url FROM home_images WHERE home_id=$1 ORDER BY id`, home.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.HomeImage
		if err := rows.Scan(&img.ID, &img.HomeID, &img.URL); err != nil {
			return err
		}
		home.Images = append(home.Images, img)
	}
	return rows.Err()
}

func (r *homeRepository) scanHome(row interface{ Scan(...any) error }) (*domain.Home, error) {
	var home domain.Home
	if err := row.Scan(
		&home.ID,
		&home.Address,
		&home.City,
		&home.Price,
		&home.PropertyType,
		&home.NumberOfRooms,
		&home.NumberOfBathrooms,
		&home.LandSize,
		&home.ListedDate,
		&home.RealtorID,
		&home.CreatedAt,
		&home.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &home, nil
}
