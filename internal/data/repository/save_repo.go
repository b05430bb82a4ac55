package repository

import (
	"context"
	"fmt"

	"cinema-backend/internal/data/entity"
	"cinema-backend/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SaveRepository interface {
	Create(ctx context.Context, save *entity.Save) error
	Delete(ctx context.Context, customerID, movieID uuid.UUID) error
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Save, error)

	// Business queries
	FindCustomersByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Customer, error)
}

type saveRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSaveRepository(db database.PgxIface, log *zap.Logger) SaveRepository {
	return &saveRepository{
		db:  db,
		log: log.With(zap.String("repository", "save")),
	}
}

func (r *saveRepository) Create(ctx context.Context, save *entity.Save) error {
	query := `
		INSERT INTO saves (customer_id, movie_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		save.CustomerID,
		save.MovieID,
		save.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create save",
			zap.Error(err),
			zap.String("customer_id", save.CustomerID.String()),
			zap.String("movie_id", save.MovieID.String()),
		)
		return fmt.Errorf("create save for customer %s movie %s: %w",
			save.CustomerID.String(), save.MovieID.String(), err)
	}

	return nil
}

func (r *saveRepository) Delete(ctx context.Context, customerID, movieID uuid.UUID) error {
	query := `DELETE FROM saves WHERE customer_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, customerID, movieID)
	if err != nil {
		r.log.Error("Failed to delete save",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete save for customer %s movie %s: %w",
			customerID.String(), movieID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("save for customer %s movie %s not found",
			customerID.String(), movieID.String())
	}

	return nil
}

func (r *saveRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Save, error) {
	query := `
		SELECT customer_id, movie_id, created_at
		FROM saves
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find saves by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find saves by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var saves []*entity.Save
	for rows.Next() {
		var save entity.Save
		err := rows.Scan(
			&save.CustomerID,
			&save.MovieID,
			&save.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan save row", zap.Error(err))
			return nil, fmt.Errorf("scan save row: %w", err)
		}
		saves = append(saves, &save)
	}

	return saves, nil
}

// FindCustomersByMovieID returns the customers who saved the movie. May
// contain duplicate emails when one person owns several accounts; callers
// de-duplicate.
func (r *saveRepository) FindCustomersByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Customer, error) {
	query := `
		SELECT c.customer_id, c.full_name, c.email, c.phone_number, c.cccd, c.dob, c.created_at
		FROM saves s
		INNER JOIN customers c ON s.customer_id = c.customer_id
		WHERE s.movie_id = $1
		ORDER BY s.created_at
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find customers by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find customers by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var customer entity.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.FullName,
			&customer.Email,
			&customer.PhoneNumber,
			&customer.CCCD,
			&customer.DOB,
			&customer.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &customer)
	}

	return customers, nil
}
