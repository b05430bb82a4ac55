package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-backend/internal/data/entity"
	"cinema-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.ShowtimeDetail, error)
	FindAll(ctx context.Context) ([]*entity.ShowtimeDetail, error)
	FindUpcomingByMovieID(ctx context.Context, movieID uuid.UUID, from time.Time, days int) ([]*entity.ShowtimeDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

const showtimeDetailColumns = `
	st.showtime_id, st.movie_id, st.room_id, st.start_time, st.end_time, st.price, st.created_at,
	m.title, r.name, c.name, c.address
`

const showtimeDetailJoins = `
	FROM showtimes st
	INNER JOIN movies m ON st.movie_id = m.movie_id
	INNER JOIN rooms r ON st.room_id = r.room_id
	INNER JOIN cinemas c ON r.cinema_id = c.cinema_id
`

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (showtime_id, movie_id, room_id, start_time, end_time, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.RoomID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		showtime.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
			zap.String("room_id", showtime.RoomID.String()),
		)
		return fmt.Errorf("create showtime for movie %s: %w", showtime.MovieID.String(), err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT showtime_id, movie_id, room_id, start_time, end_time, price, created_at
		FROM showtimes
		WHERE showtime_id = $1
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.RoomID,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
		&showtime.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.ShowtimeDetail, error) {
	query := `SELECT ` + showtimeDetailColumns + showtimeDetailJoins + ` WHERE st.showtime_id = $1`

	var detail entity.ShowtimeDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.MovieID,
		&detail.RoomID,
		&detail.StartTime,
		&detail.EndTime,
		&detail.Price,
		&detail.CreatedAt,
		&detail.MovieTitle,
		&detail.RoomName,
		&detail.CinemaName,
		&detail.CinemaAddress,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime detail by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime detail by ID %s: %w", id.String(), err)
	}

	return &detail, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context) ([]*entity.ShowtimeDetail, error) {
	query := `SELECT ` + showtimeDetailColumns + showtimeDetailJoins + ` ORDER BY st.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find showtimes", zap.Error(err))
		return nil, fmt.Errorf("find showtimes: %w", err)
	}
	defer rows.Close()

	return scanShowtimeDetails(rows)
}

// FindUpcomingByMovieID returns the movie's showtimes starting within the
// next `days` days.
func (r *showtimeRepository) FindUpcomingByMovieID(ctx context.Context, movieID uuid.UUID, from time.Time, days int) ([]*entity.ShowtimeDetail, error) {
	until := from.AddDate(0, 0, days)

	query := `SELECT ` + showtimeDetailColumns + showtimeDetailJoins + `
		WHERE st.movie_id = $1 AND st.start_time >= $2 AND st.start_time <= $3
		ORDER BY st.start_time
	`

	rows, err := r.db.Query(ctx, query, movieID, from, until)
	if err != nil {
		r.log.Error("Failed to find upcoming showtimes by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find upcoming showtimes by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	return scanShowtimeDetails(rows)
}

func (r *showtimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM showtimes WHERE showtime_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return fmt.Errorf("delete showtime %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", id.String())
	}

	return nil
}

func scanShowtimeDetails(rows pgx.Rows) ([]*entity.ShowtimeDetail, error) {
	var details []*entity.ShowtimeDetail
	for rows.Next() {
		var detail entity.ShowtimeDetail
		err := rows.Scan(
			&detail.ID,
			&detail.MovieID,
			&detail.RoomID,
			&detail.StartTime,
			&detail.EndTime,
			&detail.Price,
			&detail.CreatedAt,
			&detail.MovieTitle,
			&detail.RoomName,
			&detail.CinemaName,
			&detail.CinemaAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		details = append(details, &detail)
	}

	return details, nil
}
