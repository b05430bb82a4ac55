package entity

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	ID          uuid.UUID `db:"movie_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	DurationMin int       `db:"duration_min"`
	ReleaseDate time.Time `db:"release_date"`
	Rating      *string   `db:"rating"`
	PosterURL   *string   `db:"poster_url"`
	Genre       []string  `db:"genre"`
	CreatedAt   time.Time `db:"created_at"`
}
