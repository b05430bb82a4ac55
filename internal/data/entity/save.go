package entity

import (
	"time"

	"github.com/google/uuid"
)

// Save is a (customer, movie) membership meaning the customer wants to be
// notified about new showtimes for the movie.
type Save struct {
	CustomerID uuid.UUID `db:"customer_id"`
	MovieID    uuid.UUID `db:"movie_id"`
	CreatedAt  time.Time `db:"created_at"`
}
