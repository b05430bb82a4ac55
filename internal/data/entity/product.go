package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID        uuid.UUID `db:"product_id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Price     float64   `db:"price"`
	ImageURL  *string   `db:"image"`
	CreatedAt time.Time `db:"created_at"`
}
