package entity

import (
	"time"

	"github.com/google/uuid"
)

type Cinema struct {
	ID        uuid.UUID `db:"cinema_id"`
	Name      string    `db:"name"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}
