package entity

import (
	"time"

	"github.com/google/uuid"
)

type Showtime struct {
	ID        uuid.UUID `db:"showtime_id"`
	MovieID   uuid.UUID `db:"movie_id"`
	RoomID    uuid.UUID `db:"room_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Price     float64   `db:"price"`
	CreatedAt time.Time `db:"created_at"`
}

// ShowtimeDetail is a showtime joined with its movie, room and cinema rows.
// Used by the booking and notification paths which need display fields.
type ShowtimeDetail struct {
	Showtime
	MovieTitle    string
	RoomName      string
	CinemaName    string
	CinemaAddress string
}
