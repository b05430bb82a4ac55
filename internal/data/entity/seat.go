package entity

import "github.com/google/uuid"

type Seat struct {
	ID     uuid.UUID `db:"seat_id"`
	RoomID uuid.UUID `db:"room_id"`
	Row    int       `db:"row"`
	Col    int       `db:"col"`
	Label  string    `db:"seat_label"` // A1, A2, B1, etc.
}
