package entity

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	ID         uuid.UUID `db:"ticket_id"`
	InvoiceID  uuid.UUID `db:"invoice_id"`
	ShowtimeID uuid.UUID `db:"showtime_id"`
	SeatID     uuid.UUID `db:"seat_id"`
	Price      float64   `db:"price"`
	CreatedAt  time.Time `db:"created_at"`
}

// TicketDetail is a ticket joined with its showtime, movie and seat rows.
type TicketDetail struct {
	Ticket
	MovieTitle string
	StartTime  time.Time
	SeatLabel  string
}
