package repository

import (
	"cinema-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Customer       CustomerRepository
	Movie          MovieRepository
	Cinema         CinemaRepository
	Room           RoomRepository
	Seat           SeatRepository
	Showtime       ShowtimeRepository
	Ticket         TicketRepository
	Invoice        InvoiceRepository
	InvoiceProduct InvoiceProductRepository
	Product        ProductRepository
	Save           SaveRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Customer:       NewCustomerRepository(db, log),
		Movie:          NewMovieRepository(db, log),
		Cinema:         NewCinemaRepository(db, log),
		Room:           NewRoomRepository(db, log),
		Seat:           NewSeatRepository(db, log),
		Showtime:       NewShowtimeRepository(db, log),
		Ticket:         NewTicketRepository(db, log),
		Invoice:        NewInvoiceRepository(db, log),
		InvoiceProduct: NewInvoiceProductRepository(db, log),
		Product:        NewProductRepository(db, log),
		Save:           NewSaveRepository(db, log),
	}
}
