package wire

import (
	"cinema-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - book tickets and concessions in one shot
	r.Post("/api/bookings", bookingHandler.CreateBooking)
}
