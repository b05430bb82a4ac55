package wire

import (
	"cinema-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler) {
	// GET /api/customers/{id} - profile with full booking history
	r.Get("/api/customers/{id}", customerHandler.GetProfile)

	// GET /api/customers/{id}/bookings - booking history
	r.Get("/api/customers/{id}/bookings", customerHandler.GetBookings)

	// GET /api/customers/{id}/saves - movies the customer follows
	r.Get("/api/customers/{id}/saves", customerHandler.GetSaves)
}
