package wire

import (
	"cinema-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, cinemaHandler *adaptor.CinemaHandler, productHandler *adaptor.ProductHandler) {
	r.Get("/api/cinemas", cinemaHandler.GetCinemas)
	r.Get("/api/cinemas/{id}", cinemaHandler.GetCinema)
	r.Get("/api/cinemas/{id}/rooms", cinemaHandler.GetCinemaRooms)

	r.Get("/api/products", productHandler.GetProducts)
	r.Get("/api/products/{id}", productHandler.GetProduct)
}
