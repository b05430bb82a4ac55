package wire

import (
	"cinema-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/api/showtimes", func(r chi.Router) {
		r.Get("/", showtimeHandler.GetShowtimes)
		r.Post("/", showtimeHandler.CreateShowtime)
		r.Get("/{id}", showtimeHandler.GetShowtime)
		r.Delete("/{id}", showtimeHandler.DeleteShowtime)
		r.Get("/{id}/seats", showtimeHandler.GetShowtimeSeats)

		// Fan out "new showtime" mails to customers who saved the movie.
		r.Post("/{id}/notify", showtimeHandler.NotifyShowtime)
	})

	// GET /api/movies/{id}/showtimes?days=N - upcoming showtimes for a movie
	r.Get("/api/movies/{id}/showtimes", showtimeHandler.GetMovieShowtimes)
}
