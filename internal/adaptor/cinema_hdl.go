package adaptor

import (
	"net/http"

	"cinema-backend/internal/usecase"
	"cinema-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// GetCinemas handles GET /api/cinemas
func (h *CinemaHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.service.GetCinemas(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get cinemas")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// GetCinema handles GET /api/cinemas/{id}
func (h *CinemaHandler) GetCinema(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	cinema, err := h.service.GetCinema(r.Context(), cinemaID)
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// GetCinemaRooms handles GET /api/cinemas/{id}/rooms
func (h *CinemaHandler) GetCinemaRooms(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")

	rooms, err := h.service.GetCinemaRooms(r.Context(), cinemaID)
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}
