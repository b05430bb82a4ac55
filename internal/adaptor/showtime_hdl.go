package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-backend/internal/dto/request"
	"cinema-backend/internal/usecase"
	"cinema-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	notify  usecase.NotifyService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, notify usecase.NotifyService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		notify:  notify,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// CreateShowtime handles POST /api/showtimes
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "success", showtime)
}

// GetShowtimes handles GET /api/showtimes
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetShowtimes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtime handles GET /api/showtimes/{id}
func (h *ShowtimeHandler) GetShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	showtime, err := h.service.GetShowtime(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get showtime")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// GetShowtimeSeats handles GET /api/showtimes/{id}/seats
func (h *ShowtimeHandler) GetShowtimeSeats(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	seats, err := h.service.GetShowtimeSeats(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get showtime seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// GetMovieShowtimes handles GET /api/movies/{id}/showtimes
func (h *ShowtimeHandler) GetMovieShowtimes(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	days := utils.ParseInt(r.URL.Query().Get("days"), 0)

	showtimes, err := h.service.GetUpcomingByMovie(r.Context(), movieID, days)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// NotifyShowtime handles POST /api/showtimes/{id}/notify
func (h *ShowtimeHandler) NotifyShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	report, err := h.notify.NotifyShowtime(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(w, h.log, err, "notify showtime")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// DeleteShowtime handles DELETE /api/showtimes/{id}
func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	if err := h.service.DeleteShowtime(r.Context(), showtimeID); err != nil {
		handleServiceError(w, h.log, err, "delete showtime")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
