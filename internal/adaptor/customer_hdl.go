package adaptor

import (
	"net/http"

	"cinema-backend/internal/usecase"
	"cinema-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	saves   usecase.SaveService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, saves usecase.SaveService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		saves:   saves,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// GetProfile handles GET /api/customers/{id}
func (h *CustomerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	profile, err := h.service.GetProfile(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetBookings handles GET /api/customers/{id}/bookings
func (h *CustomerHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	bookings, err := h.service.GetBookingHistory(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetSaves handles GET /api/customers/{id}/saves
func (h *CustomerHandler) GetSaves(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	saves, err := h.saves.GetCustomerSaves(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get saves")
		return
	}

	utils.ResponseSuccess(w, "success", saves)
}
