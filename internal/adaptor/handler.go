package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinema-backend/internal/usecase"
	"cinema-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking  *BookingHandler
	Invoice  *InvoiceHandler
	Showtime *ShowtimeHandler
	Customer *CustomerHandler
	Cinema   *CinemaHandler
	Product  *ProductHandler
	Save     *SaveHandler
	Payment  *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:  NewBookingHandler(service.Booking, log),
		Invoice:  NewInvoiceHandler(service.Invoice, log),
		Showtime: NewShowtimeHandler(service.Showtime, service.Notify, log),
		Customer: NewCustomerHandler(service.Customer, service.Save, log),
		Cinema:   NewCinemaHandler(service.Cinema, log),
		Product:  NewProductHandler(service.Product, log),
		Save:     NewSaveHandler(service.Save, log),
		Payment:  NewPaymentHandler(service.Payment, log),
	}
}

// handleServiceError maps service errors onto the response envelope.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var conflict *usecase.SeatConflictError

	switch {
	case errors.As(err, &conflict):
		log.Warn(operation+" failed - seats taken",
			zap.Strings("seats", conflict.Seats),
			zap.String("operation", operation))
		utils.ResponseConflict(w, conflict.Error(), map[string][]string{"seats": conflict.Seats})

	case usecase.IsNotFound(err):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidSignature):
		log.Warn(operation+" failed - bad signature",
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
