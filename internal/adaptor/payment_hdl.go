package adaptor

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"cinema-backend/internal/dto/request"
	"cinema-backend/internal/usecase"
	"cinema-backend/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePaymentURL handles POST /api/payments/url
func (h *PaymentHandler) CreatePaymentURL(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreatePaymentURL(r.Context(), &req, clientIP(r))
	if err != nil {
		handleServiceError(w, h.log, err, "create payment url")
		return
	}

	utils.ResponseCreated(w, "success", resp)
}

// PaymentCallback handles GET /api/payments/callback
func (h *PaymentHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.HandleCallback(r.Context(), r.URL.Query())
	if err != nil {
		handleServiceError(w, h.log, err, "payment callback")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
