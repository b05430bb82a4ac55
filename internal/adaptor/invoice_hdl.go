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

type InvoiceHandler struct {
	service usecase.InvoiceService
	log     *zap.Logger
}

func NewInvoiceHandler(service usecase.InvoiceService, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "invoice")),
	}
}

// GetInvoices handles GET /api/invoices
func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.GetInvoices(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get invoices")
		return
	}

	utils.ResponseSuccess(w, "success", invoices)
}

// GetInvoice handles GET /api/invoices/{id}
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")

	invoice, err := h.service.GetInvoice(r.Context(), invoiceID)
	if err != nil {
		handleServiceError(w, h.log, err, "get invoice")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// UpdateInvoice handles PUT /api/invoices/{id}
func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")

	var req request.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	invoice, err := h.service.UpdateInvoice(r.Context(), invoiceID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update invoice")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

// DeleteInvoice handles DELETE /api/invoices/{id}
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")

	if err := h.service.DeleteInvoice(r.Context(), invoiceID); err != nil {
		handleServiceError(w, h.log, err, "delete invoice")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
