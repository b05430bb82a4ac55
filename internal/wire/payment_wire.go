package wire

import (
	"cinema-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Post("/api/payments/url", paymentHandler.CreatePaymentURL)

	// Gateway redirects the browser here after checkout.
	r.Get("/api/payments/callback", paymentHandler.PaymentCallback)
}
