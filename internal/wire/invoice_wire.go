package wire

import (
	"cinema-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireInvoice(r chi.Router, invoiceHandler *adaptor.InvoiceHandler) {
	r.Route("/api/invoices", func(r chi.Router) {
		r.Get("/", invoiceHandler.GetInvoices)
		r.Get("/{id}", invoiceHandler.GetInvoice)
		r.Put("/{id}", invoiceHandler.UpdateInvoice)
		r.Delete("/{id}", invoiceHandler.DeleteInvoice)
	})
}
