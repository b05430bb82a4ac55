package response

type PaymentURLResponse struct {
	InvoiceID  string `json:"invoice_id"`
	PaymentURL string `json:"payment_url"`
}

type PaymentCallbackResponse struct {
	InvoiceID string `json:"invoice_id"`
	Status    string `json:"status"`
}
