package request

type CreatePaymentURLRequest struct {
	InvoiceID string `json:"invoice_id" validate:"required,uuid4"`
	OrderInfo string `json:"order_info" validate:"omitempty,max=255"`
}
