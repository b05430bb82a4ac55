package request

type UpdateInvoiceRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending completed cancelled"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=card momo banking"`
}
