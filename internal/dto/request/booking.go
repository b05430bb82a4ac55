package request

type BookingTickets struct {
	ShowtimeID string   `json:"showtime_id" validate:"required,uuid4"`
	Seats      []string `json:"seats" validate:"required,min=1,unique,dive,uuid4"`
}

type BookingProduct struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CreateBookingRequest struct {
	CustomerID    string           `json:"customer_id" validate:"required,uuid4"`
	Amount        float64          `json:"amount" validate:"required,min=0"`
	Products      []BookingProduct `json:"products" validate:"omitempty,dive"`
	Tickets       BookingTickets   `json:"tickets" validate:"required"`
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=card momo banking"`
	TotalAmount   float64          `json:"total_amount" validate:"required,min=0"`
	Status        string           `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}
