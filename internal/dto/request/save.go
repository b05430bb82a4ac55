package request

type SaveRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
	MovieID    string `json:"movie_id" validate:"required,uuid4"`
}
