package response

import (
	"time"

	"cinema-backend/internal/data/entity"
)

type CustomerResponse struct {
	CustomerID  string     `json:"customer_id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	DOB         *time.Time `json:"dob,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CustomerProfileResponse struct {
	CustomerResponse
	Invoices []InvoiceResponse `json:"invoices"`
}

// Helper converters
func CustomerToResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.ID.String(),
		FullName:    c.FullName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		DOB:         c.DOB,
		CreatedAt:   c.CreatedAt,
	}
}
