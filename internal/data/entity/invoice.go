package entity

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusCompleted InvoiceStatus = "completed"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

type Invoice struct {
	ID            uuid.UUID     `db:"invoice_id"`
	Code          string        `db:"invoice_code"`
	CustomerID    uuid.UUID     `db:"customer_id"`
	PaymentMethod string        `db:"payment_method"`
	Status        InvoiceStatus `db:"status"`
	TotalAmount   float64       `db:"total_amount"`
	CreatedAt     time.Time     `db:"created_at"`
}
