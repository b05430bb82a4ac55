package entity

import "github.com/google/uuid"

// InvoiceProduct links an invoice to a purchased product with a quantity.
// Price is not frozen here; read paths look it up from the product row.
type InvoiceProduct struct {
	InvoiceID uuid.UUID `db:"invoice_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
}

// InvoiceProductDetail is a line item joined with its product row.
type InvoiceProductDetail struct {
	InvoiceProduct
	ProductName  string
	ProductPrice float64
}
