package response

import (
	"time"

	"cinema-backend/internal/data/entity"
)

type InvoiceCustomer struct {
	CustomerID string `json:"customer_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
}

type InvoiceTickets struct {
	Title    string    `json:"title"`
	Showtime time.Time `json:"showtime"`
	Price    float64   `json:"price"`
	Seats    []string  `json:"seats"`
}

type InvoiceProductLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

type InvoiceResponse struct {
	InvoiceID     string               `json:"invoice_id"`
	InvoiceCode   string               `json:"invoice_code"`
	Customer      InvoiceCustomer      `json:"customer"`
	TicketCount   int                  `json:"ticket_count"`
	ProductCount  int                  `json:"product_count"`
	Tickets       *InvoiceTickets      `json:"tickets"`
	Products      []InvoiceProductLine `json:"products"`
	PaymentMethod string               `json:"payment_method"`
	TotalAmount   float64              `json:"total_amount"`
	ChargedAmount float64              `json:"charged_amount"`
	Status        entity.InvoiceStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type InvoiceSummaryResponse struct {
	InvoiceID     string               `json:"invoice_id"`
	InvoiceCode   string               `json:"invoice_code"`
	CustomerID    string               `json:"customer_id"`
	PaymentMethod string               `json:"payment_method"`
	TotalAmount   float64              `json:"total_amount"`
	Status        entity.InvoiceStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func InvoiceToSummary(inv *entity.Invoice) InvoiceSummaryResponse {
	return InvoiceSummaryResponse{
		InvoiceID:     inv.ID.String(),
		InvoiceCode:   inv.Code,
		CustomerID:    inv.CustomerID.String(),
		PaymentMethod: inv.PaymentMethod,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt,
	}
}

// BuildInvoiceResponse flattens ticket details onto the first showtime and
// recomputes the total from ticket prices plus line items at current product
// prices. The stored amount is kept alongside as charged_amount.
func BuildInvoiceResponse(inv *entity.Invoice, customer *entity.Customer, tickets []*entity.TicketDetail, products []*entity.InvoiceProductDetail) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:     inv.ID.String(),
		InvoiceCode:   inv.Code,
		TicketCount:   len(tickets),
		ProductCount:  len(products),
		Products:      make([]InvoiceProductLine, 0, len(products)),
		PaymentMethod: inv.PaymentMethod,
		ChargedAmount: inv.TotalAmount,
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt,
	}

	if customer != nil {
		resp.Customer = InvoiceCustomer{
			CustomerID: customer.ID.String(),
			FullName:   customer.FullName,
			Email:      customer.Email,
		}
	}

	var total float64
	if len(tickets) > 0 {
		first := tickets[0]
		group := &InvoiceTickets{
			Title:    first.MovieTitle,
			Showtime: first.StartTime,
			Price:    first.Price,
			Seats:    make([]string, 0, len(tickets)),
		}
		for _, t := range tickets {
			group.Seats = append(group.Seats, t.SeatLabel)
			total += t.Price
		}
		resp.Tickets = group
	}

	for _, p := range products {
		line := InvoiceProductLine{
			ProductID: p.ProductID.String(),
			Name:      p.ProductName,
			Quantity:  p.Quantity,
			Price:     p.ProductPrice,
			Total:     float64(p.Quantity) * p.ProductPrice,
		}
		total += line.Total
		resp.Products = append(resp.Products, line)
	}
	resp.TotalAmount = total

	return resp
}
