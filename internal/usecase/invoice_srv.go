package usecase

import (
	"context"
	"fmt"

	"cinema-backend/internal/data/entity"
	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/dto/request"
	"cinema-backend/internal/dto/response"
	"cinema-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceService interface {
	GetInvoice(ctx context.Context, invoiceID string) (*response.InvoiceResponse, error)
	GetInvoices(ctx context.Context) ([]response.InvoiceSummaryResponse, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req *request.UpdateInvoiceRequest) (*response.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}

type invoiceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInvoiceService(repo *repository.Repository, log *zap.Logger) InvoiceService {
	return &invoiceService{
		repo: repo,
		log:  log.With(zap.String("service", "invoice")),
	}
}

// loadInvoiceResponse assembles the full invoice view: customer, joined
// ticket rows and line items priced at the current product price.
func loadInvoiceResponse(ctx context.Context, repo *repository.Repository, inv *entity.Invoice) (*response.InvoiceResponse, error) {
	customer, err := repo.Customer.FindByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	tickets, err := repo.Ticket.FindDetailsByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tickets: %w", err)
	}

	products, err := repo.InvoiceProduct.FindDetailsByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice products: %w", err)
	}

	resp := response.BuildInvoiceResponse(inv, customer, tickets, products)
	return &resp, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*response.InvoiceResponse, error) {
	id, err := uuid.Parse(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice ID format %s: %w", invoiceID, err)
	}

	invoice, err := s.repo.Invoice.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return loadInvoiceResponse(ctx, s.repo, invoice)
}

func (s *invoiceService) GetInvoices(ctx context.Context) ([]response.InvoiceSummaryResponse, error) {
	invoices, err := s.repo.Invoice.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoices: %w", err)
	}

	resp := make([]response.InvoiceSummaryResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, response.InvoiceToSummary(inv))
	}
	return resp, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req *request.UpdateInvoiceRequest) (*response.InvoiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice ID format %s: %w", invoiceID, err)
	}

	invoice, err := s.repo.Invoice.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	if err := s.repo.Invoice.UpdateStatus(ctx, id, entity.InvoiceStatus(req.Status)); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	invoice.Status = entity.InvoiceStatus(req.Status)

	s.log.Info("Invoice updated",
		zap.String("invoice_id", invoiceID),
		zap.String("status", req.Status))

	return loadInvoiceResponse(ctx, s.repo, invoice)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	id, err := uuid.Parse(invoiceID)
	if err != nil {
		return fmt.Errorf("invalid invoice ID format %s: %w", invoiceID, err)
	}

	invoice, err := s.repo.Invoice.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice == nil {
		return ErrInvoiceNotFound
	}

	// Children go first so the invoice row never dangles references.
	if err := s.repo.Ticket.DeleteByInvoiceID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tickets: %w", err)
	}
	if err := s.repo.InvoiceProduct.DeleteByInvoiceID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice products: %w", err)
	}
	if err := s.repo.Invoice.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.log.Info("Invoice deleted", zap.String("invoice_id", invoiceID))
	return nil
}
