package usecase

import (
	"context"
	"fmt"

	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	GetProfile(ctx context.Context, customerID string) (*response.CustomerProfileResponse, error)
	GetBookingHistory(ctx context.Context, customerID string) ([]response.InvoiceResponse, error)
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

// GetProfile returns the customer row together with their full booking
// history, each invoice expanded to its detailed view.
func (s *customerService) GetProfile(ctx context.Context, customerID string) (*response.CustomerProfileResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	history, err := s.bookingHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	return &response.CustomerProfileResponse{
		CustomerResponse: response.CustomerToResponse(customer),
		Invoices:         history,
	}, nil
}

// GetBookingHistory returns the customer's invoices as detailed views.
func (s *customerService) GetBookingHistory(ctx context.Context, customerID string) ([]response.InvoiceResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	return s.bookingHistory(ctx, id)
}

func (s *customerService) bookingHistory(ctx context.Context, customerID uuid.UUID) ([]response.InvoiceResponse, error) {
	invoices, err := s.repo.Invoice.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoices: %w", err)
	}

	history := make([]response.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		detail, err := loadInvoiceResponse(ctx, s.repo, inv)
		if err != nil {
			return nil, err
		}
		history = append(history, *detail)
	}
	return history, nil
}
