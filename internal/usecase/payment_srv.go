package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"cinema-backend/internal/data/entity"
	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/dto/request"
	"cinema-backend/internal/dto/response"
	"cinema-backend/pkg/paygate"
	"cinema-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidSignature = errors.New("invalid payment signature")

type PaymentService interface {
	CreatePaymentURL(ctx context.Context, req *request.CreatePaymentURLRequest, ipAddr string) (*response.PaymentURLResponse, error)
	HandleCallback(ctx context.Context, query url.Values) (*response.PaymentCallbackResponse, error)
}

type paymentService struct {
	repo    *repository.Repository
	gateway *paygate.Gateway
	log     *zap.Logger
}

func NewPaymentService(repo *repository.Repository, gateway *paygate.Gateway, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:    repo,
		gateway: gateway,
		log:     log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePaymentURL(ctx context.Context, req *request.CreatePaymentURLRequest, ipAddr string) (*response.PaymentURLResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice ID format %s: %w", req.InvoiceID, err)
	}

	invoice, err := s.repo.Invoice.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	if invoice.Status != entity.InvoiceStatusPending {
		return nil, fmt.Errorf("invoice %s is not pending", invoice.Code)
	}

	orderInfo := req.OrderInfo
	if orderInfo == "" {
		orderInfo = fmt.Sprintf("Payment for invoice %s", invoice.Code)
	}

	paymentURL := s.gateway.BuildPaymentURL(invoice.ID.String(), orderInfo, invoice.TotalAmount, ipAddr, time.Now())

	s.log.Info("Payment URL created",
		zap.String("invoice_id", req.InvoiceID),
		zap.String("invoice_code", invoice.Code))

	return &response.PaymentURLResponse{
		InvoiceID:  invoice.ID.String(),
		PaymentURL: paymentURL,
	}, nil
}

// HandleCallback settles an invoice from the gateway's return redirect.
// Response code "00" completes the invoice, anything else cancels it.
func (s *paymentService) HandleCallback(ctx context.Context, query url.Values) (*response.PaymentCallbackResponse, error) {
	if !s.gateway.VerifyCallback(query) {
		s.log.Warn("Payment callback rejected", zap.String("txn_ref", query.Get("vnp_TxnRef")))
		return nil, ErrInvalidSignature
	}

	id, err := uuid.Parse(query.Get("vnp_TxnRef"))
	if err != nil {
		return nil, fmt.Errorf("invalid transaction reference %s: %w", query.Get("vnp_TxnRef"), err)
	}

	invoice, err := s.repo.Invoice.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	status := entity.InvoiceStatusCancelled
	if query.Get("vnp_ResponseCode") == "00" {
		status = entity.InvoiceStatusCompleted
	}

	if err := s.repo.Invoice.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	s.log.Info("Payment callback processed",
		zap.String("invoice_id", id.String()),
		zap.String("status", string(status)))

	return &response.PaymentCallbackResponse{
		InvoiceID: id.String(),
		Status:    string(status),
	}, nil
}
