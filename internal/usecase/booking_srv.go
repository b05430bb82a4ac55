package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-backend/internal/data/entity"
	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/dto/request"
	"cinema-backend/internal/dto/response"
	"cinema-backend/pkg/mailer"
	"cinema-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.InvoiceResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	dispatch *mailer.Dispatcher
	config   *utils.Config
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, dispatch *mailer.Dispatcher, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		dispatch: dispatch,
		config:   config,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.InvoiceResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.App.BookingTimeout)
	defer cancel()

	// Parse IDs
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
	}

	showtimeID, err := uuid.Parse(req.Tickets.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", req.Tickets.ShowtimeID, err)
	}

	seatIDs := make([]uuid.UUID, len(req.Tickets.Seats))
	for i, seatIDStr := range req.Tickets.Seats {
		seatID, err := uuid.Parse(seatIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid seat ID format %s: %w", seatIDStr, err)
		}
		seatIDs[i] = seatID
	}

	// Validate referenced rows exist
	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	showtime, err := s.repo.Showtime.FindDetailByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find showtime: %w", err)
	}
	if showtime == nil {
		return nil, ErrShowtimeNotFound
	}

	seats, err := s.repo.Seat.FindByIDs(ctx, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find seats: %w", err)
	}
	seatLabels := make(map[uuid.UUID]string, len(seats))
	for _, seat := range seats {
		if seat.RoomID != showtime.RoomID {
			return nil, fmt.Errorf("seat %s does not belong to room %s", seat.ID, showtime.RoomID)
		}
		seatLabels[seat.ID] = seat.Label
	}
	if len(seats) != len(seatIDs) {
		return nil, ErrSeatNotFound
	}

	if len(req.Products) > 0 {
		productIDs := make([]uuid.UUID, len(req.Products))
		for i, p := range req.Products {
			productID, err := uuid.Parse(p.ProductID)
			if err != nil {
				return nil, fmt.Errorf("invalid product ID format %s: %w", p.ProductID, err)
			}
			productIDs[i] = productID
		}
		products, err := s.repo.Product.FindByIDs(ctx, productIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to find products: %w", err)
		}
		if len(products) != len(productIDs) {
			return nil, ErrProductNotFound
		}
	}

	// Pre-check seat availability. The unique index on (showtime_id, seat_id)
	// remains the authoritative guard; this just catches the common case early.
	taken, err := s.repo.Ticket.FindTakenSeats(ctx, showtimeID, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check taken seats: %w", err)
	}
	if len(taken) > 0 {
		return nil, s.seatConflict(taken, seatLabels)
	}

	status := entity.InvoiceStatusPending
	if req.Status != "" {
		status = entity.InvoiceStatus(req.Status)
	}

	invoice := &entity.Invoice{
		ID:            utils.GenerateUUID(),
		Code:          utils.GenerateInvoiceCode(),
		CustomerID:    customerID,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		TotalAmount:   req.TotalAmount,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Invoice.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	tickets := make([]*entity.Ticket, len(seatIDs))
	for i, seatID := range seatIDs {
		tickets[i] = &entity.Ticket{
			ID:         utils.GenerateUUID(),
			InvoiceID:  invoice.ID,
			ShowtimeID: showtimeID,
			SeatID:     seatID,
			Price:      showtime.Price,
			CreatedAt:  time.Now(),
		}
	}

	if err := s.repo.Ticket.CreateBatch(ctx, tickets); err != nil {
		s.compensate(invoice.ID)
		if isUniqueViolation(err) {
			// Someone else won the race between the pre-check and the insert.
			taken, qerr := s.repo.Ticket.FindTakenSeats(context.Background(), showtimeID, seatIDs)
			if qerr != nil || len(taken) == 0 {
				taken = seatIDs
			}
			return nil, s.seatConflict(taken, seatLabels)
		}
		return nil, fmt.Errorf("failed to create tickets: %w", err)
	}

	if len(req.Products) > 0 {
		items := make([]*entity.InvoiceProduct, len(req.Products))
		for i, p := range req.Products {
			productID, _ := uuid.Parse(p.ProductID)
			items[i] = &entity.InvoiceProduct{
				InvoiceID: invoice.ID,
				ProductID: productID,
				Quantity:  p.Quantity,
			}
		}
		if err := s.repo.InvoiceProduct.CreateBatch(ctx, items); err != nil {
			s.compensate(invoice.ID)
			return nil, fmt.Errorf("failed to create invoice products: %w", err)
		}
	}

	resp, err := loadInvoiceResponse(ctx, s.repo, invoice)
	if err != nil {
		s.compensate(invoice.ID)
		return nil, fmt.Errorf("failed to load invoice details: %w", err)
	}

	// Confirmation mail must not hold up the booking response; the
	// dispatcher's workers own the delivery from here.
	s.queueConfirmation(customer, showtime, resp)

	s.log.Info("Booking created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_code", invoice.Code),
		zap.Int("tickets", len(tickets)))

	return resp, nil
}

func (s *bookingService) seatConflict(taken []uuid.UUID, labels map[uuid.UUID]string) error {
	conflict := &SeatConflictError{Seats: make([]string, 0, len(taken))}
	for _, id := range taken {
		if label, ok := labels[id]; ok {
			conflict.Seats = append(conflict.Seats, label)
		} else {
			conflict.Seats = append(conflict.Seats, id.String())
		}
	}
	return conflict
}

// compensate removes every row written for a failed booking. It runs on a
// fresh context so a cancelled request cannot leave orphans behind.
func (s *bookingService) compensate(invoiceID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.App.BookingTimeout)
	defer cancel()

	if err := s.repo.Ticket.DeleteByInvoiceID(ctx, invoiceID); err != nil {
		s.log.Error("Compensation failed to delete tickets",
			zap.String("invoice_id", invoiceID.String()), zap.Error(err))
	}
	if err := s.repo.InvoiceProduct.DeleteByInvoiceID(ctx, invoiceID); err != nil {
		s.log.Error("Compensation failed to delete invoice products",
			zap.String("invoice_id", invoiceID.String()), zap.Error(err))
	}
	if err := s.repo.Invoice.Delete(ctx, invoiceID); err != nil {
		s.log.Error("Compensation failed to delete invoice",
			zap.String("invoice_id", invoiceID.String()), zap.Error(err))
	}
}

func (s *bookingService) queueConfirmation(customer *entity.Customer, showtime *entity.ShowtimeDetail, inv *response.InvoiceResponse) {
	data := mailer.BookingConfirmationData{
		CustomerName:  customer.FullName,
		InvoiceCode:   inv.InvoiceCode,
		MovieTitle:    showtime.MovieTitle,
		CinemaName:    showtime.CinemaName,
		CinemaAddress: showtime.CinemaAddress,
		StartTime:     showtime.StartTime,
		TicketPrice:   showtime.Price,
		TotalAmount:   inv.TotalAmount,
	}
	if inv.Tickets != nil {
		data.Seats = inv.Tickets.Seats
	}
	for _, p := range inv.Products {
		data.Products = append(data.Products, mailer.BookingProductLine{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price,
		})
	}

	subject, body, err := mailer.RenderBookingConfirmation(data)
	if err != nil {
		s.log.Error("Failed to render confirmation mail", zap.Error(err))
		return
	}

	s.dispatch.Enqueue(mailer.Job{To: customer.Email, Subject: subject, Body: body})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
