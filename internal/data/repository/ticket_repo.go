package repository

import (
	"context"
	"fmt"

	"cinema-backend/internal/data/entity"
	"cinema-backend/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketRepository interface {
	CreateBatch(ctx context.Context, tickets []*entity.Ticket) error
	FindDetailsByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*entity.TicketDetail, error)
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error

	// Business queries
	FindTakenSeats(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error)
	FindSeatIDsByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) CreateBatch(ctx context.Context, tickets []*entity.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	query := `
		INSERT INTO tickets (ticket_id, invoice_id, showtime_id, seat_id, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, ticket := range tickets {
		_, err := r.db.Exec(ctx, query,
			ticket.ID,
			ticket.InvoiceID,
			ticket.ShowtimeID,
			ticket.SeatID,
			ticket.Price,
			ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.String("invoice_id", ticket.InvoiceID.String()),
				zap.String("seat_id", ticket.SeatID.String()),
			)
			return fmt.Errorf("create ticket for invoice %s seat %s: %w",
				ticket.InvoiceID.String(), ticket.SeatID.String(), err)
		}
	}

	return nil
}

func (r *ticketRepository) FindDetailsByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*entity.TicketDetail, error) {
	query := `
		SELECT t.ticket_id, t.invoice_id, t.showtime_id, t.seat_id, t.price, t.created_at,
		       m.title, st.start_time, s.seat_label
		FROM tickets t
		INNER JOIN showtimes st ON t.showtime_id = st.showtime_id
		INNER JOIN movies m ON st.movie_id = m.movie_id
		INNER JOIN seats s ON t.seat_id = s.seat_id
		WHERE t.invoice_id = $1
		ORDER BY s.seat_label
	`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		r.log.Error("Failed to find tickets by invoice ID",
			zap.Error(err),
			zap.String("invoice_id", invoiceID.String()),
		)
		return nil, fmt.Errorf("find tickets by invoice ID %s: %w", invoiceID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.TicketDetail
	for rows.Next() {
		var td entity.TicketDetail
		err := rows.Scan(
			&td.ID,
			&td.InvoiceID,
			&td.ShowtimeID,
			&td.SeatID,
			&td.Price,
			&td.CreatedAt,
			&td.MovieTitle,
			&td.StartTime,
			&td.SeatLabel,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &td)
	}

	return tickets, nil
}

func (r *ticketRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	query := `DELETE FROM tickets WHERE invoice_id = $1`

	_, err := r.db.Exec(ctx, query, invoiceID)
	if err != nil {
		r.log.Error("Failed to delete tickets by invoice ID",
			zap.Error(err),
			zap.String("invoice_id", invoiceID.String()),
		)
		return fmt.Errorf("delete tickets by invoice ID %s: %w", invoiceID.String(), err)
	}

	return nil
}

// FindTakenSeats returns the subset of seatIDs that already have a ticket for
// the showtime. Point-in-time read, no locking.
func (r *ticketRepository) FindTakenSeats(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT seat_id
		FROM tickets
		WHERE showtime_id = $1 AND seat_id = ANY($2)
	`

	rows, err := r.db.Query(ctx, query, showtimeID, seatIDs)
	if err != nil {
		r.log.Error("Failed to find taken seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find taken seats for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	return scanSeatIDs(rows)
}

func (r *ticketRepository) FindSeatIDsByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT seat_id
		FROM tickets
		WHERE showtime_id = $1
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find ticketed seats by showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find ticketed seats by showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	return scanSeatIDs(rows)
}
