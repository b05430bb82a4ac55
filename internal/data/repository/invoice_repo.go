package repository

import (
	"context"
	"fmt"

	"cinema-backend/internal/data/entity"
	"cinema-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindAll(ctx context.Context) ([]*entity.Invoice, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceRepository(db database.PgxIface, log *zap.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice")),
	}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_id, invoice_code, customer_id, payment_method, status, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		invoice.ID,
		invoice.Code,
		invoice.CustomerID,
		invoice.PaymentMethod,
		invoice.Status,
		invoice.TotalAmount,
		invoice.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create invoice",
			zap.Error(err),
			zap.String("invoice_code", invoice.Code),
			zap.String("customer_id", invoice.CustomerID.String()),
		)
		return fmt.Errorf("create invoice %s: %w", invoice.Code, err)
	}

	return nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_code, customer_id, payment_method, status, total_amount, created_at
		FROM invoices
		WHERE invoice_id = $1
	`

	var invoice entity.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.Code,
		&invoice.CustomerID,
		&invoice.PaymentMethod,
		&invoice.Status,
		&invoice.TotalAmount,
		&invoice.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find invoice by ID",
			zap.Error(err),
			zap.String("invoice_id", id.String()),
		)
		return nil, fmt.Errorf("find invoice by ID %s: %w", id.String(), err)
	}

	return &invoice, nil
}

func (r *invoiceRepository) FindAll(ctx context.Context) ([]*entity.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_code, customer_id, payment_method, status, total_amount, created_at
		FROM invoices
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find invoices", zap.Error(err))
		return nil, fmt.Errorf("find invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoices(rows)
}

func (r *invoiceRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_code, customer_id, payment_method, status, total_amount, created_at
		FROM invoices
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find invoices by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find invoices by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	return scanInvoices(rows)
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error {
	query := `UPDATE invoices SET status = $2 WHERE invoice_id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update invoice status",
			zap.Error(err),
			zap.String("invoice_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update invoice %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s not found", id.String())
	}

	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE invoice_id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete invoice",
			zap.Error(err),
			zap.String("invoice_id", id.String()),
		)
		return fmt.Errorf("delete invoice %s: %w", id.String(), err)
	}

	return nil
}

func scanInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var invoices []*entity.Invoice
	for rows.Next() {
		var invoice entity.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.Code,
			&invoice.CustomerID,
			&invoice.PaymentMethod,
			&invoice.Status,
			&invoice.TotalAmount,
			&invoice.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, &invoice)
	}

	return invoices, nil
}
