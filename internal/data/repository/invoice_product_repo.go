package repository

import (
	"context"
	"fmt"

	"cinema-backend/internal/data/entity"
	"cinema-backend/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceProductRepository interface {
	CreateBatch(ctx context.Context, items []*entity.InvoiceProduct) error
	FindDetailsByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*entity.InvoiceProductDetail, error)
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error
}

type invoiceProductRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceProductRepository(db database.PgxIface, log *zap.Logger) InvoiceProductRepository {
	return &invoiceProductRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice_product")),
	}
}

func (r *invoiceProductRepository) CreateBatch(ctx context.Context, items []*entity.InvoiceProduct) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO invoice_products (invoice_id, product_id, quantity)
		VALUES ($1, $2, $3)
	`

	for _, item := range items {
		_, err := r.db.Exec(ctx, query,
			item.InvoiceID,
			item.ProductID,
			item.Quantity,
		)
		if err != nil {
			r.log.Error("Failed to create invoice product",
				zap.Error(err),
				zap.String("invoice_id", item.InvoiceID.String()),
				zap.String("product_id", item.ProductID.String()),
			)
			return fmt.Errorf("create invoice product for invoice %s product %s: %w",
				item.InvoiceID.String(), item.ProductID.String(), err)
		}
	}

	return nil
}

func (r *invoiceProductRepository) FindDetailsByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*entity.InvoiceProductDetail, error) {
	query := `
		SELECT ip.invoice_id, ip.product_id, ip.quantity, p.name, p.price
		FROM invoice_products ip
		INNER JOIN products p ON ip.product_id = p.product_id
		WHERE ip.invoice_id = $1
		ORDER BY p.name
	`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		r.log.Error("Failed to find invoice products by invoice ID",
			zap.Error(err),
			zap.String("invoice_id", invoiceID.String()),
		)
		return nil, fmt.Errorf("find invoice products by invoice ID %s: %w", invoiceID.String(), err)
	}
	defer rows.Close()

	var items []*entity.InvoiceProductDetail
	for rows.Next() {
		var item entity.InvoiceProductDetail
		err := rows.Scan(
			&item.InvoiceID,
			&item.ProductID,
			&item.Quantity,
			&item.ProductName,
			&item.ProductPrice,
		)
		if err != nil {
			r.log.Error("Failed to scan invoice product row", zap.Error(err))
			return nil, fmt.Errorf("scan invoice product row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *invoiceProductRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	query := `DELETE FROM invoice_products WHERE invoice_id = $1`

	_, err := r.db.Exec(ctx, query, invoiceID)
	if err != nil {
		r.log.Error("Failed to delete invoice products by invoice ID",
			zap.Error(err),
			zap.String("invoice_id", invoiceID.String()),
		)
		return fmt.Errorf("delete invoice products by invoice ID %s: %w", invoiceID.String(), err)
	}

	return nil
}
