package usecase

import (
	"context"
	"testing"

	"cinema-backend/internal/data/entity"
	"cinema-backend/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bookInvoice(t *testing.T, f *bookingFixture) string {
	t.Helper()
	resp, err := f.svc.CreateBooking(context.Background(), f.request(0, 1))
	require.NoError(t, err)
	return resp.InvoiceID
}

func TestGetInvoiceRecomputesTotalAtCurrentPrices(t *testing.T) {
	f := newBookingFixture(t)
	invoiceID := bookInvoice(t, f)

	svc := NewInvoiceService(f.store.repo(), zap.NewNop())

	resp, err := svc.GetInvoice(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, float64(250000), resp.TotalAmount)
	assert.Equal(t, float64(250000), resp.ChargedAmount)

	// A price bump after booking shows up in the recomputed total but not
	// in the amount that was charged.
	f.store.products[f.product.ID].Price = 30000

	resp, err = svc.GetInvoice(context.Background(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, float64(260000), resp.TotalAmount)
	assert.Equal(t, float64(250000), resp.ChargedAmount)
	assert.Equal(t, 2, resp.TicketCount)
	assert.Equal(t, 1, resp.ProductCount)
}

func TestGetInvoiceNotFound(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewInvoiceService(f.store.repo(), zap.NewNop())

	_, err := svc.GetInvoice(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestUpdateInvoiceStatus(t *testing.T) {
	f := newBookingFixture(t)
	invoiceID := bookInvoice(t, f)

	svc := NewInvoiceService(f.store.repo(), zap.NewNop())

	resp, err := svc.UpdateInvoice(context.Background(), invoiceID, &request.UpdateInvoiceRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusCompleted, resp.Status)

	id, _ := uuid.Parse(invoiceID)
	assert.Equal(t, entity.InvoiceStatusCompleted, f.store.invoices[id].Status)
}

func TestUpdateInvoiceRejectsBadStatus(t *testing.T) {
	f := newBookingFixture(t)
	invoiceID := bookInvoice(t, f)

	svc := NewInvoiceService(f.store.repo(), zap.NewNop())

	_, err := svc.UpdateInvoice(context.Background(), invoiceID, &request.UpdateInvoiceRequest{Status: "refunded"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestDeleteInvoiceRemovesChildren(t *testing.T) {
	f := newBookingFixture(t)
	invoiceID := bookInvoice(t, f)

	svc := NewInvoiceService(f.store.repo(), zap.NewNop())

	require.NoError(t, svc.DeleteInvoice(context.Background(), invoiceID))

	assert.Empty(t, f.store.invoices)
	assert.Empty(t, f.store.tickets)
	assert.Empty(t, f.store.lineItems)
}

func TestDeleteInvoiceNotFound(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewInvoiceService(f.store.repo(), zap.NewNop())

	err := svc.DeleteInvoice(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, ErrInvoiceNotFound)
}
