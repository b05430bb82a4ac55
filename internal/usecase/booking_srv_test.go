package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cinema-backend/internal/data/entity"
	"cinema-backend/internal/dto/request"
	"cinema-backend/pkg/mailer"
	"cinema-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	store    *memStore
	mail     *fakeMailer
	svc      BookingService
	customer *entity.Customer
	showtime *entity.Showtime
	seats    []*entity.Seat
	product  *entity.Product
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{BookingTimeout: 5 * time.Second},
		Notify: utils.NotifyConfig{
			BatchSize:   5,
			SendTimeout: 2 * time.Second,
			BatchDelay:  10 * time.Millisecond,
		},
	}
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	store := newMemStore()

	customer := &entity.Customer{ID: uuid.New(), FullName: "Anna Tran", Email: "anna@example.com"}
	store.customers[customer.ID] = customer

	movie := &entity.Movie{ID: uuid.New(), Title: "Dune Part Two"}
	store.movies[movie.ID] = movie

	cinema := &entity.Cinema{ID: uuid.New(), Name: "Galaxy Central", Address: "12 Main St"}
	store.cinemas[cinema.ID] = cinema

	room := &entity.Room{ID: uuid.New(), CinemaID: cinema.ID, Name: "Room 1", Capacity: 4}
	store.rooms[room.ID] = room

	var seats []*entity.Seat
	for i, label := range []string{"A1", "A2", "A3", "A4"} {
		seat := &entity.Seat{ID: uuid.New(), RoomID: room.ID, Row: 1, Col: i + 1, Label: label}
		store.seats[seat.ID] = seat
		seats = append(seats, seat)
	}

	showtime := &entity.Showtime{
		ID:        uuid.New(),
		MovieID:   movie.ID,
		RoomID:    room.ID,
		StartTime: time.Now().Add(24 * time.Hour),
		EndTime:   time.Now().Add(26 * time.Hour),
		Price:     100000,
	}
	store.showtimes[showtime.ID] = showtime

	product := &entity.Product{ID: uuid.New(), Name: "Popcorn L", Category: "snack", Price: 25000}
	store.products[product.ID] = product

	mail := newFakeMailer()
	dispatch := mailer.NewDispatcher(mail, 2, 16, 2*time.Second, zap.NewNop())
	t.Cleanup(dispatch.Close)
	svc := NewBookingService(store.repo(), dispatch, testConfig(), zap.NewNop())

	return &bookingFixture{
		store:    store,
		mail:     mail,
		svc:      svc,
		customer: customer,
		showtime: showtime,
		seats:    seats,
		product:  product,
	}
}

func (f *bookingFixture) request(seatIdx ...int) *request.CreateBookingRequest {
	seats := make([]string, len(seatIdx))
	for i, idx := range seatIdx {
		seats[i] = f.seats[idx].ID.String()
	}
	return &request.CreateBookingRequest{
		CustomerID: f.customer.ID.String(),
		Amount:     250000,
		Products: []request.BookingProduct{
			{ProductID: f.product.ID.String(), Quantity: 2},
		},
		Tickets: request.BookingTickets{
			ShowtimeID: f.showtime.ID.String(),
			Seats:      seats,
		},
		PaymentMethod: "card",
		TotalAmount:   250000,
	}
}

func TestCreateBooking(t *testing.T) {
	f := newBookingFixture(t)

	resp, err := f.svc.CreateBooking(context.Background(), f.request(0, 1))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Len(t, resp.InvoiceCode, 6)
	assert.Equal(t, entity.InvoiceStatusPending, resp.Status)
	assert.Equal(t, "card", resp.PaymentMethod)
	assert.Equal(t, f.customer.FullName, resp.Customer.FullName)

	assert.Equal(t, 2, resp.TicketCount)
	require.NotNil(t, resp.Tickets)
	assert.Equal(t, "Dune Part Two", resp.Tickets.Title)
	assert.ElementsMatch(t, []string{"A1", "A2"}, resp.Tickets.Seats)

	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Popcorn L", resp.Products[0].Name)
	assert.Equal(t, float64(50000), resp.Products[0].Total)

	// 2 tickets at 100000 plus 2 popcorn at 25000.
	assert.Equal(t, float64(250000), resp.TotalAmount)
	assert.Equal(t, float64(250000), resp.ChargedAmount)

	assert.Len(t, f.store.tickets, 2)
	assert.Len(t, f.store.invoices, 1)

	// Confirmation mail runs async.
	assert.Eventually(t, func() bool {
		return len(f.mail.sentTo()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"anna@example.com"}, f.mail.sentTo())
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0)
	req.CustomerID = uuid.New().String()

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.ErrorIs(t, err, ErrCustomerNotFound)

	assert.Zero(t, f.store.invoiceCreateCalls)
	assert.Empty(t, f.store.tickets)
}

func TestCreateBookingUnknownShowtime(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0)
	req.Tickets.ShowtimeID = uuid.New().String()

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.ErrorIs(t, err, ErrShowtimeNotFound)
	assert.Zero(t, f.store.invoiceCreateCalls)
}

func TestCreateBookingUnknownSeat(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0)
	req.Tickets.Seats = append(req.Tickets.Seats, uuid.New().String())

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.ErrorIs(t, err, ErrSeatNotFound)
	assert.Zero(t, f.store.invoiceCreateCalls)
}

func TestCreateBookingSeatTaken(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), f.request(0, 1))
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(context.Background(), f.request(1, 2))
	var conflict *SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"A2"}, conflict.Seats)

	// Only the first booking's rows survive.
	assert.Len(t, f.store.invoices, 1)
	assert.Len(t, f.store.tickets, 2)
}

func TestCreateBookingInsertRace(t *testing.T) {
	f := newBookingFixture(t)

	// Hold both bookings at the ticket insert so each passes the
	// availability pre-check before either writes.
	barrier := make(chan struct{})
	f.store.ticketCreateBarrier = barrier

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.svc.CreateBooking(context.Background(), f.request(0))
		}(i)
	}

	time.Sleep(100 * time.Millisecond)
	close(barrier)
	wg.Wait()

	var conflicts, successes int
	for _, err := range results {
		var conflict *SeatConflictError
		switch {
		case err == nil:
			successes++
		case errors.As(err, &conflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	// The loser's invoice must be compensated away.
	assert.Len(t, f.store.invoices, 1)
	assert.Len(t, f.store.tickets, 1)
}

func TestCreateBookingCompensatesOnLineItemFailure(t *testing.T) {
	f := newBookingFixture(t)
	f.store.failLineItemCreate = errors.New("connection reset")

	_, err := f.svc.CreateBooking(context.Background(), f.request(0, 1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)

	// No orphans: tickets and the invoice are both rolled back.
	assert.Empty(t, f.store.tickets)
	assert.Empty(t, f.store.invoices)
	assert.GreaterOrEqual(t, f.store.ticketDeleteCalls, 1)
	assert.GreaterOrEqual(t, f.store.invoiceDeleteCalls, 1)
}

func TestCreateBookingCompensatesOnEnrichFailure(t *testing.T) {
	f := newBookingFixture(t)
	f.store.failTicketDetails = errors.New("connection reset")

	_, err := f.svc.CreateBooking(context.Background(), f.request(0, 1))
	require.Error(t, err)

	// The persisted rows must not outlive the failed booking.
	assert.Empty(t, f.store.tickets)
	assert.Empty(t, f.store.lineItems)
	assert.Empty(t, f.store.invoices)
	assert.GreaterOrEqual(t, f.store.ticketDeleteCalls, 1)
	assert.GreaterOrEqual(t, f.store.invoiceDeleteCalls, 1)
}

func TestCreateBookingRejectsDuplicateSeats(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0)
	req.Tickets.Seats = append(req.Tickets.Seats, f.seats[0].ID.String())

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Zero(t, f.store.invoiceCreateCalls)
	assert.Empty(t, f.store.tickets)
}

func TestCreateBookingConcurrentDisjointSeats(t *testing.T) {
	f := newBookingFixture(t)

	var wg sync.WaitGroup
	results := make([]error, 2)
	seatSets := [][]int{{0, 1}, {2, 3}}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.svc.CreateBooking(context.Background(), f.request(seatSets[i]...))
		}(i)
	}
	wg.Wait()

	require.NoError(t, results[0])
	require.NoError(t, results[1])
	assert.Len(t, f.store.invoices, 2)
	assert.Len(t, f.store.tickets, 4)
}

func TestCreateBookingValidation(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request(0)
	req.PaymentMethod = "cash"

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Zero(t, f.store.invoiceCreateCalls)
}
