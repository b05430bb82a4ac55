package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinema-backend/internal/data/entity"
	"cinema-backend/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore backs in-memory fakes for every repository interface. Ticket
// creation enforces the (showtime_id, seat_id) unique index the same way
// Postgres does, by failing with a 23505 error.
type memStore struct {
	mu sync.Mutex

	customers map[uuid.UUID]*entity.Customer
	movies    map[uuid.UUID]*entity.Movie
	cinemas   map[uuid.UUID]*entity.Cinema
	rooms     map[uuid.UUID]*entity.Room
	seats     map[uuid.UUID]*entity.Seat
	showtimes map[uuid.UUID]*entity.Showtime
	tickets   map[uuid.UUID]*entity.Ticket
	invoices  map[uuid.UUID]*entity.Invoice
	products  map[uuid.UUID]*entity.Product
	lineItems []*entity.InvoiceProduct
	saves     []*entity.Save

	failTicketCreate    error
	failLineItemCreate  error
	failTicketDetails   error
	ticketCreateBarrier chan struct{}
	invoiceCreateCalls  int
	ticketDeleteCalls   int
	lineItemDeleteCalls int
	invoiceDeleteCalls  int
}

func newMemStore() *memStore {
	return &memStore{
		customers: make(map[uuid.UUID]*entity.Customer),
		movies:    make(map[uuid.UUID]*entity.Movie),
		cinemas:   make(map[uuid.UUID]*entity.Cinema),
		rooms:     make(map[uuid.UUID]*entity.Room),
		seats:     make(map[uuid.UUID]*entity.Seat),
		showtimes: make(map[uuid.UUID]*entity.Showtime),
		tickets:   make(map[uuid.UUID]*entity.Ticket),
		invoices:  make(map[uuid.UUID]*entity.Invoice),
		products:  make(map[uuid.UUID]*entity.Product),
	}
}

func (m *memStore) repo() *repository.Repository {
	return &repository.Repository{
		Customer:       &fakeCustomerRepo{m},
		Movie:          &fakeMovieRepo{m},
		Cinema:         &fakeCinemaRepo{m},
		Room:           &fakeRoomRepo{m},
		Seat:           &fakeSeatRepo{m},
		Showtime:       &fakeShowtimeRepo{m},
		Ticket:         &fakeTicketRepo{m},
		Invoice:        &fakeInvoiceRepo{m},
		InvoiceProduct: &fakeInvoiceProductRepo{m},
		Product:        &fakeProductRepo{m},
		Save:           &fakeSaveRepo{m},
	}
}

func (m *memStore) showtimeDetail(st *entity.Showtime) *entity.ShowtimeDetail {
	detail := &entity.ShowtimeDetail{Showtime: *st}
	if movie, ok := m.movies[st.MovieID]; ok {
		detail.MovieTitle = movie.Title
	}
	if room, ok := m.rooms[st.RoomID]; ok {
		detail.RoomName = room.Name
		if cinema, ok := m.cinemas[room.CinemaID]; ok {
			detail.CinemaName = cinema.Name
			detail.CinemaAddress = cinema.Address
		}
	}
	return detail
}

type fakeCustomerRepo struct{ m *memStore }

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.customers[id], nil
}

type fakeMovieRepo struct{ m *memStore }

func (r *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.movies[id], nil
}

type fakeCinemaRepo struct{ m *memStore }

func (r *fakeCinemaRepo) FindAll(_ context.Context) ([]*entity.Cinema, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*entity.Cinema, 0, len(r.m.cinemas))
	for _, c := range r.m.cinemas {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCinemaRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Cinema, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.cinemas[id], nil
}

type fakeRoomRepo struct{ m *memStore }

func (r *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.rooms[id], nil
}

func (r *fakeRoomRepo) FindByCinemaID(_ context.Context, cinemaID uuid.UUID) ([]*entity.Room, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.Room
	for _, room := range r.m.rooms {
		if room.CinemaID == cinemaID {
			out = append(out, room)
		}
	}
	return out, nil
}

type fakeSeatRepo struct{ m *memStore }

func (r *fakeSeatRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Seat, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.Seat
	for _, id := range ids {
		if seat, ok := r.m.seats[id]; ok {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (r *fakeSeatRepo) FindByRoomID(_ context.Context, roomID uuid.UUID) ([]*entity.Seat, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.Seat
	for _, seat := range r.m.seats {
		if seat.RoomID == roomID {
			out = append(out, seat)
		}
	}
	return out, nil
}

type fakeShowtimeRepo struct{ m *memStore }

func (r *fakeShowtimeRepo) Create(_ context.Context, showtime *entity.Showtime) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.showtimes[showtime.ID] = showtime
	return nil
}

func (r *fakeShowtimeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Showtime, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.showtimes[id], nil
}

func (r *fakeShowtimeRepo) FindDetailByID(_ context.Context, id uuid.UUID) (*entity.ShowtimeDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	st, ok := r.m.showtimes[id]
	if !ok {
		return nil, nil
	}
	return r.m.showtimeDetail(st), nil
}

func (r *fakeShowtimeRepo) FindAll(_ context.Context) ([]*entity.ShowtimeDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*entity.ShowtimeDetail, 0, len(r.m.showtimes))
	for _, st := range r.m.showtimes {
		out = append(out, r.m.showtimeDetail(st))
	}
	return out, nil
}

func (r *fakeShowtimeRepo) FindUpcomingByMovieID(_ context.Context, movieID uuid.UUID, from time.Time, days int) ([]*entity.ShowtimeDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	until := from.AddDate(0, 0, days)
	var out []*entity.ShowtimeDetail
	for _, st := range r.m.showtimes {
		if st.MovieID == movieID && st.StartTime.After(from) && st.StartTime.Before(until) {
			out = append(out, r.m.showtimeDetail(st))
		}
	}
	return out, nil
}

func (r *fakeShowtimeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.showtimes, id)
	return nil
}

type fakeTicketRepo struct{ m *memStore }

func (r *fakeTicketRepo) CreateBatch(_ context.Context, tickets []*entity.Ticket) error {
	if barrier := r.m.ticketCreateBarrier; barrier != nil {
		<-barrier
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failTicketCreate != nil {
		return r.m.failTicketCreate
	}
	for _, t := range tickets {
		for _, existing := range r.m.tickets {
			if existing.ShowtimeID == t.ShowtimeID && existing.SeatID == t.SeatID {
				return &pgconn.PgError{Code: "23505", ConstraintName: "tickets_showtime_seat_key"}
			}
		}
	}
	for _, t := range tickets {
		r.m.tickets[t.ID] = t
	}
	return nil
}

func (r *fakeTicketRepo) FindDetailsByInvoiceID(_ context.Context, invoiceID uuid.UUID) ([]*entity.TicketDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failTicketDetails != nil {
		return nil, r.m.failTicketDetails
	}
	var out []*entity.TicketDetail
	for _, t := range r.m.tickets {
		if t.InvoiceID != invoiceID {
			continue
		}
		detail := &entity.TicketDetail{Ticket: *t}
		if st, ok := r.m.showtimes[t.ShowtimeID]; ok {
			detail.StartTime = st.StartTime
			if movie, ok := r.m.movies[st.MovieID]; ok {
				detail.MovieTitle = movie.Title
			}
		}
		if seat, ok := r.m.seats[t.SeatID]; ok {
			detail.SeatLabel = seat.Label
		}
		out = append(out, detail)
	}
	return out, nil
}

func (r *fakeTicketRepo) DeleteByInvoiceID(_ context.Context, invoiceID uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.ticketDeleteCalls++
	for id, t := range r.m.tickets {
		if t.InvoiceID == invoiceID {
			delete(r.m.tickets, id)
		}
	}
	return nil
}

func (r *fakeTicketRepo) FindTakenSeats(_ context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	wanted := make(map[uuid.UUID]bool, len(seatIDs))
	for _, id := range seatIDs {
		wanted[id] = true
	}
	var out []uuid.UUID
	for _, t := range r.m.tickets {
		if t.ShowtimeID == showtimeID && wanted[t.SeatID] {
			out = append(out, t.SeatID)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) FindSeatIDsByShowtime(_ context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []uuid.UUID
	for _, t := range r.m.tickets {
		if t.ShowtimeID == showtimeID {
			out = append(out, t.SeatID)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct{ m *memStore }

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.invoiceCreateCalls++
	r.m.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.invoices[id], nil
}

func (r *fakeInvoiceRepo) FindAll(_ context.Context) ([]*entity.Invoice, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*entity.Invoice, 0, len(r.m.invoices))
	for _, inv := range r.m.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]*entity.Invoice, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.Invoice
	for _, inv := range r.m.invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.InvoiceStatus) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	inv, ok := r.m.invoices[id]
	if !ok {
		return fmt.Errorf("invoice %s not found", id)
	}
	inv.Status = status
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.invoiceDeleteCalls++
	delete(r.m.invoices, id)
	return nil
}

type fakeInvoiceProductRepo struct{ m *memStore }

func (r *fakeInvoiceProductRepo) CreateBatch(_ context.Context, items []*entity.InvoiceProduct) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failLineItemCreate != nil {
		return r.m.failLineItemCreate
	}
	r.m.lineItems = append(r.m.lineItems, items...)
	return nil
}

func (r *fakeInvoiceProductRepo) FindDetailsByInvoiceID(_ context.Context, invoiceID uuid.UUID) ([]*entity.InvoiceProductDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.InvoiceProductDetail
	for _, item := range r.m.lineItems {
		if item.InvoiceID != invoiceID {
			continue
		}
		detail := &entity.InvoiceProductDetail{InvoiceProduct: *item}
		if p, ok := r.m.products[item.ProductID]; ok {
			detail.ProductName = p.Name
			detail.ProductPrice = p.Price
		}
		out = append(out, detail)
	}
	return out, nil
}

func (r *fakeInvoiceProductRepo) DeleteByInvoiceID(_ context.Context, invoiceID uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.lineItemDeleteCalls++
	kept := r.m.lineItems[:0]
	for _, item := range r.m.lineItems {
		if item.InvoiceID != invoiceID {
			kept = append(kept, item)
		}
	}
	r.m.lineItems = kept
	return nil
}

type fakeProductRepo struct{ m *memStore }

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.m.products))
	for _, p := range r.m.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.products[id], nil
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSaveRepo struct{ m *memStore }

func (r *fakeSaveRepo) Create(_ context.Context, save *entity.Save) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.saves {
		if s.CustomerID == save.CustomerID && s.MovieID == save.MovieID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "saves_pkey"}
		}
	}
	r.m.saves = append(r.m.saves, save)
	return nil
}

func (r *fakeSaveRepo) Delete(_ context.Context, customerID, movieID uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	kept := r.m.saves[:0]
	for _, s := range r.m.saves {
		if !(s.CustomerID == customerID && s.MovieID == movieID) {
			kept = append(kept, s)
		}
	}
	r.m.saves = kept
	return nil
}

func (r *fakeSaveRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]*entity.Save, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.Save
	for _, s := range r.m.saves {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaveRepo) FindCustomersByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.Customer
	for _, s := range r.m.saves {
		if s.MovieID != movieID {
			continue
		}
		if c, ok := r.m.customers[s.CustomerID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeMailer records sends and can fail or stall selected recipients.
type fakeMailer struct {
	mu       sync.Mutex
	sent     []string
	failAll  bool
	failFor  map[string]bool
	stallFor map[string]time.Duration
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: map[string]bool{}, stallFor: map[string]time.Duration{}}
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	f.mu.Lock()
	stall := f.stallFor[to]
	f.mu.Unlock()
	if stall > 0 {
		select {
		case <-time.After(stall):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll || f.failFor[to] {
		return fmt.Errorf("smtp rejected %s", to)
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailer) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	copy(out, f.sent)
	return out
}
