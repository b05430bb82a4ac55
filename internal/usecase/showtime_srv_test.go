package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-backend/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateShowtime(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewShowtimeService(f.store.repo(), zap.NewNop())

	start := time.Now().Add(72 * time.Hour)
	resp, err := svc.CreateShowtime(context.Background(), &request.CreateShowtimeRequest{
		MovieID:   f.showtime.MovieID.String(),
		RoomID:    f.showtime.RoomID.String(),
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     120000,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dune Part Two", resp.MovieTitle)
	assert.Equal(t, "Galaxy Central", resp.CinemaName)
	assert.Equal(t, float64(120000), resp.Price)
	assert.Len(t, f.store.showtimes, 2)
}

func TestCreateShowtimeUnknownMovie(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewShowtimeService(f.store.repo(), zap.NewNop())

	start := time.Now().Add(72 * time.Hour)
	_, err := svc.CreateShowtime(context.Background(), &request.CreateShowtimeRequest{
		MovieID:   uuid.New().String(),
		RoomID:    f.showtime.RoomID.String(),
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Price:     120000,
	})
	require.ErrorIs(t, err, ErrMovieNotFound)
	assert.Len(t, f.store.showtimes, 1)
}

func TestCreateShowtimeEndBeforeStart(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewShowtimeService(f.store.repo(), zap.NewNop())

	start := time.Now().Add(72 * time.Hour)
	_, err := svc.CreateShowtime(context.Background(), &request.CreateShowtimeRequest{
		MovieID:   f.showtime.MovieID.String(),
		RoomID:    f.showtime.RoomID.String(),
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
		Price:     120000,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetShowtimeSeatsMarksTaken(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewShowtimeService(f.store.repo(), zap.NewNop())

	_, err := f.svc.CreateBooking(context.Background(), f.request(0, 2))
	require.NoError(t, err)

	resp, err := svc.GetShowtimeSeats(context.Background(), f.showtime.ID.String())
	require.NoError(t, err)
	require.Len(t, resp.Seats, 4)

	taken := map[string]bool{}
	for _, seat := range resp.Seats {
		taken[seat.Label] = seat.Taken
	}
	assert.True(t, taken["A1"])
	assert.False(t, taken["A2"])
	assert.True(t, taken["A3"])
	assert.False(t, taken["A4"])
}

func TestGetUpcomingByMovieWindow(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewShowtimeService(f.store.repo(), zap.NewNop())

	// One showtime inside the default 7-day window (from the fixture) and
	// one beyond it.
	far := *f.showtime
	far.ID = uuid.New()
	far.StartTime = time.Now().Add(30 * 24 * time.Hour)
	far.EndTime = far.StartTime.Add(2 * time.Hour)
	f.store.showtimes[far.ID] = &far

	resp, err := svc.GetUpcomingByMovie(context.Background(), f.showtime.MovieID.String(), 0)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, f.showtime.ID.String(), resp[0].ShowtimeID)
}

func TestGetShowtimeNotFound(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewShowtimeService(f.store.repo(), zap.NewNop())

	_, err := svc.GetShowtime(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, ErrShowtimeNotFound)
}
