package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrCinemaNotFound   = errors.New("cinema not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSeatNotFound     = errors.New("seat not found")
)

// IsNotFound reports whether err is any of the missing-resource sentinels.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrCustomerNotFound,
		ErrShowtimeNotFound,
		ErrMovieNotFound,
		ErrRoomNotFound,
		ErrCinemaNotFound,
		ErrInvoiceNotFound,
		ErrProductNotFound,
		ErrSeatNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// SeatConflictError carries the seats that were already taken when a
// booking was rejected.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	if len(e.Seats) == 0 {
		return "seats already taken"
	}
	return fmt.Sprintf("seats already taken: %s", strings.Join(e.Seats, ", "))
}
