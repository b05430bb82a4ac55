package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-backend/internal/data/entity"
	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/dto/request"
	"cinema-backend/internal/dto/response"
	"cinema-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Showtimes for a movie are listed this many days ahead by default.
const defaultUpcomingDays = 7

type ShowtimeService interface {
	CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetUpcomingByMovie(ctx context.Context, movieID string, days int) ([]response.ShowtimeResponse, error)
	GetShowtimeSeats(ctx context.Context, showtimeID string) (*response.ShowtimeSeatsResponse, error)
	DeleteShowtime(ctx context.Context, showtimeID string) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	showtime := &entity.Showtime{
		ID:        utils.GenerateUUID(),
		MovieID:   movieID,
		RoomID:    roomID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("failed to create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", req.MovieID))

	detail, err := s.repo.Showtime.FindDetailByID(ctx, showtime.ID)
	if err != nil || detail == nil {
		return nil, fmt.Errorf("failed to load created showtime: %w", err)
	}

	resp := response.ShowtimeToResponse(detail)
	return &resp, nil
}

func (s *showtimeService) GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	detail, err := s.repo.Showtime.FindDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find showtime: %w", err)
	}
	if detail == nil {
		return nil, ErrShowtimeNotFound
	}

	resp := response.ShowtimeToResponse(detail)
	return &resp, nil
}

func (s *showtimeService) GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	details, err := s.repo.Showtime.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find showtimes: %w", err)
	}

	resp := make([]response.ShowtimeResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, response.ShowtimeToResponse(d))
	}
	return resp, nil
}

func (s *showtimeService) GetUpcomingByMovie(ctx context.Context, movieID string, days int) ([]response.ShowtimeResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	if days <= 0 {
		days = defaultUpcomingDays
	}

	details, err := s.repo.Showtime.FindUpcomingByMovieID(ctx, id, time.Now(), days)
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming showtimes: %w", err)
	}

	resp := make([]response.ShowtimeResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, response.ShowtimeToResponse(d))
	}
	return resp, nil
}

func (s *showtimeService) GetShowtimeSeats(ctx context.Context, showtimeID string) (*response.ShowtimeSeatsResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find showtime: %w", err)
	}
	if showtime == nil {
		return nil, ErrShowtimeNotFound
	}

	seats, err := s.repo.Seat.FindByRoomID(ctx, showtime.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find seats: %w", err)
	}

	takenIDs, err := s.repo.Ticket.FindSeatIDsByShowtime(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find taken seats: %w", err)
	}
	taken := make(map[string]bool, len(takenIDs))
	for _, seatID := range takenIDs {
		taken[seatID.String()] = true
	}

	resp := response.BuildSeatMap(showtimeID, seats, taken)
	return &resp, nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, showtimeID string) error {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find showtime: %w", err)
	}
	if showtime == nil {
		return ErrShowtimeNotFound
	}

	if err := s.repo.Showtime.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete showtime: %w", err)
	}

	s.log.Info("Showtime deleted", zap.String("showtime_id", showtimeID))
	return nil
}
