package usecase

import (
	"context"
	"fmt"

	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CinemaService interface {
	GetCinemas(ctx context.Context) ([]response.CinemaResponse, error)
	GetCinema(ctx context.Context, cinemaID string) (*response.CinemaResponse, error)
	GetCinemaRooms(ctx context.Context, cinemaID string) ([]response.RoomResponse, error)
}

type cinemaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCinemaService(repo *repository.Repository, log *zap.Logger) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) GetCinemas(ctx context.Context) ([]response.CinemaResponse, error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find cinemas: %w", err)
	}
	return response.CinemasToResponse(cinemas), nil
}

func (s *cinemaService) GetCinema(ctx context.Context, cinemaID string) (*response.CinemaResponse, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("invalid cinema ID format %s: %w", cinemaID, err)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find cinema: %w", err)
	}
	if cinema == nil {
		return nil, ErrCinemaNotFound
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) GetCinemaRooms(ctx context.Context, cinemaID string) ([]response.RoomResponse, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("invalid cinema ID format %s: %w", cinemaID, err)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find cinema: %w", err)
	}
	if cinema == nil {
		return nil, ErrCinemaNotFound
	}

	rooms, err := s.repo.Room.FindByCinemaID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	return response.RoomsToResponse(rooms), nil
}
