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

type SaveService interface {
	CreateSave(ctx context.Context, req *request.SaveRequest) (*response.SaveResponse, error)
	DeleteSave(ctx context.Context, req *request.SaveRequest) error
	GetCustomerSaves(ctx context.Context, customerID string) ([]response.SaveResponse, error)
}

type saveService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSaveService(repo *repository.Repository, log *zap.Logger) SaveService {
	return &saveService{
		repo: repo,
		log:  log.With(zap.String("service", "save")),
	}
}

func (s *saveService) CreateSave(ctx context.Context, req *request.SaveRequest) (*response.SaveResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	save := &entity.Save{
		CustomerID: customerID,
		MovieID:    movieID,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Save.Create(ctx, save); err != nil {
		if isUniqueViolation(err) {
			// Saving twice is a no-op.
			resp := response.SaveToResponse(save)
			return &resp, nil
		}
		return nil, fmt.Errorf("failed to create save: %w", err)
	}

	s.log.Info("Movie saved",
		zap.String("customer_id", req.CustomerID),
		zap.String("movie_id", req.MovieID))

	resp := response.SaveToResponse(save)
	return &resp, nil
}

func (s *saveService) DeleteSave(ctx context.Context, req *request.SaveRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	if err := s.repo.Save.Delete(ctx, customerID, movieID); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	s.log.Info("Movie unsaved",
		zap.String("customer_id", req.CustomerID),
		zap.String("movie_id", req.MovieID))
	return nil
}

func (s *saveService) GetCustomerSaves(ctx context.Context, customerID string) ([]response.SaveResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	saves, err := s.repo.Save.FindByCustomerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find saves: %w", err)
	}

	return response.SavesToResponse(saves), nil
}
