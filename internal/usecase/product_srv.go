package usecase

import (
	"context"
	"fmt"

	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error)
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return response.ProductsToResponse(products), nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID format %s: %w", productID, err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}
