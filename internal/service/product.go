package service

import (
	"context"

	"github.com/tavaresm/garimpo/internal/domain/dto"
	"github.com/tavaresm/garimpo/internal/domain/models"
	"github.com/tavaresm/garimpo/internal/search"
)

// ProductService defines business logic for the product search endpoint.
// This decouples HTTP handlers from the aggregation engine.
type ProductService interface {
	Search(ctx context.Context, filter dto.SearchRequest) (models.Catalog, error)
}

type productService struct {
	agg *search.Aggregator
}

func NewProductService(agg *search.Aggregator) ProductService {
	return &productService{agg: agg}
}

func (s *productService) Search(ctx context.Context, filter dto.SearchRequest) (models.Catalog, error) {
	// quota and cache live inside the aggregator
	return s.agg.Search(ctx, filter)
}
