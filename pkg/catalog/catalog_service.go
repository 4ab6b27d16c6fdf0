package catalog

import (
	"context"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
)

const defaultSearchLimit = 20

type (
	CatalogService interface {
		GetItems(ctx context.Context, category string) ([]domain.CatalogItemResponse, error)
		Search(ctx context.Context, prefix string) ([]domain.CatalogItemResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) GetItems(ctx context.Context, category string) ([]domain.CatalogItemResponse, error) {
	items, err := s.catalogRepository.GetItems(ctx, category)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s *catalogService) Search(ctx context.Context, prefix string) ([]domain.CatalogItemResponse, error) {
	items, err := s.catalogRepository.SearchByName(ctx, prefix, defaultSearchLimit)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func toResponses(items []*entities.FoodCatalogItem) []domain.CatalogItemResponse {
	responses := make([]domain.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, domain.CatalogItemResponse{
			ID:                    item.ID.String(),
			Name:                  item.Name,
			Category:              item.Category,
			TypicalExpirationDays: item.TypicalExpirationDays,
			SampleCostPerUnit:     item.SampleCostPerUnit,
			Unit:                  item.Unit,
			Description:           item.Description,
			StorageTips:           item.StorageTips,
		})
	}
	return responses
}
