package service

import (
	"context"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/discovery"
)

// GetCategories returns the filter choices derived from the whole collection,
// independent of any current view state.
func (s *Service) GetCategories(ctx context.Context) (*GetCategoriesResponse, error) {
	nfts, err := s.collection(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetCategories", err)
	}

	return &GetCategoriesResponse{
		FacetSet: discovery.Facets(nfts),
	}, nil
}
