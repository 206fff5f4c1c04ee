package service

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/discovery"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/cache"
)

type (
	// ListNFTsRequest carries the marketplace view state. Filter fields are
	// free text and are never rejected; only pagination is validated.
	ListNFTsRequest struct {
		Search   string `json:"search"`
		MinPrice string `json:"minPrice"`
		MaxPrice string `json:"maxPrice"`
		Category string `json:"category"`
		Status   string `json:"status"`
		Rarity   string `json:"rarity"`
		Sort     string `json:"sort"`
		Page     int    `json:"page"`
		PageSize int    `json:"pageSize"`
	}

	ListNFTsResponse struct {
		NFTs       []discovery.NFT `json:"nfts"`
		TotalCount int             `json:"totalCount"`
		Page       int             `json:"page"`
		PageSize   int             `json:"pageSize"`
	}
)

type GetNFTRequest struct {
	TokenID string `json:"tokenId"`
}

type GetCategoriesResponse struct {
	discovery.FacetSet
}

type (
	HealthResponse struct {
		Status   int           `json:"status"`
		Cache    *cache.Stats  `json:"cache,omitempty"`
		ErrorLog ErrorLogStats `json:"errorLog"`
	}

	ErrorLogStats struct {
		Entries  int `json:"entries"`
		Capacity int `json:"capacity"`
	}
)

func (r *ListNFTsRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Page, validation.Required, validation.Min(1)),
		validation.Field(&r.PageSize, validation.Required, validation.Min(1), validation.Max(maxPageSize)),
	)
}

func (r *GetNFTRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.TokenID, validation.Required),
	)
}

func (r *ListNFTsRequest) ViewState() discovery.ViewState {
	return discovery.ViewState{
		Search: r.Search,
		Criteria: discovery.Criteria{
			MinPrice: r.MinPrice,
			MaxPrice: r.MaxPrice,
			Category: r.Category,
			Status:   discovery.ParseStatus(r.Status),
			Rarity:   r.Rarity,
		},
		Sort: discovery.ParseSortStrategy(r.Sort),
	}
}
