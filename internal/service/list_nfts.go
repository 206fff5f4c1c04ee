package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/discovery"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/errlog"
)

func (s *Service) ListNFTs(
	ctx context.Context,
	req *ListNFTsRequest,
) (*ListNFTsResponse, error) {
	s.logger.InfoContext(ctx, "ListNFTs", slog.Any("req", req))

	page := *req
	if page.Page == 0 {
		page.Page = 1
	}
	if page.PageSize == 0 {
		page.PageSize = s.cfg.pageSize()
	}
	if err := page.ValidateWithContext(ctx); err != nil {
		return nil, s.fail(ctx, "ListNFTs", fmt.Errorf("%w: %w", errlog.ErrInvalidInput, err))
	}

	nfts, err := s.collection(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListNFTs", err)
	}

	view := discovery.Apply(nfts, page.ViewState())

	return &ListNFTsResponse{
		NFTs:       paginate(view, page.Page, page.PageSize),
		TotalCount: len(view),
		Page:       page.Page,
		PageSize:   page.PageSize,
	}, nil
}

// paginate expects page and size to be positive.
func paginate(nfts []discovery.NFT, page, size int) []discovery.NFT {
	start := (page - 1) * size
	if start >= len(nfts) {
		return []discovery.NFT{}
	}

	end := min(start+size, len(nfts))

	return nfts[start:end]
}
