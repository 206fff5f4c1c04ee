package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/discovery"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/cache"
)

const collectionCacheKey = "marketplace:collection"

// collection returns the current snapshot, from cache when it is fresh.
// Snapshots are replaced wholesale and never mutated. A zero CatalogCacheTTL
// disables caching.
func (s *Service) collection(ctx context.Context) ([]discovery.NFT, error) {
	if s.cfg.CatalogCacheTTL <= 0 {
		return s.fetchCollection(ctx)
	}

	cached, err := s.cache.Get(ctx, collectionCacheKey)
	switch {
	case err == nil:
		if nfts, ok := cached.([]discovery.NFT); ok {
			return nfts, nil
		}
	case !errors.Is(err, cache.ErrCacheMiss):
		s.logger.WarnContext(ctx, "collection cache read failed", slog.Any("error", err))
	}

	nfts, err := s.fetchCollection(ctx)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Set(ctx, collectionCacheKey, nfts, s.cfg.CatalogCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "collection cache write failed", slog.Any("error", err))
	}

	return nfts, nil
}

func (s *Service) fetchCollection(ctx context.Context) ([]discovery.NFT, error) {
	resp, err := s.client.ListNFTs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch collection: %w", err)
	}

	return s.convectorFromClient.ConvertFromListNFTsResponse(resp), nil
}

// invalidateCollection drops the cached snapshot after the gateway reports a
// token missing, so the next listing no longer shows it.
func (s *Service) invalidateCollection(ctx context.Context) {
	if err := s.cache.Delete(ctx, collectionCacheKey); err != nil {
		s.logger.WarnContext(ctx, "collection cache invalidation failed", slog.Any("error", err))
	}
}
