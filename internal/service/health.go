package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/errlog"
)

// Health reports liveness and error-log usage. Cache statistics are attached
// when available.
func (s *Service) Health(ctx context.Context) (*HealthResponse, error) {
	resp := &HealthResponse{
		Status: http.StatusOK,
		ErrorLog: ErrorLogStats{
			Entries:  s.errors.Len(),
			Capacity: s.errors.Capacity(),
		},
	}

	stats, err := s.cache.GetStats(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "cache stats unavailable", slog.Any("error", err))
		return resp, nil
	}
	resp.Cache = stats

	return resp, nil
}

func (s *Service) RecentErrors(_ context.Context) []errlog.Entry {
	return s.errors.Entries()
}
