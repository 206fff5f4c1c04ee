package service

import (
	"context"
	"log/slog"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/discovery"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/cache"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/client/canister"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/errlog"
)

type MarketplaceService interface {
	ListNFTs(ctx context.Context, req *ListNFTsRequest) (*ListNFTsResponse, error)
	GetNFT(ctx context.Context, req *GetNFTRequest) (*discovery.NFT, error)
	GetCategories(ctx context.Context) (*GetCategoriesResponse, error)
	RecentErrors(ctx context.Context) []errlog.Entry
	Health(ctx context.Context) (*HealthResponse, error)
}

type Service struct {
	logger              *slog.Logger
	client              canister.Client
	cache               cache.Service
	errors              *errlog.Sink
	cfg                 Config
	convectorToClient   *ConvectorToClient
	convectorFromClient *ConvectorFromClient
}

var _ MarketplaceService = (*Service)(nil)

func NewMarketplaceService(
	_ context.Context,
	log *slog.Logger,
	client canister.Client,
	cacheService cache.Service,
	sink *errlog.Sink,
	cfg Config,
) *Service {
	return &Service{
		logger:              log,
		client:              client,
		cache:               cacheService,
		errors:              sink,
		cfg:                 cfg,
		convectorToClient:   NewConvectorToClient(),
		convectorFromClient: NewConvectorFromClient(),
	}
}

// fail records err in the error sink and returns it unchanged.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	entry := s.errors.Record(ctx, op, err)
	s.logger.ErrorContext(ctx, "service "+op,
		slog.Any("error", err),
		slog.String("kind", string(entry.Kind)),
	)
	return err
}
