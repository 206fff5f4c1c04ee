package canister

import (
	"context"
	"log/slog"
	"net/http"
)

type Client interface {
	ListNFTs(ctx context.Context) (*ListNFTsResponse, error)
	GetNFT(ctx context.Context, req *GetNFTRequest) (*GetNFTResponse, error)
}

type BasicClient struct {
	client *http.Client
	logger *slog.Logger
	cfg    *Config
}

func NewBasicClient(httpClient *http.Client, cfg *Config, log *slog.Logger) *BasicClient {
	return &BasicClient{
		client: httpClient,
		logger: log,
		cfg:    cfg,
	}
}
