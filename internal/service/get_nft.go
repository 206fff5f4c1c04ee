package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/discovery"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/errlog"
)

func (s *Service) GetNFT(
	ctx context.Context,
	req *GetNFTRequest,
) (*discovery.NFT, error) {
	s.logger.InfoContext(ctx, "GetNFT", slog.Any("req", req))

	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, s.fail(ctx, "GetNFT", fmt.Errorf("%w: %w", errlog.ErrInvalidInput, err))
	}

	clientResp, err := s.client.GetNFT(ctx, s.convectorToClient.ConvertToGetNFTRequest(req))
	if err != nil {
		err = fmt.Errorf("get nft %s: %w", req.TokenID, err)
		if errlog.Classify(err) == errlog.KindNotFound {
			s.invalidateCollection(ctx)
		}
		return nil, s.fail(ctx, "GetNFT", err)
	}

	nft, ok := s.convectorFromClient.ConvertFromGetNFTResponse(clientResp)
	if !ok {
		s.invalidateCollection(ctx)
		return nil, s.fail(ctx, "GetNFT", fmt.Errorf("nft %s: %w", req.TokenID, errlog.ErrNotFound))
	}

	return &nft, nil
}
