package canister

import (
	"context"
)

func (c *BasicClient) ListNFTs(ctx context.Context) (*ListNFTsResponse, error) {
	var resp ListNFTsResponse
	if err := c.getJSON(ctx, "ListNFTs", c.cfg.URLForNFTs, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
