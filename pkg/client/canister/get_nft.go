package canister

import (
	"context"
	"fmt"
	"net/url"
)

func (c *BasicClient) GetNFT(
	ctx context.Context,
	req *GetNFTRequest,
) (*GetNFTResponse, error) {
	urlForGetNFT := fmt.Sprintf("%s/%s",
		c.cfg.URLForNFTs,
		url.PathEscape(req.TokenID),
	)

	var resp GetNFTResponse
	if err := c.getJSON(ctx, "GetNFT", urlForGetNFT, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
