package service

import "github.com/WeGoWinPrikitiw/pico-sub001/pkg/client/canister"

type ConvectorToClient struct{}

func NewConvectorToClient() *ConvectorToClient {
	return &ConvectorToClient{}
}

func (c *ConvectorToClient) ConvertToGetNFTRequest(
	req *GetNFTRequest,
) *canister.GetNFTRequest {
	return &canister.GetNFTRequest{
		TokenID: req.TokenID,
	}
}
