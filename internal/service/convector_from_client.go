package service

import (
	"bytes"
	"encoding/json"
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/discovery"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/client/canister"
)

// e8s: prices on the ledger are integers of 10^-8 token units.
const priceExponent = -8

type ConvectorFromClient struct{}

func NewConvectorFromClient() *ConvectorFromClient {
	return &ConvectorFromClient{}
}

func (c *ConvectorFromClient) ConvertFromListNFTsResponse(
	resp *canister.ListNFTsResponse,
) []discovery.NFT {
	result := make([]discovery.NFT, len(resp.NFTs))
	for i, record := range resp.NFTs {
		result[i] = c.ConvertFromNFTRecord(record)
	}
	return result
}

// ConvertFromGetNFTResponse reports false when the gateway returned an empty opt.
func (c *ConvectorFromClient) ConvertFromGetNFTResponse(
	resp *canister.GetNFTResponse,
) (discovery.NFT, bool) {
	if resp == nil || len(resp.NFT) == 0 {
		return discovery.NFT{}, false
	}
	return c.ConvertFromNFTRecord(resp.NFT[0]), true
}

func (c *ConvectorFromClient) ConvertFromNFTRecord(record canister.NFTRecord) discovery.NFT {
	return discovery.NFT{
		ID:          record.TokenID,
		Name:        record.Name,
		Description: optText(record.Description),
		Price:       toPrice(record.Price),
		ImageURL:    optText(record.AssetURL),
		Owner:       record.Owner,
		CreatedAt:   int64(uint64(record.CreatedAt) / uint64(time.Second)),
		Traits:      toDiscoveryTraits(record.Traits),
	}
}

// Support func`s for unwrapping the gateway's opt and nat encodings.
func optText(opt []string) string {
	if len(opt) == 0 {
		return ""
	}
	return opt[0]
}

func toPrice(e8s canister.Nat64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(e8s)), priceExponent)
}

func toDiscoveryTraits(traits []canister.TraitRecord) []discovery.Trait {
	result := make([]discovery.Trait, len(traits))
	for i, t := range traits {
		result[i] = discovery.Trait{
			TraitType: t.TraitType,
			Value:     t.Value,
			Rarity:    toRarity(t.Rarity),
		}
	}
	return result
}

// toRarity decodes a string as Single and an array of strings as Multiple.
// Anything else, including null, is absent.
func toRarity(raw json.RawMessage) discovery.Rarity {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return discovery.NoRarity()
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return discovery.SingleRarity(s)
		}
	case '[':
		var values []string
		if err := json.Unmarshal(raw, &values); err == nil {
			return discovery.MultipleRarity(values...)
		}
	}

	return discovery.NoRarity()
}
