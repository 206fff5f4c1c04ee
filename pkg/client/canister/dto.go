package canister

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Wire shapes follow the gateway's Candid-to-JSON mapping: an opt field is a
// zero- or one-element array, nat64 may arrive as a number or a decimal
// string, timestamps are nanoseconds.
type (
	ListNFTsResponse struct {
		NFTs []NFTRecord `json:"nfts"`
	}

	GetNFTRequest struct {
		TokenID string `json:"tokenId"`
	}

	GetNFTResponse struct {
		NFT []NFTRecord `json:"nft"`
	}

	NFTRecord struct {
		TokenID     string        `json:"token_id"`
		Name        string        `json:"name"`
		Description []string      `json:"description"`
		Price       Nat64         `json:"price"`
		AssetURL    []string      `json:"asset_url"`
		Owner       string        `json:"owner"`
		CreatedAt   Nat64         `json:"created_at"`
		Traits      []TraitRecord `json:"traits"`
	}

	// TraitRecord.Rarity is left raw: the gateway sends a string, an array of
	// strings, or nothing.
	TraitRecord struct {
		TraitType string          `json:"trait_type"`
		Value     string          `json:"value"`
		Rarity    json.RawMessage `json:"rarity,omitempty"`
	}
)

// Nat64 is an unsigned 64-bit value accepted as a JSON number or string.
type Nat64 uint64

func (n *Nat64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("nat64: %w", err)
		}
		data = []byte(s)
	}

	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("nat64: %w", err)
	}

	*n = Nat64(v)
	return nil
}

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int64  `json:"-"`
}
