package discovery

import (
	"sort"

	"github.com/shopspring/decimal"
)

type (
	FacetSet struct {
		Categories []string   `json:"categories"`
		Rarities   []string   `json:"rarities"`
		PriceRange PriceRange `json:"priceRange"`
	}

	PriceRange struct {
		Min decimal.Decimal `json:"min"`
		Max decimal.Decimal `json:"max"`
	}
)

// AvailableCategories returns the distinct non-empty categories of the
// collection in ascending order.
func AvailableCategories(collection []NFT) []string {
	return distinctSorted(collection, func(nft NFT) string {
		return CategoryFromTraits(nft.Traits)
	})
}

// AvailableRarities returns the distinct derived rarities, DefaultRarity
// included when any item has no annotation.
func AvailableRarities(collection []NFT) []string {
	return distinctSorted(collection, func(nft NFT) string {
		return RarityFromTraits(nft.Traits)
	})
}

// Facets collects every filter choice the collection offers. The price range
// is zero for an empty collection.
func Facets(collection []NFT) FacetSet {
	set := FacetSet{
		Categories: AvailableCategories(collection),
		Rarities:   AvailableRarities(collection),
	}

	for i, nft := range collection {
		if i == 0 || nft.Price.LessThan(set.PriceRange.Min) {
			set.PriceRange.Min = nft.Price
		}
		if i == 0 || nft.Price.GreaterThan(set.PriceRange.Max) {
			set.PriceRange.Max = nft.Price
		}
	}

	return set
}

func distinctSorted(collection []NFT, key func(NFT) string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)

	for _, nft := range collection {
		k := key(nft)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}

	sort.Strings(result)

	return result
}
