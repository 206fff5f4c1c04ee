package discovery

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type predicate func(NFT) bool

// FilterNFTs returns the items matching every active criterion, in input
// order. The input slice is never modified.
func FilterNFTs(collection []NFT, search string, criteria Criteria) []NFT {
	return filterAt(collection, search, criteria, time.Now())
}

func filterAt(collection []NFT, search string, criteria Criteria, now time.Time) []NFT {
	preds := predicates(search, criteria, now)

	result := make([]NFT, 0, len(collection))
	for _, nft := range collection {
		if matchesAll(nft, preds) {
			result = append(result, nft)
		}
	}

	return result
}

func matchesAll(nft NFT, preds []predicate) bool {
	for _, p := range preds {
		if !p(nft) {
			return false
		}
	}
	return true
}

func predicates(search string, criteria Criteria, now time.Time) []predicate {
	var preds []predicate

	// Blank queries are inactive; otherwise the query is matched as given.
	if strings.TrimSpace(search) != "" {
		q := strings.ToLower(search)
		preds = append(preds, func(nft NFT) bool {
			return matchesSearch(nft, q)
		})
	}

	if lower, ok := parsePrice(criteria.MinPrice); ok {
		preds = append(preds, func(nft NFT) bool {
			return nft.Price.GreaterThanOrEqual(lower)
		})
	}

	if upper, ok := parsePrice(criteria.MaxPrice); ok {
		preds = append(preds, func(nft NFT) bool {
			return nft.Price.LessThanOrEqual(upper)
		})
	}

	if strings.TrimSpace(criteria.Category) != "" && criteria.Category != "all" {
		category := strings.ToLower(criteria.Category)
		preds = append(preds, func(nft NFT) bool {
			return CategoryFromTraits(nft.Traits) == category
		})
	}

	// buy-now is accepted but has no filtering behavior yet.
	if criteria.Status == StatusNew {
		preds = append(preds, func(nft NFT) bool {
			return IsNewAt(nft.CreatedAt, now)
		})
	}

	if rarity := criteria.Rarity; strings.TrimSpace(rarity) != "" {
		preds = append(preds, func(nft NFT) bool {
			return strings.EqualFold(RarityFromTraits(nft.Traits), rarity)
		})
	}

	return preds
}

func matchesSearch(nft NFT, query string) bool {
	if containsFold(nft.Name, query) || containsFold(nft.Description, query) {
		return true
	}

	for _, t := range nft.Traits {
		if containsFold(t.TraitType, query) || containsFold(t.Value, query) {
			return true
		}
	}

	return false
}

// containsFold expects query to be lower-cased already.
func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), query)
}

// Price bounds outside these limits are ignored. Decimal comparison rescales
// to the smaller exponent, so its cost grows with 10^|exponent|.
const (
	maxPriceExponent = 18
	maxPriceDigits   = 38
)

// parsePrice reports false for blank, non-numeric or out-of-range bounds so
// that the criterion is skipped rather than rejected.
func parsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	if exp := d.Exponent(); exp < -maxPriceExponent || exp > maxPriceExponent || d.NumDigits() > maxPriceDigits {
		return decimal.Zero, false
	}

	return d, true
}
