package discovery

import "sort"

// SortNFTs returns a stably sorted copy of collection. Trending and unknown
// strategies keep the input order.
func SortNFTs(collection []NFT, strategy SortStrategy) []NFT {
	result := make([]NFT, len(collection))
	copy(result, collection)

	var less func(a, b NFT) bool
	switch strategy {
	case SortNewest:
		less = func(a, b NFT) bool { return a.CreatedAt > b.CreatedAt }
	case SortPriceHigh:
		less = func(a, b NFT) bool { return a.Price.GreaterThan(b.Price) }
	case SortPriceLow:
		less = func(a, b NFT) bool { return a.Price.LessThan(b.Price) }
	default:
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})

	return result
}
