// Package discovery turns an NFT collection and the current view state into
// the ordered, filtered list a marketplace page renders. Every function is
// pure and total: empty input yields empty output, never an error.
package discovery

// Apply filters the collection by the view's search text and criteria, then
// orders the result by the view's sort strategy.
func Apply(collection []NFT, view ViewState) []NFT {
	return SortNFTs(FilterNFTs(collection, view.Search, view.Criteria), view.Sort)
}
