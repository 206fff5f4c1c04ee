package discovery

import (
	"strings"

	"github.com/shopspring/decimal"
)

type (
	// NFT is a single tokenized artwork as known to the marketplace.
	// CreatedAt is in seconds since epoch.
	NFT struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
		ImageURL    string          `json:"imageUrl"`
		Owner       string          `json:"owner"`
		CreatedAt   int64           `json:"createdAt"`
		Traits      []Trait         `json:"traits"`
	}

	Trait struct {
		TraitType string `json:"traitType"`
		Value     string `json:"value"`
		Rarity    Rarity `json:"rarity"`
	}
)

type RarityKind int

const (
	RarityAbsent RarityKind = iota
	RaritySingle
	RarityMultiple
)

// Rarity is the optional rarity annotation of a trait: absent, a single tier
// name, or an ordered list of tiers where the first entry is authoritative.
type Rarity struct {
	Kind   RarityKind `json:"-"`
	Single string     `json:"-"`
	Values []string   `json:"-"`
}

func NoRarity() Rarity {
	return Rarity{Kind: RarityAbsent}
}

func SingleRarity(value string) Rarity {
	return Rarity{Kind: RaritySingle, Single: value}
}

func MultipleRarity(values ...string) Rarity {
	return Rarity{Kind: RarityMultiple, Values: values}
}

// Value returns the authoritative tier and whether the annotation carries one.
func (r Rarity) Value() (string, bool) {
	switch r.Kind {
	case RaritySingle:
		return r.Single, r.Single != ""
	case RarityMultiple:
		if len(r.Values) > 0 {
			return r.Values[0], true
		}
	}
	return "", false
}

// MarshalText renders the authoritative tier, empty when absent.
func (r Rarity) MarshalText() ([]byte, error) {
	v, _ := r.Value()
	return []byte(v), nil
}

type Status string

const (
	StatusUnset  Status = ""
	StatusBuyNow Status = "buy-now"
	StatusNew    Status = "new"
)

// ParseStatus maps free text onto a Status. Unknown values are unset.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusBuyNow:
		return StatusBuyNow
	case StatusNew:
		return StatusNew
	default:
		return StatusUnset
	}
}

type SortStrategy string

const (
	SortTrending  SortStrategy = "trending"
	SortNewest    SortStrategy = "newest"
	SortPriceHigh SortStrategy = "price-high"
	SortPriceLow  SortStrategy = "price-low"
)

// ParseSortStrategy maps free text onto a SortStrategy, defaulting to trending.
func ParseSortStrategy(s string) SortStrategy {
	switch SortStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case SortNewest:
		return SortNewest
	case SortPriceHigh:
		return SortPriceHigh
	case SortPriceLow:
		return SortPriceLow
	default:
		return SortTrending
	}
}

// Criteria is the current filter state. Blank fields impose no constraint.
// MinPrice and MaxPrice are decimal strings; malformed values are ignored.
type Criteria struct {
	MinPrice string `json:"minPrice"`
	MaxPrice string `json:"maxPrice"`
	Category string `json:"category"`
	Status   Status `json:"status"`
	Rarity   string `json:"rarity"`
}

// ClearFilters returns the all-blank default criteria.
func ClearFilters() Criteria {
	return Criteria{}
}

type ViewState struct {
	Search   string       `json:"search"`
	Criteria Criteria     `json:"criteria"`
	Sort     SortStrategy `json:"sort"`
}
