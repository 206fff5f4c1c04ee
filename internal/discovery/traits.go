package discovery

import (
	"strings"
	"time"
)

const (
	DefaultRarity = "Common"

	newWindow = 7 * 24 * time.Hour
)

// CategoryFromTraits returns the lower-cased value of the first trait typed
// "category" or "type", or "" when there is none.
func CategoryFromTraits(traits []Trait) string {
	for _, t := range traits {
		switch strings.ToLower(t.TraitType) {
		case "category", "type":
			return strings.ToLower(t.Value)
		}
	}
	return ""
}

// RarityFromTraits prefers an explicit rarity annotation on any trait, then a
// trait typed "rarity" or "tier", then DefaultRarity.
func RarityFromTraits(traits []Trait) string {
	for _, t := range traits {
		if v, ok := t.Rarity.Value(); ok {
			return v
		}
	}

	for _, t := range traits {
		switch strings.ToLower(t.TraitType) {
		case "rarity", "tier":
			return t.Value
		}
	}

	return DefaultRarity
}

// IsNewNFT reports whether createdAt (seconds) falls within the last seven
// days of wall-clock time. The result drifts with time; do not cache it.
func IsNewNFT(createdAt int64) bool {
	return IsNewAt(createdAt, time.Now())
}

func IsNewAt(createdAt int64, now time.Time) bool {
	return createdAt*1000 > now.Add(-newWindow).UnixMilli()
}
