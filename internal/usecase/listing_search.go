package usecase

import (
	"sort"
	"strings"

	"webcars/internal/domain/entity"
)

// FilterByText keeps listings whose name, city, or year contains the
// term, case-insensitively, or whose name has a word starting with it.
// A blank term passes everything through in the original order. The
// input slice is never mutated.
func FilterByText(listings []*entity.Listing, term string) []*entity.Listing {
	out := make([]*entity.Listing, 0, len(listings))

	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return append(out, listings...)
	}

	for _, l := range listings {
		if matchesTerm(l, t) {
			out = append(out, l)
		}
	}
	return out
}

func matchesTerm(l *entity.Listing, term string) bool {
	name := strings.ToLower(l.Name)

	if strings.Contains(name, term) ||
		strings.Contains(strings.ToLower(l.City), term) ||
		strings.Contains(strings.ToLower(l.Year), term) {
		return true
	}

	for _, word := range strings.Fields(name) {
		if strings.HasPrefix(word, term) {
			return true
		}
	}
	return false
}

// Sort keys accepted by SortListings.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceHigh = "price-high"
	SortPriceLow  = "price-low"
	SortName      = "name"
)

// SortListings returns a freshly allocated, stably sorted copy.
// newest/oldest order by the creation timestamp; an unknown key leaves
// the order untouched.
func SortListings(listings []*entity.Listing, key string) []*entity.Listing {
	out := make([]*entity.Listing, len(listings))
	copy(out, listings)

	switch key {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Created.After(out[j].Created)
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Created.Before(out[j].Created)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	}

	return out
}
