package views

import (
	"fmt"
	"strings"

	"mandapdash/models"
)

// CapacityFilter selects venues by guest capacity band.
type CapacityFilter string

const (
	FilterAll            CapacityFilter = "all"
	FilterHighCapacity   CapacityFilter = "high-capacity"
	FilterMediumCapacity CapacityFilter = "medium-capacity"
	FilterLowCapacity    CapacityFilter = "low-capacity"
)

const (
	highCapacityMin   = 400
	mediumCapacityMin = 200
)

// ParseCapacityFilter accepts the filter names used by the venue list. An
// empty value means all.
func ParseCapacityFilter(s string) (CapacityFilter, error) {
	switch f := CapacityFilter(strings.TrimSpace(s)); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterHighCapacity, FilterMediumCapacity, FilterLowCapacity:
		return f, nil
	default:
		return "", fmt.Errorf("unknown capacity filter %q", s)
	}
}

// BandFor returns the one band a capacity belongs to.
func BandFor(capacity int) CapacityFilter {
	switch {
	case capacity >= highCapacityMin:
		return FilterHighCapacity
	case capacity >= mediumCapacityMin:
		return FilterMediumCapacity
	default:
		return FilterLowCapacity
	}
}

// Matches reports whether capacity passes the filter.
func (f CapacityFilter) Matches(capacity int) bool {
	if f == FilterAll {
		return true
	}
	return BandFor(capacity) == f
}

// MatchesSearch reports whether term occurs, ignoring case, in the venue's
// name, description or city.
func MatchesSearch(v models.VenueView, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(strings.ToLower(v.Description), term) ||
		strings.Contains(strings.ToLower(v.Address.City), term)
}

// FilterVenues keeps the venues matching both the search term and the
// capacity filter.
func FilterVenues(venues []models.VenueView, term string, f CapacityFilter) []models.VenueView {
	out := make([]models.VenueView, 0, len(venues))
	for _, v := range venues {
		if MatchesSearch(v, term) && f.Matches(v.Capacity) {
			out = append(out, v)
		}
	}
	return out
}
