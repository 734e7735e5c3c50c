package query

import (
	"math"
	"sort"
	"strings"

	"github.com/pawshelter/donorlog/internal/model"
)

// Derive returns the donations that pass every criteria predicate, ordered by
// the criteria's sort configuration. The input slice is never modified.
//
// Filters are conjunctive and applied in a fixed order: type, text search,
// date bounds, amount bounds. Date comparisons are lexicographic, which for
// YYYY-MM-DD strings is chronological order. A donation whose amount does not
// parse fails any amount bound that is set.
func Derive(donations []model.Donation, c Criteria) []model.Donation {
	result := make([]model.Donation, 0, len(donations))
	for _, d := range donations {
		if matches(d, c) {
			result = append(result, d)
		}
	}

	sortDonations(result, c.SortBy, c.SortOrder)
	return result
}

func matches(d model.Donation, c Criteria) bool {
	if c.TypeFilter != TypeAll && c.TypeFilter != "" && d.Type != c.TypeFilter {
		return false
	}

	if term := strings.ToLower(c.SearchTerm); term != "" {
		name := strings.ToLower(d.DonorName)
		typ := strings.ToLower(string(d.Type))
		if !strings.Contains(name, term) && !strings.Contains(typ, term) {
			return false
		}
	}

	if c.DateFrom != "" && d.Date < c.DateFrom {
		return false
	}
	if c.DateTo != "" && d.Date > c.DateTo {
		return false
	}

	if c.AmountMin != "" {
		lower, boundOK := model.ParseAmount(c.AmountMin)
		amount, ok := d.AmountValue()
		if boundOK && (!ok || amount < lower) {
			return false
		}
	}
	if c.AmountMax != "" {
		upper, boundOK := model.ParseAmount(c.AmountMax)
		amount, ok := d.AmountValue()
		if boundOK && (!ok || amount > upper) {
			return false
		}
	}

	return true
}

// sortKeyAmount is the numeric sort key for a donation. Unparseable amounts
// sort below every valid amount and keep their relative order.
func sortKeyAmount(d model.Donation) float64 {
	v, ok := d.AmountValue()
	if !ok {
		return math.Inf(-1)
	}
	return v
}

func sortDonations(donations []model.Donation, field SortField, order SortOrder) {
	if field == "" {
		field = SortByDate
	}
	if order == "" {
		order = SortDesc
	}

	var less func(a, b model.Donation) bool
	switch field {
	case SortByAmount:
		less = func(a, b model.Donation) bool { return sortKeyAmount(a) < sortKeyAmount(b) }
	case SortByDonor:
		less = func(a, b model.Donation) bool {
			return strings.ToLower(a.DonorName) < strings.ToLower(b.DonorName)
		}
	case SortByType:
		less = func(a, b model.Donation) bool { return a.Type < b.Type }
	case SortByDate:
		fallthrough
	default:
		less = func(a, b model.Donation) bool { return a.Date < b.Date }
	}

	// Stable, so ties preserve the incoming (store) order.
	sort.SliceStable(donations, func(i, j int) bool {
		if order == SortDesc {
			return less(donations[j], donations[i])
		}
		return less(donations[i], donations[j])
	})
}
