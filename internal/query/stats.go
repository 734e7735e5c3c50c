package query

import (
	"time"

	"github.com/pawshelter/donorlog/internal/model"
)

// Stats are aggregate statistics over the full, unfiltered collection.
type Stats struct {
	TotalMoneyDonated float64
	TotalDonations    int
	MonthlyDonations  int
}

// TypeSummary aggregates one donation type over the unfiltered collection.
// Total is currency for money and an item count for everything else.
type TypeSummary struct {
	Count int
	Total float64
}

// ComputeStats aggregates the whole collection. The current moment is a
// parameter because MonthlyDonations counts records in now's calendar month;
// callers pass time.Now() and tests pass a fixed date.
//
// Donations with unparseable amounts count toward TotalDonations and
// MonthlyDonations but contribute zero to TotalMoneyDonated; unparseable
// dates are simply not "this month".
func ComputeStats(donations []model.Donation, now time.Time) Stats {
	stats := Stats{TotalDonations: len(donations)}

	for _, d := range donations {
		if d.Type == model.TypeMoney {
			if v, ok := d.AmountValue(); ok {
				stats.TotalMoneyDonated += v
			}
		}

		if date, err := model.ParseDate(d.Date); err == nil {
			if date.Year() == now.Year() && date.Month() == now.Month() {
				stats.MonthlyDonations++
			}
		}
	}

	return stats
}

// SummarizeType aggregates the records of a single type. Unparseable amounts
// count toward Count but add zero to Total.
func SummarizeType(donations []model.Donation, t model.DonationType) TypeSummary {
	var summary TypeSummary
	for _, d := range donations {
		if d.Type != t {
			continue
		}
		summary.Count++
		if v, ok := d.AmountValue(); ok {
			summary.Total += v
		}
	}
	return summary
}
