// Package export projects a donation list into comma-separated text. It
// performs no I/O: writing the file is the caller's concern.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pawshelter/donorlog/internal/model"
)

// Header is the fixed CSV header row.
const Header = "Date,Donor Name,Donation Type,Amount/Quantity"

// Row is one exported record. DonorName, TypeLabel, and Amount are rendered
// quote-wrapped so commas inside them survive the serialization; Date is the
// bare ISO string.
type Row struct {
	Date      string
	DonorName string
	TypeLabel string
	Amount    string
}

// FormatCurrency renders an amount as en-US currency text, e.g. "$1,234.56".
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// DisplayAmount renders a donation's amount for humans: currency text for
// money, "<n> items" for everything else. An unparseable money amount renders
// as zero, consistent with it contributing zero to totals.
func DisplayAmount(d model.Donation) string {
	if d.Type == model.TypeMoney {
		v, ok := d.AmountValue()
		if !ok {
			v = 0
		}
		return FormatCurrency(v)
	}
	return fmt.Sprintf("%s items", d.Amount)
}

// Rows projects donations into export rows, preserving input order. Callers
// pass the already filtered and sorted list.
func Rows(donations []model.Donation) []Row {
	rows := make([]Row, len(donations))
	for i, d := range donations {
		rows[i] = Row{
			Date:      d.Date,
			DonorName: d.DonorName,
			TypeLabel: model.InfoFor(d.Type).Label,
			Amount:    DisplayAmount(d),
		}
	}
	return rows
}

// Render serializes the header and rows as newline-joined CSV text.
func Render(donations []model.Donation) string {
	lines := make([]string, 0, len(donations)+1)
	lines = append(lines, Header)
	for _, r := range Rows(donations) {
		lines = append(lines, fmt.Sprintf("%s,%q,%q,%q", r.Date, r.DonorName, r.TypeLabel, r.Amount))
	}
	return strings.Join(lines, "\n")
}

// DefaultFilename returns the export artifact name for the given day,
// e.g. "donations-2024-08-15.csv".
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("donations-%s.csv", now.Format(model.DateLayout))
}
