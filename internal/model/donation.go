// Package model defines the core domain types for the donation log.
package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DonationType identifies what kind of donation a record represents.
type DonationType string

const (
	// TypeMoney represents monetary donations.
	TypeMoney DonationType = "money"
	// TypeFood represents pet food donations.
	TypeFood DonationType = "food"
	// TypeClothing represents clothing and bedding donations.
	TypeClothing DonationType = "clothing"
	// TypeToys represents pet toy donations.
	TypeToys DonationType = "toys"
	// TypeMedical represents medical supply donations.
	TypeMedical DonationType = "medical"
	// TypeOther represents anything that doesn't fit the other types.
	TypeOther DonationType = "other"
)

// Donation represents a single donation record.
type Donation struct {
	DonorName string
	Type      DonationType
	Amount    string // decimal text; currency for money, item count otherwise
	Date      string // calendar date in YYYY-MM-DD form
	ID        int64
}

// DonationTypes returns all valid donation types in display order.
func DonationTypes() []DonationType {
	return []DonationType{TypeMoney, TypeFood, TypeClothing, TypeToys, TypeMedical, TypeOther}
}

// Valid reports whether t is a member of the closed type enumeration.
func (t DonationType) Valid() bool {
	switch t {
	case TypeMoney, TypeFood, TypeClothing, TypeToys, TypeMedical, TypeOther:
		return true
	default:
		return false
	}
}

// DateLayout is the wire format for donation dates.
const DateLayout = "2006-01-02"

// ParseDate parses a donation date string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseAmount parses a donation amount string into a finite number.
// The boolean is false for empty, malformed, or non-finite input; callers
// decide how a bad amount degrades (excluded from range predicates, sorted
// below valid amounts, zero in sums).
func ParseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// AmountValue returns the donation's parsed amount.
func (d Donation) AmountValue() (float64, bool) {
	return ParseAmount(d.Amount)
}
