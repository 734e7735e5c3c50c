package query

import (
	"strings"

	"github.com/pawshelter/donorlog/internal/model"
)

// DonationForm carries the raw field edits for a new or updated donation.
type DonationForm struct {
	DonorName string
	Type      model.DonationType
	Amount    string
	Date      string
}

// FieldErrors maps a field name to its validation message. An empty map means
// the form is acceptable.
type FieldErrors map[string]string

// Validate checks the candidate fields and returns a message for each that
// fails. It is a pure function: no store access, no clock.
//
// A future date is deliberately not rejected here; the form widget clamps its
// date input to today, mirroring where the original interface enforces it.
func (f DonationForm) Validate() FieldErrors {
	errs := make(FieldErrors)

	if strings.TrimSpace(f.DonorName) == "" {
		errs["donorName"] = "Donor name is required"
	}

	if !f.Type.Valid() {
		errs["donationType"] = "Please choose a donation type"
	}

	if v, ok := model.ParseAmount(f.Amount); !ok || v <= 0 {
		errs["amount"] = "Please enter a valid amount/quantity greater than 0"
	}

	if strings.TrimSpace(f.Date) == "" {
		errs["date"] = "Date is required"
	} else if _, err := model.ParseDate(f.Date); err != nil {
		errs["date"] = "Date must be a valid YYYY-MM-DD date"
	}

	return errs
}

// Donation converts the validated form into a record. The id is zero; the
// store assigns the real one on insert.
func (f DonationForm) Donation() model.Donation {
	return model.Donation{
		DonorName: strings.TrimSpace(f.DonorName),
		Type:      f.Type,
		Amount:    strings.TrimSpace(f.Amount),
		Date:      strings.TrimSpace(f.Date),
	}
}
