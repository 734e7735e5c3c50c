package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawshelter/donorlog/internal/model"
)

func validForm() DonationForm {
	return DonationForm{
		DonorName: "Sarah Johnson",
		Type:      model.TypeMoney,
		Amount:    "500",
		Date:      "2024-08-15",
	}
}

func TestDonationForm_ValidateAccepts(t *testing.T) {
	assert.Empty(t, validForm().Validate())
}

func TestDonationForm_Validate(t *testing.T) {
	tests := []struct {
		mutate    func(*DonationForm)
		name      string
		wantField string
	}{
		{
			name:      "empty donor name",
			mutate:    func(f *DonationForm) { f.DonorName = "" },
			wantField: "donorName",
		},
		{
			name:      "whitespace donor name",
			mutate:    func(f *DonationForm) { f.DonorName = "   " },
			wantField: "donorName",
		},
		{
			name:      "missing amount",
			mutate:    func(f *DonationForm) { f.Amount = "" },
			wantField: "amount",
		},
		{
			name:      "non-numeric amount",
			mutate:    func(f *DonationForm) { f.Amount = "a lot" },
			wantField: "amount",
		},
		{
			name:      "zero amount",
			mutate:    func(f *DonationForm) { f.Amount = "0" },
			wantField: "amount",
		},
		{
			name:      "negative amount",
			mutate:    func(f *DonationForm) { f.Amount = "-5" },
			wantField: "amount",
		},
		{
			name:      "missing date",
			mutate:    func(f *DonationForm) { f.Date = "" },
			wantField: "date",
		},
		{
			name:      "impossible calendar date",
			mutate:    func(f *DonationForm) { f.Date = "2024-02-30" },
			wantField: "date",
		},
		{
			name:      "wrong date format",
			mutate:    func(f *DonationForm) { f.Date = "15/08/2024" },
			wantField: "date",
		},
		{
			name:      "unknown donation type",
			mutate:    func(f *DonationForm) { f.Type = "livestock" },
			wantField: "donationType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)

			errs := f.Validate()
			assert.Contains(t, errs, tt.wantField)
			assert.Len(t, errs, 1)
		})
	}
}

func TestDonationForm_ValidateReportsEveryFailingField(t *testing.T) {
	errs := DonationForm{}.Validate()
	assert.Contains(t, errs, "donorName")
	assert.Contains(t, errs, "donationType")
	assert.Contains(t, errs, "amount")
	assert.Contains(t, errs, "date")
}

func TestDonationForm_ValidateAllowsFutureDates(t *testing.T) {
	// The form widget clamps the date input to today; the validator itself
	// only requires a real calendar date.
	f := validForm()
	f.Date = "2099-01-01"
	assert.Empty(t, f.Validate())
}

func TestDonationForm_DonationTrimsFields(t *testing.T) {
	f := DonationForm{
		DonorName: "  Sarah Johnson ",
		Type:      model.TypeMoney,
		Amount:    " 500 ",
		Date:      " 2024-08-15 ",
	}

	d := f.Donation()
	assert.Equal(t, "Sarah Johnson", d.DonorName)
	assert.Equal(t, "500", d.Amount)
	assert.Equal(t, "2024-08-15", d.Date)
	assert.Zero(t, d.ID)
}
