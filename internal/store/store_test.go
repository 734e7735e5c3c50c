package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawshelter/donorlog/internal/common"
	"github.com/pawshelter/donorlog/internal/model"
	"github.com/pawshelter/donorlog/internal/query"
)

func TestDonationStore_InsertAssignsUniqueIDs(t *testing.T) {
	s := New()

	first := s.Insert(model.Donation{DonorName: "Sarah Johnson", Type: model.TypeMoney, Amount: "500", Date: "2024-08-15"})
	second := s.Insert(model.Donation{DonorName: "Mike Chen", Type: model.TypeFood, Amount: "20", Date: "2024-08-14"})

	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	// Newest first.
	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestDonationStore_IDsNeverReused(t *testing.T) {
	s := New()

	a := s.Insert(model.Donation{DonorName: "Sarah Johnson", Type: model.TypeMoney, Amount: "500", Date: "2024-08-15"})
	require.NoError(t, s.Delete(a.ID))

	b := s.Insert(model.Donation{DonorName: "Mike Chen", Type: model.TypeFood, Amount: "20", Date: "2024-08-14"})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDonationStore_UpdateReplacesAllFieldsButID(t *testing.T) {
	s := New()
	d := s.Insert(model.Donation{DonorName: "Sarah Johnson", Type: model.TypeMoney, Amount: "500", Date: "2024-08-15"})

	err := s.Update(d.ID, model.Donation{
		ID:        9999, // ignored: the id in the record body never wins
		DonorName: "Sarah J.",
		Type:      model.TypeMedical,
		Amount:    "75",
		Date:      "2024-08-16",
	})
	require.NoError(t, err)

	got, err := s.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, "Sarah J.", got.DonorName)
	assert.Equal(t, model.TypeMedical, got.Type)
	assert.Equal(t, "75", got.Amount)
	assert.Equal(t, "2024-08-16", got.Date)
}

func TestDonationStore_UpdateNotFound(t *testing.T) {
	s := New()
	s.Insert(model.Donation{DonorName: "Sarah Johnson", Type: model.TypeMoney, Amount: "500", Date: "2024-08-15"})

	err := s.Update(42, model.Donation{DonorName: "Nobody", Type: model.TypeOther, Amount: "1", Date: "2024-01-01"})
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestDonationStore_DeleteThenUpdateReportsNotFound(t *testing.T) {
	s := New()
	d := s.Insert(model.Donation{DonorName: "Sarah Johnson", Type: model.TypeMoney, Amount: "500", Date: "2024-08-15"})
	keep := s.Insert(model.Donation{DonorName: "Mike Chen", Type: model.TypeFood, Amount: "20", Date: "2024-08-14"})

	require.NoError(t, s.Delete(d.ID))

	err := s.Update(d.ID, model.Donation{DonorName: "Ghost", Type: model.TypeOther, Amount: "1", Date: "2024-01-01"})
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 1, s.Len())

	// The failed update must not have corrupted the surviving record.
	got, err := s.Get(keep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mike Chen", got.DonorName)
}

func TestDonationStore_DeleteNotFound(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Delete(7), common.ErrNotFound)
}

func TestDonationStore_ListIsASnapshot(t *testing.T) {
	s := New()
	s.Insert(model.Donation{DonorName: "Sarah Johnson", Type: model.TypeMoney, Amount: "500", Date: "2024-08-15"})

	list := s.List()
	list[0].DonorName = "Mutated"

	got := s.List()
	assert.Equal(t, "Sarah Johnson", got[0].DonorName)
}

func TestDonationStore_InsertThenDeriveRoundTrip(t *testing.T) {
	s := New()
	s.Seed(model.SampleDonations())

	inserted := s.Insert(model.Donation{DonorName: "New Donor", Type: model.TypeToys, Amount: "3", Date: "2024-08-16"})

	got := query.Derive(s.List(), query.DefaultCriteria())
	require.Len(t, got, 4)

	var matches int
	for _, d := range got {
		if d.ID == inserted.ID {
			matches++
			assert.Equal(t, "New Donor", d.DonorName)
		}
	}
	assert.Equal(t, 1, matches, "inserted record must appear exactly once")
}

func TestDonationStore_SeedPreservesOrder(t *testing.T) {
	s := New()
	s.Seed(model.SampleDonations())

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Sarah Johnson", list[0].DonorName)
	assert.Equal(t, "Mike Chen", list[1].DonorName)
	assert.Equal(t, "Emily Davis", list[2].DonorName)

	seen := make(map[int64]bool)
	for _, d := range list {
		assert.False(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true
	}
}
