package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawshelter/donorlog/internal/model"
)

// sampleSet mirrors the starter records: Sarah/money/500, Mike/food/20,
// Emily/clothing/5, newest-first.
func sampleSet() []model.Donation {
	return []model.Donation{
		{ID: 1, DonorName: "Sarah", Type: model.TypeMoney, Amount: "500", Date: "2024-08-15"},
		{ID: 2, DonorName: "Mike", Type: model.TypeFood, Amount: "20", Date: "2024-08-14"},
		{ID: 3, DonorName: "Emily", Type: model.TypeClothing, Amount: "5", Date: "2024-08-13"},
	}
}

func donorNames(donations []model.Donation) []string {
	names := make([]string, len(donations))
	for i, d := range donations {
		names[i] = d.DonorName
	}
	return names
}

func TestDerive_NeutralCriteriaReturnsEverything(t *testing.T) {
	got := Derive(sampleSet(), DefaultCriteria())
	assert.Equal(t, []string{"Sarah", "Mike", "Emily"}, donorNames(got))
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	input := sampleSet()
	c := DefaultCriteria()
	c.SortBy = SortByAmount
	c.SortOrder = SortAsc

	Derive(input, c)
	assert.Equal(t, []string{"Sarah", "Mike", "Emily"}, donorNames(input))
}

func TestDerive_TypeFilter(t *testing.T) {
	c := DefaultCriteria()
	c.TypeFilter = model.TypeFood

	got := Derive(sampleSet(), c)
	require.Len(t, got, 1)
	assert.Equal(t, "Mike", got[0].DonorName)

	for _, d := range got {
		assert.Equal(t, model.TypeFood, d.Type)
	}
}

func TestDerive_SearchMatchesDonorName(t *testing.T) {
	c := DefaultCriteria()
	c.SearchTerm = "mi"

	got := Derive(sampleSet(), c)
	assert.Equal(t, []string{"Mike"}, donorNames(got))
}

func TestDerive_SearchMatchesTypeText(t *testing.T) {
	c := DefaultCriteria()
	c.SearchTerm = "CLOTH"

	got := Derive(sampleSet(), c)
	assert.Equal(t, []string{"Emily"}, donorNames(got))
}

func TestDerive_SearchIsCaseInsensitive(t *testing.T) {
	c := DefaultCriteria()
	c.SearchTerm = "SARAH"

	got := Derive(sampleSet(), c)
	assert.Equal(t, []string{"Sarah"}, donorNames(got))
}

func TestDerive_DateBoundsAreInclusive(t *testing.T) {
	c := DefaultCriteria()
	c.DateFrom = "2024-08-14"
	c.DateTo = "2024-08-15"

	got := Derive(sampleSet(), c)
	assert.Equal(t, []string{"Sarah", "Mike"}, donorNames(got))

	c.DateFrom = "2024-08-14"
	c.DateTo = "2024-08-14"
	got = Derive(sampleSet(), c)
	assert.Equal(t, []string{"Mike"}, donorNames(got))
}

func TestDerive_AmountBoundsAreInclusive(t *testing.T) {
	donations := []model.Donation{
		{ID: 1, DonorName: "A", Type: model.TypeMoney, Amount: "10", Date: "2024-08-01"},
		{ID: 2, DonorName: "B", Type: model.TypeMoney, Amount: "50", Date: "2024-08-02"},
		{ID: 3, DonorName: "C", Type: model.TypeMoney, Amount: "100", Date: "2024-08-03"},
	}

	c := DefaultCriteria()
	c.AmountMin = "50"
	c.AmountMax = "50"

	got := Derive(donations, c)
	assert.Equal(t, []string{"B"}, donorNames(got))
}

func TestDerive_ContradictoryRangeYieldsEmptyNotError(t *testing.T) {
	c := DefaultCriteria()
	c.AmountMin = "1000"
	c.AmountMax = "1"

	got := Derive(sampleSet(), c)
	assert.Empty(t, got)
}

func TestDerive_FiltersAreConjunctive(t *testing.T) {
	c := DefaultCriteria()
	c.TypeFilter = model.TypeMoney
	c.SearchTerm = "mike" // money filter and search for Mike exclude everyone

	got := Derive(sampleSet(), c)
	assert.Empty(t, got)
}

func TestDerive_SortByAmountAscThenDescReverses(t *testing.T) {
	c := DefaultCriteria()
	c.SortBy = SortByAmount
	c.SortOrder = SortAsc

	asc := Derive(sampleSet(), c)
	assert.Equal(t, []string{"Emily", "Mike", "Sarah"}, donorNames(asc))

	c.SortOrder = SortDesc
	desc := Derive(sampleSet(), c)
	assert.Equal(t, []string{"Sarah", "Mike", "Emily"}, donorNames(desc))
}

func TestDerive_SortTiesKeepStoreOrder(t *testing.T) {
	donations := []model.Donation{
		{ID: 1, DonorName: "First", Type: model.TypeFood, Amount: "20", Date: "2024-08-10"},
		{ID: 2, DonorName: "Second", Type: model.TypeToys, Amount: "20", Date: "2024-08-09"},
		{ID: 3, DonorName: "Third", Type: model.TypeOther, Amount: "20", Date: "2024-08-08"},
	}

	c := DefaultCriteria()
	c.SortBy = SortByAmount
	c.SortOrder = SortAsc

	got := Derive(donations, c)
	assert.Equal(t, []string{"First", "Second", "Third"}, donorNames(got))

	c.SortOrder = SortDesc
	got = Derive(donations, c)
	assert.Equal(t, []string{"First", "Second", "Third"}, donorNames(got))
}

func TestDerive_SortByDonorIsCaseInsensitive(t *testing.T) {
	donations := []model.Donation{
		{ID: 1, DonorName: "beth", Type: model.TypeFood, Amount: "1", Date: "2024-08-10"},
		{ID: 2, DonorName: "Adam", Type: model.TypeFood, Amount: "1", Date: "2024-08-09"},
		{ID: 3, DonorName: "Carl", Type: model.TypeFood, Amount: "1", Date: "2024-08-08"},
	}

	c := DefaultCriteria()
	c.SortBy = SortByDonor
	c.SortOrder = SortAsc

	got := Derive(donations, c)
	assert.Equal(t, []string{"Adam", "beth", "Carl"}, donorNames(got))
}

func TestDerive_SortByType(t *testing.T) {
	c := DefaultCriteria()
	c.SortBy = SortByType
	c.SortOrder = SortAsc

	got := Derive(sampleSet(), c)
	// Raw enumeration text: clothing < food < money.
	assert.Equal(t, []string{"Emily", "Mike", "Sarah"}, donorNames(got))
}

func TestDerive_DefaultSortIsDateDescending(t *testing.T) {
	shuffled := []model.Donation{
		{ID: 2, DonorName: "Mike", Type: model.TypeFood, Amount: "20", Date: "2024-08-14"},
		{ID: 3, DonorName: "Emily", Type: model.TypeClothing, Amount: "5", Date: "2024-08-13"},
		{ID: 1, DonorName: "Sarah", Type: model.TypeMoney, Amount: "500", Date: "2024-08-15"},
	}

	got := Derive(shuffled, Criteria{TypeFilter: TypeAll})
	assert.Equal(t, []string{"Sarah", "Mike", "Emily"}, donorNames(got))
}

func TestDerive_UnparseableAmountFailsRangePredicates(t *testing.T) {
	donations := []model.Donation{
		{ID: 1, DonorName: "Good", Type: model.TypeMoney, Amount: "100", Date: "2024-08-10"},
		{ID: 2, DonorName: "Bad", Type: model.TypeMoney, Amount: "lots", Date: "2024-08-09"},
	}

	c := DefaultCriteria()
	c.AmountMin = "0"

	got := Derive(donations, c)
	assert.Equal(t, []string{"Good"}, donorNames(got))
}

func TestDerive_UnparseableAmountSortsBelowValid(t *testing.T) {
	donations := []model.Donation{
		{ID: 1, DonorName: "BadOne", Type: model.TypeMoney, Amount: "??", Date: "2024-08-10"},
		{ID: 2, DonorName: "Small", Type: model.TypeMoney, Amount: "1", Date: "2024-08-09"},
		{ID: 3, DonorName: "BadTwo", Type: model.TypeMoney, Amount: "", Date: "2024-08-08"},
		{ID: 4, DonorName: "Big", Type: model.TypeMoney, Amount: "100", Date: "2024-08-07"},
	}

	c := DefaultCriteria()
	c.SortBy = SortByAmount
	c.SortOrder = SortAsc

	got := Derive(donations, c)
	// Unparseable amounts sort as the lowest key, stable among themselves.
	assert.Equal(t, []string{"BadOne", "BadTwo", "Small", "Big"}, donorNames(got))

	c.SortOrder = SortDesc
	got = Derive(donations, c)
	assert.Equal(t, []string{"Big", "Small", "BadOne", "BadTwo"}, donorNames(got))
}

func TestDerive_UnparseableBoundIsIgnored(t *testing.T) {
	c := DefaultCriteria()
	c.AmountMin = "abc"

	got := Derive(sampleSet(), c)
	assert.Len(t, got, 3)
}
