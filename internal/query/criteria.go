// Package query derives filtered, sorted views and aggregate statistics from
// a donation collection. Everything here is a pure function over its inputs:
// the store is never mutated and results are fresh slices.
package query

import "github.com/pawshelter/donorlog/internal/model"

// TypeAll selects every donation type.
const TypeAll model.DonationType = "all"

// SortField names a field that can be sorted on.
type SortField string

// Sortable fields.
const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
	SortByDonor  SortField = "donorName"
	SortByType   SortField = "donationType"
)

// SortOrder is a sort direction.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Criteria captures the current filter, search, and sort configuration.
// Empty strings mean "unset" for the range bounds, matching the form inputs
// they come from; the amount bounds stay text and are parsed at filter time.
// Any combination of fields is legal, including contradictory ranges, which
// simply yield an empty result.
type Criteria struct {
	TypeFilter model.DonationType
	SearchTerm string
	DateFrom   string
	DateTo     string
	AmountMin  string
	AmountMax  string
	SortBy     SortField
	SortOrder  SortOrder
}

// DefaultCriteria is the neutral view: every type, no constraints, newest
// first.
func DefaultCriteria() Criteria {
	return Criteria{
		TypeFilter: TypeAll,
		SortBy:     SortByDate,
		SortOrder:  SortDesc,
	}
}

// Patch is a partial update to a Criteria. Nil fields leave the prior value
// untouched; pointing at a zero value explicitly clears the field.
type Patch struct {
	TypeFilter *model.DonationType
	SearchTerm *string
	DateFrom   *string
	DateTo     *string
	AmountMin  *string
	AmountMax  *string
	SortBy     *SortField
	SortOrder  *SortOrder
}

// Merge returns a new Criteria with the patch applied. The receiver is not
// modified, keeping the what-changed boundary explicit.
func (c Criteria) Merge(p Patch) Criteria {
	if p.TypeFilter != nil {
		c.TypeFilter = *p.TypeFilter
	}
	if p.SearchTerm != nil {
		c.SearchTerm = *p.SearchTerm
	}
	if p.DateFrom != nil {
		c.DateFrom = *p.DateFrom
	}
	if p.DateTo != nil {
		c.DateTo = *p.DateTo
	}
	if p.AmountMin != nil {
		c.AmountMin = *p.AmountMin
	}
	if p.AmountMax != nil {
		c.AmountMax = *p.AmountMax
	}
	if p.SortBy != nil {
		c.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		c.SortOrder = *p.SortOrder
	}
	return c
}

// HasAdvancedFilters reports whether any date or amount bound is set.
func (c Criteria) HasAdvancedFilters() bool {
	return c.DateFrom != "" || c.DateTo != "" || c.AmountMin != "" || c.AmountMax != ""
}

// ClearAdvanced returns the criteria with all date and amount bounds unset.
// Type filter, search, and sort stay as they were.
func (c Criteria) ClearAdvanced() Criteria {
	c.DateFrom = ""
	c.DateTo = ""
	c.AmountMin = ""
	c.AmountMax = ""
	return c
}
