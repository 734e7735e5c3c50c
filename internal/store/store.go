// Package store holds the authoritative in-memory donation collection.
package store

import (
	"fmt"
	"log/slog"

	"github.com/pawshelter/donorlog/internal/common"
	"github.com/pawshelter/donorlog/internal/model"
)

// DonationStore is the in-memory record store. Records are kept newest-first;
// ids are assigned from a monotonic counter and never reused, including after
// deletion.
//
// The store is not safe for concurrent use. The application mutates it from a
// single event loop, which is the only access pattern it supports.
type DonationStore struct {
	donations []model.Donation
	nextID    int64
}

// New creates an empty donation store.
func New() *DonationStore {
	return &DonationStore{nextID: 1}
}

// Insert assigns a fresh id to the candidate record and prepends it, so the
// newest record is always first. The stored record is returned.
func (s *DonationStore) Insert(d model.Donation) model.Donation {
	d.ID = s.nextID
	s.nextID++

	s.donations = append([]model.Donation{d}, s.donations...)

	slog.Debug("donation inserted", "id", d.ID, "type", d.Type)
	return d
}

// Update replaces every field except the id of the record matching id.
// Returns common.ErrNotFound if no record has that id; no other record is
// touched either way.
func (s *DonationStore) Update(id int64, d model.Donation) error {
	for i := range s.donations {
		if s.donations[i].ID == id {
			d.ID = id
			s.donations[i] = d
			slog.Debug("donation updated", "id", id)
			return nil
		}
	}
	return fmt.Errorf("update donation %d: %w", id, common.ErrNotFound)
}

// Delete removes the record matching id. Returns common.ErrNotFound if no
// record has that id.
func (s *DonationStore) Delete(id int64) error {
	for i := range s.donations {
		if s.donations[i].ID == id {
			s.donations = append(s.donations[:i], s.donations[i+1:]...)
			slog.Debug("donation deleted", "id", id)
			return nil
		}
	}
	return fmt.Errorf("delete donation %d: %w", id, common.ErrNotFound)
}

// Get returns the record matching id.
func (s *DonationStore) Get(id int64) (model.Donation, error) {
	for _, d := range s.donations {
		if d.ID == id {
			return d, nil
		}
	}
	return model.Donation{}, fmt.Errorf("get donation %d: %w", id, common.ErrNotFound)
}

// List returns a snapshot copy of the collection, newest-first. Mutating the
// returned slice does not affect the store.
func (s *DonationStore) List() []model.Donation {
	out := make([]model.Donation, len(s.donations))
	copy(out, s.donations)
	return out
}

// Len returns the number of records in the store.
func (s *DonationStore) Len() int {
	return len(s.donations)
}

// Seed inserts the given records so the store ends up in the same order as
// the slice. Because Insert prepends, records are inserted back to front.
func (s *DonationStore) Seed(donations []model.Donation) {
	for i := len(donations) - 1; i >= 0; i-- {
		s.Insert(donations[i])
	}
}
