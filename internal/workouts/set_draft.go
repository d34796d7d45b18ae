package workouts

import (
	"errors"
	"fmt"
)

var ErrPendingSetIndex = errors.New("pending set index out of range")

// PendingSet is a set added in the editor but not saved yet.
type PendingSet struct {
	Reps      int     `json:"reps" validate:"gte=0"`
	Weight    float64 `json:"weight" validate:"gte=0"`
	SetNumber int     `json:"setNumber"`
}

// SetDraft holds unsaved sets for one (log, exercise type) pair.
// Pending sets are always numbered contiguously after the highest persisted set number.
type SetDraft struct {
	persistedMax int
	pending      []PendingSet
}

func NewSetDraft(persisted []WorkoutSet) *SetDraft {
	d := &SetDraft{}
	for _, s := range persisted {
		d.persistedMax = max(d.persistedMax, s.SetNumber)
	}
	return d
}

func (d *SetDraft) Add(reps int, weight float64) PendingSet {
	next := d.persistedMax + 1
	if n := len(d.pending); n > 0 {
		next = max(next, d.pending[n-1].SetNumber+1)
	}
	ps := PendingSet{
		Reps:      reps,
		Weight:    weight,
		SetNumber: next,
	}
	d.pending = append(d.pending, ps)
	return ps
}

// Remove drops the i-th pending set, as the editor does for its in-progress list,
// and renumbers the remaining pending sets.
func (d *SetDraft) Remove(i int) error {
	if i < 0 || i >= len(d.pending) {
		return fmt.Errorf("remove %d: %w", i, ErrPendingSetIndex)
	}
	d.pending = append(d.pending[:i], d.pending[i+1:]...)
	d.renumber()
	return nil
}

// Update edits the i-th pending set in place, keeping its number.
func (d *SetDraft) Update(i int, reps int, weight float64) error {
	if i < 0 || i >= len(d.pending) {
		return fmt.Errorf("update %d: %w", i, ErrPendingSetIndex)
	}
	d.pending[i].Reps = reps
	d.pending[i].Weight = weight
	return nil
}

// Pending returns a copy of the pending sets in order.
func (d *SetDraft) Pending() []PendingSet {
	out := make([]PendingSet, len(d.pending))
	copy(out, d.pending)
	return out
}

func (d *SetDraft) Len() int {
	return len(d.pending)
}

func (d *SetDraft) renumber() {
	for i := range d.pending {
		d.pending[i].SetNumber = d.persistedMax + i + 1
	}
}
