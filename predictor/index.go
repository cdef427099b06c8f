// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package predictor

import (
	"fmt"
	"slices"
	"time"

	"github.com/biogo/store/interval"

	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/mgs"
)

// An Index is a set of candidate estimates
// indexed by its date range,
// to be used for repeated lookups
// (for example all the samples of a bioproject).
type Index[E Estimate] struct {
	candidates []E
	tree       interval.IntTree
}

// NewIndex returns a new index
// for a set of candidate estimates.
// Estimates without a valid date
// are not indexed.
func NewIndex[E Estimate](candidates []E) *Index[E] {
	ix := &Index[E]{
		candidates: candidates,
	}
	for i, c := range candidates {
		d, ok := estimate.Dates(c)
		if !ok {
			continue
		}
		w := newWindow(d)
		w.id = uintptr(i)
		if err := ix.tree.Insert(w, true); err != nil {
			panic(fmt.Sprintf("predictor: indexing estimate %d: %v", i, err))
		}
	}
	ix.tree.AdjustRanges()
	return ix
}

// Len returns the number of indexed estimates.
func (ix *Index[E]) Len() int {
	return ix.tree.Len()
}

// Lookup returns the estimates of the index
// applicable to a sample,
// using the same rules as Lookup.
func (ix *Index[E]) Lookup(attrs mgs.SampleAttributes) []E {
	sd, ok := attrs.Dates()
	if !ok {
		return nil
	}

	var pos []int
	for _, o := range ix.tree.Get(newWindow(sd)) {
		i := int(o.ID())
		if _, ok := level(ix.candidates[i], attrs); !ok {
			continue
		}
		pos = append(pos, i)
	}
	slices.Sort(pos)

	var est []E
	for _, i := range pos {
		est = append(est, ix.candidates[i])
	}
	return est
}

const secondsPerDay = 24 * 60 * 60

// A window is a date range
// stored as a half-open range of days
// since the Unix epoch.
type window struct {
	id         uintptr
	start, end int
}

func newWindow(d estimate.DateRange) window {
	return window{
		start: days(d.Start),
		end:   days(d.End) + 1,
	}
}

// days returns the number of days
// since the Unix epoch,
// rounded down.
func days(t time.Time) int {
	s := t.Unix()
	d := s / secondsPerDay
	if s%secondsPerDay < 0 {
		d--
	}
	return int(d)
}

// Overlap returns whether the b interval
// completely contains w.
func (w window) Overlap(b interval.IntRange) bool {
	return b.Start <= w.start && w.end <= b.End
}
func (w window) ID() uintptr { return w.id }
func (w window) Range() interval.IntRange {
	return interval.IntRange{Start: w.start, End: w.end}
}
