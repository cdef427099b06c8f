// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package predictor implements the matching
// of epidemiological estimates
// with the samples of sequencing studies.
//
// An estimate is applicable to a sample
// if its location encloses the location of the sample,
// and its date range contains the collection date
// of the sample.
package predictor

import (
	"strings"

	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/mgs"
)

// Estimate is an epidemiological estimate
// given as a rate per 100 000 people.
// It is implemented by estimate.Prevalence
// and estimate.IncidenceRate.
type Estimate interface {
	estimate.Value
	Rate() float64
}

// Lookup returns the candidate estimates
// applicable to a sample,
// in the order of the candidates.
//
// Empty location fields of an estimate
// match any value,
// and non-empty fields are compared without case.
// All the applicable estimates are returned,
// for example a country and a state estimate
// for a sample taken in that state.
// Resolving several estimates
// is left to the caller
// (see MostSpecific).
//
// A sample without a valid date,
// and an estimate without a valid date
// or without a location,
// never match.
// If no estimate matches the sample
// it returns an empty slice.
func Lookup[E Estimate](attrs mgs.SampleAttributes, candidates []E) []E {
	sd, ok := attrs.Dates()
	if !ok {
		return nil
	}

	var est []E
	for _, c := range candidates {
		d, ok := estimate.Dates(c)
		if !ok || !contains(d, sd) {
			continue
		}
		if _, ok := level(c, attrs); !ok {
			continue
		}
		est = append(est, c)
	}
	return est
}

// MostSpecific returns the estimates
// with the most specific location
// that encloses the location of a sample.
// For example,
// if est has a country and a state estimate
// for a sample taken in that state,
// only the state estimate is returned.
// Estimates whose location does not enclose
// the sample are ignored.
func MostSpecific[E Estimate](attrs mgs.SampleAttributes, est []E) []E {
	best := 0
	levels := make([]int, len(est))
	for i, e := range est {
		lv, ok := level(e, attrs)
		if !ok {
			lv = -1
		}
		levels[i] = lv
		best = max(best, lv)
	}

	var ms []E
	for i, e := range est {
		if levels[i] > 0 && levels[i] == best {
			ms = append(ms, e)
		}
	}
	return ms
}

// contains returns true if the date range r
// contains the date range s.
func contains(r, s estimate.DateRange) bool {
	return !s.Start.Before(r.Start) && !s.End.After(r.End)
}

// level returns the level of the most specific location
// of an estimate that encloses the location of a sample:
// 1 for a country,
// 2 for a state,
// and 3 for a county.
// An estimate without location
// does not enclose any sample.
func level(v estimate.Value, attrs mgs.SampleAttributes) (int, bool) {
	best := 0
	for _, l := range estimate.Locations(v) {
		lv, ok := encloses(l, attrs)
		if !ok {
			continue
		}
		best = max(best, lv)
	}
	return best, best > 0
}

func encloses(l estimate.Location, attrs mgs.SampleAttributes) (int, bool) {
	fields := [][2]string{
		{l.Country, attrs.Country},
		{l.State, attrs.State},
		{l.County, attrs.County},
	}
	var lv int
	for i, f := range fields {
		e := strings.TrimSpace(f[0])
		if e == "" {
			continue
		}
		if !strings.EqualFold(e, strings.TrimSpace(f[1])) {
			return 0, false
		}
		lv = i + 1
	}
	return lv, true
}
