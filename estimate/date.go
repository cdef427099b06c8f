// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package estimate

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is an inclusive range of days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

const (
	yearLayout  = "2006"
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// ParseDate returns the range of days
// covered by a date given as a year ("2020"),
// a year and month ("2020-03"),
// or a full date ("2020-03-15").
// It returns false if the date is not valid.
func ParseDate(s string) (DateRange, bool) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case len(yearLayout):
		t, err := time.Parse(yearLayout, s)
		if err != nil {
			return DateRange{}, false
		}
		return DateRange{Start: t, End: t.AddDate(1, 0, -1)}, true
	case len(monthLayout):
		t, err := time.Parse(monthLayout, s)
		if err != nil {
			return DateRange{}, false
		}
		return DateRange{Start: t, End: t.AddDate(0, 1, -1)}, true
	case len(dayLayout):
		t, err := time.Parse(dayLayout, s)
		if err != nil {
			return DateRange{}, false
		}
		return DateRange{Start: t, End: t}, true
	}
	return DateRange{}, false
}

// Contains returns true if the day of t
// is in the date range.
func (r DateRange) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(r.Start) && !d.After(r.End)
}

// String returns the date range
// in its shortest form:
// a year ("2020") or range of years ("2019-2020")
// if the range covers full years,
// a month ("2020-03")
// if it covers full months,
// or a day ("2020-03-15").
func (r DateRange) String() string {
	sy, sm, sd := r.Start.Date()
	ey, em, ed := r.End.Date()
	last := r.End.AddDate(0, 0, 1).Day() == 1

	if sm == time.January && sd == 1 && em == time.December && ed == 31 {
		if sy == ey {
			return r.Start.Format(yearLayout)
		}
		return fmt.Sprintf("%s-%s", r.Start.Format(yearLayout), r.End.Format(yearLayout))
	}
	if sd == 1 && last {
		if sy == ey && sm == em {
			return r.Start.Format(monthLayout)
		}
		return fmt.Sprintf("%s to %s", r.Start.Format(monthLayout), r.End.Format(monthLayout))
	}
	if r.Start.Equal(r.End) {
		return r.Start.Format(dayLayout)
	}
	return fmt.Sprintf("%s to %s", r.Start.Format(dayLayout), r.End.Format(dayLayout))
}
