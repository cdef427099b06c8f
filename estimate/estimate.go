// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package estimate implements epidemiological quantities
// (population sizes, prevalences, incidences, and scaling factors)
// that keep track of their provenance.
//
// A raw estimate is taken directly from a source,
// and it is defined by a literal value,
// for example:
//
//	us2019 := estimate.Population{
//		People: 328_239_523,
//		Tag:    "us-2019",
//		Variable: estimate.Variable{
//			Source:  "https://www.census.gov/...",
//			Country: "United States",
//			Date:    "2019",
//		},
//	}
//
// A derived estimate is produced by an operation
// over other estimates
// (for example IncidenceAbsolute.ToRate),
// and it records the estimates used as its inputs.
// Derived estimates are never modified,
// so the derivation history of any estimate
// can be inspected with Walk or Sources.
//
// Location and date summaries are taken from the inputs
// of an estimate,
// unless the estimate is a target
// (see Override),
// in which case the location and date of the estimate
// are used.
package estimate

import (
	"slices"
	"strings"
)

// Variable is the provenance
// shared by all estimates.
type Variable struct {
	// Source is the citation
	// (usually an URL)
	// of a raw estimate.
	Source string

	// Location of the estimate.
	Country string
	State   string
	County  string

	// Date of the estimate,
	// either as a single date,
	// or as a Start and End date.
	// Dates can be given as a year ("2020"),
	// a year and month ("2020-03"),
	// or a full date ("2020-03-15").
	Date  string
	Start string
	End   string

	// CI is the confidence interval of the estimate
	// with the given Coverage probability.
	CI       *Interval
	Coverage float64

	// Participants is the number of participants
	// in the study that produced the estimate.
	Participants int

	// Methods is a free text description
	// of the methods used to produce the estimate.
	Methods string

	target bool
	inputs []Value
}

func (v Variable) variable() Variable { return v }

// Location returns the location of the estimate.
func (v Variable) Location() Location {
	return Location{
		Country: v.Country,
		State:   v.State,
		County:  v.County,
	}
}

// Interval is a confidence interval.
type Interval struct {
	Low, High float64
}

// Value is an estimate.
// It is implemented by all the quantity types
// of the package.
type Value interface {
	variable() Variable
}

// Override defines a new location or date
// for a target estimate.
//
// A location field replaces that field
// and the more specific fields of the estimate,
// for example setting State
// keeps the Country
// and replaces the State and County.
// If Date is set,
// it replaces the date of the estimate,
// and if Start or End are set,
// they replace the date range of the estimate.
type Override struct {
	Country string
	State   string
	County  string
	Date    string
	Start   string
	End     string
}

// retarget returns a copy of a variable
// marked as a target.
// Inputs are shared with the original variable.
//
// As the summaries of a target
// are not taken from its inputs,
// a variable without its own location or date
// takes them from its inputs
// before the override is applied.
// If the inputs have several locations,
// only the fields shared by all of them are kept.
func (v Variable) retarget(o Override) Variable {
	if !v.target {
		if v.Location().IsZero() {
			l := sharedLocation(Locations(v))
			v.Country = l.Country
			v.State = l.State
			v.County = l.County
		}
		if v.Date == "" && v.Start == "" && v.End == "" {
			if r, ok := Dates(v); ok {
				v.Start = r.Start.Format(dayLayout)
				v.End = r.End.Format(dayLayout)
			}
		}
	}
	v.target = true

	switch {
	case o.Country != "":
		v.Country = o.Country
		v.State = o.State
		v.County = o.County
	case o.State != "":
		v.State = o.State
		v.County = o.County
	case o.County != "":
		v.County = o.County
	}
	if o.Date != "" {
		v.Date = o.Date
		v.Start = ""
		v.End = ""
	} else if o.Start != "" || o.End != "" {
		v.Date = ""
		v.Start = o.Start
		v.End = o.End
	}
	return v
}

// sharedLocation returns the location fields
// shared by all the locations,
// from the least to the most specific field.
func sharedLocation(locs []Location) Location {
	if len(locs) == 0 {
		return Location{}
	}
	l := locs[0]
	for _, o := range locs[1:] {
		if !strings.EqualFold(l.Country, o.Country) {
			return Location{}
		}
		if !strings.EqualFold(l.State, o.State) {
			l.State = ""
			l.County = ""
			continue
		}
		if !strings.EqualFold(l.County, o.County) {
			l.County = ""
		}
	}
	return l
}

// derive returns the provenance of an estimate
// derived from the given inputs.
// It panics if an input is a target:
// a target is always the last estimate
// of a derivation chain.
func derive(inputs ...Value) Variable {
	in := make([]Value, len(inputs))
	for i, v := range inputs {
		if v.variable().target {
			panic("estimate: derivation from a target estimate")
		}
		in[i] = v
	}
	return Variable{inputs: in}
}

// Inputs returns the estimates
// used to derive an estimate.
func Inputs(v Value) []Value {
	return slices.Clone(v.variable().inputs)
}

// IsTarget returns true if the estimate
// is marked as a target.
func IsTarget(v Value) bool {
	return v.variable().target
}

// Walk performs a depth-first traversal
// of the derivation history of an estimate,
// starting with the estimate itself.
// If fn returns false,
// the inputs of the visited estimate are not visited.
func Walk(v Value, fn func(Value) bool) {
	if !fn(v) {
		return
	}
	for _, in := range v.variable().inputs {
		Walk(in, fn)
	}
}

// Sources returns the sources of all the raw estimates
// used to derive an estimate.
func Sources(v Value) []string {
	set := make(map[string]bool)
	Walk(v, func(in Value) bool {
		if s := in.variable().Source; s != "" {
			set[s] = true
		}
		return true
	})
	src := make([]string, 0, len(set))
	for s := range set {
		src = append(src, s)
	}
	slices.Sort(src)
	return src
}

// summaryWalk visits the estimates
// that define the location and date of an estimate:
// the estimate itself,
// and if it is not a target,
// its inputs.
func summaryWalk(v Value, fn func(Variable)) {
	Walk(v, func(in Value) bool {
		vv := in.variable()
		fn(vv)
		return !vv.target
	})
}

// Location is a geographic location.
type Location struct {
	Country string
	State   string
	County  string
}

// IsZero returns true if no field of the location is defined.
func (l Location) IsZero() bool {
	return l.Country == "" && l.State == "" && l.County == ""
}

// String returns the location
// from the most specific to the least specific field.
func (l Location) String() string {
	var parts []string
	for _, p := range []string{l.County, l.State, l.Country} {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

// Locations returns the locations of an estimate.
func Locations(v Value) []Location {
	set := make(map[Location]bool)
	summaryWalk(v, func(vv Variable) {
		if l := vv.Location(); !l.IsZero() {
			set[l] = true
		}
	})
	locs := make([]Location, 0, len(set))
	for l := range set {
		locs = append(locs, l)
	}
	slices.SortFunc(locs, func(a, b Location) int {
		return strings.Compare(a.String(), b.String())
	})
	return locs
}

// SummarizeLocation returns a string with the locations
// of an estimate.
func SummarizeLocation(v Value) string {
	locs := Locations(v)
	s := make([]string, len(locs))
	for i, l := range locs {
		s[i] = l.String()
	}
	return strings.Join(s, "; ")
}

// Dates returns the date range of an estimate.
// Dates that cannot be parsed are ignored.
// If no date is found,
// it returns false.
func Dates(v Value) (DateRange, bool) {
	var r DateRange
	var found bool
	summaryWalk(v, func(vv Variable) {
		d, ok := vv.dateRange()
		if !ok {
			return
		}
		if !found {
			r = d
			found = true
			return
		}
		if d.Start.Before(r.Start) {
			r.Start = d.Start
		}
		if d.End.After(r.End) {
			r.End = d.End
		}
	})
	return r, found
}

// SummarizeDate returns a string with the date range
// of an estimate.
// It returns an empty string
// if the estimate has no dates.
func SummarizeDate(v Value) string {
	r, ok := Dates(v)
	if !ok {
		return ""
	}
	return r.String()
}

func (v Variable) dateRange() (DateRange, bool) {
	if v.Date != "" {
		return ParseDate(v.Date)
	}
	start, end := v.Start, v.End
	if start == "" {
		start = end
	}
	if end == "" {
		end = start
	}
	if start == "" {
		return DateRange{}, false
	}
	s, ok := ParseDate(start)
	if !ok {
		return DateRange{}, false
	}
	e, ok := ParseDate(end)
	if !ok {
		return DateRange{}, false
	}
	if e.End.Before(s.Start) {
		return DateRange{}, false
	}
	return DateRange{Start: s.Start, End: e.End}, true
}
