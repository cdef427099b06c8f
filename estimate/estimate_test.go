// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package estimate_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/js-arias/mgsra/estimate"
)

func TestToRate(t *testing.T) {
	pop := estimate.Population{
		People:   36_000_000,
		Tag:      "US-2020",
		Variable: estimate.Variable{Source: "census", Country: "United States", Date: "2020"},
	}
	inc := estimate.IncidenceAbsolute{
		AnnualInfections: 36_000,
		Tag:              "US-2020",
		Variable:         estimate.Variable{Source: "cdc", Country: "United States", Date: "2020"},
	}

	r := inc.ToRate(pop)
	if r.AnnualInfectionsPer100k != 100 {
		t.Errorf("incidence rate: got %v, want %v", r.AnnualInfectionsPer100k, 100.0)
	}
	if in := estimate.Inputs(r); len(in) != 2 {
		t.Errorf("incidence rate: got %d inputs, want %d", len(in), 2)
	}

	prev := estimate.PrevalenceAbsolute{
		Infections: 1_800,
		Tag:        "US-2020",
	}
	p := prev.ToRate(pop)
	if p.InfectionsPer100k != 5 {
		t.Errorf("prevalence: got %v, want %v", p.InfectionsPer100k, 5.0)
	}
}

func TestToRateTagMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("tag mismatch: expecting panic")
		}
	}()

	pop := estimate.Population{People: 1_000_000, Tag: "US-2021"}
	inc := estimate.IncidenceAbsolute{AnnualInfections: 10, Tag: "US-2020"}
	inc.ToRate(pop)
}

func TestToRateZeroPopulation(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("zero population: expecting panic")
		}
	}()

	pop := estimate.Population{People: 0, Tag: "empty"}
	prev := estimate.PrevalenceAbsolute{Infections: 10, Tag: "empty"}
	p := prev.ToRate(pop)
	t.Errorf("zero population: got %v", p.InfectionsPer100k)
}

func TestToPrevalence(t *testing.T) {
	ir := estimate.IncidenceRate{AnnualInfectionsPer100k: 365}
	d := estimate.SheddingDuration{Days: 10}

	p := ir.ToPrevalence(d)
	if p.InfectionsPer100k != 10 {
		t.Errorf("prevalence: got %v, want %v", p.InfectionsPer100k, 10.0)
	}
}

func TestScale(t *testing.T) {
	under := estimate.Scalar{Scalar: 4, Variable: estimate.Variable{Source: "underreporting"}}

	p := estimate.Prevalence{InfectionsPer100k: 2.5}.Scale(under)
	if p.InfectionsPer100k != 10 {
		t.Errorf("prevalence: got %v, want %v", p.InfectionsPer100k, 10.0)
	}
	ir := estimate.IncidenceRate{AnnualInfectionsPer100k: 3}.Scale(under)
	if ir.AnnualInfectionsPer100k != 12 {
		t.Errorf("incidence: got %v, want %v", ir.AnnualInfectionsPer100k, 12.0)
	}
	ia := estimate.IncidenceAbsolute{AnnualInfections: 100, Tag: "x"}.Scale(under)
	if ia.AnnualInfections != 400 || ia.Tag != "x" {
		t.Errorf("absolute incidence: got %v %q, want %v %q", ia.AnnualInfections, ia.Tag, 400.0, "x")
	}
	pa := estimate.PrevalenceAbsolute{Infections: 5, Tag: "y"}.Scale(under)
	if pa.Infections != 20 || pa.Tag != "y" {
		t.Errorf("absolute prevalence: got %v %q, want %v %q", pa.Infections, pa.Tag, 20.0, "y")
	}

	if src := estimate.Sources(p); !reflect.DeepEqual(src, []string{"underreporting"}) {
		t.Errorf("sources: got %v", src)
	}
}

func TestWeightedAverage(t *testing.T) {
	small := estimate.Population{People: 10, Tag: "small"}
	large := estimate.Population{People: 90, Tag: "large"}

	p := estimate.WeightedAverage(
		estimate.Weighted[estimate.Prevalence]{
			Estimate:   estimate.Prevalence{InfectionsPer100k: 100},
			Population: small,
		},
		estimate.Weighted[estimate.Prevalence]{
			Estimate:   estimate.Prevalence{InfectionsPer100k: 200},
			Population: large,
		},
	)
	if p.InfectionsPer100k != 190 {
		t.Errorf("weighted average: got %v, want %v", p.InfectionsPer100k, 190.0)
	}
	if in := estimate.Inputs(p); len(in) != 4 {
		t.Errorf("weighted average: got %d inputs, want %d", len(in), 4)
	}

	ir := estimate.WeightedAverage(
		estimate.Weighted[estimate.IncidenceRate]{
			Estimate:   estimate.IncidenceRate{AnnualInfectionsPer100k: 50},
			Population: small,
		},
	)
	if ir.AnnualInfectionsPer100k != 50 {
		t.Errorf("single estimate: got %v, want %v", ir.AnnualInfectionsPer100k, 50.0)
	}
}

func TestWeightedAveragePanics(t *testing.T) {
	tests := map[string][]estimate.Weighted[estimate.Prevalence]{
		"empty": nil,
		"zero population": {
			{Estimate: estimate.Prevalence{InfectionsPer100k: 1}, Population: estimate.Population{}},
		},
	}
	for name, sub := range tests {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s: expecting panic", name)
				}
			}()
			estimate.WeightedAverage(sub...)
		}()
	}
}

func TestTarget(t *testing.T) {
	pop := estimate.Population{
		People:   1_000_000,
		Tag:      "ca-2019",
		Variable: estimate.Variable{Source: "census", Country: "United States", State: "California", Date: "2019"},
	}
	ia := estimate.IncidenceAbsolute{
		AnnualInfections: 500,
		Tag:              "ca-2019",
		Variable:         estimate.Variable{Source: "cdph", Country: "United States", State: "California", Date: "2019"},
	}
	r := ia.ToRate(pop)
	if estimate.IsTarget(r) {
		t.Errorf("derived estimate: unexpected target")
	}
	if loc := estimate.SummarizeLocation(r); loc != "California, United States" {
		t.Errorf("derived location: got %q", loc)
	}
	if d := estimate.SummarizeDate(r); d != "2019" {
		t.Errorf("derived date: got %q", d)
	}

	tr := r.Target(estimate.Override{Date: "2021", County: "Los Angeles County"})
	if !estimate.IsTarget(tr) {
		t.Errorf("target: got false")
	}
	if estimate.IsTarget(r) {
		t.Errorf("target: original estimate modified")
	}
	if tr.AnnualInfectionsPer100k != r.AnnualInfectionsPer100k {
		t.Errorf("target: got %v, want %v", tr.AnnualInfectionsPer100k, r.AnnualInfectionsPer100k)
	}
	if loc := estimate.SummarizeLocation(tr); loc != "Los Angeles County, California, United States" {
		t.Errorf("target location: got %q, want %q", loc, "Los Angeles County, California, United States")
	}
	if loc := estimate.SummarizeLocation(r.Target(estimate.Override{State: "Nevada"})); loc != "Nevada, United States" {
		t.Errorf("target location: got %q, want %q", loc, "Nevada, United States")
	}
	if loc := estimate.SummarizeLocation(r.Target(estimate.Override{Country: "Mexico"})); loc != "Mexico" {
		t.Errorf("target location: got %q, want %q", loc, "Mexico")
	}
	if d := estimate.SummarizeDate(tr); d != "2021" {
		t.Errorf("target date: got %q, want %q", d, "2021")
	}

	// location and date are taken from the inputs
	// when not overridden
	home := r.Target(estimate.Override{Date: "2021"})
	if loc := estimate.SummarizeLocation(home); loc != "California, United States" {
		t.Errorf("target location: got %q, want %q", loc, "California, United States")
	}
	if d := estimate.SummarizeDate(r.Target(estimate.Override{})); d != "2019" {
		t.Errorf("target date: got %q, want %q", d, "2019")
	}

	// the derivation chain is kept for audit
	if src := estimate.Sources(tr); !reflect.DeepEqual(src, []string{"cdph", "census"}) {
		t.Errorf("target sources: got %v", src)
	}
	if in := estimate.Inputs(tr); len(in) != 2 {
		t.Errorf("target inputs: got %d, want %d", len(in), 2)
	}

	// a target is the last estimate in a chain
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("derivation from target: expecting panic")
		}
	}()
	tr.ToPrevalence(estimate.SheddingDuration{Days: 7})
}

func TestSummarizeDate(t *testing.T) {
	p := estimate.PrevalenceAbsolute{
		Infections: 10,
		Tag:        "x",
		Variable:   estimate.Variable{Date: "2020"},
	}
	pop := estimate.Population{
		People:   1000,
		Tag:      "x",
		Variable: estimate.Variable{Date: "2020-03"},
	}
	r := p.ToRate(pop)

	dr, ok := estimate.Dates(r)
	if !ok {
		t.Fatalf("dates: not found")
	}
	want := estimate.DateRange{
		Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	if !dr.Start.Equal(want.Start) || !dr.End.Equal(want.End) {
		t.Errorf("dates: got %v, want %v", dr, want)
	}
	if s := estimate.SummarizeDate(r); s != "2020" {
		t.Errorf("summary: got %q, want %q", s, "2020")
	}

	// malformed dates are ignored
	bad := estimate.Population{People: 10, Tag: "x", Variable: estimate.Variable{Date: "spring 2020"}}
	if s := estimate.SummarizeDate(bad); s != "" {
		t.Errorf("malformed date: got %q, want empty", s)
	}
	mixed := estimate.PrevalenceAbsolute{Infections: 1, Tag: "x", Variable: estimate.Variable{Start: "2019-11", End: "2020-02"}}.ToRate(bad)
	if s := estimate.SummarizeDate(mixed); s != "2019-11 to 2020-02" {
		t.Errorf("mixed dates: got %q", s)
	}
}

func TestDateRangeString(t *testing.T) {
	tests := map[string]struct {
		v    estimate.Variable
		want string
	}{
		"year":         {estimate.Variable{Date: "2020"}, "2020"},
		"years":        {estimate.Variable{Start: "2019", End: "2021"}, "2019-2021"},
		"month":        {estimate.Variable{Date: "2020-02"}, "2020-02"},
		"months":       {estimate.Variable{Start: "2020-02", End: "2020-04"}, "2020-02 to 2020-04"},
		"day":          {estimate.Variable{Date: "2020-02-29"}, "2020-02-29"},
		"days":         {estimate.Variable{Start: "2020-02-03", End: "2020-02-10"}, "2020-02-03 to 2020-02-10"},
		"only start":   {estimate.Variable{Start: "2018"}, "2018"},
		"reversed":     {estimate.Variable{Start: "2021", End: "2019"}, ""},
		"invalid date": {estimate.Variable{Date: "2020-13"}, ""},
		"no date":      {estimate.Variable{}, ""},
	}
	for name, test := range tests {
		s := estimate.Scalar{Scalar: 1, Variable: test.v}
		if got := estimate.SummarizeDate(s); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	r, ok := estimate.ParseDate("2020-02")
	if !ok {
		t.Fatalf("parse: not valid")
	}
	if !r.Contains(time.Date(2020, time.February, 29, 15, 0, 0, 0, time.UTC)) {
		t.Errorf("contains: leap day not in %v", r)
	}
	if r.Contains(time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("contains: march in %v", r)
	}
	for _, bad := range []string{"", "20", "2020-1", "2020/03/01", "abcd"} {
		if _, ok := estimate.ParseDate(bad); ok {
			t.Errorf("parse %q: expecting invalid date", bad)
		}
	}
}

func TestSummarizeLocation(t *testing.T) {
	ny := estimate.Prevalence{
		InfectionsPer100k: 10,
		Variable:          estimate.Variable{Country: "United States", State: "New York"},
	}
	ca := estimate.Prevalence{
		InfectionsPer100k: 20,
		Variable:          estimate.Variable{Country: "United States", State: "California"},
	}
	nyPop := estimate.Population{People: 3, Variable: estimate.Variable{Country: "United States", State: "New York"}}
	caPop := estimate.Population{People: 1, Variable: estimate.Variable{Country: "United States", State: "California"}}

	avg := estimate.WeightedAverage(
		estimate.Weighted[estimate.Prevalence]{Estimate: ny, Population: nyPop},
		estimate.Weighted[estimate.Prevalence]{Estimate: ca, Population: caPop},
	)
	if math.Abs(avg.InfectionsPer100k-12.5) > 1e-12 {
		t.Errorf("average: got %v, want %v", avg.InfectionsPer100k, 12.5)
	}
	want := "California, United States; New York, United States"
	if got := estimate.SummarizeLocation(avg); got != want {
		t.Errorf("location: got %q, want %q", got, want)
	}

	us := avg.Target(estimate.Override{Country: "United States"})
	// the override replaces the location
	if got := estimate.SummarizeLocation(us); got != "United States" {
		t.Errorf("target location: got %q, want %q", got, "United States")
	}

	// only the shared fields of the inputs are kept
	later := avg.Target(estimate.Override{Date: "2021"})
	if got := estimate.SummarizeLocation(later); got != "United States" {
		t.Errorf("target location: got %q, want %q", got, "United States")
	}
	if got := estimate.SummarizeLocation(later.Target(estimate.Override{State: "Texas"})); got != "Texas, United States" {
		t.Errorf("target location: got %q, want %q", got, "Texas, United States")
	}

	mx := estimate.Prevalence{
		InfectionsPer100k: 30,
		Variable:          estimate.Variable{Country: "Mexico"},
	}
	mxPop := estimate.Population{People: 2, Variable: estimate.Variable{Country: "Mexico"}}
	na := estimate.WeightedAverage(
		estimate.Weighted[estimate.Prevalence]{Estimate: ny, Population: nyPop},
		estimate.Weighted[estimate.Prevalence]{Estimate: mx, Population: mxPop},
	).Target(estimate.Override{Date: "2021"})
	if got := estimate.SummarizeLocation(na); got != "" {
		t.Errorf("target location: got %q, want empty location", got)
	}
}

func TestWalk(t *testing.T) {
	a := estimate.IncidenceAbsolute{AnnualInfections: 10, Tag: "t", Variable: estimate.Variable{Source: "a"}}
	pop := estimate.Population{People: 100, Tag: "t", Variable: estimate.Variable{Source: "b"}}
	d := estimate.SheddingDuration{Days: 3, Variable: estimate.Variable{Source: "c"}}
	p := a.ToRate(pop).ToPrevalence(d)

	var n int
	estimate.Walk(p, func(estimate.Value) bool {
		n++
		return true
	})
	if n != 5 {
		t.Errorf("walk: got %d estimates, want %d", n, 5)
	}

	var top int
	estimate.Walk(p, func(estimate.Value) bool {
		top++
		return false
	})
	if top != 1 {
		t.Errorf("walk without descent: got %d estimates, want %d", top, 1)
	}

	if src := estimate.Sources(p); !reflect.DeepEqual(src, []string{"a", "b", "c"}) {
		t.Errorf("sources: got %v", src)
	}
}
