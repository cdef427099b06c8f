// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package predictor_test

import (
	"reflect"
	"testing"

	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/mgs"
	"github.com/js-arias/mgsra/pathogen"
	"github.com/js-arias/mgsra/predictor"
	"github.com/js-arias/mgsra/taxonomy"
	"github.com/js-arias/mgsra/tree"
)

func prevalence(rate float64, v estimate.Variable) estimate.Prevalence {
	return estimate.Prevalence{InfectionsPer100k: rate, Variable: v}
}

var candidates = []estimate.Prevalence{
	prevalence(10, estimate.Variable{Country: "United States", Date: "2020"}),
	prevalence(20, estimate.Variable{Country: "United States", State: "California", Date: "2020"}),
	prevalence(30, estimate.Variable{Country: "United States", State: "California", Start: "2020-01", End: "2020-06"}),
	prevalence(40, estimate.Variable{Country: "United States", Date: "2021"}),
	prevalence(50, estimate.Variable{Country: "United States"}),
	prevalence(60, estimate.Variable{Country: "Mexico", Date: "2020"}),
}

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		attrs    mgs.SampleAttributes
		want     []float64
		specific []float64
	}{
		"county sample": {
			attrs:    mgs.SampleAttributes{Country: "United States", State: "California", County: "Los Angeles County", Date: "2020-03-15"},
			want:     []float64{10, 20, 30},
			specific: []float64{20, 30},
		},
		"case insensitive": {
			attrs:    mgs.SampleAttributes{Country: "united states", State: "CALIFORNIA", Date: "2020-08-01"},
			want:     []float64{10, 20},
			specific: []float64{20},
		},
		"country level": {
			attrs:    mgs.SampleAttributes{Country: "United States", State: "Texas", Date: "2020-03-01"},
			want:     []float64{10},
			specific: []float64{10},
		},
		"other year": {
			attrs:    mgs.SampleAttributes{Country: "United States", State: "California", Date: "2021-01-01"},
			want:     []float64{40},
			specific: []float64{40},
		},
		"month sample": {
			attrs:    mgs.SampleAttributes{Country: "United States", State: "California", Date: "2020-06"},
			want:     []float64{10, 20, 30},
			specific: []float64{20, 30},
		},
		"other country": {
			attrs:    mgs.SampleAttributes{Country: "Mexico", Date: "2020-10-10"},
			want:     []float64{60},
			specific: []float64{60},
		},
		"no date": {
			attrs: mgs.SampleAttributes{Country: "United States", Date: "missing"},
		},
		"no estimate": {
			attrs: mgs.SampleAttributes{Country: "United States", Date: "2022-01-01"},
		},
	}

	ix := predictor.NewIndex(candidates)
	if n := ix.Len(); n != len(candidates)-1 {
		t.Errorf("index: got %d estimates, want %d", n, len(candidates)-1)
	}

	for name, test := range tests {
		est := predictor.Lookup(test.attrs, candidates)
		if got := rates(est); !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: lookup: got %v, want %v", name, got, test.want)
		}

		if got := rates(ix.Lookup(test.attrs)); !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: index: got %v, want %v", name, got, test.want)
		}

		if got := rates(predictor.MostSpecific(test.attrs, est)); !reflect.DeepEqual(got, test.specific) {
			t.Errorf("%s: most specific: got %v, want %v", name, got, test.specific)
		}
	}
}

func TestLookupWithoutLocation(t *testing.T) {
	global := []estimate.Prevalence{
		prevalence(1, estimate.Variable{Date: "2020"}),
	}
	attrs := mgs.SampleAttributes{Country: "Germany", Date: "2020-05-05"}
	if got := predictor.Lookup(attrs, global); len(got) != 0 {
		t.Errorf("lookup: got %v, want no estimates", rates(got))
	}
	if got := predictor.NewIndex(global).Lookup(attrs); len(got) != 0 {
		t.Errorf("index: got %v, want no estimates", rates(got))
	}
}

func TestLookupStateAverage(t *testing.T) {
	ca := estimate.Population{
		People:   39_538_223,
		Tag:      "ca-2020",
		Variable: estimate.Variable{Country: "United States", State: "California", Date: "2020"},
	}
	ny := estimate.Population{
		People:   20_201_249,
		Tag:      "ny-2020",
		Variable: estimate.Variable{Country: "United States", State: "New York", Date: "2020"},
	}
	avg := estimate.WeightedAverage(
		estimate.Weighted[estimate.Prevalence]{
			Estimate:   prevalence(100, ca.Variable),
			Population: ca,
		},
		estimate.Weighted[estimate.Prevalence]{
			Estimate:   prevalence(200, ny.Variable),
			Population: ny,
		},
	).Target(estimate.Override{Date: "2021"})
	est := []estimate.Prevalence{avg}

	if l := estimate.SummarizeLocation(avg); l != "United States" {
		t.Errorf("location: got %q, want %q", l, "United States")
	}

	de := mgs.SampleAttributes{Country: "Germany", Date: "2021-05-03"}
	if got := predictor.Lookup(de, est); len(got) != 0 {
		t.Errorf("german sample: got %v, want no estimates", rates(got))
	}
	tx := mgs.SampleAttributes{Country: "United States", State: "Texas", Date: "2021-05-03"}
	if got := predictor.Lookup(tx, est); len(got) != 1 {
		t.Errorf("texas sample: got %d estimates, want %d", len(got), 1)
	}
}

func TestIndexBeforeEpoch(t *testing.T) {
	est := []estimate.Prevalence{
		prevalence(1, estimate.Variable{Country: "United States", Date: "1969"}),
		prevalence(2, estimate.Variable{Country: "United States", Date: "1969-12-31"}),
		prevalence(3, estimate.Variable{Country: "United States", Date: "1970-01-01"}),
		prevalence(4, estimate.Variable{Country: "United States", Start: "1969-12", End: "1970-01"}),
	}
	ix := predictor.NewIndex(est)

	tests := map[string][]float64{
		"1969-12-30": {1, 4},
		"1969-12-31": {1, 2, 4},
		"1970-01-01": {3, 4},
		"1969-12":    {1, 4},
	}
	for date, want := range tests {
		attrs := mgs.SampleAttributes{Country: "United States", Date: date}
		if got := rates(ix.Lookup(attrs)); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: index: got %v, want %v", date, got, want)
		}
		if got := rates(predictor.Lookup(attrs, est)); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: lookup: got %v, want %v", date, got, want)
		}
	}
}

func rates[E predictor.Estimate](est []E) []float64 {
	var r []float64
	for _, e := range est {
		r = append(r, e.Rate())
	}
	return r
}

type testPathogen struct{}

func (testPathogen) Name() string { return "test" }
func (testPathogen) Characteristics() pathogen.Chars {
	return pathogen.Chars{
		NucleicAcid: pathogen.RNA,
		TaxIDs:      []taxonomy.ID{11320, 11520},
	}
}
func (testPathogen) Prevalences() []estimate.Prevalence { return candidates }
func (testPathogen) Incidences() []estimate.IncidenceRate {
	return []estimate.IncidenceRate{
		{
			AnnualInfectionsPer100k: 100,
			Variable:                estimate.Variable{Country: "United States", Date: "2020"},
		},
	}
}

func TestJoin(t *testing.T) {
	taxa := tree.New[taxonomy.ID](10239,
		tree.New[taxonomy.ID](11320),
		tree.New[taxonomy.ID](11520),
	)
	table := taxonomy.Table{
		10239: {"s1": 7},
		11320: {"s1": 3, "s2": 1},
		11520: {"s2": 2},
	}
	viral := mgs.Viral
	edta := true
	m := mgs.New(
		map[mgs.Bioproject][]mgs.Sample{
			"PRJ1": {"s2", "s1", "s3", "s4"},
		},
		map[mgs.Sample]mgs.SampleAttributes{
			"s1": {Country: "United States", State: "California", Date: "2020-03-15", Reads: 1000, Enrichment: &viral},
			"s2": {Country: "United States", State: "Texas", Date: "2020-03-16", Reads: 2000},
			"s3": {Country: "United States", State: "Texas", Date: "2022-03-16", Reads: 3000},
			"s4": {Country: "United States", State: "Texas", Date: "2020-03-16", Reads: 4000, EDTA: &edta},
		},
		taxonomy.New(taxa, table),
	)

	rows := predictor.JoinPrevalences(m, testPathogen{}, "PRJ1", nil)
	want := []struct {
		sample mgs.Sample
		rates  []float64
		viral  int
		total  int
	}{
		{"s1", []float64{10, 20, 30}, 3, 1000},
		{"s2", []float64{10}, 3, 2000},
		{"s3", nil, 0, 3000},
	}
	if len(rows) != len(want) {
		t.Fatalf("join: got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		r := rows[i]
		if r.Sample != w.sample {
			t.Errorf("row %d: got sample %q, want %q", i, r.Sample, w.sample)
		}
		if got := rates(r.Estimates); !reflect.DeepEqual(got, w.rates) {
			t.Errorf("row %d: estimates: got %v, want %v", i, got, w.rates)
		}
		if r.ViralReads != w.viral {
			t.Errorf("row %d: viral reads: got %d, want %d", i, r.ViralReads, w.viral)
		}
		if r.TotalReads != w.total {
			t.Errorf("row %d: total reads: got %d, want %d", i, r.TotalReads, w.total)
		}
	}

	inc := predictor.JoinIncidences(m, testPathogen{}, "PRJ1", &viral)
	if len(inc) != 1 {
		t.Fatalf("join incidences: got %d rows, want %d", len(inc), 1)
	}
	if got := rates(inc[0].Estimates); !reflect.DeepEqual(got, []float64{100}) {
		t.Errorf("join incidences: got %v, want %v", got, []float64{100})
	}
}
