// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package fit_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/fit"
	"github.com/js-arias/mgsra/mgs"
	"github.com/js-arias/mgsra/predictor"
)

func rows() []predictor.Row[estimate.Prevalence] {
	p := func(r float64) estimate.Prevalence {
		return estimate.Prevalence{InfectionsPer100k: r}
	}
	return []predictor.Row[estimate.Prevalence]{
		{Sample: "s1", Estimates: []estimate.Prevalence{p(10)}, ViralReads: 5, TotalReads: 1000},
		{Sample: "s2", Estimates: nil, ViralReads: 1, TotalReads: 2000},
		{Sample: "s3", Estimates: []estimate.Prevalence{p(20), p(30)}, ViralReads: 1, TotalReads: 2000},
		{Sample: "s4", Estimates: []estimate.Prevalence{p(40)}, ViralReads: 0, TotalReads: 0},
		{Sample: "s5", Estimates: []estimate.Prevalence{p(50)}, ViralReads: 15, TotalReads: 3000},
	}
}

func TestNewInput(t *testing.T) {
	in, skipped := fit.NewInput("test", "PRJ1", rows())

	if in.Pathogen != "test" || in.Bioproject != "PRJ1" {
		t.Errorf("input: got %q %q", in.Pathogen, in.Bioproject)
	}
	if want := []mgs.Sample{"s1", "s5"}; !reflect.DeepEqual(in.Samples, want) {
		t.Errorf("samples: got %v, want %v", in.Samples, want)
	}
	if want := []float64{10, 50}; !reflect.DeepEqual(in.Predictors, want) {
		t.Errorf("predictors: got %v, want %v", in.Predictors, want)
	}
	if want := []float64{5, 15}; !reflect.DeepEqual(in.Viral, want) {
		t.Errorf("viral: got %v, want %v", in.Viral, want)
	}
	if want := []float64{1000, 3000}; !reflect.DeepEqual(in.Total, want) {
		t.Errorf("total: got %v, want %v", in.Total, want)
	}

	var sk []mgs.Sample
	for _, s := range skipped {
		sk = append(sk, s.Sample)
	}
	if want := []mgs.Sample{"s2", "s3", "s4"}; !reflect.DeepEqual(sk, want) {
		t.Errorf("skipped: got %v, want %v", sk, want)
	}

	if ra := fit.RelativeAbundance(in); !reflect.DeepEqual(ra, []float64{0.005, 0.005}) {
		t.Errorf("relative abundance: got %v", ra)
	}
	if ra := fit.PooledRelativeAbundance(in); math.Abs(ra-0.005) > 1e-15 {
		t.Errorf("pooled relative abundance: got %v, want %v", ra, 0.005)
	}
}

func TestPrior(t *testing.T) {
	prior := fit.NewPrior(0, 1)
	low, high := prior.Interval(0.95)
	if math.Abs(low+1.959964) > 1e-5 || math.Abs(high-1.959964) > 1e-5 {
		t.Errorf("interval: got %v %v", low, high)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("invalid prior: expecting panic")
		}
	}()
	fit.NewPrior(0, 0)
}

func TestPredict(t *testing.T) {
	if got := fit.Predict(-2, 1000); math.Abs(got-1e-4) > 1e-15 {
		t.Errorf("predict: got %v, want %v", got, 1e-4)
	}
}

func TestSummarize(t *testing.T) {
	var sample []float64
	for i := 100; i > 0; i-- {
		sample = append(sample, float64(i))
	}
	s := fit.Summarize(sample)
	want := fit.Summary{Mean: 50.5, Median: 50, Lower: 5, Upper: 95}
	if s != want {
		t.Errorf("summary: got %+v, want %+v", s, want)
	}
	// the sample is not modified
	if sample[0] != 100 {
		t.Errorf("summary: sample modified")
	}
}

type fixedSampler []float64

func (fs fixedSampler) Sample(ctx context.Context, in fit.Input) ([]float64, error) {
	return fs, nil
}

type failSampler struct{}

func (failSampler) Sample(ctx context.Context, in fit.Input) ([]float64, error) {
	return nil, errors.New("divergent transitions")
}

func TestRun(t *testing.T) {
	in, _ := fit.NewInput("test", "PRJ1", rows())

	s, err := fit.Run(context.Background(), fixedSampler{1, 2, 3}, in)
	if err != nil {
		t.Fatalf("run: unexpected error: %v", err)
	}
	if s.Mean != 2 || s.Median != 2 {
		t.Errorf("run: got %+v", s)
	}

	if _, err := fit.Run(context.Background(), failSampler{}, in); err == nil {
		t.Errorf("run: expecting sampler error")
	}
	if _, err := fit.Run(context.Background(), fixedSampler{}, in); err == nil {
		t.Errorf("run: expecting empty sample error")
	}
	if _, err := fit.Run(context.Background(), fixedSampler{1}, fit.Input{}); err == nil {
		t.Errorf("run: expecting empty input error")
	}
}

func TestPriorSampler(t *testing.T) {
	in, _ := fit.NewInput("test", "PRJ1", rows())
	if _, err := (fit.PriorSampler{N: 10}).Sample(context.Background(), in); err == nil {
		t.Errorf("prior sampler: expecting error on undefined prior")
	}
	in.Prior = fit.NewPrior(-8, 0.5)

	sample, err := fit.PriorSampler{N: 1000}.Sample(context.Background(), in)
	if err != nil {
		t.Fatalf("prior sampler: unexpected error: %v", err)
	}
	if len(sample) != 1000 {
		t.Fatalf("prior sampler: got %d values, want %d", len(sample), 1000)
	}
	if s := fit.Summarize(sample); math.Abs(s.Mean+8) > 1e-9 || math.Abs(s.Median+8) > 0.01 {
		t.Errorf("prior sampler: got %+v, want mean %v", s, -8)
	}
	if !slices.IsSorted(sample) {
		t.Errorf("prior sampler: categories not sorted")
	}

	for _, n := range []int{0, -1} {
		if _, err := (fit.PriorSampler{N: n}).Sample(context.Background(), in); err == nil {
			t.Errorf("prior sampler: expecting error with %d categories", n)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (fit.PriorSampler{N: 10}).Sample(ctx, in); !errors.Is(err, context.Canceled) {
		t.Errorf("prior sampler: got error %v, want %v", err, context.Canceled)
	}
}
