// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package fit prepares the data
// used to fit the relation between
// the prevalence (or incidence) of a pathogen
// and its relative abundance
// in the samples of a sequencing study,
// and summarizes the fitted posterior.
//
// The model is
//
//	RA = 10^c * rate / 100 000
//
// in which RA is the expected relative abundance
// of the pathogen reads in a sample,
// rate is the estimate applicable to the sample,
// and c is the coefficient to be fitted.
// The fitting itself is done by an external sampler.
package fit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/mgs"
	"github.com/js-arias/mgsra/predictor"
)

// Prior is a normal prior
// over the log10 coefficient
// of the relative abundance.
type Prior struct {
	distuv.Normal
}

// NewPrior returns a normal prior
// with the given mean and standard deviation.
func NewPrior(mu, sigma float64) Prior {
	if sigma <= 0 {
		panic(fmt.Sprintf("fit: invalid standard deviation %v", sigma))
	}
	return Prior{
		Normal: distuv.Normal{Mu: mu, Sigma: sigma},
	}
}

// Interval returns the central interval of the prior
// with the given probability.
func (p Prior) Interval(prob float64) (low, high float64) {
	tail := (1 - prob) / 2
	return p.Quantile(tail), p.Quantile(1 - tail)
}

// Input is the data of a bioproject
// used for the fitting of a pathogen.
type Input struct {
	Pathogen   string
	Bioproject mgs.Bioproject

	// Samples used in the fitting.
	Samples []mgs.Sample

	// Predictors are the rates per 100 000 people
	// applicable to each sample.
	Predictors []float64

	// Viral and Total are the pathogen reads
	// and the total reads of each sample.
	Viral []float64
	Total []float64

	// Prior is the prior of the coefficient.
	// It is not set by NewInput.
	Prior Prior
}

// Skipped is a sample that cannot be used in the fitting.
type Skipped struct {
	Sample mgs.Sample
	Reason string
}

// NewInput returns the fitting input
// from the rows of a bioproject.
//
// Only samples with exactly one applicable estimate
// and with reads are used.
// The other samples are returned as skipped,
// as they indicate an incomplete
// (or inconsistent)
// set of estimates for the bioproject.
func NewInput[E predictor.Estimate](pathogen string, bp mgs.Bioproject, rows []predictor.Row[E]) (Input, []Skipped) {
	in := Input{
		Pathogen:   pathogen,
		Bioproject: bp,
	}
	var skipped []Skipped
	for _, r := range rows {
		if len(r.Estimates) != 1 {
			skipped = append(skipped, Skipped{
				Sample: r.Sample,
				Reason: fmt.Sprintf("%d applicable estimates", len(r.Estimates)),
			})
			continue
		}
		if r.TotalReads <= 0 {
			skipped = append(skipped, Skipped{
				Sample: r.Sample,
				Reason: "sample without reads",
			})
			continue
		}
		in.Samples = append(in.Samples, r.Sample)
		in.Predictors = append(in.Predictors, r.Estimates[0].Rate())
		in.Viral = append(in.Viral, float64(r.ViralReads))
		in.Total = append(in.Total, float64(r.TotalReads))
	}
	return in, skipped
}

// Len returns the number of samples of the input.
func (in Input) Len() int {
	return len(in.Samples)
}

// RelativeAbundance returns the relative abundance
// of the pathogen reads
// in each sample of the input.
func RelativeAbundance(in Input) []float64 {
	ra := make([]float64, len(in.Viral))
	floats.DivTo(ra, in.Viral, in.Total)
	return ra
}

// PooledRelativeAbundance returns the relative abundance
// of the pathogen reads
// over all the samples of the input.
func PooledRelativeAbundance(in Input) float64 {
	total := floats.Sum(in.Total)
	if total == 0 {
		return 0
	}
	return floats.Sum(in.Viral) / total
}

// Predict returns the expected relative abundance
// for a rate per 100 000 people,
// given a log10 coefficient.
func Predict(coef, rate float64) float64 {
	return math.Pow(10, coef) * rate / estimate.Per100k
}

// A Sampler samples the posterior distribution
// of the log10 coefficient
// for a fitting input.
type Sampler interface {
	Sample(ctx context.Context, in Input) ([]float64, error)
}

// Summary is the summary
// of a posterior sample.
type Summary struct {
	Mean   float64
	Median float64

	// Lower and Upper are the 5% and 95% quantiles.
	Lower float64
	Upper float64
}

// Summarize returns the summary of a posterior sample.
// It panics if the sample is empty.
func Summarize(sample []float64) Summary {
	if len(sample) == 0 {
		panic("fit: summary of an empty sample")
	}
	x := slices.Clone(sample)
	slices.Sort(x)
	return Summary{
		Mean:   stat.Mean(x, nil),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
		Lower:  stat.Quantile(0.05, stat.Empirical, x, nil),
		Upper:  stat.Quantile(0.95, stat.Empirical, x, nil),
	}
}

// Run samples the posterior of an input
// and returns its summary.
func Run(ctx context.Context, s Sampler, in Input) (Summary, error) {
	if in.Len() == 0 {
		return Summary{}, fmt.Errorf("pathogen %q, bioproject %q: no samples to fit", in.Pathogen, in.Bioproject)
	}
	sample, err := s.Sample(ctx, in)
	if err != nil {
		return Summary{}, fmt.Errorf("pathogen %q, bioproject %q: %v", in.Pathogen, in.Bioproject, err)
	}
	if len(sample) == 0 {
		return Summary{}, fmt.Errorf("pathogen %q, bioproject %q: empty posterior sample", in.Pathogen, in.Bioproject)
	}
	return Summarize(sample), nil
}

// Cats returns the values of the prior
// discretized in n categories
// of equal probability.
// It panics if n is negative.
func (p Prior) Cats(n int) []float64 {
	cats := make([]float64, n)
	for i := range cats {
		q := (float64(i) + 0.5) / float64(n)
		cats[i] = p.Quantile(q)
	}
	return cats
}

// PriorSampler is a sampler
// that ignores the data
// and returns the prior
// discretized in N categories.
// It is used to check the prior predictive
// relative abundance.
type PriorSampler struct {
	N int
}

// Sample returns the discretized prior of the input.
// It returns an error if N is not positive,
// or if the prior of the input is not defined.
func (ps PriorSampler) Sample(ctx context.Context, in Input) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ps.N <= 0 {
		return nil, fmt.Errorf("invalid number of categories %d", ps.N)
	}
	if in.Prior.Sigma <= 0 {
		return nil, errors.New("undefined prior")
	}
	return in.Prior.Cats(ps.N), nil
}
