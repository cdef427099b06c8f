// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package estimate

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Per100k is the population size
// used for rates.
const Per100k = 100_000

// DaysPerYear is the number of days
// used to convert annual rates.
const DaysPerYear = 365

// Population is the size of a population.
//
// The Tag identifies the population,
// and absolute counts can only be converted to rates
// with a population of the same tag.
type Population struct {
	Variable
	People float64
	Tag    string
}

// Target returns a copy of the population
// marked as a target.
func (p Population) Target(o Override) Population {
	p.Variable = p.retarget(o)
	return p
}

// Scalar is a dimensionless factor,
// for example an underreporting factor.
type Scalar struct {
	Variable
	Scalar float64
}

// Target returns a copy of the scalar
// marked as a target.
func (s Scalar) Target(o Override) Scalar {
	s.Variable = s.retarget(o)
	return s
}

// Prevalence is the number of people
// infected at a given time
// for each 100 000 people.
type Prevalence struct {
	Variable
	InfectionsPer100k float64
}

// Rate returns the number of infections
// by 100 000 people.
func (p Prevalence) Rate() float64 {
	return p.InfectionsPer100k
}

func (p Prevalence) withRate(r float64, v Variable) Prevalence {
	return Prevalence{Variable: v, InfectionsPer100k: r}
}

// Scale returns the prevalence scaled by a factor.
func (p Prevalence) Scale(s Scalar) Prevalence {
	return scale(p, s)
}

// Target returns a copy of the prevalence
// marked as a target.
func (p Prevalence) Target(o Override) Prevalence {
	p.Variable = p.retarget(o)
	return p
}

// String returns the prevalence as a string.
func (p Prevalence) String() string {
	return fmt.Sprintf("%.4g per 100k", p.InfectionsPer100k)
}

// PrevalenceAbsolute is the number of people
// infected at a given time
// in a population.
type PrevalenceAbsolute struct {
	Variable
	Infections float64
	Tag        string
}

// ToRate returns the prevalence
// as a rate of the population.
// It panics if the population tag is different
// from the tag of the prevalence,
// or if the population is empty.
func (p PrevalenceAbsolute) ToRate(pop Population) Prevalence {
	return Prevalence{
		Variable:          derive(p, pop),
		InfectionsPer100k: toRate(p.Infections, p.Tag, pop),
	}
}

// Scale returns the absolute prevalence
// scaled by a factor.
func (p PrevalenceAbsolute) Scale(s Scalar) PrevalenceAbsolute {
	return PrevalenceAbsolute{
		Variable:   derive(p, s),
		Infections: p.Infections * s.Scalar,
		Tag:        p.Tag,
	}
}

// Target returns a copy of the absolute prevalence
// marked as a target.
func (p PrevalenceAbsolute) Target(o Override) PrevalenceAbsolute {
	p.Variable = p.retarget(o)
	return p
}

// IncidenceRate is the number of new infections
// in a year
// for each 100 000 people.
type IncidenceRate struct {
	Variable
	AnnualInfectionsPer100k float64
}

// Rate returns the number of annual infections
// by 100 000 people.
func (ir IncidenceRate) Rate() float64 {
	return ir.AnnualInfectionsPer100k
}

func (ir IncidenceRate) withRate(r float64, v Variable) IncidenceRate {
	return IncidenceRate{Variable: v, AnnualInfectionsPer100k: r}
}

// Scale returns the incidence rate scaled by a factor.
func (ir IncidenceRate) Scale(s Scalar) IncidenceRate {
	return scale(ir, s)
}

// ToPrevalence returns the prevalence
// expected from an incidence rate
// when infected people shed the pathogen
// for the given duration.
func (ir IncidenceRate) ToPrevalence(d SheddingDuration) Prevalence {
	return Prevalence{
		Variable:          derive(ir, d),
		InfectionsPer100k: ir.AnnualInfectionsPer100k * d.Days / DaysPerYear,
	}
}

// Target returns a copy of the incidence rate
// marked as a target.
func (ir IncidenceRate) Target(o Override) IncidenceRate {
	ir.Variable = ir.retarget(o)
	return ir
}

// String returns the incidence rate as a string.
func (ir IncidenceRate) String() string {
	return fmt.Sprintf("%.4g per 100k per year", ir.AnnualInfectionsPer100k)
}

// IncidenceAbsolute is the number of new infections
// in a year
// in a population.
type IncidenceAbsolute struct {
	Variable
	AnnualInfections float64
	Tag              string
}

// ToRate returns the incidence
// as a rate of the population.
// It panics if the population tag is different
// from the tag of the incidence,
// or if the population is empty.
func (ia IncidenceAbsolute) ToRate(pop Population) IncidenceRate {
	return IncidenceRate{
		Variable:                derive(ia, pop),
		AnnualInfectionsPer100k: toRate(ia.AnnualInfections, ia.Tag, pop),
	}
}

// Scale returns the absolute incidence
// scaled by a factor.
func (ia IncidenceAbsolute) Scale(s Scalar) IncidenceAbsolute {
	return IncidenceAbsolute{
		Variable:         derive(ia, s),
		AnnualInfections: ia.AnnualInfections * s.Scalar,
		Tag:              ia.Tag,
	}
}

// Target returns a copy of the absolute incidence
// marked as a target.
func (ia IncidenceAbsolute) Target(o Override) IncidenceAbsolute {
	ia.Variable = ia.retarget(o)
	return ia
}

// SheddingDuration is the number of days
// in which an infected person sheds a pathogen.
type SheddingDuration struct {
	Variable
	Days float64
}

// Target returns a copy of the shedding duration
// marked as a target.
func (d SheddingDuration) Target(o Override) SheddingDuration {
	d.Variable = d.retarget(o)
	return d
}

func toRate(n float64, tag string, pop Population) float64 {
	if tag != pop.Tag {
		panic(fmt.Sprintf("estimate: tag mismatch: %q != %q", tag, pop.Tag))
	}
	if pop.People <= 0 {
		panic(fmt.Sprintf("estimate: invalid population size %v for %q", pop.People, pop.Tag))
	}
	return n * Per100k / pop.People
}

// Rate is the constraint for estimates
// given as rates per 100 000 people.
// It is implemented by Prevalence and IncidenceRate.
type Rate[R any] interface {
	Value
	Rate() float64
	withRate(r float64, v Variable) R
}

func scale[R Rate[R]](r R, s Scalar) R {
	return r.withRate(r.Rate()*s.Scalar, derive(r, s))
}

// Weighted is an estimate
// for a sub-population.
type Weighted[R Rate[R]] struct {
	Estimate   R
	Population Population
}

// WeightedAverage returns the average of the estimates
// of several sub-populations
// weighted by the size of each sub-population.
// It panics if no estimates are given,
// or if the total population is empty.
func WeightedAverage[R Rate[R]](sub ...Weighted[R]) R {
	if len(sub) == 0 {
		panic("estimate: weighted average without estimates")
	}

	rates := make([]float64, len(sub))
	people := make([]float64, len(sub))
	inputs := make([]Value, 0, 2*len(sub))
	var total float64
	for i, w := range sub {
		if w.Population.People < 0 {
			panic(fmt.Sprintf("estimate: invalid population size %v for %q", w.Population.People, w.Population.Tag))
		}
		rates[i] = w.Estimate.Rate()
		people[i] = w.Population.People
		total += w.Population.People
		inputs = append(inputs, w.Estimate, w.Population)
	}
	if total == 0 {
		panic("estimate: weighted average over an empty population")
	}

	return sub[0].Estimate.withRate(stat.Mean(rates, people), derive(inputs...))
}
