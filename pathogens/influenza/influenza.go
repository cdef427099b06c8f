// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package influenza defines the estimates
// for influenza A and B viruses.
package influenza

import (
	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/pathogen"
	"github.com/js-arias/mgsra/pathogens/census"
	"github.com/js-arias/mgsra/taxonomy"
)

func init() {
	pathogen.Register(influenza{})
}

const (
	influenzaA taxonomy.ID = 11320
	influenzaB taxonomy.ID = 11520
)

var chars = pathogen.Chars{
	NucleicAcid: pathogen.RNA,
	Envelope:    pathogen.Enveloped,
	TaxIDs:      []taxonomy.ID{influenzaA, influenzaB},
	Names: map[taxonomy.ID]string{
		influenzaA: "Influenza A",
		influenzaB: "Influenza B",
	},
	Round: pathogen.Round1,
}

const burden = "https://www.cdc.gov/flu/about/burden/index.html"

// Symptomatic illnesses in the 2019-2020 season.
var usSeason2019 = estimate.IncidenceAbsolute{
	AnnualInfections: 38_000_000,
	Tag:              "us-2020",
	Variable: estimate.Variable{
		Source:   burden,
		Country:  "United States",
		Start:    "2019-10",
		End:      "2020-09",
		CI:       &estimate.Interval{Low: 34_000_000, High: 54_000_000},
		Coverage: 0.95,
	},
}

// Symptomatic illnesses in the 2018-2019 season.
var usSeason2018 = estimate.IncidenceAbsolute{
	AnnualInfections: 35_500_000,
	Tag:              "us-2019",
	Variable: estimate.Variable{
		Source:  burden,
		Country: "United States",
		Start:   "2018-10",
		End:     "2019-09",
	},
}

// Only about half of the infections are symptomatic.
var symptomatic = estimate.Scalar{
	Scalar: 0.5,
	Variable: estimate.Variable{
		Source:  "https://doi.org/10.1097/EDE.0000000000000340",
		Methods: "meta-analysis of the asymptomatic fraction of influenza infections",
	},
}

var asymptomaticCorrection = estimate.Scalar{
	Scalar: 1 / symptomatic.Scalar,
	Variable: estimate.Variable{
		Source:  symptomatic.Source,
		Methods: "inverse of the symptomatic fraction",
	},
}

// Shedding of detectable virus after infection.
var shedding = estimate.SheddingDuration{
	Days: 6,
	Variable: estimate.Variable{
		Source:  "https://doi.org/10.1093/aje/kwm375",
		Methods: "viral shedding in volunteer challenge studies",
	},
}

// seasons are the flu seasons with estimates.
// Each season estimate is used for the months of the season.
var seasons = []struct {
	illnesses  estimate.IncidenceAbsolute
	population estimate.Population
}{
	{usSeason2018, census.US2019},
	{usSeason2019, census.US2020},
}

type influenza struct{}

func (influenza) Name() string                    { return "influenza" }
func (influenza) Characteristics() pathogen.Chars { return chars }

func (influenza) Prevalences() []estimate.Prevalence {
	var prev []estimate.Prevalence
	for _, s := range seasons {
		p := rate(s.illnesses, s.population).ToPrevalence(shedding)
		prev = append(prev, p.Target(season(s.illnesses)))
	}
	return prev
}

func (influenza) Incidences() []estimate.IncidenceRate {
	var inc []estimate.IncidenceRate
	for _, s := range seasons {
		ir := rate(s.illnesses, s.population)
		inc = append(inc, ir.Target(season(s.illnesses)))
	}
	return inc
}

func rate(illnesses estimate.IncidenceAbsolute, pop estimate.Population) estimate.IncidenceRate {
	return illnesses.Scale(asymptomaticCorrection).ToRate(pop)
}

func season(illnesses estimate.IncidenceAbsolute) estimate.Override {
	return estimate.Override{
		Start: illnesses.Start,
		End:   illnesses.End,
	}
}
