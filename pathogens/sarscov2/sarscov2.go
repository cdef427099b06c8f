// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sarscov2 defines the estimates
// for the severe acute respiratory syndrome coronavirus 2.
package sarscov2

import (
	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/pathogen"
	"github.com/js-arias/mgsra/pathogens/census"
	"github.com/js-arias/mgsra/taxonomy"
)

func init() {
	pathogen.Register(sarsCoV2{})
}

const sarsCoV2ID taxonomy.ID = 2697049

var chars = pathogen.Chars{
	NucleicAcid: pathogen.RNA,
	Envelope:    pathogen.Enveloped,
	TaxIDs:      []taxonomy.ID{sarsCoV2ID},
	Names:       map[taxonomy.ID]string{sarsCoV2ID: "SARS-CoV-2"},
	Round:       pathogen.Round1,
}

// Reported cases in 2020.
var usCases2020 = estimate.IncidenceAbsolute{
	AnnualInfections: 20_000_000,
	Tag:              "us-2020",
	Variable: estimate.Variable{
		Source:  "https://covid.cdc.gov/covid-data-tracker/",
		Country: "United States",
		Date:    "2020",
	},
}

// Ratio of estimated infections to reported cases.
var underreporting = estimate.Scalar{
	Scalar: 4,
	Variable: estimate.Variable{
		Source:   "https://www.cdc.gov/coronavirus/2019-ncov/cases-updates/burden.html",
		Country:  "United States",
		Start:    "2020-02",
		End:      "2021-09",
		CI:       &estimate.Interval{Low: 3.4, High: 4.7},
		Coverage: 0.95,
	},
}

// Days with detectable RNA in stool.
var shedding = estimate.SheddingDuration{
	Days: 14,
	Variable: estimate.Variable{
		Source:  "https://doi.org/10.1016/S2468-1253(20)30083-2",
		Methods: "fecal RNA detection after symptom onset",
	},
}

type sarsCoV2 struct{}

func (sarsCoV2) Name() string                    { return "sars-cov-2" }
func (sarsCoV2) Characteristics() pathogen.Chars { return chars }

func (s sarsCoV2) Prevalences() []estimate.Prevalence {
	return []estimate.Prevalence{
		s.incidence().ToPrevalence(shedding).Target(estimate.Override{Date: "2020"}),
	}
}

func (s sarsCoV2) Incidences() []estimate.IncidenceRate {
	return []estimate.IncidenceRate{
		s.incidence().Target(estimate.Override{Date: "2020"}),
	}
}

func (sarsCoV2) incidence() estimate.IncidenceRate {
	return usCases2020.Scale(underreporting).ToRate(census.US2020)
}
