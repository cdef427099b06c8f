// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hbv defines the estimates
// for the hepatitis B virus.
package hbv

import (
	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/pathogen"
	"github.com/js-arias/mgsra/pathogens/census"
	"github.com/js-arias/mgsra/taxonomy"
)

func init() {
	pathogen.Register(hbv{})
}

const hepatitisB taxonomy.ID = 10407

var chars = pathogen.Chars{
	NucleicAcid: pathogen.DNA,
	Envelope:    pathogen.Enveloped,
	TaxIDs:      []taxonomy.ID{hepatitisB},
	Round:       pathogen.Round1,
}

// People living with chronic hepatitis B.
var usChronic = estimate.PrevalenceAbsolute{
	Infections: 880_000,
	Tag:        "us-2018",
	Variable: estimate.Variable{
		Source:   "https://www.cdc.gov/hepatitis/hbv/",
		Country:  "United States",
		Start:    "2013",
		End:      "2018",
		CI:       &estimate.Interval{Low: 580_000, High: 1_170_000},
		Coverage: 0.95,
		Methods:  "NHANES serology adjusted for populations not sampled by NHANES",
	},
}

type hbv struct{}

func (hbv) Name() string                    { return "hbv" }
func (hbv) Characteristics() pathogen.Chars { return chars }

func (hbv) Prevalences() []estimate.Prevalence {
	// Chronic infection changes slowly,
	// so the estimate is used for the most recent year.
	return []estimate.Prevalence{
		usChronic.ToRate(census.US2018).Target(estimate.Override{Date: "2018"}),
	}
}

func (hbv) Incidences() []estimate.IncidenceRate {
	return nil
}
