// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package norovirus defines the estimates
// for norovirus genogroups I and II.
package norovirus

import (
	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/pathogen"
	"github.com/js-arias/mgsra/pathogens/census"
	"github.com/js-arias/mgsra/taxonomy"
)

func init() {
	pathogen.Register(norovirus{})
}

const (
	genogroupI  taxonomy.ID = 122928
	genogroupII taxonomy.ID = 122929
)

var chars = pathogen.Chars{
	NucleicAcid: pathogen.RNA,
	Envelope:    pathogen.NonEnveloped,
	TaxIDs:      []taxonomy.ID{genogroupI, genogroupII},
	Names: map[taxonomy.ID]string{
		genogroupI:  "Norovirus GI",
		genogroupII: "Norovirus GII",
	},
	Round: pathogen.Round2,
}

// Annual illnesses,
// as an average over several years.
var usAnnual = estimate.IncidenceAbsolute{
	AnnualInfections: 20_000_000,
	Tag:              "us-2019",
	Variable: estimate.Variable{
		Source:   "https://www.cdc.gov/norovirus/trends-outbreaks/burden-US.html",
		Country:  "United States",
		Start:    "2009",
		End:      "2019",
		CI:       &estimate.Interval{Low: 19_000_000, High: 21_000_000},
		Coverage: 0.9,
	},
}

type norovirus struct{}

func (norovirus) Name() string                    { return "norovirus" }
func (norovirus) Characteristics() pathogen.Chars { return chars }

func (norovirus) Prevalences() []estimate.Prevalence {
	return nil
}

func (norovirus) Incidences() []estimate.IncidenceRate {
	rate := usAnnual.ToRate(census.US2019)
	// The annual average is used for each year with samples.
	return []estimate.IncidenceRate{
		rate.Target(estimate.Override{Date: "2019"}),
		rate.Target(estimate.Override{Date: "2020"}),
		rate.Target(estimate.Override{Date: "2021"}),
	}
}
