// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hiv defines the estimates
// for the human immunodeficiency virus.
package hiv

import (
	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/pathogen"
	"github.com/js-arias/mgsra/pathogens/census"
	"github.com/js-arias/mgsra/taxonomy"
)

func init() {
	pathogen.Register(hiv{})
}

const hiv1 taxonomy.ID = 11676

var chars = pathogen.Chars{
	NucleicAcid: pathogen.RNA,
	Envelope:    pathogen.Enveloped,
	TaxIDs:      []taxonomy.ID{hiv1},
	Names:       map[taxonomy.ID]string{hiv1: "HIV-1"},
	Round:       pathogen.Round1,
}

// People living with HIV
// (diagnosed and undiagnosed)
// at the end of 2019.
var usPrevalence2019 = estimate.PrevalenceAbsolute{
	Infections: 1_189_700,
	Tag:        "us-2019",
	Variable: estimate.Variable{
		Source:  "https://www.cdc.gov/hiv/library/reports/hiv-surveillance.html",
		Country: "United States",
		Date:    "2019",
		Methods: "CD4-based back-calculation model over national surveillance data",
	},
}

// People living with diagnosed HIV
// at the end of 2020,
// from state surveillance.
var caDiagnosed2020 = estimate.PrevalenceAbsolute{
	Infections: 139_703,
	Tag:        "ca-2020",
	Variable: estimate.Variable{
		Source:  "https://www.cdph.ca.gov/Programs/CID/DOA/Pages/OA_dis_surveillance.aspx",
		Country: "United States",
		State:   "California",
		Date:    "2020",
	},
}

var nyDiagnosed2020 = estimate.PrevalenceAbsolute{
	Infections: 105_987,
	Tag:        "ny-2020",
	Variable: estimate.Variable{
		Source:  "https://www.health.ny.gov/diseases/aids/general/statistics/annual/",
		Country: "United States",
		State:   "New York",
		Date:    "2020",
	},
}

// About 13% of the people living with HIV
// are not diagnosed.
var undiagnosed = estimate.Scalar{
	Scalar: 1 / 0.87,
	Variable: estimate.Variable{
		Source:  "https://www.cdc.gov/hiv/statistics/overview/",
		Country: "United States",
		Date:    "2019",
		Methods: "inverse of the diagnosed fraction",
	},
}

type hiv struct{}

func (hiv) Name() string                    { return "hiv" }
func (hiv) Characteristics() pathogen.Chars { return chars }

func (hiv) Prevalences() []estimate.Prevalence {
	return []estimate.Prevalence{
		usPrevalence2019.ToRate(census.US2019),
		statesPrevalence2020(),
	}
}

// statesPrevalence2020 is the prevalence in 2020
// extrapolated from the two states with most cases,
// as national surveillance in 2020
// was disrupted by the COVID-19 pandemic.
func statesPrevalence2020() estimate.Prevalence {
	ca := caDiagnosed2020.Scale(undiagnosed).ToRate(census.CA2020)
	ny := nyDiagnosed2020.Scale(undiagnosed).ToRate(census.NY2020)
	avg := estimate.WeightedAverage(
		estimate.Weighted[estimate.Prevalence]{Estimate: ca, Population: census.CA2020},
		estimate.Weighted[estimate.Prevalence]{Estimate: ny, Population: census.NY2020},
	)
	return avg.Target(estimate.Override{Date: "2020"})
}

func (hiv) Incidences() []estimate.IncidenceRate {
	return nil
}
