// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package census holds population sizes
// shared by the pathogen definitions.
package census

import "github.com/js-arias/mgsra/estimate"

const popEstimates = "https://www.census.gov/programs-surveys/popest.html"

// US2018 is the resident population of the United States
// on July 1, 2018.
var US2018 = estimate.Population{
	People: 327_167_434,
	Tag:    "us-2018",
	Variable: estimate.Variable{
		Source:  popEstimates,
		Country: "United States",
		Date:    "2018",
	},
}

// US2019 is the resident population of the United States
// on July 1, 2019.
var US2019 = estimate.Population{
	People: 328_239_523,
	Tag:    "us-2019",
	Variable: estimate.Variable{
		Source:  popEstimates,
		Country: "United States",
		Date:    "2019",
	},
}

// US2020 is the resident population of the United States
// on July 1, 2020.
var US2020 = estimate.Population{
	People: 329_484_123,
	Tag:    "us-2020",
	Variable: estimate.Variable{
		Source:  popEstimates,
		Country: "United States",
		Date:    "2020",
	},
}

const decennial = "https://www.census.gov/programs-surveys/decennial-census/decade/2020/2020-census-results.html"

// CA2020 is the resident population of California
// on April 1, 2020.
var CA2020 = estimate.Population{
	People: 39_538_223,
	Tag:    "ca-2020",
	Variable: estimate.Variable{
		Source:  decennial,
		Country: "United States",
		State:   "California",
		Date:    "2020",
	},
}

// NY2020 is the resident population of New York
// on April 1, 2020.
var NY2020 = estimate.Population{
	People: 20_201_249,
	Tag:    "ny-2020",
	Variable: estimate.Variable{
		Source:  decennial,
		Country: "United States",
		State:   "New York",
		Date:    "2020",
	},
}
