// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package predictor

import (
	"cmp"
	"slices"

	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/mgs"
	"github.com/js-arias/mgsra/pathogen"
)

// A Row is a sample of a bioproject
// with the estimates applicable to the sample
// and its read counts.
type Row[E Estimate] struct {
	Sample mgs.Sample
	Attrs  mgs.SampleAttributes

	// Estimates are the estimates applicable
	// to the sample.
	// It can be empty.
	Estimates []E

	// ViralReads is the number of reads
	// assigned to the taxa of the pathogen.
	ViralReads int

	// TotalReads is the total number of reads
	// of the sample.
	TotalReads int
}

// Join returns the rows of the samples of a bioproject,
// with its read counts for a pathogen,
// and the candidate estimates applicable to each sample.
// If enrichment is not nil,
// only the samples with that enrichment method are used.
// Rows are sorted by sample.
func Join[E Estimate](m *mgs.MGS, p pathogen.Pathogen, bp mgs.Bioproject, enrichment *mgs.Enrichment, candidates []E) []Row[E] {
	attrs := m.SampleAttributes(bp, enrichment)
	viral := m.ViralReads(bp, p.Characteristics().TaxIDs)
	ix := NewIndex(candidates)

	rows := make([]Row[E], 0, len(attrs))
	for s, a := range attrs {
		rows = append(rows, Row[E]{
			Sample:     s,
			Attrs:      a,
			Estimates:  ix.Lookup(a),
			ViralReads: viral[s],
			TotalReads: a.Reads,
		})
	}
	slices.SortFunc(rows, func(a, b Row[E]) int {
		return cmp.Compare(a.Sample, b.Sample)
	})
	return rows
}

// JoinPrevalences returns the rows of the samples of a bioproject
// using the prevalence estimates of a pathogen.
func JoinPrevalences(m *mgs.MGS, p pathogen.Pathogen, bp mgs.Bioproject, enrichment *mgs.Enrichment) []Row[estimate.Prevalence] {
	return Join(m, p, bp, enrichment, p.Prevalences())
}

// JoinIncidences returns the rows of the samples of a bioproject
// using the incidence estimates of a pathogen.
func JoinIncidences(m *mgs.MGS, p pathogen.Pathogen, bp mgs.Bioproject, enrichment *mgs.Enrichment) []Row[estimate.IncidenceRate] {
	return Join(m, p, bp, enrichment, p.Incidences())
}
