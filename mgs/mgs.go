// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mgs implements access
// to the samples of metagenomic sequencing studies
// and their read counts.
package mgs

import (
	"time"

	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/taxonomy"
)

// Sample is a sample identifier.
type Sample string

// Bioproject is the identifier of a sequencing study.
type Bioproject string

// Enrichment is the enrichment method
// used in the sequencing of a sample.
type Enrichment string

// Valid enrichment methods.
const (
	Viral Enrichment = "viral"
	Panel Enrichment = "panel"
)

// SampleAttributes are the metadata of a sample.
type SampleAttributes struct {
	Country string `json:"country"`
	State   string `json:"state,omitempty"`
	County  string `json:"county,omitempty"`

	// Location is the name of the sampling site,
	// for example a treatment plant.
	Location string `json:"location,omitempty"`

	// Date is the collection date.
	// If the true date is not available
	// it can be a placeholder.
	Date string `json:"date"`

	// Reads is the total number of reads
	// of the sample.
	Reads int `json:"reads"`

	Enrichment *Enrichment `json:"enrichment,omitempty"`

	// Treatment flags.
	Nuclease *bool `json:"nuclease,omitempty"`
	EDTA     *bool `json:"edta,omitempty"`

	Concentration string `json:"concentration,omitempty"`
}

// Time returns the collection date of a sample.
// It returns false if the date is a placeholder.
func (a SampleAttributes) Time() (time.Time, bool) {
	r, ok := a.Dates()
	if !ok {
		return time.Time{}, false
	}
	return r.Start, true
}

// Dates returns the range of days
// covered by the collection date of a sample.
// It returns false if the date is a placeholder.
func (a SampleAttributes) Dates() (estimate.DateRange, bool) {
	return estimate.ParseDate(a.Date)
}

// EDTATreated returns true if the sample
// was treated with EDTA.
func (a SampleAttributes) EDTATreated() bool {
	return a.EDTA != nil && *a.EDTA
}

// MGS contains the samples
// of a set of sequencing studies.
type MGS struct {
	// Bioprojects are the samples of each study.
	Bioprojects map[Bioproject][]Sample

	// Samples are the metadata of each sample.
	Samples map[Sample]SampleAttributes

	// Aggregator has the taxonomic read counts
	// of the samples.
	Aggregator *taxonomy.Aggregator
}

// New returns a new collection of sequencing studies.
func New(bp map[Bioproject][]Sample, samples map[Sample]SampleAttributes, agg *taxonomy.Aggregator) *MGS {
	return &MGS{
		Bioprojects: bp,
		Samples:     samples,
		Aggregator:  agg,
	}
}

// SampleAttributes returns the attributes
// of the samples of a bioproject.
// If enrichment is not nil,
// only samples with the given enrichment method
// are returned.
//
// Samples treated with EDTA are always excluded,
// as EDTA inhibits nucleic acid amplification
// and biases the read counts.
// Samples without attributes are ignored.
func (m *MGS) SampleAttributes(bp Bioproject, enrichment *Enrichment) map[Sample]SampleAttributes {
	attrs := make(map[Sample]SampleAttributes)
	for _, s := range m.Bioprojects[bp] {
		a, ok := m.Samples[s]
		if !ok {
			continue
		}
		if a.EDTATreated() {
			continue
		}
		if enrichment != nil {
			if a.Enrichment == nil || *a.Enrichment != *enrichment {
				continue
			}
		}
		attrs[s] = a
	}
	return attrs
}

// TotalReads returns the total number of reads
// of each sample of a bioproject.
func (m *MGS) TotalReads(bp Bioproject) map[Sample]int {
	reads := make(map[Sample]int)
	for _, s := range m.Bioprojects[bp] {
		a, ok := m.Samples[s]
		if !ok {
			continue
		}
		reads[s] = a.Reads
	}
	return reads
}

// ViralReads returns the number of reads
// assigned to the subtrees of the given taxa
// in each sample of a bioproject.
// Samples without reads of the taxa
// have a count of 0.
func (m *MGS) ViralReads(bp Bioproject, taxa []taxonomy.ID) map[Sample]int {
	reads := make(map[Sample]int)
	for _, s := range m.Bioprojects[bp] {
		reads[s] = 0
	}
	if m.Aggregator == nil {
		return reads
	}

	for _, id := range taxa {
		c := m.Aggregator.SubtreeCounts(id)
		for s := range reads {
			reads[s] += c[string(s)]
		}
	}
	return reads
}
