// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package mgs

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
)

// ReadBioprojects reads the samples of each bioproject
// from a JSON object,
// for example:
//
//	{
//		"PRJNA729801": ["SRR14530724", "SRR14530726"],
//		"PRJNA812772": ["SRR18341092"]
//	}
func ReadBioprojects(r io.Reader) (map[Bioproject][]Sample, error) {
	var bp map[Bioproject][]Sample
	if err := json.NewDecoder(r).Decode(&bp); err != nil {
		return nil, fmt.Errorf("while reading bioprojects: %v", err)
	}
	if bp == nil {
		bp = make(map[Bioproject][]Sample)
	}
	return bp, nil
}

// ReadSamples reads the attributes of each sample
// from a JSON object,
// for example:
//
//	{
//		"SRR14530724": {
//			"country": "United States",
//			"state": "California",
//			"county": "Los Angeles County",
//			"location": "HTP",
//			"date": "2020-08-12",
//			"reads": 12000000,
//			"enrichment": "viral"
//		}
//	}
//
// Unknown fields are ignored.
// A sample with a malformed record
// (for example a string in the reads field,
// or an unknown enrichment method)
// is logged and skipped.
func ReadSamples(r io.Reader) (map[Sample]SampleAttributes, error) {
	var raw map[Sample]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("while reading samples: %v", err)
	}

	samples := make(map[Sample]SampleAttributes, len(raw))
	for s, m := range raw {
		a, err := parseAttributes(m)
		if err != nil {
			log.Printf("mgs: skipping sample %q: %v", s, err)
			continue
		}
		samples[s] = a
	}
	return samples, nil
}

func parseAttributes(m json.RawMessage) (SampleAttributes, error) {
	var a SampleAttributes
	if err := json.Unmarshal(m, &a); err != nil {
		return SampleAttributes{}, err
	}
	if a.Reads < 0 {
		return SampleAttributes{}, fmt.Errorf("invalid reads value %d", a.Reads)
	}
	if a.Enrichment != nil {
		e := Enrichment(strings.ToLower(strings.TrimSpace(string(*a.Enrichment))))
		if e != Viral && e != Panel {
			return SampleAttributes{}, fmt.Errorf("unknown enrichment %q", *a.Enrichment)
		}
		a.Enrichment = &e
	}
	return a, nil
}
