// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/mgsra/mgs"
	"github.com/js-arias/mgsra/taxonomy"
	"github.com/js-arias/mgsra/tree"
)

// Taxonomy reads a taxonomy
// as defined in a project.
// If the taxonomy dataset is not defined,
// it reads the taxonomy from the taxnodes dataset.
func (p *Project) Taxonomy() (*tree.Tree[taxonomy.ID], error) {
	if name := p.Path(Taxonomy); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		t, err := tree.ReadJSON[taxonomy.ID](f)
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", name, err)
		}
		return t, nil
	}

	name := p.Path(TaxNodes)
	if name == "" {
		return nil, fmt.Errorf("taxonomy not defined in project %q", p.name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := taxonomy.ReadNodes(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Counts reads a table of read counts
// as defined in a project.
func (p *Project) Counts() (taxonomy.Table, error) {
	name := p.Path(Counts)
	if name == "" {
		return nil, fmt.Errorf("read counts not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := taxonomy.ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Aggregator returns the aggregator
// of the read counts over the taxonomy
// as defined in a project.
func (p *Project) Aggregator() (*taxonomy.Aggregator, error) {
	taxa, err := p.Taxonomy()
	if err != nil {
		return nil, err
	}
	t, err := p.Counts()
	if err != nil {
		return nil, err
	}
	return taxonomy.New(taxa, t), nil
}

// Bioprojects reads the samples of each bioproject
// as defined in a project.
func (p *Project) Bioprojects() (map[mgs.Bioproject][]mgs.Sample, error) {
	name := p.Path(Bioprojects)
	if name == "" {
		return nil, fmt.Errorf("bioprojects not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bp, err := mgs.ReadBioprojects(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return bp, nil
}

// Samples reads the sample metadata
// as defined in a project.
func (p *Project) Samples() (map[mgs.Sample]mgs.SampleAttributes, error) {
	name := p.Path(Samples)
	if name == "" {
		return nil, fmt.Errorf("samples not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := mgs.ReadSamples(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// MGS reads all the datasets of a project
// and returns the sequencing studies.
func (p *Project) MGS() (*mgs.MGS, error) {
	agg, err := p.Aggregator()
	if err != nil {
		return nil, err
	}
	bp, err := p.Bioprojects()
	if err != nil {
		return nil, err
	}
	s, err := p.Samples()
	if err != nil {
		return nil, err
	}
	return mgs.New(bp, s, agg), nil
}
