// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of mgsra project files.
//
// An mgsra project is a tab-delimited file (TSV)
// used to store the paths of the taxonomy,
// read counts,
// and sample metadata files
// required by mgsra commands.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the taxonomy,
	// as a JSON nested list of taxon IDs.
	Taxonomy Dataset = "taxonomy"

	// File for the taxonomy,
	// as a table of taxon IDs and its parents.
	// It is used if the taxonomy dataset is not defined.
	TaxNodes Dataset = "taxnodes"

	// File for the read counts
	// assigned to each taxon in each sample.
	Counts Dataset = "counts"

	// File for the samples of each bioproject.
	Bioprojects Dataset = "bioprojects"

	// File for the metadata of each sample.
	Samples Dataset = "samples"
)

var datasets = map[Dataset]bool{
	Taxonomy:    true,
	TaxNodes:    true,
	Counts:      true,
	Bioprojects: true,
	Samples:     true,
}

// alternative returns the dataset
// that cannot be defined together with set.
func alternative(set Dataset) Dataset {
	switch set {
	case Taxonomy:
		return TaxNodes
	case TaxNodes:
		return Taxonomy
	}
	return ""
}

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		name:  "",
		paths: make(map[Dataset]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Here is an example file:
//
//	# mgsra project files
//	dataset	path
//	taxonomy	taxonomy.json
//	counts	counts.tab
//	bioprojects	bioprojects.json
//	samples	samples.json
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	p := New()
	p.name = name
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "dataset"
		s := Dataset(strings.ToLower(strings.TrimSpace(row[fields[f]])))
		if s == "" {
			return nil, fmt.Errorf("on file %q: on row %d: field %q: empty dataset", name, ln, f)
		}
		if !datasets[s] {
			return nil, fmt.Errorf("on file %q: on row %d: field %q: unknown dataset %q", name, ln, f, s)
		}

		f = "path"
		path := strings.TrimSpace(row[fields[f]])
		if path == "" {
			continue
		}
		if _, dup := p.paths[s]; dup {
			return nil, fmt.Errorf("on file %q: on row %d: dataset %q already defined", name, ln, s)
		}
		if alt := alternative(s); p.paths[alt] != "" {
			return nil, fmt.Errorf("on file %q: on row %d: dataset %q already defined as %q", name, ln, s, alt)
		}
		p.paths[s] = path
	}

	return p, nil
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
// An empty path removes the dataset.
//
// As the taxonomy can be defined either
// as a nested list or as a table of nodes,
// adding one of them
// removes the other.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	if alt := alternative(set); alt != "" {
		delete(p.paths, alt)
	}
	p.paths[set] = path
	return prev
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# mgsra project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	sets := p.Sets()
	for _, s := range sets {
		row := []string{
			string(s),
			p.paths[s],
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}
