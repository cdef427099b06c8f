// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pathogen defines the characteristics
// and epidemiological estimates of a pathogen,
// and a registry of known pathogens.
//
// Each pathogen is defined in its own package,
// that registers the pathogen during initialization.
// To use all the defined pathogens,
// import the package github.com/js-arias/mgsra/pathogens/all.
package pathogen

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/taxonomy"
)

// NucleicAcid is the type of the genetic material
// of a pathogen.
type NucleicAcid string

// Valid nucleic acid types.
const (
	DNA NucleicAcid = "DNA"
	RNA NucleicAcid = "RNA"
)

// Envelope indicates if a virus is enveloped.
type Envelope string

// Valid envelope types.
const (
	Enveloped    Envelope = "enveloped"
	NonEnveloped Envelope = "non-enveloped"
)

// Round is the selection round
// in which a pathogen was included in the analysis.
type Round string

// Selection rounds.
const (
	Round1 Round = "round-1"
	Round2 Round = "round-2"
)

// Chars are the characteristics of a pathogen.
type Chars struct {
	NucleicAcid NucleicAcid
	Envelope    Envelope

	// TaxIDs are the taxon IDs of the pathogen.
	// A pathogen can have more than one taxon,
	// for example influenza A and influenza B.
	TaxIDs []taxonomy.ID

	// Names are optional names for each taxon.
	Names map[taxonomy.ID]string

	Round Round
}

// Name returns the name of a taxon of the pathogen.
// If the taxon has no name,
// it returns the taxon ID.
func (c Chars) Name(id taxonomy.ID) string {
	if n, ok := c.Names[id]; ok {
		return n
	}
	return id.String()
}

// A Pathogen is a pathogen with a set
// of epidemiological estimates.
type Pathogen interface {
	// Name returns the name of the pathogen.
	Name() string

	// Characteristics returns the characteristics
	// of the pathogen.
	Characteristics() Chars

	// Prevalences returns the prevalence estimates
	// of the pathogen.
	Prevalences() []estimate.Prevalence

	// Incidences returns the incidence estimates
	// of the pathogen.
	Incidences() []estimate.IncidenceRate
}

var (
	mu       sync.Mutex
	registry = make(map[string]Pathogen)
)

// Register adds a pathogen to the registry.
// It panics if the pathogen name is empty
// or a pathogen with the same name
// was already registered.
func Register(p Pathogen) {
	name := canon(p.Name())
	if name == "" {
		panic("pathogen: registering a pathogen without name")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("pathogen: pathogen %q already registered", name))
	}
	registry[name] = p
}

// Lookup returns a pathogen by its name.
func Lookup(name string) (Pathogen, bool) {
	mu.Lock()
	defer mu.Unlock()
	p, ok := registry[canon(name)]
	return p, ok
}

// Names returns the names of the registered pathogens.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// All returns the registered pathogens
// sorted by name.
func All() []Pathogen {
	names := Names()
	ps := make([]Pathogen, 0, len(names))
	for _, n := range names {
		p, _ := Lookup(n)
		ps = append(ps, p)
	}
	return ps
}

func canon(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
