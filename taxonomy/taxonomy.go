// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxonomy implements the aggregation
// of sequencing read counts
// over a taxonomic tree.
//
// Read counts are recorded only at the taxon
// to which a read was assigned.
// The reads of a taxon
// are the sum of the recorded reads
// of every taxon in its subtree.
package taxonomy

import (
	"slices"
	"strconv"

	"github.com/js-arias/mgsra/tree"
)

// ID is a taxon identifier.
type ID int

// String returns the taxon ID as a string.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Counts is a collection of read counts
// by sample.
type Counts map[string]int

// Add adds the counts of o to c.
func (c Counts) Add(o Counts) {
	for s, n := range o {
		c[s] += n
	}
}

// Total returns the number of reads
// across all samples.
func (c Counts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}
	return n
}

// Samples returns the sorted names of the samples
// with counts.
func (c Counts) Samples() []string {
	s := make([]string, 0, len(c))
	for v := range c {
		s = append(s, v)
	}
	slices.Sort(s)
	return s
}

// Table is a sparse table of read counts
// recorded at each taxon.
type Table map[ID]Counts

// Add adds reads to a taxon in a sample.
func (t Table) Add(id ID, sample string, reads int) {
	c, ok := t[id]
	if !ok {
		c = make(Counts)
		t[id] = c
	}
	c[sample] += reads
}

// Total returns the sum of all counts in the table.
func (t Table) Total() Counts {
	c := make(Counts)
	for _, r := range t {
		c.Add(r)
	}
	return c
}

// Node is a taxon in an aggregation tree,
// with the reads recorded for that taxon.
type Node struct {
	ID    ID
	Reads Counts
}

// An Aggregator sums read counts over the subtrees
// of a taxonomy.
type Aggregator struct {
	root  *tree.Tree[Node]
	table Table
}

// New returns a new aggregator
// from a taxonomy and a table of read counts.
// Taxa in the taxonomy without reads
// have an empty set of counts.
// Counts of taxa not found in the taxonomy
// are never aggregated.
//
// If a taxon ID is repeated in the taxonomy,
// its reads are recorded only at the first node
// in depth-first pre-order.
func New(taxa *tree.Tree[ID], t Table) *Aggregator {
	root := tree.Map(taxa, func(id ID) Node {
		return Node{ID: id, Reads: make(Counts)}
	})
	seen := make(map[ID]bool)
	for n := range root.All() {
		id := n.Value.ID
		if seen[id] {
			continue
		}
		seen[id] = true
		n.Value.Reads.Add(t[id])
	}
	return &Aggregator{
		root:  root,
		table: t,
	}
}

// Root returns the root of the aggregation tree.
func (a *Aggregator) Root() *tree.Tree[Node] {
	return a.root
}

// Total returns the reads by sample
// of the whole table of read counts,
// including the reads of unplaced taxa.
func (a *Aggregator) Total() Counts {
	return a.table.Total()
}

// Taxa returns the IDs of all taxa in the taxonomy,
// in depth-first pre-order.
func (a *Aggregator) Taxa() []ID {
	var ids []ID
	for n := range a.root.Values() {
		ids = append(ids, n.ID)
	}
	return ids
}

// Has returns true if the taxon is in the taxonomy.
func (a *Aggregator) Has(id ID) bool {
	return a.subtree(id) != nil
}

// SubtreeCounts returns the reads by sample
// assigned to a taxon or any of its descendants.
// If the taxon is not in the taxonomy
// it returns an empty set of counts.
func (a *Aggregator) SubtreeCounts(id ID) Counts {
	c := make(Counts)
	st := a.subtree(id)
	if st == nil {
		return c
	}
	for n := range st.Values() {
		c.Add(n.Reads)
	}
	return c
}

func (a *Aggregator) subtree(id ID) *tree.Tree[Node] {
	if a.root == nil {
		return nil
	}
	return a.root.Find(func(n Node) bool { return n.ID == id })
}

// Unplaced returns the IDs of the taxa
// with recorded reads
// that are not found in the taxonomy.
func (a *Aggregator) Unplaced() []ID {
	in := make(map[ID]bool)
	for _, id := range a.Taxa() {
		in[id] = true
	}
	var ids []ID
	for id := range a.table {
		if !in[id] {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
