// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/js-arias/mgsra/tree"
)

var tableHeader = []string{
	"taxid",
	"sample",
	"reads",
}

// ReadTable reads a table of read counts
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxid, the ID of the taxon assigned to the reads
//   - sample, the sample identifier
//   - reads, the number of reads
//
// Here is an example file:
//
//	taxid	sample	reads
//	10239	SRR14530724	18
//	11320	SRR14530724	3
//	11320	SRR14530726	1
//
// Repeated taxon-sample pairs are added.
func ReadTable(r io.Reader) (Table, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	fields, err := readHeader(tab, tableHeader)
	if err != nil {
		return nil, err
	}

	t := make(Table)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxid"
		id, err := parseID(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "sample"
		sample := strings.TrimSpace(row[fields[f]])
		if sample == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty sample", ln, f)
		}

		f = "reads"
		reads, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if reads < 0 {
			return nil, fmt.Errorf("on row %d: field %q: negative reads %d", ln, f, reads)
		}

		t.Add(id, sample, reads)
	}
	return t, nil
}

// TSV writes a table of read counts
// as a TSV file.
func (t Table) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# taxon read counts\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tab := csv.NewWriter(bw)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(tableHeader); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	ids := make([]ID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		c := t[id]
		for _, s := range c.Samples() {
			row := []string{
				id.String(),
				s,
				strconv.Itoa(c[s]),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

var nodesHeader = []string{
	"taxid",
	"parent",
}

// ReadNodes reads a taxonomy
// from a TSV file of parent-child relations.
//
// The TSV file must contain the following fields:
//
//   - taxid, the ID of the taxon
//   - parent, the ID of the parent taxon
//
// The root is the only taxon
// with parent 0,
// or with itself as parent.
// Here is an example file:
//
//	taxid	parent
//	10239	10239
//	11308	10239
//	11320	11308
//	11520	11308
//
// Children are ordered by ID.
// A table with cycles,
// more than one root,
// or undefined parents
// is an error.
func ReadNodes(r io.Reader) (*tree.Tree[ID], error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	fields, err := readHeader(tab, nodesHeader)
	if err != nil {
		return nil, err
	}

	g := simple.NewDirectedGraph()
	parent := make(map[ID]ID)
	var roots []ID
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxid"
		id, err := parseID(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if _, dup := parent[id]; dup {
			return nil, fmt.Errorf("on row %d: taxon %d already defined", ln, id)
		}

		f = "parent"
		p, err := parseID(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		parent[id] = p

		if g.Node(int64(id)) == nil {
			g.AddNode(simple.Node(id))
		}
		if p == 0 || p == id {
			roots = append(roots, id)
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(p), simple.Node(id)))
	}

	switch len(roots) {
	case 0:
		if len(parent) == 0 {
			return nil, errors.New("empty taxonomy")
		}
		return nil, errors.New("taxonomy without root")
	case 1:
	default:
		slices.Sort(roots)
		return nil, fmt.Errorf("taxonomy with multiple roots: %v", roots)
	}

	for id, p := range parent {
		if p == 0 || p == id {
			continue
		}
		if _, ok := parent[p]; !ok {
			return nil, fmt.Errorf("parent %d of taxon %d: undefined taxon", p, id)
		}
	}
	if _, err := topo.Sort(g); err != nil {
		return nil, fmt.Errorf("taxonomy is not a tree: %v", err)
	}

	return buildTree(g, roots[0]), nil
}

func buildTree(g *simple.DirectedGraph, id ID) *tree.Tree[ID] {
	t := tree.New(id)
	children := graph.NodesOf(g.From(int64(id)))
	ids := make([]ID, 0, len(children))
	for _, c := range children {
		ids = append(ids, ID(c.ID()))
	}
	slices.Sort(ids)
	for _, c := range ids {
		t.Children = append(t.Children, buildTree(g, c))
	}
	return t
}

func readHeader(tab *csv.Reader, header []string) (map[string]int, error) {
	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}
	return fields, nil
}

func parseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("invalid taxon ID %d", id)
	}
	return ID(id), nil
}
