// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package count implements a command to print
// the reads of a taxon in each sample.
package count

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/project"
	"github.com/js-arias/mgsra/taxonomy"
)

var Command = &command.Command{
	Usage: "count [--sum] <project-file> <taxid>...",
	Short: "print the reads of taxa in each sample",
	Long: `
Command count reads the taxonomy and the read counts of a project, and prints
the number of reads assigned to the given taxa, or any of its descendants, in
each sample with reads.

The first argument of the command is the name of the project file. The other
arguments are the taxon IDs.

By default, the output is a tab-delimited table with the columns taxid,
sample, and reads. If the flag --sum is given, the reads of all the given taxa
are added in each sample, and the output will have the columns sample and
reads.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var sumFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&sumFlag, "sum", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting taxon IDs")
	}

	var ids []taxonomy.ID
	for _, a := range args[1:] {
		id, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid taxon ID %q: %v", a, err)
		}
		ids = append(ids, taxonomy.ID(id))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	agg, err := p.Aggregator()
	if err != nil {
		return err
	}

	tab := csv.NewWriter(c.Stdout())
	tab.Comma = '\t'

	if sumFlag {
		sum := make(taxonomy.Counts)
		for _, id := range ids {
			sum.Add(agg.SubtreeCounts(id))
		}
		tab.Write([]string{"sample", "reads"})
		for _, s := range sum.Samples() {
			tab.Write([]string{s, strconv.Itoa(sum[s])})
		}
		tab.Flush()
		return tab.Error()
	}

	tab.Write([]string{"taxid", "sample", "reads"})
	for _, id := range ids {
		cs := agg.SubtreeCounts(id)
		for _, s := range cs.Samples() {
			tab.Write([]string{id.String(), s, strconv.Itoa(cs[s])})
		}
	}
	tab.Flush()
	return tab.Error()
}
