// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/mgs"
	"github.com/js-arias/mgsra/project"
	"github.com/js-arias/mgsra/taxonomy"
	"github.com/js-arias/mgsra/tree"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a mgsra project and prints the information of the different
project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	w := c.Stdout()
	var taxa *tree.Tree[taxonomy.ID]
	if p.Path(project.Taxonomy) != "" || p.Path(project.TaxNodes) != "" {
		taxa, err = p.Taxonomy()
		if err != nil {
			return err
		}
		printTaxonomy(w, p, taxa)
	}

	if p.Path(project.Counts) != "" {
		t, err := p.Counts()
		if err != nil {
			return err
		}
		printCounts(w, p.Path(project.Counts), t, taxa)
	}

	var samples map[mgs.Sample]mgs.SampleAttributes
	if name := p.Path(project.Samples); name != "" {
		samples, err = p.Samples()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Samples:\n")
		fmt.Fprintf(w, "\tfile: %s\n", name)
		fmt.Fprintf(w, "\tsamples: %d\n", len(samples))
		fmt.Fprintf(w, "\n")
	}

	if name := p.Path(project.Bioprojects); name != "" {
		bp, err := p.Bioprojects()
		if err != nil {
			return err
		}
		printBioprojects(w, name, bp, samples)
	}

	return nil
}

func printTaxonomy(w io.Writer, p *project.Project, taxa *tree.Tree[taxonomy.ID]) {
	name := p.Path(project.Taxonomy)
	if name == "" {
		name = p.Path(project.TaxNodes)
	}

	fmt.Fprintf(w, "Taxonomy:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\troot: %d\n", taxa.Value)
	fmt.Fprintf(w, "\ttaxa: %d\n", taxa.Len())
	fmt.Fprintf(w, "\tdepth: %d\n", taxa.Depth())
	fmt.Fprintf(w, "\n")
}

func printCounts(w io.Writer, name string, t taxonomy.Table, taxa *tree.Tree[taxonomy.ID]) {
	total := t.Total()

	fmt.Fprintf(w, "Read counts:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\ttaxa: %d\n", len(t))
	fmt.Fprintf(w, "\tsamples: %d\n", len(total))
	fmt.Fprintf(w, "\treads: %d\n", total.Total())
	if taxa != nil {
		agg := taxonomy.New(taxa, t)
		fmt.Fprintf(w, "\tunplaced taxa: %d\n", len(agg.Unplaced()))
	}
	fmt.Fprintf(w, "\n")
}

func printBioprojects(w io.Writer, name string, bp map[mgs.Bioproject][]mgs.Sample, samples map[mgs.Sample]mgs.SampleAttributes) {
	ids := make([]mgs.Bioproject, 0, len(bp))
	for id := range bp {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintf(w, "Bioprojects:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	for _, id := range ids {
		var noMeta int
		if samples != nil {
			for _, s := range bp[id] {
				if _, ok := samples[s]; !ok {
					noMeta++
				}
			}
		}
		fmt.Fprintf(w, "\t%s: %d samples", id, len(bp[id]))
		if noMeta > 0 {
			fmt.Fprintf(w, " (%d without metadata)", noMeta)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\n")
}
