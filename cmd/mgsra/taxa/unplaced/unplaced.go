// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package unplaced implements a command to print
// the taxa with reads that are not in the taxonomy.
package unplaced

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/project"
	"github.com/js-arias/mgsra/taxonomy"
)

var Command = &command.Command{
	Usage: "unplaced <project-file>",
	Short: "print taxa with reads not found in the taxonomy",
	Long: `
Command unplaced reads the taxonomy and the read counts of a project, and
prints the IDs of the taxa with reads that are not found in the taxonomy,
together with its total number of reads. The reads of these taxa are never
assigned to any pathogen.

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
	taxa, err := p.Taxonomy()
	if err != nil {
		return err
	}
	t, err := p.Counts()
	if err != nil {
		return err
	}

	agg := taxonomy.New(taxa, t)
	for _, id := range agg.Unplaced() {
		fmt.Fprintf(c.Stdout(), "%d\t%d\n", id, t[id].Total())
	}
	return nil
}
