// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of defined pathogens.
package list

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/pathogen"
	_ "github.com/js-arias/mgsra/pathogens/all"
)

var Command = &command.Command{
	Usage: "list [--long]",
	Short: "print a list of the defined pathogens",
	Long: `
Command list prints the names of the defined pathogens in the standard output.

If the flag --long is given, it will print the characteristics of each
pathogen: the nucleic acid type, the envelope, the selection round, the taxon
IDs of the pathogen, and the number of prevalence and incidence estimates.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var longFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&longFlag, "long", false, "")
}

func run(c *command.Command, args []string) error {
	for _, p := range pathogen.All() {
		if !longFlag {
			fmt.Fprintf(c.Stdout(), "%s\n", p.Name())
			continue
		}

		ch := p.Characteristics()
		taxa := make([]string, 0, len(ch.TaxIDs))
		for _, id := range ch.TaxIDs {
			n := ch.Name(id)
			if n != id.String() {
				n = fmt.Sprintf("%s [%d]", n, id)
			}
			taxa = append(taxa, n)
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\t%s\t%s\t%s\tprevalences: %d\tincidences: %d\n", p.Name(), ch.NucleicAcid, ch.Envelope, ch.Round, strings.Join(taxa, ", "), len(p.Prevalences()), len(p.Incidences()))
	}
	return nil
}
