// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package estimates implements a command to print
// the estimates of a pathogen.
package estimates

import (
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/pathogen"
	_ "github.com/js-arias/mgsra/pathogens/all"
)

var Command = &command.Command{
	Usage: "estimates [--history] <pathogen>",
	Short: "print the estimates of a pathogen",
	Long: `
Command estimates prints the prevalence and incidence estimates of a pathogen
in the standard output. For each estimate, it prints its value, its location,
its date range, and the sources used to derive the estimate.

The argument of the command is the name of the pathogen. Use 'mgsra pathogen
list' to see the defined pathogens.

If the flag --history is given, it will print the derivation history of each
estimate, starting from the estimate and indenting its inputs.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var historyFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&historyFlag, "history", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting pathogen name")
	}
	p, ok := pathogen.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown pathogen %q", args[0])
	}

	w := c.Stdout()
	for _, e := range p.Prevalences() {
		printEstimate(w, "prevalence", e)
	}
	for _, e := range p.Incidences() {
		printEstimate(w, "incidence", e)
	}
	return nil
}

func printEstimate(w io.Writer, kind string, v estimate.Value) {
	fmt.Fprintf(w, "%s: %s\n", kind, describe(v))
	fmt.Fprintf(w, "\tlocation: %s\n", estimate.SummarizeLocation(v))
	fmt.Fprintf(w, "\tdate: %s\n", estimate.SummarizeDate(v))
	for _, s := range estimate.Sources(v) {
		fmt.Fprintf(w, "\tsource: %s\n", s)
	}
	if historyFlag {
		fmt.Fprintf(w, "\thistory:\n")
		printHistory(w, v, 2)
	}
	fmt.Fprintf(w, "\n")
}

func printHistory(w io.Writer, v estimate.Value, depth int) {
	var target string
	if estimate.IsTarget(v) {
		target = " [target]"
	}
	fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("\t", depth), describe(v), target)
	for _, in := range estimate.Inputs(v) {
		printHistory(w, in, depth+1)
	}
}

func describe(v estimate.Value) string {
	switch e := v.(type) {
	case estimate.Population:
		return fmt.Sprintf("population %.0f [%s]", e.People, e.Tag)
	case estimate.Scalar:
		return fmt.Sprintf("scalar %.4g", e.Scalar)
	case estimate.Prevalence:
		return e.String()
	case estimate.PrevalenceAbsolute:
		return fmt.Sprintf("%.0f infections [%s]", e.Infections, e.Tag)
	case estimate.IncidenceRate:
		return e.String()
	case estimate.IncidenceAbsolute:
		return fmt.Sprintf("%.0f infections per year [%s]", e.AnnualInfections, e.Tag)
	case estimate.SheddingDuration:
		return fmt.Sprintf("shedding for %.4g days", e.Days)
	}
	return fmt.Sprintf("%v", v)
}
