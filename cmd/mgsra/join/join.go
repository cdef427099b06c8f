// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package join implements a command to print
// the samples of a bioproject
// with its pathogen reads
// and its applicable estimates.
package join

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/estimate"
	"github.com/js-arias/mgsra/fit"
	"github.com/js-arias/mgsra/mgs"
	"github.com/js-arias/mgsra/pathogen"
	_ "github.com/js-arias/mgsra/pathogens/all"
	"github.com/js-arias/mgsra/predictor"
	"github.com/js-arias/mgsra/project"
)

var Command = &command.Command{
	Usage: `join [--enrichment <method>] [--incidence]
	<project-file> <pathogen> <bioproject>`,
	Short: "print samples with reads and estimates",
	Long: `
Command join reads the sequencing studies of a project, and prints the samples
of a bioproject with the reads of a pathogen, the total reads of the sample,
and the estimates of the pathogen applicable to the sample. This is the data
used to fit the relative abundance of a pathogen.

The first argument of the command is the name of the project file. The second
argument is the name of the pathogen (use 'mgsra pathogen list' to see the
defined pathogens). The third argument is the bioproject.

By default, all the samples of the bioproject are used. Use the flag
--enrichment to use only the samples with a given enrichment method. Valid
methods are "viral" and "panel". Samples treated with EDTA are always
excluded.

By default, the prevalence estimates of the pathogen are used. Use the flag
--incidence to use the incidence estimates.

The output is a tab-delimited table with the columns sample, date, location,
estimate (as a rate per 100 000 people), viral (the reads of the pathogen),
and total (the total reads of the sample). If a sample has no applicable
estimates, or more than one, the estimate column will be empty, or it will
contain all the estimates separated by commas. Such samples are reported, and
they are not counted in the pooled relative abundance printed at the end of
the output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var enrichFlag string
var incidenceFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&enrichFlag, "enrichment", "", "")
	c.Flags().BoolVar(&incidenceFlag, "incidence", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 3 {
		return c.UsageError("expecting project file, pathogen, and bioproject")
	}

	var enrichment *mgs.Enrichment
	if enrichFlag != "" {
		e := mgs.Enrichment(strings.ToLower(enrichFlag))
		if e != mgs.Viral && e != mgs.Panel {
			return c.UsageError(fmt.Sprintf("invalid enrichment method %q", enrichFlag))
		}
		enrichment = &e
	}

	pt, ok := pathogen.Lookup(args[1])
	if !ok {
		return fmt.Errorf("unknown pathogen %q", args[1])
	}
	bp := mgs.Bioproject(args[2])

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	m, err := p.MGS()
	if err != nil {
		return err
	}
	if _, ok := m.Bioprojects[bp]; !ok {
		return fmt.Errorf("bioproject %q not found in project %q", bp, args[0])
	}
	log.Printf("join: %s: %d samples in bioproject %s", pt.Name(), len(m.Bioprojects[bp]), bp)

	if incidenceFlag {
		return write(c.Stdout(), pt.Name(), bp, predictor.JoinIncidences(m, pt, bp, enrichment))
	}
	return write(c.Stdout(), pt.Name(), bp, predictor.JoinPrevalences(m, pt, bp, enrichment))
}

var header = []string{
	"sample",
	"date",
	"location",
	"estimate",
	"viral",
	"total",
}

func write[E predictor.Estimate](w io.Writer, name string, bp mgs.Bioproject, rows []predictor.Row[E]) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, r := range rows {
		loc := estimate.Location{
			Country: r.Attrs.Country,
			State:   r.Attrs.State,
			County:  r.Attrs.County,
		}
		est := make([]string, 0, len(r.Estimates))
		for _, e := range r.Estimates {
			est = append(est, strconv.FormatFloat(e.Rate(), 'g', 6, 64))
		}
		row := []string{
			string(r.Sample),
			r.Attrs.Date,
			loc.String(),
			strings.Join(est, ","),
			strconv.Itoa(r.ViralReads),
			strconv.Itoa(r.TotalReads),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
	}
	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}

	in, skipped := fit.NewInput(name, bp, rows)
	for _, s := range skipped {
		log.Printf("join: %s: sample %s skipped: %s", name, s.Sample, s.Reason)
	}
	fmt.Fprintf(w, "# samples: %d\n", in.Len())
	fmt.Fprintf(w, "# pooled relative abundance: %.6g\n", fit.PooledRelativeAbundance(in))
	return nil
}
