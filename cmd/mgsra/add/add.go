// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add dataset files
// to a mgsra project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/project"
)

var Command = &command.Command{
	Usage: `add [--taxonomy <file>] [--taxnodes <file>]
	[--counts <file>] [--bioprojects <file>] [--samples <file>]
	<project-file>`,
	Short: "add dataset files to a mgsra project",
	Long: `
Command add sets the dataset files of a mgsra project.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

Each dataset file is set with a flag named after the dataset keyword:

	--taxonomy     the taxonomy, as a JSON nested list
	--taxnodes     the taxonomy, as a table of taxa and parents
	--counts       the read counts of each taxon in each sample
	--bioprojects  the samples of each bioproject
	--samples      the metadata of each sample

The taxonomy is defined either with --taxonomy or with --taxnodes, setting
one of them removes the other from the project. Files are checked before they
are added to the project. See 'mgsra help
projects' for a description of the datasets.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var files = map[project.Dataset]*string{
	project.Taxonomy:    new(string),
	project.TaxNodes:    new(string),
	project.Counts:      new(string),
	project.Bioprojects: new(string),
	project.Samples:     new(string),
}

func setFlags(c *command.Command) {
	for set, v := range files {
		c.Flags().StringVar(v, string(set), "", "")
	}
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if *files[project.Taxonomy] != "" && *files[project.TaxNodes] != "" {
		return c.UsageError("only one of --taxonomy or --taxnodes can be set")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	for set, v := range files {
		if *v == "" {
			continue
		}
		p.Add(set, *v)
	}
	if err := check(p); err != nil {
		return err
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

// check reads the dataset files
// defined in the project.
func check(p *project.Project) error {
	if p.Path(project.Taxonomy) != "" || p.Path(project.TaxNodes) != "" {
		if _, err := p.Taxonomy(); err != nil {
			return err
		}
	}
	if p.Path(project.Counts) != "" {
		if _, err := p.Counts(); err != nil {
			return err
		}
	}
	if p.Path(project.Bioprojects) != "" {
		if _, err := p.Bioprojects(); err != nil {
			return err
		}
	}
	if p.Path(project.Samples) != "" {
		if _, err := p.Samples(); err != nil {
			return err
		}
	}
	return nil
}
