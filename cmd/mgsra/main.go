// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Mgsra is a tool to inspect the data
// used to estimate the relative abundance of pathogens
// in metagenomic sequencing studies.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/cmd/mgsra/add"
	"github.com/js-arias/mgsra/cmd/mgsra/join"
	"github.com/js-arias/mgsra/cmd/mgsra/pathogen"
	"github.com/js-arias/mgsra/cmd/mgsra/prj"
	"github.com/js-arias/mgsra/cmd/mgsra/taxa"
)

var app = &command.Command{
	Usage: "mgsra <command> [<argument>...]",
	Short: "a tool for pathogen relative abundance in MGS data",
}

func init() {
	app.Add(add.Command)
	app.Add(join.Command)
	app.Add(pathogen.Command)
	app.Add(prj.Command)
	app.Add(taxa.Command)
}

func main() {
	app.Main()
}
