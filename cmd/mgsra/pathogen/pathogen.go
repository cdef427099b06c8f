// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pathogen is a metapackage for commands
// that dealt with pathogens and its estimates.
package pathogen

import (
	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/cmd/mgsra/pathogen/estimates"
	"github.com/js-arias/mgsra/cmd/mgsra/pathogen/list"
)

var Command = &command.Command{
	Usage: "pathogen <command> [<argument>...]",
	Short: "commands for pathogens",
}

func init() {
	Command.Add(estimates.Command)
	Command.Add(list.Command)
}
