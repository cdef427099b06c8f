// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa is a metapackage for commands
// that dealt with taxonomic read counts.
package taxa

import (
	"github.com/js-arias/command"
	"github.com/js-arias/mgsra/cmd/mgsra/taxa/count"
	"github.com/js-arias/mgsra/cmd/mgsra/taxa/unplaced"
)

var Command = &command.Command{
	Usage: "taxa <command> [<argument>...]",
	Short: "commands for taxonomic read counts",
}

func init() {
	Command.Add(count.Command)
	Command.Add(unplaced.Command)
}
