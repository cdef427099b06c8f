// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package all imports all the defined pathogens.
package all

import (
	_ "github.com/js-arias/mgsra/pathogens/hbv"
	_ "github.com/js-arias/mgsra/pathogens/hiv"
	_ "github.com/js-arias/mgsra/pathogens/influenza"
	_ "github.com/js-arias/mgsra/pathogens/norovirus"
	_ "github.com/js-arias/mgsra/pathogens/sarscov2"
)
