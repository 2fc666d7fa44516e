package app

import (
	"github.com/specialistvlad/aocrunner/internal/registry"
	"github.com/specialistvlad/aocrunner/modules/day01"
	"github.com/specialistvlad/aocrunner/modules/day02"
	"github.com/specialistvlad/aocrunner/modules/day03"
)

// coreModules is the definitive list of all solution modules that are
// compiled into the aocrunner binary. Add a new day here after creating its
// package under modules/.
var coreModules = []registry.Module{
	&day01.Module{},
	&day02.Module{},
	&day03.Module{},
}
