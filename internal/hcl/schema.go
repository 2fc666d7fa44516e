package hcl

// fileRoot is the decoding target for a whole configuration file. Every
// field is optional so that a file only overrides what it sets.
type fileRoot struct {
	Inputs              *inputsBlock `hcl:"inputs,block"`
	Log                 *logBlock    `hcl:"log,block"`
	Watch               *watchBlock  `hcl:"watch,block"`
	SmartInputSwitching *bool        `hcl:"smart_input_switching,optional"`
	MaxDays             *int         `hcl:"max_days,optional"`
	Workers             *int         `hcl:"workers,optional"`
}

type inputsBlock struct {
	Dir     *string `hcl:"dir,optional"`
	Pattern *string `hcl:"pattern,optional"`
	Example *string `hcl:"example,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type watchBlock struct {
	Debounce *string `hcl:"debounce,optional"`
}
