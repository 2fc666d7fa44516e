package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/aocrunner/internal/config"
	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL configuration loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// Load parses each path in order and merges it onto config.Default().
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.Default()
	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(file.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}

		if err := merge(model, &root); err != nil {
			return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
		}
		logger.Debug("Configuration file merged.", "file", path)
	}

	return model, nil
}

// evalContext exposes the environment as `env.NAME` plus a few string helpers.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"lower":     stdlib.LowerFunc,
			"upper":     stdlib.UpperFunc,
			"format":    stdlib.FormatFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

// merge copies every value the file set onto the model.
func merge(model *config.Model, root *fileRoot) error {
	if in := root.Inputs; in != nil {
		setIf(&model.Inputs.Dir, in.Dir)
		setIf(&model.Inputs.Pattern, in.Pattern)
		setIf(&model.Inputs.Example, in.Example)
	}
	if lg := root.Log; lg != nil {
		if lg.Level != nil {
			model.LogLevel = strings.ToLower(*lg.Level)
		}
		if lg.Format != nil {
			model.LogFormat = strings.ToLower(*lg.Format)
		}
	}
	if w := root.Watch; w != nil && w.Debounce != nil {
		d, err := time.ParseDuration(*w.Debounce)
		if err != nil {
			return fmt.Errorf("watch.debounce: %w", err)
		}
		model.WatchDebounce = d
	}
	setIf(&model.SmartInputSwitching, root.SmartInputSwitching)
	setIf(&model.MaxDays, root.MaxDays)
	setIf(&model.Workers, root.Workers)
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
