package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/aocrunner/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testLoader(env ...string) *Loader {
	return &Loader{environ: func() []string { return env }}
}

func TestLoadFullFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "aocrunner.hcl", `
inputs {
  dir     = "${env.HOME}/aoc/2023"
  pattern = format("%s{day}.txt", lower("INPUT"))
  example = "example.txt"
}

log {
  level  = upper("debug")
  format = "json"
}

watch {
  debounce = "1s"
}

smart_input_switching = false
max_days              = 25
workers               = 3
`)

	model, err := testLoader("HOME=/home/elf", "EMPTY=").Load(context.Background(), path)
	require.NoError(t, err)

	want := &config.Model{
		Inputs:              config.Inputs{Dir: "/home/elf/aoc/2023", Pattern: "input{day}.txt", Example: "example.txt"},
		SmartInputSwitching: false,
		MaxDays:             25,
		Workers:             3,
		LogLevel:            "debug",
		LogFormat:           "json",
		WatchDebounce:       time.Second,
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("Model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "aocrunner.hcl", `
inputs {
  dir = "puzzles"
}
`)

	model, err := testLoader().Load(context.Background(), path)
	require.NoError(t, err)

	want := config.Default()
	want.Inputs.Dir = "puzzles"
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("Model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLaterFilesOverride(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.hcl", "max_days = 10\nworkers = 2\n")
	second := writeFile(t, dir, "b.hcl", "max_days = 5\n")

	model, err := testLoader().Load(context.Background(), first, second)
	require.NoError(t, err)
	assert.Equal(t, 5, model.MaxDays)
	assert.Equal(t, 2, model.Workers)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errPart string
	}{
		{name: "syntax error", content: "inputs {", errPart: "failed to parse"},
		{name: "unknown attribute", content: "colour = \"red\"\n", errPart: "failed to decode"},
		{name: "wrong type", content: "max_days = \"many\"\n", errPart: "failed to decode"},
		{name: "unknown env variable", content: "inputs {\n  dir = env.NOPE\n}\n", errPart: "failed to decode"},
		{name: "bad duration", content: "watch {\n  debounce = \"soon\"\n}\n", errPart: "watch.debounce"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "aocrunner.hcl", tc.content)
			_, err := testLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := testLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
