package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/aocrunner/internal/app"
	"github.com/specialistvlad/aocrunner/internal/input"
	"github.com/specialistvlad/aocrunner/internal/puzzle"
	"github.com/specialistvlad/aocrunner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	env := testutil.Env(map[string]string{"AOCRUNNER_CONFIG": "/etc/aocrunner.hcl"})

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name:           "No arguments selects build mode",
			args:           []string{},
			expectedConfig: &app.Config{Mode: app.ModeBuild, ConfigPaths: []string{"/etc/aocrunner.hcl"}},
		},
		{
			name:           "Debug day",
			args:           []string{"--debug-day"},
			expectedConfig: &app.Config{Mode: app.ModeDebugDay, ConfigPaths: []string{"/etc/aocrunner.hcl"}},
		},
		{
			name:           "Debug day part",
			args:           []string{"--debug-day-part"},
			expectedConfig: &app.Config{Mode: app.ModeDebugDayPart, ConfigPaths: []string{"/etc/aocrunner.hcl"}},
		},
		{
			name:           "Watch",
			args:           []string{"--watch"},
			expectedConfig: &app.Config{Mode: app.ModeWatch, ConfigPaths: []string{"/etc/aocrunner.hcl"}},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "--debug-day-part")
			},
		},
		{
			name:      "Two arguments is a usage error",
			args:      []string{"--debug-day", "--debug-day-part"},
			expectErr: true,
		},
		{
			name:      "Unknown flag is a usage error",
			args:      []string{"--fast"},
			expectErr: true,
		},
		{
			name:      "Positional argument is a usage error",
			args:      []string{"3"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			appConfig, shouldExit, err := Parse(tc.args, out, env)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, ExitUsage, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, appConfig, cmpopts.IgnoreFields(app.Config{}, "LookupEnv")); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}

func TestParseWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	appConfig, _, err := Parse(nil, &bytes.Buffer{}, testutil.Env(nil))
	require.NoError(t, err)
	assert.Empty(t, appConfig.ConfigPaths)
}

func TestFromError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{name: "exit error passes through", err: &ExitError{Code: ExitUsage, Message: "bad"}, code: ExitUsage},
		{name: "no days", err: puzzle.ErrNoDays, code: ExitNoDays},
		{name: "no input", err: fmt.Errorf("day 3: %w", input.ErrNoValidInput), code: ExitNoInput},
		{name: "malformed routine", err: fmt.Errorf("d1p1: %w", puzzle.ErrMalformedRoutine), code: ExitFailure},
		{name: "anything else", err: errors.New("boom"), code: ExitFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exitErr := FromError(tc.err)
			assert.Equal(t, tc.code, exitErr.Code)
			assert.Equal(t, tc.err.Error(), exitErr.Message)
		})
	}
}
