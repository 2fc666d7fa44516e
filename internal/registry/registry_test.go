package registry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/aocrunner/internal/ctxlog"
	"github.com/specialistvlad/aocrunner/internal/dayid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v int) Routine {
	return func([]string) (int, error) { return v, nil }
}

type testModule struct {
	day int
}

func (m testModule) Register(r *Registry) {
	r.Register(m.day, dayid.PartOne, constant(m.day))
}

func TestResolve(t *testing.T) {
	reg := New()
	reg.Register(1, dayid.PartOne, constant(11))

	fn, ok := reg.Resolve(1, dayid.PartOne)
	require.True(t, ok)
	got, err := fn(nil)
	require.NoError(t, err)
	assert.Equal(t, 11, got)

	fn, ok = reg.Resolve(1, dayid.PartTwo)
	assert.False(t, ok)
	assert.Nil(t, fn)

	_, ok = reg.Resolve(2, dayid.PartOne)
	assert.False(t, ok)
}

func TestRegisterPanics(t *testing.T) {
	reg := New()
	reg.Register(1, dayid.PartOne, constant(1))

	assert.Panics(t, func() { reg.Register(1, dayid.PartOne, constant(2)) }, "duplicate")
	assert.Panics(t, func() { reg.Register(0, dayid.PartOne, constant(2)) }, "day zero")
	assert.Panics(t, func() { reg.Register(2, dayid.Part(3), constant(2)) }, "part three")
	assert.Panics(t, func() { reg.Register(2, dayid.PartOne, nil) }, "nil routine")
}

func TestKeysAreOrdered(t *testing.T) {
	reg := New()
	reg.RegisterModules(testModule{day: 3}, testModule{day: 1})
	reg.Register(1, dayid.PartTwo, constant(12))
	reg.Register(2, dayid.PartOne, constant(2))

	want := []dayid.ID{
		dayid.New(1, dayid.PartOne),
		dayid.New(1, dayid.PartTwo),
		dayid.New(2, dayid.PartOne),
		dayid.New(3, dayid.PartOne),
	}
	if diff := cmp.Diff(want, reg.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, reg.Len())
}

func TestValidate(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	t.Run("contiguous days pass", func(t *testing.T) {
		reg := New()
		reg.RegisterModules(testModule{day: 1}, testModule{day: 2})
		require.NoError(t, reg.Validate(ctx, 26))
	})

	t.Run("part two without part one fails", func(t *testing.T) {
		reg := New()
		reg.Register(1, dayid.PartOne, constant(1))
		reg.Register(2, dayid.PartTwo, constant(2))
		err := reg.Validate(ctx, 26)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "day 2 registers part two without part one")
	})

	t.Run("gap only warns", func(t *testing.T) {
		buf.Reset()
		reg := New()
		reg.RegisterModules(testModule{day: 1}, testModule{day: 3})
		require.NoError(t, reg.Validate(ctx, 26))
		assert.Contains(t, buf.String(), "missing_day=2")
	})
}
