package unhandled_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WinPooh32/expected/unhandled"
)

func mustLoad(t *testing.T, dir string, patterns ...string) *unhandled.Checker {
	t.Helper()

	chk, err := unhandled.NewChecker()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = chk.Load(ctx, dir, patterns...)
	require.NoError(t, err)

	return chk
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	chk := mustLoad(t, "internal/_testdata/dropped", "./...")

	findings, err := chk.Check(context.Background(), 1)
	require.NoError(t, err)

	got := make([]string, 0, len(findings))

	for _, f := range findings {
		f.Pos.Filename = filepath.Base(f.Pos.Filename)
		got = append(got, f.String())
	}

	// Findings from regular files appear exactly once even though the test
	// variant of the package repeats them; test files are scanned through
	// the variant only.
	want := []string{
		`dropped.go:18:2: unhandled expected.Result[int, error]`,
		`dropped.go:20:5: unhandled expected.Result[int, error]`,
		`dropped.go:22:8: unhandled expected.Result[int, error]`,
		`dropped.go:24:2: unhandled expected.Result[int, error]`,
		`extra_test.go:6:2: unhandled expected.Result[int, error]`,
	}

	assert.Equal(t, want, got)
}

func TestChecker_CheckCanceled(t *testing.T) {
	t.Parallel()

	chk := mustLoad(t, "internal/_testdata/dropped", "./...")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := chk.Check(ctx, 1)

	require.ErrorIs(t, err, context.Canceled)
}

func TestChecker_LoadBadPattern(t *testing.T) {
	t.Parallel()

	chk, err := unhandled.NewChecker()
	require.NoError(t, err)

	_, err = chk.Load(context.Background(), "internal/_testdata/dropped", "./nosuchdir")

	assert.Error(t, err)
}
