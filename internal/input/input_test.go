package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/internal/input"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestReadLines(t *testing.T) {
	path := write(t, "a\r\n\nb\n  \nc")

	all, err := input.ReadLines(path, false)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "", "b", "  ", "c"}, all)

	some, err := input.ReadLines(path, true)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, some)
}

func TestFirstLine(t *testing.T) {
	got, err := input.FirstLine(write(t, "\n\n  D2FE28  \nrest\n"))
	require.NoError(t, err)
	require.Equal(t, "D2FE28", got)

	_, err = input.FirstLine(write(t, "\n \n"))
	require.ErrorIs(t, err, input.ErrNoInput)

	_, err = input.FirstLine(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAll(t *testing.T) {
	got, err := input.ReadAll(write(t, "x\ny\n"))
	require.NoError(t, err)
	require.Equal(t, "x\ny\n", got)
}
