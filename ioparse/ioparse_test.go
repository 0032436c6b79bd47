package ioparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fgeorgatos/mpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	v, err := ParseFile(path, mpc.String("hello"), nil)
	require.Nil(t, err)
	assert.Equal(t, "hello", v)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt"), mpc.String("hello"), nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Message(), "missing.txt")
}

func TestParseFileParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("goodbye"), 0o644))

	_, err := ParseFile(path, mpc.String("hello"), nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Message(), path)
}
