package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arith.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
bench:
  op: factorial
  impl: cgo
  workers: 3
  duration: 1500ms
  n: 21
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Bench.Op = "factorial"
	want.Bench.Impl = "cgo"
	want.Bench.Workers = 3
	want.Bench.Duration = 1500 * time.Millisecond
	want.Bench.N = 21

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, "bench:\n  threads: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threads")
}

func TestLoadRejectsOutOfRangeOperand(t *testing.T) {
	_, err := Load(writeConfig(t, "bench:\n  a: 3000000000\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
