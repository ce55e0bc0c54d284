package tuning

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ihist/errs"
)

func TestLoad(t *testing.T) {
	t.Run("overrides base entries", func(t *testing.T) {
		doc := `
name: bench-box
base: generic
parallel_threshold: 1000
entries:
  - bits: 8
    format: mono
    stripes: 16
    unroll: 8
  - bits: 12
    format: abc
    masked: true
    stripes: 2
    unroll: 2
    grain_size: 4096
    prefer_branchless: true
`
		tbl, err := Load(strings.NewReader(doc))
		require.NoError(t, err)
		require.Equal(t, "bench-box", tbl.Name)
		require.Equal(t, 1000, tbl.ParallelThreshold)
		require.Equal(t, Parameters{Stripes: 16, Unroll: 8, GrainSize: DefaultGrain8},
			tbl.Lookup(Key{Class8, FormatMono, false}))
		require.Equal(t, Parameters{Stripes: 2, Unroll: 2, GrainSize: 4096, PreferBranchless: true},
			tbl.Lookup(Key{Class12, FormatABC, true}))
		require.Equal(t, ForArch("generic").Lookup(Key{Class16, FormatMono, false}),
			tbl.Lookup(Key{Class16, FormatMono, false}), "untouched entries come from the base")
	})

	t.Run("empty document", func(t *testing.T) {
		tbl, err := Load(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default().Len(), tbl.Len())
	})

	t.Run("base none", func(t *testing.T) {
		tbl, err := Load(strings.NewReader("base: none\nentries: []\n"))
		require.NoError(t, err)
		require.Equal(t, 0, tbl.Len())
		require.Equal(t, DefaultParallelThreshold, tbl.ParallelThreshold)
	})

	errorCases := map[string]string{
		"unknown field":      "entries:\n  - bits: 8\n    format: mono\n    stripez: 2\n",
		"bad bits":           "entries:\n  - bits: 10\n    format: mono\n",
		"bad format":         "entries:\n  - bits: 8\n    format: rgb\n",
		"bad stripes":        "entries:\n  - bits: 8\n    format: mono\n    stripes: -1\n",
		"bad base":           "base: sparc\n",
		"negative threshold": "parallel_threshold: -5\n",
		"not yaml":           "entries: [",
	}
	for name, doc := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.ErrorIs(t, err, errs.ErrInvalidTuning)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pi4.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel_threshold: 64\n"), 0o600))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "pi4.yaml", tbl.Name)
	require.Equal(t, 64, tbl.ParallelThreshold)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	orig := ForArch("amd64")
	orig.ParallelThreshold = 12345

	var buf bytes.Buffer
	require.NoError(t, orig.WriteYAML(&buf))
	require.Contains(t, buf.String(), "base: none")

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, orig.Name, loaded.Name)
	require.Equal(t, orig.ParallelThreshold, loaded.ParallelThreshold)
	require.Equal(t, orig.Keys(), loaded.Keys())
	for _, k := range orig.Keys() {
		require.Equal(t, orig.Lookup(k), loaded.Lookup(k), "%s", k)
	}
}
