package tuning

import (
	"maps"
	"runtime"
	"slices"
)

// DefaultParallelThreshold is the pixel count at and above which the request
// facade counts in parallel.
const DefaultParallelThreshold = 1 << 22

// Default grain sizes in pixels, per class.
const (
	DefaultGrain8  = 1 << 14
	DefaultGrain16 = 1 << 17
)

// Table maps tuning keys to parameters.
//
// A Table is immutable once built; Lookup is safe for concurrent use.
type Table struct {
	// Name identifies the table (platform or file name).
	Name string
	// ParallelThreshold is the minimum ROI pixel count for parallel counting.
	ParallelThreshold int

	entries map[Key]Parameters
}

// NewTable creates an empty table. Lookups on missing keys return fallback
// parameters.
func NewTable(name string) *Table {
	return &Table{
		Name:              name,
		ParallelThreshold: DefaultParallelThreshold,
		entries:           make(map[Key]Parameters),
	}
}

// Set stores p for k. A zero GrainSize is replaced by the class default.
func (t *Table) Set(k Key, p Parameters) {
	if p.GrainSize == 0 {
		p.GrainSize = DefaultGrain(k.Class)
	}
	t.entries[k] = p
}

// Lookup returns the parameters for k.
//
// A missing XABC key falls back to ABCX and a missing FormatOther key falls
// back to ABC. Any other miss returns a single-stripe configuration with the
// class grain.
func (t *Table) Lookup(k Key) Parameters {
	if p, ok := t.entries[k]; ok {
		return p
	}

	alt := k
	switch k.Format {
	case FormatXABC:
		alt.Format = FormatABCX
	case FormatOther:
		alt.Format = FormatABC
	default:
		return unstriped(k.Class)
	}
	if p, ok := t.entries[alt]; ok {
		return p
	}

	return unstriped(k.Class)
}

func unstriped(c Class) Parameters {
	return Parameters{Stripes: 1, Unroll: 1, GrainSize: DefaultGrain(c)}
}

// LookupLayout is Lookup for a concrete sample layout. A single component of
// a wider pixel is looked up as mono.
func (t *Table) LookupLayout(storageWidth, bits uint, stride int, offsets []int, masked bool) Parameters {
	k := Key{Class: ClassOf(storageWidth, bits), Format: FormatOf(stride, offsets), Masked: masked}
	if k.Format == FormatOther && len(offsets) == 1 {
		k.Format = FormatMono
	}

	return t.Lookup(k)
}

// Keys returns the keys with explicit entries, in a stable order.
func (t *Table) Keys() []Key {
	keys := slices.Collect(maps.Keys(t.entries))
	slices.SortFunc(keys, func(a, b Key) int {
		if a.Class != b.Class {
			return int(a.Class) - int(b.Class)
		}
		if a.Format != b.Format {
			return int(a.Format) - int(b.Format)
		}
		if a.Masked == b.Masked {
			return 0
		}
		if !a.Masked {
			return -1
		}

		return 1
	})

	return keys
}

// Len returns the number of explicit entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := &Table{Name: t.Name, ParallelThreshold: t.ParallelThreshold}
	c.entries = maps.Clone(t.entries)

	return c
}

// DefaultGrain returns the built-in grain size for class c.
func DefaultGrain(c Class) int {
	if c == Class8 {
		return DefaultGrain8
	}

	return DefaultGrain16
}

// Default returns the built-in table for the running architecture.
func Default() *Table {
	return ForArch(runtime.GOARCH)
}

// ForArch returns the built-in table for a GOARCH value.
func ForArch(arch string) *Table {
	switch arch {
	case "amd64":
		return buildTable("amd64", amd64Rows)
	case "arm64":
		return buildTable("arm64", arm64Rows)
	default:
		return buildTable("generic", genericRows)
	}
}

func buildTable(name string, rows []row) *Table {
	t := NewTable(name)
	for _, r := range rows {
		t.Set(r.key(false), Parameters{Stripes: r.stripes0, Unroll: r.unroll0})
		t.Set(r.key(true), Parameters{Stripes: r.stripes1, Unroll: r.unroll1, PreferBranchless: r.branchless})
	}

	return t
}
