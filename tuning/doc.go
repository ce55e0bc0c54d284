// Package tuning holds the knobs that parameterize the counting core without
// affecting its results.
//
// A Parameters value selects the number of stripes (parallel counter banks),
// the number of pixels per unrolled block, the multithreading grain size and
// whether masked blocks use a branchless increment. Any internally consistent
// value is correct; tuning only moves throughput.
//
// Per-platform defaults live in a Table keyed by sample-width class, pixel
// format and whether a mask is used. Tables are pluggable: Load and LoadFile
// read YAML documents that override the built-in values.
//
//	tbl, err := tuning.LoadFile("tuning.yaml")
//	if err != nil {
//	    return err
//	}
//	p := tbl.Lookup(tuning.Key{Class: tuning.Class12, Format: tuning.FormatABC})
package tuning
