package tuning

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/ihist/errs"
)

// tableFile is the YAML document layout of a tuning table.
//
//	name: my-workstation
//	base: amd64            # default | amd64 | arm64 | generic | none
//	parallel_threshold: 4194304
//	entries:
//	  - bits: 8
//	    format: mono
//	    masked: false
//	    stripes: 8
//	    unroll: 16
//	    grain_size: 16384
type tableFile struct {
	Name              string      `yaml:"name,omitempty"`
	Base              string      `yaml:"base,omitempty"`
	ParallelThreshold int         `yaml:"parallel_threshold,omitempty"`
	Entries           []tableItem `yaml:"entries"`
}

type tableItem struct {
	Bits       int    `yaml:"bits"`
	Format     string `yaml:"format"`
	Masked     bool   `yaml:"masked"`
	Parameters `yaml:",inline"`
}

// Load reads a YAML tuning table from r.
//
// Entries override those of the base table (the architecture default unless
// base says otherwise). Entries without grain_size get the class default. An
// empty document yields the default table.
func Load(r io.Reader) (*Table, error) {
	var doc tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}

		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidTuning, err)
	}

	return doc.build()
}

// LoadFile reads a YAML tuning table from path. The table is named after the
// file unless the document sets a name.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" || t.Name == Default().Name {
		t.Name = filepath.Base(path)
	}

	return t, nil
}

func (doc *tableFile) build() (*Table, error) {
	var t *Table
	switch doc.Base {
	case "", "default":
		t = Default()
	case "none":
		t = NewTable("")
	case "amd64", "arm64", "generic":
		t = ForArch(doc.Base)
	default:
		return nil, fmt.Errorf("%w: unknown base table %q", errs.ErrInvalidTuning, doc.Base)
	}

	if doc.Name != "" {
		t.Name = doc.Name
	}
	if doc.ParallelThreshold < 0 {
		return nil, fmt.Errorf("%w: negative parallel_threshold %d", errs.ErrInvalidTuning, doc.ParallelThreshold)
	}
	if doc.ParallelThreshold > 0 {
		t.ParallelThreshold = doc.ParallelThreshold
	}

	for i, item := range doc.Entries {
		k, err := item.key()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", errs.ErrInvalidTuning, i, err)
		}
		if err := item.Parameters.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, k, err)
		}
		t.Set(k, item.Parameters)
	}

	return t, nil
}

func (item tableItem) key() (Key, error) {
	var c Class
	switch item.Bits {
	case 8:
		c = Class8
	case 12:
		c = Class12
	case 16:
		c = Class16
	default:
		return Key{}, fmt.Errorf("bits must be 8, 12 or 16, got %d", item.Bits)
	}

	f, err := ParseFormat(item.Format)
	if err != nil {
		return Key{}, err
	}

	return Key{Class: c, Format: f, Masked: item.Masked}, nil
}

// WriteYAML writes t as a self-contained YAML document (base: none).
func (t *Table) WriteYAML(w io.Writer) error {
	doc := tableFile{
		Name:              t.Name,
		Base:              "none",
		ParallelThreshold: t.ParallelThreshold,
	}
	for _, k := range t.Keys() {
		doc.Entries = append(doc.Entries, tableItem{
			Bits:       int(k.Class),
			Format:     k.Format.String(),
			Masked:     k.Masked,
			Parameters: t.entries[k],
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}
