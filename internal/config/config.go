// Package config loads group definitions from YAML or TOML files.
//
// A definition names a group, lists its generators in cycle notation and
// optionally the positions to exclude when the group is concatenated with
// another one:
//
//	name: antisymmetric pair
//	size: 4
//	generators: ["-(0 1)", "(2 3)"]
//	excludes: [3]
//
// The same document in TOML:
//
//	name = "antisymmetric pair"
//	size = 4
//	generators = ["-(0 1)", "(2 3)"]
//	excludes = [3]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/permgroup/builder"
	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
)

// Format identifies a definition file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml,
	// .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrInvalidDefinition indicates a document that decodes but is not a
	// usable group definition.
	ErrInvalidDefinition = errors.New("config: invalid definition")
)

// Definition is a group as written in a configuration file.
type Definition struct {
	// Name is informational.
	Name string `yaml:"name" toml:"name"`
	// Size is the length of the sequence the group acts on, excluded
	// positions included. Zero means "just large enough".
	Size int `yaml:"size" toml:"size"`
	// Generators in cycle notation, e.g. "(0 1)(2 3)" or "-(4 5)".
	Generators []string `yaml:"generators" toml:"generators"`
	// Excludes lists positions removed before concatenation.
	Excludes []int `yaml:"excludes" toml:"excludes"`
}

// FormatOf maps a file name to its Format by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads and decodes the definition at path.
func Load(path string) (*Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	def, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// Decode parses data in the given format. Unknown keys are rejected.
// An empty document is the trivial group.
func Decode(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidDefinition, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate checks sizes and indices. Generators are checked by Permutations.
func (d *Definition) Validate() error {
	if d.Size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidDefinition, d.Size)
	}
	for _, e := range d.Excludes {
		if e < 0 {
			return fmt.Errorf("%w: negative exclude %d", ErrInvalidDefinition, e)
		}
	}

	return nil
}

// Permutations parses the generators.
func (d *Definition) Permutations() ([]perm.Permutation, error) {
	return builder.Generators(nil, builder.Parsed(d.Generators...))
}

// Group builds the group generated by the definition.
func (d *Definition) Group(opts ...group.Option) (*group.Group, error) {
	gens, err := d.Permutations()
	if err != nil {
		return nil, err
	}

	return group.New(gens, opts...), nil
}

// Span returns the number of positions the definition covers: Size when set,
// otherwise one past the largest moved point or excluded index.
//
// Errors: generator parse errors, ErrInvalidDefinition when Size is set but
// smaller than the positions the generators or excludes reach.
func (d *Definition) Span() (int, error) {
	gens, err := d.Permutations()
	if err != nil {
		return 0, err
	}
	span := 0
	for _, p := range gens {
		if !p.IsIdentity() {
			span = max(span, p.MaxElement()+1)
		}
	}
	for _, e := range d.Excludes {
		span = max(span, e+1)
	}
	if d.Size == 0 {
		return span, nil
	}
	if d.Size < span {
		return 0, fmt.Errorf("%w: size %d is smaller than the %d positions used", ErrInvalidDefinition, d.Size, span)
	}

	return d.Size, nil
}

// Remaining returns Span minus the distinct excluded positions, i.e. the
// length left after removal.
func (d *Definition) Remaining() (int, error) {
	span, err := d.Span()
	if err != nil {
		return 0, err
	}
	ex := slices.Clone(d.Excludes)
	slices.Sort(ex)

	return span - len(slices.Compact(ex)), nil
}
