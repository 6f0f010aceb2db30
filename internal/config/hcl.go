package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"lifegame/pkg/life"
)

// Settings holds the optional top-level values of a config file. Nil fields
// were not present.
type Settings struct {
	Width       *int     `hcl:"width,optional"`
	Height      *int     `hcl:"height,optional"`
	Interval    *string  `hcl:"interval,optional"`
	Probability *float64 `hcl:"probability,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	Pattern     *string  `hcl:"pattern,optional"`
	Scale       *int     `hcl:"scale,optional"`
}

// File is a decoded config file.
//
//	settings {
//	  width    = 80
//	  interval = "50ms"
//	}
//
//	pattern "Beacon" {
//	  rows = ["OO..", "OO..", "..OO", "..OO"]
//	}
//
//	pattern "Toad" {
//	  cells = [[0, 1, 1, 1], [1, 1, 1, 0]]
//	}
type File struct {
	Settings Settings
	Patterns []life.Pattern
}

type hclFile struct {
	Settings *Settings    `hcl:"settings,block"`
	Patterns []hclPattern `hcl:"pattern,block"`
}

type hclPattern struct {
	Name  string         `hcl:"name,label"`
	Rows  []string       `hcl:"rows,optional"`
	Cells hcl.Expression `hcl:"cells,optional"`
}

// LoadFile parses and decodes the HCL file at path.
func LoadFile(path string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse config file %s: %w", life.ErrInvalidConfiguration, path, diags)
	}
	return decode(f.Body, path)
}

// Parse decodes HCL source held in memory. filename is used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse config file %s: %w", life.ErrInvalidConfiguration, filename, diags)
	}
	return decode(f.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode config file %s: %w", life.ErrInvalidConfiguration, filename, diags)
	}

	out := &File{}
	if raw.Settings != nil {
		out.Settings = *raw.Settings
	}
	for _, block := range raw.Patterns {
		p, err := block.pattern()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		out.Patterns = append(out.Patterns, p)
	}
	return out, nil
}

func (b hclPattern) pattern() (life.Pattern, error) {
	cells, err := decodeCells(b.Name, b.Cells)
	if err != nil {
		return life.Pattern{}, err
	}
	switch {
	case cells != nil && b.Rows != nil:
		return life.Pattern{}, fmt.Errorf("%w: pattern %q sets both rows and cells", life.ErrInvalidConfiguration, b.Name)
	case cells != nil:
		return life.NewPattern(b.Name, cells)
	case b.Rows != nil:
		return life.ParsePattern(b.Name, b.Rows)
	}
	return life.Pattern{}, fmt.Errorf("%w: pattern %q needs rows or cells", life.ErrInvalidConfiguration, b.Name)
}

// decodeCells reads a numeric matrix such as [[0, 1], [1, 0]]. A missing
// attribute yields nil.
func decodeCells(name string, expr hcl.Expression) ([][]life.Cell, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: pattern %q cells: %w", life.ErrInvalidConfiguration, name, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	val, err := convert.Convert(val, cty.List(cty.List(cty.Number)))
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q cells must be a list of number lists: %w", life.ErrInvalidConfiguration, name, err)
	}
	var raw [][]int
	if err := gocty.FromCtyValue(val, &raw); err != nil {
		return nil, fmt.Errorf("%w: pattern %q cells: %w", life.ErrInvalidConfiguration, name, err)
	}
	rows := make([][]life.Cell, len(raw))
	for i, r := range raw {
		rows[i] = make([]life.Cell, len(r))
		for j, v := range r {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: pattern %q cell (%d,%d) is %d, want 0 or 1", life.ErrInvalidConfiguration, name, i, j, v)
			}
			rows[i][j] = life.Cell(v)
		}
	}
	return rows, nil
}
