// Package config loads the optional doctrine file. The file is HCL with a
// single doctrine block; every attribute is optional and overlays the
// default doctrine. Numeric attributes may reference the defaults object,
// e.g. line_strength = defaults.line_strength / 2.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/formiclabs/formic/rules"
)

// doctrineBlock mirrors the doctrine HCL block. Pointer fields distinguish
// "absent" from zero so partial files overlay cleanly.
type doctrineBlock struct {
	Name            *string  `hcl:"name,optional"`
	EggPriority     *float64 `hcl:"egg_priority,optional"`
	CrystalPriority *float64 `hcl:"crystal_priority,optional"`
	EggRushRadius   *int     `hcl:"egg_rush_radius,optional"`
	LineStrength    *int     `hcl:"line_strength,optional"`
}

// file is the top-level structure of a doctrine file.
type file struct {
	Doctrine *doctrineBlock `hcl:"doctrine,block"`
}

// Load reads and parses a doctrine file. An empty path returns the default
// doctrine untouched.
func Load(path string) (rules.Doctrine, error) {
	if path == "" {
		return rules.DefaultDoctrine(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return rules.Doctrine{}, fmt.Errorf("read doctrine file: %w", err)
	}
	return Parse(path, src)
}

// Parse decodes doctrine HCL source. The filename is only used in
// diagnostics.
func Parse(filename string, src []byte) (rules.Doctrine, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return rules.Doctrine{}, fmt.Errorf("parse %s: %w", filename, diags)
	}

	var parsed file
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return rules.Doctrine{}, fmt.Errorf("decode %s: %w", filename, diags)
	}

	doctrine := rules.DefaultDoctrine()
	if block := parsed.Doctrine; block != nil {
		if block.Name != nil {
			doctrine.Name = *block.Name
		}
		if block.EggPriority != nil {
			doctrine.EggPriority = *block.EggPriority
		}
		if block.CrystalPriority != nil {
			doctrine.CrystalPriority = *block.CrystalPriority
		}
		if block.EggRushRadius != nil {
			doctrine.EggRushRadius = *block.EggRushRadius
		}
		if block.LineStrength != nil {
			doctrine.LineStrength = *block.LineStrength
		}
	}
	doctrine.Validate()
	return doctrine, nil
}

// evalContext exposes the defaults object to doctrine expressions.
func evalContext() *hcl.EvalContext {
	defaults := rules.DefaultDoctrine()
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"egg_priority":     cty.NumberFloatVal(defaults.EggPriority),
				"crystal_priority": cty.NumberFloatVal(defaults.CrystalPriority),
				"egg_rush_radius":  cty.NumberIntVal(int64(defaults.EggRushRadius)),
				"line_strength":    cty.NumberIntVal(int64(defaults.LineStrength)),
			}),
		},
	}
}
