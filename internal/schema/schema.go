// Package schema declares the expected column sets for the supported dataset
// profiles. Column names are configuration, not code: built-in profiles can be
// overridden or extended with YAML profile files, so pointing the tool at a
// dataset with different headers does not require a code change.
package schema

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"zahra/dld-analytics/internal/parsererror"
)

// Schema describes the columns a dataset profile requires. Required and
// DateColumn name the columns as they appear in the file. Columns maps
// canonical column names to the file's actual header names, so a profile can
// point the standard parsers at a dataset whose headers were renamed.
type Schema struct {
	Name       string            `yaml:"name"`
	Required   []string          `yaml:"required"`
	DateColumn string            `yaml:"date_column"`
	Columns    map[string]string `yaml:"columns"`
}

// Builtin profiles matching the two dashboard datasets.
var builtins = map[string]Schema{
	"sales": {
		Name: "sales",
		Required: []string{
			"TRANS_VALUE",
			"PROCEDURE_AREA",
			"AREA_EN",
			"PROP_TYPE_EN",
			"INSTANCE_DATE",
		},
		DateColumn: "INSTANCE_DATE",
	},
	"rentals": {
		Name: "rentals",
		Required: []string{
			"Rent",
			"Area_in_sqft",
			"Location",
			"Posted_date",
		},
		DateColumn: "Posted_date",
	},
}

// Builtin returns a built-in schema profile by name.
func Builtin(name string) (Schema, error) {
	s, ok := builtins[name]
	if !ok {
		return Schema{}, fmt.Errorf("unknown schema profile: %s", name)
	}
	return s, nil
}

// BuiltinNames returns the names of all built-in profiles.
func BuiltinNames() []string {
	return []string{"sales", "rentals"}
}

// LoadFromYAML reads a schema profile from a YAML file.
func LoadFromYAML(path string) (Schema, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- profile paths come from user config
	if err != nil {
		return Schema{}, fmt.Errorf("error reading schema profile: %w", err)
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("error parsing schema profile %s: %w", path, err)
	}

	if s.Name == "" || len(s.Required) == 0 {
		return Schema{}, &parsererror.ValidationError{
			FilePath: path,
			Reason:   "schema profile must declare a name and at least one required column",
		}
	}

	return s, nil
}

// Resolve returns the schema for a profile name, preferring a YAML profile
// file in profileDir over the built-in definition.
func Resolve(name, profileDir string) (Schema, error) {
	if profileDir != "" {
		path := filepath.Join(profileDir, name+".yaml")
		if _, err := os.Stat(path); err == nil {
			return LoadFromYAML(path)
		}
	}
	return Builtin(name)
}

// Validate checks a CSV header row against the schema and reports the first
// missing required column. The date column is implicitly required, so a
// profile does not have to repeat it in the required list. filePath is only
// used for error reporting.
func (s Schema) Validate(header []string, filePath string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	for _, col := range s.Required {
		if !present[col] {
			return &parsererror.MissingColumnError{
				FilePath: filePath,
				Column:   col,
			}
		}
	}
	if s.DateColumn != "" && !present[s.DateColumn] {
		return &parsererror.MissingColumnError{
			FilePath: filePath,
			Column:   s.DateColumn,
		}
	}

	return nil
}

// Canonicalize rewrites the header row of a CSV buffer, replacing each mapped
// column with its canonical name so row decoding keyed on canonical names
// works for renamed datasets. A schema without a column mapping returns the
// buffer unchanged.
func (s Schema) Canonicalize(data []byte) ([]byte, error) {
	if len(s.Columns) == 0 {
		return data, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	offset := r.InputOffset()

	actualToCanonical := make(map[string]string, len(s.Columns))
	for canonical, actual := range s.Columns {
		actualToCanonical[actual] = canonical
	}
	for i, col := range header {
		if canonical, ok := actualToCanonical[col]; ok {
			header[i] = canonical
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("error rewriting CSV header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error rewriting CSV header: %w", err)
	}

	buf.Write(data[offset:])
	return buf.Bytes(), nil
}
