// Package profile loads the active profile file, which carries per-module
// settings that tune what a module emits (for example whether podman gets
// a docker compatibility alias).
package profile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/profile.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ModuleConfig holds one module's per-profile tuning.
type ModuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Settings map[string]any `yaml:"settings"`
}

// Profile is the parsed profile file.
type Profile struct {
	Name    string                  `yaml:"name"`
	Theme   string                  `yaml:"theme"`
	Modules map[string]ModuleConfig `yaml:"modules"`
}

// Default returns the profile used when no file exists.
func Default() *Profile {
	return &Profile{Name: "default"}
}

// Setting returns a module setting, or def when unset. Module names are
// matched case-insensitively, like registry lookups.
func (p *Profile) Setting(module, key string, def bool) bool {
	for name, mc := range p.Modules {
		if !strings.EqualFold(name, module) {
			continue
		}
		if v, ok := mc.Settings[key]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return def
}

// Disabled reports whether the profile explicitly disables a module.
func (p *Profile) Disabled(module string) bool {
	for name, mc := range p.Modules {
		if strings.EqualFold(name, module) && mc.Enabled != nil {
			return !*mc.Enabled
		}
	}
	return false
}

// Load reads, validates, and parses a profile file. A missing file yields
// the default profile, not an error.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = "default"
	}
	return &p, nil
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("profile.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("profile.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validate checks raw YAML bytes against the profile schema.
func validate(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-compatible types.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("invalid profile: %s", firstIssue(ve))
		}
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// firstIssue walks the error tree and returns the first leaf message.
func firstIssue(ve *jsonschema.ValidationError) string {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		if ve.ErrorKind != nil {
			return fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(printer))
		}
		return loc
	}
	return firstIssue(ve.Causes[0])
}
