package hints

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the dataset major version this package understands.
const SupportedMajor = "v1"

//go:embed strategies.yaml
var defaultDataset []byte

//go:embed strategies.schema.json
var datasetSchema []byte

// ErrUnsupportedVersion is returned for datasets outside SupportedMajor.
var ErrUnsupportedVersion = errors.New("unsupported strategy dataset version")

// Example is a worked example of a strategy.
type Example struct {
	Problem      string   `yaml:"problem"`
	Steps        []string `yaml:"steps"`
	Verification string   `yaml:"verification"`
}

// Strategy is one named technique from the dataset.
type Strategy struct {
	Name       string    `yaml:"name"`
	Alias      string    `yaml:"alias"`
	Difficulty string    `yaml:"difficulty"`
	BestFor    string    `yaml:"best_for"`
	Examples   []Example `yaml:"examples"`
	Caution    string    `yaml:"caution"`
	ProTip     string    `yaml:"pro_tip"`
}

// Dataset is the parsed strategy table, keyed by operation name
// ("addition", "percentages", ...).
type Dataset struct {
	Version    string                `yaml:"version"`
	Operations map[string][]Strategy `yaml:"operations"`
}

// Find returns the named strategy for an operation.
func (d *Dataset) Find(op, name string) (Strategy, bool) {
	for _, s := range d.Operations[op] {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}

// ParseDataset decodes YAML, validates it against the dataset schema and
// checks the version is compatible.
func ParseDataset(data []byte) (*Dataset, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse strategy dataset: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode strategy dataset: %w", err)
	}
	if !semver.IsValid(ds.Version) {
		return nil, fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, ds.Version)
	}
	if major := semver.Major(ds.Version); major != SupportedMajor {
		return nil, fmt.Errorf("%w: got %s, want %s.x", ErrUnsupportedVersion, ds.Version, SupportedMajor)
	}
	return &ds, nil
}

func validateSchema(doc any) error {
	// The jsonschema library expects JSON-shaped values, so round-trip the
	// YAML document through encoding/json.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal strategy dataset: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("reparse strategy dataset: %w", err)
	}

	var schemaDoc any
	if err := json.Unmarshal(datasetSchema, &schemaDoc); err != nil {
		return fmt.Errorf("parse dataset schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	const url = "schema://strategies.json"
	if err := c.AddResource(url, schemaDoc); err != nil {
		return fmt.Errorf("add resource: %w", err)
	}
	schema, err := c.Compile(url)
	if err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("strategy dataset schema validation failed: %w", err)
	}
	return nil
}
