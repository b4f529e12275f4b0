package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/helpers/internal/value"
)

// Case kinds.
const (
	KindMatch    = "match"    // input must (or must not) match the format
	KindChildren = "children" // every element of input must match the format
	KindMerge    = "merge"    // input sources merged into {} must equal result
)

// Expectations for match and children cases.
const (
	ExpectPass = "pass"
	ExpectFail = "fail"
)

// Scenario is a named set of format and merge checks.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string

	// Description explains what this scenario validates.
	Description string

	// RunID is an optional fixed run ID for reproducible reports.
	RunID string

	// StrictArrays selects strict array checks for every case.
	StrictArrays bool

	// MaxDepth bounds nesting for compare and merge. 0 selects the default.
	MaxDepth int

	// Format is the default format for match and children cases.
	// Nil when the scenario declares none.
	Format value.Value

	// Cases run in order.
	Cases []Case
}

// Case is a single check within a scenario.
type Case struct {
	Name string
	Kind string

	// Input is the value under test. For merge cases it is an array of
	// sources.
	Input value.Value

	// Format overrides the scenario format when non-nil.
	Format value.Value

	// Expect is ExpectPass or ExpectFail for match and children cases.
	Expect string

	// Result is the expected merged record for merge cases.
	Result value.Value
}

// rawScenario mirrors the YAML layout. Value-carrying fields stay as
// nodes so key order and scalar typing survive into value.Value.
type rawScenario struct {
	Name         string    `yaml:"name"`
	Description  string    `yaml:"description"`
	RunID        string    `yaml:"run_id,omitempty"`
	StrictArrays bool      `yaml:"strict_arrays,omitempty"`
	MaxDepth     int       `yaml:"max_depth,omitempty"`
	Format       yaml.Node `yaml:"format,omitempty"`
	Cases        []rawCase `yaml:"cases"`
}

type rawCase struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind"`
	Input  yaml.Node `yaml:"input"`
	Format yaml.Node `yaml:"format,omitempty"`
	Expect string    `yaml:"expect,omitempty"`
	Result yaml.Node `yaml:"result,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "case:" vs "cases:"
	var raw rawScenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	scenario, err := raw.convert()
	if err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return scenario, nil
}

func (r *rawScenario) convert() (*Scenario, error) {
	s := &Scenario{
		Name:         r.Name,
		Description:  r.Description,
		RunID:        r.RunID,
		StrictArrays: r.StrictArrays,
		MaxDepth:     r.MaxDepth,
		Cases:        make([]Case, len(r.Cases)),
	}

	var err error
	if s.Format, err = optionalNode(&r.Format); err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}

	for i := range r.Cases {
		rc := &r.Cases[i]
		c := Case{Name: rc.Name, Kind: rc.Kind, Expect: rc.Expect}
		if c.Input, err = optionalNode(&rc.Input); err != nil {
			return nil, fmt.Errorf("cases[%d].input: %w", i, err)
		}
		if c.Format, err = optionalNode(&rc.Format); err != nil {
			return nil, fmt.Errorf("cases[%d].format: %w", i, err)
		}
		if c.Result, err = optionalNode(&rc.Result); err != nil {
			return nil, fmt.Errorf("cases[%d].result: %w", i, err)
		}
		s.Cases[i] = c
	}
	return s, nil
}

// optionalNode converts a node that may be absent. Absent nodes yield nil.
func optionalNode(n *yaml.Node) (value.Value, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	return value.FromYAMLNode(n)
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if err := validateCase(i, c, s.Format); err != nil {
			return err
		}
	}

	return nil
}

// validateCase validates a single case based on its kind.
func validateCase(index int, c *Case, scenarioFormat value.Value) error {
	if c.Input == nil {
		return fmt.Errorf("cases[%d]: input is required", index)
	}

	switch c.Kind {
	case KindMatch, KindChildren:
		if c.Format == nil && scenarioFormat == nil {
			return fmt.Errorf("cases[%d]: format is required for %s (set it on the case or the scenario)", index, c.Kind)
		}
		if c.Expect != ExpectPass && c.Expect != ExpectFail {
			return fmt.Errorf("cases[%d]: expect must be %q or %q for %s", index, ExpectPass, ExpectFail, c.Kind)
		}
		if c.Result != nil {
			return fmt.Errorf("cases[%d]: result is only valid for merge", index)
		}
	case KindMerge:
		if _, ok := c.Input.(value.Array); !ok {
			return fmt.Errorf("cases[%d]: input must be a list of sources for merge", index)
		}
		if c.Result == nil {
			return fmt.Errorf("cases[%d]: result is required for merge", index)
		}
		if c.Expect != "" {
			return fmt.Errorf("cases[%d]: expect is not valid for merge", index)
		}
		if c.Format != nil {
			return fmt.Errorf("cases[%d]: format is not valid for merge", index)
		}
	case "":
		return fmt.Errorf("cases[%d]: kind is required", index)
	default:
		return fmt.Errorf("cases[%d]: unknown case kind %q", index, c.Kind)
	}

	return nil
}

// formatFor returns the format a case is checked against.
func (s *Scenario) formatFor(c *Case) value.Value {
	if c.Format != nil {
		return c.Format
	}
	return s.Format
}
