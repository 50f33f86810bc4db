package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// envelope matches the optional "scenario" wrapper object described in §6.
type envelope struct {
	Scenario *Spec `json:"scenario" yaml:"scenario"`
}

// decode parses a scenario from data with unmarshal, detecting the optional
// "scenario" wrapper key. Format is selected by the caller (DecodeJSON or
// DecodeYAML).
func decode(data []byte, unmarshal func([]byte, interface{}) error) (Spec, error) {
	var env envelope
	if err := unmarshal(data, &env); err == nil && env.Scenario != nil {
		return *env.Scenario, nil
	}

	var s Spec
	if err := unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("malformed scenario: %w", err)
	}
	return s, nil
}

// DecodeJSON reads a scenario encoded as JSON, possibly wrapped under the
// "scenario" key.
func DecodeJSON(r io.Reader) (Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Spec{}, fmt.Errorf("reading scenario: %w", err)
	}
	return decode(data, json.Unmarshal)
}

// DecodeYAML reads a scenario encoded as YAML, possibly wrapped under the
// "scenario" key.
func DecodeYAML(r io.Reader) (Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Spec{}, fmt.Errorf("reading scenario: %w", err)
	}
	return decode(data, yaml.Unmarshal)
}

// LoadFile loads and normalizes a scenario from disk. The format is chosen
// by file extension (.yaml/.yml selects YAML, anything else JSON).
func LoadFile(path string) (Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return Spec{}, fmt.Errorf("opening scenario %v: %w", path, err)
	}
	defer f.Close()

	var (
		raw error
		s   Spec
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		s, raw = DecodeYAML(f)
	} else {
		s, raw = DecodeJSON(f)
	}
	if raw != nil {
		return Spec{}, raw
	}

	return s.Normalize()
}
