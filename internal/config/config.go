// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"leapfastq/internal/reference"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "appsettings.json"

// MissingError reports a required setting that is absent after profile
// overlay and flag overrides.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("required setting %s is not configured", e.Key)
}

// Settings is one run's configuration. Key names match appsettings.json.
type Settings struct {
	InputFilePath      string `yaml:"InputFilePath" json:"InputFilePath"`
	OutputMetadataYaml string `yaml:"OutputMetadataYaml" json:"OutputMetadataYaml"`
	OutputInputsJson   string `yaml:"OutputInputsJson" json:"OutputInputsJson"`
	DataStoragePrefix  string `yaml:"DataStoragePrefix" json:"DataStoragePrefix"`
	DockerImage        string `yaml:"DockerImage" json:"DockerImage"`
	MetadataYamlPath   string `yaml:"MetadataYamlPath" json:"MetadataYamlPath"`
	ReferenceGenomes   string `yaml:"ReferenceGenomes" json:"ReferenceGenomes"`

	Condition  string `yaml:"Condition,omitempty" json:"Condition,omitempty"`
	SampleType string `yaml:"SampleType,omitempty" json:"SampleType,omitempty"`

	// nil keeps the built-in human reference.
	Reference *reference.Genome `yaml:"Reference,omitempty" json:"Reference,omitempty"`
	// nil keeps the built-in supplementary set; an explicit empty list disables it.
	SupplementaryReferences []reference.Genome `yaml:"SupplementaryReferences,omitempty" json:"SupplementaryReferences,omitempty"`
}

// File is the on-disk layout: base settings plus named profiles that
// overlay them.
type File struct {
	Settings `yaml:",inline"`
	Profiles map[string]Settings `yaml:"Profiles,omitempty" json:"Profiles,omitempty"`
}

// Overrides are command-line values that win over the file.
type Overrides struct {
	InputFilePath      string
	OutputMetadataYaml string
	OutputInputsJson   string
}

// LoadFile reads path and returns the settings for profile ("" for the base).
func LoadFile(path, profile string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	f, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Resolve(profile)
}

// Parse decodes a config document. format is "json" or "yaml".
func Parse(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case "json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	return &f, nil
}

// Resolve overlays the named profile on the base settings and applies defaults.
func (f *File) Resolve(profile string) (*Settings, error) {
	s := f.Settings
	if profile != "" {
		p, ok := f.Profiles[profile]
		if !ok {
			return nil, fmt.Errorf("unknown profile %q (have: %s)", profile, strings.Join(f.profileNames(), ", "))
		}
		s.overlay(p)
	}
	applyDefaults(&s)
	return &s, nil
}

func (f *File) profileNames() []string {
	names := make([]string, 0, len(f.Profiles))
	for n := range f.Profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// overlay copies every non-empty field of p onto s.
func (s *Settings) overlay(p Settings) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&s.InputFilePath, p.InputFilePath)
	set(&s.OutputMetadataYaml, p.OutputMetadataYaml)
	set(&s.OutputInputsJson, p.OutputInputsJson)
	set(&s.DataStoragePrefix, p.DataStoragePrefix)
	set(&s.DockerImage, p.DockerImage)
	set(&s.MetadataYamlPath, p.MetadataYamlPath)
	set(&s.ReferenceGenomes, p.ReferenceGenomes)
	set(&s.Condition, p.Condition)
	set(&s.SampleType, p.SampleType)
	if p.Reference != nil {
		s.Reference = p.Reference
	}
	if p.SupplementaryReferences != nil {
		s.SupplementaryReferences = p.SupplementaryReferences
	}
}

// Apply lets command-line overrides win.
func (s *Settings) Apply(o Overrides) {
	s.overlay(Settings{
		InputFilePath:      o.InputFilePath,
		OutputMetadataYaml: o.OutputMetadataYaml,
		OutputInputsJson:   o.OutputInputsJson,
	})
}

func applyDefaults(s *Settings) {
	if s.Condition == "" {
		s.Condition = "A"
	}
	if s.SampleType == "" {
		s.SampleType = "A"
	}
	if s.Reference == nil {
		g := reference.Human
		s.Reference = &g
	}
	if s.SupplementaryReferences == nil {
		s.SupplementaryReferences = reference.DefaultSupplementary()
	}
}

// Validate reports the first required setting that is empty, then checks
// the genome descriptors.
func (s *Settings) Validate() error {
	required := []struct {
		key, val string
	}{
		{"InputFilePath", s.InputFilePath},
		{"OutputMetadataYaml", s.OutputMetadataYaml},
		{"OutputInputsJson", s.OutputInputsJson},
		{"DataStoragePrefix", s.DataStoragePrefix},
		{"DockerImage", s.DockerImage},
		{"MetadataYamlPath", s.MetadataYamlPath},
		{"ReferenceGenomes", s.ReferenceGenomes},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return &MissingError{Key: r.key}
		}
	}
	if s.Reference == nil {
		return &MissingError{Key: "Reference"}
	}
	if err := s.Reference.Validate(); err != nil {
		return fmt.Errorf("invalid Reference: %w", err)
	}
	for i, g := range s.SupplementaryReferences {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("invalid SupplementaryReferences[%d]: %w", i, err)
		}
	}
	return nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
