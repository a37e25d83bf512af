// Copyright 2020-2026 The Bracepress Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package printer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bracepress/bracepress/indent"
)

// IndentConfig names the unit added per indentation level.
type IndentConfig struct {
	Kind  indent.Kind `yaml:"kind"`
	Count int         `yaml:"count"`
}

// UnmarshalYAML lets IndentConfig.Kind be spelled "spaces" or "tabs" in
// configuration files.
func (c *IndentConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Kind  string `yaml:"kind"`
		Count int    `yaml:"count"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch raw.Kind {
	case "", "spaces":
		c.Kind = indent.Spaces
	case "tabs":
		c.Kind = indent.Tabs
	default:
		return fmt.Errorf("printer: unrecognized indent kind %q", raw.Kind)
	}
	c.Count = raw.Count
	return nil
}

// Config controls how a Printer lays out lines. It is a plain,
// YAML-decodable struct: bracepress does not itself read configuration
// files (that is a front-end concern), but exposes this shape so an
// embedder can.
type Config struct {
	// MaxLineLength is the target column limit.
	MaxLineLength int `yaml:"maxLineLength"`
	// Indent is the unit added per indentation level.
	Indent IndentConfig `yaml:"indent"`
	// TabWidth is the column width of a tab when measuring length.
	TabWidth int `yaml:"tabWidth"`
	// RespectsExistingLineBreaks preserves a single blank line between
	// top-level declarations when true (capped at one blank line).
	RespectsExistingLineBreaks bool `yaml:"respectsExistingLineBreaks"`
	// LineBreakBeforeControlFlowKeywords is accepted and decoded but read
	// by nothing: the declaration grammar the Builder supports has no
	// else/catch or other control-flow node, so setting it changes no
	// output.
	LineBreakBeforeControlFlowKeywords bool `yaml:"lineBreakBeforeControlFlowKeywords"`
	// LineBreakBeforeEachArgument puts every entry after the first on its
	// own line in any parameter or argument list that does not fit on one
	// line; the first entry stays beside the opening delimiter.
	LineBreakBeforeEachArgument bool `yaml:"lineBreakBeforeEachArgument"`
}

// Default returns the configuration bracepress falls back to when no
// external configuration is supplied: 100-column lines, two-space indent,
// a tab width of four, and existing blank lines respected.
func Default() Config {
	return Config{
		MaxLineLength:              100,
		Indent:                     IndentConfig{Kind: indent.Spaces, Count: 2},
		TabWidth:                   4,
		RespectsExistingLineBreaks: true,
	}
}

// Validate reports a descriptive error if c cannot be used to print, rather
// than letting the Printer panic partway through a run.
func (c Config) Validate() error {
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("printer: maxLineLength must be > 0, got %d", c.MaxLineLength)
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("printer: tabWidth must be >= 1, got %d", c.TabWidth)
	}
	if c.Indent.Count < 0 {
		return fmt.Errorf("printer: indent.count must be >= 0, got %d", c.Indent.Count)
	}
	return nil
}

// FromYAML decodes a [Config] from YAML bytes, starting from [Default] so
// callers only need to specify the fields they want to override.
func FromYAML(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("printer: decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
