// Package config loads the viewscale configuration file: the scaling
// parameters plus optional overrides for the predefined size tokens.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/viewscale/viewscale/pkg/scale"
	"github.com/viewscale/viewscale/pkg/yaml"
)

//go:generate go run ../../internal/schemagen/main.go -o config.v1beta1.json

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	//go:embed config.v1beta1.json
	schemaJSON []byte

	// ValidAPIVersions contains the accepted apiVersion values.
	ValidAPIVersions = []string{
		"viewscale.dev/v1beta1",
	}

	// ValidKinds contains the accepted kind values.
	ValidKinds = []string{
		"Configuration",
	}

	// DefaultValidator validates configuration against the JSON schema.
	DefaultValidator = yaml.MustNewValidator("/config.v1beta1.json", schemaJSON)
)

//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	Scaling *Scaling `json:"scaling,omitempty" jsonschema:"title=Scaling"`
	// Tokens overrides predefined size tokens by name, e.g. "spacing.md".
	Tokens map[string]TokenOverride `json:"tokens,omitempty" jsonschema:"title=Token Overrides"`
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

// Scaling mirrors [scale.Config] with optional fields, so a config file may
// set any subset and leave the rest at their defaults.
type Scaling struct {
	ReferenceWidth   *float64 `json:"referenceWidth,omitempty"   jsonschema:"title=Reference Width"`
	MobileBreakpoint *float64 `json:"mobileBreakpoint,omitempty" jsonschema:"title=Mobile Breakpoint"`
	TabletBreakpoint *float64 `json:"tabletBreakpoint,omitempty" jsonschema:"title=Tablet Breakpoint"`
	ScaleOnDesktop   *bool    `json:"scaleOnDesktop,omitempty"   jsonschema:"title=Scale On Desktop"`
}

// TokenOverride replaces parts of a predefined token's (base, min, max)
// triple. Unset fields keep the predefined value.
type TokenOverride struct {
	Base *float64 `json:"base,omitempty" jsonschema:"title=Base"`
	Min  *float64 `json:"min,omitempty"  jsonschema:"title=Min"`
	Max  *float64 `json:"max,omitempty"  jsonschema:"title=Max"`
}

// New creates a [Config] with default values.
func New() *Config {
	c := &Config{
		APIVersion: "viewscale.dev/v1beta1",
		Kind:       "Configuration",
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Scaling == nil {
		c.Scaling = &Scaling{}
	}

	def := scale.DefaultConfig()
	if c.Scaling.ReferenceWidth == nil {
		c.Scaling.ReferenceWidth = &def.ReferenceWidth
	}
	if c.Scaling.MobileBreakpoint == nil {
		c.Scaling.MobileBreakpoint = &def.MobileBreakpoint
	}
	if c.Scaling.TabletBreakpoint == nil {
		c.Scaling.TabletBreakpoint = &def.TabletBreakpoint
	}
	if c.Scaling.ScaleOnDesktop == nil {
		c.Scaling.ScaleOnDesktop = &def.ScaleOnDesktop
	}
}

// ScaleConfig builds the [scale.Config] described by this file and validates
// it, so invalid breakpoints fail here rather than producing undefined
// results later.
func (c *Config) ScaleConfig() (scale.Config, error) {
	c.EnsureDefaults()

	cfg := scale.Config{
		ReferenceWidth:   *c.Scaling.ReferenceWidth,
		MobileBreakpoint: *c.Scaling.MobileBreakpoint,
		TabletBreakpoint: *c.Scaling.TabletBreakpoint,
		ScaleOnDesktop:   *c.Scaling.ScaleOnDesktop,
	}

	err := cfg.Validate()
	if err != nil {
		return scale.Config{}, fmt.Errorf("scaling: %w", err)
	}

	return cfg, nil
}

// ScaleTokens returns the predefined tokens with any file overrides applied,
// in display order. Overrides naming an unknown token are an error.
func (c *Config) ScaleTokens() ([]scale.Token, error) {
	tokens := scale.AllTokens()

	names := make([]string, 0, len(c.Tokens))
	for name := range c.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		idx := -1
		for i, tok := range tokens {
			if tok.Name == name {
				idx = i

				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown token %q", name)
		}

		o := c.Tokens[name]
		if o.Base != nil {
			tokens[idx].Base = *o.Base
		}
		if o.Min != nil {
			tokens[idx].Min = *o.Min
		}
		if o.Max != nil {
			tokens[idx].Max = *o.Max
		}
	}

	return tokens, nil
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	extendSchemaWithEnum(jss, "apiVersion", "API Version", ValidAPIVersions)
	extendSchemaWithEnum(jss, "kind", "Kind", ValidKinds)
}

func extendSchemaWithEnum(jss *jsonschema.Schema, property, title string, values []string) {
	prop, ok := jss.Properties.Get(property)
	if !ok {
		panic(fmt.Sprintf("%s property not found in schema", property))
	}

	for _, value := range values {
		prop.OneOf = append(prop.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: value,
			Title: title,
		})
	}

	_, _ = jss.Properties.Set(property, prop)
}

// MarshalYAML serializes the config to YAML.
func (c Config) MarshalYAML() ([]byte, error) {
	type alias Config

	b := &bytes.Buffer{}

	enc := yaml.NewEncoder(b)

	err := enc.Encode(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	defer func() {
		err := enc.Close()
		if err != nil {
			slog.Error("failed to close YAML encoder", slog.Any("error", err))
		}
	}()

	return b.Bytes(), nil
}

// WriteDefault writes the embedded default config.yaml to path, unless a
// regular file already exists there.
func WriteDefault(path string) error {
	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		if err == nil && pathInfo.Mode().IsRegular() {
			return nil // Config already exists.
		}
		if pathInfo.IsDir() {
			return fmt.Errorf("%s: path is a directory", path)
		}

		return fmt.Errorf("%s: unknown file state", path)
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	slog.Info("write default configuration", slog.String("path", path))

	err = os.WriteFile(path, defaultConfigYAML, 0o600)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// GetPath returns the path to the configuration file.
func GetPath() string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, "viewscale", "config.yaml")
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", "viewscale", "config.yaml")
	}

	tmpConfig := filepath.Join(os.TempDir(), "viewscale", "config.yaml")

	slog.Warn("could not determine user config directory, using temp path for config",
		slog.String("path", tmpConfig),
	)

	return tmpConfig
}
