package load

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/grpc-swift-gen/codegen"
)

// Config holds the frontend settings merged from plugin parameters and the
// optional YAML config file. Parameters win over file values.
type Config struct {
	// Visibility is the access level keyword of generated declarations.
	Visibility string `yaml:"visibility"`
	// Client and Server gate the generated surfaces; nil means enabled.
	Client *bool `yaml:"client"`
	Server *bool `yaml:"server"`
	// Indentation is the number of spaces per nesting level; 0 keeps the
	// generator default.
	Indentation int `yaml:"indentation"`
	// ExtraModuleImports are imported beyond the schema-derived modules.
	ExtraModuleImports []string `yaml:"extraModuleImports"`
	// ModuleMappings qualify type references whose defining schema file
	// lives in another module.
	ModuleMappings []ModuleMapping `yaml:"moduleMappings"`
	// LogLevel enables diagnostic logging on stderr; empty disables it.
	LogLevel string `yaml:"logLevel"`
}

// ModuleMapping maps one schema file to the module its generated types
// live in.
type ModuleMapping struct {
	ProtoFile string `yaml:"protoFile"`
	Module    string `yaml:"module"`
}

// ReadConfig parses a YAML config file. Unknown keys are rejected.
func ReadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("load: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ClientEnabled reports whether client generation is on (the default).
func (c *Config) ClientEnabled() bool {
	return c.Client == nil || *c.Client
}

// ServerEnabled reports whether server generation is on (the default).
func (c *Config) ServerEnabled() bool {
	return c.Server == nil || *c.Server
}

// CodegenOptions maps the frontend config to generator options.
func (c *Config) CodegenOptions() ([]codegen.Option, error) {
	opts := []codegen.Option{
		codegen.WithClient(c.ClientEnabled()),
		codegen.WithServer(c.ServerEnabled()),
	}
	if c.Visibility != "" {
		level, err := codegen.ParseAccessLevel(c.Visibility)
		if err != nil {
			return nil, err
		}
		opts = append(opts, codegen.WithAccessLevel(level))
	}
	if c.Indentation != 0 {
		opts = append(opts, codegen.WithIndentWidth(c.Indentation))
	}
	if len(c.ExtraModuleImports) > 0 {
		opts = append(opts, codegen.WithExtraModuleImports(c.ExtraModuleImports...))
	}
	return opts, nil
}

// mappingIndex returns the schema-file to module index used during request
// construction.
func (c *Config) mappingIndex() map[string]string {
	if len(c.ModuleMappings) == 0 {
		return nil
	}
	index := make(map[string]string, len(c.ModuleMappings))
	for _, m := range c.ModuleMappings {
		index[m.ProtoFile] = m.Module
	}
	return index
}
