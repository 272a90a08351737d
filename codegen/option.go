package codegen

import "github.com/syssam/grpc-swift-gen/codegen/swift"

// Option configures code generation.
type Option func(*Config) error

// WithAccessLevel sets the access level of generated declarations.
func WithAccessLevel(level AccessLevel) Option {
	return func(c *Config) error {
		if !level.Valid() {
			return NewConfigError("AccessLevel", level, "unsupported access level")
		}
		c.AccessLevel = level
		return nil
	}
}

// WithIndentWidth sets the number of spaces per indentation level.
func WithIndentWidth(width int) Option {
	return func(c *Config) error {
		if width <= 0 {
			return NewConfigError("IndentWidth", width, "indentation width must be positive")
		}
		c.IndentWidth = width
		return nil
	}
}

// WithClient enables or disables generation of client code.
func WithClient(enabled bool) Option {
	return func(c *Config) error {
		c.Client = enabled
		return nil
	}
}

// WithServer enables or disables generation of server code.
func WithServer(enabled bool) Option {
	return func(c *Config) error {
		c.Server = enabled
		return nil
	}
}

// WithExtraModuleImports appends module names imported beyond the
// schema-derived dependencies.
func WithExtraModuleImports(modules ...string) Option {
	return func(c *Config) error {
		for _, m := range modules {
			if m == "" {
				return NewConfigError("ExtraModuleImports", modules, "module name cannot be empty")
			}
		}
		c.ExtraModuleImports = append(c.ExtraModuleImports, modules...)
		return nil
	}
}

// WithAvailabilityOSVersions replaces the platform list used in
// availability annotations. An empty list disables the annotations.
func WithAvailabilityOSVersions(versions ...swift.OSVersion) Option {
	return func(c *Config) error {
		c.AvailabilityOSVersions = versions
		return nil
	}
}

// Apply applies options to the config. It returns the first error
// encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
