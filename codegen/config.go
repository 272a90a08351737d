package codegen

import "github.com/syssam/grpc-swift-gen/codegen/swift"

// AccessLevel is the visibility modifier applied uniformly to generated
// declarations, ordered from most to least restrictive.
type AccessLevel int

const (
	AccessFilePrivate AccessLevel = iota
	AccessInternal
	AccessPackage
	AccessPublic
)

// String returns the Swift keyword for the access level.
func (l AccessLevel) String() string {
	switch l {
	case AccessFilePrivate:
		return "fileprivate"
	case AccessInternal:
		return "internal"
	case AccessPackage:
		return "package"
	case AccessPublic:
		return "public"
	default:
		return ""
	}
}

// Valid reports whether the level is one of the four defined levels.
func (l AccessLevel) Valid() bool {
	return l >= AccessFilePrivate && l <= AccessPublic
}

// ParseAccessLevel maps a keyword to its AccessLevel.
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch s {
	case "fileprivate":
		return AccessFilePrivate, nil
	case "internal":
		return AccessInternal, nil
	case "package":
		return AccessPackage, nil
	case "public":
		return AccessPublic, nil
	default:
		return 0, NewConfigError("AccessLevel", s, "unsupported access level; use fileprivate, internal, package, or public")
	}
}

// Config holds the generation settings of one Generator.
type Config struct {
	// AccessLevel is applied to every generated declaration.
	AccessLevel AccessLevel
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
	// Client and Server gate the client/server translators. Both false is
	// legal and yields only the alias skeleton.
	Client bool
	Server bool
	// ExtraModuleImports are module names imported in addition to the
	// schema-derived dependencies.
	ExtraModuleImports []string
	// AvailabilityOSVersions is the platform list of availability
	// annotations on concurrency-gated declarations.
	AvailabilityOSVersions []swift.OSVersion
}

// DefaultAvailability returns the default minimum platform versions of the
// generated concurrency-gated declarations.
func DefaultAvailability() []swift.OSVersion {
	return []swift.OSVersion{
		{OS: "macOS", Version: "15.0"},
		{OS: "iOS", Version: "18.0"},
		{OS: "watchOS", Version: "11.0"},
		{OS: "tvOS", Version: "18.0"},
		{OS: "visionOS", Version: "2.0"},
	}
}

func defaultConfig() *Config {
	return &Config{
		AccessLevel:            AccessInternal,
		IndentWidth:            4,
		AvailabilityOSVersions: DefaultAvailability(),
	}
}
