package codegen

// Name is an identifier in the three casings used by generated code.
// An all-empty Name marks "no namespace" wherever a Name is optional.
type Name struct {
	// Base is the identifier as written in the schema.
	Base string
	// GeneratedUpperCase is the UpperCamelCase form used for generated
	// types.
	GeneratedUpperCase string
	// GeneratedLowerCase is the lowerCamelCase form used for generated
	// functions.
	GeneratedLowerCase string
}

// IsEmpty reports whether the name carries no identifier at all.
func (n Name) IsEmpty() bool {
	return n.Base == "" && n.GeneratedUpperCase == "" && n.GeneratedLowerCase == ""
}

// MethodDescriptor describes a single RPC method of a service.
type MethodDescriptor struct {
	// Documentation is the doc text attached to the generated
	// declarations, without comment markers.
	Documentation string
	Name          Name
	// InputStreaming and OutputStreaming determine the call shape:
	// unary, client-streaming, server-streaming or bidirectional.
	InputStreaming  bool
	OutputStreaming bool
	// InputType and OutputType are fully-qualified Swift type names of the
	// request and response messages.
	InputType  string
	OutputType string
}

// callShape is one of the four streaming shapes of a method.
type callShape int

const (
	shapeUnary callShape = iota
	shapeClientStreaming
	shapeServerStreaming
	shapeBidirectional
)

func (m MethodDescriptor) shape() callShape {
	switch {
	case m.InputStreaming && m.OutputStreaming:
		return shapeBidirectional
	case m.InputStreaming:
		return shapeClientStreaming
	case m.OutputStreaming:
		return shapeServerStreaming
	default:
		return shapeUnary
	}
}

// ServiceDescriptor describes one service of the request.
type ServiceDescriptor struct {
	Documentation string
	Name          Name
	// Namespace groups services; an empty Name places the service at the
	// top level of the generated file.
	Namespace Name
	Methods   []MethodDescriptor
}

// fullyQualifiedName is the dotted schema name registered with the RPC
// runtime, e.g. "helloworld.Greeter".
func (s ServiceDescriptor) fullyQualifiedName() string {
	if s.Namespace.Base == "" {
		return s.Name.Base
	}
	return s.Namespace.Base + "." + s.Name.Base
}

// generatedTypePrefix is the underscore-joined prefix of the top-level
// generated types, e.g. "Helloworld_Greeter".
func (s ServiceDescriptor) generatedTypePrefix() string {
	if s.Namespace.GeneratedUpperCase == "" {
		return s.Name.GeneratedUpperCase
	}
	return s.Namespace.GeneratedUpperCase + "_" + s.Name.GeneratedUpperCase
}

// namespacedTypePath is the dotted path of the service enum, e.g.
// "Helloworld.Greeter", used to reference nested aliases.
func (s ServiceDescriptor) namespacedTypePath() string {
	if s.Namespace.GeneratedUpperCase == "" {
		return s.Name.GeneratedUpperCase
	}
	return s.Namespace.GeneratedUpperCase + "." + s.Name.GeneratedUpperCase
}

// PreconcurrencyKind states whether importing a dependency requires the
// @preconcurrency attribute.
type PreconcurrencyKind int

const (
	PreconcurrencyNotRequired PreconcurrencyKind = iota
	PreconcurrencyRequired
	PreconcurrencyRequiredOnPlatforms
)

// Preconcurrency is the concurrency-availability requirement of a
// dependency. Platforms is consulted only for
// PreconcurrencyRequiredOnPlatforms.
type Preconcurrency struct {
	Kind      PreconcurrencyKind
	Platforms []string
}

// ImportItemKind is the declaration kind of a single-item import.
type ImportItemKind string

const (
	ImportItemTypealias ImportItemKind = "typealias"
	ImportItemStruct    ImportItemKind = "struct"
	ImportItemClass     ImportItemKind = "class"
	ImportItemEnum      ImportItemKind = "enum"
	ImportItemProtocol  ImportItemKind = "protocol"
	ImportItemLet       ImportItemKind = "let"
	ImportItemVar       ImportItemKind = "var"
	ImportItemFunc      ImportItemKind = "func"
)

// ImportItem narrows a dependency to a single declaration of its module.
type ImportItem struct {
	Kind ImportItemKind
	Name string
}

// Dependency is a module the generated code imports in addition to the core
// runtime module.
type Dependency struct {
	Module string
	// Item, when set, imports a single declaration instead of the whole
	// module.
	Item *ImportItem
	// SPI, when set, marks the import with @_spi(<SPI>).
	SPI            string
	Preconcurrency Preconcurrency
}

// CodeGenerationRequest is the immutable input of one generation call,
// built by the schema-parsing frontend.
type CodeGenerationRequest struct {
	// LeadingTrivia is the license/documentation header placed verbatim at
	// the top of the generated file, comment markers included.
	LeadingTrivia string
	// FileName is the schema file name; the output name is derived from it
	// by replacing the extension.
	FileName     string
	Dependencies []Dependency
	Services     []ServiceDescriptor
}
