package swift

import "fmt"

// Decl is a single Swift declaration in the generated source tree.
// The concrete variants form a closed set consumed by the renderer.
type Decl interface {
	decl()
}

// Namespace is an empty enum used as a nominal namespace. Its members are
// rendered inside the enum body, one level deeper.
type Namespace struct {
	Doc       string
	Name      string
	Available bool
	Decls     []Decl
}

// Protocol declares a protocol with function requirements. Requirements
// carry no access keyword; Swift forbids it inside protocol bodies.
type Protocol struct {
	Doc       string
	Name      string
	Refines   []string
	Available bool
	Funcs     []FuncSignature
}

// TypeAlias declares a typealias.
type TypeAlias struct {
	Doc       string
	Name      string
	Target    string
	Available bool
}

// Extension attaches concrete function bodies to an existing type or
// protocol. The extension keyword itself takes no access modifier; the
// configured access level is applied to each member instead.
type Extension struct {
	Doc       string
	Target    string
	Available bool
	Funcs     []Function
}

// Constant declares a let binding. When Elements is non-nil the value is
// rendered as a multi-line array literal and Value is ignored.
type Constant struct {
	Doc      string
	Name     string
	Type     string
	Value    string
	Elements []string
	Static   bool
}

// Struct declares a concrete struct with stored properties, initializers
// and functions as members.
type Struct struct {
	Doc       string
	Name      string
	Conforms  []string
	Available bool
	Decls     []Decl
}

// Property is a stored let property inside a Struct.
type Property struct {
	Doc     string
	Name    string
	Type    string
	Private bool
}

// Function is a concrete function with a body.
type Function struct {
	Signature FuncSignature
	Body      []Line
}

// FuncSignature describes a function header. Initializers set Initializer
// and leave Name empty.
type FuncSignature struct {
	Doc           string
	Name          string
	Initializer   bool
	GenericParams []string
	Params        []Param
	Async         bool
	Throws        bool
	Result        string
	Where         string
}

// Param is a single function parameter. Label is the external argument
// label; when empty or equal to Name only the name is rendered.
type Param struct {
	Label   string
	Name    string
	Type    string
	Default string
}

// Line is one statement line inside a function body. Depth is relative to
// the body's base indentation.
type Line struct {
	Depth int
	Text  string
}

// Linef formats a body line at the given relative depth.
func Linef(depth int, format string, a ...any) Line {
	return Line{Depth: depth, Text: fmt.Sprintf(format, a...)}
}

func (Namespace) decl() {}
func (Protocol) decl()  {}
func (TypeAlias) decl() {}
func (Extension) decl() {}
func (Constant) decl()  {}
func (Struct) decl()    {}
func (Property) decl()  {}
func (Function) decl()  {}

// PreconcurrencyKind states whether an import needs the @preconcurrency
// attribute.
type PreconcurrencyKind int

const (
	// PreconcurrencyNotRequired renders a plain import.
	PreconcurrencyNotRequired PreconcurrencyKind = iota
	// PreconcurrencyRequired renders @preconcurrency unconditionally.
	PreconcurrencyRequired
	// PreconcurrencyRequiredOnPlatforms renders the attributed import under
	// an #if os(...) check and the plain import in the #else branch.
	PreconcurrencyRequiredOnPlatforms
)

// ImportItemKind selects the declaration kind of an item import
// (import struct Foo.Bar).
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

// ImportItem narrows an import to a single declaration of a module.
type ImportItem struct {
	Kind ImportItemKind
	Name string
}

// Import is one module import of the generated file.
type Import struct {
	Module         string
	Item           *ImportItem
	SPI            string
	Preconcurrency PreconcurrencyKind
	Platforms      []string
}

// CodeBlock groups declarations emitted by one translator pass, with an
// optional leading line comment.
type CodeBlock struct {
	Comment string
	Decls   []Decl
}

// File is the root of the IR: a rendered source file in declaration order.
type File struct {
	Header  string
	Imports []Import
	Blocks  []CodeBlock
}

// OSVersion is a minimum platform version used in availability annotations.
type OSVersion struct {
	OS      string
	Version string
}
