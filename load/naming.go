package load

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/syssam/grpc-swift-gen/codegen"
)

// DeriveName builds the triple-cased Name for a schema identifier.
func DeriveName(base string) codegen.Name {
	upper := upperCamel(base)
	return codegen.Name{
		Base:               base,
		GeneratedUpperCase: upper,
		GeneratedLowerCase: lowerFirst(upper),
	}
}

// NamespaceName builds the Name of a schema package. Dotted packages keep
// their components visible in the generated casing: "hello.world" becomes
// "Hello_World". An empty package yields the empty Name.
func NamespaceName(pkg string) codegen.Name {
	if pkg == "" {
		return codegen.Name{}
	}
	parts := strings.Split(pkg, ".")
	for i, p := range parts {
		parts[i] = upperCamel(p)
	}
	upper := strings.Join(parts, "_")
	return codegen.Name{
		Base:               pkg,
		GeneratedUpperCase: upper,
		GeneratedLowerCase: lowerFirst(upper),
	}
}

// MessageTypeName renders the generated Swift name of a message type. The
// outermost type carries the camelized package prefix; nested types are
// joined with dots. When the defining file is mapped to another module the
// name is qualified with that module.
func MessageTypeName(desc protoreflect.MessageDescriptor, mappings map[string]string) string {
	var parts []string
	for d := desc; d != nil; {
		parts = append([]string{string(d.Name())}, parts...)
		parent, ok := d.Parent().(protoreflect.MessageDescriptor)
		if !ok {
			break
		}
		d = parent
	}
	file := desc.ParentFile()
	if pkg := string(file.Package()); pkg != "" {
		parts[0] = NamespaceName(pkg).GeneratedUpperCase + "_" + parts[0]
	}
	name := strings.Join(parts, ".")
	if module, ok := mappings[file.Path()]; ok {
		name = module + "." + name
	}
	return name
}

func upperCamel(s string) string {
	return inflect.Camelize(sanitize(s))
}

// sanitize maps characters that cannot appear in a Swift identifier to
// underscores so inflect treats them as word boundaries.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, s)
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
