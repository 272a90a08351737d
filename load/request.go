// Package load builds CodeGenerationRequests from protobuf descriptors.
// It is the schema-parsing frontend of the generation pipeline: everything
// downstream of the request is handled by the codegen package.
package load

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"

	"github.com/syssam/grpc-swift-gen/codegen"
)

// serializationModule provides the canonical serializer/deserializer pair
// injected by the generated convenience overloads.
const serializationModule = "GRPCProtobuf"

// Build maps one parsed schema file to a CodeGenerationRequest.
func Build(file *protogen.File, cfg *Config) (*codegen.CodeGenerationRequest, error) {
	mappings := cfg.mappingIndex()
	req := &codegen.CodeGenerationRequest{
		LeadingTrivia: header(file),
		FileName:      file.Desc.Path(),
		Dependencies:  dependencies(file, cfg, mappings),
	}
	for _, svc := range file.Services {
		desc := codegen.ServiceDescriptor{
			Documentation: docText(svc.Comments.Leading),
			Name:          DeriveName(string(svc.Desc.Name())),
			Namespace:     NamespaceName(string(file.Desc.Package())),
		}
		for _, m := range svc.Methods {
			desc.Methods = append(desc.Methods, codegen.MethodDescriptor{
				Documentation:   docText(m.Comments.Leading),
				Name:            DeriveName(string(m.Desc.Name())),
				InputStreaming:  m.Desc.IsStreamingClient(),
				OutputStreaming: m.Desc.IsStreamingServer(),
				InputType:       MessageTypeName(m.Input.Desc, mappings),
				OutputType:      MessageTypeName(m.Output.Desc, mappings),
			})
		}
		req.Services = append(req.Services, desc)
	}
	return req, nil
}

// dependencies collects the serializer module plus one module per mapped
// schema import, in stable import order.
func dependencies(file *protogen.File, cfg *Config, mappings map[string]string) []codegen.Dependency {
	deps := []codegen.Dependency{}
	if cfg.ClientEnabled() || cfg.ServerEnabled() {
		deps = append(deps, codegen.Dependency{Module: serializationModule})
	}
	seen := make(map[string]bool)
	imports := file.Desc.Imports()
	for i := 0; i < imports.Len(); i++ {
		imp := imports.Get(i)
		module, ok := mappings[imp.Path()]
		if !ok || seen[module] {
			continue
		}
		seen[module] = true
		deps = append(deps, codegen.Dependency{Module: module})
	}
	return deps
}

func header(file *protogen.File) string {
	var b strings.Builder
	b.WriteString("// Generated by protoc-gen-grpc-swift. DO NOT EDIT.\n")
	b.WriteString("// swift-format-ignore-file\n")
	b.WriteString("//\n")
	fmt.Fprintf(&b, "// Source: %s\n", file.Desc.Path())
	return b.String()
}

// docText strips the per-line comment padding protoc keeps in leading
// comments, yielding the raw text the renderer re-wraps as /// lines.
func docText(c protogen.Comments) string {
	s := strings.TrimSuffix(string(c), "\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimPrefix(ln, " ")
	}
	return strings.Join(lines, "\n")
}
