package codegen

import (
	"fmt"

	"github.com/syssam/grpc-swift-gen/codegen/swift"
)

// translateServer builds the two-tier server interface pair for every
// service: the full-duplex streaming protocol with its routing extension,
// and the shape-narrowed protocol with its adaptation extension.
func translateServer(services []ServiceDescriptor) []swift.CodeBlock {
	blocks := make([]swift.CodeBlock, 0, len(services))
	for _, svc := range services {
		blocks = append(blocks, swift.CodeBlock{
			Decls: []swift.Decl{
				streamingServiceProtocol(svc),
				registerMethodsExtension(svc),
				serviceProtocol(svc),
				serviceAdaptationExtension(svc),
			},
		})
	}
	return blocks
}

// streamingServiceProtocol declares every method in the full-duplex shape,
// regardless of the method's streaming flags.
func streamingServiceProtocol(svc ServiceDescriptor) swift.Protocol {
	funcs := make([]swift.FuncSignature, 0, len(svc.Methods))
	for _, m := range svc.Methods {
		funcs = append(funcs, swift.FuncSignature{
			Doc:    m.Documentation,
			Name:   m.Name.GeneratedLowerCase,
			Params: serverParams(m.InputType, true),
			Async:  true,
			Throws: true,
			Result: serverResult(m.OutputType, true),
		})
	}
	return swift.Protocol{
		Doc:       svc.Documentation,
		Name:      svc.generatedTypePrefix() + "_StreamingServiceProtocol",
		Refines:   []string{"GRPCCore.RegistrableRPCService"},
		Available: true,
		Funcs:     funcs,
	}
}

// registerMethodsExtension builds the dispatch table: one registration per
// method, pairing the method descriptor with its serializer/deserializer
// and a handler forwarding to the protocol requirement.
func registerMethodsExtension(svc ServiceDescriptor) swift.Extension {
	var body []swift.Line
	for _, m := range svc.Methods {
		body = append(body,
			swift.Linef(0, "router.registerHandler("),
			swift.Linef(1, "forMethod: %s.Method.%s.descriptor,", svc.namespacedTypePath(), m.Name.GeneratedUpperCase),
			swift.Linef(1, "deserializer: GRPCProtobuf.ProtobufDeserializer<%s>(),", m.InputType),
			swift.Linef(1, "serializer: GRPCProtobuf.ProtobufSerializer<%s>(),", m.OutputType),
			swift.Linef(1, "handler: { request, context in"),
			swift.Linef(2, "try await self.%s(request: request, context: context)", m.Name.GeneratedLowerCase),
			swift.Linef(1, "}"),
			swift.Linef(0, ")"),
		)
	}
	return swift.Extension{
		Target:    svc.namespacedTypePath() + ".StreamingServiceProtocol",
		Available: true,
		Funcs: []swift.Function{{
			Signature: swift.FuncSignature{
				Name: "registerMethods",
				Params: []swift.Param{
					{Label: "with", Name: "router", Type: "inout GRPCCore.RPCRouter"},
				},
			},
			Body: body,
		}},
	}
}

// serviceProtocol narrows each method signature to the shape its streaming
// flags imply. Bidirectional methods cannot be narrowed and are not
// redeclared.
func serviceProtocol(svc ServiceDescriptor) swift.Protocol {
	var funcs []swift.FuncSignature
	for _, m := range svc.Methods {
		if m.shape() == shapeBidirectional {
			continue
		}
		funcs = append(funcs, swift.FuncSignature{
			Doc:    m.Documentation,
			Name:   m.Name.GeneratedLowerCase,
			Params: serverParams(m.InputType, m.InputStreaming),
			Async:  true,
			Throws: true,
			Result: serverResult(m.OutputType, m.OutputStreaming),
		})
	}
	return swift.Protocol{
		Doc:       svc.Documentation,
		Name:      svc.generatedTypePrefix() + "_ServiceProtocol",
		Refines:   []string{svc.generatedTypePrefix() + "_StreamingServiceProtocol"},
		Available: true,
		Funcs:     funcs,
	}
}

// serviceAdaptationExtension bridges the narrow protocol back to the
// streaming shape: single inputs are read from the stream's first element
// and single outputs are wrapped into a one-element stream. Bidirectional
// methods need no shim.
func serviceAdaptationExtension(svc ServiceDescriptor) swift.Extension {
	var funcs []swift.Function
	for _, m := range svc.Methods {
		if m.shape() == shapeBidirectional {
			continue
		}
		funcs = append(funcs, swift.Function{
			Signature: swift.FuncSignature{
				Name:   m.Name.GeneratedLowerCase,
				Params: serverParams(m.InputType, true),
				Async:  true,
				Throws: true,
				Result: serverResult(m.OutputType, true),
			},
			Body: adaptationBody(m),
		})
	}
	return swift.Extension{
		Target:    svc.namespacedTypePath() + ".ServiceProtocol",
		Available: true,
		Funcs:     funcs,
	}
}

func adaptationBody(m MethodDescriptor) []swift.Line {
	name := m.Name.GeneratedLowerCase
	switch m.shape() {
	case shapeUnary:
		return []swift.Line{
			swift.Linef(0, "let response = try await self.%s(", name),
			swift.Linef(1, "request: GRPCCore.ServerRequest(stream: request),"),
			swift.Linef(1, "context: context"),
			swift.Linef(0, ")"),
			swift.Linef(0, "return GRPCCore.StreamingServerResponse(single: response)"),
		}
	case shapeClientStreaming:
		return []swift.Line{
			swift.Linef(0, "let response = try await self.%s(request: request, context: context)", name),
			swift.Linef(0, "return GRPCCore.StreamingServerResponse(single: response)"),
		}
	case shapeServerStreaming:
		return []swift.Line{
			swift.Linef(0, "return try await self.%s(", name),
			swift.Linef(1, "request: GRPCCore.ServerRequest(stream: request),"),
			swift.Linef(1, "context: context"),
			swift.Linef(0, ")"),
		}
	default:
		return nil
	}
}

func serverParams(inputType string, streaming bool) []swift.Param {
	return []swift.Param{
		{Name: "request", Type: fmt.Sprintf("GRPCCore.%s<%s>", serverRequestType(streaming), inputType)},
		{Name: "context", Type: "GRPCCore.ServerContext"},
	}
}

func serverResult(outputType string, streaming bool) string {
	if streaming {
		return fmt.Sprintf("GRPCCore.StreamingServerResponse<%s>", outputType)
	}
	return fmt.Sprintf("GRPCCore.ServerResponse<%s>", outputType)
}

func serverRequestType(streaming bool) string {
	if streaming {
		return "StreamingServerRequest"
	}
	return "ServerRequest"
}
