package codegen

import (
	"fmt"

	"github.com/syssam/grpc-swift-gen/codegen/swift"
)

// translateClient builds the calling side for every service: the generic
// client protocol, the convenience extension injecting the canonical
// serializer pair, and the concrete client wrapping a transport handle.
func translateClient(services []ServiceDescriptor) []swift.CodeBlock {
	blocks := make([]swift.CodeBlock, 0, len(services))
	for _, svc := range services {
		blocks = append(blocks, swift.CodeBlock{
			Decls: []swift.Decl{
				clientProtocol(svc),
				clientConvenienceExtension(svc),
				clientStruct(svc),
			},
		})
	}
	return blocks
}

// clientProtocol exposes one generic continuation-passing call per method,
// taking an explicit serializer/deserializer pair.
func clientProtocol(svc ServiceDescriptor) swift.Protocol {
	funcs := make([]swift.FuncSignature, 0, len(svc.Methods))
	for _, m := range svc.Methods {
		sig := clientSignature(m, true, false)
		sig.Doc = m.Documentation
		funcs = append(funcs, sig)
	}
	return swift.Protocol{
		Doc:       svc.Documentation,
		Name:      svc.generatedTypePrefix() + "_ClientProtocol",
		Refines:   []string{"Sendable"},
		Available: true,
		Funcs:     funcs,
	}
}

// clientConvenienceExtension supplies the overload that injects the
// canonical serializer/deserializer for the method's message types.
func clientConvenienceExtension(svc ServiceDescriptor) swift.Extension {
	funcs := make([]swift.Function, 0, len(svc.Methods))
	for _, m := range svc.Methods {
		sig := clientSignature(m, false, true)
		sig.Doc = m.Documentation
		funcs = append(funcs, swift.Function{
			Signature: sig,
			Body: []swift.Line{
				swift.Linef(0, "try await self.%s(", m.Name.GeneratedLowerCase),
				swift.Linef(1, "request: request,"),
				swift.Linef(1, "serializer: GRPCProtobuf.ProtobufSerializer<%s>(),", m.InputType),
				swift.Linef(1, "deserializer: GRPCProtobuf.ProtobufDeserializer<%s>(),", m.OutputType),
				swift.Linef(1, "options: options,"),
				swift.Linef(1, "onResponse: handleResponse"),
				swift.Linef(0, ")"),
			},
		})
	}
	return swift.Extension{
		Target:    svc.namespacedTypePath() + ".ClientProtocol",
		Available: true,
		Funcs:     funcs,
	}
}

// clientStruct is the concrete client: it wraps a GRPCCore.GRPCClient and
// forwards every call with the method's descriptor.
func clientStruct(svc ServiceDescriptor) swift.Struct {
	decls := []swift.Decl{
		swift.Property{Name: "client", Type: "GRPCCore.GRPCClient", Private: true},
		swift.Function{
			Signature: swift.FuncSignature{
				Doc:         "Creates a new client wrapping the given transport client.",
				Initializer: true,
				Params: []swift.Param{
					{Label: "wrapping", Name: "client", Type: "GRPCCore.GRPCClient"},
				},
			},
			Body: []swift.Line{
				swift.Linef(0, "self.client = client"),
			},
		},
	}
	for _, m := range svc.Methods {
		sig := clientSignature(m, true, true)
		sig.Doc = m.Documentation
		decls = append(decls, swift.Function{
			Signature: sig,
			Body: []swift.Line{
				swift.Linef(0, "try await self.client.%s(", clientCallVerb(m)),
				swift.Linef(1, "request: request,"),
				swift.Linef(1, "descriptor: %s.Method.%s.descriptor,", svc.namespacedTypePath(), m.Name.GeneratedUpperCase),
				swift.Linef(1, "serializer: serializer,"),
				swift.Linef(1, "deserializer: deserializer,"),
				swift.Linef(1, "options: options,"),
				swift.Linef(1, "onResponse: handleResponse"),
				swift.Linef(0, ")"),
			},
		})
	}
	return swift.Struct{
		Doc:       svc.Documentation,
		Name:      svc.generatedTypePrefix() + "_Client",
		Conforms:  []string{svc.namespacedTypePath() + ".ClientProtocol"},
		Available: true,
		Decls:     decls,
	}
}

// clientSignature builds a client call signature. withSerializers includes
// the explicit serializer/deserializer pair; withDefaults adds the default
// value for the call options.
func clientSignature(m MethodDescriptor, withSerializers, withDefaults bool) swift.FuncSignature {
	params := []swift.Param{
		{Name: "request", Type: fmt.Sprintf("GRPCCore.%s<%s>", clientRequestType(m), m.InputType)},
	}
	if withSerializers {
		params = append(params,
			swift.Param{Name: "serializer", Type: fmt.Sprintf("some GRPCCore.MessageSerializer<%s>", m.InputType)},
			swift.Param{Name: "deserializer", Type: fmt.Sprintf("some GRPCCore.MessageDeserializer<%s>", m.OutputType)},
		)
	}
	options := swift.Param{Name: "options", Type: "GRPCCore.CallOptions"}
	if withDefaults {
		options.Default = ".defaults"
	}
	params = append(params, options, swift.Param{
		Label: "onResponse",
		Name:  "handleResponse",
		Type: fmt.Sprintf(
			"@Sendable @escaping (GRPCCore.%s<%s>) async throws -> Result",
			clientResponseType(m), m.OutputType,
		),
	})
	return swift.FuncSignature{
		Name:          m.Name.GeneratedLowerCase,
		GenericParams: []string{"Result"},
		Params:        params,
		Async:         true,
		Throws:        true,
		Result:        "Result",
		Where:         "Result: Sendable",
	}
}

func clientRequestType(m MethodDescriptor) string {
	if m.InputStreaming {
		return "StreamingClientRequest"
	}
	return "ClientRequest"
}

func clientResponseType(m MethodDescriptor) string {
	if m.OutputStreaming {
		return "StreamingClientResponse"
	}
	return "ClientResponse"
}

func clientCallVerb(m MethodDescriptor) string {
	switch m.shape() {
	case shapeClientStreaming:
		return "clientStreaming"
	case shapeServerStreaming:
		return "serverStreaming"
	case shapeBidirectional:
		return "bidirectionalStreaming"
	default:
		return "unary"
	}
}
