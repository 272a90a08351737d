package codegen_test

import (
	"fmt"
	"testing"

	"github.com/syssam/grpc-swift-gen/codegen"
)

func benchRequest(services, methods int) *codegen.CodeGenerationRequest {
	req := &codegen.CodeGenerationRequest{
		FileName:     "bench.proto",
		Dependencies: []codegen.Dependency{{Module: "GRPCProtobuf"}},
	}
	for s := 0; s < services; s++ {
		svc := codegen.ServiceDescriptor{
			Name: codegen.Name{
				Base:               fmt.Sprintf("Service%d", s),
				GeneratedUpperCase: fmt.Sprintf("Service%d", s),
				GeneratedLowerCase: fmt.Sprintf("service%d", s),
			},
			Namespace: codegen.Name{
				Base:               "bench",
				GeneratedUpperCase: "Bench",
				GeneratedLowerCase: "bench",
			},
		}
		for m := 0; m < methods; m++ {
			svc.Methods = append(svc.Methods, codegen.MethodDescriptor{
				Name: codegen.Name{
					Base:               fmt.Sprintf("Method%d", m),
					GeneratedUpperCase: fmt.Sprintf("Method%d", m),
					GeneratedLowerCase: fmt.Sprintf("method%d", m),
				},
				InputStreaming:  m%2 == 0,
				OutputStreaming: m%3 == 0,
				InputType:       "Bench_Request",
				OutputType:      "Bench_Response",
			})
		}
		req.Services = append(req.Services, svc)
	}
	return req
}

func BenchmarkGenerate(b *testing.B) {
	for _, size := range []struct {
		name              string
		services, methods int
	}{
		{"1x1", 1, 1},
		{"4x8", 4, 8},
		{"16x32", 16, 32},
	} {
		b.Run(size.name, func(b *testing.B) {
			g, err := codegen.New(codegen.WithClient(true), codegen.WithServer(true))
			if err != nil {
				b.Fatal(err)
			}
			req := benchRequest(size.services, size.methods)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := g.Generate(req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
