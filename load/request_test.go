package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/syssam/grpc-swift-gen/codegen"
)

func helloworldDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("helloworld.proto"),
		Syntax:  proto.String("proto3"),
		Package: proto.String("helloworld"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("example.com/gen/helloworld"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: proto.String("HelloRequest")},
			{Name: proto.String("HelloReply")},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("Greeter"),
			Method: []*descriptorpb.MethodDescriptorProto{
				{
					Name:       proto.String("SayHello"),
					InputType:  proto.String(".helloworld.HelloRequest"),
					OutputType: proto.String(".helloworld.HelloReply"),
				},
				{
					Name:            proto.String("SayHelloStreaming"),
					InputType:       proto.String(".helloworld.HelloRequest"),
					OutputType:      proto.String(".helloworld.HelloReply"),
					ClientStreaming: proto.Bool(true),
					ServerStreaming: proto.Bool(true),
				},
			},
		}},
	}
}

// parseFile runs the descriptors through protogen the way protoc delivers
// them to the plugin.
func parseFile(t *testing.T, target string, fds ...*descriptorpb.FileDescriptorProto) *protogen.File {
	t.Helper()
	gen, err := protogen.Options{}.New(&pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{target},
		ProtoFile:      fds,
	})
	require.NoError(t, err)
	file, ok := gen.FilesByPath[target]
	require.True(t, ok, "file %q not parsed", target)
	return file
}

func TestBuild(t *testing.T) {
	file := parseFile(t, "helloworld.proto", helloworldDescriptor())
	req, err := Build(file, &Config{})
	require.NoError(t, err)

	t.Run("header names the schema file", func(t *testing.T) {
		assert.Equal(t,
			"// Generated by protoc-gen-grpc-swift. DO NOT EDIT.\n"+
				"// swift-format-ignore-file\n"+
				"//\n"+
				"// Source: helloworld.proto\n",
			req.LeadingTrivia)
	})

	t.Run("file name and serializer dependency", func(t *testing.T) {
		assert.Equal(t, "helloworld.proto", req.FileName)
		assert.Equal(t, []codegen.Dependency{{Module: "GRPCProtobuf"}}, req.Dependencies)
	})

	t.Run("service", func(t *testing.T) {
		require.Len(t, req.Services, 1)
		svc := req.Services[0]
		assert.Equal(t, codegen.Name{Base: "Greeter", GeneratedUpperCase: "Greeter", GeneratedLowerCase: "greeter"}, svc.Name)
		assert.Equal(t, codegen.Name{Base: "helloworld", GeneratedUpperCase: "Helloworld", GeneratedLowerCase: "helloworld"}, svc.Namespace)
	})

	t.Run("methods", func(t *testing.T) {
		require.Len(t, req.Services[0].Methods, 2)
		unary := req.Services[0].Methods[0]
		assert.Equal(t, "SayHello", unary.Name.Base)
		assert.False(t, unary.InputStreaming)
		assert.False(t, unary.OutputStreaming)
		assert.Equal(t, "Helloworld_HelloRequest", unary.InputType)
		assert.Equal(t, "Helloworld_HelloReply", unary.OutputType)

		bidi := req.Services[0].Methods[1]
		assert.True(t, bidi.InputStreaming)
		assert.True(t, bidi.OutputStreaming)
	})
}

func TestBuild_FeedsGenerator(t *testing.T) {
	file := parseFile(t, "helloworld.proto", helloworldDescriptor())
	cfg := &Config{}
	req, err := Build(file, cfg)
	require.NoError(t, err)

	opts, err := cfg.CodegenOptions()
	require.NoError(t, err)
	g, err := codegen.New(opts...)
	require.NoError(t, err)
	out, err := g.Generate(req)
	require.NoError(t, err)

	assert.Equal(t, "helloworld.grpc.swift", out.Name)
	assert.Contains(t, out.Contents, "import GRPCCore\nimport GRPCProtobuf\n")
	assert.Contains(t, out.Contents, "internal enum Helloworld {")
	assert.Contains(t, out.Contents, "internal enum Greeter {")
	assert.Contains(t, out.Contents, `GRPCCore.MethodDescriptor(service: "helloworld.Greeter", method: "SayHello")`)
	assert.Contains(t, out.Contents, "internal protocol Helloworld_Greeter_StreamingServiceProtocol")
	assert.Contains(t, out.Contents, "internal struct Helloworld_Greeter_Client: Helloworld.Greeter.ClientProtocol {")
}

func TestBuild_ModuleMappings(t *testing.T) {
	other := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("other.proto"),
		Syntax:  proto.String("proto3"),
		Package: proto.String("other"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("example.com/gen/other"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: proto.String("Payload")},
		},
	}
	main := helloworldDescriptor()
	main.Dependency = []string{"other.proto"}
	main.Service[0].Method[0].InputType = proto.String(".other.Payload")

	file := parseFile(t, "helloworld.proto", other, main)
	cfg := &Config{ModuleMappings: []ModuleMapping{{ProtoFile: "other.proto", Module: "OtherModule"}}}
	req, err := Build(file, cfg)
	require.NoError(t, err)

	assert.Equal(t, []codegen.Dependency{
		{Module: "GRPCProtobuf"},
		{Module: "OtherModule"},
	}, req.Dependencies)
	assert.Equal(t, "OtherModule.Other_Payload", req.Services[0].Methods[0].InputType)
}

func TestBuild_SurfacesDisabled(t *testing.T) {
	off := false
	file := parseFile(t, "helloworld.proto", helloworldDescriptor())
	req, err := Build(file, &Config{Client: &off, Server: &off})
	require.NoError(t, err)

	assert.Empty(t, req.Dependencies)
}

func TestDocText(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   protogen.Comments
		want string
	}{
		{"empty", "", ""},
		{"single line", " Says hello.\n", "Says hello."},
		{"multi line keeps blank lines", " First.\n\n Second.\n", "First.\n\nSecond."},
		{"only one leading space is stripped", "  indented\n", " indented"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docText(tt.in))
		})
	}
}
