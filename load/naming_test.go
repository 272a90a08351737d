package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/syssam/grpc-swift-gen/codegen"
)

func TestDeriveName(t *testing.T) {
	for _, tt := range []struct {
		base, upper, lower string
	}{
		{"say_hello", "SayHello", "sayHello"},
		{"SayHello", "SayHello", "sayHello"},
		{"sayHello", "SayHello", "sayHello"},
		{"greeter", "Greeter", "greeter"},
		{"say-hello", "SayHello", "sayHello"},
	} {
		got := DeriveName(tt.base)
		assert.Equal(t, codegen.Name{
			Base:               tt.base,
			GeneratedUpperCase: tt.upper,
			GeneratedLowerCase: tt.lower,
		}, got, "base %q", tt.base)
	}
}

func TestNamespaceName(t *testing.T) {
	t.Run("dotted package keeps component boundaries", func(t *testing.T) {
		got := NamespaceName("hello.world")
		assert.Equal(t, "hello.world", got.Base)
		assert.Equal(t, "Hello_World", got.GeneratedUpperCase)
		assert.Equal(t, "hello_World", got.GeneratedLowerCase)
	})

	t.Run("single component", func(t *testing.T) {
		got := NamespaceName("helloworld")
		assert.Equal(t, "Helloworld", got.GeneratedUpperCase)
		assert.Equal(t, "helloworld", got.GeneratedLowerCase)
	})

	t.Run("empty package is the empty name", func(t *testing.T) {
		assert.True(t, NamespaceName("").IsEmpty())
	})
}

// nestedMessageFile builds a descriptor for a file with package hello.world
// containing message Outer with nested message Inner.
func nestedMessageFile(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	file, err := protodesc.NewFile(&descriptorpb.FileDescriptorProto{
		Name:    proto.String("other.proto"),
		Syntax:  proto.String("proto3"),
		Package: proto.String("hello.world"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Outer"),
			NestedType: []*descriptorpb.DescriptorProto{{
				Name: proto.String("Inner"),
			}},
		}},
	}, nil)
	require.NoError(t, err)
	return file
}

func TestMessageTypeName(t *testing.T) {
	file := nestedMessageFile(t)
	outer := file.Messages().Get(0)
	inner := outer.Messages().Get(0)

	t.Run("outermost type carries the package prefix", func(t *testing.T) {
		assert.Equal(t, "Hello_World_Outer", MessageTypeName(outer, nil))
	})

	t.Run("nested types join with dots", func(t *testing.T) {
		assert.Equal(t, "Hello_World_Outer.Inner", MessageTypeName(inner, nil))
	})

	t.Run("mapped files qualify with their module", func(t *testing.T) {
		mappings := map[string]string{"other.proto": "OtherModule"}
		assert.Equal(t, "OtherModule.Hello_World_Outer.Inner", MessageTypeName(inner, mappings))
	})

	t.Run("unrelated mappings leave the name alone", func(t *testing.T) {
		mappings := map[string]string{"elsewhere.proto": "OtherModule"}
		assert.Equal(t, "Hello_World_Outer", MessageTypeName(outer, mappings))
	})
}
