package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/grpc-swift-gen/codegen"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grpc-swift-gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, `
visibility: public
server: false
indentation: 2
extraModuleImports:
  - Foundation
moduleMappings:
  - protoFile: other.proto
    module: OtherModule
logLevel: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "public", cfg.Visibility)
	assert.Nil(t, cfg.Client)
	require.NotNil(t, cfg.Server)
	assert.False(t, *cfg.Server)
	assert.Equal(t, 2, cfg.Indentation)
	assert.Equal(t, []string{"Foundation"}, cfg.ExtraModuleImports)
	assert.Equal(t, []ModuleMapping{{ProtoFile: "other.proto", Module: "OtherModule"}}, cfg.ModuleMappings)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestReadConfig_Missing(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadConfig_Malformed(t *testing.T) {
	_, err := ReadConfig(writeConfig(t, "visibility: [not, a, string"))
	assert.Error(t, err)
}

func TestConfig_Toggles(t *testing.T) {
	off := false
	on := true

	t.Run("nil means enabled", func(t *testing.T) {
		cfg := &Config{}
		assert.True(t, cfg.ClientEnabled())
		assert.True(t, cfg.ServerEnabled())
	})

	t.Run("explicit values win", func(t *testing.T) {
		cfg := &Config{Client: &off, Server: &on}
		assert.False(t, cfg.ClientEnabled())
		assert.True(t, cfg.ServerEnabled())
	})
}

func TestConfig_CodegenOptions(t *testing.T) {
	t.Run("defaults enable both surfaces", func(t *testing.T) {
		opts, err := (&Config{}).CodegenOptions()
		require.NoError(t, err)

		g, err := codegen.New(opts...)
		require.NoError(t, err)
		out, err := g.Generate(&codegen.CodeGenerationRequest{Services: []codegen.ServiceDescriptor{{
			Name: DeriveName("Greeter"),
		}}})
		require.NoError(t, err)
		assert.Contains(t, out.Contents, "Greeter_ClientProtocol")
		assert.Contains(t, out.Contents, "Greeter_StreamingServiceProtocol")
	})

	t.Run("visibility and indentation propagate", func(t *testing.T) {
		off := false
		opts, err := (&Config{Visibility: "public", Indentation: 2, Client: &off, Server: &off}).CodegenOptions()
		require.NoError(t, err)

		g, err := codegen.New(opts...)
		require.NoError(t, err)
		out, err := g.Generate(&codegen.CodeGenerationRequest{Services: []codegen.ServiceDescriptor{{
			Name: DeriveName("Greeter"),
		}}})
		require.NoError(t, err)
		assert.Contains(t, out.Contents, "public enum Greeter {\n  public enum Method")
	})

	t.Run("unknown visibility fails", func(t *testing.T) {
		_, err := (&Config{Visibility: "open"}).CodegenOptions()
		assert.ErrorIs(t, err, codegen.ErrInvalidConfig)
	})
}

func TestConfig_MappingIndex(t *testing.T) {
	assert.Nil(t, (&Config{}).mappingIndex())

	cfg := &Config{ModuleMappings: []ModuleMapping{
		{ProtoFile: "a.proto", Module: "ModA"},
		{ProtoFile: "b.proto", Module: "ModB"},
	}}
	assert.Equal(t, map[string]string{"a.proto": "ModA", "b.proto": "ModB"}, cfg.mappingIndex())
}
