// protoc-gen-grpc-swift is a plugin for the protocol buffer compiler that
// generates Swift client stubs and server interfaces for gRPC services.
// To use it, build this program and make it available on your PATH as
// protoc-gen-grpc-swift:
//
//	protoc --grpc-swift_out=. path/to/file.proto
//
// The output for path/to/file.proto is written to path/to/file.grpc.swift.
// Generation is controlled with --grpc-swift_opt parameters (Visibility,
// Client, Server, Indentation, ExtraModuleImports, Config, LogLevel); the
// Config parameter points at a YAML file providing the same settings.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/syssam/grpc-swift-gen/codegen"
	"github.com/syssam/grpc-swift-gen/load"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Printf("protoc-gen-grpc-swift %s\n", version)
		return
	}

	var flags flag.FlagSet
	visibility := flags.String("Visibility", "", "access level of generated declarations (fileprivate, internal, package, public)")
	client := flags.Bool("Client", true, "generate client code")
	server := flags.Bool("Server", true, "generate server code")
	indentation := flags.Int("Indentation", 0, "spaces per indentation level")
	extraImports := flags.String("ExtraModuleImports", "", "comma-separated module names to import in generated files")
	configPath := flags.String("Config", "", "path to a YAML configuration file")
	logLevel := flags.String("LogLevel", "", "diagnostic log level on stderr (debug, info, warn, error)")

	protogen.Options{ParamFunc: flags.Set}.Run(func(gen *protogen.Plugin) error {
		gen.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)

		cfg, err := buildConfig(&flags, *configPath, *visibility, *client, *server, *indentation, *extraImports, *logLevel)
		if err != nil {
			return err
		}
		logger, err := load.NewLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		opts, err := cfg.CodegenOptions()
		if err != nil {
			return err
		}
		generator, err := codegen.New(opts...)
		if err != nil {
			return err
		}

		// Generation is pure per file, so files run in parallel; the
		// response is assembled afterwards in deterministic input order.
		var mu sync.Mutex
		outputs := make(map[string]*codegen.SourceFile)
		eg := &errgroup.Group{}
		eg.SetLimit(runtime.GOMAXPROCS(0))
		for _, file := range gen.Files {
			if !file.Generate || len(file.Services) == 0 {
				continue
			}
			file := file
			eg.Go(func() error {
				req, err := load.Build(file, cfg)
				if err != nil {
					return err
				}
				out, err := generator.Generate(req)
				if err != nil {
					return fmt.Errorf("generate %s: %w", file.Desc.Path(), err)
				}
				logger.Debug("generated file",
					zap.String("source", file.Desc.Path()),
					zap.String("output", out.Name),
					zap.Int("bytes", len(out.Contents)),
				)
				mu.Lock()
				outputs[file.Desc.Path()] = out
				mu.Unlock()
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		for _, file := range gen.Files {
			out, ok := outputs[file.Desc.Path()]
			if !ok {
				continue
			}
			g := gen.NewGeneratedFile(out.Name, "")
			if _, err := g.Write([]byte(out.Contents)); err != nil {
				return err
			}
		}
		return nil
	})
}

// buildConfig starts from the YAML config file (when given) and overrides
// it with every parameter the invocation set explicitly.
func buildConfig(flags *flag.FlagSet, configPath, visibility string, client, server bool, indentation int, extraImports, logLevel string) (*load.Config, error) {
	cfg := &load.Config{}
	if configPath != "" {
		loaded, err := load.ReadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	var err error
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "Visibility":
			cfg.Visibility = visibility
		case "Client":
			cfg.Client = &client
		case "Server":
			cfg.Server = &server
		case "Indentation":
			cfg.Indentation = indentation
		case "ExtraModuleImports":
			for _, m := range strings.Split(extraImports, ",") {
				m = strings.TrimSpace(m)
				if m == "" {
					err = fmt.Errorf("ExtraModuleImports: empty module name in %q", extraImports)
					return
				}
				cfg.ExtraModuleImports = append(cfg.ExtraModuleImports, m)
			}
		case "LogLevel":
			cfg.LogLevel = logLevel
		}
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
