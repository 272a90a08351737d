package codegen

import (
	"path"
	"strings"

	"github.com/syssam/grpc-swift-gen/codegen/swift"
)

// coreModule is the runtime module every generated file imports first.
const coreModule = "GRPCCore"

// SourceFile is the single rendered artifact of one generation call.
type SourceFile struct {
	Name     string
	Contents string
}

// Generator maps validated CodeGenerationRequests to rendered Swift source.
// A Generator is immutable after construction and safe for concurrent use;
// each Generate call allocates its own IR and render buffer.
type Generator struct {
	cfg *Config
}

// New creates a Generator with the given options. Defaults: internal access
// level, four-space indentation, client and server generation disabled.
func New(opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Generate validates the request and renders the complete source file, or
// fails before producing any output. Partial files are never returned.
func (g *Generator) Generate(req *CodeGenerationRequest) (*SourceFile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	entries := topLevelEntries(req.Services)
	services := orderedServices(entries)

	blocks := translateAliases(entries, g.cfg)
	if g.cfg.Server {
		blocks = append(blocks, translateServer(services)...)
	}
	if g.cfg.Client {
		blocks = append(blocks, translateClient(services)...)
	}

	file := &swift.File{
		Header:  req.LeadingTrivia,
		Imports: g.imports(req.Dependencies),
		Blocks:  blocks,
	}
	contents, err := swift.Render(file, swift.RenderOptions{
		AccessLevel:            g.cfg.AccessLevel.String(),
		IndentWidth:            g.cfg.IndentWidth,
		AvailabilityOSVersions: g.cfg.AvailabilityOSVersions,
	})
	if err != nil {
		return nil, err
	}
	return &SourceFile{
		Name:     outputFileName(req.FileName),
		Contents: contents,
	}, nil
}

// imports assembles the import list: the core runtime module first, then
// the schema-derived dependencies in request order, then the configured
// extra modules. The renderer deduplicates by module name.
func (g *Generator) imports(deps []Dependency) []swift.Import {
	imports := []swift.Import{{Module: coreModule}}
	for _, dep := range deps {
		imports = append(imports, importForDependency(dep))
	}
	for _, m := range g.cfg.ExtraModuleImports {
		imports = append(imports, swift.Import{Module: m})
	}
	return imports
}

func importForDependency(dep Dependency) swift.Import {
	imp := swift.Import{
		Module:         dep.Module,
		SPI:            dep.SPI,
		Preconcurrency: swift.PreconcurrencyKind(dep.Preconcurrency.Kind),
		Platforms:      dep.Preconcurrency.Platforms,
	}
	if dep.Item != nil {
		imp.Item = &swift.ImportItem{
			Kind: swift.ImportItemKind(dep.Item.Kind),
			Name: dep.Item.Name,
		}
	}
	return imp
}

// outputFileName strips the schema file's extension and appends the
// generated-source suffix.
func outputFileName(schemaFile string) string {
	return strings.TrimSuffix(schemaFile, path.Ext(schemaFile)) + ".grpc.swift"
}
