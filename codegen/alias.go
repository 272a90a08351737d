package codegen

import (
	"fmt"
	"sort"

	"github.com/syssam/grpc-swift-gen/codegen/swift"
)

// topLevelEntry is one top-level region of the generated file: a namespace
// block or a standalone no-namespace service. Entries keep the order in
// which their first representative appeared in the request.
type topLevelEntry struct {
	namespace Name
	services  []ServiceDescriptor
}

// topLevelEntries groups services by generated upper-case namespace.
// Within a namespace services are sorted by generated upper-case name;
// no-namespace services stay standalone at their input position.
func topLevelEntries(services []ServiceDescriptor) []topLevelEntry {
	var entries []topLevelEntry
	index := make(map[string]int)
	for _, svc := range services {
		if svc.Namespace.IsEmpty() {
			entries = append(entries, topLevelEntry{services: []ServiceDescriptor{svc}})
			continue
		}
		key := svc.Namespace.GeneratedUpperCase
		i, ok := index[key]
		if !ok {
			i = len(entries)
			index[key] = i
			entries = append(entries, topLevelEntry{namespace: svc.Namespace})
		}
		entries[i].services = append(entries[i].services, svc)
	}
	for i := range entries {
		if entries[i].namespace.IsEmpty() {
			continue
		}
		sort.Slice(entries[i].services, func(a, b int) bool {
			return entries[i].services[a].Name.GeneratedUpperCase < entries[i].services[b].Name.GeneratedUpperCase
		})
	}
	return entries
}

// orderedServices flattens the entries into the service order used by the
// server and client translators.
func orderedServices(entries []topLevelEntry) []ServiceDescriptor {
	var services []ServiceDescriptor
	for _, e := range entries {
		services = append(services, e.services...)
	}
	return services
}

// translateAliases builds the nominal-namespace skeleton: one enum per
// namespace, one enum per service with per-method Input/Output aliases and
// descriptor constants, plus the conditional protocol/client aliases.
func translateAliases(entries []topLevelEntry, cfg *Config) []swift.CodeBlock {
	blocks := make([]swift.CodeBlock, 0, len(entries))
	for _, e := range entries {
		if e.namespace.IsEmpty() {
			blocks = append(blocks, swift.CodeBlock{
				Decls: []swift.Decl{serviceEnum(e.services[0], cfg)},
			})
			continue
		}
		decls := make([]swift.Decl, 0, len(e.services))
		for _, svc := range e.services {
			decls = append(decls, serviceEnum(svc, cfg))
		}
		blocks = append(blocks, swift.CodeBlock{
			Decls: []swift.Decl{swift.Namespace{
				Name:  e.namespace.GeneratedUpperCase,
				Decls: decls,
			}},
		})
	}
	return blocks
}

func serviceEnum(svc ServiceDescriptor, cfg *Config) swift.Namespace {
	methodDecls := make([]swift.Decl, 0, len(svc.Methods)+1)
	elements := make([]string, 0, len(svc.Methods))
	for _, m := range svc.Methods {
		methodDecls = append(methodDecls, methodEnum(svc, m))
		elements = append(elements, m.Name.GeneratedUpperCase+".descriptor")
	}
	methodDecls = append(methodDecls, swift.Constant{
		Doc:      fmt.Sprintf("Descriptors for all methods of the %q service.", svc.fullyQualifiedName()),
		Name:     "descriptors",
		Type:     "[GRPCCore.MethodDescriptor]",
		Elements: elements,
		Static:   true,
	})

	decls := []swift.Decl{swift.Namespace{Name: "Method", Decls: methodDecls}}
	prefix := svc.generatedTypePrefix()
	if cfg.Server {
		decls = append(decls,
			swift.TypeAlias{
				Name:      "StreamingServiceProtocol",
				Target:    prefix + "_StreamingServiceProtocol",
				Available: true,
			},
			swift.TypeAlias{
				Name:      "ServiceProtocol",
				Target:    prefix + "_ServiceProtocol",
				Available: true,
			},
		)
	}
	if cfg.Client {
		decls = append(decls,
			swift.TypeAlias{
				Name:      "ClientProtocol",
				Target:    prefix + "_ClientProtocol",
				Available: true,
			},
			swift.TypeAlias{
				Name:      "Client",
				Target:    prefix + "_Client",
				Available: true,
			},
		)
	}
	return swift.Namespace{
		Doc:   svc.Documentation,
		Name:  svc.Name.GeneratedUpperCase,
		Decls: decls,
	}
}

func methodEnum(svc ServiceDescriptor, m MethodDescriptor) swift.Namespace {
	return swift.Namespace{
		Name: m.Name.GeneratedUpperCase,
		Decls: []swift.Decl{
			swift.TypeAlias{Name: "Input", Target: m.InputType},
			swift.TypeAlias{Name: "Output", Target: m.OutputType},
			swift.Constant{
				Name: "descriptor",
				Value: fmt.Sprintf(
					"GRPCCore.MethodDescriptor(service: %q, method: %q)",
					svc.fullyQualifiedName(), m.Name.Base,
				),
				Static: true,
			},
		},
	}
}
