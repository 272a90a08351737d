package codegen

import "fmt"

// validateRequest enforces the name-uniqueness invariants of a request
// before any IR is built. The first violation aborts generation.
func validateRequest(req *CodeGenerationRequest) error {
	if err := validateServices(req.Services); err != nil {
		return err
	}
	for _, svc := range req.Services {
		if err := validateMethods(svc); err != nil {
			return err
		}
	}
	return validateDependencies(req.Dependencies)
}

func validateServices(services []ServiceDescriptor) error {
	// (namespace.Base, name.Base) must be unique across the request.
	byBaseName := make(map[string]bool, len(services))
	// Generated upper-case names must be unique within a namespace group;
	// the empty namespace counts as its own group.
	byGeneratedName := make(map[string]bool, len(services))
	namespaces := make(map[string]bool)
	for _, svc := range services {
		baseKey := svc.Namespace.Base + "." + svc.Name.Base
		if byBaseName[baseKey] {
			return NewRequestError(
				CodeDuplicateServiceName, svc.fullyQualifiedName(), "",
				fmt.Sprintf("service %q is declared more than once", svc.fullyQualifiedName()),
			)
		}
		byBaseName[baseKey] = true

		genKey := svc.Namespace.GeneratedUpperCase + "." + svc.Name.GeneratedUpperCase
		if byGeneratedName[genKey] {
			return NewRequestError(
				CodeDuplicateGeneratedName, svc.fullyQualifiedName(), "",
				fmt.Sprintf("generated name %q is used by another service in the same namespace", svc.Name.GeneratedUpperCase),
			)
		}
		byGeneratedName[genKey] = true

		if !svc.Namespace.IsEmpty() {
			namespaces[svc.Namespace.GeneratedUpperCase] = true
		}
	}
	// A no-namespace service becomes a top-level nominal type and must not
	// collide with a namespace's nominal type.
	for _, svc := range services {
		if svc.Namespace.IsEmpty() && namespaces[svc.Name.GeneratedUpperCase] {
			return NewRequestError(
				CodeServiceNamespaceCollision, svc.Name.Base, "",
				fmt.Sprintf("generated name %q collides with a namespace of the same name", svc.Name.GeneratedUpperCase),
			)
		}
	}
	return nil
}

func validateMethods(svc ServiceDescriptor) error {
	base := make(map[string]bool, len(svc.Methods))
	upper := make(map[string]bool, len(svc.Methods))
	lower := make(map[string]bool, len(svc.Methods))
	for _, m := range svc.Methods {
		switch {
		case base[m.Name.Base]:
			return NewRequestError(
				CodeDuplicateMethodName, svc.fullyQualifiedName(), m.Name.Base,
				fmt.Sprintf("method name %q is declared more than once", m.Name.Base),
			)
		case upper[m.Name.GeneratedUpperCase]:
			return NewRequestError(
				CodeDuplicateMethodName, svc.fullyQualifiedName(), m.Name.Base,
				fmt.Sprintf("generated name %q is used by another method", m.Name.GeneratedUpperCase),
			)
		case lower[m.Name.GeneratedLowerCase]:
			return NewRequestError(
				CodeDuplicateMethodName, svc.fullyQualifiedName(), m.Name.Base,
				fmt.Sprintf("generated name %q is used by another method", m.Name.GeneratedLowerCase),
			)
		}
		base[m.Name.Base] = true
		upper[m.Name.GeneratedUpperCase] = true
		lower[m.Name.GeneratedLowerCase] = true
	}
	return nil
}

func validateDependencies(deps []Dependency) error {
	for _, dep := range deps {
		if dep.Item == nil {
			continue
		}
		switch dep.Item.Kind {
		case ImportItemTypealias, ImportItemStruct, ImportItemClass, ImportItemEnum,
			ImportItemProtocol, ImportItemLet, ImportItemVar, ImportItemFunc:
		default:
			return NewRequestError(
				CodeUnknownImportItemKind, "", "",
				fmt.Sprintf("dependency %q has unrecognized import item kind %q", dep.Module, dep.Item.Kind),
			)
		}
	}
	return nil
}
