// Package codegen turns a language-neutral description of RPC services into
// formatted Swift source implementing client stubs, server interfaces and
// supporting declarations.
//
// # Architecture
//
// The generation pipeline is a pure, synchronous transformation:
//
//	CodeGenerationRequest (built by the schema-parsing frontend)
//	        ↓
//	   request validation (name uniqueness, import kinds)
//	        ↓
//	   translators (aliases, server, client)
//	        ↓
//	   swift.File (declaration tree)
//	        ↓
//	   swift.Render → SourceFile
//
// Each enabled translator appends code blocks to the IR in a fixed order:
// the namespace/alias skeleton first, then server code, then client code.
// Rendering is deterministic; the same request and configuration always
// produce byte-identical text.
//
// # Key Types
//
//   - CodeGenerationRequest: immutable input of one generation call
//   - ServiceDescriptor, MethodDescriptor, Name: the schema model
//   - Config, Option: access level, indentation, client/server toggles
//   - Generator: the pipeline entry point
//
// Validation failures carry a machine-readable ErrorCode and abort the call
// before any IR is built; generation is all-or-nothing.
package codegen
