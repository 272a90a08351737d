// Package swift holds the intermediate representation of generated Swift
// source and its renderer.
//
// Translators in the codegen package build a File: a declaration tree of
// namespace enums, protocols, type aliases, extensions, constants and
// functions. Render walks that tree with a recursive-descent printer and
// produces the final text with consistent indentation, brace placement and
// access-level decoration.
//
// The IR is deliberately small: it models only the constructs the generated
// RPC surface needs, not the Swift language. A File is built fresh per
// generation call and discarded after rendering; the renderer keeps no state
// across calls.
package swift
